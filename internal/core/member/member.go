// Package member defines the team member domain model.
package member

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a member does not exist.
	ErrNotFound = errors.New("member not found")
	// ErrDuplicate is returned when a member with the same email exists.
	ErrDuplicate = errors.New("member email already registered")
)

// Role describes what a member does on the team. Informational only; there
// is no permission model (single trusted deployment).
type Role string

const (
	RoleMember Role = "member"
	RoleLead   Role = "lead"
)

// Member is a person work items can be assigned to.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines member persistence.
type Store interface {
	// Create persists a new member. The store populates ID and timestamps
	// if not already set. Returns ErrDuplicate on an email collision.
	Create(ctx context.Context, m *Member) error

	// Get returns a member by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (Member, error)

	// List returns all members ordered by name.
	List(ctx context.Context) ([]Member, error)
}

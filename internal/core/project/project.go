// Package project defines the project domain model.
package project

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a project does not exist.
	ErrNotFound = errors.New("project not found")
	// ErrDuplicate is returned when a project with the same key exists.
	ErrDuplicate = errors.New("project key already in use")
)

// Project groups related work items under a short unique key.
type Project struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store defines project persistence.
type Store interface {
	// Create persists a new project. The store populates ID and timestamps
	// if not already set. Returns ErrDuplicate on a key collision.
	Create(ctx context.Context, p *Project) error

	// Get returns a project by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (Project, error)

	// List returns all projects ordered by key.
	List(ctx context.Context) ([]Project, error)
}

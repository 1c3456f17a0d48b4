// Package activity defines the append-only audit log written alongside
// work item mutations.
package activity

import (
	"context"
	"time"
)

// Action names the kind of mutation an entry records.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Entry is a single audit record. ChangedFields holds the field names the
// transition engine reported for the mutation; empty for created.
type Entry struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	Actor         string    `json:"actor,omitempty"`
	Action        Action    `json:"action"`
	ChangedFields []string  `json:"changed_fields,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store defines activity log persistence. The log is append-only; entries
// are removed only via the work_items foreign key cascade on item delete.
type Store interface {
	// Append persists a new entry. The store populates ID and CreatedAt if
	// not already set.
	Append(ctx context.Context, entry *Entry) error

	// ListByItem returns an item's entries, newest first.
	ListByItem(ctx context.Context, itemID string) ([]Entry, error)
}

package workitem

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a work item does not exist.
var ErrNotFound = errors.New("work item not found")

// ListFilter controls which items are returned by List. Empty fields match
// everything. When both Status and a second filter are set the store applies
// both; combinations the store has no dedicated query for fall back to the
// most specific available one.
type ListFilter struct {
	Status     Status
	AssignedTo string
	ProjectID  string
	Kind       Kind
}

// Store defines work item persistence.
//
// Save writes the full row in a single statement so a partial update can
// never be observed, which is what lets ComputeChange treat the write as
// atomic.
type Store interface {
	// Create persists a new item. The store populates ID, CreatedAt, and
	// UpdatedAt if not already set.
	Create(ctx context.Context, item *WorkItem) error

	// Get returns a single item by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (WorkItem, error)

	// List returns items matching the filter, ordered by created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]WorkItem, error)

	// Save overwrites an existing item's row. Returns ErrNotFound if the
	// item does not exist.
	Save(ctx context.Context, item WorkItem) error

	// Delete removes an item by ID. Returns ErrNotFound if missing.
	Delete(ctx context.Context, id string) error

	// ListOpenByAssignee returns a member's items whose status is neither
	// done nor archived, ordered by created_at DESC.
	ListOpenByAssignee(ctx context.Context, memberID string) ([]WorkItem, error)

	// ListRecentlyDoneByAssignee returns a member's done items completed at
	// or after since, ordered by completed_at DESC.
	ListRecentlyDoneByAssignee(ctx context.Context, memberID string, since time.Time) ([]WorkItem, error)
}

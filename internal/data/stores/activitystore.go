package stores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/bugbee/internal/core/activity"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/pkg/randid"
)

// ActivityStore implements activity.Store using SQLite.
type ActivityStore struct {
	db *db.DB
}

var _ activity.Store = (*ActivityStore)(nil)

// NewActivityStore creates a new SQLite-backed activity log store.
func NewActivityStore(db *db.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Append persists a new audit entry.
func (s *ActivityStore) Append(ctx context.Context, entry *activity.Entry) error {
	if entry.ID == "" {
		entry.ID = randid.Generate(8)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err := s.db.Queries().AppendActivityEntry(ctx, db.AppendActivityEntryParams{
		ID:            entry.ID,
		ItemID:        entry.ItemID,
		Actor:         toNullString(entry.Actor),
		Action:        string(entry.Action),
		ChangedFields: toNullString(strings.Join(entry.ChangedFields, ",")),
		CreatedAt:     entry.CreatedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("append activity entry: %w", err)
	}

	return nil
}

// ListByItem returns an item's entries, newest first.
func (s *ActivityStore) ListByItem(ctx context.Context, itemID string) ([]activity.Entry, error) {
	rows, err := s.db.Queries().ListActivityEntriesByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list activity entries by item: %w", err)
	}

	entries := make([]activity.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToActivityEntry(row))
	}

	return entries, nil
}

func rowToActivityEntry(row db.ActivityEntry) activity.Entry {
	var fields []string
	if raw := fromNullString(row.ChangedFields); raw != "" {
		fields = strings.Split(raw, ",")
	}

	return activity.Entry{
		ID:            row.ID,
		ItemID:        row.ItemID,
		Actor:         fromNullString(row.Actor),
		Action:        activity.Action(row.Action),
		ChangedFields: fields,
		CreatedAt:     time.Unix(0, row.CreatedAt),
	}
}

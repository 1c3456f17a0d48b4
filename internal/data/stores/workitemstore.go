package stores

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/bugbee/internal/core/workitem"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/pkg/randid"
)

// WorkItemStore implements workitem.Store using SQLite.
type WorkItemStore struct {
	db *db.DB
}

var _ workitem.Store = (*WorkItemStore)(nil)

// NewWorkItemStore creates a new SQLite-backed work item store.
func NewWorkItemStore(db *db.DB) *WorkItemStore {
	return &WorkItemStore{db: db}
}

// Create persists a new work item. Generates an ID and fills timestamps and
// enum defaults if not set.
func (s *WorkItemStore) Create(ctx context.Context, item *workitem.WorkItem) error {
	if item.ID == "" {
		item.ID = randid.Generate(8)
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	if item.Kind == "" {
		item.Kind = workitem.KindTask
	}
	if item.Status == "" {
		item.Status = workitem.StatusInbox
	}
	if item.Priority == "" {
		item.Priority = workitem.PriorityNone
	}

	err := s.db.Queries().CreateWorkItem(ctx, db.CreateWorkItemParams{
		ID:          item.ID,
		ProjectID:   toNullString(item.ProjectID),
		Title:       item.Title,
		Description: toNullString(item.Description),
		Kind:        string(item.Kind),
		Status:      string(item.Status),
		Priority:    string(item.Priority),
		AssignedTo:  toNullString(item.AssignedTo),
		DueDate:     toNullString(string(item.DueDate)),
		CreatedAt:   item.CreatedAt.UnixNano(),
		UpdatedAt:   item.UpdatedAt.UnixNano(),
		CompletedAt: toNullTime(item.CompletedAt),
		ArchivedAt:  toNullTime(item.ArchivedAt),
	})
	if err != nil {
		return fmt.Errorf("create work item: %w", err)
	}

	return nil
}

// Get returns a single work item by ID.
func (s *WorkItemStore) Get(ctx context.Context, id string) (workitem.WorkItem, error) {
	row, err := s.db.Queries().GetWorkItem(ctx, id)
	if err != nil {
		if IsNotFoundError(err) {
			return workitem.WorkItem{}, workitem.ErrNotFound
		}
		return workitem.WorkItem{}, fmt.Errorf("get work item: %w", err)
	}

	return rowToWorkItem(row), nil
}

// List returns work items matching the filter, ordered by created_at DESC.
func (s *WorkItemStore) List(ctx context.Context, filter workitem.ListFilter) ([]workitem.WorkItem, error) {
	var rows []db.WorkItem
	var err error

	hasStatus := filter.Status != ""
	hasAssignee := filter.AssignedTo != ""
	hasProject := filter.ProjectID != ""
	hasKind := filter.Kind != ""

	switch {
	case hasStatus && hasAssignee:
		rows, err = s.db.Queries().ListWorkItemsByStatusAndAssignee(ctx, db.ListWorkItemsByStatusAndAssigneeParams{
			Status:     string(filter.Status),
			AssignedTo: toNullString(filter.AssignedTo),
		})
	case hasStatus && hasProject:
		rows, err = s.db.Queries().ListWorkItemsByStatusAndProject(ctx, db.ListWorkItemsByStatusAndProjectParams{
			Status:    string(filter.Status),
			ProjectID: toNullString(filter.ProjectID),
		})
	case hasStatus:
		rows, err = s.db.Queries().ListWorkItemsByStatus(ctx, string(filter.Status))
	case hasAssignee:
		rows, err = s.db.Queries().ListWorkItemsByAssignee(ctx, toNullString(filter.AssignedTo))
	case hasProject:
		rows, err = s.db.Queries().ListWorkItemsByProject(ctx, toNullString(filter.ProjectID))
	case hasKind:
		rows, err = s.db.Queries().ListWorkItemsByKind(ctx, string(filter.Kind))
	default:
		rows, err = s.db.Queries().ListWorkItems(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("list work items: %w", err)
	}

	items := make([]workitem.WorkItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToWorkItem(row))
	}

	return items, nil
}

// Save overwrites an existing item's row in a single statement.
func (s *WorkItemStore) Save(ctx context.Context, item workitem.WorkItem) error {
	// Verify the item exists first
	_, err := s.db.Queries().GetWorkItem(ctx, item.ID)
	if err != nil {
		if IsNotFoundError(err) {
			return workitem.ErrNotFound
		}
		return fmt.Errorf("get work item for save: %w", err)
	}

	err = s.db.Queries().SaveWorkItem(ctx, db.SaveWorkItemParams{
		ProjectID:   toNullString(item.ProjectID),
		Title:       item.Title,
		Description: toNullString(item.Description),
		Kind:        string(item.Kind),
		Status:      string(item.Status),
		Priority:    string(item.Priority),
		AssignedTo:  toNullString(item.AssignedTo),
		DueDate:     toNullString(string(item.DueDate)),
		UpdatedAt:   item.UpdatedAt.UnixNano(),
		CompletedAt: toNullTime(item.CompletedAt),
		ArchivedAt:  toNullTime(item.ArchivedAt),
		ID:          item.ID,
	})
	if err != nil {
		return fmt.Errorf("save work item: %w", err)
	}

	return nil
}

// Delete removes an item by ID.
func (s *WorkItemStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.Queries().GetWorkItem(ctx, id)
	if err != nil {
		if IsNotFoundError(err) {
			return workitem.ErrNotFound
		}
		return fmt.Errorf("get work item for delete: %w", err)
	}

	if err := s.db.Queries().DeleteWorkItem(ctx, id); err != nil {
		return fmt.Errorf("delete work item: %w", err)
	}

	return nil
}

// ListOpenByAssignee returns a member's items that are neither done nor archived.
func (s *WorkItemStore) ListOpenByAssignee(ctx context.Context, memberID string) ([]workitem.WorkItem, error) {
	rows, err := s.db.Queries().ListOpenWorkItemsByAssignee(ctx, toNullString(memberID))
	if err != nil {
		return nil, fmt.Errorf("list open work items by assignee: %w", err)
	}

	items := make([]workitem.WorkItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToWorkItem(row))
	}

	return items, nil
}

// ListRecentlyDoneByAssignee returns a member's done items completed at or after since.
func (s *WorkItemStore) ListRecentlyDoneByAssignee(ctx context.Context, memberID string, since time.Time) ([]workitem.WorkItem, error) {
	rows, err := s.db.Queries().ListRecentlyDoneWorkItemsByAssignee(ctx, db.ListRecentlyDoneWorkItemsByAssigneeParams{
		AssignedTo:  toNullString(memberID),
		CompletedAt: sql.NullInt64{Int64: since.UnixNano(), Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("list recently done work items by assignee: %w", err)
	}

	items := make([]workitem.WorkItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToWorkItem(row))
	}

	return items, nil
}

func rowToWorkItem(row db.WorkItem) workitem.WorkItem {
	return workitem.WorkItem{
		ID:          row.ID,
		ProjectID:   fromNullString(row.ProjectID),
		Title:       row.Title,
		Description: fromNullString(row.Description),
		Kind:        workitem.Kind(row.Kind),
		Status:      workitem.Status(row.Status),
		Priority:    workitem.Priority(row.Priority),
		AssignedTo:  fromNullString(row.AssignedTo),
		DueDate:     workitem.Date(fromNullString(row.DueDate)),
		CreatedAt:   time.Unix(0, row.CreatedAt),
		UpdatedAt:   time.Unix(0, row.UpdatedAt),
		CompletedAt: fromNullTime(row.CompletedAt),
		ArchivedAt:  fromNullTime(row.ArchivedAt),
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func toNullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNullTime(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := time.Unix(0, n.Int64)
	return &t
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

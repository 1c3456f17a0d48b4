package bugbee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/bugbee/internal/core/activity"
	"github.com/colonyops/bugbee/internal/core/config"
	"github.com/colonyops/bugbee/internal/core/eventbus"
	"github.com/colonyops/bugbee/internal/core/project"
	"github.com/colonyops/bugbee/internal/core/quickdate"
	"github.com/colonyops/bugbee/internal/core/workitem"
)

// ItemService owns the work item lifecycle: creation with automation rules,
// transition-engine updates, the activity trail, and event publishing.
type ItemService struct {
	items      workitem.Store
	projects   project.Store
	activities activity.Store
	cfg        *config.Config
	bus        *eventbus.EventBus
	log        zerolog.Logger
	now        func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items workitem.Store,
	projects project.Store,
	activities activity.Store,
	cfg *config.Config,
	bus *eventbus.EventBus,
	log zerolog.Logger,
) *ItemService {
	return &ItemService{
		items:      items,
		projects:   projects,
		activities: activities,
		cfg:        cfg,
		bus:        bus,
		log:        log.With().Str("component", "item-service").Logger(),
		now:        time.Now,
	}
}

// Create persists a new work item. Unset enum fields default to
// kind=task, status=inbox, priority=none. When the item belongs to a
// project, the first matching automation rule fills in the assignee and
// priority it names, but never overrides values the caller set.
func (s *ItemService) Create(ctx context.Context, item workitem.WorkItem, actor string) (workitem.WorkItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if err := validateNewItem(item); err != nil {
		return workitem.WorkItem{}, err
	}

	if item.ProjectID != "" {
		proj, err := s.projects.Get(ctx, item.ProjectID)
		if err != nil {
			if errors.Is(err, project.ErrNotFound) {
				return workitem.WorkItem{}, &workitem.ValidationError{
					Field: "project_id", Value: item.ProjectID, Reason: "unknown project",
				}
			}
			return workitem.WorkItem{}, fmt.Errorf("resolve project for create: %w", err)
		}

		if rule, ok := s.cfg.MatchRule(proj.Key); ok {
			if rule.Assign != "" && item.AssignedTo == "" {
				item.AssignedTo = rule.Assign
			}
			if rule.Priority != "" && item.Priority == "" {
				item.Priority = workitem.Priority(rule.Priority)
			}
		}
	}

	if err := s.items.Create(ctx, &item); err != nil {
		return workitem.WorkItem{}, fmt.Errorf("create item: %w", err)
	}

	if err := s.activities.Append(ctx, &activity.Entry{
		ItemID: item.ID,
		Actor:  actor,
		Action: activity.ActionCreated,
	}); err != nil {
		s.log.Error().Err(err).Str("item_id", item.ID).Msg("append created activity")
	}

	s.bus.PublishItemCreated(eventbus.ItemCreatedPayload{Item: &item})

	return item, nil
}

// QuickAdd creates an item from a single line of text. A trailing natural
// language date phrase ("by friday", "due tomorrow") becomes the due date
// and is stripped from the title.
func (s *ItemService) QuickAdd(ctx context.Context, text string, actor string) (workitem.WorkItem, error) {
	today := workitem.DateOf(s.now())

	item := workitem.WorkItem{Title: text}
	if title, due, ok := quickdate.Extract(text, today); ok {
		item.Title = title
		item.DueDate = due
	}

	return s.Create(ctx, item, actor)
}

// Update applies a partial update through the transition engine: load the
// current snapshot, compute the full change set including derived
// timestamps, write the whole row back, and record what changed.
func (s *ItemService) Update(ctx context.Context, id string, patch workitem.Patch, actor string) (workitem.WorkItem, error) {
	current, err := s.items.Get(ctx, id)
	if err != nil {
		return workitem.WorkItem{}, err
	}

	change, err := workitem.ComputeChange(current, patch, s.now())
	if err != nil {
		return workitem.WorkItem{}, err
	}

	updated := change.ApplyTo(current)
	if err := s.items.Save(ctx, updated); err != nil {
		return workitem.WorkItem{}, fmt.Errorf("save item: %w", err)
	}

	if len(change.Changed) > 0 {
		if err := s.activities.Append(ctx, &activity.Entry{
			ItemID:        updated.ID,
			Actor:         actor,
			Action:        activity.ActionUpdated,
			ChangedFields: change.Changed,
		}); err != nil {
			s.log.Error().Err(err).Str("item_id", updated.ID).Msg("append updated activity")
		}
	}

	s.bus.PublishItemUpdated(eventbus.ItemUpdatedPayload{Item: &updated, Changed: change.Changed})
	if change.SetCompletedAt != nil {
		s.bus.PublishItemCompleted(eventbus.ItemCompletedPayload{Item: &updated})
	}

	return updated, nil
}

// Get returns a single item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (workitem.WorkItem, error) {
	return s.items.Get(ctx, id)
}

// List returns items matching the filter.
func (s *ItemService) List(ctx context.Context, filter workitem.ListFilter) ([]workitem.WorkItem, error) {
	return s.items.List(ctx, filter)
}

// Delete removes an item. The activity trail goes with it via the foreign
// key cascade.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.PublishItemDeleted(eventbus.ItemDeletedPayload{ItemID: id})

	return nil
}

// Activity returns an item's audit trail, newest first. Returns
// workitem.ErrNotFound when the item does not exist.
func (s *ItemService) Activity(ctx context.Context, itemID string) ([]activity.Entry, error) {
	if _, err := s.items.Get(ctx, itemID); err != nil {
		return nil, err
	}
	return s.activities.ListByItem(ctx, itemID)
}

func validateNewItem(item workitem.WorkItem) error {
	if item.Title == "" {
		return &workitem.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len([]rune(item.Title)) > workitem.MaxTitleLen {
		return &workitem.ValidationError{Field: "title", Reason: fmt.Sprintf("must be at most %d characters", workitem.MaxTitleLen)}
	}
	if item.Kind != "" && !item.Kind.IsValid() {
		return &workitem.ValidationError{Field: "kind", Value: string(item.Kind), Allowed: enumStrings(workitem.Kinds())}
	}
	if item.Status != "" && !item.Status.IsValid() {
		return &workitem.ValidationError{Field: "status", Value: string(item.Status), Allowed: enumStrings(workitem.Statuses())}
	}
	if item.Priority != "" && !item.Priority.IsValid() {
		return &workitem.ValidationError{Field: "priority", Value: string(item.Priority), Allowed: enumStrings(workitem.Priorities())}
	}
	if !item.DueDate.IsZero() {
		if _, err := workitem.ParseDate(string(item.DueDate)); err != nil {
			return &workitem.ValidationError{Field: "due_date", Value: string(item.DueDate), Reason: "must be YYYY-MM-DD"}
		}
	}
	return nil
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

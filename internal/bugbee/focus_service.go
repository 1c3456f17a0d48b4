package bugbee

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/bugbee/internal/core/focus"
	"github.com/colonyops/bugbee/internal/core/member"
	"github.com/colonyops/bugbee/internal/core/workitem"
)

// recentlyDoneWindow is how far back the focus view looks for completed
// items.
const recentlyDoneWindow = 24 * time.Hour

// FocusService assembles the per-member focus board: open assigned items
// plus items completed in the trailing window, bucketed by urgency.
type FocusService struct {
	items   workitem.Store
	members member.Store
	log     zerolog.Logger
	now     func() time.Time
}

// NewFocusService creates a new FocusService.
func NewFocusService(items workitem.Store, members member.Store, log zerolog.Logger) *FocusService {
	return &FocusService{
		items:   items,
		members: members,
		log:     log.With().Str("component", "focus-service").Logger(),
		now:     time.Now,
	}
}

// ForMember returns the focus buckets for a member. Returns
// member.ErrNotFound when the member does not exist.
func (s *FocusService) ForMember(ctx context.Context, memberID string) (focus.Buckets, error) {
	if _, err := s.members.Get(ctx, memberID); err != nil {
		return focus.Buckets{}, err
	}

	now := s.now()

	open, err := s.items.ListOpenByAssignee(ctx, memberID)
	if err != nil {
		return focus.Buckets{}, fmt.Errorf("list open items: %w", err)
	}

	recent, err := s.items.ListRecentlyDoneByAssignee(ctx, memberID, now.Add(-recentlyDoneWindow))
	if err != nil {
		return focus.Buckets{}, fmt.Errorf("list recently done items: %w", err)
	}

	combined := make([]workitem.WorkItem, 0, len(open)+len(recent))
	combined = append(combined, open...)
	combined = append(combined, recent...)

	return focus.Categorize(combined, workitem.DateOf(now)), nil
}

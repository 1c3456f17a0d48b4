// Package focus buckets a member's work items into actionable categories
// for the "My Focus" view.
package focus

import (
	"sort"

	"github.com/colonyops/bugbee/internal/core/workitem"
)

// Buckets holds the seven focus categories. Every input item lands in
// exactly one bucket.
type Buckets struct {
	Overdue      []workitem.WorkItem `json:"overdue"`
	DueToday     []workitem.WorkItem `json:"due_today"`
	DueThisWeek  []workitem.WorkItem `json:"due_this_week"`
	HighPriority []workitem.WorkItem `json:"high_priority"`
	InProgress   []workitem.WorkItem `json:"in_progress"`
	Other        []workitem.WorkItem `json:"other"`
	RecentlyDone []workitem.WorkItem `json:"recently_done"`
}

// Categorize partitions items into buckets, evaluating the rules below in
// order and assigning each item to the first match:
//
//  1. done                                    -> recently_done
//  2. due before today                        -> overdue
//  3. due today                               -> due_today
//  4. due after today through end of week     -> due_this_week
//  5. urgent/high priority with no due date   -> high_priority
//  6. in_progress                             -> in_progress
//  7. everything else                         -> other
//
// The caller supplies today (no ambient clock) and is expected to pass only
// a member's open items plus done items completed within the trailing 24
// hours; the categorizer does no freshness check of its own.
//
// Every bucket except recently_done is sorted by priority rank, then due
// date (none last), then created_at descending. recently_done keeps the
// caller's order, which is expected to be completed_at descending.
func Categorize(items []workitem.WorkItem, today workitem.Date) Buckets {
	var b Buckets
	weekEnd := endOfWeek(today)

	for _, item := range items {
		switch {
		case item.Status == workitem.StatusDone:
			b.RecentlyDone = append(b.RecentlyDone, item)
		case !item.DueDate.IsZero() && item.DueDate.Before(today):
			b.Overdue = append(b.Overdue, item)
		case item.DueDate == today:
			b.DueToday = append(b.DueToday, item)
		case !item.DueDate.IsZero() && item.DueDate.After(today) && !item.DueDate.After(weekEnd):
			b.DueThisWeek = append(b.DueThisWeek, item)
		case item.DueDate.IsZero() && (item.Priority == workitem.PriorityUrgent || item.Priority == workitem.PriorityHigh):
			b.HighPriority = append(b.HighPriority, item)
		case item.Status == workitem.StatusInProgress:
			b.InProgress = append(b.InProgress, item)
		default:
			b.Other = append(b.Other, item)
		}
	}

	sortBucket(b.Overdue)
	sortBucket(b.DueToday)
	sortBucket(b.DueThisWeek)
	sortBucket(b.HighPriority)
	sortBucket(b.InProgress)
	sortBucket(b.Other)

	return b
}

// endOfWeek returns the upcoming Sunday. When today is already Sunday the
// week ends today, so due_this_week yields no matches for later dates that
// day.
func endOfWeek(today workitem.Date) workitem.Date {
	wd := int(today.Time().Weekday()) // Sunday == 0
	return today.AddDays((7 - wd) % 7)
}

// sortBucket orders items by priority rank ascending, then due date
// ascending with undated items last, then created_at descending.
func sortBucket(items []workitem.WorkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}

		switch {
		case a.DueDate.IsZero() && !b.DueDate.IsZero():
			return false
		case !a.DueDate.IsZero() && b.DueDate.IsZero():
			return true
		case a.DueDate != b.DueDate:
			return a.DueDate.Before(b.DueDate)
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}

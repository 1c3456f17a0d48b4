package focus

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/bugbee/internal/core/workitem"
)

// today is a Friday; the week ends Sunday 2024-03-17.
const today = workitem.Date("2024-03-15")

var itemSeq int

func item(mutate func(*workitem.WorkItem)) workitem.WorkItem {
	itemSeq++
	it := workitem.WorkItem{
		ID:        fmt.Sprintf("item-%d", itemSeq),
		Title:     "item",
		Kind:      workitem.KindTask,
		Status:    workitem.StatusTodo,
		Priority:  workitem.PriorityNormal,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(itemSeq) * time.Minute),
	}
	if mutate != nil {
		mutate(&it)
	}
	return it
}

func TestCategorize_RuleOrder(t *testing.T) {
	tests := []struct {
		name   string
		item   workitem.WorkItem
		bucket string
	}{
		{
			"done beats overdue due date",
			item(func(it *workitem.WorkItem) {
				it.Status = workitem.StatusDone
				it.DueDate = "2024-03-10"
			}),
			"recently_done",
		},
		{
			"overdue beats in_progress",
			item(func(it *workitem.WorkItem) {
				it.Status = workitem.StatusInProgress
				it.DueDate = "2024-03-12"
			}),
			"overdue",
		},
		{
			"due today",
			item(func(it *workitem.WorkItem) { it.DueDate = today }),
			"due_today",
		},
		{
			"due within the week",
			item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-16" }),
			"due_this_week",
		},
		{
			"due on the week boundary",
			item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-17" }),
			"due_this_week",
		},
		{
			"due past the week boundary",
			item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-18" }),
			"other",
		},
		{
			"urgent with no due date",
			item(func(it *workitem.WorkItem) { it.Priority = workitem.PriorityUrgent }),
			"high_priority",
		},
		{
			"high with no due date",
			item(func(it *workitem.WorkItem) { it.Priority = workitem.PriorityHigh }),
			"high_priority",
		},
		{
			"high priority with a far due date is not high_priority",
			item(func(it *workitem.WorkItem) {
				it.Priority = workitem.PriorityHigh
				it.DueDate = "2024-04-20"
			}),
			"other",
		},
		{
			"in_progress without date or priority",
			item(func(it *workitem.WorkItem) { it.Status = workitem.StatusInProgress }),
			"in_progress",
		},
		{
			"plain todo lands in other",
			item(nil),
			"other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Categorize([]workitem.WorkItem{tt.item}, today)
			got := map[string][]workitem.WorkItem{
				"overdue":       b.Overdue,
				"due_today":     b.DueToday,
				"due_this_week": b.DueThisWeek,
				"high_priority": b.HighPriority,
				"in_progress":   b.InProgress,
				"other":         b.Other,
				"recently_done": b.RecentlyDone,
			}
			for name, bucket := range got {
				if name == tt.bucket {
					assert.Len(t, bucket, 1, "expected item in %s", name)
				} else {
					assert.Empty(t, bucket, "unexpected item in %s", name)
				}
			}
		})
	}
}

func TestCategorize_EveryItemInExactlyOneBucket(t *testing.T) {
	items := []workitem.WorkItem{
		item(func(it *workitem.WorkItem) { it.Status = workitem.StatusDone }),
		item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-01" }),
		item(func(it *workitem.WorkItem) { it.DueDate = today }),
		item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-16" }),
		item(func(it *workitem.WorkItem) { it.Priority = workitem.PriorityUrgent }),
		item(func(it *workitem.WorkItem) { it.Status = workitem.StatusInProgress }),
		item(nil),
		item(func(it *workitem.WorkItem) { it.Status = workitem.StatusInReview }),
	}

	b := Categorize(items, today)

	total := len(b.Overdue) + len(b.DueToday) + len(b.DueThisWeek) +
		len(b.HighPriority) + len(b.InProgress) + len(b.Other) + len(b.RecentlyDone)
	assert.Equal(t, len(items), total)

	seen := map[string]int{}
	for _, bucket := range [][]workitem.WorkItem{
		b.Overdue, b.DueToday, b.DueThisWeek, b.HighPriority, b.InProgress, b.Other, b.RecentlyDone,
	} {
		for _, it := range bucket {
			seen[it.ID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "item %s placed %d times", id, count)
	}
}

func TestCategorize_OverdueBoundary(t *testing.T) {
	onToday := item(func(it *workitem.WorkItem) { it.DueDate = today })
	dayBefore := item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-14" })

	b := Categorize([]workitem.WorkItem{onToday, dayBefore}, today)

	require.Len(t, b.DueToday, 1)
	assert.Equal(t, onToday.ID, b.DueToday[0].ID)
	require.Len(t, b.Overdue, 1)
	assert.Equal(t, dayBefore.ID, b.Overdue[0].ID)
}

func TestCategorize_SundayWeekEnd(t *testing.T) {
	sunday := workitem.Date("2024-03-17")

	// On a Sunday the week ends today, so anything due later in the
	// calendar week falls through to the remaining rules.
	dueNextDay := item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-18" })
	dueToday := item(func(it *workitem.WorkItem) { it.DueDate = sunday })

	b := Categorize([]workitem.WorkItem{dueNextDay, dueToday}, sunday)

	assert.Empty(t, b.DueThisWeek)
	require.Len(t, b.DueToday, 1)
	assert.Equal(t, dueToday.ID, b.DueToday[0].ID)
	require.Len(t, b.Other, 1)
	assert.Equal(t, dueNextDay.ID, b.Other[0].ID)
}

func TestCategorize_BucketSort(t *testing.T) {
	t.Run("priority rank orders first", func(t *testing.T) {
		low := item(func(it *workitem.WorkItem) {
			it.Priority = workitem.PriorityLow
			it.DueDate = "2024-03-10"
		})
		urgent := item(func(it *workitem.WorkItem) {
			it.Priority = workitem.PriorityUrgent
			it.DueDate = "2024-03-12"
		})

		b := Categorize([]workitem.WorkItem{low, urgent}, today)
		require.Len(t, b.Overdue, 2)
		assert.Equal(t, urgent.ID, b.Overdue[0].ID)
	})

	t.Run("earlier due date wins within a rank", func(t *testing.T) {
		later := item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-17" })
		sooner := item(func(it *workitem.WorkItem) { it.DueDate = "2024-03-16" })

		b := Categorize([]workitem.WorkItem{later, sooner}, today)
		require.Len(t, b.DueThisWeek, 2)
		assert.Equal(t, sooner.ID, b.DueThisWeek[0].ID)
	})

	t.Run("undated sorts after dated in other", func(t *testing.T) {
		undated := item(nil)
		dated := item(func(it *workitem.WorkItem) { it.DueDate = "2024-04-01" })

		b := Categorize([]workitem.WorkItem{undated, dated}, today)
		require.Len(t, b.Other, 2)
		assert.Equal(t, dated.ID, b.Other[0].ID)
	})

	t.Run("created_at descending breaks full ties", func(t *testing.T) {
		older := item(func(it *workitem.WorkItem) {
			it.DueDate = "2024-03-16"
			it.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		})
		newer := item(func(it *workitem.WorkItem) {
			it.DueDate = "2024-03-16"
			it.CreatedAt = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		})

		b := Categorize([]workitem.WorkItem{older, newer}, today)
		require.Len(t, b.DueThisWeek, 2)
		assert.Equal(t, newer.ID, b.DueThisWeek[0].ID)
	})
}

func TestCategorize_RecentlyDoneKeepsCallerOrder(t *testing.T) {
	first := item(func(it *workitem.WorkItem) {
		it.Status = workitem.StatusDone
		it.Priority = workitem.PriorityLow
	})
	second := item(func(it *workitem.WorkItem) {
		it.Status = workitem.StatusDone
		it.Priority = workitem.PriorityUrgent
	})

	b := Categorize([]workitem.WorkItem{first, second}, today)
	require.Len(t, b.RecentlyDone, 2)
	assert.Equal(t, first.ID, b.RecentlyDone[0].ID, "recently_done must not be re-sorted")
	assert.Equal(t, second.ID, b.RecentlyDone[1].ID)
}

func TestEndOfWeek(t *testing.T) {
	tests := []struct {
		today workitem.Date
		want  workitem.Date
	}{
		{"2024-03-15", "2024-03-17"}, // Friday -> Sunday
		{"2024-03-11", "2024-03-17"}, // Monday -> Sunday
		{"2024-03-16", "2024-03-17"}, // Saturday -> Sunday
		{"2024-03-17", "2024-03-17"}, // Sunday -> today
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, endOfWeek(tt.today), "today=%s", tt.today)
	}
}

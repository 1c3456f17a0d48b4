// Package workitem defines the work item domain model and the status
// transition rules applied whenever an item is updated.
package workitem

import (
	"fmt"
	"time"
)

// Kind classifies what sort of work an item tracks.
type Kind string

const (
	KindBug     Kind = "bug"
	KindFeature Kind = "feature"
	KindTask    Kind = "task"
	KindIdea    Kind = "idea"
)

// Kinds lists all valid item kinds.
func Kinds() []Kind {
	return []Kind{KindBug, KindFeature, KindTask, KindIdea}
}

// IsValid checks if the kind is a supported value.
func (k Kind) IsValid() bool {
	switch k {
	case KindBug, KindFeature, KindTask, KindIdea:
		return true
	default:
		return false
	}
}

// Status represents the lifecycle state of a work item. An item is in
// exactly one status at a time; archived is reachable from any state.
type Status string

const (
	StatusInbox      Status = "inbox"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusInReview   Status = "in_review"
	StatusDone       Status = "done"
	StatusArchived   Status = "archived"
)

// Statuses lists all valid item statuses.
func Statuses() []Status {
	return []Status{StatusInbox, StatusTodo, StatusInProgress, StatusInReview, StatusDone, StatusArchived}
}

// IsValid checks if the status is a supported value.
func (s Status) IsValid() bool {
	switch s {
	case StatusInbox, StatusTodo, StatusInProgress, StatusInReview, StatusDone, StatusArchived:
		return true
	default:
		return false
	}
}

// Priority represents how urgent an item is.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// Priorities lists all valid priorities, most urgent first.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow, PriorityNone}
}

// IsValid checks if the priority is a supported value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow, PriorityNone:
		return true
	default:
		return false
	}
}

// Rank returns the sort rank for a priority. Lower is more urgent.
// Unknown priorities rank after "none" so malformed data sorts last.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 3
	case PriorityLow:
		return 4
	case PriorityNone:
		return 5
	default:
		return 6
	}
}

// Date is a calendar date stored as a zero-padded "YYYY-MM-DD" string.
// The format is an enforced invariant (ParseDate rejects anything else),
// which makes plain string comparison a correct date ordering.
type Date string

const dateLayout = "2006-01-02"

// ParseDate validates and normalizes a calendar date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	// time.Parse accepts the layout only when zero-padded, but round-trip
	// anyway so the stored form is always canonical.
	return Date(t.Format(dateLayout)), nil
}

// DateOf returns the calendar date of the given instant in its location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// IsZero reports whether no date is set.
func (d Date) IsZero() bool { return d == "" }

// Time returns the date at midnight UTC. Zero dates return the zero time.
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date(d.Time().AddDate(0, 0, n).Format(dateLayout))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d < other }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d > other }

// WorkItem is the unit of trackable work: a bug, feature, task, or idea.
//
// AssignedTo, DueDate, ProjectID, and Description use the empty string as
// null; CompletedAt and ArchivedAt use nil pointers. CompletedAt is non-nil
// if and only if Status is done — ComputeChange maintains the invariant.
type WorkItem struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Kind        Kind       `json:"kind"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	DueDate     Date       `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

package workitem

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MaxTitleLen is the maximum length of an item title in characters.
const MaxTitleLen = 500

// ValidationError reports a field value outside its allowed set.
// Callers surface it as a client error; it is never retried.
type ValidationError struct {
	Field   string   `json:"field"`
	Value   string   `json:"value"`
	Allowed []string `json:"allowed,omitempty"`
	Reason  string   `json:"reason"`
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q: allowed values are %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Patch is a partial update to a work item. Nil fields are left untouched.
// For nullable fields (assigned_to, due_date, project_id, description) an
// explicit empty string clears the value.
type Patch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Kind        *Kind     `json:"kind,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	AssignedTo  *string   `json:"assigned_to,omitempty"`
	DueDate     *Date     `json:"due_date,omitempty"`
	ProjectID   *string   `json:"project_id,omitempty"`
}

// IsEmpty reports whether the patch requests no field changes.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Kind == nil && p.Status == nil &&
		p.Priority == nil && p.AssignedTo == nil && p.DueDate == nil && p.ProjectID == nil
}

// Change is the complete set of writes derived from a Patch: the requested
// fields plus any derived timestamp changes, and the names of the fields
// that actually differ from the prior snapshot (for the activity log).
type Change struct {
	Patch

	// SetCompletedAt stamps completed_at when the item enters done.
	SetCompletedAt *time.Time
	// ClearCompletedAt clears completed_at when the item leaves done.
	ClearCompletedAt bool
	// SetArchivedAt stamps archived_at when the item enters archived.
	SetArchivedAt *time.Time
	// UpdatedAt is always stamped.
	UpdatedAt time.Time

	// Changed holds the sorted names of fields whose value differs from the
	// prior snapshot. updated_at is excluded.
	Changed []string
}

// ComputeChange derives the full set of field writes for a requested update.
//
// current must be the item snapshot read immediately before the call; now is
// the instant stamped into derived timestamps. The function is pure: it
// performs no I/O and does not mutate its inputs.
//
// Rules, in order:
//  1. assigning a previously unassigned item that is (or would remain) in
//     inbox moves it to todo
//  2. entering done stamps completed_at
//  3. leaving done clears completed_at
//  4. entering archived stamps archived_at
//  5. updated_at is always stamped
func ComputeChange(current WorkItem, patch Patch, now time.Time) (Change, error) {
	if err := validatePatch(patch); err != nil {
		return Change{}, err
	}

	out := Change{Patch: patch, UpdatedAt: now}

	// Assigning an inbox item promotes it to todo. A requested status other
	// than inbox wins over the promotion.
	if patch.AssignedTo != nil && *patch.AssignedTo != "" && current.AssignedTo == "" {
		effective := current.Status
		if patch.Status != nil {
			effective = *patch.Status
		}
		if effective == StatusInbox {
			todo := StatusTodo
			out.Status = &todo
		}
	}

	if out.Status != nil {
		switch {
		case *out.Status == StatusDone && current.Status != StatusDone:
			out.SetCompletedAt = &now
		case *out.Status != StatusDone && current.Status == StatusDone:
			out.ClearCompletedAt = true
		}
		if *out.Status == StatusArchived && current.Status != StatusArchived {
			out.SetArchivedAt = &now
		}
	}

	out.Changed = changedFields(current, out)

	return out, nil
}

// ApplyTo returns a new snapshot with the change applied. The input item is
// not modified.
func (c Change) ApplyTo(item WorkItem) WorkItem {
	if c.Title != nil {
		item.Title = strings.TrimSpace(*c.Title)
	}
	if c.Description != nil {
		item.Description = *c.Description
	}
	if c.Kind != nil {
		item.Kind = *c.Kind
	}
	if c.Status != nil {
		item.Status = *c.Status
	}
	if c.Priority != nil {
		item.Priority = *c.Priority
	}
	if c.AssignedTo != nil {
		item.AssignedTo = *c.AssignedTo
	}
	if c.DueDate != nil {
		item.DueDate = *c.DueDate
	}
	if c.ProjectID != nil {
		item.ProjectID = *c.ProjectID
	}
	if c.SetCompletedAt != nil {
		t := *c.SetCompletedAt
		item.CompletedAt = &t
	}
	if c.ClearCompletedAt {
		item.CompletedAt = nil
	}
	if c.SetArchivedAt != nil {
		t := *c.SetArchivedAt
		item.ArchivedAt = &t
	}
	item.UpdatedAt = c.UpdatedAt
	return item
}

func validatePatch(patch Patch) error {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return &ValidationError{Field: "title", Reason: "must not be empty"}
		}
		if len([]rune(title)) > MaxTitleLen {
			return &ValidationError{Field: "title", Reason: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
		}
	}
	if patch.Kind != nil && !patch.Kind.IsValid() {
		return &ValidationError{Field: "kind", Value: string(*patch.Kind), Allowed: kindStrings()}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return &ValidationError{Field: "status", Value: string(*patch.Status), Allowed: statusStrings()}
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return &ValidationError{Field: "priority", Value: string(*patch.Priority), Allowed: priorityStrings()}
	}
	if patch.DueDate != nil && !patch.DueDate.IsZero() {
		if _, err := ParseDate(string(*patch.DueDate)); err != nil {
			return &ValidationError{Field: "due_date", Value: string(*patch.DueDate), Reason: "must be YYYY-MM-DD"}
		}
	}
	return nil
}

// changedFields collects the names of fields whose written value differs
// from the prior snapshot. updated_at is deliberately excluded.
func changedFields(current WorkItem, c Change) []string {
	var changed []string

	if c.Title != nil && strings.TrimSpace(*c.Title) != current.Title {
		changed = append(changed, "title")
	}
	if c.Description != nil && *c.Description != current.Description {
		changed = append(changed, "description")
	}
	if c.Kind != nil && *c.Kind != current.Kind {
		changed = append(changed, "kind")
	}
	if c.Status != nil && *c.Status != current.Status {
		changed = append(changed, "status")
	}
	if c.Priority != nil && *c.Priority != current.Priority {
		changed = append(changed, "priority")
	}
	if c.AssignedTo != nil && *c.AssignedTo != current.AssignedTo {
		changed = append(changed, "assigned_to")
	}
	if c.DueDate != nil && *c.DueDate != current.DueDate {
		changed = append(changed, "due_date")
	}
	if c.ProjectID != nil && *c.ProjectID != current.ProjectID {
		changed = append(changed, "project_id")
	}
	if c.SetCompletedAt != nil && (current.CompletedAt == nil || !current.CompletedAt.Equal(*c.SetCompletedAt)) {
		changed = append(changed, "completed_at")
	}
	if c.ClearCompletedAt && current.CompletedAt != nil {
		changed = append(changed, "completed_at")
	}
	if c.SetArchivedAt != nil && (current.ArchivedAt == nil || !current.ArchivedAt.Equal(*c.SetArchivedAt)) {
		changed = append(changed, "archived_at")
	}

	sort.Strings(changed)
	return changed
}

func kindStrings() []string {
	kinds := Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func statusStrings() []string {
	statuses := Statuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func priorityStrings() []string {
	priorities := Priorities()
	out := make([]string, len(priorities))
	for i, p := range priorities {
		out[i] = string(p)
	}
	return out
}

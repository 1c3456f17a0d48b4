package workitem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string       { return &s }
func statusPtr(s Status) *Status    { return &s }
func kindPtr(k Kind) *Kind          { return &k }
func prioPtr(p Priority) *Priority  { return &p }
func datePtr(d Date) *Date          { return &d }

func baseItem() WorkItem {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return WorkItem{
		ID:        "item-1",
		Title:     "Fix login crash",
		Kind:      KindBug,
		Status:    StatusTodo,
		Priority:  PriorityNormal,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestComputeChange_DoneEntry(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	item := baseItem()
	change, err := ComputeChange(item, Patch{Status: statusPtr(StatusDone)}, now)
	require.NoError(t, err)

	require.NotNil(t, change.SetCompletedAt)
	assert.Equal(t, now, *change.SetCompletedAt)
	assert.False(t, change.ClearCompletedAt)
	assert.Equal(t, []string{"completed_at", "status"}, change.Changed)

	updated := change.ApplyTo(item)
	assert.Equal(t, StatusDone, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, now, *updated.CompletedAt)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestComputeChange_DoneEntryIdempotent(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	item := baseItem()
	first, err := ComputeChange(item, Patch{Status: statusPtr(StatusDone)}, now)
	require.NoError(t, err)
	done := first.ApplyTo(item)

	// Re-requesting done on an already-done item must not re-stamp.
	second, err := ComputeChange(done, Patch{Status: statusPtr(StatusDone)}, later)
	require.NoError(t, err)
	assert.Nil(t, second.SetCompletedAt)
	assert.False(t, second.ClearCompletedAt)
	assert.Empty(t, second.Changed)

	after := second.ApplyTo(done)
	require.NotNil(t, after.CompletedAt)
	assert.Equal(t, now, *after.CompletedAt, "completed_at must keep the original stamp")
}

func TestComputeChange_DoneToggleRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	item := baseItem()
	first, err := ComputeChange(item, Patch{Status: statusPtr(StatusDone)}, now)
	require.NoError(t, err)
	done := first.ApplyTo(item)
	require.NotNil(t, done.CompletedAt)

	second, err := ComputeChange(done, Patch{Status: statusPtr(StatusTodo)}, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, second.ClearCompletedAt)
	assert.Equal(t, []string{"completed_at", "status"}, second.Changed)

	reopened := second.ApplyTo(done)
	assert.Nil(t, reopened.CompletedAt)
	assert.Equal(t, StatusTodo, reopened.Status)
}

func TestComputeChange_ArchiveEntry(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	t.Run("stamps archived_at on entry", func(t *testing.T) {
		item := baseItem()
		change, err := ComputeChange(item, Patch{Status: statusPtr(StatusArchived)}, now)
		require.NoError(t, err)
		require.NotNil(t, change.SetArchivedAt)
		assert.Equal(t, now, *change.SetArchivedAt)
	})

	t.Run("archiving a done item clears completed_at", func(t *testing.T) {
		item := baseItem()
		completed := now.Add(-time.Hour)
		item.Status = StatusDone
		item.CompletedAt = &completed

		change, err := ComputeChange(item, Patch{Status: statusPtr(StatusArchived)}, now)
		require.NoError(t, err)
		assert.True(t, change.ClearCompletedAt)
		require.NotNil(t, change.SetArchivedAt)

		archived := change.ApplyTo(item)
		assert.Nil(t, archived.CompletedAt)
		require.NotNil(t, archived.ArchivedAt)
	})

	t.Run("no re-stamp when already archived", func(t *testing.T) {
		item := baseItem()
		archivedAt := now.Add(-time.Hour)
		item.Status = StatusArchived
		item.ArchivedAt = &archivedAt

		change, err := ComputeChange(item, Patch{Status: statusPtr(StatusArchived)}, now)
		require.NoError(t, err)
		assert.Nil(t, change.SetArchivedAt)
	})
}

func TestComputeChange_AutoTodoOnAssign(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	t.Run("assigning an inbox item promotes it to todo", func(t *testing.T) {
		item := baseItem()
		item.Status = StatusInbox
		item.AssignedTo = ""

		change, err := ComputeChange(item, Patch{AssignedTo: strPtr("user-42")}, now)
		require.NoError(t, err)
		require.NotNil(t, change.Status)
		assert.Equal(t, StatusTodo, *change.Status)
		assert.Equal(t, []string{"assigned_to", "status"}, change.Changed)
	})

	t.Run("no promotion outside inbox", func(t *testing.T) {
		item := baseItem() // status todo
		item.AssignedTo = ""

		change, err := ComputeChange(item, Patch{AssignedTo: strPtr("user-42")}, now)
		require.NoError(t, err)
		assert.Nil(t, change.Status)
		assert.Equal(t, []string{"assigned_to"}, change.Changed)
	})

	t.Run("no promotion when already assigned", func(t *testing.T) {
		item := baseItem()
		item.Status = StatusInbox
		item.AssignedTo = "user-1"

		change, err := ComputeChange(item, Patch{AssignedTo: strPtr("user-42")}, now)
		require.NoError(t, err)
		assert.Nil(t, change.Status)
	})

	t.Run("promotion overrides a requested inbox status", func(t *testing.T) {
		item := baseItem()
		item.Status = StatusInbox
		item.AssignedTo = ""

		change, err := ComputeChange(item, Patch{AssignedTo: strPtr("user-42"), Status: statusPtr(StatusInbox)}, now)
		require.NoError(t, err)
		require.NotNil(t, change.Status)
		assert.Equal(t, StatusTodo, *change.Status)
	})

	t.Run("other requested status wins over promotion", func(t *testing.T) {
		item := baseItem()
		item.Status = StatusInbox
		item.AssignedTo = ""

		change, err := ComputeChange(item, Patch{AssignedTo: strPtr("user-42"), Status: statusPtr(StatusInProgress)}, now)
		require.NoError(t, err)
		require.NotNil(t, change.Status)
		assert.Equal(t, StatusInProgress, *change.Status)
	})

	t.Run("clearing assignment never promotes", func(t *testing.T) {
		item := baseItem()
		item.Status = StatusInbox
		item.AssignedTo = ""

		change, err := ComputeChange(item, Patch{AssignedTo: strPtr("")}, now)
		require.NoError(t, err)
		assert.Nil(t, change.Status)
	})
}

func TestComputeChange_Validation(t *testing.T) {
	now := time.Now()
	item := baseItem()

	longTitle := make([]rune, MaxTitleLen+1)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name      string
		patch     Patch
		wantField string
	}{
		{"empty title", Patch{Title: strPtr("   ")}, "title"},
		{"title too long", Patch{Title: strPtr(string(longTitle))}, "title"},
		{"bad kind", Patch{Kind: kindPtr("epic")}, "kind"},
		{"bad status", Patch{Status: statusPtr("blocked")}, "status"},
		{"bad priority", Patch{Priority: prioPtr("critical")}, "priority"},
		{"bad due date", Patch{DueDate: datePtr("15/03/2024")}, "due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeChange(item, tt.patch, now)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	t.Run("enum error carries the allowed set", func(t *testing.T) {
		_, err := ComputeChange(item, Patch{Status: statusPtr("blocked")}, now)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Allowed, "in_progress")
		assert.Len(t, verr.Allowed, 6)
	})

	t.Run("title is trimmed on apply", func(t *testing.T) {
		change, err := ComputeChange(item, Patch{Title: strPtr("  padded  ")}, now)
		require.NoError(t, err)
		updated := change.ApplyTo(item)
		assert.Equal(t, "padded", updated.Title)
	})
}

func TestComputeChange_ChangedFields(t *testing.T) {
	now := time.Now()

	t.Run("unchanged values are not reported", func(t *testing.T) {
		item := baseItem()
		change, err := ComputeChange(item, Patch{
			Title:    strPtr(item.Title),
			Priority: prioPtr(item.Priority),
			DueDate:  datePtr("2024-04-01"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"due_date"}, change.Changed)
	})

	t.Run("updated_at alone reports nothing", func(t *testing.T) {
		item := baseItem()
		change, err := ComputeChange(item, Patch{}, now)
		require.NoError(t, err)
		assert.Empty(t, change.Changed)
		assert.Equal(t, now, change.UpdatedAt)
	})
}

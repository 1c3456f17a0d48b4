package bugbee

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/bugbee/internal/core/activity"
	"github.com/colonyops/bugbee/internal/core/config"
	"github.com/colonyops/bugbee/internal/core/eventbus"
	"github.com/colonyops/bugbee/internal/core/project"
	"github.com/colonyops/bugbee/internal/core/workitem"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/internal/data/stores"
)

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	bus := eventbus.New()

	return NewApp(
		cfg,
		database,
		bus,
		stores.NewWorkItemStore(database),
		stores.NewMemberStore(database),
		stores.NewProjectStore(database),
		stores.NewActivityStore(database),
		zerolog.Nop(),
	)
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("fills defaults and records activity", func(t *testing.T) {
		app := newTestApp(t, nil)

		item, err := app.Items.Create(ctx, workitem.WorkItem{Title: "  Fix login crash  "}, "m1")
		require.NoError(t, err)
		assert.Equal(t, "Fix login crash", item.Title)
		assert.Equal(t, workitem.StatusInbox, item.Status)
		assert.Equal(t, workitem.KindTask, item.Kind)
		assert.Equal(t, workitem.PriorityNone, item.Priority)

		entries, err := app.Items.Activity(ctx, item.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, activity.ActionCreated, entries[0].Action)
		assert.Equal(t, "m1", entries[0].Actor)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		app := newTestApp(t, nil)

		_, err := app.Items.Create(ctx, workitem.WorkItem{Title: "   "}, "")
		var verr *workitem.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		app := newTestApp(t, nil)

		_, err := app.Items.Create(ctx, workitem.WorkItem{Title: "X", Kind: "epic"}, "")
		var verr *workitem.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "kind", verr.Field)
		assert.Contains(t, verr.Allowed, "bug")
	})

	t.Run("rejects unknown project", func(t *testing.T) {
		app := newTestApp(t, nil)

		_, err := app.Items.Create(ctx, workitem.WorkItem{Title: "X", ProjectID: "ghost"}, "")
		var verr *workitem.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "project_id", verr.Field)
	})

	t.Run("applies automation rule without overriding explicit values", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Rules = []config.Rule{
			{Pattern: "web*", Assign: "m1", Priority: "high"},
		}
		app := newTestApp(t, &cfg)

		proj, err := app.Directory.CreateProject(ctx, project.Project{Key: "web", Name: "Web App"})
		require.NoError(t, err)

		item, err := app.Items.Create(ctx, workitem.WorkItem{Title: "Style nav", ProjectID: proj.ID}, "")
		require.NoError(t, err)
		assert.Equal(t, "m1", item.AssignedTo)
		assert.Equal(t, workitem.PriorityHigh, item.Priority)

		explicit, err := app.Items.Create(ctx, workitem.WorkItem{
			Title:      "Urgent fix",
			ProjectID:  proj.ID,
			AssignedTo: "m2",
			Priority:   workitem.PriorityUrgent,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "m2", explicit.AssignedTo)
		assert.Equal(t, workitem.PriorityUrgent, explicit.Priority)
	})
}

func TestItemService_QuickAdd(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)

	// Friday.
	app.Items.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}

	t.Run("strips trailing date phrase", func(t *testing.T) {
		item, err := app.Items.QuickAdd(ctx, "Pay invoices by tomorrow", "m1")
		require.NoError(t, err)
		assert.Equal(t, "Pay invoices", item.Title)
		assert.Equal(t, workitem.Date("2024-03-16"), item.DueDate)
	})

	t.Run("plain text becomes undated item", func(t *testing.T) {
		item, err := app.Items.QuickAdd(ctx, "Refactor the parser", "m1")
		require.NoError(t, err)
		assert.Equal(t, "Refactor the parser", item.Title)
		assert.True(t, item.DueDate.IsZero())
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("done transition stamps completed_at and logs fields", func(t *testing.T) {
		app := newTestApp(t, nil)

		now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		app.Items.now = func() time.Time { return now }

		item, err := app.Items.Create(ctx, workitem.WorkItem{Title: "Ship it", Status: workitem.StatusInProgress}, "m1")
		require.NoError(t, err)

		done := workitem.StatusDone
		updated, err := app.Items.Update(ctx, item.ID, workitem.Patch{Status: &done}, "m1")
		require.NoError(t, err)
		assert.Equal(t, workitem.StatusDone, updated.Status)
		require.NotNil(t, updated.CompletedAt)
		assert.Equal(t, now, *updated.CompletedAt)

		entries, err := app.Items.Activity(ctx, item.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, activity.ActionUpdated, entries[0].Action)
		assert.Equal(t, []string{"completed_at", "status"}, entries[0].ChangedFields)
	})

	t.Run("publishes completed event", func(t *testing.T) {
		app := newTestApp(t, nil)

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go app.Bus.Run(runCtx)

		got := make(chan eventbus.ItemCompletedPayload, 1)
		app.Bus.SubscribeItemCompleted(func(p eventbus.ItemCompletedPayload) {
			got <- p
		})

		item, err := app.Items.Create(ctx, workitem.WorkItem{Title: "Ship it"}, "m1")
		require.NoError(t, err)

		done := workitem.StatusDone
		_, err = app.Items.Update(ctx, item.ID, workitem.Patch{Status: &done}, "m1")
		require.NoError(t, err)

		select {
		case p := <-got:
			assert.Equal(t, item.ID, p.Item.ID)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for completed event")
		}
	})

	t.Run("no-change patch skips activity", func(t *testing.T) {
		app := newTestApp(t, nil)

		item, err := app.Items.Create(ctx, workitem.WorkItem{Title: "Stable"}, "m1")
		require.NoError(t, err)

		title := "Stable"
		_, err = app.Items.Update(ctx, item.ID, workitem.Patch{Title: &title}, "m1")
		require.NoError(t, err)

		entries, err := app.Items.Activity(ctx, item.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, activity.ActionCreated, entries[0].Action)
	})

	t.Run("unknown item", func(t *testing.T) {
		app := newTestApp(t, nil)

		done := workitem.StatusDone
		_, err := app.Items.Update(ctx, "ghost", workitem.Patch{Status: &done}, "")
		assert.ErrorIs(t, err, workitem.ErrNotFound)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)

	item, err := app.Items.Create(ctx, workitem.WorkItem{Title: "Doomed"}, "m1")
	require.NoError(t, err)

	require.NoError(t, app.Items.Delete(ctx, item.ID))

	_, err = app.Items.Get(ctx, item.ID)
	assert.ErrorIs(t, err, workitem.ErrNotFound)

	_, err = app.Items.Activity(ctx, item.ID)
	assert.ErrorIs(t, err, workitem.ErrNotFound)
}

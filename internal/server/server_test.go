package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/bugbee/internal/bugbee"
	"github.com/colonyops/bugbee/internal/core/config"
	"github.com/colonyops/bugbee/internal/core/eventbus"
	"github.com/colonyops/bugbee/internal/core/workitem"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/internal/data/stores"
)

const testToken = "test-token"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Server.AuthToken = testToken
	cfg.DataDir = t.TempDir()

	database, err := db.Open(cfg.DataDir, db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	app := bugbee.NewApp(
		&cfg,
		database,
		eventbus.New(),
		stores.NewWorkItemStore(database),
		stores.NewMemberStore(database),
		stores.NewProjectStore(database),
		stores.NewActivityStore(database),
		zerolog.Nop(),
	)

	srv := httptest.NewServer(New(app, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("X-Actor", "tester")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestServer_Auth(t *testing.T) {
	srv := newTestServer(t)

	t.Run("healthz is open", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/api/v1/items")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/items", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer wrong")
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("request id echoed", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodGet, "/api/v1/items", nil)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})
}

func TestServer_ItemLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/items", map[string]any{
		"title": "Fix login crash",
		"kind":  "bug",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[workitem.WorkItem](t, resp)
	assert.Equal(t, workitem.StatusInbox, created.Status)

	// Assigning the inbox item promotes it to todo.
	resp = doJSON(t, srv, http.MethodPatch, "/api/v1/items/"+created.ID, map[string]any{
		"assigned_to": "m1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[workitem.WorkItem](t, resp)
	assert.Equal(t, workitem.StatusTodo, updated.Status)
	assert.Equal(t, "m1", updated.AssignedTo)

	// Completing stamps completed_at.
	resp = doJSON(t, srv, http.MethodPatch, "/api/v1/items/"+created.ID, map[string]any{
		"status": "done",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	done := decode[workitem.WorkItem](t, resp)
	require.NotNil(t, done.CompletedAt)

	// The activity trail recorded each mutation.
	resp = doJSON(t, srv, http.MethodGet, "/api/v1/items/"+created.ID+"/activity", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := decode[[]map[string]any](t, resp)
	assert.Len(t, entries, 3)

	resp = doJSON(t, srv, http.MethodDelete, "/api/v1/items/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/api/v1/items/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Validation(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/items", map[string]any{
		"title": "Bad status",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[workitem.WorkItem](t, resp)

	resp = doJSON(t, srv, http.MethodPatch, "/api/v1/items/"+created.ID, map[string]any{
		"status": "finished",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "status", body["field"])
	assert.Len(t, body["allowed"], 6)
}

func TestServer_QuickAdd(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/items/quick", map[string]any{
		"text": "Pay invoices by tomorrow",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode[workitem.WorkItem](t, resp)
	assert.Equal(t, "Pay invoices", item.Title)
	assert.False(t, item.DueDate.IsZero())
}

func TestServer_Directory(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/members", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	m := decode[map[string]any](t, resp)
	memberID, _ := m["id"].(string)
	require.NotEmpty(t, memberID)

	// Duplicate email conflicts.
	resp = doJSON(t, srv, http.MethodPost, "/api/v1/members", map[string]any{
		"name":  "Ada Again",
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/v1/projects", map[string]any{
		"key":  "web",
		"name": "Web App",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	projects := decode[[]map[string]any](t, resp)
	assert.Len(t, projects, 1)

	// Focus board for the member includes assigned open items.
	for i := 0; i < 2; i++ {
		resp = doJSON(t, srv, http.MethodPost, "/api/v1/items", map[string]any{
			"title":       fmt.Sprintf("Task %d", i),
			"assigned_to": memberID,
			"status":      "todo",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = doJSON(t, srv, http.MethodGet, "/api/v1/members/"+memberID+"/focus", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buckets := decode[map[string][]map[string]any](t, resp)
	assert.Len(t, buckets["other"], 2)

	resp = doJSON(t, srv, http.MethodGet, "/api/v1/members/ghost/focus", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Package server exposes the bugbee API over HTTP for the web front end.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/bugbee/internal/bugbee"
)

// Server is the HTTP API server. Construct with New, then Start/Shutdown.
type Server struct {
	app        *bugbee.App
	httpServer *http.Server
	listener   net.Listener
	listen     string
	authToken  string
	log        zerolog.Logger
}

// New creates a server bound to the app. The listen address and auth token
// come from the app config.
func New(app *bugbee.App, log zerolog.Logger) *Server {
	s := &Server{
		app:       app,
		listen:    app.Config.Server.Listen,
		authToken: app.Config.Server.AuthToken,
		log:       log.With().Str("component", "server").Logger(),
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped route handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	mux.HandleFunc("POST /api/v1/items", s.handleCreateItem)
	mux.HandleFunc("POST /api/v1/items/quick", s.handleQuickAdd)
	mux.HandleFunc("GET /api/v1/items", s.handleListItems)
	mux.HandleFunc("GET /api/v1/items/{id}", s.handleGetItem)
	mux.HandleFunc("PATCH /api/v1/items/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /api/v1/items/{id}", s.handleDeleteItem)
	mux.HandleFunc("GET /api/v1/items/{id}/activity", s.handleItemActivity)

	mux.HandleFunc("POST /api/v1/members", s.handleCreateMember)
	mux.HandleFunc("GET /api/v1/members", s.handleListMembers)
	mux.HandleFunc("GET /api/v1/members/{id}", s.handleGetMember)
	mux.HandleFunc("GET /api/v1/members/{id}/focus", s.handleMemberFocus)

	mux.HandleFunc("POST /api/v1/projects", s.handleCreateProject)
	mux.HandleFunc("GET /api/v1/projects", s.handleListProjects)
	mux.HandleFunc("GET /api/v1/projects/{id}", s.handleGetProject)

	var handler http.Handler = mux
	handler = s.authMiddleware(handler)
	handler = s.accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)

	return handler
}

// Start binds the listener and begins serving. It returns once the server
// has been up for a grace period, or with the startup error.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener

	if s.authToken == "" {
		s.log.Warn().Msg("no auth token configured, API is unauthenticated")
	}
	s.log.Info().Str("addr", listener.Addr().String()).Msg("starting api server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("api server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down api server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

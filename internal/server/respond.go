package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/colonyops/bugbee/internal/core/member"
	"github.com/colonyops/bugbee/internal/core/project"
	"github.com/colonyops/bugbee/internal/core/workitem"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes. Validation failures
// carry the offending field and its allowed values so the front end can
// highlight the input.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *workitem.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Message: verr.Error(),
			Field:   verr.Field,
			Allowed: verr.Allowed,
		})
	case errors.Is(err, workitem.ErrNotFound),
		errors.Is(err, member.ErrNotFound),
		errors.Is(err, project.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: err.Error()})
	case errors.Is(err, member.ErrDuplicate),
		errors.Is(err, project.ErrDuplicate):
		writeJSON(w, http.StatusConflict, errorBody{Message: err.Error()})
	default:
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "internal error"})
	}
}

// decodeJSON parses the request body into v. Returns false after writing a
// 400 when the body is malformed.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// actor returns the acting member for audit attribution, if the client
// identified one.
func actor(r *http.Request) string {
	return r.Header.Get("X-Actor")
}

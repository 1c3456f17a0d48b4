package server

import (
	"net/http"

	"github.com/colonyops/bugbee/internal/core/member"
	"github.com/colonyops/bugbee/internal/core/project"
)

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var m member.Member
	if !s.decodeJSON(w, r, &m) {
		return
	}

	created, err := s.app.Directory.CreateMember(r.Context(), m)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.app.Directory.ListMembers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (s *Server) handleGetMember(w http.ResponseWriter, r *http.Request) {
	m, err := s.app.Directory.GetMember(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleMemberFocus(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.app.Focus.ForMember(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var p project.Project
	if !s.decodeJSON(w, r, &p) {
		return
	}

	created, err := s.app.Directory.CreateProject(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.app.Directory.ListProjects(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.app.Directory.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

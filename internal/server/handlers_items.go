package server

import (
	"net/http"

	"github.com/colonyops/bugbee/internal/core/workitem"
)

type createItemRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Kind        workitem.Kind     `json:"kind"`
	Status      workitem.Status   `json:"status"`
	Priority    workitem.Priority `json:"priority"`
	AssignedTo  string            `json:"assigned_to"`
	DueDate     workitem.Date     `json:"due_date"`
	ProjectID   string            `json:"project_id"`
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	item, err := s.app.Items.Create(r.Context(), workitem.WorkItem{
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		Status:      req.Status,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		ProjectID:   req.ProjectID,
	}, actor(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

type quickAddRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleQuickAdd(w http.ResponseWriter, r *http.Request) {
	var req quickAddRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	item, err := s.app.Items.QuickAdd(r.Context(), req.Text, actor(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := workitem.ListFilter{
		Status:     workitem.Status(q.Get("status")),
		AssignedTo: q.Get("assigned_to"),
		ProjectID:  q.Get("project_id"),
		Kind:       workitem.Kind(q.Get("kind")),
	}

	items, err := s.app.Items.List(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.app.Items.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var patch workitem.Patch
	if !s.decodeJSON(w, r, &patch) {
		return
	}

	item, err := s.app.Items.Update(r.Context(), r.PathValue("id"), patch, actor(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Items.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleItemActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := s.app.Items.Activity(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

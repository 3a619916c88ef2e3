// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// GroupHandler handles HTTP requests for board columns.
type GroupHandler struct {
	svc ports.BoardService
}

// NewGroupHandler creates a new GroupHandler with the given service port.
func NewGroupHandler(svc ports.BoardService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// ListGroups handles GET /api/v1/groups.
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToGroupListResponse(h.svc.SortedGroups()))
}

// CreateGroup handles POST /api/v1/groups.
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddGroup(r.Context(), req.Name, req.Position)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToGroupResponse(created))
}

// UpdateGroup handles PATCH /api/v1/groups/{id}. Name and position are
// written together, so a failed save leaves the group untouched.
func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ok, err := h.svc.UpdateGroup(r.Context(), id, req.Name, req.Position)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, r, "group", id)
		return
	}

	g, ok := h.svc.Group(id)
	if !ok {
		writeNotFound(w, r, "group", id)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToGroupResponse(g))
}

// DeleteGroup handles DELETE /api/v1/groups/{id}. Todos in the group are
// removed with it.
func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := h.svc.RemoveGroup(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, r, "group", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListGroupTodos handles GET /api/v1/groups/{id}/todos. The view filter is
// not applied.
func (h *GroupHandler) ListGroupTodos(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, ok := h.svc.Group(id); !ok {
		writeNotFound(w, r, "group", id)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(h.svc.TodosForGroup(id), ""))
}

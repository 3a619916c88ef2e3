package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// TodoHandler handles HTTP requests for todos, the view filter, and board
// statistics.
type TodoHandler struct {
	svc ports.BoardService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.BoardService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /api/v1/todos. Only todos matching the current view
// filter are returned.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(h.svc.FilteredTodos(), h.svc.Filter()))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddTodo(r.Context(), req.Text, req.GroupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, ok := h.svc.Todo(id)
	if !ok {
		writeNotFound(w, r, "todo", id)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PATCH /api/v1/todos/{id}. Omitted fields keep their
// current value.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, ok := h.svc.Todo(id)
	if !ok {
		writeNotFound(w, r, "todo", id)
		return
	}

	text, description := current.Text, current.Description
	if req.Text != nil {
		text = *req.Text
	}
	if req.Description != nil {
		description = *req.Description
	}

	ok, err := h.svc.UpdateTodo(r.Context(), id, text, description)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, r, "todo", id)
		return
	}

	h.writeTodo(w, r, id, http.StatusOK)
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := h.svc.RemoveTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, r, "todo", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTodo handles POST /api/v1/todos/{id}/toggle.
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := h.svc.ToggleTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, r, "todo", id)
		return
	}

	h.writeTodo(w, r, id, http.StatusOK)
}

// MoveTodo handles POST /api/v1/todos/{id}/move.
func (h *TodoHandler) MoveTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.MoveTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ok, err := h.svc.MoveTodo(r.Context(), id, req.GroupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		if _, exists := h.svc.Todo(id); exists {
			writeNotFound(w, r, "group", req.GroupID)
			return
		}
		writeNotFound(w, r, "todo", id)
		return
	}

	h.writeTodo(w, r, id, http.StatusOK)
}

// ClearCompleted handles POST /api/v1/todos/clear-completed.
func (h *TodoHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.ClearCompleted(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ClearCompletedResponse{Removed: removed})
}

// GetFilter handles GET /api/v1/filter.
func (h *TodoHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.FilterResponse{Filter: h.svc.Filter().String()})
}

// SetFilter handles PUT /api/v1/filter.
func (h *TodoHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.SetFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.svc.SetFilter(todo.Filter(req.Filter))
	writeJSON(w, r, http.StatusOK, dto.FilterResponse{Filter: h.svc.Filter().String()})
}

// GetStats handles GET /api/v1/stats.
func (h *TodoHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToStatsResponse(h.svc.Stats()))
}

// writeTodo re-reads a todo after a mutation and writes it.
func (h *TodoHandler) writeTodo(w http.ResponseWriter, r *http.Request, id string, status int) {
	t, ok := h.svc.Todo(id)
	if !ok {
		writeNotFound(w, r, "todo", id)
		return
	}
	writeJSON(w, r, status, dto.ToTodoResponse(t))
}

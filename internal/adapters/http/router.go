// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	groupHandler *handlers.GroupHandler,
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Groups.
		r.Get("/groups", groupHandler.ListGroups)
		r.Post("/groups", groupHandler.CreateGroup)
		r.Patch("/groups/{id}", groupHandler.UpdateGroup)
		r.Delete("/groups/{id}", groupHandler.DeleteGroup)
		r.Get("/groups/{id}/todos", groupHandler.ListGroupTodos)

		// Todos.
		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Post("/todos/clear-completed", todoHandler.ClearCompleted)
		r.Get("/todos/{id}", todoHandler.GetTodo)
		r.Patch("/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)
		r.Post("/todos/{id}/toggle", todoHandler.ToggleTodo)
		r.Post("/todos/{id}/move", todoHandler.MoveTodo)

		// View state.
		r.Get("/filter", todoHandler.GetFilter)
		r.Put("/filter", todoHandler.SetFilter)
		r.Get("/stats", todoHandler.GetStats)
	})

	return r
}

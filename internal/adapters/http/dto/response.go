// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
)

// GroupResponse represents a single group in HTTP responses.
type GroupResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// GroupListResponse represents the ordered list of groups.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Count  int             `json:"count"`
}

// ToGroupResponse converts a domain Group to an HTTP response DTO.
func ToGroupResponse(g *group.Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Position:  g.Position,
		CreatedAt: g.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: g.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ToGroupListResponse converts groups to a list response, keeping order.
func ToGroupListResponse(groups []group.Group) GroupListResponse {
	items := make([]GroupResponse, len(groups))
	for i := range groups {
		items[i] = ToGroupResponse(&groups[i])
	}
	return GroupListResponse{Groups: items, Count: len(items)}
}

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	GroupID     string `json:"groupId"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// TodoListResponse represents a list of todos. Filter is set when the list
// was produced under a view mode.
type TodoListResponse struct {
	Todos  []TodoResponse `json:"todos"`
	Count  int            `json:"count"`
	Filter string         `json:"filter,omitempty"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Text:        t.Text,
		GroupID:     t.GroupID,
		Completed:   t.Completed,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ToTodoListResponse converts todos to a list response, keeping order.
func ToTodoListResponse(todos []todo.Todo, filter todo.Filter) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{Todos: items, Count: len(items), Filter: filter.String()}
}

// FilterResponse reports the current view mode.
type FilterResponse struct {
	Filter string `json:"filter"`
}

// StatsResponse reports todo counts over the whole board.
type StatsResponse struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// ToStatsResponse converts domain stats to an HTTP response DTO.
func ToStatsResponse(s todo.Stats) StatsResponse {
	return StatsResponse{Total: s.Total, Active: s.Active, Completed: s.Completed}
}

// ClearCompletedResponse reports how many todos were removed.
type ClearCompletedResponse struct {
	Removed int `json:"removed"`
}

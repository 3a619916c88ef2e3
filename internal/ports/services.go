package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
)

// BoardService defines the service port for the kanban board.
// Implemented by the application layer; called by inbound adapters (handlers, CLI).
//
// Mutations return (false, nil) when the referenced entity does not exist,
// a *domain.ValidationError when input is invalid and a *domain.StorageError
// when the change could not be persisted. A mutation that returns a
// StorageError leaves the board unchanged.
type BoardService interface {
	// Initialize loads persisted state. It must be called once before any
	// other method. An empty board receives a single default group.
	Initialize(ctx context.Context) error

	// AddGroup creates a group. A nil position appends after the last group.
	AddGroup(ctx context.Context, name string, position *int) (*group.Group, error)

	// RemoveGroup deletes a group and every todo in it, then renumbers the
	// remaining groups to positions 0..n-1 in their current order.
	RemoveGroup(ctx context.Context, id string) (bool, error)

	// RenameGroup changes a group's name.
	RenameGroup(ctx context.Context, id, name string) (bool, error)

	// RepositionGroup changes a group's position.
	RepositionGroup(ctx context.Context, id string, position int) (bool, error)

	// UpdateGroup applies whichever of name and position is non-nil in a
	// single write.
	UpdateGroup(ctx context.Context, id string, name *string, position *int) (bool, error)

	// AddTodo creates a todo in an existing group. An unknown group is a
	// validation failure on field "groupId".
	AddTodo(ctx context.Context, text, groupID string) (*todo.Todo, error)

	// RemoveTodo deletes a todo.
	RemoveTodo(ctx context.Context, id string) (bool, error)

	// MoveTodo reassigns a todo to another existing group. Moving a todo to
	// its current group succeeds without persisting or touching UpdatedAt.
	MoveTodo(ctx context.Context, id, groupID string) (bool, error)

	// UpdateTodo replaces a todo's text and description.
	UpdateTodo(ctx context.Context, id, text, description string) (bool, error)

	// ToggleTodo flips a todo's completion state.
	ToggleTodo(ctx context.Context, id string) (bool, error)

	// ClearCompleted removes every completed todo and returns how many were removed.
	ClearCompleted(ctx context.Context) (int, error)

	// SetFilter changes the view mode. Unknown modes are ignored and
	// reported with false.
	SetFilter(mode todo.Filter) bool

	// Filter returns the current view mode.
	Filter() todo.Filter

	// FilteredTodos returns the todos matching the current view mode.
	FilteredTodos() []todo.Todo

	// TodosForGroup returns every todo in one group, ignoring the view mode.
	TodosForGroup(groupID string) []todo.Todo

	// SortedGroups returns groups ordered by ascending position.
	SortedGroups() []group.Group

	// Stats returns totals over all todos, ignoring the view mode.
	Stats() todo.Stats

	// Group returns a single group by ID.
	Group(id string) (*group.Group, bool)

	// Todo returns a single todo by ID.
	Todo(id string) (*todo.Todo, bool)
}

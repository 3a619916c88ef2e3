package dto

import (
	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// Request validation covers presence and shape only. Length limits are
// enforced by the domain entities.

// CreateGroupRequest represents the JSON body for creating a group.
// Position is optional; when omitted the group is appended.
type CreateGroupRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Position *int   `json:"position,omitempty"`
}

// Validate checks the request shape.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateGroupRequest) Validate() error {
	return validateStruct(r)
}

// UpdateGroupRequest represents the JSON body for renaming and/or
// repositioning a group. At least one field must be set.
type UpdateGroupRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Position *int    `json:"position,omitempty"`
}

// Validate checks that at least one field is present and valid.
func (r *UpdateGroupRequest) Validate() error {
	if r.Name == nil && r.Position == nil {
		return domain.NewValidationError("body", "must set name or position")
	}
	return validateStruct(r)
}

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Text    string `json:"text" validate:"notblank"`
	GroupID string `json:"groupId" validate:"required"`
}

// Validate checks the request shape.
func (r *CreateTodoRequest) Validate() error {
	return validateStruct(r)
}

// UpdateTodoRequest represents the JSON body for editing a todo. Omitted
// fields keep their current value.
type UpdateTodoRequest struct {
	Text        *string `json:"text,omitempty" validate:"omitnil,notblank"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that at least one field is present and valid.
func (r *UpdateTodoRequest) Validate() error {
	if r.Text == nil && r.Description == nil {
		return domain.NewValidationError("body", "must set text or description")
	}
	return validateStruct(r)
}

// MoveTodoRequest represents the JSON body for moving a todo to a group.
type MoveTodoRequest struct {
	GroupID string `json:"groupId" validate:"required"`
}

// Validate checks the request shape.
func (r *MoveTodoRequest) Validate() error {
	return validateStruct(r)
}

// SetFilterRequest represents the JSON body for changing the view mode.
type SetFilterRequest struct {
	Filter string `json:"filter" validate:"required,oneof=all active completed"`
}

// Validate checks that the filter is a known mode.
func (r *SetFilterRequest) Validate() error {
	return validateStruct(r)
}

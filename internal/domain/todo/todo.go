// Package todo defines the Todo entity, its persisted record shape, the
// view filter modes, and completion statistics.
package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// MaxTextLength is the maximum number of characters in trimmed todo text.
const MaxTextLength = 200

// Todo represents a single task belonging to exactly one group.
type Todo struct {
	ID          string
	Text        string
	GroupID     string
	Completed   bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Option customizes a Todo built by New.
type Option func(*Todo)

// WithCompleted sets the initial completion state.
func WithCompleted(completed bool) Option {
	return func(t *Todo) { t.Completed = completed }
}

// WithDescription sets the initial description.
func WithDescription(description string) Option {
	return func(t *Todo) { t.Description = description }
}

// WithID uses the given identifier instead of generating one. An empty id is
// ignored.
func WithID(id string) Option {
	return func(t *Todo) {
		if id != "" {
			t.ID = id
		}
	}
}

// WithTime sets both timestamps.
func WithTime(now time.Time) Option {
	return func(t *Todo) {
		t.CreatedAt = now
		t.UpdatedAt = now
	}
}

// New creates a todo in the given group. Text is trimmed and must be 1-200
// characters; groupID must be non-empty. New does not check that the group
// exists.
func New(text, groupID string, opts ...Option) (*Todo, error) {
	trimmed, err := ValidateText(text)
	if err != nil {
		return nil, err
	}
	if err := validateGroupID(groupID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &Todo{
		ID:        uuid.NewString(),
		Text:      trimmed,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// UpdateText validates and applies new text.
func (t *Todo) UpdateText(text string, now time.Time) error {
	trimmed, err := ValidateText(text)
	if err != nil {
		return err
	}
	t.Text = trimmed
	t.UpdatedAt = now
	return nil
}

// UpdateDescription replaces the description. Descriptions are free text.
func (t *Todo) UpdateDescription(description string, now time.Time) {
	t.Description = description
	t.UpdatedAt = now
}

// ToggleCompletion flips the completion state.
func (t *Todo) ToggleCompletion(now time.Time) {
	t.Completed = !t.Completed
	t.UpdatedAt = now
}

// MoveTo reassigns the todo to another group.
func (t *Todo) MoveTo(groupID string, now time.Time) error {
	if err := validateGroupID(groupID); err != nil {
		return err
	}
	t.GroupID = groupID
	t.UpdatedAt = now
	return nil
}

// ValidateText trims text and checks the length rule, returning the trimmed
// value. Failures are reported on field "text".
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", domain.NewValidationError("text", domain.MsgRequired)
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return "", domain.NewValidationError("text", domain.MsgTooLong(MaxTextLength))
	}
	return trimmed, nil
}

func validateGroupID(groupID string) error {
	if strings.TrimSpace(groupID) == "" {
		return domain.NewValidationError("groupId", domain.MsgRequired)
	}
	return nil
}

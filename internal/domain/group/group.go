// Package group defines the Group entity: a named, ordered column that owns
// zero or more todo items by identifier.
package group

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

const (
	// MaxNameLength is the maximum number of characters in a trimmed name.
	MaxNameLength = 50

	// DefaultName is the name of the group created on first run.
	DefaultName = "To Do"
)

// Group represents one column of the board.
type Group struct {
	ID        string
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a group with a fresh identifier. The name is trimmed and must
// be 1-50 characters. Negative positions are substituted with 0.
func New(name string, position int, now time.Time) (*Group, error) {
	trimmed, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Group{
		ID:        uuid.NewString(),
		Name:      trimmed,
		Position:  NormalizePosition(position),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename validates and applies a new name.
func (g *Group) Rename(name string, now time.Time) error {
	trimmed, err := ValidateName(name)
	if err != nil {
		return err
	}
	g.Name = trimmed
	g.UpdatedAt = now
	return nil
}

// Reposition moves the group to the given position. Negative positions are
// substituted with 0.
func (g *Group) Reposition(position int, now time.Time) {
	g.Position = NormalizePosition(position)
	g.UpdatedAt = now
}

// ValidateName trims name and checks the length rule, returning the trimmed
// value. Failures are reported as a *domain.ValidationError on field "name".
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", domain.NewValidationError("name", domain.MsgRequired)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return "", domain.NewValidationError("name", domain.MsgTooLong(MaxNameLength))
	}
	return trimmed, nil
}

// NormalizePosition is the default-substitution policy for positions:
// anything below zero becomes 0.
func NormalizePosition(position int) int {
	if position < 0 {
		return 0
	}
	return position
}

// Sort orders groups by position ascending. Ties keep their relative order.
func Sort(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Position < groups[j].Position
	})
}

// Package uow provides a unit of work for staging persistence writes and
// committing them as one step.
//
// The List Manager mutates its in-memory collections first, then stages one
// action per affected namespace and commits:
//
//	w := uow.New()
//	_ = w.AddAction(uow.Func("save groups", saveGroups, restoreGroups))
//	if err := w.Commit(ctx); err != nil {
//		// completed actions were already rolled back
//	}
//
// Actions staged with AddGroup execute concurrently. If any staged item
// fails, every previously completed item is rolled back in reverse order.
package uow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// Compile-time check that funcAction implements domain.Action.
var _ domain.Action = (*funcAction)(nil)

// ErrAlreadyCommitted is returned when AddAction, AddGroup, or Commit is
// called on a UnitOfWork that has already been committed.
var ErrAlreadyCommitted = errors.New("uow: unit of work already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction or
// AddGroup.
var ErrNilAction = errors.New("uow: nil action")

// RollbackTimeout bounds the undo writes that follow a failed commit.
const RollbackTimeout = 5 * time.Second

// rollbackContext detaches from the caller's cancellation so a commit that
// failed on an expired deadline can still undo the writes that landed.
// Values such as the request logger are kept.
func rollbackContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), RollbackTimeout)
}

// UnitOfWork is a single-use queue of staged actions.
type UnitOfWork struct {
	mu        sync.Mutex
	items     []actionItem
	committed bool
}

// New creates an empty UnitOfWork.
func New() *UnitOfWork {
	return &UnitOfWork{}
}

// Len reports the number of staged items. An action group counts as one item.
func (w *UnitOfWork) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Func builds an Action from an execute and a rollback function. A nil
// rollback is a no-op.
func Func(desc string, execute, rollback func(ctx context.Context) error) domain.Action {
	return &funcAction{desc: desc, exec: execute, undo: rollback}
}

type funcAction struct {
	desc string
	exec func(ctx context.Context) error
	undo func(ctx context.Context) error
}

func (a *funcAction) Execute(ctx context.Context) error { return a.exec(ctx) }

func (a *funcAction) Rollback(ctx context.Context) error {
	if a.undo == nil {
		return nil
	}
	return a.undo(ctx)
}

func (a *funcAction) Description() string { return a.desc }

package uow

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// actionItem is one entry in the commit queue.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

type singleAction struct {
	action domain.Action
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// actionGroup writes several keys at once. The first failure cancels the
// siblings still running; the ones that finished are undone newest first.
type actionGroup struct {
	actions   []domain.Action
	completed []domain.Action
}

func (g *actionGroup) execute(ctx context.Context) error {
	g.completed = g.completed[:0]
	if len(g.actions) == 0 {
		return nil
	}

	done := make([]bool, len(g.actions))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, a := range g.actions {
		eg.Go(func() error {
			if err := a.Execute(egCtx); err != nil {
				return err
			}
			done[i] = true
			return nil
		})
	}
	err := eg.Wait()

	for i, ok := range done {
		if ok {
			g.completed = append(g.completed, g.actions[i])
		}
	}
	if err != nil {
		undoCtx, cancel := rollbackContext(ctx)
		defer cancel()
		g.rollbackCompleted(undoCtx)
		return err
	}
	return nil
}

func (g *actionGroup) rollback(ctx context.Context) error {
	g.rollbackCompleted(ctx)
	return nil
}

// rollbackCompleted keeps going past rollback failures; each is logged.
func (g *actionGroup) rollbackCompleted(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for i := len(g.completed) - 1; i >= 0; i-- {
		action := g.completed[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "undo failed",
				slog.String("desc", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}

func (g *actionGroup) description() string {
	switch len(g.actions) {
	case 0:
		return "no-op"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("%s (+%d more)", g.actions[0].Description(), len(g.actions)-1)
	}
}

// AddAction stages a single action for execution by Commit.
// Returns ErrNilAction if action is nil, or ErrAlreadyCommitted if the
// UnitOfWork has already been committed.
func (w *UnitOfWork) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.committed {
		return ErrAlreadyCommitted
	}
	w.items = append(w.items, &singleAction{action: action})
	return nil
}

// AddGroup stages actions that Commit runs concurrently as one item.
// Returns ErrNilAction if any action is nil, or ErrAlreadyCommitted if the
// UnitOfWork has already been committed.
func (w *UnitOfWork) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.committed {
		return ErrAlreadyCommitted
	}
	w.items = append(w.items, &actionGroup{actions: actions})
	return nil
}

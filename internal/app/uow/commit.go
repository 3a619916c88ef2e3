package uow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// Commit runs the staged steps in order. When a step fails, the steps that
// already ran are undone newest first and the failure comes back wrapped
// with the step's description. Undo runs even when ctx is already done and
// its failures are only logged.
//
// A UnitOfWork commits once; a second call returns ErrAlreadyCommitted.
func (w *UnitOfWork) Commit(ctx context.Context) error {
	w.mu.Lock()
	if w.committed {
		w.mu.Unlock()
		return ErrAlreadyCommitted
	}
	w.committed = true
	items := w.items
	w.mu.Unlock()

	logger := logging.FromContext(ctx).With(slog.Int("steps", len(items)))

	for i, item := range items {
		logger.DebugContext(ctx, "applying step",
			slog.Int("step", i+1),
			slog.String("desc", item.description()),
		)
		if err := item.execute(ctx); err != nil {
			logger.WarnContext(ctx, "step failed, undoing earlier steps",
				slog.Int("step", i+1),
				slog.String("desc", item.description()),
				slog.Any("error", err),
			)
			undoCtx, cancel := rollbackContext(ctx)
			undo(undoCtx, logger, items[:i])
			cancel()
			return fmt.Errorf("%s: %w", item.description(), err)
		}
	}
	return nil
}

// undo rolls back applied in reverse.
func undo(ctx context.Context, logger *slog.Logger, applied []actionItem) {
	for i := len(applied) - 1; i >= 0; i-- {
		item := applied[i]
		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "undo failed",
				slog.Int("step", i+1),
				slog.String("desc", item.description()),
				slog.Any("error", err),
			)
			continue
		}
		logger.DebugContext(ctx, "step undone",
			slog.Int("step", i+1),
			slog.String("desc", item.description()),
		)
	}
}

// Package main is the kanban command-line client. It opens the board in the
// store selected by the active config profile, applies one command, and
// exits. Every mutating command persists before it reports success.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage"
	"github.com/jsamuelsen11/kanban-board/internal/app"
	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

var Version = "dev"

func main() {
	a := newApp(openBoard)
	err := a.rootCmd().Execute()
	if cerr := a.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openBoard loads config for the selected profile, opens the configured
// store, and loads the board from it.
func openBoard(ctx context.Context, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.profile,
		config.WithConfigDir(opts.configDir),
		config.WithOverrides(opts.overrides()),
	)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	backend, err := storage.Open(ctx, &cfg.Storage, nil, logger)
	if err != nil {
		return nil, err
	}

	mgr := app.NewListManager(backend.Board, logger)
	if err := mgr.Initialize(ctx); err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("loading board: %w", err)
	}

	return &session{svc: mgr, close: backend.Close}, nil
}

// Package storage opens the key-value medium selected by configuration and
// assembles the board store on top of it.
//
// Remote drivers (postgres, redis, dynamodb) are wrapped with the resilient
// decorator; local drivers are used directly.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/boardstore"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/dynamostore"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/filestore"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/redisstore"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/resilient"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/sqlkv"
	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Backend is an opened storage medium with the board store layered on it.
type Backend struct {
	// Board is the persistence collaborator for the list manager.
	Board *boardstore.Store

	// KV is the medium, including any resilience wrapper.
	KV ports.KeyValueStore

	// Checkers are the health checks contributed by the medium. Empty for
	// local drivers.
	Checkers []ports.HealthChecker

	closers []func() error
}

// Close releases every connection held by the backend.
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open connects to the medium named by cfg.Driver.
func Open(ctx context.Context, cfg *config.StorageConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Backend, error) {
	b := &Backend{}

	var kv ports.KeyValueStore
	switch cfg.Driver {
	case config.DriverMemory:
		kv = memory.New()

	case config.DriverFile:
		kv = filestore.New(cfg.File.Path)

	case config.DriverSQLite, config.DriverPostgres:
		dialect := sqlkv.SQLite
		if cfg.Driver == config.DriverPostgres {
			dialect = sqlkv.Postgres
		}
		s, err := sqlkv.Open(ctx, sqlkv.Options{
			Dialect:      dialect,
			DSN:          cfg.SQL.DSN,
			Table:        cfg.SQL.Table,
			MaxOpenConns: cfg.SQL.MaxOpenConns,
		})
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
		}
		kv = s
		b.closers = append(b.closers, s.Close)
		if cfg.Remote() {
			b.Checkers = append(b.Checkers, s)
		}

	case config.DriverRedis:
		s := redisstore.New(redisstore.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		kv = s
		b.closers = append(b.closers, s.Close)
		b.Checkers = append(b.Checkers, s)

	case config.DriverDynamoDB:
		client, err := dynamostore.NewClient(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("opening dynamodb store: %w", err)
		}
		s := dynamostore.New(client, cfg.DynamoDB.Table)
		kv = s
		b.Checkers = append(b.Checkers, s)

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	if cfg.Remote() {
		r := resilient.New(kv, cfg.Driver, cfg, metrics, logger)
		kv = r
		b.Checkers = append(b.Checkers, r)
	}

	b.KV = kv
	b.Board = boardstore.New(kv, boardstore.WithNamespace(cfg.Namespace))

	logger.Info("storage opened",
		slog.String("driver", cfg.Driver),
		slog.String("namespace", cfg.Namespace),
		slog.Bool("remote", cfg.Remote()),
	)

	return b, nil
}

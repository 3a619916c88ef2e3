package storage_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/boardstore"
	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOpen_LocalDrivers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.StorageConfig
	}{
		{
			name: "memory",
			cfg:  config.StorageConfig{Driver: config.DriverMemory},
		},
		{
			name: "file",
			cfg: config.StorageConfig{
				Driver: config.DriverFile,
				File:   config.FileConfig{Path: filepath.Join(dir, "board.json")},
			},
		},
		{
			name: "sqlite",
			cfg: config.StorageConfig{
				Driver:    config.DriverSQLite,
				Namespace: "test",
				SQL:       config.SQLConfig{DSN: filepath.Join(dir, "kanban.db"), Table: "kv_store"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			b, err := storage.Open(ctx, &tt.cfg, nil, testLogger())
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			t.Cleanup(func() { _ = b.Close() })

			if len(b.Checkers) != 0 {
				t.Errorf("Checkers = %d, want 0 for a local driver", len(b.Checkers))
			}

			g, err := group.New("Work", 0, time.Now())
			if err != nil {
				t.Fatalf("group.New() error = %v", err)
			}
			if err := b.Board.SaveGroups(ctx, []group.Record{g.Record()}); err != nil {
				t.Fatalf("SaveGroups() error = %v", err)
			}
			raw, err := b.Board.LoadGroups(ctx)
			if err != nil {
				t.Fatalf("LoadGroups() error = %v", err)
			}
			if len(raw) != 1 {
				t.Errorf("LoadGroups() len = %d, want 1", len(raw))
			}
		})
	}
}

func TestOpen_NamespacedKeys(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{Driver: config.DriverMemory, Namespace: "team-a"}
	b, err := storage.Open(context.Background(), &cfg, nil, testLogger())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := b.Board.Key(boardstore.TodosKey); got != "team-a:todos" {
		t.Errorf("Key() = %q, want %q", got, "team-a:todos")
	}
}

func TestOpen_RemoteDriversAreWrapped(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{
		Driver: config.DriverRedis,
		Redis:  config.RedisConfig{Addr: "127.0.0.1:0"},
		Retry:  config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			HalfOpenLimit: 1,
		},
	}

	b, err := storage.Open(context.Background(), &cfg, nil, testLogger())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })

	names := make([]string, 0, len(b.Checkers))
	for _, c := range b.Checkers {
		names = append(names, c.Name())
	}
	want := []string{"storage-redis", "storage-redis-breaker"}
	if len(names) != len(want) {
		t.Fatalf("Checkers = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Checkers[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{Driver: "etcd"}
	if _, err := storage.Open(context.Background(), &cfg, nil, testLogger()); err == nil {
		t.Error("Open() error = nil, want error")
	}
}

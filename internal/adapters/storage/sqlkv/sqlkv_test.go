package sqlkv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/sqlkv"
)

func openSQLite(t *testing.T, table string) *sqlkv.Store {
	t.Helper()

	s, err := sqlkv.Open(context.Background(), sqlkv.Options{
		Dialect: sqlkv.SQLite,
		DSN:     filepath.Join(t.TempDir(), "data", "kanban.db"),
		Table:   table,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetMissingKey(t *testing.T) {
	t.Parallel()

	s := openSQLite(t, "")

	got, err := s.Get(context.Background(), "groups")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %q, want nil", got)
	}
}

func TestStore_SetThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openSQLite(t, "board_kv")

	if err := s.Set(ctx, "todos", []byte(`[{"text":"a"}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "todos", []byte(`[]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := s.Get(ctx, "todos")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get() = %s, want []", got)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "kanban.db")
	opts := sqlkv.Options{Dialect: sqlkv.SQLite, DSN: dsn}

	first, err := sqlkv.Open(ctx, opts)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := first.Set(ctx, "groups", []byte(`[1]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	_ = first.Close()

	second, err := sqlkv.Open(ctx, opts)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "groups")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[1]` {
		t.Errorf("Get() = %s, want [1]", got)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := openSQLite(t, "")

	if got := s.Name(); got != "storage-sqlite" {
		t.Errorf("Name() = %q, want %q", got, "storage-sqlite")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	_ = s.Close()
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after Close error = nil, want error")
	}
}

func TestOpen_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts sqlkv.Options
	}{
		{
			name: "unknown dialect",
			opts: sqlkv.Options{Dialect: "mysql", DSN: "x"},
		},
		{
			name: "table name injection",
			opts: sqlkv.Options{Dialect: sqlkv.SQLite, DSN: ":memory:", Table: "kv; DROP TABLE x"},
		},
		{
			name: "table name starting with digit",
			opts: sqlkv.Options{Dialect: sqlkv.SQLite, DSN: ":memory:", Table: "1kv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := sqlkv.Open(context.Background(), tt.opts); err == nil {
				t.Error("Open() error = nil, want error")
			}
		})
	}
}

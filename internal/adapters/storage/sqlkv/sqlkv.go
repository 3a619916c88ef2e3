// Package sqlkv provides a ports.KeyValueStore over a single SQL table. Two
// dialects are supported: SQLite through github.com/mattn/go-sqlite3 and
// PostgreSQL through github.com/lib/pq.
//
// The table is created on Open from the embedded schema.
package sqlkv

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.KeyValueStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

//go:embed schema.sql
var schemaTemplate string

// Dialect identifies the SQL flavour and the database/sql driver name.
type Dialect string

// Supported dialects.
const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "postgres"
)

// DefaultTable is used when no table name is configured.
const DefaultTable = "kv_store"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Options configures Open.
type Options struct {
	Dialect      Dialect
	DSN          string
	Table        string
	MaxOpenConns int
}

// Store is a SQL-backed key-value store.
type Store struct {
	db      *sql.DB
	dialect Dialect
	getSQL  string
	setSQL  string
}

// Open connects to the database, applies the schema and prepares the
// statements for the selected dialect. For SQLite the parent directory of
// the DSN is created when missing.
func Open(ctx context.Context, opts Options) (*Store, error) {
	table := opts.Table
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("sqlkv: invalid table name %q", table)
	}

	dsn := opts.DSN
	switch opts.Dialect {
	case SQLite:
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
	case Postgres:
	default:
		return nil, fmt.Errorf("sqlkv: unsupported dialect %q", opts.Dialect)
	}

	db, err := sql.Open(string(opts.Dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", opts.Dialect, err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.Dialect == SQLite {
		// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf(schemaTemplate, table)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return newStore(db, opts.Dialect, table), nil
}

func newStore(db *sql.DB, dialect Dialect, table string) *Store {
	s := &Store{db: db, dialect: dialect}
	switch dialect {
	case Postgres:
		s.getSQL = fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, table)
		s.setSQL = fmt.Sprintf(`
			INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, table)
	default:
		s.getSQL = fmt.Sprintf(`SELECT value FROM %s WHERE key = ?`, table)
		s.setSQL = fmt.Sprintf(`
			INSERT INTO %s (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, table)
	}
	return s
}

// Get returns the value under key, or (nil, nil) if there is no row.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selecting %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set upserts value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.setSQL, key, string(value)); err != nil {
		return fmt.Errorf("upserting %q: %w", key, err)
	}
	return nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "storage-" + strings.TrimSuffix(string(s.dialect), "3")
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.Name(), err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func ensureDir(dsn string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
)

// BoardStore persists the board's two collections wholesale.
// Implemented by the storage adapters; called by the application layer.
//
// Loads return the raw stored records so the caller can decode and validate
// each one independently. A namespace that has never been written loads as
// an empty slice. Failures are reported as *domain.StorageError.
type BoardStore interface {
	LoadGroups(ctx context.Context) ([]json.RawMessage, error)
	LoadTodos(ctx context.Context) ([]json.RawMessage, error)

	// SaveGroups replaces the stored groups with records.
	SaveGroups(ctx context.Context, records []group.Record) error

	// SaveTodos replaces the stored todos with records.
	SaveTodos(ctx context.Context, records []todo.Record) error
}

// KeyValueStore is the storage medium underneath a BoardStore.
// Implementations include in-memory, file, SQL, Redis and DynamoDB backends.
type KeyValueStore interface {
	// Get returns the value stored under key, or (nil, nil) if the key has
	// never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

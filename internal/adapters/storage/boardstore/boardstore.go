// Package boardstore implements ports.BoardStore on top of any
// ports.KeyValueStore. Each collection is stored wholesale as a JSON array
// under its own key.
package boardstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Compile-time interface check.
var _ ports.BoardStore = (*Store)(nil)

// Keys of the two collections before namespacing.
const (
	GroupsKey = "groups"
	TodosKey  = "todos"
)

// Store persists groups and todos through a KeyValueStore.
type Store struct {
	kv        ports.KeyValueStore
	namespace string
}

// Option configures a Store.
type Option func(*Store)

// WithNamespace prefixes both keys with "<ns>:" so several boards can share
// one medium. An empty namespace leaves the keys unchanged.
func WithNamespace(ns string) Option {
	return func(s *Store) { s.namespace = ns }
}

// New creates a Store over kv.
func New(kv ports.KeyValueStore, opts ...Option) *Store {
	s := &Store{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the fully qualified key for a collection.
func (s *Store) Key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + ":" + name
}

// LoadGroups returns the stored group records, or an empty slice if none
// were ever saved.
func (s *Store) LoadGroups(ctx context.Context) ([]json.RawMessage, error) {
	return s.load(ctx, GroupsKey)
}

// LoadTodos returns the stored todo records, or an empty slice if none were
// ever saved.
func (s *Store) LoadTodos(ctx context.Context) ([]json.RawMessage, error) {
	return s.load(ctx, TodosKey)
}

// SaveGroups replaces the stored groups.
func (s *Store) SaveGroups(ctx context.Context, records []group.Record) error {
	if records == nil {
		records = []group.Record{}
	}
	return s.save(ctx, GroupsKey, records)
}

// SaveTodos replaces the stored todos.
func (s *Store) SaveTodos(ctx context.Context, records []todo.Record) error {
	if records == nil {
		records = []todo.Record{}
	}
	return s.save(ctx, TodosKey, records)
}

func (s *Store) load(ctx context.Context, name string) ([]json.RawMessage, error) {
	key := s.Key(name)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, domain.NewStorageError("get "+key, err)
	}
	if len(data) == 0 {
		return []json.RawMessage{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewStorageError("get "+key, fmt.Errorf("stored value is not a JSON array: %w", err))
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

func (s *Store) save(ctx context.Context, name string, records any) error {
	key := s.Key(name)

	data, err := json.Marshal(records)
	if err != nil {
		return domain.NewStorageError("set "+key, fmt.Errorf("encoding records: %w", err))
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return domain.NewStorageError("set "+key, err)
	}
	return nil
}

// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/app/fanout"
	"github.com/jsamuelsen11/kanban-board/internal/app/uow"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Compile-time check that ListManager implements ports.BoardService.
var _ ports.BoardService = (*ListManager)(nil)

// ListManager implements ports.BoardService. It exclusively owns the board's
// groups and todos, enforces referential integrity between them, and writes
// the entire affected collection through the BoardStore after every mutation.
//
// Mutations are serialized. A mutation either completes in memory and in the
// store, or returns an error and leaves both unchanged.
type ListManager struct {
	store   ports.BoardStore
	logger  *slog.Logger
	metrics *telemetry.Metrics
	now     func() time.Time

	mu     sync.RWMutex
	groups []group.Group // sorted by position
	todos  []todo.Todo   // insertion order
	filter todo.Filter
}

// Option configures a ListManager.
type Option func(*ListManager)

// WithClock replaces the time source used for entity timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *ListManager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithMetrics counts persisted mutations by operation and outcome.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(m *ListManager) {
		m.metrics = metrics
	}
}

// NewListManager creates a ListManager backed by store. A nil logger
// discards output.
func NewListManager(store ports.BoardStore, logger *slog.Logger, opts ...Option) *ListManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &ListManager{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		filter: todo.DefaultFilter,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// namespace identifies one of the two persisted collections.
type namespace int

const (
	nsGroups namespace = 1 << iota
	nsTodos
)

// snapshot is a copy of the collections taken before a mutation.
type snapshot struct {
	groups []group.Group
	todos  []todo.Todo
}

func (m *ListManager) snapshot() snapshot {
	return snapshot{groups: slices.Clone(m.groups), todos: slices.Clone(m.todos)}
}

func (m *ListManager) restore(s snapshot) {
	m.groups = s.groups
	m.todos = s.todos
}

// Initialize loads both collections concurrently. Records that fail to
// decode are dropped with a warning. If no group survives, a single default
// group is created and persisted.
func (m *ListManager) Initialize(ctx context.Context) error {
	m.logger.InfoContext(ctx, "initializing board")

	loaded, err := fanout.All(ctx, []fanout.Task[[]json.RawMessage]{
		{Name: "load groups", Fn: m.store.LoadGroups},
		{Name: "load todos", Fn: m.store.LoadTodos},
	})
	if err != nil {
		op := "load board"
		var taskErr *fanout.TaskError
		if errors.As(err, &taskErr) {
			op, err = taskErr.Name, taskErr.Err
		}
		m.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "Initialize"),
			slog.String("step", op),
			slog.Any("error", err),
		)
		return domain.NewStorageError(op, err)
	}

	now := m.now()
	groups := decodeAll(ctx, m.logger, "group", loaded[0], func(raw json.RawMessage) (*group.Group, error) {
		return group.Decode(raw, now)
	})
	todos := decodeAll(ctx, m.logger, "todo", loaded[1], func(raw json.RawMessage) (*todo.Todo, error) {
		return todo.Decode(raw, now)
	})
	group.Sort(groups)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.groups = groups
	m.todos = todos

	if len(m.groups) > 0 {
		m.logger.InfoContext(ctx, "board loaded",
			slog.Int("groups", len(m.groups)),
			slog.Int("todos", len(m.todos)),
		)
		return nil
	}

	def, err := group.New(group.DefaultName, 0, now)
	if err != nil {
		return err
	}
	snap := m.snapshot()
	m.groups = append(m.groups, *def)
	if err := m.persist(ctx, "Initialize", snap, nsGroups); err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "created default group",
		slog.String("group_id", def.ID),
		slog.Int("todos", len(m.todos)),
	)
	return nil
}

// decodeAll decodes each record independently and keeps the ones that pass.
func decodeAll[T any](ctx context.Context, logger *slog.Logger, kind string, raws []json.RawMessage, decode func(json.RawMessage) (*T, error)) []T {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			logger.WarnContext(ctx, "dropping invalid stored record",
				slog.String("operation", "Initialize"),
				slog.String("kind", kind),
				slog.Int("index", i),
				slog.Any("error", err),
			)
			continue
		}
		out = append(out, *v)
	}
	return out
}

// persist writes the namespaces in ns through a unit of work. On failure the
// in-memory state is restored from snap and a *domain.StorageError is
// returned. Callers must hold m.mu for writing.
func (m *ListManager) persist(ctx context.Context, op string, snap snapshot, ns namespace) error {
	var actions []domain.Action
	if ns&nsGroups != 0 {
		next, prev := group.Records(m.groups), group.Records(snap.groups)
		actions = append(actions, uow.Func("save groups",
			func(ctx context.Context) error { return m.store.SaveGroups(ctx, next) },
			func(ctx context.Context) error { return m.store.SaveGroups(ctx, prev) },
		))
	}
	if ns&nsTodos != 0 {
		next, prev := todo.Records(m.todos), todo.Records(snap.todos)
		actions = append(actions, uow.Func("save todos",
			func(ctx context.Context) error { return m.store.SaveTodos(ctx, next) },
			func(ctx context.Context) error { return m.store.SaveTodos(ctx, prev) },
		))
	}

	w := uow.New()
	var err error
	if len(actions) == 1 {
		err = w.AddAction(actions[0])
	} else {
		err = w.AddGroup(actions...)
	}
	if err == nil {
		err = w.Commit(logging.WithLogger(ctx, m.logger))
	}
	m.metrics.RecordBoardMutation(ctx, op, err)
	if err != nil {
		m.restore(snap)
		m.logger.ErrorContext(ctx, "failed to persist board, changes reverted",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return domain.NewStorageError(op, err)
	}
	return nil
}

// AddGroup creates a group. A nil position appends after the last group.
func (m *ListManager) AddGroup(ctx context.Context, name string, position *int) (*group.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos := len(m.groups)
	if position != nil {
		pos = *position
	}

	g, err := group.New(name, pos, m.now())
	if err != nil {
		return nil, err
	}

	snap := m.snapshot()
	m.groups = append(m.groups, *g)
	group.Sort(m.groups)
	if err := m.persist(ctx, "AddGroup", snap, nsGroups); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "group added",
		slog.String("group_id", g.ID),
		slog.Int("position", g.Position),
	)
	return g, nil
}

// RemoveGroup deletes a group and cascades to its todos. Remaining groups
// are renumbered 0..n-1 in their current order.
func (m *ListManager) RemoveGroup(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.groupIndex(id)
	if idx < 0 {
		return false, nil
	}

	snap := m.snapshot()
	now := m.now()

	m.todos = slices.DeleteFunc(m.todos, func(t todo.Todo) bool { return t.GroupID == id })
	m.groups = slices.Delete(m.groups, idx, idx+1)
	for i := range m.groups {
		if m.groups[i].Position != i {
			m.groups[i].Reposition(i, now)
		}
	}

	if err := m.persist(ctx, "RemoveGroup", snap, nsGroups|nsTodos); err != nil {
		return false, err
	}

	m.logger.InfoContext(ctx, "group removed",
		slog.String("group_id", id),
		slog.Int("todos_removed", len(snap.todos)-len(m.todos)),
	)
	return true, nil
}

// RenameGroup changes a group's name.
func (m *ListManager) RenameGroup(ctx context.Context, id, name string) (bool, error) {
	return m.updateGroup(ctx, "RenameGroup", id, &name, nil)
}

// RepositionGroup moves a group to position and re-sorts. Ties are kept in
// their current relative order.
func (m *ListManager) RepositionGroup(ctx context.Context, id string, position int) (bool, error) {
	return m.updateGroup(ctx, "RepositionGroup", id, nil, &position)
}

// UpdateGroup applies a rename, a reposition or both in one write. The name
// is validated before anything changes. With neither set it only reports
// whether the group exists.
func (m *ListManager) UpdateGroup(ctx context.Context, id string, name *string, position *int) (bool, error) {
	return m.updateGroup(ctx, "UpdateGroup", id, name, position)
}

func (m *ListManager) updateGroup(ctx context.Context, op, id string, name *string, position *int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.groupIndex(id)
	if idx < 0 {
		return false, nil
	}
	if name == nil && position == nil {
		return true, nil
	}

	snap := m.snapshot()
	now := m.now()
	if name != nil {
		if err := m.groups[idx].Rename(*name, now); err != nil {
			return false, err
		}
	}
	if position != nil {
		m.groups[idx].Reposition(*position, now)
		group.Sort(m.groups)
	}
	if err := m.persist(ctx, op, snap, nsGroups); err != nil {
		return false, err
	}
	return true, nil
}

// AddTodo creates a todo in an existing group.
func (m *ListManager) AddTodo(ctx context.Context, text, groupID string) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := todo.New(text, groupID, todo.WithTime(m.now()))
	if err != nil {
		return nil, err
	}
	if m.groupIndex(groupID) < 0 {
		return nil, domain.NewValidationError("groupId", domain.MsgGroupNotFound)
	}

	snap := m.snapshot()
	m.todos = append(m.todos, *t)
	if err := m.persist(ctx, "AddTodo", snap, nsTodos); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "todo added",
		slog.String("todo_id", t.ID),
		slog.String("group_id", groupID),
	)
	return t, nil
}

// RemoveTodo deletes a todo.
func (m *ListManager) RemoveTodo(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.todoIndex(id)
	if idx < 0 {
		return false, nil
	}

	snap := m.snapshot()
	m.todos = slices.Delete(m.todos, idx, idx+1)
	if err := m.persist(ctx, "RemoveTodo", snap, nsTodos); err != nil {
		return false, err
	}
	return true, nil
}

// MoveTodo reassigns a todo to another group. Moving to the current group is
// a successful no-op.
func (m *ListManager) MoveTodo(ctx context.Context, id, groupID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.groupIndex(groupID) < 0 {
		return false, nil
	}
	idx := m.todoIndex(id)
	if idx < 0 {
		return false, nil
	}
	if m.todos[idx].GroupID == groupID {
		return true, nil
	}

	snap := m.snapshot()
	if err := m.todos[idx].MoveTo(groupID, m.now()); err != nil {
		return false, err
	}
	if err := m.persist(ctx, "MoveTodo", snap, nsTodos); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateTodo replaces a todo's text and description. Text is validated
// before anything changes.
func (m *ListManager) UpdateTodo(ctx context.Context, id, text, description string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.todoIndex(id)
	if idx < 0 {
		return false, nil
	}

	snap := m.snapshot()
	now := m.now()
	if err := m.todos[idx].UpdateText(text, now); err != nil {
		return false, err
	}
	m.todos[idx].UpdateDescription(description, now)
	if err := m.persist(ctx, "UpdateTodo", snap, nsTodos); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleTodo flips a todo's completion state.
func (m *ListManager) ToggleTodo(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.todoIndex(id)
	if idx < 0 {
		return false, nil
	}

	snap := m.snapshot()
	m.todos[idx].ToggleCompletion(m.now())
	if err := m.persist(ctx, "ToggleTodo", snap, nsTodos); err != nil {
		return false, err
	}
	return true, nil
}

// ClearCompleted removes every completed todo and returns the count removed.
func (m *ListManager) ClearCompleted(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshot()
	m.todos = slices.DeleteFunc(m.todos, func(t todo.Todo) bool { return t.Completed })
	removed := len(snap.todos) - len(m.todos)

	if err := m.persist(ctx, "ClearCompleted", snap, nsTodos); err != nil {
		return 0, err
	}

	m.logger.InfoContext(ctx, "cleared completed todos", slog.Int("removed", removed))
	return removed, nil
}

// SetFilter changes the view mode. Unknown modes are logged and ignored.
func (m *ListManager) SetFilter(mode todo.Filter) bool {
	if !mode.IsValid() {
		m.logger.Warn("ignoring unknown filter mode",
			slog.String("operation", "SetFilter"),
			slog.String("filter", mode.String()),
		)
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = mode
	return true
}

// Filter returns the current view mode.
func (m *ListManager) Filter() todo.Filter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter
}

// FilteredTodos returns the todos visible under the current view mode.
func (m *ListManager) FilteredTodos() []todo.Todo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter.Apply(m.todos)
}

// TodosForGroup returns every todo in the group, ignoring the view mode.
func (m *ListManager) TodosForGroup(groupID string) []todo.Todo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]todo.Todo, 0)
	for i := range m.todos {
		if m.todos[i].GroupID == groupID {
			out = append(out, m.todos[i])
		}
	}
	return out
}

// SortedGroups returns the groups in ascending position order.
func (m *ListManager) SortedGroups() []group.Group {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := slices.Clone(m.groups)
	if out == nil {
		out = []group.Group{}
	}
	return out
}

// Stats counts all todos regardless of the view mode.
func (m *ListManager) Stats() todo.Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return todo.CalculateStats(m.todos)
}

// Group returns a copy of the group with the given ID.
func (m *ListManager) Group(id string) (*group.Group, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.groupIndex(id)
	if idx < 0 {
		return nil, false
	}
	g := m.groups[idx]
	return &g, true
}

// Todo returns a copy of the todo with the given ID.
func (m *ListManager) Todo(id string) (*todo.Todo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.todoIndex(id)
	if idx < 0 {
		return nil, false
	}
	t := m.todos[idx]
	return &t, true
}

func (m *ListManager) groupIndex(id string) int {
	return slices.IndexFunc(m.groups, func(g group.Group) bool { return g.ID == id })
}

func (m *ListManager) todoIndex(id string) int {
	return slices.IndexFunc(m.todos, func(t todo.Todo) bool { return t.ID == id })
}

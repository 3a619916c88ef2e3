package todo

// Filter is the view predicate applied when listing todos.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// DefaultFilter is the filter a fresh manager starts with.
const DefaultFilter = FilterActive

// IsValid returns true if the filter is one of the defined constants.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return string(f)
}

// Matches reports whether t is visible under the filter. Unknown filters
// match everything.
func (f Filter) Matches(t *Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the todos visible under the filter, preserving order.
func (f Filter) Apply(todos []Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for i := range todos {
		if f.Matches(&todos[i]) {
			out = append(out, todos[i])
		}
	}
	return out
}

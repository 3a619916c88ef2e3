package todo

// Stats holds completion counts over a set of todos.
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// CalculateStats counts todos by completion state.
func CalculateStats(todos []Todo) Stats {
	s := Stats{Total: len(todos)}
	for i := range todos {
		if todos[i].Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}

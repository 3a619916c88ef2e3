package todo

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 123456789, time.UTC)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validTodo(t *testing.T) *Todo {
	t.Helper()
	td, err := New("Buy groceries", "g1", WithTime(testTime))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return td
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		groupID   string
		wantErr   bool
		wantField string
		wantText  string
	}{
		{
			name:     "valid todo",
			text:     "Buy milk",
			groupID:  "g1",
			wantText: "Buy milk",
		},
		{
			name:     "text is trimmed",
			text:     "\t Buy milk  ",
			groupID:  "g1",
			wantText: "Buy milk",
		},
		{
			name:     "exactly 200 characters",
			text:     strings.Repeat("a", MaxTextLength),
			groupID:  "g1",
			wantText: strings.Repeat("a", MaxTextLength),
		},
		{
			name:      "empty text fails",
			text:      "",
			groupID:   "g1",
			wantErr:   true,
			wantField: "text",
		},
		{
			name:      "whitespace-only text fails",
			text:      "   ",
			groupID:   "g1",
			wantErr:   true,
			wantField: "text",
		},
		{
			name:      "201 characters fails",
			text:      strings.Repeat("a", MaxTextLength+1),
			groupID:   "g1",
			wantErr:   true,
			wantField: "text",
		},
		{
			name:      "empty group id fails",
			text:      "Buy milk",
			groupID:   "",
			wantErr:   true,
			wantField: "groupId",
		},
		{
			name:      "blank group id fails",
			text:      "Buy milk",
			groupID:   "  ",
			wantErr:   true,
			wantField: "groupId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td, err := New(tt.text, tt.groupID)
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
				if td != nil {
					t.Errorf("New() = %+v, want nil on error", td)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if td.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", td.Text, tt.wantText)
			}
			if td.GroupID != tt.groupID {
				t.Errorf("GroupID = %q, want %q", td.GroupID, tt.groupID)
			}
			if td.Completed {
				t.Error("Completed = true, want false by default")
			}
			if td.Description != "" {
				t.Errorf("Description = %q, want empty by default", td.Description)
			}
			if td.ID == "" {
				t.Error("ID is empty, want generated id")
			}
		})
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	td, err := New("Write report", "g2",
		WithCompleted(true),
		WithDescription("quarterly numbers"),
		WithID("fixed-id"),
		WithTime(testTime),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !td.Completed {
		t.Error("Completed = false, want true")
	}
	if td.Description != "quarterly numbers" {
		t.Errorf("Description = %q", td.Description)
	}
	if td.ID != "fixed-id" {
		t.Errorf("ID = %q, want %q", td.ID, "fixed-id")
	}
	if !td.CreatedAt.Equal(testTime) || !td.UpdatedAt.Equal(testTime) {
		t.Errorf("timestamps = %v/%v, want %v", td.CreatedAt, td.UpdatedAt, testTime)
	}
}

func TestNew_EmptyIDOptionIgnored(t *testing.T) {
	t.Parallel()

	td, err := New("Task", "g1", WithID(""))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if td.ID == "" {
		t.Error("ID is empty, want generated id")
	}
}

func TestUpdateText(t *testing.T) {
	t.Parallel()

	later := testTime.Add(time.Minute)

	t.Run("valid text", func(t *testing.T) {
		t.Parallel()
		td := validTodo(t)

		if err := td.UpdateText(" Buy bread ", later); err != nil {
			t.Fatalf("UpdateText() error = %v", err)
		}
		if td.Text != "Buy bread" {
			t.Errorf("Text = %q, want %q", td.Text, "Buy bread")
		}
		if !td.UpdatedAt.Equal(later) {
			t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, later)
		}
	})

	t.Run("invalid text leaves todo untouched", func(t *testing.T) {
		t.Parallel()
		td := validTodo(t)

		err := td.UpdateText(strings.Repeat("b", MaxTextLength+1), later)
		requireValidationField(t, err, "text")
		if td.Text != "Buy groceries" {
			t.Errorf("Text = %q, want unchanged", td.Text)
		}
		if !td.UpdatedAt.Equal(testTime) {
			t.Errorf("UpdatedAt = %v, want unchanged", td.UpdatedAt)
		}
	})
}

func TestUpdateDescription(t *testing.T) {
	t.Parallel()

	later := testTime.Add(time.Minute)
	td := validTodo(t)

	td.UpdateDescription("", later)
	if td.Description != "" {
		t.Errorf("Description = %q, want empty", td.Description)
	}
	if !td.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, later)
	}

	td.UpdateDescription("  any free text  ", later)
	if td.Description != "  any free text  " {
		t.Errorf("Description = %q, want stored verbatim", td.Description)
	}
}

func TestToggleCompletion(t *testing.T) {
	t.Parallel()

	td := validTodo(t)

	first := testTime.Add(time.Second)
	td.ToggleCompletion(first)
	if !td.Completed {
		t.Error("Completed = false after first toggle, want true")
	}
	if !td.UpdatedAt.Equal(first) {
		t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, first)
	}

	second := testTime.Add(2 * time.Second)
	td.ToggleCompletion(second)
	if td.Completed {
		t.Error("Completed = true after second toggle, want false")
	}
	if !td.UpdatedAt.Equal(second) {
		t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, second)
	}
}

func TestMoveTo(t *testing.T) {
	t.Parallel()

	later := testTime.Add(time.Minute)
	td := validTodo(t)

	if err := td.MoveTo("g2", later); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	if td.GroupID != "g2" {
		t.Errorf("GroupID = %q, want %q", td.GroupID, "g2")
	}

	err := td.MoveTo("", later)
	requireValidationField(t, err, "groupId")
	if td.GroupID != "g2" {
		t.Errorf("GroupID = %q, want unchanged after failed move", td.GroupID)
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{"x", "Buy milk", strings.Repeat("z", MaxTextLength), "チケットを予約する"}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			orig, err := New(text, "group-1",
				WithCompleted(true),
				WithDescription("notes"),
				WithTime(testTime),
			)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			orig.UpdatedAt = testTime.Add(time.Hour)

			raw, err := json.Marshal(orig.Record())
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			got, err := Decode(raw, time.Time{})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if got.ID != orig.ID || got.Text != orig.Text || got.GroupID != orig.GroupID ||
				got.Completed != orig.Completed || got.Description != orig.Description {
				t.Errorf("Decode() = %+v, want %+v", got, orig)
			}
			if !got.CreatedAt.Equal(orig.CreatedAt) || !got.UpdatedAt.Equal(orig.UpdatedAt) {
				t.Errorf("timestamps = %v/%v, want %v/%v",
					got.CreatedAt, got.UpdatedAt, orig.CreatedAt, orig.UpdatedAt)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	fallback := testTime.Add(48 * time.Hour)

	tests := []struct {
		name          string
		raw           string
		wantErr       string
		wantCompleted bool
		wantDesc      string
		wantFallback  bool
	}{
		{
			name:          "complete record",
			raw:           `{"id":"t1","text":"Ship it","groupId":"g1","completed":true,"description":"d","createdAt":"2026-02-12T15:04:05Z","updatedAt":"2026-02-12T15:04:05Z"}`,
			wantCompleted: true,
			wantDesc:      "d",
		},
		{
			name: "optional fields missing",
			raw:  `{"id":"t1","text":"Ship it","groupId":"g1"}`,
			// timestamps fall back, completed and description default
			wantFallback: true,
		},
		{
			name: "wrongly typed completed defaults to false",
			raw:  `{"id":"t1","text":"Ship it","groupId":"g1","completed":"yes","createdAt":"2026-02-12T15:04:05Z","updatedAt":"2026-02-12T15:04:05Z"}`,
		},
		{
			name:    "array input fails",
			raw:     `[]`,
			wantErr: "record",
		},
		{
			name:    "number input fails",
			raw:     `42`,
			wantErr: "record",
		},
		{
			name:    "missing text fails",
			raw:     `{"id":"t1","groupId":"g1"}`,
			wantErr: "text",
		},
		{
			name:    "oversized text fails",
			raw:     `{"id":"t1","text":"` + strings.Repeat("a", MaxTextLength+1) + `","groupId":"g1"}`,
			wantErr: "text",
		},
		{
			name:    "missing group id fails",
			raw:     `{"id":"t1","text":"Ship it"}`,
			wantErr: "groupId",
		},
		{
			name:    "empty group id fails",
			raw:     `{"id":"t1","text":"Ship it","groupId":""}`,
			wantErr: "groupId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td, err := Decode(json.RawMessage(tt.raw), fallback)
			if tt.wantErr != "" {
				requireValidationField(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if td.ID != "t1" {
				t.Errorf("ID = %q, want %q", td.ID, "t1")
			}
			if td.Completed != tt.wantCompleted {
				t.Errorf("Completed = %v, want %v", td.Completed, tt.wantCompleted)
			}
			if td.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", td.Description, tt.wantDesc)
			}
			if tt.wantFallback && !td.UpdatedAt.Equal(fallback) {
				t.Errorf("UpdatedAt = %v, want fallback %v", td.UpdatedAt, fallback)
			}
		})
	}
}

func TestFilter_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "all is valid", filter: FilterAll, want: true},
		{name: "active is valid", filter: FilterActive, want: true},
		{name: "completed is valid", filter: FilterCompleted, want: true},
		{name: "empty string is invalid", filter: "", want: false},
		{name: "unknown value is invalid", filter: "done", want: false},
		{name: "case sensitive", filter: "Active", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.IsValid(); got != tt.want {
				t.Errorf("Filter(%q).IsValid() = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	todos := []Todo{
		{ID: "1", Completed: false},
		{ID: "2", Completed: true},
		{ID: "3", Completed: false},
	}

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"1", "2", "3"}},
		{FilterActive, []string{"1", "3"}},
		{FilterCompleted, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			t.Parallel()

			got := tt.filter.Apply(todos)
			if len(got) != len(tt.want) {
				t.Fatalf("Apply() len = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Apply()[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCalculateStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		todos []Todo
		want  Stats
	}{
		{
			name:  "nil slice",
			todos: nil,
			want:  Stats{},
		},
		{
			name:  "all active",
			todos: []Todo{{}, {}},
			want:  Stats{Total: 2, Active: 2},
		},
		{
			name:  "mixed",
			todos: []Todo{{Completed: true}, {}, {Completed: true}},
			want:  Stats{Total: 3, Active: 1, Completed: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateStats(tt.todos); got != tt.want {
				t.Errorf("CalculateStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

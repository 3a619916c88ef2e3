package todo

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// Record is the persisted shape of a Todo.
type Record struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	GroupID     string `json:"groupId"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Record serializes the todo.
func (t *Todo) Record() Record {
	return Record{
		ID:          t.ID,
		Text:        t.Text,
		GroupID:     t.GroupID,
		Completed:   t.Completed,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// Records serializes a slice of todos in order.
func Records(todos []Todo) []Record {
	out := make([]Record, len(todos))
	for i := range todos {
		out[i] = todos[i].Record()
	}
	return out
}

// FromRecord rebuilds a todo from its typed record. Text and group id must
// pass validation; an empty id is regenerated and unparsable timestamps fall
// back to now.
func FromRecord(r Record, now time.Time) (*Todo, error) {
	t, err := New(r.Text, r.GroupID,
		WithID(r.ID),
		WithCompleted(r.Completed),
		WithDescription(r.Description),
	)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = parseTime(r.CreatedAt, now)
	t.UpdatedAt = parseTime(r.UpdatedAt, now)
	return t, nil
}

// Decode deserializes one stored record. Input that is not a JSON object, or
// whose text or groupId is missing or invalid, fails with a
// *domain.ValidationError. Optional fields of the wrong type take their
// defaults.
func Decode(raw json.RawMessage, now time.Time) (*Todo, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, domain.NewValidationError("record", domain.MsgNotObject)
	}

	var r Record
	if !decodeField(fields, "text", &r.Text) {
		return nil, domain.NewValidationError("text", domain.MsgRequired)
	}
	if !decodeField(fields, "groupId", &r.GroupID) {
		return nil, domain.NewValidationError("groupId", domain.MsgRequired)
	}
	decodeField(fields, "id", &r.ID)
	decodeField(fields, "completed", &r.Completed)
	decodeField(fields, "description", &r.Description)
	decodeField(fields, "createdAt", &r.CreatedAt)
	decodeField(fields, "updatedAt", &r.UpdatedAt)

	return FromRecord(r, now)
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func parseTime(s string, fallback time.Time) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fallback
	}
	return t
}

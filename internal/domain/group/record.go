package group

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// Record is the persisted shape of a Group.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Record serializes the group. Timestamps use RFC 3339 with nanoseconds so a
// round trip through Decode reproduces identical values.
func (g *Group) Record() Record {
	return Record{
		ID:        g.ID,
		Name:      g.Name,
		Position:  g.Position,
		CreatedAt: g.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: g.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// Records serializes a slice of groups in order.
func Records(groups []Group) []Record {
	out := make([]Record, len(groups))
	for i := range groups {
		out[i] = groups[i].Record()
	}
	return out
}

// FromRecord rebuilds a group from its typed record. The name must pass
// validation; an empty id is regenerated, a negative position becomes 0 and
// unparsable timestamps fall back to now.
func FromRecord(r Record, now time.Time) (*Group, error) {
	name, err := ValidateName(r.Name)
	if err != nil {
		return nil, err
	}
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Group{
		ID:        id,
		Name:      name,
		Position:  NormalizePosition(r.Position),
		CreatedAt: parseTime(r.CreatedAt, now),
		UpdatedAt: parseTime(r.UpdatedAt, now),
	}, nil
}

// Decode deserializes one stored record. Input that is not a JSON object, or
// whose name is missing or invalid, fails with a *domain.ValidationError.
// Fields of the wrong type are treated as missing and defaulted.
func Decode(raw json.RawMessage, now time.Time) (*Group, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, domain.NewValidationError("record", domain.MsgNotObject)
	}

	var r Record
	if !decodeField(fields, "name", &r.Name) {
		return nil, domain.NewValidationError("name", domain.MsgRequired)
	}
	decodeField(fields, "id", &r.ID)
	decodeField(fields, "createdAt", &r.CreatedAt)
	decodeField(fields, "updatedAt", &r.UpdatedAt)

	var pos float64
	if decodeField(fields, "position", &pos) && !math.IsNaN(pos) && pos >= 0 && pos <= math.MaxInt32 {
		r.Position = int(pos)
	}

	return FromRecord(r, now)
}

// decodeField unmarshals fields[key] into dst, reporting whether the key was
// present with a value of the right type.
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

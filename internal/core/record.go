package core

import (
	"encoding/json"
	"time"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

// Value holds one typed cell value. Only the slot matching Kind is
// meaningful. Text is never "absent" (missing cells coerce to ""), but a
// date may genuinely carry no value, which DateSet distinguishes from the
// zero time.
type Value struct {
	Kind    schema.Kind
	Text    string
	Int     int64
	Bool    bool
	Date    time.Time
	DateSet bool
}

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{Kind: schema.KindText, Text: s} }

// IntValue returns an integer Value.
func IntValue(i int64) Value { return Value{Kind: schema.KindInt, Int: i} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{Kind: schema.KindBool, Bool: b} }

// DateValue returns a date Value. If set is false the value represents "no
// date".
func DateValue(t time.Time, set bool) Value {
	return Value{Kind: schema.KindDate, Date: t, DateSet: set}
}

// MarshalJSON renders the value as its natural JSON type: string, number,
// boolean, or an ISO date string (null when no date is set).
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case schema.KindInt:
		return json.Marshal(v.Int)
	case schema.KindBool:
		return json.Marshal(v.Bool)
	case schema.KindDate:
		if !v.DateSet {
			return []byte("null"), nil
		}
		return json.Marshal(v.Date.Format("2006-01-02"))
	default:
		return json.Marshal(v.Text)
	}
}

// Record is the canonical unit of storage: a store-assigned identifier plus
// one typed value per canonical field.
type Record struct {
	ID     int64            `json:"id"`
	Values map[string]Value `json:"values"`
}

// NewRecord returns a Record with an empty value map.
func NewRecord() Record {
	return Record{Values: make(map[string]Value)}
}

// Clone returns a deep copy. Stores hand out clones so callers can never
// mutate live state through a returned record.
func (r Record) Clone() Record {
	out := Record{ID: r.ID, Values: make(map[string]Value, len(r.Values))}
	for k, v := range r.Values {
		out.Values[k] = v
	}
	return out
}

// Text returns the text value of the named field, or "" when unset.
func (r Record) Text(field string) string { return r.Values[field].Text }

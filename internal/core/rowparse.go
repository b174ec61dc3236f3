package core

import (
	"fmt"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

// rowparse.go turns one spreadsheet row into a candidate record.
//
// Cell coercions are total, so the only way a row fails is record
// construction: a required field that resolved to a column but holds no
// value. Failures are returned as errors for the import pipeline to count;
// they never abort the batch.

// IsBlankRow reports whether all of the schema's identity fields are empty
// in this row. Blank rows are dropped silently during import, not stored
// and not counted as failures.
func IsBlankRow(row []string, cols ColumnMap, s schema.Schema) bool {
	for _, name := range s.Identity() {
		if cols.Cell(row, name) != "" {
			return false
		}
	}
	return true
}

// ParseRow builds a Record from one data row using the resolved column
// positions. The returned record carries no identifier; the pipeline or
// store assigns one.
func ParseRow(row []string, cols ColumnMap, s schema.Schema) (Record, error) {
	raw := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		raw[f.Name] = cols.Cell(row, f.Name)
	}
	return MakeRecord(s, raw)
}

// MakeRecord coerces raw field text into a typed Record and validates it.
// The same path serves parsed spreadsheet rows and API mutations, so both
// enforce identical rules: every required field must be non-empty.
func MakeRecord(s schema.Schema, raw map[string]string) (Record, error) {
	rec := NewRecord()
	for _, f := range s.Fields {
		cell := raw[f.Name]
		if f.Required && CoerceText(cell) == "" {
			return Record{}, fmt.Errorf("required field %q is empty", f.Name)
		}
		switch f.Kind {
		case schema.KindInt:
			rec.Values[f.Name] = IntValue(CoerceInt(cell))
		case schema.KindBool:
			rec.Values[f.Name] = BoolValue(CoerceBool(cell))
		case schema.KindDate:
			t, ok := CoerceDate(cell)
			rec.Values[f.Name] = DateValue(t, ok)
		default:
			rec.Values[f.Name] = TextValue(CoerceText(cell))
		}
	}
	return rec, nil
}

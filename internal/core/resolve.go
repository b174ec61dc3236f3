package core

import (
	"strings"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

// ColumnMap maps canonical field names to their source column position in
// the uploaded file.
type ColumnMap map[string]int

// Resolve maps a header row to canonical field positions using the schema's
// alias tables. Matching is case-insensitive and exact; column order is
// irrelevant. For each field the first alias in its list that matches any
// header wins. When the same header text appears twice, the earliest
// occurrence is authoritative. Blank header cells are never registered.
// Fields with no matching alias are simply absent from the result; deciding
// whether that matters is the caller's job.
func Resolve(header []string, s schema.Schema) ColumnMap {
	// Earliest position per normalized header text.
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if key == "" {
			continue
		}
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	cols := make(ColumnMap, len(s.Fields))
	for _, f := range s.Fields {
		for _, alias := range f.Aliases {
			if pos, ok := positions[strings.ToLower(alias)]; ok {
				cols[f.Name] = pos
				break
			}
		}
	}
	return cols
}

// MissingRequired returns the canonical names of required fields that did
// not resolve to any column, in schema order.
func (c ColumnMap) MissingRequired(s schema.Schema) []string {
	var missing []string
	for _, name := range s.Required() {
		if _, ok := c[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Cell returns the cleaned cell text for the named field, or "" when the
// field is unresolved or the row is too short.
func (c ColumnMap) Cell(row []string, field string) string {
	pos, ok := c[field]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

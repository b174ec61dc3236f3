// Package schema defines the canonical record shapes the importer understands.
//
// A Schema is a fixed, ordered list of typed fields. Spreadsheet columns are
// matched to fields through each field's alias list, so uploads may use any
// column order and any of the accepted header spellings. The alias tables are
// static package data, not instance state.
package schema

import "strings"

// Kind is the value type of a canonical field.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindBool
	KindDate
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "value"
	}
}

// Field is a single canonical slot in a record.
type Field struct {
	Name     string   // Canonical field name, stable across deployments
	Label    string   // Display name used as the export header
	Kind     Kind     // Value type
	Aliases  []string // Accepted header spellings, in precedence order
	Required bool     // Header must contain at least one alias
	Identity bool     // Field participates in blank-row detection
}

// Matches reports whether the given header text is one of the field's
// aliases. Matching is case-insensitive and exact, no fuzzy matching.
func (f Field) Matches(header string) bool {
	for _, a := range f.Aliases {
		if strings.EqualFold(a, header) {
			return true
		}
	}
	return false
}

// Schema is an ordered set of canonical fields.
type Schema struct {
	Name   string
	Fields []Field
}

// Field returns the field with the given canonical name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the canonical names of all required fields, in schema
// order.
func (s Schema) Required() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Identity returns the canonical names of the identity fields used for
// blank-row detection, in schema order.
func (s Schema) Identity() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Identity {
			names = append(names, f.Name)
		}
	}
	return names
}

// Headers returns the display labels in schema order. This is the
// deterministic header row written by export and template generation.
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		headers[i] = f.Label
	}
	return headers
}

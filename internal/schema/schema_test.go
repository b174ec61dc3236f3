package schema

import (
	"strings"
	"testing"
)

func allSchemas() []Schema {
	return []Schema{Participants(), Placements()}
}

// ----------------------------------------------------------------------------
// Schema Integrity Tests
// ----------------------------------------------------------------------------

// Field names and labels must be unique within a schema, and no two fields
// may claim the same header alias, or column resolution becomes ambiguous.
func TestSchemas_Integrity(t *testing.T) {
	for _, s := range allSchemas() {
		t.Run(s.Name, func(t *testing.T) {
			names := make(map[string]bool)
			labels := make(map[string]bool)
			aliases := make(map[string]string)

			for _, f := range s.Fields {
				if f.Name == "" || f.Label == "" {
					t.Errorf("field %+v has empty name or label", f)
				}
				if names[f.Name] {
					t.Errorf("duplicate field name %q", f.Name)
				}
				names[f.Name] = true

				if labels[strings.ToLower(f.Label)] {
					t.Errorf("duplicate label %q", f.Label)
				}
				labels[strings.ToLower(f.Label)] = true

				if len(f.Aliases) == 0 {
					t.Errorf("field %q has no aliases and can never resolve", f.Name)
				}
				for _, a := range f.Aliases {
					key := strings.ToLower(a)
					if owner, taken := aliases[key]; taken {
						t.Errorf("alias %q claimed by both %q and %q", a, owner, f.Name)
					}
					aliases[key] = f.Name
				}
			}
		})
	}
}

// The display label must be an accepted alias, so an exported file's header
// always resolves back to the same field.
func TestSchemas_LabelsResolve(t *testing.T) {
	for _, s := range allSchemas() {
		t.Run(s.Name, func(t *testing.T) {
			for _, f := range s.Fields {
				if !f.Matches(f.Label) {
					t.Errorf("field %q: label %q is not among its aliases", f.Name, f.Label)
				}
			}
		})
	}
}

func TestSchemas_IdentityAndRequired(t *testing.T) {
	for _, s := range allSchemas() {
		t.Run(s.Name, func(t *testing.T) {
			if len(s.Identity()) == 0 {
				t.Error("no identity fields, blank-row detection cannot work")
			}
			if len(s.Required()) == 0 {
				t.Error("no required fields")
			}
		})
	}
}

func TestParticipants_RequiredFields(t *testing.T) {
	want := []string{"name", "surname", "email"}
	got := Participants().Required()

	if len(got) != len(want) {
		t.Fatalf("Required() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Required()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// ----------------------------------------------------------------------------
// Field Tests
// ----------------------------------------------------------------------------

func TestField_Matches(t *testing.T) {
	f := Field{Name: "email", Aliases: []string{"Email", "Email Address", "E-mail"}}

	tests := []struct {
		header string
		want   bool
	}{
		{"Email", true},
		{"EMAIL", true},
		{"email address", true},
		{"e-mail", true},
		{"Emails", false},
		{"Mail", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := f.Matches(tt.header); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSchema_Field(t *testing.T) {
	s := Participants()

	if f, ok := s.Field("email"); !ok || f.Label != "Email" {
		t.Errorf("Field(email) = (%+v, %v)", f, ok)
	}
	if f, ok := s.Field("EMAIL"); !ok || f.Name != "email" {
		t.Errorf("Field(EMAIL) = (%+v, %v), lookup should be case-insensitive", f, ok)
	}
	if _, ok := s.Field("nonexistent"); ok {
		t.Error("Field(nonexistent) = true, want false")
	}
}

func TestSchema_Headers(t *testing.T) {
	s := Participants()
	headers := s.Headers()

	if len(headers) != len(s.Fields) {
		t.Fatalf("Headers() has %d entries, want %d", len(headers), len(s.Fields))
	}
	for i, f := range s.Fields {
		if headers[i] != f.Label {
			t.Errorf("Headers()[%d] = %q, want %q", i, headers[i], f.Label)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindText, "text"},
		{KindInt, "integer"},
		{KindBool, "boolean"},
		{KindDate, "date"},
		{Kind(99), "value"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

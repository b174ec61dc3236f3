package core

import (
	"strings"
	"testing"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

// ----------------------------------------------------------------------------
// IsBlankRow Tests
// ----------------------------------------------------------------------------

func TestIsBlankRow(t *testing.T) {
	s := schema.Participants()
	cols := Resolve([]string{"Name", "Surname", "Email", "Phone"}, s)

	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"fully empty", []string{"", "", "", ""}, true},
		{"whitespace identity cells", []string{"  ", "  ", "x@example.com", ""}, true},
		{"non-identity data does not rescue", []string{"", "", "x@example.com", "555"}, true},
		{"name present", []string{"Ada", "", "", ""}, false},
		{"surname present", []string{"", "Lovelace", "", ""}, false},
		{"short row", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlankRow(tt.row, cols, s); got != tt.want {
				t.Errorf("IsBlankRow(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseRow Tests
// ----------------------------------------------------------------------------

func TestParseRow(t *testing.T) {
	s := schema.Participants()
	cols := Resolve([]string{"Name", "Surname", "Email", "Guests", "Attending", "Registered On"}, s)

	row := []string{"Ada", "Lovelace", "ada@example.com", "2.9", "yes", "3/15/2024"}
	rec, err := ParseRow(row, cols, s)
	if err != nil {
		t.Fatalf("ParseRow() error = %v", err)
	}

	if got := rec.Text("name"); got != "Ada" {
		t.Errorf("name = %q, want %q", got, "Ada")
	}
	if got := rec.Values["guests"].Int; got != 2 {
		t.Errorf("guests = %d, want 2 (decimal truncated)", got)
	}
	if !rec.Values["attending"].Bool {
		t.Error("attending = false, want true")
	}
	d := rec.Values["registered_on"]
	if !d.DateSet || d.Date.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("registered_on = (%v, %v), want 2024-03-15", d.Date, d.DateSet)
	}

	// Unresolved fields still get a definite neutral value.
	if v, ok := rec.Values["phone"]; !ok || v.Text != "" {
		t.Errorf("phone = (%v, %v), want empty text value", v, ok)
	}
	if rec.ID != 0 {
		t.Errorf("ParseRow assigned ID %d, identifiers belong to the store", rec.ID)
	}
}

func TestParseRow_RequiredFieldEmpty(t *testing.T) {
	s := schema.Participants()
	cols := Resolve([]string{"Name", "Surname", "Email"}, s)

	_, err := ParseRow([]string{"Ada", "Lovelace", ""}, cols, s)
	if err == nil {
		t.Fatal("ParseRow() with empty required email succeeded, want error")
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

// ----------------------------------------------------------------------------
// MakeRecord Tests
// ----------------------------------------------------------------------------

func TestMakeRecord_UnknownDateIsNoValue(t *testing.T) {
	s := schema.Participants()

	rec, err := MakeRecord(s, map[string]string{
		"name":          "Ada",
		"surname":       "Lovelace",
		"email":         "ada@example.com",
		"registered_on": "not a date",
	})
	if err != nil {
		t.Fatalf("MakeRecord() error = %v", err)
	}

	// An unparseable date is an explicit "no value", never a row failure.
	if rec.Values["registered_on"].DateSet {
		t.Error("registered_on.DateSet = true, want false for unparseable date")
	}
}

func TestMakeRecord_RequiredWhitespaceOnly(t *testing.T) {
	s := schema.Participants()

	_, err := MakeRecord(s, map[string]string{
		"name":    "Ada",
		"surname": "   ",
		"email":   "ada@example.com",
	})
	if err == nil {
		t.Fatal("MakeRecord() with whitespace-only required surname succeeded, want error")
	}
}

package core

import (
	"testing"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

func registerFixtures(t *testing.T) {
	t.Helper()
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	Register(Definition{
		Info:   Info{Key: "participants", Group: "Events", Label: "Participants"},
		Schema: schema.Participants(),
	})
	Register(Definition{
		Info:   Info{Key: "placements", Group: "Recruiting", Label: "Placements"},
		Schema: schema.Placements(),
	})
}

// ----------------------------------------------------------------------------
// Registry Tests
// ----------------------------------------------------------------------------

func TestRegister_DuplicateKeyPanics(t *testing.T) {
	registerFixtures(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register(Definition{Info: Info{Key: "participants"}})
}

func TestLookup(t *testing.T) {
	registerFixtures(t)

	def, ok := Lookup("participants")
	if !ok {
		t.Fatal("Lookup(participants) = false, want true")
	}
	if def.Info.Label != "Participants" {
		t.Errorf("Label = %q, want Participants", def.Info.Label)
	}

	if _, ok := Lookup("nonexistent"); ok {
		t.Error("Lookup(nonexistent) = true, want false")
	}
}

func TestAll_SortedByGroupThenKey(t *testing.T) {
	registerFixtures(t)
	Register(Definition{Info: Info{Key: "alumni", Group: "Events", Label: "Alumni"}})

	defs := All()
	wantKeys := []string{"alumni", "participants", "placements"}
	if len(defs) != len(wantKeys) {
		t.Fatalf("All() returned %d definitions, want %d", len(defs), len(wantKeys))
	}
	for i, key := range wantKeys {
		if defs[i].Info.Key != key {
			t.Errorf("All()[%d].Key = %q, want %q", i, defs[i].Info.Key, key)
		}
	}
}

func TestGroups(t *testing.T) {
	registerFixtures(t)

	groups := Groups()
	want := []string{"Events", "Recruiting"}
	if len(groups) != len(want) {
		t.Fatalf("Groups() = %v, want %v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, groups[i], want[i])
		}
	}

	if got := DatasetCount(); got != 2 {
		t.Errorf("DatasetCount() = %d, want 2", got)
	}
}

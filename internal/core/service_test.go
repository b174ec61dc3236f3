package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rosterdesk/rosterdesk/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{
			MaxFileSize:   20 << 20,
			MaxConcurrent: 2,
			Timeout:       time.Minute,
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	registerFixtures(t)

	svc, err := NewService(testConfig())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func validParticipant() map[string]string {
	return map[string]string{
		"name":    "Ada",
		"surname": "Lovelace",
		"email":   "ada@example.com",
	}
}

// ----------------------------------------------------------------------------
// Service Tests
// ----------------------------------------------------------------------------

func TestNewService_NoDatasets(t *testing.T) {
	ClearRegistry()
	t.Cleanup(ClearRegistry)

	if _, err := NewService(testConfig()); err == nil {
		t.Error("NewService() with empty registry succeeded, want error")
	}
}

func TestService_UnknownDataset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Records("nonexistent"); !errors.Is(err, ErrUnknownDataset) {
		t.Errorf("Records() error = %v, want ErrUnknownDataset", err)
	}
	if _, err := svc.Add(ctx, "nonexistent", validParticipant()); !errors.Is(err, ErrUnknownDataset) {
		t.Errorf("Add() error = %v, want ErrUnknownDataset", err)
	}
	if _, err := svc.Export("nonexistent"); !errors.Is(err, ErrUnknownDataset) {
		t.Errorf("Export() error = %v, want ErrUnknownDataset", err)
	}
}

func TestService_AddValidatesRequired(t *testing.T) {
	svc := newTestService(t)

	raw := validParticipant()
	raw["email"] = ""

	if _, err := svc.Add(context.Background(), "participants", raw); err == nil {
		t.Error("Add() with empty required email succeeded, want error")
	}
	if count, _ := svc.Count("participants"); count != 0 {
		t.Errorf("Count() = %d, want 0 after rejected add", count)
	}
}

func TestService_AddCoercesLikeImport(t *testing.T) {
	svc := newTestService(t)

	raw := validParticipant()
	raw["guests"] = "2.9"
	raw["attending"] = "yes"

	rec, err := svc.Add(context.Background(), "participants", raw)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if rec.ID != 1 {
		t.Errorf("rec.ID = %d, want 1", rec.ID)
	}
	if rec.Values["guests"].Int != 2 || !rec.Values["attending"].Bool {
		t.Errorf("guests = %d attending = %v, API mutation must coerce like import",
			rec.Values["guests"].Int, rec.Values["attending"].Bool)
	}
}

func TestService_UpdateAbsentID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), "participants", 42, validParticipant())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestService_DeleteAbsentID(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Delete(context.Background(), "participants", 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestService_Lifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, "participants", validParticipant())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	updated := validParticipant()
	updated["name"] = "Augusta"
	got, err := svc.Update(ctx, "participants", rec.ID, updated)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Text("name") != "Augusta" {
		t.Errorf("name = %q, want Augusta", got.Text("name"))
	}

	if err := svc.Delete(ctx, "participants", rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if count, _ := svc.Count("participants"); count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}
}

func TestService_DatasetsAreIndependent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "participants", validParticipant()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if count, _ := svc.Count("placements"); count != 0 {
		t.Errorf("placements count = %d, want 0 (stores must not share state)", count)
	}

	stats := svc.Stats()
	if stats["participants"] != 1 || stats["placements"] != 0 {
		t.Errorf("Stats() = %v, want participants:1 placements:0", stats)
	}
}

func TestService_ImportAssignsImportID(t *testing.T) {
	svc := newTestService(t)

	wb := buildWorkbook(t, [][]string{
		{"Name", "Surname", "Email"},
		{"Ada", "Lovelace", "ada@example.com"},
	})

	result, err := svc.Import(context.Background(), "participants", wb)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.ImportID == "" {
		t.Error("ImportID is empty, want a generated identifier")
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
}

func TestService_SubscribeReceivesChanges(t *testing.T) {
	svc := newTestService(t)

	var got []Change
	cancel, err := svc.Subscribe("participants", func(c Change) { got = append(got, c) })
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer cancel()

	if _, err := svc.Add(context.Background(), "participants", validParticipant()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if len(got) != 1 || got[0].Op != OpAdd {
		t.Errorf("subscriber saw %v, want one OpAdd change", got)
	}
}

func TestService_ClearResetsDataset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "participants", validParticipant()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := svc.Clear(ctx, "participants"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	rec, err := svc.Add(ctx, "participants", validParticipant())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if rec.ID != 1 {
		t.Errorf("id after Clear = %d, want 1", rec.ID)
	}
}

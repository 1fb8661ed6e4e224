package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ghalymotors/showroom/pkg/leads"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "showroom.sqlite"))
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFavoritesRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if got := db.LoadFavorites(); len(got) != 0 {
		t.Fatalf("fresh db should have no favorites, got %v", got)
	}

	db.SaveFavorites([]int{5})
	if got := db.LoadFavorites(); len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected [5], got %v", got)
	}

	db.SaveFavorites(nil)
	if got := db.LoadFavorites(); len(got) != 0 {
		t.Fatalf("expected empty favorites, got %v", got)
	}
}

func TestCompareRoundTrip(t *testing.T) {
	db := openTestDB(t)

	db.SaveCompare([]int{3, 1, 2})
	got := db.LoadCompare()
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("compare list must keep insertion order, got %v", got)
	}
}

func TestCorruptValueFallsBackToEmpty(t *testing.T) {
	db := openTestDB(t)

	if err := db.setValue(KeyFavorites, "{not json"); err != nil {
		t.Fatalf("seeding corrupt value: %v", err)
	}
	if got := db.LoadFavorites(); len(got) != 0 {
		t.Fatalf("corrupt value should yield empty set, got %v", got)
	}
}

func TestDarkModeDefaultFalse(t *testing.T) {
	db := openTestDB(t)

	if db.DarkMode() {
		t.Fatal("dark mode should default to false")
	}
	db.SetDarkMode(true)
	if !db.DarkMode() {
		t.Fatal("dark mode should persist")
	}
}

func TestPreferences(t *testing.T) {
	db := openTestDB(t)

	if got := db.Preference("grid.columns"); got.Exists() {
		t.Fatalf("fresh db should have no preferences, got %v", got)
	}

	db.SetPreference("grid.columns", 3)
	if got := db.Preference("grid.columns").Int(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	// Corrupt document falls back to defaults and is overwritten on write.
	if err := db.setValue(KeyPreferences, "not-a-doc"); err != nil {
		t.Fatalf("seeding corrupt doc: %v", err)
	}
	if got := db.Preference("grid.columns"); got.Exists() {
		t.Fatal("corrupt doc should read as empty")
	}
	db.SetPreference("grid.columns", 4)
	if got := db.Preference("grid.columns").Int(); got != 4 {
		t.Fatalf("expected 4 after rewrite, got %d", got)
	}
}

func TestLeads(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.InsertLead(ctx, leads.Lead{
		Kind:      leads.KindTestDrive,
		VehicleID: 1,
		Name:      "Jane Roe",
		Email:     "jane@example.com",
		Phone:     "0100 123 4567",
		Date:      "2026-09-01",
		Time:      "14:00",
	})
	if err != nil {
		t.Fatalf("inserting lead: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero lead id")
	}

	if _, err := db.InsertLead(ctx, leads.Lead{
		Kind:      leads.KindContact,
		VehicleID: 2,
		Name:      "John Doe",
		Email:     "john@example.com",
		Phone:     "0100 765 4321",
		Message:   "Is this still available?",
	}); err != nil {
		t.Fatalf("inserting contact lead: %v", err)
	}

	all, err := db.ListLeads(ctx, "")
	if err != nil {
		t.Fatalf("listing leads: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(all))
	}

	testDrives, err := db.ListLeads(ctx, leads.KindTestDrive)
	if err != nil {
		t.Fatalf("listing test drives: %v", err)
	}
	if len(testDrives) != 1 || testDrives[0].Date != "2026-09-01" {
		t.Fatalf("unexpected test drives: %+v", testDrives)
	}

	counts, err := db.CountLeads(ctx)
	if err != nil {
		t.Fatalf("counting leads: %v", err)
	}
	if counts[leads.KindTestDrive] != 1 || counts[leads.KindContact] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

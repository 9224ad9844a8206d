package repository

import (
	"context"
	"reflect"
	"testing"
)

func TestGetSettingsNeverSaved(t *testing.T) {
	db := testDB(t)
	s, err := NewSettingsRepo(db).Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s != nil {
		t.Errorf("settings = %+v, want nil on fresh database", s)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewSettingsRepo(db)

	groups := `[{"name":"Perso"}]`
	order := `["a1","a2"]`
	version := "2.3.0"
	in := Settings{
		Theme:             "dark",
		PrimaryColor:      "#6366f1",
		DisplayStyle:      "modern",
		WindowPosition:    &WindowPosition{X: 40, Y: 60},
		WindowSize:        &WindowSize{Width: 1280, Height: 800},
		AccountGroups:     &groups,
		AccountsOrder:     &order,
		LastSeenVersion:   &version,
		ComponentSpacing:  8,
		ComponentPadding:  4,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("settings nil after save")
	}
	if !reflect.DeepEqual(*got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", *got, in)
	}
}

func TestSaveSettingsUpsertsInPlace(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewSettingsRepo(db)

	if err := repo.Save(ctx, Settings{Theme: "light", PrimaryColor: "#fff", DisplayStyle: "modern", ComponentSpacing: 6, ComponentPadding: 6}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, Settings{Theme: "dark", PrimaryColor: "#000", DisplayStyle: "classic", ComponentSpacing: 2, ComponentPadding: 2}); err != nil {
		t.Fatal(err)
	}

	if n := countRows(t, db, "settings"); n != 1 {
		t.Fatalf("settings rows = %d, want singleton", n)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != "dark" || got.DisplayStyle != "classic" {
		t.Errorf("second save not applied: %+v", got)
	}
}

// A half-stored pair (only x, no y) must read back as no placement at all.
func TestWindowPositionHalfStoredIsAbsent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
	INSERT INTO settings (id, theme, "primaryColor", "displayStyle", "windowPositionX", "windowSizeHeight", "componentSpacing", "componentPadding")
	VALUES (1, 'system', '#6366f1', 'modern', 100, 700, 6, 6)`)
	if err != nil {
		t.Fatal(err)
	}

	got, err := NewSettingsRepo(db).Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.WindowPosition != nil {
		t.Errorf("windowPosition = %+v, want nil with only x stored", got.WindowPosition)
	}
	if got.WindowSize != nil {
		t.Errorf("windowSize = %+v, want nil with only height stored", got.WindowSize)
	}
}

// Saving with nil placement must clear any previously stored halves.
func TestSaveSettingsClearsPlacement(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewSettingsRepo(db)

	withPos := Settings{Theme: "system", PrimaryColor: "#6366f1", DisplayStyle: "modern",
		WindowPosition: &WindowPosition{X: 1, Y: 2}, ComponentSpacing: 6, ComponentPadding: 6}
	if err := repo.Save(ctx, withPos); err != nil {
		t.Fatal(err)
	}
	withPos.WindowPosition = nil
	if err := repo.Save(ctx, withPos); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.WindowPosition != nil {
		t.Errorf("windowPosition = %+v after clearing save", got.WindowPosition)
	}
}

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	tmpDir, err := os.MkdirTemp("", "theme-test-*")
	if err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(filepath.Join(tmpDir, "prefs.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatal(err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestStore_DefaultsToLight(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	if store.Theme() {
		t.Error("fresh store should default to light mode")
	}
}

func TestStore_ToggleRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	if err := store.SetTheme(true); err != nil {
		t.Fatalf("failed to set theme: %v", err)
	}
	if !store.Theme() {
		t.Error("expected dark after SetTheme(true)")
	}

	if err := store.SetTheme(false); err != nil {
		t.Fatalf("failed to set theme: %v", err)
	}
	if store.Theme() {
		t.Error("expected light after toggling twice")
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "theme-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "prefs.db")

	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetTheme(true); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if !reopened.Theme() {
		t.Error("theme flag did not survive a reopen")
	}
}

func TestPaletteFor(t *testing.T) {
	dark := PaletteFor(true)
	light := PaletteFor(false)

	if dark.Text == light.Text {
		t.Error("palettes should differ between modes")
	}
	if dark.Text == "" || light.Text == "" {
		t.Error("palettes must define a text color")
	}
}

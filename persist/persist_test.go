package persist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/eldritch-clicker/game"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(filepath.Join(t.TempDir(), "saves", "game.save"))
	m.now = func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) }
	return m
}

// playedState drives a state through clicks, ticks and purchases
func playedState(t *testing.T) *game.State {
	t.Helper()
	s := game.New()
	for i := 0; i < 1500; i++ {
		s.Click()
	}
	for _, id := range []string{"cursor", "cursor", "cursor", "grandma"} {
		if err := s.BuyBuilding(id); err != nil {
			t.Fatalf("buy %s: %v", id, err)
		}
	}
	if err := s.BuyUpgrade("necronomicon"); err != nil {
		t.Fatalf("buy upgrade: %v", err)
	}
	s.Tick(1234 * time.Millisecond)
	s.Tick(7 * time.Millisecond)
	s.SetMenu(game.MenuUpgrades)
	s.MoveSelection(2)
	return s
}

// TestRoundTrip verifies a saved state loads back field-for-field identical
func TestRoundTrip(t *testing.T) {
	m := newTestManager(t)

	states := map[string]*game.State{
		"fresh":  game.New(),
		"played": playedState(t),
	}
	for name, s := range states {
		if err := m.Save(s); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		loaded, err := m.Load()
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if diff := cmp.Diff(s, loaded); diff != "" {
			t.Errorf("%s: round trip mismatch (-saved +loaded):\n%s", name, diff)
		}
	}
}

// TestRoundTripFractionalPoints verifies float amounts survive the text encoding exactly
func TestRoundTripFractionalPoints(t *testing.T) {
	m := newTestManager(t)
	s := game.New()
	s.Lifetime = 123456789.0123456789
	s.Points = 0.1 + 0.2
	s.RecomputeClickMultiplier()

	if err := m.Save(s); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Points != s.Points || loaded.Lifetime != s.Lifetime {
		t.Errorf("Expected %v/%v, got %v/%v", s.Points, s.Lifetime, loaded.Points, loaded.Lifetime)
	}
	if loaded.ClickMultiplier != 100 {
		t.Errorf("Expected derived multiplier 100, got %v", loaded.ClickMultiplier)
	}
}

// TestLoadMissingFile verifies a missing save is a fresh game, not an error
func TestLoadMissingFile(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Load()
	if err != nil {
		t.Fatalf("Expected nil error for missing file, got %v", err)
	}
	if s == nil || s.Points != 0 || len(s.Buildings) != 6 {
		t.Errorf("Expected default state, got %+v", s)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "this is not = [ toml"},
		{"wrong type", "version = 1\npoints = \"many\"\n"},
		{"bad version", "version = 99\npoints = 1.0\nlifetime = 1.0\n"},
		{"negative points", "version = 1\npoints = -5.0\nlifetime = 1.0\n"},
		{"points above lifetime", "version = 1\npoints = 50.0\nlifetime = 10.0\n"},
		{"unknown menu", "version = 1\nmenu = \"sanctum\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			if err := os.MkdirAll(filepath.Dir(m.Path()), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(m.Path(), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			s, err := m.Load()
			if !errors.Is(err, ErrCorruptSave) {
				t.Fatalf("Expected ErrCorruptSave, got %v", err)
			}
			if s == nil || s.Points != 0 || s.Lifetime != 0 {
				t.Errorf("Expected default fallback state, got %+v", s)
			}
		})
	}
}

// TestLoadIgnoresUnknownIDs verifies catalog drift does not corrupt a save
func TestLoadIgnoresUnknownIDs(t *testing.T) {
	m := newTestManager(t)
	content := strings.Join([]string{
		"version = 1",
		"points = 10.0",
		"lifetime = 20.0",
		"[buildings]",
		"cursor = 3",
		"shoggoth = 9",
		"[upgrades]",
		"incantation = true",
		"forgotten = true",
		"",
	}, "\n")
	if err := os.MkdirAll(filepath.Dir(m.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.Path(), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := m.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Buildings[0].Owned != 3 {
		t.Errorf("Expected 3 cultists, got %d", s.Buildings[0].Owned)
	}
	if !s.Upgrades[1].Purchased {
		t.Error("Expected incantation purchased")
	}
	if s.SaveID == "" {
		t.Error("Expected a generated save id when the file has none")
	}
}

// TestSaveIOError verifies write failures surface as ErrIO
func TestSaveIOError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "saves")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(filepath.Join(blocker, "game.save"))
	err := m.Save(game.New())
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}
}

// TestSaveLeavesNoTempFiles verifies the atomic replace cleans up after itself
func TestSaveLeavesNoTempFiles(t *testing.T) {
	m := newTestManager(t)
	for i := 0; i < 3; i++ {
		if err := m.Save(game.New()); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}
	entries, err := os.ReadDir(filepath.Dir(m.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "game.save" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only game.save, found %v", names)
	}
}

func TestDefaultPath(t *testing.T) {
	if got := NewManager("").Path(); got != "saves/game.save" {
		t.Errorf("Expected saves/game.save, got %q", got)
	}
}

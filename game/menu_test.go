package game

import (
	"errors"
	"testing"
)

func TestMoveSelectionClamps(t *testing.T) {
	s := New()
	s.SetMenu(MenuBuildings)

	s.MoveSelection(-1)
	if s.Selected != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", s.Selected)
	}
	for i := 0; i < 20; i++ {
		s.MoveSelection(1)
	}
	if s.Selected != len(s.Buildings)-1 {
		t.Errorf("Expected selection clamped to %d, got %d", len(s.Buildings)-1, s.Selected)
	}

	s.SetMenu(MenuUpgrades)
	if s.Selected != 0 {
		t.Errorf("Expected selection reset on menu switch, got %d", s.Selected)
	}

	s.SetMenu(MenuMain)
	s.MoveSelection(3)
	if s.Selected != 0 {
		t.Errorf("Expected no selection on main menu, got %d", s.Selected)
	}
}

func TestConfirmSelection(t *testing.T) {
	s := New()
	s.Points = 1000

	// Main menu has nothing to confirm
	if handled, err := s.ConfirmSelection(); handled || err != nil {
		t.Errorf("Expected no-op on main menu, got handled=%v err=%v", handled, err)
	}

	s.SetMenu(MenuBuildings)
	s.MoveSelection(1) // Elder One
	handled, err := s.ConfirmSelection()
	if !handled || err != nil {
		t.Fatalf("Expected purchase, got handled=%v err=%v", handled, err)
	}
	if s.Buildings[1].Owned != 1 || s.Points != 900 {
		t.Errorf("Unexpected state after purchase: owned=%d points=%v", s.Buildings[1].Owned, s.Points)
	}

	s.SetMenu(MenuUpgrades)
	s.MoveSelection(1) // Eldritch Incantation, 500
	if _, err := s.ConfirmSelection(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := s.ConfirmSelection(); !errors.Is(err, ErrAlreadyPurchased) {
		t.Errorf("Expected ErrAlreadyPurchased, got %v", err)
	}
}

// TestConfirmOutOfRange verifies a stale index is a no-op rather than a failure
func TestConfirmOutOfRange(t *testing.T) {
	s := New()
	s.Points = 1e9
	s.Menu = MenuUpgrades
	s.Selected = 99

	handled, err := s.ConfirmSelection()
	if handled || err != nil {
		t.Errorf("Expected no-op, got handled=%v err=%v", handled, err)
	}
	if s.Points != 1e9 {
		t.Errorf("Points changed: %v", s.Points)
	}
}

func TestParseMenu(t *testing.T) {
	for _, m := range []Menu{MenuMain, MenuBuildings, MenuUpgrades} {
		got, ok := ParseMenu(m.String())
		if !ok || got != m {
			t.Errorf("ParseMenu(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMenu("sanctum"); ok {
		t.Error("Expected unknown menu to fail")
	}
}

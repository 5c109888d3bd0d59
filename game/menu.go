package game

// SetMenu switches the active screen and resets the selection
func (s *State) SetMenu(m Menu) {
	s.Menu = m
	s.Selected = 0
}

// ItemCount is the number of selectable rows in the active menu
func (s *State) ItemCount() int {
	switch s.Menu {
	case MenuBuildings:
		return len(s.Buildings)
	case MenuUpgrades:
		return len(s.Upgrades)
	}
	return 0
}

// MoveSelection shifts the highlighted row by delta, clamped to the active list
func (s *State) MoveSelection(delta int) {
	n := s.ItemCount()
	if n == 0 {
		s.Selected = 0
		return
	}
	sel := s.Selected + delta
	if sel < 0 {
		sel = 0
	}
	if sel > n-1 {
		sel = n - 1
	}
	s.Selected = sel
}

// ConfirmSelection buys the highlighted row of the active menu
// Returns handled=false when nothing is selectable (main menu or out-of-range index)
func (s *State) ConfirmSelection() (handled bool, err error) {
	if s.Selected < 0 || s.Selected >= s.ItemCount() {
		return false, nil
	}
	switch s.Menu {
	case MenuBuildings:
		return true, s.BuyBuilding(s.Buildings[s.Selected].ID)
	case MenuUpgrades:
		return true, s.BuyUpgrade(s.Upgrades[s.Selected].ID)
	}
	return false, nil
}

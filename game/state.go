// Package game holds the mutable game state and its update rules
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/eldritch-clicker/catalog"
)

// Menu identifies the active screen
type Menu int

const (
	MenuMain Menu = iota
	MenuBuildings
	MenuUpgrades
)

func (m Menu) String() string {
	switch m {
	case MenuMain:
		return "main"
	case MenuBuildings:
		return "buildings"
	case MenuUpgrades:
		return "upgrades"
	default:
		return fmt.Sprintf("menu(%d)", int(m))
	}
}

// ParseMenu is the inverse of Menu.String
func ParseMenu(s string) (Menu, bool) {
	switch s {
	case "main":
		return MenuMain, true
	case "buildings":
		return MenuBuildings, true
	case "upgrades":
		return MenuUpgrades, true
	}
	return MenuMain, false
}

// Building is a catalog building with its owned count
type Building struct {
	catalog.Building
	Owned uint64
}

// NextCost is the price of the next unit: floor(base * growth^owned)
func (b Building) NextCost() float64 {
	if b.Owned == 0 {
		return b.BaseCost
	}
	return math.Floor(b.BaseCost * math.Pow(b.Growth, float64(b.Owned)))
}

// Upgrade is a catalog upgrade with its purchased flag
type Upgrade struct {
	catalog.Upgrade
	Purchased bool
}

// State is the single owned game state
// Not safe for concurrent use; one goroutine owns it and hands Clone() copies to others
type State struct {
	SaveID string

	Points   float64 // Spendable
	Lifetime float64 // Every point ever gained, never reduced by spending

	// ClickMultiplier is the tier multiplier derived from Lifetime
	ClickMultiplier float64

	Buildings []Building
	Upgrades  []Upgrade

	Menu     Menu
	Selected int
}

// New creates a default state populated from the catalog
func New() *State {
	s := &State{
		SaveID:          uuid.NewString(),
		ClickMultiplier: 1,
	}
	for _, b := range catalog.Buildings() {
		s.Buildings = append(s.Buildings, Building{Building: b})
	}
	for _, u := range catalog.Upgrades() {
		s.Upgrades = append(s.Upgrades, Upgrade{Upgrade: u})
	}
	return s
}

// Clone returns a deep copy suitable for handing to another goroutine
func (s *State) Clone() *State {
	c := *s
	c.Buildings = append([]Building(nil), s.Buildings...)
	c.Upgrades = append([]Upgrade(nil), s.Upgrades...)
	return &c
}

// RecomputeClickMultiplier derives the tier from lifetime points
func (s *State) RecomputeClickMultiplier() {
	s.ClickMultiplier = ClickMultiplierFor(s.Lifetime)
}

// gain credits points and lifetime identically and refreshes the tier
func (s *State) gain(amount float64) {
	if amount <= 0 {
		return
	}
	s.Points += amount
	s.Lifetime += amount
	s.RecomputeClickMultiplier()
}

// ClickPower is the per-click gain: tier multiplier times purchased click upgrades
func (s *State) ClickPower() float64 {
	power := s.ClickMultiplier
	for _, u := range s.Upgrades {
		if u.Purchased {
			power *= u.Multiplier(catalog.TargetClick)
		}
	}
	return power
}

// Click applies one manual click and returns the amount gained
func (s *State) Click() float64 {
	amount := s.ClickPower()
	s.gain(amount)
	return amount
}

// BuildingMultiplier is the product of purchased upgrades affecting building id
func (s *State) BuildingMultiplier(id string) float64 {
	m := 1.0
	for _, u := range s.Upgrades {
		if u.Purchased {
			m *= u.Multiplier(id)
		}
	}
	return m
}

// BuildingProduction is the effective per-second output of all owned units of b
func (s *State) BuildingProduction(b Building) float64 {
	return float64(b.Owned) * b.Production * s.BuildingMultiplier(b.ID)
}

// ProductionPerSecond sums effective production across buildings
func (s *State) ProductionPerSecond() float64 {
	total := 0.0
	for _, b := range s.Buildings {
		total += s.BuildingProduction(b)
	}
	return total
}

// Tick applies idle production for elapsed and returns the amount gained
func (s *State) Tick(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	secs := elapsed.Seconds()
	total := 0.0
	for _, b := range s.Buildings {
		if b.Owned == 0 {
			continue
		}
		total += float64(b.Owned) * b.Production * s.BuildingMultiplier(b.ID) * secs
	}
	s.gain(total)
	return total
}

func (s *State) buildingIndex(id string) int {
	for i := range s.Buildings {
		if s.Buildings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) upgradeIndex(id string) int {
	for i := range s.Upgrades {
		if s.Upgrades[i].ID == id {
			return i
		}
	}
	return -1
}

// BuyBuilding spends the next-unit cost and increments the owned count
func (s *State) BuyBuilding(id string) error {
	i := s.buildingIndex(id)
	if i < 0 {
		return fmt.Errorf("building %q: %w", id, ErrUnknownItem)
	}
	cost := s.Buildings[i].NextCost()
	if s.Points < cost {
		return fmt.Errorf("%s costs %.0f: %w", s.Buildings[i].Name, cost, ErrInsufficientFunds)
	}
	s.Points -= cost
	s.Buildings[i].Owned++
	return nil
}

// BuyUpgrade spends the upgrade cost and marks it purchased
func (s *State) BuyUpgrade(id string) error {
	i := s.upgradeIndex(id)
	if i < 0 {
		return fmt.Errorf("upgrade %q: %w", id, ErrUnknownItem)
	}
	u := &s.Upgrades[i]
	if u.Purchased {
		return fmt.Errorf("%s: %w", u.Name, ErrAlreadyPurchased)
	}
	if s.Points < u.Cost {
		return fmt.Errorf("%s costs %.0f: %w", u.Name, u.Cost, ErrInsufficientFunds)
	}
	s.Points -= u.Cost
	u.Purchased = true
	return nil
}

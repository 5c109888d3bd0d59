// Package catalog holds the static building and upgrade tables
package catalog

// Effect targets beyond building ids
const (
	TargetClick = "click"
	TargetAll   = "all"
)

// Building is the static definition of a purchasable producer
type Building struct {
	ID          string
	Name        string
	Description string
	BaseCost    float64
	Growth      float64 // Cost multiplier applied per owned unit
	Production  float64 // Points per second per unit
}

// Effect multiplies production of Target (building id, TargetAll) or click power (TargetClick)
type Effect struct {
	Target     string
	Multiplier float64
}

// Upgrade is the static definition of a one-time purchase
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Cost        float64
	Effects     []Effect
}

// Affects reports whether the upgrade applies to the given building id or TargetClick
func (u Upgrade) Affects(target string) bool {
	for _, e := range u.Effects {
		if e.Target == target || (e.Target == TargetAll && target != TargetClick) {
			return true
		}
	}
	return false
}

// Multiplier returns the combined factor the upgrade applies to target, 1 when unaffected
func (u Upgrade) Multiplier(target string) float64 {
	m := 1.0
	for _, e := range u.Effects {
		switch {
		case e.Target == target:
			m *= e.Multiplier
		case e.Target == TargetAll && target != TargetClick:
			m *= e.Multiplier
		}
	}
	return m
}

var buildings = []Building{
	{ID: "cursor", Name: "Cultist", Description: "Whispers eldritch secrets", BaseCost: 15, Growth: 1.15, Production: 0.1},
	{ID: "grandma", Name: "Elder One", Description: "Ancient being from beyond", BaseCost: 100, Growth: 1.15, Production: 1},
	{ID: "farm", Name: "Ritual Site", Description: "Conducts forbidden ceremonies", BaseCost: 1100, Growth: 1.15, Production: 8},
	{ID: "mine", Name: "Deep One Colony", Description: "Underwater servants of Cthulhu", BaseCost: 12000, Growth: 1.15, Production: 47},
	{ID: "temple", Name: "Temple of Dagon", Description: "Ancient place of worship", BaseCost: 130000, Growth: 1.15, Production: 260},
	{ID: "portal", Name: "Dimensional Portal", Description: "Gateway to R'lyeh", BaseCost: 1400000, Growth: 1.15, Production: 1400},
}

var upgrades = []Upgrade{
	{
		ID: "necronomicon", Name: "Necronomicon Pages", Description: "Cultists are twice as efficient",
		Cost: 100, Effects: []Effect{{Target: "cursor", Multiplier: 2}},
	},
	{
		ID: "incantation", Name: "Eldritch Incantation", Description: "Your influence is twice as powerful",
		Cost: 500, Effects: []Effect{{Target: TargetClick, Multiplier: 2}},
	},
	{
		ID: "artifacts", Name: "Ancient Artifacts", Description: "Elder Ones are twice as efficient",
		Cost: 1000, Effects: []Effect{{Target: "grandma", Multiplier: 2}},
	},
	{
		ID: "sacrifice", Name: "Blood Sacrifice", Description: "Ritual Sites are twice as efficient",
		Cost: 11000, Effects: []Effect{{Target: "farm", Multiplier: 2}},
	},
	{
		ID: "geometry", Name: "Esoteric Geometry", Description: "Deep One Colonies are twice as efficient",
		Cost: 120000, Effects: []Effect{{Target: "mine", Multiplier: 2}},
	},
	{
		ID: "architecture", Name: "Non-Euclidean Architecture", Description: "Temples of Dagon are twice as efficient",
		Cost: 1300000, Effects: []Effect{{Target: "temple", Multiplier: 2}},
	},
	{
		ID: "stars", Name: "The Stars Are Right", Description: "All minions are twice as efficient",
		Cost: 10000000, Effects: []Effect{{Target: TargetAll, Multiplier: 2}, {Target: TargetClick, Multiplier: 5}},
	},
}

// Buildings returns a copy of the building table in display order
func Buildings() []Building {
	out := make([]Building, len(buildings))
	copy(out, buildings)
	return out
}

// Upgrades returns a copy of the upgrade table in display order
func Upgrades() []Upgrade {
	out := make([]Upgrade, len(upgrades))
	for i, u := range upgrades {
		u.Effects = append([]Effect(nil), u.Effects...)
		out[i] = u
	}
	return out
}

// LookupBuilding finds a building definition by id
func LookupBuilding(id string) (Building, bool) {
	for _, b := range buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}

// LookupUpgrade finds an upgrade definition by id
func LookupUpgrade(id string) (Upgrade, bool) {
	for _, u := range upgrades {
		if u.ID == id {
			u.Effects = append([]Effect(nil), u.Effects...)
			return u, true
		}
	}
	return Upgrade{}, false
}

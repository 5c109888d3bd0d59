package game

// ClickTier is one row of the lifetime-points to click multiplier table
type ClickTier struct {
	Threshold  float64
	Multiplier float64
}

// clickTiers is ascending; thresholds are inclusive lower bounds
var clickTiers = []ClickTier{
	{Threshold: 1e3, Multiplier: 2},
	{Threshold: 1e4, Multiplier: 5},
	{Threshold: 1e5, Multiplier: 10},
	{Threshold: 1e6, Multiplier: 25},
	{Threshold: 1e7, Multiplier: 50},
	{Threshold: 1e8, Multiplier: 100},
}

// ClickMultiplierFor returns the multiplier of the highest threshold met by lifetime, 1 below all
func ClickMultiplierFor(lifetime float64) float64 {
	m := 1.0
	for _, tier := range clickTiers {
		if lifetime < tier.Threshold {
			break
		}
		m = tier.Multiplier
	}
	return m
}

// NextClickTier returns the first tier not yet reached; ok is false at the top tier
func NextClickTier(lifetime float64) (ClickTier, bool) {
	for _, tier := range clickTiers {
		if lifetime < tier.Threshold {
			return tier, true
		}
	}
	return ClickTier{}, false
}

var ranks = []string{
	"Local Cult (Town)",
	"Regional Influence (County)",
	"National Presence (Country)",
	"Continental Power (Continent)",
	"Global Reach (Earth)",
	"Cosmic Influence (Solar System)",
	"Galactic Dominion (Galaxy)",
	"Universal Awakening (Cthulhu Rises!)",
}

// Rank names the domination stage, one per decade of lifetime points starting at 1e3
func Rank(lifetime float64) string {
	idx := 0
	for limit := 1e3; lifetime >= limit && idx < len(ranks)-1; limit *= 10 {
		idx++
	}
	return ranks[idx]
}

package game

import "testing"

// TestClickMultiplierBoundaries verifies inclusive thresholds and non-cumulative selection
func TestClickMultiplierBoundaries(t *testing.T) {
	tests := []struct {
		lifetime float64
		want     float64
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{9999, 2},
		{10000, 5},
		{99999, 5},
		{100000, 10},
		{999999, 10},
		{1000000, 25},
		{9999999, 25},
		{10000000, 50},
		{99999999, 50},
		{100000000, 100},
		{1e12, 100},
	}
	for _, tt := range tests {
		if got := ClickMultiplierFor(tt.lifetime); got != tt.want {
			t.Errorf("ClickMultiplierFor(%v) = %v, want %v", tt.lifetime, got, tt.want)
		}
	}
}

// TestClickMultiplierMonotonic verifies the multiplier never decreases as lifetime grows
func TestClickMultiplierMonotonic(t *testing.T) {
	prev := ClickMultiplierFor(0)
	for lifetime := 1.0; lifetime < 1e10; lifetime *= 1.37 {
		m := ClickMultiplierFor(lifetime)
		if m < prev {
			t.Fatalf("multiplier dropped from %v to %v at lifetime %v", prev, m, lifetime)
		}
		prev = m
	}
}

func TestNextClickTier(t *testing.T) {
	next, ok := NextClickTier(0)
	if !ok || next.Threshold != 1000 || next.Multiplier != 2 {
		t.Errorf("Unexpected next tier from 0: %+v ok=%v", next, ok)
	}
	next, ok = NextClickTier(1000)
	if !ok || next.Threshold != 10000 || next.Multiplier != 5 {
		t.Errorf("Unexpected next tier from 1000: %+v ok=%v", next, ok)
	}
	if _, ok := NextClickTier(1e8); ok {
		t.Error("Expected no next tier at maximum")
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		lifetime float64
		want     string
	}{
		{0, "Local Cult (Town)"},
		{999, "Local Cult (Town)"},
		{1000, "Regional Influence (County)"},
		{1e5, "Continental Power (Continent)"},
		{1e8, "Galactic Dominion (Galaxy)"},
		{999999999, "Galactic Dominion (Galaxy)"},
		{1e9, "Universal Awakening (Cthulhu Rises!)"},
		{1e15, "Universal Awakening (Cthulhu Rises!)"},
	}
	for _, tt := range tests {
		if got := Rank(tt.lifetime); got != tt.want {
			t.Errorf("Rank(%v) = %q, want %q", tt.lifetime, got, tt.want)
		}
	}
}

package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/eldritch-clicker/game"
)

func TestTickEngineUsesActualElapsed(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC))
	te := NewTickEngine(clock)

	s := game.New()
	s.Buildings[1].Owned = 2 // Elder One, 1/s

	clock.Advance(100 * time.Millisecond)
	elapsed, gained := te.Advance(s)
	if elapsed != 100*time.Millisecond {
		t.Errorf("Expected 100ms elapsed, got %v", elapsed)
	}
	if gained != 2*0.1 {
		t.Errorf("Expected %v gained, got %v", 2*0.1, gained)
	}

	// A late tick carries the full gap
	clock.Advance(350 * time.Millisecond)
	elapsed, _ = te.Advance(s)
	if elapsed != 350*time.Millisecond {
		t.Errorf("Expected 350ms elapsed after jitter, got %v", elapsed)
	}
	if te.Count() != 2 {
		t.Errorf("Expected 2 ticks, got %d", te.Count())
	}
	if te.Phase() != PhaseIdle {
		t.Errorf("Expected idle after tick, got %v", te.Phase())
	}
}

// TestTickEngineNoTimePassed verifies a tick without elapsed time is a no-op
func TestTickEngineNoTimePassed(t *testing.T) {
	clock := NewMockTimeProvider(time.Now())
	te := NewTickEngine(clock)

	s := game.New()
	s.Buildings[0].Owned = 10

	elapsed, gained := te.Advance(s)
	if elapsed != 0 || gained != 0 || te.Count() != 0 {
		t.Errorf("Expected no-op, got elapsed=%v gained=%v count=%d", elapsed, gained, te.Count())
	}
}

func TestTickEngineReset(t *testing.T) {
	clock := NewMockTimeProvider(time.Now())
	te := NewTickEngine(clock)

	s := game.New()
	s.Buildings[1].Owned = 1

	clock.Advance(time.Hour)
	te.Reset()
	clock.Advance(time.Second)

	elapsed, gained := te.Advance(s)
	if elapsed != time.Second || gained != 1 {
		t.Errorf("Expected 1s/1pt after reset, got %v/%v", elapsed, gained)
	}
}

package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/eldritch-clicker/game"
)

// TickPhase is the tick engine state
type TickPhase int32

const (
	PhaseIdle    TickPhase = iota // Waiting for the next tick boundary
	PhaseTicking                  // Applying production
)

func (p TickPhase) String() string {
	if p == PhaseTicking {
		return "ticking"
	}
	return "idle"
}

// TickEngine applies idle production using the real elapsed time between ticks
// A late or missed tick is absorbed by the next one, which sees a longer elapsed duration
type TickEngine struct {
	clock    TimeProvider
	lastTick time.Time
	phase    atomic.Int32
	count    atomic.Uint64
}

// NewTickEngine creates a tick engine whose first elapsed interval starts now
func NewTickEngine(clock TimeProvider) *TickEngine {
	return &TickEngine{
		clock:    clock,
		lastTick: clock.Now(),
	}
}

// Reset restarts the elapsed measurement, discarding time since the last tick
func (te *TickEngine) Reset() {
	te.lastTick = te.clock.Now()
}

// Phase returns the current state
func (te *TickEngine) Phase() TickPhase {
	return TickPhase(te.phase.Load())
}

// Count returns the number of ticks applied
func (te *TickEngine) Count() uint64 {
	return te.count.Load()
}

// Advance runs one Idle->Ticking->Idle cycle against s
// Returns the elapsed duration used and the points produced
func (te *TickEngine) Advance(s *game.State) (time.Duration, float64) {
	now := te.clock.Now()
	elapsed := now.Sub(te.lastTick)
	if elapsed <= 0 {
		return 0, 0
	}

	te.phase.Store(int32(PhaseTicking))
	gained := s.Tick(elapsed)
	te.lastTick = now
	te.count.Add(1)
	te.phase.Store(int32(PhaseIdle))

	return elapsed, gained
}

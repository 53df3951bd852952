package stardrift

import (
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Step advances the simulation by dt seconds and returns the new state with
// every snapshot emitted during the tick. prev is not modified.
//
// Order within a tick: spawn clock, then (while playing) the integrator,
// then obstacle and resource resolution. Once the run is over only the
// spawn clock advances.
func Step(prev State, in Input, dt float64, rng *rand.Rand, r Rules) (State, []core.Snapshot) {
	s := prev.Clone()
	s.Tick++

	if dt <= 0 {
		return s, nil
	}

	s.advanceClock(dt, rng, r)
	if s.Phase == PhaseGameOver {
		return s, nil
	}

	s.Player = Integrate(s.Player, in, dt, r)

	var out []core.Snapshot
	out = Resolve(&s, dt, r, out)
	return s, out
}

// Restart begins a new run after game over: entities are cleared, counters
// reset and the craft returned to its spawn point at rest. Spawn timers keep
// their phase. Restart while playing returns prev unchanged and emits nothing.
func Restart(prev State, r Rules) (State, []core.Snapshot) {
	if prev.Phase != PhaseGameOver {
		return prev, nil
	}

	s := NewState(r)
	s.Clock = prev.Clock
	s.Tick = prev.Tick
	return s, []core.Snapshot{s.Snapshot()}
}

// Package stardrift implements Star Drift, a dodge-and-collect arcade game.
// The player steers a craft through drifting debris, collecting resources to
// fill a progress meter; each full meter raises the level and debris speed.
//
// The simulation is a pure function of (State, Input, Δt, random source):
// see Step and Restart. Game adapts it to the platform's registry.Game.
package stardrift

import (
	"slices"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Phase is the gameplay state machine position.
type Phase int

const (
	PhasePlaying  Phase = iota // Initial state
	PhaseGameOver              // Terminal until Restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a run ended.
type Cause string

const (
	CauseNone      Cause = ""
	CauseCollision Cause = "collision" // Player touched debris
	CauseMissed    Cause = "missed"    // Too many resources drifted past
)

// Player is the craft. Heading is visual only.
type Player struct {
	X, Y    float64
	W, H    float64
	VX, VY  float64
	Heading float64 // Radians, 0 = facing right
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Obstacle is a square piece of debris.
type Obstacle struct {
	X, Y float64
	Size float64
}

// Box returns the obstacle's hitbox.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.Size, H: o.Size}
}

// Resource is a collectible; its diameter is used as both hitbox sides.
type Resource struct {
	X, Y     float64
	Diameter float64
}

// Box returns the resource's hitbox.
func (r Resource) Box() core.Box {
	return core.Box{X: r.X, Y: r.Y, W: r.Diameter, H: r.Diameter}
}

// SpawnClock tracks seconds elapsed since each spawner last fired.
// The two timers are independent and keep running during game over.
type SpawnClock struct {
	Obstacle float64
	Resource float64
}

// State is the complete simulation state.
type State struct {
	Player    Player
	Obstacles []Obstacle
	Resources []Resource

	Score    int
	Level    int
	Progress int
	Missed   int

	Phase Phase
	Cause Cause
	Clock SpawnClock
	Tick  uint64
}

// NewState returns a fresh run at level 1 with the craft at its spawn point.
func NewState(r Rules) State {
	return State{
		Player:    spawnPlayer(r),
		Obstacles: make([]Obstacle, 0, 8),
		Resources: make([]Resource, 0, 8),
		Level:     1,
		Phase:     PhasePlaying,
	}
}

func spawnPlayer(r Rules) Player {
	return Player{
		X: r.StartX,
		Y: r.StartY,
		W: r.PlayerW,
		H: r.PlayerH,
	}
}

// Clone returns a copy that shares no entity storage with s.
func (s State) Clone() State {
	s.Obstacles = slices.Clone(s.Obstacles)
	s.Resources = slices.Clone(s.Resources)
	return s
}

// Snapshot returns the externally observed summary of the state.
func (s State) Snapshot() core.Snapshot {
	return core.Snapshot{
		Score:    s.Score,
		Level:    s.Level,
		Progress: s.Progress,
		Missed:   s.Missed,
		GameOver: s.Phase == PhaseGameOver,
	}
}

// endRun moves the state machine to game over. Reports whether the phase changed.
func (s *State) endRun(cause Cause) bool {
	if s.Phase == PhaseGameOver {
		return false
	}
	s.Phase = PhaseGameOver
	s.Cause = cause
	return true
}

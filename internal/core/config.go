package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameSeconds returns the fixed simulation step in seconds.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Cause    string // Why the game ended, empty while running
}

// Snapshot is the externally observed summary of a run. Hosts render the
// HUD from it and derive persisted values from its transitions.
type Snapshot struct {
	Score    int  `json:"score"`
	Level    int  `json:"level"`
	Progress int  `json:"progress"`
	Missed   int  `json:"missed"`
	GameOver bool `json:"gameOver"`
}

// Collected returns the number of resources collected in the run.
func (s Snapshot) Collected() int {
	return s.Score / 10
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Snapshots lists every snapshot emitted during the tick, in order.
	// Empty when nothing observable changed.
	Snapshots []Snapshot
}

package stardrift

import (
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "stardrift"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// loadConfig reads the game config from the CLI path and applies the preset.
func loadConfig() config.StardriftConfig {
	cfg, err := config.LoadStardrift(configPath)
	if err != nil {
		cfg = config.DefaultStardriftConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStardriftPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// LoadRules returns the tuning the next Reset would use.
func LoadRules() Rules {
	return RulesFromConfig(loadConfig())
}

// Game adapts the simulation to the platform's fixed-tick loop.
type Game struct {
	runtime core.RuntimeConfig
	rules   Rules
	rng     *rand.Rand

	state  State
	paused bool

	stars *Starfield
	mouth *mouthAnimation
}

// New creates a new Star Drift game instance.
func New() *Game {
	return &Game{rules: DefaultRules()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Drift"
}

// Reset starts a fresh session with config reloaded from disk.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.rules = RulesFromConfig(loadConfig())

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = NewState(g.rules)
	g.paused = false
	g.stars = NewStarfield(runtime.Seed+1, g.rules.FieldW, g.rules.FieldH)
	g.mouth = newMouthAnimation()
}

// Step advances the game by one tick of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) && g.state.Phase == PhaseGameOver {
		var snaps []core.Snapshot
		g.state, snaps = Restart(g.state, g.rules)
		g.paused = false
		return core.StepResult{State: g.State(), Snapshots: snaps}
	}

	// Pause is a host concern; the simulation is simply not ticked.
	if in.Has(core.ActionPause) && g.state.Phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.FrameSeconds()

	var snaps []core.Snapshot
	g.state, snaps = Step(g.state, InputFromFrame(in), dt, g.rng, g.rules)
	g.stars.Update(dt)
	g.mouth.Update(dt)

	return core.StepResult{State: g.State(), Snapshots: snaps}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Phase == PhaseGameOver,
		Paused:   g.paused,
		Cause:    string(g.state.Cause),
	}
}

// Snapshot returns the current run summary.
func (g *Game) Snapshot() core.Snapshot {
	return g.state.Snapshot()
}

// sim returns a copy of the full simulation state.
func (g *Game) sim() State {
	return g.state.Clone()
}

// Rules returns the rules the current session was built with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

package stardrift

import "github.com/vovakirdan/stardrift/internal/config"

// Rules holds the tunables the simulation reads every tick.
// Distances are field units, speeds are units per second, intervals seconds.
type Rules struct {
	FieldW, FieldH float64

	PlayerW, PlayerH float64
	StartX, StartY   float64
	Accel            float64
	MaxSpeed         float64
	Friction         float64
	HeadingThreshold float64

	ObstacleInterval  float64
	ObstacleMinSize   float64
	ObstacleMaxSize   float64
	ObstacleBaseSpeed float64

	ResourceInterval float64
	ResourceDiameter float64
	ResourceSpeed    float64
	ResourceMinY     float64
	ResourceMargin   float64

	Points       int
	ProgressStep int
	ProgressMax  int
	MaxMissed    int

	difficulty *config.DifficultyManager
}

// DefaultRules returns the rules built from the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultStardriftConfig())
}

// RulesFromConfig converts a loaded configuration into simulation rules.
func RulesFromConfig(cfg config.StardriftConfig) Rules {
	return Rules{
		FieldW: cfg.Field.Width,
		FieldH: cfg.Field.Height,

		PlayerW:          cfg.Player.Width,
		PlayerH:          cfg.Player.Height,
		StartX:           cfg.Player.StartX,
		StartY:           cfg.Field.Height/2 - cfg.Player.StartYOffset,
		Accel:            cfg.Player.Accel,
		MaxSpeed:         cfg.Player.MaxSpeed,
		Friction:         cfg.Player.Friction,
		HeadingThreshold: cfg.Player.HeadingThreshold,

		ObstacleInterval:  float64(cfg.Obstacles.IntervalMS) / 1000,
		ObstacleMinSize:   cfg.Obstacles.MinSize,
		ObstacleMaxSize:   cfg.Obstacles.MaxSize,
		ObstacleBaseSpeed: cfg.Obstacles.BaseSpeed,

		ResourceInterval: float64(cfg.Resources.IntervalMS) / 1000,
		ResourceDiameter: cfg.Resources.Diameter,
		ResourceSpeed:    cfg.Resources.Speed,
		ResourceMinY:     cfg.Resources.MinY,
		ResourceMargin:   cfg.Resources.Margin,

		Points:       cfg.Rules.Points,
		ProgressStep: cfg.Rules.ProgressStep,
		ProgressMax:  cfg.Rules.ProgressMax,
		MaxMissed:    cfg.Rules.MaxMissed,

		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ObstacleSpeed returns debris speed at the given level.
func (r Rules) ObstacleSpeed(level int) float64 {
	if r.difficulty == nil {
		return r.ObstacleBaseSpeed + 50*float64(level)
	}
	return r.difficulty.ObstacleSpeed(r.ObstacleBaseSpeed, level)
}

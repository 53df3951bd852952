// Package config provides YAML-based game configuration loading and
// difficulty management for Star Drift.
package config

// StardriftConfig contains all tunables for the Star Drift simulation.
type StardriftConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Resources  ResourceConfig   `yaml:"resources"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical play field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the craft hitbox, spawn point and handling.
type PlayerConfig struct {
	StartX           float64 `yaml:"start_x"`
	StartYOffset     float64 `yaml:"start_y_offset"` // Spawn y = field height/2 - offset
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Accel            float64 `yaml:"accel"`             // px/s² per held direction
	MaxSpeed         float64 `yaml:"max_speed"`         // per-axis cap, px/s
	Friction         float64 `yaml:"friction"`          // damping coefficient, 1/s
	HeadingThreshold float64 `yaml:"heading_threshold"` // min speed to update heading, px/s
}

// ObstacleConfig defines debris spawning.
type ObstacleConfig struct {
	IntervalMS int     `yaml:"interval_ms"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	BaseSpeed  float64 `yaml:"base_speed"` // px/s before level scaling
}

// ResourceConfig defines collectible spawning.
type ResourceConfig struct {
	IntervalMS int     `yaml:"interval_ms"`
	Diameter   float64 `yaml:"diameter"`
	Speed      float64 `yaml:"speed"`
	MinY       float64 `yaml:"min_y"`
	Margin     float64 `yaml:"margin"` // Keep-out distance from the bottom edge, at least one diameter
}

// RulesConfig defines scoring and loss rules.
type RulesConfig struct {
	Points       int `yaml:"points"`        // Score per collected resource
	ProgressStep int `yaml:"progress_step"` // Progress per collected resource
	ProgressMax  int `yaml:"progress_max"`  // Progress at which the level advances
	MaxMissed    int `yaml:"max_missed"`    // Missed resources that end the run
}

// DifficultyConfig defines how obstacle speed scales with level.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SpeedPerLevel float64 `yaml:"speed_per_level"` // px/s added per level
	MaxSpeed      float64 `yaml:"max_speed"`       // 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

package config

import "math"

// DifficultyManager calculates level-dependent obstacle speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// ObstacleSpeed returns obstacle speed for the given level:
// base + speedPerLevel*level. With scaling disabled the speed stays at the
// level 1 value. A positive MaxSpeed caps the result.
func (d *DifficultyManager) ObstacleSpeed(base float64, level int) float64 {
	if !d.cfg.Enabled {
		level = 1
	}
	speed := base + d.cfg.SpeedPerLevel*float64(level)
	if d.cfg.MaxSpeed > 0 {
		speed = math.Min(speed, d.cfg.MaxSpeed)
	}
	return speed
}

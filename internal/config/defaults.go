package config

import (
	_ "embed"
)

//go:embed defaults/stardrift.yaml
var defaultStardriftYAML []byte

// DefaultStardriftConfig returns the default Star Drift configuration.
func DefaultStardriftConfig() StardriftConfig {
	return StardriftConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			StartX:           100,
			StartYOffset:     20,
			Width:            40,
			Height:           40,
			Accel:            900,
			MaxSpeed:         380,
			Friction:         6,
			HeadingThreshold: 10,
		},
		Obstacles: ObstacleConfig{
			IntervalMS: 1400,
			MinSize:    24,
			MaxSize:    36,
			BaseSpeed:  160,
		},
		Resources: ResourceConfig{
			IntervalMS: 1800,
			Diameter:   18,
			Speed:      170,
			MinY:       10,
			Margin:     10,
		},
		Rules: RulesConfig{
			Points:       10,
			ProgressStep: 10,
			ProgressMax:  100,
			MaxMissed:    3,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			SpeedPerLevel: 50,
			MaxSpeed:      0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stardrift":
		return defaultStardriftYAML
	default:
		return nil
	}
}

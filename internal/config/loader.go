package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStardrift loads Star Drift configuration.
// Search order: customPath -> ~/.stardrift/configs/stardrift.yaml -> ./configs/stardrift.yaml -> embedded default
// Files are decoded over the defaults, so partial files only override what they name.
func LoadStardrift(customPath string) (StardriftConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultStardriftConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseStardrift(data)
		if err != nil {
			return DefaultStardriftConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stardrift.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseStardrift(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stardrift.yaml"); err == nil {
		if cfg, err := parseStardrift(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseStardrift(defaultStardriftYAML)
	if err != nil {
		return DefaultStardriftConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseStardrift decodes YAML over the defaults and validates the result.
func parseStardrift(data []byte) (StardriftConfig, error) {
	cfg := DefaultStardriftConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first value that would make the simulation ill-formed.
func (c StardriftConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return errors.New("field dimensions must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("player dimensions must be positive")
	case c.Player.Width > c.Field.Width || c.Player.Height > c.Field.Height:
		return errors.New("player does not fit in the field")
	case c.Player.MaxSpeed <= 0:
		return errors.New("player max_speed must be positive")
	case c.Obstacles.IntervalMS <= 0 || c.Resources.IntervalMS <= 0:
		return errors.New("spawn intervals must be positive")
	case c.Obstacles.MinSize <= 0 || c.Obstacles.MinSize > c.Obstacles.MaxSize:
		return fmt.Errorf("invalid obstacle size range [%g, %g]", c.Obstacles.MinSize, c.Obstacles.MaxSize)
	case c.Obstacles.MaxSize > c.Field.Height:
		return errors.New("obstacles do not fit in the field")
	case c.Resources.Diameter <= 0:
		return errors.New("resource diameter must be positive")
	case c.Resources.MinY > c.Field.Height-c.Resources.Margin:
		return errors.New("resource spawn band is empty")
	case c.Rules.ProgressMax <= 0 || c.Rules.ProgressStep <= 0:
		return errors.New("progress_max and progress_step must be positive")
	case c.Rules.MaxMissed <= 0:
		return errors.New("max_missed must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardrift", "configs", filename)
}

// ApplyStardriftPreset modifies the config based on a difficulty preset.
func ApplyStardriftPreset(cfg *StardriftConfig, preset DifficultyPreset) {
	// Normal keeps whatever was loaded, including a disabled ramp.
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Obstacles.BaseSpeed = 130
		cfg.Difficulty.SpeedPerLevel = 35
		cfg.Obstacles.IntervalMS = 1700
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Obstacles.BaseSpeed = 200
		cfg.Difficulty.SpeedPerLevel = 60
		cfg.Obstacles.IntervalMS = 1100
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseStardrift(GetDefaultYAML("stardrift"))
	if err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultStardriftConfig()) {
		t.Errorf("embedded YAML differs from DefaultStardriftConfig():\n%+v\n%+v", cfg, DefaultStardriftConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("obstacles:\n  base_speed: 220\nrules:\n  max_missed: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadStardrift(path)
	if err != nil {
		t.Fatalf("LoadStardrift() failed: %v", err)
	}

	if cfg.Obstacles.BaseSpeed != 220 {
		t.Errorf("BaseSpeed = %g, expected 220", cfg.Obstacles.BaseSpeed)
	}
	if cfg.Rules.MaxMissed != 5 {
		t.Errorf("MaxMissed = %d, expected 5", cfg.Rules.MaxMissed)
	}
	// Untouched values keep their defaults
	if cfg.Player.Accel != 900 {
		t.Errorf("Accel = %g, expected default 900", cfg.Player.Accel)
	}
	if cfg.Obstacles.IntervalMS != 1400 {
		t.Errorf("IntervalMS = %d, expected default 1400", cfg.Obstacles.IntervalMS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadStardrift(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  min_size: 40\n  max_size: 20\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadStardrift(bad)
	if err == nil {
		t.Error("expected validation error for inverted size range")
	}
	if !reflect.DeepEqual(cfg, DefaultStardriftConfig()) {
		t.Error("failed load should return the defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StardriftConfig)
		ok     bool
	}{
		{"defaults", func(*StardriftConfig) {}, true},
		{"zero field", func(c *StardriftConfig) { c.Field.Width = 0 }, false},
		{"player too tall", func(c *StardriftConfig) { c.Player.Height = 500 }, false},
		{"zero interval", func(c *StardriftConfig) { c.Resources.IntervalMS = 0 }, false},
		{"empty resource band", func(c *StardriftConfig) { c.Resources.MinY = 395 }, false},
		{"no miss budget", func(c *StardriftConfig) { c.Rules.MaxMissed = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStardriftConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultStardriftConfig()
	ApplyStardriftPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable level scaling")
	}

	cfg = DefaultStardriftConfig()
	ApplyStardriftPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultStardriftConfig()) {
		t.Error("normal preset should keep the defaults")
	}

	cfg = DefaultStardriftConfig()
	ApplyStardriftPreset(&cfg, DifficultyHard)
	if cfg.Obstacles.BaseSpeed <= 160 || cfg.Obstacles.IntervalMS >= 1400 {
		t.Errorf("hard preset should raise pressure, got speed %g interval %d",
			cfg.Obstacles.BaseSpeed, cfg.Obstacles.IntervalMS)
	}
}

func TestApplyPresetEnabledFlag(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		loaded   bool
		expected bool
	}{
		{DifficultyNormal, false, false},
		{DifficultyNormal, true, true},
		{DifficultyFixed, true, false},
		{DifficultyEasy, false, true},
		{DifficultyHard, false, true},
	}
	for _, tc := range tests {
		cfg := DefaultStardriftConfig()
		cfg.Difficulty.Enabled = tc.loaded
		ApplyStardriftPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.expected {
			t.Errorf("%s with enabled=%v: got enabled=%v, expected %v",
				tc.preset, tc.loaded, cfg.Difficulty.Enabled, tc.expected)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}

package config

import "testing"

func TestObstacleSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultStardriftConfig().Difficulty)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 210},
		{2, 260},
		{5, 410},
	}
	for _, tc := range tests {
		if got := d.ObstacleSpeed(160, tc.level); got != tc.expected {
			t.Errorf("ObstacleSpeed(160, %d) = %g, expected %g", tc.level, got, tc.expected)
		}
	}
}

func TestObstacleSpeedFixedAndCapped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false, SpeedPerLevel: 50})
	if got := d.ObstacleSpeed(160, 7); got != 210 {
		t.Errorf("disabled scaling should hold level 1 speed, got %g", got)
	}

	d = NewDifficultyManager(DifficultyConfig{Enabled: true, SpeedPerLevel: 50, MaxSpeed: 300})
	if got := d.ObstacleSpeed(160, 10); got != 300 {
		t.Errorf("speed should be capped at 300, got %g", got)
	}
}

package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		id    string
		check func(t *testing.T, data []byte)
	}{
		{"flappy", func(t *testing.T, data []byte) {
			var cfg FlappyConfig
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if cfg != DefaultFlappyConfig() {
				t.Errorf("embedded flappy yaml diverges from hardcoded default:\n%+v\nvs\n%+v", cfg, DefaultFlappyConfig())
			}
		}},
		{"bricks", func(t *testing.T, data []byte) {
			var cfg BricksConfig
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if cfg != DefaultBricksConfig() {
				t.Errorf("embedded bricks yaml diverges from hardcoded default:\n%+v\nvs\n%+v", cfg, DefaultBricksConfig())
			}
		}},
		{"shooter", func(t *testing.T, data []byte) {
			var cfg ShooterConfig
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if cfg != DefaultShooterConfig() {
				t.Errorf("embedded shooter yaml diverges from hardcoded default:\n%+v\nvs\n%+v", cfg, DefaultShooterConfig())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			data := GetDefaultYAML(tt.id)
			if data == nil {
				t.Fatal("no embedded yaml")
			}
			tt.check(t, data)
		})
	}

	if GetDefaultYAML("nope") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestLoadRejectsBadCustomPath(t *testing.T) {
	if _, err := LoadFlappy("/nonexistent/flappy.yaml"); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("level at score 0: got %f, want 0", got)
	}
	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("level at half max: got %f, want 0.5", got)
	}
	if got := d.Level(500, 0); got != 1 {
		t.Errorf("level past max should clamp to 1, got %f", got)
	}

	if got := d.Speed(10, 100, 0); got != 20 {
		t.Errorf("speed at max difficulty: got %f, want 20", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if got := d.Level(1000, 0); got != 0.3 {
		t.Errorf("disabled progression should hold the initial level, got %f", got)
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpacingReduction: 10000},
	})

	if got := d.Interval(800, 10, 0); got != 150 {
		t.Errorf("interval should floor at 150ms, got %f", got)
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultBricksConfig()
	ApplyBricksPreset(&cfg, DifficultyHard)

	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives: got %d, want 2", cfg.Gameplay.Lives)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty: %+v", cfg.Difficulty)
	}

	cfg = DefaultBricksConfig()
	ApplyBricksPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

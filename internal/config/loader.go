package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config through the standard search order:
// customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml ->
// embedded default -> hardcoded fallback. Only a customPath that fails to
// read or parse is an error; everything further down the chain degrades
// silently to the next source.
func load[T any](customPath, name string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(name + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// LoadFlappy loads the Flappy configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load(customPath, "flappy", defaultFlappyYAML, DefaultFlappyConfig)
}

// LoadBricks loads the brick breaker configuration.
func LoadBricks(customPath string) (BricksConfig, error) {
	return load(customPath, "bricks", defaultBricksYAML, DefaultBricksConfig)
}

// LoadShooter loads the space shooter configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load(customPath, "shooter", defaultShooterYAML, DefaultShooterConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyBricksPreset modifies the config based on a difficulty preset.
// Beyond progression, presets also adjust lives, paddle width, and ball speed.
func ApplyBricksPreset(cfg *BricksConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 12
		cfg.Physics.BallSpeed = 18
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 30
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.SpawnIntervalMs = 1200
	case DifficultyHard:
		cfg.Gameplay.SpawnIntervalMs = 500
	}
}

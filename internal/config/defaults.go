package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      60,
			JumpImpulse:  -18,
			MaxFallSpeed: 28,
			ScrollSpeed:  14,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Effects: EffectsConfig{
			Particles: true,
			Shake:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultBricksConfig returns the default brick breaker configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Physics: BricksPhysics{
			BallSpeed:    22,
			PaddleSpeed:  40,
			MaxBallSpeed: 45,
		},
		Paddle: BricksPaddle{
			Width: 8,
		},
		Layout: BricksLayout{
			Rows:        5,
			Cols:        10,
			BrickWidth:  6,
			BrickHeight: 1,
			TopOffset:   2,
		},
		Gameplay: BricksGameplay{
			Lives:           3,
			BrickPoints:     10,
			SpeedUpPerLevel: 3,
		},
		Effects: EffectsConfig{
			Particles: true,
			Shake:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultShooterConfig returns the default space shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Physics: ShooterPhysics{
			ShipSpeed:     35,
			BulletSpeed:   50,
			EnemySpeedMin: 6,
			EnemySpeedMax: 14,
		},
		Ship: ShooterShip{
			Width:  3,
			Height: 2,
		},
		Gameplay: ShooterGameplay{
			FireCooldownMs:  250,
			SpawnIntervalMs: 800,
			EnemyPoints:     10,
		},
		Effects: EffectsConfig{
			Particles: true,
			Shake:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 400, // Spawn interval reduction in ms at max difficulty
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "bricks":
		return defaultBricksYAML
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy.
// Speeds are cells per second, gravity cells per second squared.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// FlappyObstacles defines pipe parameters for Flappy, in cells.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyPlayer defines the bird's fixed column and hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BricksConfig contains all configuration for the brick breaker game.
type BricksConfig struct {
	Physics    BricksPhysics    `yaml:"physics"`
	Paddle     BricksPaddle     `yaml:"paddle"`
	Layout     BricksLayout     `yaml:"layout"`
	Gameplay   BricksGameplay   `yaml:"gameplay"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BricksPhysics defines ball and paddle speeds in cells per second.
type BricksPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
}

// BricksPaddle defines paddle dimensions.
type BricksPaddle struct {
	Width int `yaml:"width"`
}

// BricksLayout defines the brick grid.
type BricksLayout struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	BrickWidth  int `yaml:"brick_width"`
	BrickHeight int `yaml:"brick_height"`
	TopOffset   int `yaml:"top_offset"`
}

// BricksGameplay defines scoring and progression rules.
type BricksGameplay struct {
	Lives           int     `yaml:"lives"`
	BrickPoints     int     `yaml:"brick_points"`
	SpeedUpPerLevel float64 `yaml:"speed_up_per_level"` // Added to ball speed each cleared level
}

// ShooterConfig contains all configuration for the space shooter game.
type ShooterConfig struct {
	Physics    ShooterPhysics   `yaml:"physics"`
	Ship       ShooterShip      `yaml:"ship"`
	Gameplay   ShooterGameplay  `yaml:"gameplay"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPhysics defines movement speeds in cells per second.
type ShooterPhysics struct {
	ShipSpeed     float64 `yaml:"ship_speed"`
	BulletSpeed   float64 `yaml:"bullet_speed"`
	EnemySpeedMin float64 `yaml:"enemy_speed_min"`
	EnemySpeedMax float64 `yaml:"enemy_speed_max"`
}

// ShooterShip defines the player ship's hitbox.
type ShooterShip struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShooterGameplay defines firing, spawning, and scoring rules.
type ShooterGameplay struct {
	FireCooldownMs  float64 `yaml:"fire_cooldown_ms"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	EnemyPoints     int     `yaml:"enemy_points"`
}

// EffectsConfig toggles the game-feel layer per game.
// Both default to true in the shipped configs; turning one off only skips
// the triggers, the simulation is otherwise identical.
type EffectsConfig struct {
	Particles bool `yaml:"particles"`
	Shake     bool `yaml:"shake"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/elapsed-ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

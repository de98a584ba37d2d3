package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
// Pause bookkeeping lives in the lifecycle machine, not here: a game is
// simply not stepped while paused.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level/wave (1-based; 0 if the game has no levels)
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}

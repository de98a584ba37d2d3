package flappy

import (
	"math/rand"

	"github.com/vovakirdan/arcade-kit/internal/config"
	"github.com/vovakirdan/arcade-kit/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	GapY      int     // Y position where gap starts (top of gap)
	GapHeight int     // Height of the passable gap
	Passed    bool    // Whether the bird has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.X, 0, float64(pipeWidth), float64(p.GapY))
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(pipeWidth, screenH int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, float64(bottomY), float64(pipeWidth), float64(screenH-bottomY))
}

// GapCenter returns the middle of the gap, where score sparkles spawn.
func (p Pipe) GapCenter(pipeWidth int) core.Vec2 {
	return core.V(p.X+float64(pipeWidth)/2, float64(p.GapY)+float64(p.GapHeight)/2)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	screenW    int
	screenH    int
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, screenW, screenH int, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// UpdateScreenSize updates the screen dimensions.
func (pm *PipeManager) UpdateScreenSize(screenW, screenH int) {
	pm.screenW = screenW
	pm.screenH = screenH
}

// Update moves pipes left by elapsedMs worth of scroll, spawns new ones as
// needed, and returns the gap centers of pipes passed this frame.
func (pm *PipeManager) Update(elapsedMs float64, playerX, score int, playTimeMs float64) []core.Vec2 {
	speed := pm.difficulty.Speed(pm.cfg.Physics.ScrollSpeed, score, playTimeMs)
	dx := speed * elapsedMs / 1000

	for i := range pm.pipes {
		pm.pipes[i].X -= dx
	}

	pipeWidth := pm.cfg.Obstacles.PipeWidth

	var passed []core.Vec2
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+float64(pipeWidth) < float64(playerX) {
			pm.pipes[i].Passed = true
			passed = append(passed, pm.pipes[i].GapCenter(pipeWidth))
		}
	}

	// Remove pipes that have moved off the left side
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+float64(pipeWidth) > 0 {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid

	spacing := pm.difficulty.Spacing(pm.cfg.Obstacles.PipeSpacing, score, playTimeMs)
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < float64(pm.screenW-spacing) {
		pm.spawnPipe(score, playTimeMs)
	}

	return passed
}

// spawnPipe creates a new pipe at the right edge of the screen.
func (pm *PipeManager) spawnPipe(score int, playTimeMs float64) {
	// Difficulty narrows the gap toward the configured minimum
	maxGap := pm.cfg.Obstacles.MaxGapSize
	currentGap := pm.difficulty.GapSize(maxGap, score, playTimeMs)

	minGap := pm.cfg.Obstacles.MinGapSize
	if currentGap < minGap {
		currentGap = minGap
	}

	gapHeight := minGap
	if gapRange := currentGap - minGap; gapRange > 0 {
		gapHeight = minGap + pm.rng.Intn(gapRange+1)
	}

	topMargin := pm.cfg.Obstacles.TopMargin
	bottomMargin := pm.cfg.Obstacles.BottomMargin
	maxGapY := pm.screenH - bottomMargin - gapHeight
	minGapY := topMargin

	if maxGapY < minGapY {
		maxGapY = minGapY // Edge case for very small screens
	}

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         float64(pm.screenW),
		GapY:      gapY,
		GapHeight: gapHeight,
	})
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pipe.
func (pm *PipeManager) CheckCollision(playerRect core.Rect, screenH int) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.pipes {
		if playerRect.Intersects(p.TopRect(pipeWidth)) || playerRect.Intersects(p.BottomRect(pipeWidth, screenH)) {
			return true
		}
	}
	return false
}

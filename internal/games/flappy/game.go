// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"math"

	"github.com/vovakirdan/arcade-kit/internal/config"
	"github.com/vovakirdan/arcade-kit/internal/core"
	"github.com/vovakirdan/arcade-kit/internal/effects"
	"github.com/vovakirdan/arcade-kit/internal/registry"
)

// Visual characters for rendering
const (
	playerChar    = '▶'
	bodyChar      = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// Game implements the flappy game logic.
// All per-frame simulation follows the fixed phase order: input, entity
// update, spawning, collision resolution, then effect advancement. Rendering
// happens separately in Render.
type Game struct {
	birdY   float64 // Bird vertical position (top of hitbox)
	birdVel float64 // Bird vertical velocity, cells per second

	pipes      *PipeManager
	particles  *effects.System
	shake      *effects.Shake
	difficulty *config.DifficultyManager

	score      int
	gameOver   bool
	playTimeMs float64

	conf    config.FlappyConfig
	runtime core.RuntimeConfig
}

// New creates a new flappy game instance using the loaded configuration.
func New() *Game {
	cfg, _ := config.LoadFlappy(configPath)
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{conf: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.birdY = float64(cfg.ScreenH) / 2.0
	g.birdVel = 0
	g.score = 0
	g.gameOver = false
	g.playTimeMs = 0

	g.difficulty = config.NewDifficultyManager(g.conf.Difficulty)

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, cfg.ScreenW, cfg.ScreenH, &g.conf, g.difficulty)
	} else {
		g.pipes.UpdateScreenSize(cfg.ScreenW, cfg.ScreenH)
		g.pipes.Reset(cfg.Seed)
	}

	if g.particles == nil {
		g.particles = effects.NewSystem(cfg.Seed)
		g.shake = effects.NewShake(cfg.Seed)
	} else {
		g.particles.Clear()
	}
}

// Step advances the game by elapsedMs of wall-clock time.
func (g *Game) Step(in core.InputFrame, elapsedMs float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dt := elapsedMs / 1000
	g.playTimeMs += elapsedMs

	// Input
	if in.Has(core.ActionJump) {
		g.birdVel = g.conf.Physics.JumpImpulse
	}

	// Physics
	g.birdVel += g.conf.Physics.Gravity * dt
	if g.birdVel > g.conf.Physics.MaxFallSpeed {
		g.birdVel = g.conf.Physics.MaxFallSpeed
	}
	g.birdY += g.birdVel * dt

	passed := g.pipes.Update(elapsedMs, g.conf.Player.X+g.conf.Player.Width, g.score, g.playTimeMs)

	// Spawning: thruster trail behind the bird while it flies
	if g.conf.Effects.Particles {
		g.particles.Trail(core.V(float64(g.conf.Player.X), g.birdY+float64(g.conf.Player.Height)/2), core.ColorBrightYellow)
		for _, gap := range passed {
			g.particles.Sparkle(gap)
		}
	}
	g.score += len(passed)

	// Collisions
	birdRect := g.birdRect()

	if g.birdY < 0 {
		g.birdY = 0
		g.die()
	}

	groundY := g.runtime.ScreenH - 2 // Leave space for ground line
	if int(g.birdY)+g.conf.Player.Height >= groundY {
		g.birdY = float64(groundY - g.conf.Player.Height)
		g.die()
	}

	if !g.gameOver && g.pipes.CheckCollision(birdRect, g.runtime.ScreenH) {
		g.die()
	}

	// Effects advance last, after all triggers for this frame
	g.particles.Advance(elapsedMs)
	g.shake.Advance(elapsedMs)

	return core.StepResult{State: g.State()}
}

// die marks the run over with a burst and a heavy shake at the bird.
func (g *Game) die() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	if g.conf.Effects.Particles {
		g.particles.Explode(g.birdRect().Center(), nil)
	}
	if g.conf.Effects.Shake {
		g.shake.Large()
	}
}

// birdRect returns the bird's collision rectangle.
func (g *Game) birdRect() core.Rect {
	return core.NewRect(float64(g.conf.Player.X), g.birdY, float64(g.conf.Player.Width), float64(g.conf.Player.Height))
}

// Render draws the world inside the shake transform.
// HUD (score, overlays) is drawn by the platform outside the transform.
func (g *Game) Render(dst *core.Screen) {
	dst.Save()
	g.shake.Apply(dst)

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), groundChar)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	birdY := int(math.Round(g.birdY))
	for dy := 0; dy < g.conf.Player.Height; dy++ {
		for dx := 0; dx < g.conf.Player.Width; dx++ {
			ch := bodyChar
			if dx == g.conf.Player.Width-1 && dy == 0 {
				ch = playerChar
			}
			dst.SetCell(g.conf.Player.X+dx, birdY+dy, ch, core.ColorBrightYellow)
		}
	}

	g.particles.Render(dst)

	dst.Restore()
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	screenH := dst.Height() - 1 // Account for ground
	px := int(math.Round(p.X))
	pipeWidth := g.conf.Obstacles.PipeWidth

	for y := 0; y < p.GapY; y++ {
		for x := 0; x < pipeWidth; x++ {
			dst.SetCell(px+x, y, pipeChar, core.ColorGreen)
		}
	}
	if p.GapY > 0 {
		for x := 0; x < pipeWidth; x++ {
			dst.SetCell(px+x, p.GapY-1, pipeCapTop, core.ColorGreen)
		}
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < screenH; y++ {
		for x := 0; x < pipeWidth; x++ {
			dst.SetCell(px+x, y, pipeChar, core.ColorGreen)
		}
	}
	if bottomY < screenH {
		for x := 0; x < pipeWidth; x++ {
			dst.SetCell(px+x, bottomY, pipeCapBottom, core.ColorGreen)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

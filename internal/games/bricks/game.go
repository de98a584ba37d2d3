// Package bricks implements a brick breaker game.
// The player bounces a ball off a paddle to clear a wall of bricks, with
// lives, level progression, and a speed ramp per cleared level.
package bricks

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-kit/internal/config"
	"github.com/vovakirdan/arcade-kit/internal/core"
	"github.com/vovakirdan/arcade-kit/internal/effects"
	"github.com/vovakirdan/arcade-kit/internal/registry"
)

// Visual characters for rendering
const (
	paddleChar = '▀'
	ballChar   = '●'
	brickChar  = '█'
)

// maxBounceAngle is the ball's maximum deflection off the paddle edge,
// measured from vertical.
const maxBounceAngle = math.Pi / 3

// Game implements the brick breaker logic.
type Game struct {
	paddleX float64 // Paddle left edge

	ball    core.Vec2
	ballVel core.Vec2
	speed   float64 // Current ball speed, cells per second
	serving bool    // Ball stuck to the paddle until launched

	grid       *Grid
	particles  *effects.System
	shake      *effects.Shake
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	score      int
	lives      int
	level      int
	gameOver   bool
	playTimeMs float64

	conf    config.BricksConfig
	runtime core.RuntimeConfig
}

// New creates a new brick breaker instance with the default configuration.
func New() *Game {
	cfg, _ := config.LoadBricks(configPath)
	if difficultyPreset != "" {
		config.ApplyBricksPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.BricksConfig) *Game {
	return &Game{conf: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bricks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.score = 0
	g.lives = g.conf.Gameplay.Lives
	g.level = 1
	g.gameOver = false
	g.playTimeMs = 0
	g.speed = g.conf.Physics.BallSpeed

	g.difficulty = config.NewDifficultyManager(g.conf.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = NewGrid(g.conf.Layout, cfg.ScreenW)

	g.paddleX = float64(cfg.ScreenW-g.conf.Paddle.Width) / 2
	g.serve()

	if g.particles == nil {
		g.particles = effects.NewSystem(cfg.Seed)
		g.shake = effects.NewShake(cfg.Seed)
	} else {
		g.particles.Clear()
	}
}

// serve parks the ball on the paddle until the player launches it.
func (g *Game) serve() {
	g.serving = true
	g.ballVel = core.Vec2{}
	g.ball = core.V(g.paddleX+float64(g.conf.Paddle.Width)/2, g.paddleY()-1)
}

// launch releases a served ball at a slightly randomized upward angle.
func (g *Game) launch() {
	g.serving = false
	angle := core.RandRange(g.rng, -math.Pi/6, math.Pi/6)
	g.ballVel = core.V(g.speed*math.Sin(angle), -g.speed*math.Cos(angle))
}

func (g *Game) paddleY() float64 {
	return float64(g.runtime.ScreenH - 2)
}

func (g *Game) paddleRect() core.Rect {
	return core.NewRect(g.paddleX, g.paddleY(), float64(g.conf.Paddle.Width), 1)
}

func (g *Game) ballRect() core.Rect {
	return core.NewRect(g.ball.X, g.ball.Y, 1, 1)
}

// Step advances the game by elapsedMs of wall-clock time.
func (g *Game) Step(in core.InputFrame, elapsedMs float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dt := elapsedMs / 1000
	g.playTimeMs += elapsedMs

	// Input
	paddleSpeed := g.difficulty.Speed(g.conf.Physics.PaddleSpeed, g.score, g.playTimeMs)
	if in.Has(core.ActionLeft) {
		g.paddleX -= paddleSpeed * dt
	}
	if in.Has(core.ActionRight) {
		g.paddleX += paddleSpeed * dt
	}
	g.paddleX = core.Clamp(g.paddleX, 0, float64(g.runtime.ScreenW-g.conf.Paddle.Width))

	if g.serving {
		if in.Has(core.ActionJump) || in.Has(core.ActionFire) {
			g.launch()
		} else {
			g.ball = core.V(g.paddleX+float64(g.conf.Paddle.Width)/2, g.paddleY()-1)
		}
	}

	// Ball physics
	if !g.serving {
		g.ball = g.ball.Add(g.ballVel.Scale(dt))
		g.bounceWalls()
		g.bouncePaddle()
		g.resolveBrickHit()
		g.checkBallLost()
		g.checkLevelClear()
	}

	// Effects advance last, after all triggers for this frame
	g.particles.Advance(elapsedMs)
	g.shake.Advance(elapsedMs)

	return core.StepResult{State: g.State()}
}

// bounceWalls reflects the ball off the side and top edges.
func (g *Game) bounceWalls() {
	maxX := float64(g.runtime.ScreenW - 1)
	if g.ball.X < 0 {
		g.ball.X = 0
		g.ballVel.X = -g.ballVel.X
	} else if g.ball.X > maxX {
		g.ball.X = maxX
		g.ballVel.X = -g.ballVel.X
	}
	if g.ball.Y < 0 {
		g.ball.Y = 0
		g.ballVel.Y = -g.ballVel.Y
	}
}

// bouncePaddle reflects a descending ball off the paddle, steering it by
// how far from the paddle center it landed.
func (g *Game) bouncePaddle() {
	if g.ballVel.Y <= 0 || !g.ballRect().Intersects(g.paddleRect()) {
		return
	}

	half := float64(g.conf.Paddle.Width) / 2
	offset := core.Clamp((g.ball.X-(g.paddleX+half))/half, -1, 1)
	angle := offset * maxBounceAngle

	g.ballVel = core.V(g.speed*math.Sin(angle), -g.speed*math.Cos(angle))
	g.ball.Y = g.paddleY() - 1

	if g.conf.Effects.Particles {
		g.particles.Trail(g.ball, core.ColorBrightWhite)
	}
	if g.conf.Effects.Shake {
		g.shake.Small()
	}
}

// resolveBrickHit destroys at most one brick per frame: the first live
// brick in row-major order that the ball touches. The first match wins
// even when a later brick overlaps the ball more.
func (g *Game) resolveBrickHit() {
	idx := g.grid.FirstHit(g.ballRect())
	if idx < 0 {
		return
	}

	brick := g.grid.Bricks()[idx]
	g.grid.Destroy(idx)
	g.score += g.conf.Gameplay.BrickPoints
	g.ballVel.Y = -g.ballVel.Y

	if g.conf.Effects.Particles {
		g.particles.Explode(brick.Rect.Center(), []core.Color{brick.Color, core.ColorBrightWhite})
	}
	if g.conf.Effects.Shake {
		g.shake.Small()
	}
}

// checkBallLost handles the ball falling past the paddle.
func (g *Game) checkBallLost() {
	if g.ball.Y < float64(g.runtime.ScreenH) {
		return
	}

	g.lives--
	if g.conf.Effects.Shake {
		g.shake.Medium()
	}

	if g.lives <= 0 {
		g.gameOver = true
		if g.conf.Effects.Particles {
			g.particles.Explode(core.V(g.ball.X, float64(g.runtime.ScreenH-1)), nil)
		}
		if g.conf.Effects.Shake {
			g.shake.Large()
		}
		return
	}

	g.serve()
}

// checkLevelClear rebuilds the wall and speeds the ball up once cleared.
func (g *Game) checkLevelClear() {
	if g.grid.AliveCount() > 0 {
		return
	}

	g.level++
	g.speed = math.Min(g.speed+g.conf.Gameplay.SpeedUpPerLevel, g.conf.Physics.MaxBallSpeed)
	g.grid = NewGrid(g.conf.Layout, g.runtime.ScreenW)
	g.serve()

	if g.conf.Effects.Particles {
		g.particles.Sparkle(core.V(g.paddleX+float64(g.conf.Paddle.Width)/2, g.paddleY()-2))
	}
}

// Render draws the world inside the shake transform.
// HUD (score, lives, overlays) is drawn by the platform outside it.
func (g *Game) Render(dst *core.Screen) {
	dst.Save()
	g.shake.Apply(dst)

	for _, b := range g.grid.Bricks() {
		if !b.Alive {
			continue
		}
		for dy := 0; dy < int(b.Rect.H); dy++ {
			for dx := 0; dx < int(b.Rect.W)-1; dx++ { // 1-cell gap between columns
				dst.SetCell(int(b.Rect.X)+dx, int(b.Rect.Y)+dy, brickChar, b.Color)
			}
		}
	}

	py := int(g.paddleY())
	for dx := 0; dx < g.conf.Paddle.Width; dx++ {
		dst.SetCell(int(math.Round(g.paddleX))+dx, py, paddleChar, core.ColorBrightBlue)
	}

	dst.SetCell(int(math.Round(g.ball.X)), int(math.Round(g.ball.Y)), ballChar, core.ColorBrightWhite)

	g.particles.Render(dst)

	dst.Restore()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver,
	}
}

// Lives returns the remaining lives, for the platform HUD.
func (g *Game) Lives() int {
	return g.lives
}

// Register the game with the registry
func init() {
	registry.Register("bricks", func() registry.Game {
		return New()
	})
}

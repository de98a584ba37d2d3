// Package shooter implements a fixed-screen space shooter.
// The player strafes along the bottom edge, firing at enemies that descend
// from the top; one hit on the ship ends the run.
package shooter

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
	shipChar   = '▲'
	hullChar   = '█'
	bulletChar = '|'
	enemyChar  = '▼'
)

// Bullet is a player projectile moving straight up.
type Bullet struct {
	Pos core.Vec2
}

// Enemy descends from the top edge at its own speed.
type Enemy struct {
	Pos   core.Vec2
	Speed float64 // cells per second
}

// Game implements the space shooter logic.
type Game struct {
	shipX float64 // Ship left edge

	bullets []Bullet
	enemies []Enemy

	cooldownMs   float64 // Time until the next shot is allowed
	sinceSpawnMs float64 // Time since the last enemy spawn

	particles  *effects.System
	shake      *effects.Shake
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	score      int
	gameOver   bool
	playTimeMs float64

	conf    config.ShooterConfig
	runtime core.RuntimeConfig
}

// New creates a new shooter instance with the default configuration.
func New() *Game {
	cfg, _ := config.LoadShooter(configPath)
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{conf: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.shipX = float64(cfg.ScreenW-g.conf.Ship.Width) / 2
	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.cooldownMs = 0
	g.sinceSpawnMs = 0
	g.score = 0
	g.gameOver = false
	g.playTimeMs = 0

	g.difficulty = config.NewDifficultyManager(g.conf.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	if g.particles == nil {
		g.particles = effects.NewSystem(cfg.Seed)
		g.shake = effects.NewShake(cfg.Seed)
	} else {
		g.particles.Clear()
	}
}

func (g *Game) shipY() float64 {
	return float64(g.runtime.ScreenH - g.conf.Ship.Height - 1)
}

func (g *Game) shipRect() core.Rect {
	return core.NewRect(g.shipX, g.shipY(), float64(g.conf.Ship.Width), float64(g.conf.Ship.Height))
}

func (g *Game) shipNose() core.Vec2 {
	return core.V(g.shipX+float64(g.conf.Ship.Width)/2, g.shipY())
}

// Step advances the game by elapsedMs of wall-clock time.
func (g *Game) Step(in core.InputFrame, elapsedMs float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dt := elapsedMs / 1000
	g.playTimeMs += elapsedMs

	// Input
	if in.Has(core.ActionLeft) {
		g.shipX -= g.conf.Physics.ShipSpeed * dt
	}
	if in.Has(core.ActionRight) {
		g.shipX += g.conf.Physics.ShipSpeed * dt
	}
	g.shipX = core.Clamp(g.shipX, 0, float64(g.runtime.ScreenW-g.conf.Ship.Width))

	g.cooldownMs -= elapsedMs
	if in.Has(core.ActionFire) && g.cooldownMs <= 0 {
		g.bullets = append(g.bullets, Bullet{Pos: g.shipNose()})
		g.cooldownMs = g.conf.Gameplay.FireCooldownMs
	}

	// Entity updates
	g.moveBullets(dt)
	g.moveEnemies(dt)

	// Spawning
	g.sinceSpawnMs += elapsedMs
	interval := g.difficulty.Interval(g.conf.Gameplay.SpawnIntervalMs, g.score, g.playTimeMs)
	for g.sinceSpawnMs >= interval {
		g.sinceSpawnMs -= interval
		g.spawnEnemy()
	}

	if g.conf.Effects.Particles {
		// Engine exhaust under the ship
		g.particles.Trail(core.V(g.shipX+float64(g.conf.Ship.Width)/2, g.shipY()+float64(g.conf.Ship.Height)), core.ColorBrightCyan)
	}

	// Collisions
	g.resolveBulletHits()
	g.checkShipHit()

	// Effects advance last, after all triggers for this frame
	g.particles.Advance(elapsedMs)
	g.shake.Advance(elapsedMs)

	return core.StepResult{State: g.State()}
}

func (g *Game) moveBullets(dt float64) {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.Pos.Y -= g.conf.Physics.BulletSpeed * dt
		if b.Pos.Y >= 0 {
			alive = append(alive, b)
		}
	}
	g.bullets = alive
}

func (g *Game) moveEnemies(dt float64) {
	speedScale := g.difficulty.Speed(1, g.score, g.playTimeMs)
	alive := g.enemies[:0]
	for _, e := range g.enemies {
		e.Pos.Y += e.Speed * speedScale * dt
		if e.Pos.Y < float64(g.runtime.ScreenH) {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}

func (g *Game) spawnEnemy() {
	g.enemies = append(g.enemies, Enemy{
		Pos:   core.V(core.RandRange(g.rng, 1, float64(g.runtime.ScreenW-1)), 0),
		Speed: core.RandRange(g.rng, g.conf.Physics.EnemySpeedMin, g.conf.Physics.EnemySpeedMax),
	})
}

// resolveBulletHits pairs bullets with enemies.
// Each bullet kills at most the first enemy in slice order it overlaps;
// both are removed, score and effects trigger at the enemy position.
func (g *Game) resolveBulletHits() {
	aliveBullets := g.bullets[:0]
	for _, b := range g.bullets {
		hit := -1
		for i := range g.enemies {
			if core.CirclesOverlap(b.Pos, 0.5, g.enemies[i].Pos, 1) {
				hit = i
				break
			}
		}
		if hit < 0 {
			aliveBullets = append(aliveBullets, b)
			continue
		}

		pos := g.enemies[hit].Pos
		g.enemies = append(g.enemies[:hit], g.enemies[hit+1:]...)
		g.score += g.conf.Gameplay.EnemyPoints

		if g.conf.Effects.Particles {
			g.particles.Explode(pos, []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow})
		}
		if g.conf.Effects.Shake {
			g.shake.Small()
		}
	}
	g.bullets = aliveBullets
}

// checkShipHit ends the run when an enemy reaches the ship.
func (g *Game) checkShipHit() {
	ship := g.shipRect()
	for _, e := range g.enemies {
		if !ship.Contains(e.Pos) && !core.CirclesOverlap(e.Pos, 1, ship.Center(), 1.5) {
			continue
		}
		g.gameOver = true
		if g.conf.Effects.Particles {
			g.particles.Explode(ship.Center(), nil)
		}
		if g.conf.Effects.Shake {
			g.shake.Large()
		}
		return
	}
}

// Render draws the world inside the shake transform.
// HUD (score, overlays) is drawn by the platform outside it.
func (g *Game) Render(dst *core.Screen) {
	dst.Save()
	g.shake.Apply(dst)

	for _, b := range g.bullets {
		dst.SetCell(int(math.Round(b.Pos.X)), int(math.Round(b.Pos.Y)), bulletChar, core.ColorBrightYellow)
	}

	for _, e := range g.enemies {
		dst.SetCell(int(math.Round(e.Pos.X)), int(math.Round(e.Pos.Y)), enemyChar, core.ColorBrightRed)
	}

	sx, sy := int(math.Round(g.shipX)), int(g.shipY())
	for dy := 0; dy < g.conf.Ship.Height; dy++ {
		for dx := 0; dx < g.conf.Ship.Width; dx++ {
			ch := hullChar
			if dy == 0 && dx == g.conf.Ship.Width/2 {
				ch = shipChar
			}
			dst.SetCell(sx+dx, sy+dy, ch, core.ColorBrightCyan)
		}
	}

	g.particles.Render(dst)

	dst.Restore()
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
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}

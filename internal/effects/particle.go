// Package effects implements the reusable game-feel layer shared by all
// games: a particle system for transient visuals and a screen shake for
// impact feedback. Both are pure simulation state driven by the frame's
// elapsed milliseconds and rendered into a core.Screen; neither knows about
// Bubble Tea or the terminal.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-kit/internal/core"
)

// FullCircle is the default emission spread: directions drawn uniformly
// over the whole circle.
const FullCircle = 2 * math.Pi

// Particle is a short-lived, non-interactive visual entity.
// Life counts down in milliseconds; a particle whose Life reaches zero is
// dropped from the system and never rendered again.
type Particle struct {
	Pos core.Vec2
	Vel core.Vec2 // cells per second

	Life    float64 // remaining lifetime, ms
	MaxLife float64 // initial lifetime, ms

	Size     float64
	Color    core.Color
	Gravity  float64 // cells/sec² applied to Vel.Y (negative drifts upward)
	Friction float64 // per-step velocity multiplier (1 = none)
	Shrink   bool    // radius scales with remaining life
	Fade     bool    // opacity scales with remaining life
}

// EmitOptions configures a burst of particles. Zero values select defaults;
// malformed ranges (min > max) are not validated.
type EmitOptions struct {
	Count        int          // default 8
	Colors       []core.Color // one chosen uniformly per particle; default warm palette
	SpeedMin     float64      // default 20 cells/sec
	SpeedMax     float64      // default 60 cells/sec
	Life         float64      // base lifetime ms, default 600
	LifeVariance float64      // lifetime drawn in [Life-V, Life+V], default 200
	SizeMin      float64      // default 1
	SizeMax      float64      // default 2
	Gravity      float64      // default 0
	Friction     float64      // default 1 (no decay)
	Shrink       bool
	Fade         bool
	Direction    float64 // emission direction, radians
	Spread       float64 // cone width, radians; default full circle
}

func (o *EmitOptions) applyDefaults() {
	if o.Count == 0 {
		o.Count = 8
	}
	if len(o.Colors) == 0 {
		o.Colors = []core.Color{core.ColorBrightYellow, core.ColorOrange, core.ColorBrightWhite}
	}
	if o.SpeedMin == 0 && o.SpeedMax == 0 {
		o.SpeedMin, o.SpeedMax = 20, 60
	}
	if o.Life == 0 {
		o.Life = 600
		if o.LifeVariance == 0 {
			o.LifeVariance = 200
		}
	}
	if o.SizeMin == 0 && o.SizeMax == 0 {
		o.SizeMin, o.SizeMax = 1, 2
	}
	if o.Friction == 0 {
		o.Friction = 1
	}
	if o.Spread == 0 {
		o.Spread = FullCircle
	}
}

// System owns the collection of active particles.
// Emit, the presets, Advance, Render and Clear are the only entry points;
// the collection is never aliased outside the system.
type System struct {
	particles []Particle
	rng       *rand.Rand
}

// NewSystem creates a particle system seeded for deterministic simulation.
func NewSystem(seed int64) *System {
	return &System{
		particles: make([]Particle, 0, 64),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Clear discards all particles immediately.
// Called when the enclosing game resets.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Emit spawns opts.Count particles at origin.
// Direction is drawn uniformly over the full circle when Spread covers it,
// otherwise uniformly within [Direction-Spread/2, Direction+Spread/2].
// Speed, lifetime and size are drawn uniformly over their ranges.
func (s *System) Emit(origin core.Vec2, opts EmitOptions) {
	opts.applyDefaults()

	for i := 0; i < opts.Count; i++ {
		var angle float64
		if opts.Spread >= FullCircle {
			angle = core.RandRange(s.rng, 0, FullCircle)
		} else {
			angle = core.RandRange(s.rng, opts.Direction-opts.Spread/2, opts.Direction+opts.Spread/2)
		}

		speed := core.RandRange(s.rng, opts.SpeedMin, opts.SpeedMax)
		life := core.RandRange(s.rng, opts.Life-opts.LifeVariance, opts.Life+opts.LifeVariance)

		s.particles = append(s.particles, Particle{
			Pos:      origin,
			Vel:      core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Life:     life,
			MaxLife:  life,
			Size:     core.RandRange(s.rng, opts.SizeMin, opts.SizeMax),
			Color:    core.Choice(s.rng, opts.Colors),
			Gravity:  opts.Gravity,
			Friction: opts.Friction,
			Shrink:   opts.Shrink,
			Fade:     opts.Fade,
		})
	}
}

// Trail emits a single slow, short-lived fading particle.
// Meant to be called every frame a moving entity is active.
func (s *System) Trail(origin core.Vec2, color core.Color) {
	s.Emit(origin, EmitOptions{
		Count:        1,
		Colors:       []core.Color{color},
		SpeedMin:     4,
		SpeedMax:     12,
		Life:         300,
		LifeVariance: 100,
		SizeMin:      1,
		SizeMax:      1,
		Friction:     0.92,
		Fade:         true,
	})
}

// Explode emits a fast colorful burst for impact and destruction moments.
// A nil color set selects the default warm palette.
func (s *System) Explode(origin core.Vec2, colors []core.Color) {
	if len(colors) == 0 {
		colors = []core.Color{core.ColorBrightYellow, core.ColorOrange, core.ColorBrightRed, core.ColorBrightWhite}
	}
	s.Emit(origin, EmitOptions{
		Count:        30,
		Colors:       colors,
		SpeedMin:     30,
		SpeedMax:     90,
		Life:         500,
		LifeVariance: 200,
		SizeMin:      1,
		SizeMax:      2.5,
		Gravity:      40,
		Friction:     0.96,
		Shrink:       true,
		Fade:         true,
	})
}

// Sparkle emits a few pastel particles in a narrow upward cone that drift
// up against gravity. Used for pickups and score moments.
func (s *System) Sparkle(origin core.Vec2) {
	s.Emit(origin, EmitOptions{
		Count:        5,
		Colors:       []core.Color{core.ColorBrightCyan, core.ColorBrightMagenta, core.ColorBrightWhite},
		SpeedMin:     6,
		SpeedMax:     18,
		Life:         450,
		LifeVariance: 150,
		SizeMin:      1,
		SizeMax:      1,
		Gravity:      -30,
		Direction:    -math.Pi / 2,
		Spread:       math.Pi / 6,
		Fade:         true,
	})
}

// Advance steps every particle by elapsedMs: lifetime counts down first and
// expired particles are dropped before any physics; survivors integrate
// gravity, apply friction, then integrate position. The delta is untrusted:
// zero is a no-op and very large values simply produce large jumps.
func (s *System) Advance(elapsedMs float64) {
	if elapsedMs <= 0 {
		return
	}
	dt := elapsedMs / 1000

	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]

		p.Life -= elapsedMs
		if p.Life <= 0 {
			continue
		}

		p.Vel.Y += p.Gravity * dt
		p.Vel.X *= p.Friction
		p.Vel.Y *= p.Friction
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt

		alive = append(alive, p)
	}
	s.particles = alive
}

// Opacity thresholds for the glyph ramp used in place of alpha blending.
const (
	alphaSolid = 0.66
	alphaMid   = 0.33
)

// Render draws every live particle as a filled circle.
// Shrinking particles scale their radius with remaining life; fading
// particles step down a glyph ramp in place of true opacity. The cell
// buffer has no global drawing state, so there is nothing to restore.
func (s *System) Render(dst *core.Screen) {
	for i := range s.particles {
		p := &s.particles[i]

		ratio := core.Clamp(p.Life/p.MaxLife, 0, 1)

		radius := p.Size
		if p.Shrink {
			radius = p.Size * ratio
		}

		alpha := 1.0
		if p.Fade {
			alpha = ratio
		}

		glyph := '●'
		switch {
		case alpha >= alphaSolid:
			glyph = '●'
		case alpha >= alphaMid:
			glyph = '•'
		default:
			glyph = '·'
		}

		dst.FillCircle(int(math.Round(p.Pos.X)), int(math.Round(p.Pos.Y)), radius, glyph, p.Color)
	}
}

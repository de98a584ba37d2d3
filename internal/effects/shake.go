package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-kit/internal/core"
)

// ShakeOptions configures a shake request. Zero values select defaults.
type ShakeOptions struct {
	Intensity float64 // max offset magnitude in cells, default 10
	Duration  float64 // ms, default 200
	Decay     float64 // per-step intensity multiplier, default 0.9
}

func (o *ShakeOptions) applyDefaults() {
	if o.Intensity == 0 {
		o.Intensity = 10
	}
	if o.Duration == 0 {
		o.Duration = 200
	}
	if o.Decay == 0 {
		o.Decay = 0.9
	}
}

// Shake produces a random screen offset that decays over time, applied as a
// whole-screen translation while the world is rendered. At most one shake is
// active; overlapping triggers fold into it rather than queueing.
type Shake struct {
	intensity float64
	duration  float64
	elapsed   float64
	decay     float64

	offsetX float64
	offsetY float64

	rng *rand.Rand
}

// NewShake creates a shake generator seeded for deterministic offsets.
func NewShake(seed int64) *Shake {
	return &Shake{rng: rand.New(rand.NewSource(seed))}
}

// Trigger starts or stacks a shake. A stronger request replaces the current
// shake outright, restarting the clock with the new duration and decay. A
// weaker request keeps the current clock and bumps the intensity to
// min(current + requested/2, requested*2); the cap means a weak request can
// pull a much stronger shake down toward its own scale, which reads as the
// big shake absorbing the small one.
func (s *Shake) Trigger(opts ShakeOptions) {
	opts.applyDefaults()

	if opts.Intensity > s.intensity {
		s.intensity = opts.Intensity
		s.duration = opts.Duration
		s.decay = opts.Decay
		s.elapsed = 0
		return
	}

	s.intensity = math.Min(s.intensity+opts.Intensity*0.5, opts.Intensity*2)
}

// Small triggers a light tap: intensity 3, 100ms.
func (s *Shake) Small() {
	s.Trigger(ShakeOptions{Intensity: 3, Duration: 100})
}

// Medium triggers a solid hit: intensity 8, 200ms.
func (s *Shake) Medium() {
	s.Trigger(ShakeOptions{Intensity: 8, Duration: 200})
}

// Large triggers a heavy impact: intensity 15, 300ms.
func (s *Shake) Large() {
	s.Trigger(ShakeOptions{Intensity: 15, Duration: 300})
}

// Advance steps the shake by elapsedMs. The shake ends when its duration
// runs out or the intensity decays below 0.1 cells; once ended the offsets
// are exactly zero so the world renders unshifted. Decay is applied once
// per call rather than scaled by the delta, so faster frame rates decay
// the shake faster. The frames are also shorter, which roughly cancels out,
// and it keeps the arithmetic trivial.
func (s *Shake) Advance(elapsedMs float64) {
	if s.intensity <= 0.1 {
		s.intensity = 0
		s.offsetX = 0
		s.offsetY = 0
		return
	}

	s.elapsed += elapsedMs
	s.intensity *= s.decay
	s.offsetX = core.RandRange(s.rng, -s.intensity, s.intensity)
	s.offsetY = core.RandRange(s.rng, -s.intensity, s.intensity)

	if s.elapsed >= s.duration {
		s.intensity = 0
		s.offsetX = 0
		s.offsetY = 0
	}
}

// Offset returns the current translation in cells.
// Zero when no shake is active.
func (s *Shake) Offset() (x, y float64) {
	return s.offsetX, s.offsetY
}

// Intensity returns the current shake intensity, zero when inactive.
func (s *Shake) Intensity() float64 {
	return s.intensity
}

// Active reports whether a shake is in progress.
func (s *Shake) Active() bool {
	return s.intensity > 0
}

// Apply translates dst by the current offset, rounded to whole cells.
// Callers bracket it with dst.Save and dst.Restore so HUD drawing after the
// world is not shifted.
func (s *Shake) Apply(dst *core.Screen) {
	dst.Translate(int(math.Round(s.offsetX)), int(math.Round(s.offsetY)))
}

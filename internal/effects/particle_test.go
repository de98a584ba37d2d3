package effects

import (
	"testing"

	"github.com/vovakirdan/arcade-kit/internal/core"
)

func TestEmitGrowsByCount(t *testing.T) {
	s := NewSystem(42)

	s.Emit(core.V(10, 10), EmitOptions{Count: 7})
	if s.Len() != 7 {
		t.Errorf("after Emit(7): Len = %d, want 7", s.Len())
	}

	s.Emit(core.V(10, 10), EmitOptions{Count: 3})
	if s.Len() != 10 {
		t.Errorf("after second Emit(3): Len = %d, want 10", s.Len())
	}
}

func TestEmitDefaults(t *testing.T) {
	s := NewSystem(42)
	s.Emit(core.V(0, 0), EmitOptions{})

	if s.Len() != 8 {
		t.Errorf("default Count should be 8, got %d", s.Len())
	}
	for _, p := range s.particles {
		if p.Life < 400 || p.Life > 800 {
			t.Errorf("default lifetime should fall in [400,800], got %f", p.Life)
		}
		if p.Friction != 1 {
			t.Errorf("default Friction should be 1, got %f", p.Friction)
		}
		if p.Life != p.MaxLife {
			t.Errorf("fresh particle should have Life == MaxLife, got %f vs %f", p.Life, p.MaxLife)
		}
	}
}

func TestAdvanceExpiresParticles(t *testing.T) {
	s := NewSystem(1)
	s.Emit(core.V(5, 5), EmitOptions{Count: 15, Life: 600, LifeVariance: 0.0001})

	s.Advance(300)
	if s.Len() != 15 {
		t.Errorf("halfway through lifetime: Len = %d, want 15", s.Len())
	}

	s.Advance(600)
	if s.Len() != 0 {
		t.Errorf("past lifetime: Len = %d, want 0", s.Len())
	}
}

func TestAdvanceZeroDeltaIsNoop(t *testing.T) {
	s := NewSystem(7)
	s.Emit(core.V(0, 0), EmitOptions{Count: 4, Friction: 0.5, Gravity: 100})

	before := make([]Particle, len(s.particles))
	copy(before, s.particles)

	s.Advance(0)

	if s.Len() != len(before) {
		t.Fatalf("Advance(0) changed particle count: %d -> %d", len(before), s.Len())
	}
	for i, p := range s.particles {
		if p != before[i] {
			t.Errorf("Advance(0) mutated particle %d: %+v -> %+v", i, before[i], p)
		}
	}
}

func TestAdvanceLifeNeverExceedsMax(t *testing.T) {
	s := NewSystem(3)
	s.Emit(core.V(0, 0), EmitOptions{Count: 20})

	for i := 0; i < 10; i++ {
		s.Advance(16)
		for _, p := range s.particles {
			if p.Life > p.MaxLife {
				t.Fatalf("Life %f exceeds MaxLife %f", p.Life, p.MaxLife)
			}
		}
	}
}

func TestAdvanceAppliesGravityAndFriction(t *testing.T) {
	s := NewSystem(9)
	s.Emit(core.V(0, 0), EmitOptions{
		Count: 1, SpeedMin: 100, SpeedMax: 100,
		Life: 1000, LifeVariance: 0.0001,
		Gravity: 50, Friction: 0.5,
	})

	v0 := s.particles[0].Vel
	s.Advance(1000)

	p := s.particles[0]
	wantY := (v0.Y + 50) * 0.5
	if diff := p.Vel.Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Vel.Y after gravity+friction: got %f, want %f", p.Vel.Y, wantY)
	}
	if diff := p.Vel.X - v0.X*0.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Vel.X after friction: got %f, want %f", p.Vel.X, v0.X*0.5)
	}
}

func TestClear(t *testing.T) {
	s := NewSystem(2)
	s.Emit(core.V(0, 0), EmitOptions{Count: 12})
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Clear: Len = %d, want 0", s.Len())
	}
}

func TestRenderDrawsLiveParticles(t *testing.T) {
	s := NewSystem(5)
	s.Emit(core.V(10, 10), EmitOptions{
		Count: 1, SpeedMin: 0.001, SpeedMax: 0.001,
		SizeMin: 1, SizeMax: 1,
		Life: 1000, LifeVariance: 0.0001,
		Colors: []core.Color{core.ColorBrightRed},
	})

	screen := core.NewScreen(21, 21)
	s.Render(screen)

	cell := screen.GetCell(10, 10)
	if cell.Rune != '●' {
		t.Errorf("fresh particle should render solid glyph at origin, got %q", cell.Rune)
	}
	if cell.Color != core.ColorBrightRed {
		t.Errorf("particle color should carry through, got %v", cell.Color)
	}
}

func TestRenderFadeGlyphRamp(t *testing.T) {
	s := NewSystem(5)
	s.Emit(core.V(10, 10), EmitOptions{
		Count: 1, SpeedMin: 0.001, SpeedMax: 0.001,
		SizeMin: 0.4, SizeMax: 0.4,
		Life: 1000, LifeVariance: 0.0001,
		Fade: true,
	})

	// Burn down to ~20% life: alpha below both ramp thresholds.
	s.Advance(800)
	if s.Len() != 1 {
		t.Fatalf("particle expired early, Len = %d", s.Len())
	}

	screen := core.NewScreen(21, 21)
	s.Render(screen)

	if got := screen.Get(10, 10); got != '·' {
		t.Errorf("faded particle should render dim glyph, got %q", got)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	a := NewSystem(99)
	b := NewSystem(99)

	a.Emit(core.V(1, 2), EmitOptions{Count: 10})
	b.Emit(core.V(1, 2), EmitOptions{Count: 10})
	a.Advance(16)
	b.Advance(16)

	if len(a.particles) != len(b.particles) {
		t.Fatalf("same seed, different counts: %d vs %d", len(a.particles), len(b.particles))
	}
	for i := range a.particles {
		if a.particles[i] != b.particles[i] {
			t.Errorf("particle %d diverged: %+v vs %+v", i, a.particles[i], b.particles[i])
		}
	}
}

package effects

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-kit/internal/core"
)

func TestTriggerDefaults(t *testing.T) {
	s := NewShake(1)
	s.Trigger(ShakeOptions{})

	if s.Intensity() != 10 {
		t.Errorf("default intensity: got %f, want 10", s.Intensity())
	}
	if s.duration != 200 {
		t.Errorf("default duration: got %f, want 200", s.duration)
	}
	if s.decay != 0.9 {
		t.Errorf("default decay: got %f, want 0.9", s.decay)
	}
}

func TestTriggerStrongerReplaces(t *testing.T) {
	s := NewShake(1)
	s.Trigger(ShakeOptions{Intensity: 5, Duration: 100})
	s.Advance(50)

	s.Trigger(ShakeOptions{Intensity: 15, Duration: 300})

	if s.Intensity() != 15 {
		t.Errorf("stronger trigger should replace: got %f, want 15", s.Intensity())
	}
	if s.elapsed != 0 {
		t.Errorf("stronger trigger should restart the clock, elapsed = %f", s.elapsed)
	}
	if s.duration != 300 {
		t.Errorf("stronger trigger should take the new duration, got %f", s.duration)
	}
}

func TestTriggerWeakerStacks(t *testing.T) {
	s := NewShake(1)
	s.Trigger(ShakeOptions{Intensity: 4, Duration: 200})
	s.Trigger(ShakeOptions{Intensity: 3, Duration: 500})

	// 4 + 3/2 = 5.5, under the 2*3 cap of 6
	if s.Intensity() != 5.5 {
		t.Errorf("weak stack: got %f, want 5.5", s.Intensity())
	}
	if s.duration != 200 {
		t.Errorf("weak stack should keep current duration, got %f", s.duration)
	}
}

func TestTriggerWeakerCapPullsDown(t *testing.T) {
	s := NewShake(1)
	s.Trigger(ShakeOptions{Intensity: 20, Duration: 400})
	s.Trigger(ShakeOptions{Intensity: 5, Duration: 100})

	// min(20 + 2.5, 10) = 10: the cap lowers a much stronger shake.
	if s.Intensity() != 10 {
		t.Errorf("capped stack: got %f, want 10", s.Intensity())
	}
	if s.duration != 400 {
		t.Errorf("capped stack should keep current duration, got %f", s.duration)
	}
}

func TestAdvanceOffsetsBoundedByIntensity(t *testing.T) {
	s := NewShake(42)
	s.Trigger(ShakeOptions{Intensity: 10, Duration: 10000, Decay: 1})

	for i := 0; i < 100; i++ {
		s.Advance(16)
		x, y := s.Offset()
		if math.Abs(x) > s.Intensity() || math.Abs(y) > s.Intensity() {
			t.Fatalf("offset (%f, %f) exceeds intensity %f", x, y, s.Intensity())
		}
	}
}

func TestAdvanceEndsAtDuration(t *testing.T) {
	s := NewShake(42)
	s.Trigger(ShakeOptions{Intensity: 10, Duration: 100, Decay: 1})

	s.Advance(50)
	if !s.Active() {
		t.Fatal("shake should still be active at 50ms of 100ms")
	}
	if s.Intensity() != 10 {
		t.Errorf("decay 1.0 should hold intensity, got %f", s.Intensity())
	}

	s.Advance(60)
	if s.Active() {
		t.Error("shake should end once elapsed reaches duration")
	}
	if x, y := s.Offset(); x != 0 || y != 0 {
		t.Errorf("ended shake should offset by exactly zero, got (%f, %f)", x, y)
	}

	// Stays dead on further advances
	s.Advance(16)
	if x, y := s.Offset(); x != 0 || y != 0 {
		t.Errorf("dead shake resurrected: offset (%f, %f)", x, y)
	}
}

func TestAdvanceEndsOnIntensityFloor(t *testing.T) {
	s := NewShake(42)
	s.Trigger(ShakeOptions{Intensity: 0.2, Duration: 10000, Decay: 0.5})

	// 0.2 -> 0.1 -> floor check trips on the next call
	s.Advance(16)
	s.Advance(16)
	if s.Active() {
		t.Errorf("shake should die below the 0.1 floor, intensity %f", s.Intensity())
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name      string
		trigger   func(*Shake)
		intensity float64
		duration  float64
	}{
		{"small", (*Shake).Small, 3, 100},
		{"medium", (*Shake).Medium, 8, 200},
		{"large", (*Shake).Large, 15, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShake(1)
			tt.trigger(s)
			if s.Intensity() != tt.intensity {
				t.Errorf("intensity: got %f, want %f", s.Intensity(), tt.intensity)
			}
			if s.duration != tt.duration {
				t.Errorf("duration: got %f, want %f", s.duration, tt.duration)
			}
		})
	}
}

func TestApplyTranslatesScreen(t *testing.T) {
	s := NewShake(1)
	s.offsetX = 2.4
	s.offsetY = -1.6

	screen := core.NewScreen(10, 10)
	screen.Save()
	s.Apply(screen)
	screen.Set(0, 2, 'X') // Rounded offset (2, -2) lands this at (2, 0)
	screen.Restore()

	if got := screen.Get(2, 0); got != 'X' {
		t.Errorf("Apply should translate by rounded offsets, got %q at (2,0)", got)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, 'O', ColorBrightRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'O' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(4,2) = %+v, want {O BrightRed}", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic, writes silently dropped
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get should return space, got %q", got)
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("out-of-bounds writes should leave screen blank")
	}
}

func TestScreenTranslate(t *testing.T) {
	s := NewScreen(10, 5)

	s.Save()
	s.Translate(2, 1)
	s.Set(0, 0, 'X')
	s.Restore()

	if got := s.Get(2, 1); got != 'X' {
		t.Errorf("translated write should land at (2,1), got %q there", got)
	}

	// After Restore, drawing is back at the true origin
	s.Set(0, 0, 'Y')
	if got := s.Get(0, 0); got != 'Y' {
		t.Errorf("post-restore write should land at (0,0), got %q", got)
	}
}

func TestScreenTranslateNested(t *testing.T) {
	s := NewScreen(20, 10)

	s.Save()
	s.Translate(1, 1)
	s.Save()
	s.Translate(2, 2)
	s.Set(0, 0, 'A') // Lands at (3,3)
	s.Restore()
	s.Set(0, 0, 'B') // Lands at (1,1)
	s.Restore()

	if got := s.Get(3, 3); got != 'A' {
		t.Errorf("nested translate: got %q at (3,3), want 'A'", got)
	}
	if got := s.Get(1, 1); got != 'B' {
		t.Errorf("after inner restore: got %q at (1,1), want 'B'", got)
	}
}

func TestScreenTranslateClips(t *testing.T) {
	s := NewScreen(5, 5)

	s.Save()
	s.Translate(-3, 0)
	s.Set(0, 0, 'X') // Off-screen after translation
	s.Set(4, 0, 'Y') // Lands at (1,0)
	s.Restore()

	if got := s.Get(1, 0); got != 'Y' {
		t.Errorf("shifted write should land at (1,0), got %q", got)
	}
}

func TestScreenClearResetsTransform(t *testing.T) {
	s := NewScreen(10, 5)
	s.Save()
	s.Translate(3, 3)
	s.Clear()

	s.Set(0, 0, 'X')
	if got := s.Get(0, 0); got != 'X' {
		t.Error("Clear should reset the translation to zero")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(1, 1, "hello")

	if got := s.Row(1); got != " hello    " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(0, "hi")

	if got := s.Get(4, 0); got != 'h' {
		t.Errorf("centered text should start at x=4, got %q there", got)
	}
}

func TestScreenFillCircle(t *testing.T) {
	s := NewScreen(11, 11)
	s.FillCircle(5, 5, 2, '●', ColorDefault)

	if got := s.Get(5, 5); got != '●' {
		t.Error("circle center should be filled")
	}
	if got := s.Get(5, 3); got != '●' {
		t.Error("cell two above center should be filled at radius 2")
	}
	if got := s.Get(2, 2); got == '●' {
		t.Error("corner outside radius should not be filled")
	}
}

func TestScreenFillCircleTiny(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillCircle(2, 2, 0.3, '·', ColorDefault)

	if got := s.Get(2, 2); got != '·' {
		t.Error("tiny radius should still paint the center cell")
	}
	if got := s.Get(3, 2); got == '·' {
		t.Error("tiny radius should paint only the center cell")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if got := s.Get(2, 2); got != 'X' {
		t.Error("Resize should preserve content in the overlapping region")
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions: got %dx%d", s.Width(), s.Height())
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'X' {
		t.Error("shrinking Resize should preserve content that still fits")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

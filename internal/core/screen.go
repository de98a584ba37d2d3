package core

import (
	"strings"
)

// Cell is a single screen cell: a glyph plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
//
// The buffer carries a translation transform so effects can offset world
// drawing (screen shake) without games knowing about it. Save/Restore
// bracket the transform; drawing outside the bracket (HUD text) is
// unaffected. Out-of-bounds writes are silently ignored, so a shaken frame
// never fails, it just clips.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	offsetX, offsetY int
	saved            []offset
}

type offset struct {
	x, y int
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Save pushes the current translation onto the transform stack.
func (s *Screen) Save() {
	s.saved = append(s.saved, offset{x: s.offsetX, y: s.offsetY})
}

// Restore pops the transform stack, restoring the previous translation.
// Restoring with an empty stack resets the translation to zero.
func (s *Screen) Restore() {
	if len(s.saved) == 0 {
		s.offsetX, s.offsetY = 0, 0
		return
	}
	top := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.offsetX, s.offsetY = top.x, top.y
}

// Translate shifts the drawing origin by (dx, dy).
// Callers are responsible for bracketing with Save/Restore.
func (s *Screen) Translate(dx, dy int) {
	s.offsetX += dx
	s.offsetY += dy
}

// Clear fills the entire screen with spaces and resets all transforms.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
	s.offsetX, s.offsetY = 0, 0
	s.saved = s.saved[:0]
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Color: ColorDefault}
		}
	}
}

// Set places a rune at the given position in the default color.
// The current translation applies; out-of-bounds writes are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell places a colored rune at the given position.
// The current translation applies; out-of-bounds writes are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	x += s.offsetX
	y += s.offsetY
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates. The current translation applies.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	x += s.offsetX
	y += s.offsetY
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range text {
		s.Set(x+i, y, r)
	}
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for i, r := range text {
		s.SetCell(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills a rectangular cell area with the given rune.
func (s *Screen) DrawRect(x, y, w, h int, fill rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.Set(x+dx, y+dy, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	// Corners
	s.Set(x, y, '┌')
	s.Set(x+w-1, y, '┐')
	s.Set(x, y+h-1, '└')
	s.Set(x+w-1, y+h-1, '┘')

	// Horizontal edges
	for dx := 1; dx < w-1; dx++ {
		s.Set(x+dx, y, '─')
		s.Set(x+dx, y+h-1, '─')
	}

	// Vertical edges
	for dy := 1; dy < h-1; dy++ {
		s.Set(x, y+dy, '│')
		s.Set(x+w-1, y+dy, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// FillCircle draws a filled circle of the given radius centered on (cx, cy).
// A radius at or below 0.5 paints the single center cell.
func (s *Screen) FillCircle(cx, cy int, radius float64, r rune, c Color) {
	if radius <= 0.5 {
		s.SetCell(cx, cy, r, c)
		return
	}
	ri := int(radius + 0.5)
	r2 := radius * radius
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				s.SetCell(cx+dx, cy+dy, r, c)
			}
		}
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines. Colors are not included; the platform
// layer applies styling from the cells directly.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.cells[y][x].Rune)
	}
	return sb.String()
}

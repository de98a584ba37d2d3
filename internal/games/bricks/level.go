package bricks

import (
	"github.com/vovakirdan/arcade-kit/internal/config"
	"github.com/vovakirdan/arcade-kit/internal/core"
)

// Brick is one destructible cell of the wall.
type Brick struct {
	Rect  core.Rect
	Color core.Color
	Alive bool
}

// rowColors cycles per grid row, top to bottom.
var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
}

// Grid holds the brick wall for one level.
// Bricks live in a flat row-major slice and are never removed, only marked
// dead; collision resolution depends on this fixed iteration order.
type Grid struct {
	bricks []Brick
	alive  int
}

// NewGrid builds a centered brick wall from the layout config.
func NewGrid(layout config.BricksLayout, screenW int) *Grid {
	g := &Grid{
		bricks: make([]Brick, 0, layout.Rows*layout.Cols),
	}

	gridW := layout.Cols * layout.BrickWidth
	left := (screenW - gridW) / 2
	if left < 0 {
		left = 0
	}

	for row := 0; row < layout.Rows; row++ {
		color := rowColors[row%len(rowColors)]
		for col := 0; col < layout.Cols; col++ {
			g.bricks = append(g.bricks, Brick{
				Rect: core.NewRect(
					float64(left+col*layout.BrickWidth),
					float64(layout.TopOffset+row*layout.BrickHeight),
					float64(layout.BrickWidth),
					float64(layout.BrickHeight),
				),
				Color: color,
				Alive: true,
			})
		}
	}
	g.alive = len(g.bricks)
	return g
}

// FirstHit returns the index of the first live brick, in row-major order,
// that intersects r. Returns -1 if none. First match wins even when a later
// brick overlaps r more; callers resolve at most one brick per frame.
func (g *Grid) FirstHit(r core.Rect) int {
	for i := range g.bricks {
		if g.bricks[i].Alive && g.bricks[i].Rect.Intersects(r) {
			return i
		}
	}
	return -1
}

// Destroy marks the brick at index i dead.
func (g *Grid) Destroy(i int) {
	if i < 0 || i >= len(g.bricks) || !g.bricks[i].Alive {
		return
	}
	g.bricks[i].Alive = false
	g.alive--
}

// AliveCount returns the number of remaining bricks.
func (g *Grid) AliveCount() int {
	return g.alive
}

// Bricks returns the full grid, dead bricks included.
func (g *Grid) Bricks() []Brick {
	return g.bricks
}

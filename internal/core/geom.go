// Package core provides fundamental types and utilities for the arcade kit.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in logical cell coordinates.
// Positions and velocities are float64 so movement can be scaled by the
// frame's elapsed time rather than by tick count.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit-length copy of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CirclesOverlap returns true if two circles intersect or touch.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Dist(a, b) <= ra+rb
}

// Clamp restricts a float64 value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampInt restricts an integer value to be within [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; t=0 returns a and t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

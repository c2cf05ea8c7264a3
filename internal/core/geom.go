// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in integer cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned bounding box in continuous world coordinates.
// Games that simulate in float space use RectF for collision and convert
// to cell coordinates only when rendering.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a float rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Intersects returns true if the two rectangles overlap by a nonzero area.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.X+other.W || other.X >= r.X+r.W {
		return false
	}
	if r.Y >= other.Y+other.H || other.Y >= r.Y+r.H {
		return false
	}
	return true
}

// ContainsVec returns true if the point p is inside this rectangle.
func (r RectF) ContainsVec(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vec is a 2D point or direction in continuous world coordinates.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistToSegment returns the distance from point p to the nearest point ON
// the segment a-b, not on the infinite line through it: the projection
// parameter is clamped to [0, 1] before the distance is taken. When the
// segment is degenerate (a == b) the distance to a is returned.
func DistToSegment(p, a, b Vec) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Sub(a).Len()
	}

	t := p.Sub(a).Dot(ab) / lenSq
	t = ClampF(t, 0, 1)

	closest := Vec{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return p.Sub(closest).Len()
}

// NearSegment reports whether point p lies within threshold of the
// segment a-b. Used for click hit-testing on wires.
func NearSegment(p, a, b Vec, threshold float64) bool {
	return DistToSegment(p, a, b) <= threshold
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Package core provides fundamental types and utilities for arena generation.
// It contains no external dependencies (especially no Bubble Tea) to keep
// layout and level logic pure and testable.
package core

import "math"

// Vec2 is a point or extent in the arena plane.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Unit axes used by the layout builder.
var (
	AxisX = Vec2{X: 1}
	AxisY = Vec2{Y: 1}
)

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
// With a unit axis it projects v onto that axis.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Vec3 is a position with a depth layer used for render ordering.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the depth component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Extend lifts a plane point to the given depth layer.
func (v Vec2) Extend(z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Rect represents an axis-aligned box in the arena plane.
// Pos is the lower-left corner; the rectangle covers
// [Pos.X, Pos.X+Size.X) x [Pos.Y, Pos.Y+Size.Y).
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// NewRect creates a new rectangle with the given corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Max returns the far (upper-right) corner.
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Pos.X < other.Pos.X+other.Size.X &&
		other.Pos.X < r.Pos.X+r.Size.X &&
		r.Pos.Y < other.Pos.Y+other.Size.Y &&
		other.Pos.Y < r.Pos.Y+r.Size.Y
}

// Contains returns true if the point p lies inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Size.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Pos.Add(r.Size.Scale(0.5))
}

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	return r.Size.Len()
}

// Translate returns a copy of r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.Pos = r.Pos.Add(d)
	return r
}

// DistanceTo returns the distance from p to the nearest point of r.
// It is zero when p is inside or on the boundary.
func (r Rect) DistanceTo(p Vec2) float64 {
	m := r.Max()
	dx := math.Max(math.Max(r.Pos.X-p.X, 0), p.X-m.X)
	dy := math.Max(math.Max(r.Pos.Y-p.Y, 0), p.Y-m.Y)
	return math.Hypot(dx, dy)
}

// MirrorX reflects r across the line x = 0. The far X edge becomes the near
// one, so Pos is rebuilt from the reflected far corner.
func (r Rect) MirrorX() Rect {
	r.Pos.X = -(r.Pos.X + r.Size.X)
	return r
}

// MirrorY reflects r across the line y = 0.
func (r Rect) MirrorY() Rect {
	r.Pos.Y = -(r.Pos.Y + r.Size.Y)
	return r
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

// Package core provides fundamental types and utilities for Pixel Pilot.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec is a 2D vector in arena units (pixels, y grows downward).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the direction of v in radians as atan2(y, x).
// The zero vector has angle 0.
func (v Vec) Angle() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a vector of the given length pointing along theta (radians).
func FromAngle(theta, length float64) Vec {
	return Vec{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Box is an axis-aligned hitbox in arena units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Circle is a hit circle in arena units.
type Circle struct {
	Center Vec
	Radius float64
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Vec) bool {
	return p.Sub(c.Center).LenSq() < c.Radius*c.Radius
}

// IntersectsBox reports whether the circle and the box share interior area.
// The test clamps the circle center onto the box and compares the distance to
// that closest point with the radius.
func (c Circle) IntersectsBox(b Box) bool {
	if b.W <= 0 || b.H <= 0 || c.Radius <= 0 {
		return false
	}
	closest := Vec{
		X: ClampF(c.Center.X, b.X, b.X+b.W),
		Y: ClampF(c.Center.Y, b.Y, b.Y+b.H),
	}
	return closest.Sub(c.Center).LenSq() < c.Radius*c.Radius
}

// WrapDegrees normalizes an angle in degrees into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360 in floating point
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
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

// Package geom provides the small set of 2D vector and angle primitives
// used by the perimeter layout engine.
//
// Angles follow mathematical convention: positive x is right, positive y is
// up, the zero angle lies on positive x and angles increase counter-clockwise.
// Callers feeding screen coordinates (inverted y-axis) must flip the y
// component before converting to an angle.
package geom

import "math"

// Vec2 is a 2D vector or point. The zero value is the origin.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at the given angle in radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector pointing in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the angle of v in radians in the range (-π, π].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// IsZero reports whether v is exactly the zero vector.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

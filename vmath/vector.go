package vmath

import "math"

// Vec2 is a 2D float64 vector, passed by value
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div divides each component by s; s == 0 yields Inf/NaN as in plain float division
func (a Vec2) Div(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

func (a Vec2) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns the unit vector; the zero vector is returned unchanged
func (a Vec2) Normalize() Vec2 {
	if a.X == 0 && a.Y == 0 {
		return a
	}
	l := a.Len()
	return Vec2{a.X / l, a.Y / l}
}

// Perp returns a rotated 90° counter-clockwise
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// Vec3 is a 3D float64 vector, passed by value
type Vec3 struct {
	X, Y, Z float64
}

// V3 builds a Vec3
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div divides each component by s
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

func (a Vec3) Neg() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

func (a Vec3) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns the unit vector; the zero vector is returned unchanged
func (a Vec3) Normalize() Vec3 {
	if a.X == 0 && a.Y == 0 && a.Z == 0 {
		return a
	}
	l := a.Len()
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// XY drops the Z component
func (a Vec3) XY() Vec2 {
	return Vec2{a.X, a.Y}
}

// WithXY replaces X and Y, keeping Z
func (a Vec3) WithXY(v Vec2) Vec3 {
	return Vec3{v.X, v.Y, a.Z}
}

func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

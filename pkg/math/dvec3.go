package math

import "math"

// DVec3 is a double-precision 3D vector used for physical quantities.
// Astronomical distances lose too much precision in float32 once squared.
type DVec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v DVec3) Add(other DVec3) DVec3 {
	return DVec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v DVec3) Sub(other DVec3) DVec3 {
	return DVec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v DVec3) Scale(s float64) DVec3 {
	return DVec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v DVec3) Dot(other DVec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the squared magnitude.
func (v DVec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v DVec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v DVec3) Normalize() DVec3 {
	l := v.Length()
	if l == 0 {
		return DVec3{}
	}
	return DVec3{v.X / l, v.Y / l, v.Z / l}
}

// HorizontalDistance returns the distance to other projected on the XZ plane.
func (v DVec3) HorizontalDistance(other DVec3) float64 {
	dx := v.X - other.X
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Vec3 narrows v to single precision.
func (v DVec3) Vec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

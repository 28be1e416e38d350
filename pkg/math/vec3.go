package math

import "math"

// Vec3 is a 3D vector. Every operation returns a new value.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector, or the zero vector for zero-length input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{
		float32(math.Min(float64(v.X), float64(other.X))),
		float32(math.Min(float64(v.Y), float64(other.Y))),
		float32(math.Min(float64(v.Z), float64(other.Z))),
	}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{
		float32(math.Max(float64(v.X), float64(other.X))),
		float32(math.Max(float64(v.Y), float64(other.Y))),
		float32(math.Max(float64(v.Z), float64(other.Z))),
	}
}

// RotateX returns v rotated about the X axis by angle radians.
func (v Vec3) RotateX(angle float32) Vec3 {
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return Vec3{
		v.X,
		v.Y*c - v.Z*s,
		v.Y*s + v.Z*c,
	}
}

// RotateY returns v rotated about the Y axis by angle radians.
func (v Vec3) RotateY(angle float32) Vec3 {
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return Vec3{
		v.X*c + v.Z*s,
		v.Y,
		-v.X*s + v.Z*c,
	}
}

// RotateZ returns v rotated about the Z axis by angle radians.
func (v Vec3) RotateZ(angle float32) Vec3 {
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return Vec3{
		v.X*c - v.Y*s,
		v.X*s + v.Y*c,
		v.Z,
	}
}

// Reflect returns v reflected about the unit normal n: 2(v·n)n - v.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return n.Scale(2 * v.Dot(n)).Sub(v)
}

package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector. It is used for both geometry and colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to s
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return v.Add(Splat(s))
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractScalar subtracts s from every component
func (v Vec3) SubtractScalar(s float64) Vec3 {
	return v.Subtract(Splat(s))
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.DivideVec(Splat(scalar))
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Pow raises every component to the given exponent
func (v Vec3) Pow(exponent float64) Vec3 {
	return v.PowVec(Splat(exponent))
}

// PowVec raises each component to the matching component of other.
// Negative bases with fractional exponents yield the real part of the complex result.
func (v Vec3) PowVec(other Vec3) Vec3 {
	return Vec3{
		X: RealPow(v.X, other.X),
		Y: RealPow(v.Y, other.Y),
		Z: RealPow(v.Z, other.Z),
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Abs returns the component-wise absolute value
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Sqrt returns the component-wise square root of the absolute value,
// so negative components never produce NaN
func (v Vec3) Sqrt() Vec3 {
	return Vec3{
		X: math.Sqrt(math.Abs(v.X)),
		Y: math.Sqrt(math.Abs(v.Y)),
		Z: math.Sqrt(math.Abs(v.Z)),
	}
}

// Exp returns e raised to each component
func (v Vec3) Exp() Vec3 {
	return Vec3{math.Exp(v.X), math.Exp(v.Y), math.Exp(v.Z)}
}

// Round rounds each component to the given number of decimals (half to even)
func (v Vec3) Round(precision int) Vec3 {
	scale := math.Pow(10, float64(precision))
	round := func(x float64) float64 {
		return math.RoundToEven(x*scale) / scale
	}
	return Vec3{round(v.X), round(v.Y), round(v.Z)}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector yields ErrZeroLength instead of NaN components.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, ErrZeroLength
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Rotate applies the intrinsic XYZ Euler rotation R = Rx·Ry·Rz, so the Z
// angle acts on the vector first and the X angle last. Angles are in radians.
func (v Vec3) Rotate(angles Vec3) Vec3 {
	if angles.Z != 0 {
		cos, sin := math.Cos(angles.Z), math.Sin(angles.Z)
		v = Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
	}

	if angles.Y != 0 {
		cos, sin := math.Cos(angles.Y), math.Sin(angles.Y)
		v = Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
	}

	if angles.X != 0 {
		cos, sin := math.Cos(angles.X), math.Sin(angles.X)
		v = Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
	}

	return v
}

// Clamp returns a vector with components clamped to [min, max].
// The receiver is never modified.
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// String formats the vector as "x, y, z"
func (v Vec3) String() string {
	return fmt.Sprintf("%g, %g, %g", v.X, v.Y, v.Z)
}

// RealPow returns the real part of base**exponent. For a negative base and a
// non-integer exponent the principal complex power is |base|^e * (cos(e*pi) + i*sin(e*pi)).
func RealPow(base, exponent float64) float64 {
	if base >= 0 || exponent == math.Trunc(exponent) {
		return math.Pow(base, exponent)
	}
	return math.Pow(-base, exponent) * math.Cos(exponent*math.Pi)
}

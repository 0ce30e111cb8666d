package types

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

type Vec3 f32.Vec3

// Tolerance used by IsNormalized when comparing the squared length to 1.
const normalizedEpsilon float32 = 0.01

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// X component.
func (v Vec3) X() float32 { return v[0] }

// Y component.
func (v Vec3) Y() float32 { return v[1] }

// Z component.
func (v Vec3) Z() float32 { return v[2] }

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Divide a 3 component vector by a scalar.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.SqLen())
}

// Get squared 3 component vector length.
func (v Vec3) SqLen() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize 3 component vector. Normalizing a zero-length vector yields
// non-finite components.
func (v Vec3) Normalize() Vec3 {
	k := 1.0 / v.Len()
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// Returns true if the squared vector length is within 0.01 of 1.
func (v Vec3) IsNormalized() bool {
	return math32.Abs(v.SqLen()-1.0) < normalizedEpsilon
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors using the right-hand rule.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{
		v[1]*v2[2] - v[2]*v2[1],
		-(v[0]*v2[2] - v[2]*v2[0]),
		v[0]*v2[1] - v[1]*v2[0],
	}
}

// Get the max component.
func (v Vec3) MaxComponent() float32 {
	return math32.Max(v[0], math32.Max(v[1], v[2]))
}

// Returns true if any component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

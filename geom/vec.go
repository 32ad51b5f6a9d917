/*package geom contains the geometry used to decide whether beam rays strike
a rotated, finite cylinder and to bound the region where they can.

The beam travels along +z. Ray offsets (x, y) live in the transverse plane
and the cylinder is centered on the origin with its axis tilted by theta
away from the beam, toward +y.
*/
package geom

import (
	. "math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Matrix is a 3x3 matrix stored in row-major order.
type Matrix [9]float64

// EulerMatrix creates a 3D rotation matrix based off the Euler angles phi,
// theta, and psi. These represent three consecutive rotations around the x,
// y, and z axes, respectively.
func EulerMatrix(phi, theta, psi float64) *Matrix {
	return &Matrix{
		Cos(theta)*Cos(psi),
		Cos(phi)*Sin(psi) + Sin(phi)*Sin(theta)*Cos(psi),
		Sin(phi)*Sin(psi) - Cos(phi)*Sin(theta)*Cos(psi),
		-Cos(theta)*Sin(psi),
		Cos(phi)*Cos(psi) - Sin(phi)*Sin(theta)*Sin(psi),
		Sin(phi)*Cos(psi) + Cos(phi)*Sin(theta)*Sin(psi),
		Sin(theta),
		-Sin(phi)*Cos(theta),
		Cos(phi)*Cos(theta),
	}
}

// TiltMatrix returns the rotation which carries the beam direction, +z, onto
// the axis of a cylinder tilted by theta.
func TiltMatrix(theta float64) *Matrix { return EulerMatrix(theta, 0, 0) }

// Rotate rotates a vector by the given rotation matrix.
func (v *Vec) Rotate(m *Matrix) {
	v0 := m[0]*v[0] + m[1]*v[1] + m[2]*v[2]
	v1 := m[3]*v[0] + m[4]*v[1] + m[5]*v[2]
	v2 := m[6]*v[0] + m[7]*v[1] + m[8]*v[2]
	v[0], v[1], v[2] = v0, v1, v2
}

// Dot returns the inner product of v1 and v2.
func (v1 *Vec) Dot(v2 *Vec) float64 {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

// Sub returns v1 - v2.
func (v1 *Vec) Sub(v2 *Vec) Vec {
	return Vec{ v1[0] - v2[0], v1[1] - v2[1], v1[2] - v2[2] }
}

// Scale returns a*v.
func (v *Vec) Scale(a float64) Vec {
	return Vec{ a*v[0], a*v[1], a*v[2] }
}

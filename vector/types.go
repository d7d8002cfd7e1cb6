// SPDX-License-Identifier: MIT

// Package vector: the Vector3D value type and its constructors.
// Vector3D is a plain struct: assignment copies all three coordinates, there
// is no shared storage, and the zero value is the zero vector.

package vector

import "github.com/katalvlaran/geom3/report"

// Dim is the fixed number of coordinates of a Vector3D.
const Dim = 3

// Vector3D is a 3-tuple of float64 coordinates.
// No NaN/Inf validation is performed; arithmetic propagates whatever IEEE-754
// result occurs.
type Vector3D struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Zero returns the zero vector (0, 0, 0). Equivalent to Vector3D{}.
func Zero() Vector3D {
	return Vector3D{}
}

// FromArray builds a vector from an ordered triple (x, y, z).
func FromArray(a [Dim]float64) Vector3D {
	return Vector3D{X: a[0], Y: a[1], Z: a[2]}
}

// FromSlice builds a vector from a slice holding exactly three values.
// Stage 1 (Validate): len(s) == 3, else ErrBadLength.
// Stage 2 (Finalize): copy s[0], s[1], s[2] into x, y, z.
// The result never aliases s.
func FromSlice(s []float64) (Vector3D, error) {
	if err := validateLen(s); err != nil {
		return Vector3D{}, report.Errorf(opFromSlice, err)
	}

	return Vector3D{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Clone returns an independent copy of v. Plain assignment does the same;
// Clone exists for call sites that read better with an explicit copy.
func (v Vector3D) Clone() Vector3D {
	return v
}

// Array returns the coordinates as an ordered triple (x, y, z).
func (v Vector3D) Array() [Dim]float64 {
	return [Dim]float64{v.X, v.Y, v.Z}
}

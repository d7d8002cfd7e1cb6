// SPDX-License-Identifier: MIT
// Package: vector
//
// Geometry: dot product, Euclidean distance, norm and angle.
//
// Numeric policy:
//   - No clamping, no NaN guards. Angle on a zero vector, or a cosine that
//     rounding pushes just outside [-1, 1], yields NaN from math.Acos and that
//     NaN is returned as is.

package vector

import "math"

// Dot returns a·b = a.x*b.x + a.y*b.y + a.z*b.z.
func Dot(a, b Vector3D) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Dot returns v·o. See the free function Dot.
func (v Vector3D) Dot(o Vector3D) float64 {
	return Dot(v, o)
}

// Distance returns the Euclidean distance between a and b.
// Symmetric: Distance(a, b) == Distance(b, a), and Distance(a, a) == 0.
func Distance(a, b Vector3D) float64 {
	d := a.Sub(b)

	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Dist returns the Euclidean distance from v to o; identical to Distance(v, o).
func (v Vector3D) Dist(o Vector3D) float64 {
	return Distance(v, o)
}

// Norm returns the length of v: its distance from the zero vector.
func (v Vector3D) Norm() float64 {
	return Distance(Vector3D{}, v)
}

// Angle returns the angle between a and b in radians:
// acos(a·b / (|a|·|b|)). Degenerate inputs yield NaN.
func Angle(a, b Vector3D) float64 {
	return math.Acos(Dot(a, b) / (a.Norm() * b.Norm()))
}

// Angle returns the angle between v and o in radians. See Angle.
func (v Vector3D) Angle(o Vector3D) float64 {
	return Angle(v, o)
}

// AllClose reports whether every coordinate satisfies |a-b| ≤ atol + rtol*|b|.
// NaN is never close to anything; +Inf is close only to +Inf, -Inf only to -Inf.
// Negative tolerances are treated as their absolute values.
//
// Complexity: O(1).
func AllClose(a, b Vector3D, rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	return closeTo(a.X, b.X, rtol, atol) &&
		closeTo(a.Y, b.Y, rtol, atol) &&
		closeTo(a.Z, b.Z, rtol, atol)
}

// CloseTo reports whether |x-y| ≤ atol + rtol*|y|, with the same NaN and Inf
// rules as AllClose applied to a single coordinate.
func CloseTo(x, y, rtol, atol float64) bool {
	return closeTo(x, y, math.Abs(rtol), math.Abs(atol))
}

func closeTo(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing free functions over the Matrix3D
//     methods for callers that prefer a functional style (Sum(a, b) over a.Add(b)).
//   - Each facade delegates to the canonical method; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change evaluation order or error policy of the methods
//     they forward to.

package matrix

import "github.com/katalvlaran/geom3/vector"

// Sum is an alias for a.Add(b).
func Sum(a, b Matrix3D) Matrix3D { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff(a, b Matrix3D) Matrix3D { return a.Sub(b) }

// Product is an alias for a.Mul(b): the matrix product a·b.
func Product(a, b Matrix3D) Matrix3D { return a.Mul(b) }

// Apply is an alias for m.MulVec(v): y = m·v.
func Apply(m Matrix3D, v vector.Vector3D) vector.Vector3D { return m.MulVec(v) }

// T is an alias for m.Transpose().
func T(m Matrix3D) Matrix3D { return m.Transpose() }

// ScaleBy is an alias for m.Scale(alpha).
func ScaleBy(m Matrix3D, alpha float64) Matrix3D { return m.Scale(alpha) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b|.
// NaN is never close to anything; +Inf equals +Inf; -Inf equals -Inf.
// rtol and atol are treated as |rtol|, |atol|.
//
// Complexity: O(1) (nine comparisons).
func AllClose(a, b Matrix3D, rtol, atol float64) bool {
	for i := range a.rows {
		if !vector.AllClose(a.rows[i], b.rows[i], rtol, atol) {
			return false
		}
	}

	return true
}

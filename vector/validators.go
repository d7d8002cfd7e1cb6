// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for the three checks Vector3D needs: index range,
//     divisor, and slice length.
//   - Return plain sentinels (no wrapping) so call sites wrap uniformly with
//     their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package vector

import "fmt"

// Operation tags for error wrapping and reports (no magic strings).
const (
	opFromSlice    = "vector.FromSlice"
	opGet          = "Vector3D.Get"
	opRef          = "Vector3D.Ref"
	opAt           = "Vector3D.At"
	opSet          = "Vector3D.Set"
	opDiv          = "Vector3D.Div"
	opDivInPlace   = "Vector3D.DivInPlace"
	opScan         = "Vector3D.Scan"
	opParse        = "vector.Parse"
	opRead         = "vector.Read"
	opUnmarshalTxt = "Vector3D.UnmarshalText"
)

// opIndex formats an indexed operation tag, e.g. "Vector3D.Get(3)".
func opIndex(op string, i int) string {
	return fmt.Sprintf("%s(%d)", op, i)
}

// opScalar formats a scalar operation tag, e.g. "Vector3D.Div(0)".
func opScalar(op string, s float64) string {
	return fmt.Sprintf("%s(%g)", op, s)
}

// ValidateIndex ensures 0 ≤ i < Dim.
//
// Returns ErrIndexOutOfRange otherwise.
// Complexity: O(1).
func ValidateIndex(i int) error {
	if i < 0 || i >= Dim {
		return ErrIndexOutOfRange
	}

	return nil
}

// ValidateDivisor rejects a divisor that is exactly zero (either sign).
// Tiny non-zero divisors are accepted; the result may overflow to ±Inf.
// Complexity: O(1).
func ValidateDivisor(s float64) error {
	if s == 0 {
		return ErrDivisionByZero
	}

	return nil
}

// validateLen ensures a flat slice holds exactly Dim values.
func validateLen(s []float64) error {
	if len(s) != Dim {
		return ErrBadLength
	}

	return nil
}

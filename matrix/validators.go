// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the canonical shape checks for Matrix3D construction from
//     untyped sequences (flat and nested).
//   - Reuse vector.ValidateIndex / vector.ValidateDivisor for index and
//     divisor checks so both packages agree on what "out of range" means.
//   - Return plain sentinels (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/geom3/vector"
)

// Size is the number of elements of a Matrix3D.
const Size = vector.Dim * vector.Dim

// Operation tags for error wrapping and reports (no magic strings).
const (
	opFromSlice    = "matrix.FromSlice"
	opFromNested   = "matrix.FromNested"
	opRow          = "Matrix3D.Row"
	opColumn       = "Matrix3D.Column"
	opGet          = "Matrix3D.Get"
	opRef          = "Matrix3D.Ref"
	opRowAt        = "Matrix3D.RowAt"
	opColumnAt     = "Matrix3D.ColumnAt"
	opAt           = "Matrix3D.At"
	opSet          = "Matrix3D.Set"
	opSetRow       = "Matrix3D.SetRow"
	opDiv          = "Matrix3D.Div"
	opDivInPlace   = "Matrix3D.DivInPlace"
	opScan         = "Matrix3D.Scan"
	opParse        = "matrix.Parse"
	opRead         = "matrix.Read"
	opUnmarshalTxt = "Matrix3D.UnmarshalText"
)

// opIndex formats an indexed operation tag, e.g. "Matrix3D.Row(3)".
func opIndex(op string, i int) string {
	return fmt.Sprintf("%s(%d)", op, i)
}

// opIndex2 formats a two-index operation tag, e.g. "Matrix3D.At(1,3)".
func opIndex2(op string, i, j int) string {
	return fmt.Sprintf("%s(%d,%d)", op, i, j)
}

// opScalar formats a scalar operation tag, e.g. "Matrix3D.Div(0)".
func opScalar(op string, s float64) string {
	return fmt.Sprintf("%s(%g)", op, s)
}

// validateLen ensures a flat row-major slice holds exactly Size values.
// Complexity: O(1).
func validateLen(s []float64) error {
	if len(s) != Size {
		return ErrBadLength
	}

	return nil
}

// validateNested ensures a nested slice is exactly 3 rows of 3 values.
// Stage 1: outer length. Stage 2: every inner length, in row order.
// Complexity: O(1).
func validateNested(rows [][]float64) error {
	if len(rows) != vector.Dim {
		return fmt.Errorf("%w: %d rows", ErrBadShape, len(rows))
	}
	for i, r := range rows {
		if len(r) != vector.Dim {
			return fmt.Errorf("%w: row %d has %d values", ErrBadShape, i, len(r))
		}
	}

	return nil
}

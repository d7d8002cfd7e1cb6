// SPDX-License-Identifier: MIT
// Package report: sentinel error set shared by vector and matrix.
// This file defines ONLY package-level sentinel errors. Checked operations
// return these (wrapped with an operation tag); compatibility operations hand
// them to the Reporter and carry on with a fallback value. Tests MUST match
// them via errors.Is.

package report

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "geom3: ..." so reports from vector and
// matrix grep the same way. vector and matrix re-export these sentinels as
// aliases; errors.Is(err, vector.ErrIndexOutOfRange) and
// errors.Is(err, report.ErrIndexOutOfRange) are the same check.

var (
	// ErrIndexOutOfRange indicates that a coordinate, row or column index is
	// outside {0, 1, 2}.
	ErrIndexOutOfRange = errors.New("geom3: index out of bounds")

	// ErrDivisionByZero indicates a scalar division whose divisor is exactly 0.
	ErrDivisionByZero = errors.New("geom3: division by zero")

	// ErrBadLength indicates a flat sequence with the wrong number of values
	// (3 for a vector, 9 for a matrix).
	ErrBadLength = errors.New("geom3: wrong number of values")

	// ErrBadShape indicates a nested sequence that is not 3×3.
	ErrBadShape = errors.New("geom3: sequence is not 3x3")

	// ErrSyntax indicates malformed text input: a token that is not a number,
	// or too few/too many numbers.
	ErrSyntax = errors.New("geom3: invalid syntax")
)

// Errorf wraps err with an operation tag, preserving it for errors.Is/As.
// The wrapper keeps a stable "Op: underlying" shape so every package formats
// failures the same way. Call only with a non-nil err.
func Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel aliases.
// The sentinels are owned by package report and shared with package vector,
// so a failure raised while working on a row matches the same errors.Is
// check as one raised by the matrix itself.

package matrix

import "github.com/katalvlaran/geom3/report"

var (
	// ErrIndexOutOfRange is returned (or reported) for a row, column or
	// element index outside {0,1,2}.
	ErrIndexOutOfRange = report.ErrIndexOutOfRange

	// ErrDivisionByZero is returned (or reported) for a zero scalar divisor.
	ErrDivisionByZero = report.ErrDivisionByZero

	// ErrBadLength is returned by FromSlice when the slice does not hold 9 values.
	ErrBadLength = report.ErrBadLength

	// ErrBadShape is returned by FromNested when the input is not 3×3.
	ErrBadShape = report.ErrBadShape

	// ErrSyntax is returned by Scan/Parse/UnmarshalText on malformed text.
	ErrSyntax = report.ErrSyntax
)

// ErrOutOfRange is an alias of ErrIndexOutOfRange.
var ErrOutOfRange = ErrIndexOutOfRange

// SPDX-License-Identifier: MIT
// Package vector: sentinel aliases.
// The sentinels are owned by package report so that vector and matrix share
// one error identity; they are re-exported here so callers never need to
// import report just to run errors.Is.

package vector

import "github.com/katalvlaran/geom3/report"

var (
	// ErrIndexOutOfRange is returned (or reported) for a coordinate index outside {0,1,2}.
	ErrIndexOutOfRange = report.ErrIndexOutOfRange

	// ErrDivisionByZero is returned (or reported) for a zero scalar divisor.
	ErrDivisionByZero = report.ErrDivisionByZero

	// ErrBadLength is returned by FromSlice when the slice does not hold 3 values.
	ErrBadLength = report.ErrBadLength

	// ErrSyntax is returned by Scan/Parse/UnmarshalText on malformed text.
	ErrSyntax = report.ErrSyntax
)

// Package report is the error surface shared by the vector and matrix packages.
//
// Two kinds of failure exist in geom3, and neither is fatal:
//
//   - ErrIndexOutOfRange: an index outside {0, 1, 2}.
//   - ErrDivisionByZero: a scalar divisor that is exactly zero.
//
// Every operation that can hit one of them comes in two forms. The checked
// form (At, Set, RowAt, CheckedDiv, ...) returns the wrapped sentinel. The
// compatibility form (Get, Ref, Row, Column, Div, DivInPlace) hands the
// sentinel to the process-wide Reporter and returns a fallback: index 0 for
// bad indices, the untouched operand for a zero divisor.
//
// The default Reporter writes one line per failure to standard error. Swap it
// with SetDefault; use a Recorder to assert on reports in tests.
package report

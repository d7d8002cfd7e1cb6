// Package matrix provides Matrix3D, a fixed-size 3×3 float64 matrix built
// from three vector.Vector3D rows.
//
// The matrix package provides:
//
//   - Construction from rows, nine scalars, flat and nested sequences, the
//     zero matrix and scalar multiples of the identity (Scalar, Identity).
//   - Row-wise arithmetic (Add, Sub, Neg, Scale, Div and InPlace forms),
//     matrix·vector (MulVec) and matrix·matrix (Mul, MulInPlace) products,
//     Transpose, Trace and Determinant.
//   - Row/column extraction and element access in checked (RowAt, ColumnAt,
//     At, Set) and compatibility (Row, Column, Get, Ref) forms.
//   - Whitespace-delimited text I/O: three vector-formatted rows.
//
// Matrix3D is a value: assignment and Clone copy all nine elements, and
// values compare with ==. Errors follow package report: checked forms return
// wrapped sentinels, compatibility forms report and fall back to row 0 or to
// the untouched operand.
//
// See the examples in this package for usage patterns.
package matrix

// Package geom3 is a small value library for 3D geometry: a three-component
// vector and a 3×3 matrix of float64, with the usual arithmetic and a plain
// text format.
//
// What is in the box?
//
//	vector/  Vector3D: component access, arithmetic, dot product, distance,
//	          norm, angle, text I/O
//	matrix/  Matrix3D: three Vector3D rows, row/column access, arithmetic,
//	          matrix·vector and matrix·matrix products, transpose, trace,
//	          determinant, text I/O
//	report/  where recoverable faults go (bad index, division by zero) when
//	          the compatibility accessors pick a fallback instead of failing
//
// Both types are plain values: assignment copies, the zero value is the zero
// vector / zero matrix, and different values may be used from different
// goroutines freely. A single value shared between goroutines needs external
// synchronization once anyone writes to it.
//
// Errors come in two flavours. Checked forms (At, Set, CheckedDiv, RowAt,
// ColumnAt, SetRow) return an error wrapping one of the sentinels in report.
// Compatibility forms (Get, Ref, Row, Column, Div, DivInPlace) never fail:
// they hand the fault to report.Default() and return a documented fallback.
//
// Quick example:
//
//	m := matrix.Scalar(2)
//	v := m.MulVec(vector.New(1, 1, 1)) // 2 2 2
//	fmt.Println(v, m.Determinant())    // 2 2 2 8
//
//	go get github.com/katalvlaran/geom3
package geom3

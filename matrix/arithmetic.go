// SPDX-License-Identifier: MIT
// Package: matrix
//
// Arithmetic on Matrix3D, expressed row by row through vector.Vector3D.
//
// Conventions:
//   - Value-receiver methods return a new matrix; operands are not mutated.
//   - InPlace methods are the compound assignments (+=, -=, *=, /=).
//   - Subtraction is A + B·(-1), in-place or not.
//   - A zero divisor never divides: Div/DivInPlace report and keep A as is,
//     CheckedDiv returns ErrDivisionByZero.
//
// Complexity: every method here is O(1) (fixed 3×3 work).

package matrix

import (
	"github.com/katalvlaran/geom3/report"
	"github.com/katalvlaran/geom3/vector"
)

// Add returns the row-wise sum m + o.
func (m Matrix3D) Add(o Matrix3D) Matrix3D {
	m.AddInPlace(o) // m is a copy

	return m
}

// AddInPlace sets m to m + o.
func (m *Matrix3D) AddInPlace(o Matrix3D) {
	for i := range m.rows {
		m.rows[i].AddInPlace(o.rows[i])
	}
}

// Sub returns m - o, computed as m + o·(-1).
func (m Matrix3D) Sub(o Matrix3D) Matrix3D {
	return m.Add(o.Scale(-1))
}

// SubInPlace sets m to m - o.
func (m *Matrix3D) SubInPlace(o Matrix3D) {
	m.AddInPlace(o.Scale(-1))
}

// Neg returns -m.
func (m Matrix3D) Neg() Matrix3D {
	return m.Scale(-1)
}

// Scale returns m with every row scaled by s.
func (m Matrix3D) Scale(s float64) Matrix3D {
	m.ScaleInPlace(s)

	return m
}

// ScaleInPlace sets m to m·s.
func (m *Matrix3D) ScaleInPlace(s float64) {
	for i := range m.rows {
		m.rows[i].ScaleInPlace(s)
	}
}

// divRows divides every row by s. s must already be validated non-zero.
func (m *Matrix3D) divRows(s float64) {
	for i := range m.rows {
		m.rows[i].DivInPlace(s)
	}
}

// CheckedDiv returns m with every row divided by s.
// Errors: ErrDivisionByZero (wrapped) when s == 0; m is returned unchanged.
func (m Matrix3D) CheckedDiv(s float64) (Matrix3D, error) {
	if err := vector.ValidateDivisor(s); err != nil {
		return m, report.Errorf(opDiv, err)
	}
	m.divRows(s)

	return m, nil
}

// Div returns m with every row divided by s. When s == 0 it reports
// ErrDivisionByZero and returns m unchanged.
func (m Matrix3D) Div(s float64) Matrix3D {
	if err := vector.ValidateDivisor(s); err != nil {
		report.Report(opScalar(opDiv, s), err)

		return m
	}
	m.divRows(s)

	return m
}

// DivInPlace sets m to m/s. When s == 0 it reports ErrDivisionByZero and
// leaves m untouched.
func (m *Matrix3D) DivInPlace(s float64) {
	if err := vector.ValidateDivisor(s); err != nil {
		report.Report(opScalar(opDivInPlace, s), err)

		return
	}
	m.divRows(s)
}

// MulVec returns m·v: component i is the dot product of row i with v.
func (m Matrix3D) MulVec(v vector.Vector3D) vector.Vector3D {
	return vector.New(
		m.rows[0].Dot(v),
		m.rows[1].Dot(v),
		m.rows[2].Dot(v),
	)
}

// Mul returns the matrix product m·o (not commutative).
//
// Implementation:
//   - Stage 1: for each column j of o, c_j = m·col_j(o); c_j is column j of
//     the product.
//   - Stage 2: the columns are reassembled into rows by transposing the
//     matrix whose rows are c_0, c_1, c_2.
func (m Matrix3D) Mul(o Matrix3D) Matrix3D {
	return FromRows(
		m.MulVec(o.col(0)),
		m.MulVec(o.col(1)),
		m.MulVec(o.col(2)),
	).Transpose()
}

// MulInPlace sets m to m·o.
func (m *Matrix3D) MulInPlace(o Matrix3D) {
	*m = m.Mul(o)
}

// Transpose returns mᵀ: row i of the result is column i of m.
func (m Matrix3D) Transpose() Matrix3D {
	return FromRows(m.col(0), m.col(1), m.col(2))
}

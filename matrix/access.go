// SPDX-License-Identifier: MIT
// Package: matrix
//
// Row, column and element access.
//
// Two families, mirroring package vector:
//   - checked: RowAt, ColumnAt, At, Set, SetRow return ErrIndexOutOfRange and
//     never report.
//   - compatibility: Row, Column, Get, Ref never fail; a bad index is
//     reported once and the call falls back to row 0. Column falls back to
//     row 0 as well, not column 0.

package matrix

import (
	"github.com/katalvlaran/geom3/report"
	"github.com/katalvlaran/geom3/vector"
)

// col builds column j from the j-th coordinate of each row. j must already
// be validated.
func (m Matrix3D) col(j int) vector.Vector3D {
	return vector.New(
		m.rows[0].Array()[j],
		m.rows[1].Array()[j],
		m.rows[2].Array()[j],
	)
}

// RowAt returns row i.
// Errors: ErrIndexOutOfRange (wrapped) for i ∉ {0,1,2}.
func (m Matrix3D) RowAt(i int) (vector.Vector3D, error) {
	if err := vector.ValidateIndex(i); err != nil {
		return vector.Vector3D{}, report.Errorf(opIndex(opRowAt, i), err)
	}

	return m.rows[i], nil
}

// ColumnAt returns column j as (m[0][j], m[1][j], m[2][j]).
// Errors: ErrIndexOutOfRange (wrapped) for j ∉ {0,1,2}.
func (m Matrix3D) ColumnAt(j int) (vector.Vector3D, error) {
	if err := vector.ValidateIndex(j); err != nil {
		return vector.Vector3D{}, report.Errorf(opIndex(opColumnAt, j), err)
	}

	return m.col(j), nil
}

// At returns the element m[i][j].
// Errors: ErrIndexOutOfRange (wrapped) if either index is outside {0,1,2}.
func (m Matrix3D) At(i, j int) (float64, error) {
	if err := validateIndex2(i, j); err != nil {
		return 0, report.Errorf(opIndex2(opAt, i, j), err)
	}

	return m.rows[i].Array()[j], nil
}

// Set assigns val to m[i][j]. On error m is left untouched.
func (m *Matrix3D) Set(i, j int, val float64) error {
	if err := validateIndex2(i, j); err != nil {
		return report.Errorf(opIndex2(opSet, i, j), err)
	}
	*m.rows[i].Ref(j) = val

	return nil
}

// SetRow replaces row i with v. On error m is left untouched.
func (m *Matrix3D) SetRow(i int, v vector.Vector3D) error {
	if err := vector.ValidateIndex(i); err != nil {
		return report.Errorf(opIndex(opSetRow, i), err)
	}
	m.rows[i] = v

	return nil
}

// validateIndex2 checks a (row, col) pair, row first.
func validateIndex2(i, j int) error {
	if err := vector.ValidateIndex(i); err != nil {
		return err
	}

	return vector.ValidateIndex(j)
}

// Row returns row i. For i ∉ {0,1,2} it reports ErrIndexOutOfRange and
// returns row 0.
func (m Matrix3D) Row(i int) vector.Vector3D {
	return m.rowOrFirst(opRow, i)
}

// Get returns a copy of row i, with the same fallback as Row. It is the
// read-only counterpart of Ref.
func (m Matrix3D) Get(i int) vector.Vector3D {
	return m.rowOrFirst(opGet, i)
}

func (m Matrix3D) rowOrFirst(op string, i int) vector.Vector3D {
	if err := vector.ValidateIndex(i); err != nil {
		report.Report(opIndex(op, i), err)

		return m.rows[0]
	}

	return m.rows[i]
}

// Column returns column j as (m[0][j], m[1][j], m[2][j]). For j ∉ {0,1,2}
// it reports ErrIndexOutOfRange and returns row 0.
func (m Matrix3D) Column(j int) vector.Vector3D {
	if err := vector.ValidateIndex(j); err != nil {
		report.Report(opIndex(opColumn, j), err)

		return m.rows[0]
	}

	return m.col(j)
}

// Ref returns a mutable handle to row i, so callers can write through it:
//
//	*m.Ref(1).Ref(2) = 5 // m[1][2] = 5
//	m.Ref(0).ScaleInPlace(2)
//
// For i ∉ {0,1,2} it reports ErrIndexOutOfRange and returns a handle to row 0.
func (m *Matrix3D) Ref(i int) *vector.Vector3D {
	if err := vector.ValidateIndex(i); err != nil {
		report.Report(opIndex(opRef, i), err)

		return &m.rows[0]
	}

	return &m.rows[i]
}

// Array returns the nine elements in row-major order.
func (m Matrix3D) Array() [Size]float64 {
	var out [Size]float64
	for i, r := range m.rows {
		a := r.Array()
		copy(out[i*vector.Dim:], a[:])
	}

	return out
}

// Grid returns the elements as a 3×3 array, one inner array per row.
func (m Matrix3D) Grid() [vector.Dim][vector.Dim]float64 {
	return [vector.Dim][vector.Dim]float64{m.rows[0].Array(), m.rows[1].Array(), m.rows[2].Array()}
}

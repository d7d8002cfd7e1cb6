// SPDX-License-Identifier: MIT

// Package matrix: the Matrix3D value type and its constructors.
// A Matrix3D owns its three rows by value, so copies never share storage and
// the zero value is the zero matrix. Elements are addressed m[row][col].

package matrix

import (
	"github.com/katalvlaran/geom3/report"
	"github.com/katalvlaran/geom3/vector"
)

// Matrix3D is a 3×3 float64 matrix stored as three vector.Vector3D rows.
// Matrix3D values are comparable with ==.
type Matrix3D struct {
	rows [vector.Dim]vector.Vector3D
}

// FromRows builds a matrix whose rows are r0, r1, r2.
func FromRows(r0, r1, r2 vector.Vector3D) Matrix3D {
	return Matrix3D{rows: [vector.Dim]vector.Vector3D{r0, r1, r2}}
}

// Zero returns the zero matrix. Equivalent to Matrix3D{}.
func Zero() Matrix3D {
	return Matrix3D{}
}

// Scalar returns s·I: s on the diagonal, zeros elsewhere.
func Scalar(s float64) Matrix3D {
	return FromRows(
		vector.New(s, 0, 0),
		vector.New(0, s, 0),
		vector.New(0, 0, s),
	)
}

// Identity returns I, i.e. Scalar(1).
func Identity() Matrix3D {
	return Scalar(1)
}

// FromElements builds a matrix from nine values in row-major order:
//
//	a b c
//	d e f
//	g h i
func FromElements(a, b, c, d, e, f, g, h, i float64) Matrix3D {
	return FromRows(
		vector.New(a, b, c),
		vector.New(d, e, f),
		vector.New(g, h, i),
	)
}

// FromArray builds a matrix from a row-major array of nine values.
func FromArray(a [Size]float64) Matrix3D {
	return FromElements(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// FromSlice builds a matrix from a row-major slice of exactly nine values.
// Errors: ErrBadLength (wrapped). The result never aliases s.
func FromSlice(s []float64) (Matrix3D, error) {
	if err := validateLen(s); err != nil {
		return Matrix3D{}, report.Errorf(opFromSlice, err)
	}

	return FromElements(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8]), nil
}

// FromGrid builds a matrix from a 3×3 array; each inner array is one row.
func FromGrid(g [vector.Dim][vector.Dim]float64) Matrix3D {
	return FromRows(vector.FromArray(g[0]), vector.FromArray(g[1]), vector.FromArray(g[2]))
}

// FromNested builds a matrix from a nested slice; each inner slice is one row.
// Stage 1 (Validate): exactly 3 rows of 3 values, else ErrBadShape.
// Stage 2 (Finalize): copy each row; the result never aliases rows.
func FromNested(rows [][]float64) (Matrix3D, error) {
	if err := validateNested(rows); err != nil {
		return Matrix3D{}, report.Errorf(opFromNested, err)
	}

	var m Matrix3D
	for i, r := range rows {
		m.rows[i] = vector.New(r[0], r[1], r[2])
	}

	return m, nil
}

// Clone returns an independent copy of m. Plain assignment copies all three
// rows as well; Clone is the explicit spelling.
func (m Matrix3D) Clone() Matrix3D {
	return m
}

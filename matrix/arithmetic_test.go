// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geom3/matrix"
	"github.com/katalvlaran/geom3/vector"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := matrix.FromElements(9, 8, 7, 6, 5, 4, 3, 2, 1)

	require.Equal(t, matrix.Scalar(10).Add(matrix.FromElements(0, 10, 10, 10, 0, 10, 10, 10, 0)), a.Add(b))
	require.Equal(t, matrix.FromElements(-8, -6, -4, -2, 0, 2, 4, 6, 8), a.Sub(b))
	require.Equal(t, matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9), a, "operands must not change")

	require.Equal(t, a.Add(b), matrix.Sum(a, b))
	require.Equal(t, a.Sub(b), matrix.Diff(a, b))
	require.Equal(t, matrix.Zero(), a.Add(a.Neg()))
}

func TestInPlace(t *testing.T) {
	t.Parallel()

	m := matrix.Identity()
	m.AddInPlace(matrix.Identity())
	require.Equal(t, matrix.Scalar(2), m)

	m.SubInPlace(matrix.Scalar(0.5))
	require.Equal(t, matrix.Scalar(1.5), m)

	m.ScaleInPlace(4)
	require.Equal(t, matrix.Scalar(6), m)

	m.DivInPlace(3)
	require.Equal(t, matrix.Scalar(2), m)

	m.MulInPlace(matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9))
	require.Equal(t, matrix.FromElements(2, 4, 6, 8, 10, 12, 14, 16, 18), m)
}

func TestScaleDiv(t *testing.T) {
	t.Parallel()

	a := matrix.FromElements(2, 4, 6, 8, 10, 12, 14, 16, 18)
	require.Equal(t, matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9), a.Div(2))
	require.Equal(t, a, a.Div(2).Scale(2))
	require.Equal(t, a.Scale(-1), matrix.ScaleBy(a, -1))

	got, err := a.CheckedDiv(-2)
	require.NoError(t, err)
	require.Equal(t, matrix.FromElements(-1, -2, -3, -4, -5, -6, -7, -8, -9), got)
}

func TestDiv_ZeroReportsAndKeepsOperand(t *testing.T) {
	rec := installRecorder(t)

	a := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, a, a.Div(0))
	requireReported(t, rec, "Matrix3D.Div(0)", matrix.ErrDivisionByZero)
}

func TestDivInPlace_ZeroReportsAndMutatesNothing(t *testing.T) {
	rec := installRecorder(t)

	a := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	a.DivInPlace(0)
	require.Equal(t, matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9), a)
	requireReported(t, rec, "Matrix3D.DivInPlace(0)", matrix.ErrDivisionByZero)
}

func TestCheckedDiv_ZeroReturnsError(t *testing.T) {
	rec := installRecorder(t)

	a := matrix.Identity()
	got, err := a.CheckedDiv(0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	require.EqualError(t, err, "Matrix3D.Div: geom3: division by zero")
	require.Equal(t, a, got)
	require.Equal(t, 0, rec.Len())
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	require.Equal(t, vector.New(2, 2, 2),
		matrix.FromElements(2, 0, 0, 0, 2, 0, 0, 0, 2).MulVec(vector.New(1, 1, 1)))

	m := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, vector.New(14, 32, 50), m.MulVec(vector.New(1, 2, 3)))
	require.Equal(t, m.MulVec(vector.New(1, 2, 3)), matrix.Apply(m, vector.New(1, 2, 3)))
}

func TestMul_Concrete(t *testing.T) {
	t.Parallel()

	a := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := matrix.FromElements(9, 8, 7, 6, 5, 4, 3, 2, 1)

	require.Equal(t, matrix.FromElements(30, 24, 18, 84, 69, 54, 138, 114, 90), a.Mul(b))
	require.Equal(t, matrix.FromElements(90, 114, 138, 54, 69, 84, 18, 24, 30), b.Mul(a))
	require.NotEqual(t, a.Mul(b), b.Mul(a), "product is not commutative")
	require.Equal(t, a.Mul(b), matrix.Product(a, b))
}

func TestMul_ColumnsAreProductsWithColumns(t *testing.T) {
	t.Parallel()

	for _, a := range fixtures {
		for _, b := range fixtures {
			p := a.Mul(b)
			for j := 0; j < 3; j++ {
				col, err := b.ColumnAt(j)
				require.NoError(t, err)
				got, err := p.ColumnAt(j)
				require.NoError(t, err)
				require.Equal(t, a.MulVec(col), got)
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, matrix.FromElements(1, 4, 7, 2, 5, 8, 3, 6, 9), m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
	require.Equal(t, m.Transpose(), matrix.T(m))
}

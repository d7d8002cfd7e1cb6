// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geom3/vector"
)

func TestDot(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, vector.Dot(vector.New(1, 0, 0), vector.New(0, 1, 0)))
	require.Equal(t, 32.0, vector.New(1, 2, 3).Dot(vector.New(4, 5, 6)))
	require.Equal(t, vector.Dot(vector.New(4, 5, 6), vector.New(1, 2, 3)),
		vector.New(1, 2, 3).Dot(vector.New(4, 5, 6)))
}

func TestDistance(t *testing.T) {
	t.Parallel()

	a, b := vector.New(0, 0, 0), vector.New(3, 4, 0)
	require.Equal(t, 5.0, vector.Distance(a, b))
	require.Equal(t, 5.0, a.Dist(b))
	require.Equal(t, 5.0, b.Dist(a))
	require.Equal(t, 0.0, b.Dist(b))
}

func TestNorm(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, vector.Zero().Norm())
	require.Equal(t, 13.0, vector.New(3, 4, 12).Norm())
	require.Equal(t, 13.0, vector.New(-3, -4, -12).Norm())
}

func TestAngle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b vector.Vector3D
		want float64
	}{
		{"orthogonal", vector.New(1, 0, 0), vector.New(0, 1, 0), math.Pi / 2},
		{"parallel", vector.New(1, 0, 0), vector.New(3, 0, 0), 0},
		{"antiparallel", vector.New(1, 0, 0), vector.New(-2, 0, 0), math.Pi},
		{"diagonal", vector.New(1, 0, 0), vector.New(1, 1, 0), math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, vector.Angle(tc.a, tc.b), 1e-12)
			require.InDelta(t, tc.want, tc.a.Angle(tc.b), 1e-12)
		})
	}
}

func TestAngle_ZeroVectorIsNaN(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsNaN(vector.Zero().Angle(vector.New(1, 2, 3))))
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := vector.New(1, 2, 3)
	require.True(t, vector.AllClose(a, a, 0, 0))
	require.True(t, vector.AllClose(a, vector.New(1+1e-10, 2, 3), 0, 1e-9))
	require.False(t, vector.AllClose(a, vector.New(1+1e-6, 2, 3), 0, 1e-9))
	require.True(t, vector.AllClose(a, vector.New(1.001, 2, 3), -1e-2, 0), "negative rtol is normalized")

	nan := vector.New(math.NaN(), 0, 0)
	require.False(t, vector.AllClose(nan, nan, 1, 1))

	inf := vector.New(math.Inf(1), 0, 0)
	require.True(t, vector.AllClose(inf, inf, 0, 0))
	require.False(t, vector.AllClose(inf, vector.New(math.Inf(-1), 0, 0), 1, 1))

	require.True(t, vector.CloseTo(1, 1.5, 0, -0.5))
}

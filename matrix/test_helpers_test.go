// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Matrix3D tests.
//   • Keep all data finite and well-scaled so tolerance checks stay meaningful.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geom3/matrix"
	"github.com/katalvlaran/geom3/report"
	"github.com/katalvlaran/geom3/vector"
)

// Tolerances for property checks.
const (
	rtol = 1e-12
	atol = 1e-12
)

// fixtures is a fixed set of matrices: singular, diagonal, rotation-like,
// general and negative-entry cases.
var fixtures = []matrix.Matrix3D{
	matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9),
	matrix.FromElements(2, 0, 0, 0, 3, 0, 0, 0, 4),
	matrix.FromElements(0, -1, 0, 1, 0, 0, 0, 0, 1),
	matrix.FromElements(2, -1, 0.5, 3, 4, -2, 1, 0, 6),
	matrix.FromElements(-3, 1.25, 7, 0, -2, 4, 5, 6, -1),
}

// testVectors is a fixed set of vectors for matrix·vector checks.
var testVectors = []vector.Vector3D{
	vector.New(1, 1, 1),
	vector.New(1, 2, 3),
	vector.New(-0.5, 4, 2.25),
	vector.Zero(),
}

// installRecorder swaps the default reporter for a Recorder for the duration
// of the test. Tests using it must not call t.Parallel.
func installRecorder(t *testing.T) *report.Recorder {
	t.Helper()
	rec := &report.Recorder{}
	restore := report.SetDefault(rec)
	t.Cleanup(restore)

	return rec
}

// requireReported asserts that exactly one report with sentinel want and
// operation op was captured.
func requireReported(t *testing.T, rec *report.Recorder, op string, want error) {
	t.Helper()
	entries := rec.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, op, entries[0].Op)
	require.ErrorIs(t, entries[0].Err, want)
}

// requireMatClose fails unless want and got agree within the tolerances.
func requireMatClose(t *testing.T, want, got matrix.Matrix3D) {
	t.Helper()
	require.True(t, matrix.AllClose(got, want, rtol, atol), "want\n%v\ngot\n%v", want, got)
}

// MustParse parses s or fails the test.
func MustParse(t *testing.T, s string) matrix.Matrix3D {
	t.Helper()
	m, err := matrix.Parse(s)
	require.NoError(t, err)

	return m
}

// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geom3/report"
	"github.com/katalvlaran/geom3/vector"
)

// Tolerances for property checks on well-scaled inputs.
const (
	rtol = 1e-12
	atol = 1e-12
)

// samples is a fixed set of vectors covering signs, zeros and magnitudes.
var samples = []vector.Vector3D{
	vector.New(0, 0, 0),
	vector.New(1, 2, 3),
	vector.New(-4.5, 0.25, 7),
	vector.New(1e6, -1e-6, 3.75),
	vector.New(-1, -1, -1),
	vector.New(0.1, 0.2, 0.3),
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

// requireClose fails unless a and b agree within the package tolerances.
func requireClose(t *testing.T, want, got vector.Vector3D) {
	t.Helper()
	require.True(t, vector.AllClose(got, want, rtol, atol), "want %v, got %v", want, got)
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

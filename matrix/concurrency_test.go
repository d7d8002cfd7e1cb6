// SPDX-License-Identifier: MIT

package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geom3/matrix"
	"github.com/katalvlaran/geom3/vector"
)

// TestConcurrent_IndependentValues mutates per-goroutine matrices in parallel;
// run with -race.
func TestConcurrent_IndependentValues(t *testing.T) {
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make([]matrix.Matrix3D, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			m := matrix.Scalar(float64(id))
			for k := 0; k < 50; k++ {
				m.AddInPlace(matrix.Identity())
				m.MulInPlace(matrix.Identity())
				*m.Ref(0).Ref(1) += 1
			}
			results[id] = m
		}(i)
	}
	wg.Wait()

	for i, m := range results {
		want := matrix.Scalar(float64(i) + 50)
		require.NoError(t, want.Set(0, 1, 50))
		require.Equal(t, want, m)
	}
}

// TestConcurrent_SharedReadOnly reads one value from many goroutines.
func TestConcurrent_SharedReadOnly(t *testing.T) {
	shared := matrix.FromElements(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := shared.MulVec(vector.New(1, 1, 1))

	const readers = 16
	var wg sync.WaitGroup
	wg.Add(readers)
	got := make([]vector.Vector3D, readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			got[id] = shared.Transpose().Transpose().MulVec(vector.New(1, 1, 1))
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		require.Equal(t, want, v)
	}
}

// TestConcurrent_Reporting sends fallback reports from many goroutines into
// one Recorder.
func TestConcurrent_Reporting(t *testing.T) {
	rec := installRecorder(t)

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			m := matrix.Identity()
			for k := 0; k < perWorker; k++ {
				_ = m.Row(3)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, rec.Len())
	for _, e := range rec.Entries() {
		require.Equal(t, "Matrix3D.Row(3)", e.Op)
		require.ErrorIs(t, e.Err, matrix.ErrIndexOutOfRange)
	}
}

// SPDX-License-Identifier: MIT
// Package: vector
//
// Indexed access: 0 → X, 1 → Y, 2 → Z.
//
// Two families:
//   - checked: At / Set return ErrIndexOutOfRange and never report.
//   - compatibility: Get / Ref never fail; a bad index is reported to the
//     default reporter and the call behaves as if index 0 had been asked for.
//     Callers that ignore the report get X, not a crash.

package vector

import "github.com/katalvlaran/geom3/report"

// ptr returns the address of coordinate i. i must already be validated.
func (v *Vector3D) ptr(i int) *float64 {
	switch i {
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	default:
		return &v.X
	}
}

// At returns coordinate i.
// Errors: ErrIndexOutOfRange (wrapped) for i ∉ {0,1,2}.
// Complexity: O(1).
func (v Vector3D) At(i int) (float64, error) {
	if err := ValidateIndex(i); err != nil {
		return 0, report.Errorf(opIndex(opAt, i), err)
	}

	return *v.ptr(i), nil
}

// Set assigns val to coordinate i.
// Errors: ErrIndexOutOfRange (wrapped); v is left untouched.
// Complexity: O(1).
func (v *Vector3D) Set(i int, val float64) error {
	if err := ValidateIndex(i); err != nil {
		return report.Errorf(opIndex(opSet, i), err)
	}
	*v.ptr(i) = val

	return nil
}

// Get returns coordinate i. For i ∉ {0,1,2} it reports ErrIndexOutOfRange and
// returns X.
func (v Vector3D) Get(i int) float64 {
	if err := ValidateIndex(i); err != nil {
		report.Report(opIndex(opGet, i), err)

		return v.X
	}

	return *v.ptr(i)
}

// Ref returns a mutable handle to coordinate i, so callers can write through
// it (*v.Ref(2) = 5). For i ∉ {0,1,2} it reports ErrIndexOutOfRange and
// returns a handle to X.
func (v *Vector3D) Ref(i int) *float64 {
	if err := ValidateIndex(i); err != nil {
		report.Report(opIndex(opRef, i), err)

		return &v.X
	}

	return v.ptr(i)
}

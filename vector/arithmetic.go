// SPDX-License-Identifier: MIT
// Package: vector
//
// Arithmetic on Vector3D.
//
// Methods on a value receiver return a new vector and leave their operands
// untouched. Methods suffixed InPlace take a pointer receiver and mutate it;
// they are the compound assignments (+=, -=, *=, /=).
//
// Subtraction is defined through addition and scaling (a - b == a + b*(-1)),
// in-place or not, so both paths share one rounding behavior.

package vector

import "github.com/katalvlaran/geom3/report"

// Add returns the component-wise sum v + o.
func (v Vector3D) Add(o Vector3D) Vector3D {
	v.AddInPlace(o) // v is a copy

	return v
}

// AddInPlace sets v to v + o.
func (v *Vector3D) AddInPlace(o Vector3D) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// Sub returns v - o, computed as v + o*(-1).
func (v Vector3D) Sub(o Vector3D) Vector3D {
	return v.Add(o.Scale(-1))
}

// SubInPlace sets v to v - o.
func (v *Vector3D) SubInPlace(o Vector3D) {
	v.AddInPlace(o.Scale(-1))
}

// Neg returns -v, i.e. v*(-1).
func (v Vector3D) Neg() Vector3D {
	return v.Scale(-1)
}

// Scale returns v multiplied component-wise by s.
func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// ScaleInPlace sets v to v*s.
func (v *Vector3D) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// ScalarMul returns s*v. Multiplication by a scalar commutes, so this is
// exactly v.Scale(s).
func ScalarMul(s float64, v Vector3D) Vector3D {
	return v.Scale(s)
}

// CheckedDiv returns v divided component-wise by s.
// Errors: ErrDivisionByZero (wrapped) when s == 0; v is returned unchanged.
// Nothing is reported.
func (v Vector3D) CheckedDiv(s float64) (Vector3D, error) {
	if err := ValidateDivisor(s); err != nil {
		return v, report.Errorf(opDiv, err)
	}

	return Vector3D{X: v.X / s, Y: v.Y / s, Z: v.Z / s}, nil
}

// Div returns v divided component-wise by s.
// When s == 0 it reports ErrDivisionByZero to the default reporter and
// returns v unchanged instead of producing Inf/NaN coordinates.
func (v Vector3D) Div(s float64) Vector3D {
	out, err := v.CheckedDiv(s)
	if err != nil {
		report.Report(opScalar(opDiv, s), ErrDivisionByZero)

		return v
	}

	return out
}

// DivInPlace sets v to v/s. When s == 0 it reports ErrDivisionByZero and
// leaves v untouched.
func (v *Vector3D) DivInPlace(s float64) {
	if err := ValidateDivisor(s); err != nil {
		report.Report(opScalar(opDivInPlace, s), err)

		return
	}
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// AddScalarInPlace adds num to every coordinate of v.
func (v *Vector3D) AddScalarInPlace(num float64) {
	v.X += num
	v.Y += num
	v.Z += num
}

// SubScalarInPlace subtracts num from every coordinate of v, as an add of -num.
func (v *Vector3D) SubScalarInPlace(num float64) {
	v.AddScalarInPlace(-num)
}

// Package vector provides Vector3D, a fixed-size 3-component float64 vector
// with value semantics.
//
// What & Why:
//
//	Vector3D is the leaf building block of geom3: matrix.Matrix3D stores three
//	of them as rows and routes all of its row/column math through this package.
//	A Vector3D is a plain struct, so copies are independent and the zero value
//	is the zero vector.
//
// Surface:
//
//   - Construction: New, Zero, FromArray, FromSlice, Clone.
//   - Arithmetic: Add, Sub, Neg, Scale, ScalarMul, Div, CheckedDiv and the
//     in-place forms AddInPlace, SubInPlace, ScaleInPlace, DivInPlace,
//     AddScalarInPlace, SubScalarInPlace.
//   - Access: At/Set (checked), Get/Ref (compatibility, report + fallback to X).
//   - Geometry: Dot, Distance/Dist, Norm, Angle, AllClose.
//   - Text: String, WriteTo, Scan, Read, Parse, MarshalText, UnmarshalText.
//
// Error policy:
//
//	Checked forms return ErrIndexOutOfRange / ErrDivisionByZero wrapped with
//	the operation name. Compatibility forms send the same sentinel to
//	report.Default() and return a fallback value; see package report.
//
// Concurrency:
//
//	No internal locking. Independent values may be used from any goroutine;
//	a single value mutated through an InPlace method or Ref must be
//	synchronized by the caller.
package vector

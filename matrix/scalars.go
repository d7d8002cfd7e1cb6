// SPDX-License-Identifier: MIT

package matrix

// Trace returns m[0][0] + m[1][1] + m[2][2].
func (m Matrix3D) Trace() float64 {
	return m.rows[0].X + m.rows[1].Y + m.rows[2].Z
}

// Determinant returns det(m) by cofactor expansion along the first column.
// With
//
//	a b c
//	d e f
//	g h i
//
// det = a(ei − hf) − d(bi − hc) + g(bf − ec). The evaluation order is fixed,
// so results are bit-for-bit reproducible.
func (m Matrix3D) Determinant() float64 {
	r0, r1, r2 := m.rows[0], m.rows[1], m.rows[2]

	return r0.X*(r1.Y*r2.Z-r2.Y*r1.Z) -
		r1.X*(r0.Y*r2.Z-r2.Y*r0.Z) +
		r2.X*(r0.Y*r1.Z-r1.Y*r0.Z)
}

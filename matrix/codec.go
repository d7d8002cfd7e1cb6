// SPDX-License-Identifier: MIT
// Package: matrix
//
// Text I/O, built on the vector codec.
//
// Format:
//   - Output: the three rows in vector format ("x y z"), separated by "\n",
//     with no newline after the last row.
//   - Input: nine whitespace-delimited numbers read as three rows in order.
//     Line structure is not enforced; any whitespace separates tokens.

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/geom3/report"
)

// rowSep separates rows in the text format.
const rowSep = "\n"

// AppendText appends the text form of m to b and returns the extended slice.
func (m Matrix3D) AppendText(b []byte) ([]byte, error) {
	for i, r := range m.rows {
		if i > 0 {
			b = append(b, rowSep...)
		}
		var err error
		if b, err = r.AppendText(b); err != nil {
			return b, err
		}
	}

	return b, nil
}

// String returns the three rows joined by newlines.
func (m Matrix3D) String() string {
	var sb strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			sb.WriteString(rowSep)
		}
		sb.WriteString(r.String())
	}

	return sb.String()
}

// WriteTo writes the text form of m to w (no trailing newline).
func (m Matrix3D) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (m Matrix3D) MarshalText() ([]byte, error) {
	return m.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must hold
// exactly nine numbers; m is left untouched on error.
func (m *Matrix3D) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return report.Errorf(opUnmarshalTxt, err)
	}
	*m = parsed

	return nil
}

// Scan implements fmt.Scanner by scanning three rows with
// vector.Vector3D.Scan. m is only assigned once all rows parsed.
func (m *Matrix3D) Scan(state fmt.ScanState, verb rune) error {
	var out Matrix3D
	for i := range out.rows {
		if err := out.rows[i].Scan(state, verb); err != nil {
			return report.Errorf(fmt.Sprintf("%s: row %d", opScan, i), err)
		}
	}
	*m = out

	return nil
}

// Read reads one matrix from r. As with vector.Read, wrap r in a
// bufio.Reader when reading several values from one stream.
func Read(r io.Reader) (Matrix3D, error) {
	var m Matrix3D
	if _, err := fmt.Fscan(r, &m); err != nil {
		return Matrix3D{}, report.Errorf(opRead, err)
	}

	return m, nil
}

// Parse reads exactly one matrix from s. Surrounding whitespace is allowed;
// any further token is ErrSyntax.
func Parse(s string) (Matrix3D, error) {
	r := strings.NewReader(s)

	var m Matrix3D
	if _, err := fmt.Fscan(r, &m); err != nil {
		return Matrix3D{}, report.Errorf(opParse, err)
	}
	var extra string
	if n, _ := fmt.Fscan(r, &extra); n > 0 {
		return Matrix3D{}, report.Errorf(opParse, fmt.Errorf("%w: trailing %q", ErrSyntax, extra))
	}

	return m, nil
}

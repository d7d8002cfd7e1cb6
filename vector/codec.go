// SPDX-License-Identifier: MIT
// Package: vector
//
// Text I/O.
//
// Format:
//   - Output is "x y z": three numbers joined by one space, no brackets, no
//     trailing newline. Numbers use the shortest form that parses back to the
//     same float64 ('g', -1), so output → input round-trips exactly.
//   - Input is three whitespace-delimited numbers in the order x, y, z. Any run
//     of whitespace, newlines included, may separate tokens.
//
// Vector3D implements fmt.Stringer, io.WriterTo, fmt.Scanner and
// encoding.TextMarshaler/TextUnmarshaler, so it composes with fmt.Fscan and
// with the matrix codec, which reads rows through Scan.

package vector

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/geom3/report"
)

// sep separates coordinates in the text format.
const sep = " "

// formatFloat renders one coordinate in the shortest round-trip form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// AppendText appends the text form of v to b and returns the extended slice.
func (v Vector3D) AppendText(b []byte) ([]byte, error) {
	b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
	b = append(b, sep...)
	b = strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	b = append(b, sep...)
	b = strconv.AppendFloat(b, v.Z, 'g', -1, 64)

	return b, nil
}

// String returns "x y z".
func (v Vector3D) String() string {
	return formatFloat(v.X) + sep + formatFloat(v.Y) + sep + formatFloat(v.Z)
}

// WriteTo writes the text form of v to w (no trailing newline).
func (v Vector3D) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())

	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (v Vector3D) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must hold
// exactly three numbers; v is left untouched on error.
func (v *Vector3D) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return report.Errorf(opUnmarshalTxt, err)
	}
	*v = parsed

	return nil
}

// notSpace is the token predicate for Scan.
func notSpace(r rune) bool { return !unicode.IsSpace(r) }

// Scan implements fmt.Scanner: it reads three whitespace-delimited numbers
// into x, y, z. v is only assigned once all three parsed.
//
// Errors:
//   - ErrSyntax for a token that is not a number or an unsupported verb.
//   - ErrSyntax joined with io.ErrUnexpectedEOF when input ends early.
func (v *Vector3D) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'g', 'G', 'e', 'E', 'f', 'F':
	default:
		return report.Errorf(opScan, fmt.Errorf("%w: bad verb %%%c", ErrSyntax, verb))
	}

	var coords [Dim]float64
	for i := range coords {
		tok, err := state.Token(true, notSpace)
		if err != nil {
			return report.Errorf(opScan, err)
		}
		if len(tok) == 0 {
			return report.Errorf(opScan,
				fmt.Errorf("%w: want %d numbers, got %d: %w", ErrSyntax, Dim, i, io.ErrUnexpectedEOF))
		}
		f, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return report.Errorf(opScan, fmt.Errorf("%w: %q is not a number", ErrSyntax, tok))
		}
		coords[i] = f
	}
	*v = FromArray(coords)

	return nil
}

// Read reads one vector from r. When r is not an io.RuneScanner, fmt may
// consume one byte past the vector; wrap r in a bufio.Reader to read several
// values from the same stream.
func Read(r io.Reader) (Vector3D, error) {
	var v Vector3D
	if _, err := fmt.Fscan(r, &v); err != nil {
		return Vector3D{}, report.Errorf(opRead, err)
	}

	return v, nil
}

// Parse reads exactly one vector from s. Leading and trailing whitespace is
// allowed; any further token is ErrSyntax.
func Parse(s string) (Vector3D, error) {
	r := strings.NewReader(s)

	var v Vector3D
	if _, err := fmt.Fscan(r, &v); err != nil {
		return Vector3D{}, report.Errorf(opParse, err)
	}
	var extra string
	if n, _ := fmt.Fscan(r, &extra); n > 0 {
		return Vector3D{}, report.Errorf(opParse, fmt.Errorf("%w: trailing %q", ErrSyntax, extra))
	}

	return v, nil
}

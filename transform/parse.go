// seehuhn.de/go/svggeom - geometry of SVG shapes and paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transform

import (
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/internal/scan"
)

// SyntaxError describes where parsing of a transform list stopped.
type SyntaxError struct {
	Offset int // byte offset of the first transform which could not be used
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("transform: %s at offset %d", e.Msg, e.Offset)
}

// arity lists the permitted argument counts for each transform function.
// Function names are matched without regard to case.
var arity = map[string][]int{
	"matrix":    {6},
	"translate": {1, 2},
	"scale":     {1, 2},
	"rotate":    {1, 3},
	"skewx":     {1},
	"skewy":     {1},
}

// Parse parses an SVG transform list like "rotate(20) scale(2)
// translate(5,0)".  The transformations are composed in the order given,
// each one acting in the coordinate system established by the ones before
// it.  Angles may carry any unit suffix understood by [angle.Scan];
// without a suffix they are degrees.
//
// On malformed input, Parse returns the product of all transformations
// before the error, together with a *SyntaxError.
func Parse(s string) (Matrix, error) {
	b := []byte(s)
	m := Identity
	pos := 0
	for {
		pos += scan.SkipSeparators(b[pos:])
		if pos >= len(b) {
			return m, nil
		}
		start := pos
		next, n, err := parseOne(b[pos:])
		if err != nil {
			return m, &SyntaxError{Offset: start, Msg: err.Error()}
		}
		m = m.Mul(next)
		pos += n
	}
}

// MustParse is like [Parse] but panics on malformed input.
func MustParse(s string) Matrix {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func parseOne(b []byte) (Matrix, int, error) {
	pos := 0
	for pos < len(b) && isLetter(b[pos]) {
		pos++
	}
	name := string(b[:pos])
	key := strings.ToLower(name)
	counts, ok := arity[key]
	if !ok {
		return Matrix{}, 0, fmt.Errorf("unknown transform %q", name)
	}

	pos += scan.SkipSpace(b[pos:])
	if pos >= len(b) || b[pos] != '(' {
		return Matrix{}, 0, fmt.Errorf("missing '(' after %s", name)
	}
	pos++

	var args []float64
	for {
		var x float64
		var n int
		if len(args) == 0 && (key == "rotate" || key == "skewx" || key == "skewy") {
			var a angle.Angle
			a, n = angle.Scan(b[pos:])
			x = float64(a)
		} else {
			x, n = scan.Number(b[pos:])
		}
		if n == 0 {
			break
		}
		args = append(args, x)
		pos += n
	}
	pos += scan.SkipSeparators(b[pos:])
	if pos >= len(b) || b[pos] != ')' {
		return Matrix{}, 0, fmt.Errorf("missing ')' after %s arguments", name)
	}
	pos++

	if !slices.Contains(counts, len(args)) {
		return Matrix{}, 0, fmt.Errorf("%s takes %v arguments, got %d", name, counts, len(args))
	}

	var m Matrix
	switch key {
	case "matrix":
		copy(m[:], args)
	case "translate":
		if len(args) == 1 {
			args = append(args, 0)
		}
		m = Translate(args[0], args[1])
	case "scale":
		if len(args) == 1 {
			args = append(args, args[0])
		}
		m = Scale(args[0], args[1])
	case "rotate":
		if len(args) == 1 {
			m = Rotate(angle.Angle(args[0]))
		} else {
			m = RotateAbout(angle.Angle(args[0]), args[1], args[2])
		}
	case "skewx":
		m = SkewX(angle.Angle(args[0]))
	case "skewy":
		m = SkewY(angle.Angle(args[0]))
	}
	return m, pos, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

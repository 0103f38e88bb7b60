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

// Package angle implements rotation angles with the CSS angle units.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/svggeom/internal/scan"
)

// Angle is a rotation angle, stored in radians.
type Angle float64

// Degrees returns the angle d, given in degrees.
func Degrees(d float64) Angle {
	return Angle(d * math.Pi / 180)
}

// Radians returns the angle r, given in radians.
func Radians(r float64) Angle {
	return Angle(r)
}

// Gradians returns the angle g, given in gradians (400 to a full turn).
func Gradians(g float64) Angle {
	return Angle(g * math.Pi / 200)
}

// Turns returns the angle t, given in full turns.
func Turns(t float64) Angle {
	return Angle(t * 2 * math.Pi)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Gradians returns the angle in gradians.
func (a Angle) Gradians() float64 {
	return float64(a) * 200 / math.Pi
}

// Turns returns the angle in full turns.
func (a Angle) Turns() float64 {
	return float64(a) / (2 * math.Pi)
}

// Normalize returns the equivalent angle in the range [0, 2π).
func (a Angle) Normalize() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return Angle(r)
}

// Equal reports whether a and b describe the same angle, up to the given
// tolerance in radians.  Angles which differ by whole turns are not equal.
func (a Angle) Equal(b Angle, tol float64) bool {
	return math.Abs(float64(a-b)) <= tol
}

// Parallel reports whether a and b describe the same direction, ignoring
// whole turns, up to the given tolerance in radians.
func (a Angle) Parallel(b Angle, tol float64) bool {
	d := float64((a - b).Normalize())
	return d <= tol || 2*math.Pi-d <= tol
}

// Sincos returns the sine and cosine of the angle.  Multiples of a quarter
// turn give exact results.
func (a Angle) Sincos() (sin, cos float64) {
	q := float64(a) / (math.Pi / 2)
	if k := math.Round(q); math.Abs(q-k) < 1e-15 {
		switch int(math.Mod(math.Mod(k, 4)+4, 4)) {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		case 3:
			return -1, 0
		}
	}
	return math.Sincos(float64(a))
}

// String formats the angle in degrees, using the "deg" unit suffix.
func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'g', -1, 64) + "deg"
}

// Unit suffixes recognised by [Parse] and [Scan].
const (
	UnitDeg  = "deg"
	UnitRad  = "rad"
	UnitGrad = "grad"
	UnitTurn = "turn"
)

// ErrSyntax is returned by [Parse] for malformed angles.
var ErrSyntax = errors.New("angle: invalid syntax")

// Parse parses an angle such as "15", "15deg", "0.3rad", "100grad" or
// "1.1turn".  Numbers without a unit are degrees.  The plural "turns" is
// accepted as well.
func Parse(s string) (Angle, error) {
	b := []byte(strings.TrimSpace(s))
	a, n := Scan(b)
	if n == 0 || n != len(b) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return a, nil
}

// Scan reads an angle with an optional unit suffix at the start of b,
// after optional separators.  It returns the angle and the number of bytes
// consumed.  If no number is present, n is zero.
func Scan(b []byte) (a Angle, n int) {
	x, n := scan.Number(b)
	if n == 0 {
		return 0, 0
	}
	rest := b[n:]
	switch {
	case hasUnit(rest, UnitDeg):
		return Degrees(x), n + len(UnitDeg)
	case hasUnit(rest, UnitGrad):
		return Gradians(x), n + len(UnitGrad)
	case hasUnit(rest, UnitRad):
		return Radians(x), n + len(UnitRad)
	case hasUnit(rest, UnitTurn+"s"):
		return Turns(x), n + len(UnitTurn) + 1
	case hasUnit(rest, UnitTurn):
		return Turns(x), n + len(UnitTurn)
	}
	return Degrees(x), n
}

func hasUnit(b []byte, unit string) bool {
	if len(b) < len(unit) {
		return false
	}
	return strings.EqualFold(string(b[:len(unit)]), unit)
}

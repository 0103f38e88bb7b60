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

package svgpath

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// EqualTolerance is the relative accuracy used when comparing coordinates.
const EqualTolerance = 1e-9

// Equal reports whether p and q consist of the same segments, up to
// rounding errors.  The start point of a Move is ignored.  Arcs are equal
// if they describe the same piece of the same ellipse, even when their
// parameters are written differently.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !SegmentsEqual(p[i], q[i]) {
			return false
		}
	}
	return true
}

// SegmentsEqual reports whether a and b are segments of the same type with
// the same geometry, up to rounding errors.
func SegmentsEqual(a, b Segment) bool {
	switch a := a.(type) {
	case Move:
		b, ok := b.(Move)
		return ok && nearPoint(a.To, b.To)
	case Close:
		b, ok := b.(Close)
		return ok && nearPoint(a.From, b.From) && nearPoint(a.To, b.To)
	case Line:
		b, ok := b.(Line)
		return ok && nearPoint(a.From, b.From) && nearPoint(a.To, b.To)
	case Quad:
		b, ok := b.(Quad)
		return ok && nearPoint(a.From, b.From) && nearPoint(a.Control, b.Control) &&
			nearPoint(a.To, b.To)
	case Cubic:
		b, ok := b.(Cubic)
		return ok && nearPoint(a.From, b.From) && nearPoint(a.Control1, b.Control1) &&
			nearPoint(a.Control2, b.Control2) && nearPoint(a.To, b.To)
	case Arc:
		b, ok := b.(Arc)
		return ok && arcsEqual(a, b)
	}
	return false
}

func arcsEqual(a, b Arc) bool {
	if !nearPoint(a.From, b.From) || !nearPoint(a.To, b.To) {
		return false
	}
	ca, okA := a.Center()
	cb, okB := b.Center()
	if okA != okB {
		return false
	}
	if !okA {
		return true // both are straight lines or empty
	}

	if !nearPoint(ca.Center, cb.Center) || !near(float64(ca.Delta), float64(cb.Delta)) {
		return false
	}

	rxA, ryA, rotA := canonicalAxes(ca)
	rxB, ryB, rotB := canonicalAxes(cb)
	if !near(rxA, rxB) || !near(ryA, ryB) {
		return false
	}
	if near(rxA, ryA) {
		return true // circles have no preferred direction
	}
	d := math.Mod(rotA-rotB, math.Pi)
	if d < 0 {
		d += math.Pi
	}
	return d <= EqualTolerance || math.Pi-d <= EqualTolerance
}

// canonicalAxes returns the radii with rx >= ry, and the direction of the
// major axis in [0, π).
func canonicalAxes(c ArcCenter) (rx, ry, rot float64) {
	rx, ry, rot = c.RX, c.RY, float64(c.Rotation)
	if rx < ry {
		rx, ry = ry, rx
		rot += math.Pi / 2
	}
	rot = math.Mod(rot, math.Pi)
	if rot < 0 {
		rot += math.Pi
	}
	return rx, ry, rot
}

func near(x, y float64) bool {
	scale := max(1, math.Abs(x), math.Abs(y))
	return math.Abs(x-y) <= EqualTolerance*scale
}

func nearPoint(p, q vec.Vec2) bool {
	return near(p.X, q.X) && near(p.Y, q.Y)
}

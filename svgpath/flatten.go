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

	"seehuhn.de/go/svggeom/angle"
)

// DefaultTolerance is the maximal distance between a curve and its
// polygonal approximation, used by [Path.Length] and [Path.PointAt].
const DefaultTolerance = 1e-4

// maxPieces bounds the number of line segments per curve.
const maxPieces = 1 << 16

// Flatten approximates the path by straight lines, such that no point of a
// curve is further than tol from the approximation.  The emit callback is
// called once for every line, in path order.  Moves produce no lines.
func (p Path) Flatten(tol float64, emit func(from, to vec.Vec2)) {
	for _, seg := range p {
		flattenSegment(seg, tol, emit)
	}
}

func flattenSegment(seg Segment, tol float64, emit func(from, to vec.Vec2)) {
	switch s := seg.(type) {
	case Line:
		emit(s.From, s.To)
	case Close:
		if s.From != s.To {
			emit(s.From, s.To)
		}
	case Quad:
		flattenQuadratic(s.From, s.Control, s.To, tol, emit)
	case Cubic:
		flattenCubic(s.From, s.Control1, s.Control2, s.To, tol, emit)
	case Arc:
		flattenArc(s, tol, emit)
	}
}

// flattenQuadratic evaluates the curve at n+1 equidistant parameters,
// where n is chosen from the deviation (P0 - 2*P1 + P2) / 4.
func flattenQuadratic(p0, p1, p2 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > tol {
		n = pieces(math.Sqrt(dev / tol))
	}

	c := Quad{From: p0, Control: p1, To: p2}
	prev := p0
	for i := 1; i <= n; i++ {
		pt := c.PointAt(float64(i) / float64(n))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic uses Wang's formula to choose the number of pieces.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nFloat := math.Sqrt(3 * m / (4 * tol)); nFloat > 1 {
			n = pieces(nFloat)
		}
	}

	c := Cubic{From: p0, Control1: p1, Control2: p2, To: p3}
	prev := p0
	for i := 1; i <= n; i++ {
		pt := c.PointAt(float64(i) / float64(n))
		emit(prev, pt)
		prev = pt
	}
}

// flattenArc divides the parametric angle into equal steps.  For a chord
// subtending angle θ on a circle of radius r, the sagitta is
// r*(1 - cos(θ/2)); the larger radius gives an upper bound for an ellipse.
func flattenArc(a Arc, tol float64, emit func(from, to vec.Vec2)) {
	c, ok := a.Center()
	if !ok {
		if a.From != a.To {
			emit(a.From, a.To)
		}
		return
	}

	r := max(c.RX, c.RY)
	n := 1
	if r > tol {
		step := 2 * math.Acos(1-tol/r)
		if step > 0 && !math.IsNaN(step) {
			n = pieces(math.Abs(float64(c.Delta)) / step)
		}
	}

	prev := a.From
	for i := 1; i <= n; i++ {
		pt := a.To
		if i < n {
			pt = c.PointAtAngle(c.Start + c.Delta*angle.Angle(float64(i)/float64(n)))
		}
		emit(prev, pt)
		prev = pt
	}
}

func pieces(x float64) int {
	if !(x < maxPieces) {
		return maxPieces
	}
	return max(int(math.Ceil(x)), 1)
}

// SegmentLength returns the length of a single segment, computed from a
// polygonal approximation with the given tolerance.
func SegmentLength(seg Segment, tol float64) float64 {
	switch s := seg.(type) {
	case Move:
		return 0
	case Line:
		return s.To.Sub(s.From).Length()
	case Close:
		return s.To.Sub(s.From).Length()
	}
	total := 0.0
	flattenSegment(seg, tol, func(from, to vec.Vec2) {
		total += to.Sub(from).Length()
	})
	return total
}

// Length returns the total length of the path.
func (p Path) Length() float64 {
	total := 0.0
	for _, seg := range p {
		total += SegmentLength(seg, DefaultTolerance)
	}
	return total
}

// PointAt returns the point at parameter t in [0, 1] along the whole path.
// The parameter selects a segment by its share of the total length, and
// is then mapped linearly onto that segment's own parameter.
func (p Path) PointAt(t float64) vec.Vec2 {
	return p.Points([]float64{t})[0]
}

// Points evaluates [Path.PointAt] for many parameters at once.
func (p Path) Points(ts []float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(ts))
	if len(p) == 0 {
		return res
	}

	lengths := make([]float64, len(p))
	total := 0.0
	for i, seg := range p {
		lengths[i] = SegmentLength(seg, DefaultTolerance)
		total += lengths[i]
	}
	if total == 0 {
		for i := range res {
			res[i] = p[0].End()
		}
		return res
	}

	for k, t := range ts {
		t = min(max(t, 0), 1)
		target := t * total
		acc := 0.0
		last := -1
		res[k] = p[len(p)-1].End()
		for i, l := range lengths {
			if l == 0 {
				continue
			}
			last = i
			if target <= acc+l {
				res[k] = p[i].PointAt((target - acc) / l)
				break
			}
			acc += l
		}
		if last >= 0 && t == 1 {
			res[k] = p[last].End()
		}
	}
	return res
}

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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func pointsBBox(p vec.Vec2, more ...vec.Vec2) rect.Rect {
	r := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, q := range more {
		r = extend(r, q)
	}
	return r
}

func extend(r rect.Rect, p vec.Vec2) rect.Rect {
	r.LLx = min(r.LLx, p.X)
	r.LLy = min(r.LLy, p.Y)
	r.URx = max(r.URx, p.X)
	r.URy = max(r.URy, p.Y)
	return r
}

// union returns the smallest rectangle containing a and b.
func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// quadBBox finds the extrema of a quadratic Bézier curve from the zeros
// of its derivative, one linear equation per axis.
func quadBBox(p0, p1, p2 vec.Vec2) rect.Rect {
	r := pointsBBox(p0, p2)
	c := Quad{From: p0, Control: p1, To: p2}
	d := p0.Sub(p1.Mul(2)).Add(p2)
	if d.X != 0 {
		if t := (p0.X - p1.X) / d.X; t > 0 && t < 1 {
			r = extend(r, c.PointAt(t))
		}
	}
	if d.Y != 0 {
		if t := (p0.Y - p1.Y) / d.Y; t > 0 && t < 1 {
			r = extend(r, c.PointAt(t))
		}
	}
	return r
}

// cubicBBox finds the extrema of a cubic Bézier curve from the zeros of
// its derivative, one quadratic equation per axis.
func cubicBBox(p0, p1, p2, p3 vec.Vec2) rect.Rect {
	r := pointsBBox(p0, p3)
	c := Cubic{From: p0, Control1: p1, Control2: p2, To: p3}

	// B'(t)/3 = c0 + c1 t + c2 t²
	c0 := p1.Sub(p0)
	c1 := p0.Sub(p1.Mul(2)).Add(p2).Mul(2)
	c2 := p3.Sub(p0).Add(p1.Sub(p2).Mul(3))

	for _, coef := range [][3]float64{{c0.X, c1.X, c2.X}, {c0.Y, c1.Y, c2.Y}} {
		roots, n := solveQuadratic(coef[0], coef[1], coef[2])
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				r = extend(r, c.PointAt(t))
			}
		}
	}
	return r
}

// solveQuadratic returns the real solutions of c0 + c1 x + c2 x² = 0.
// If the equation is nearly linear, the root of the linear part is
// returned.  If all coefficients are zero, no roots are returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if c2 == 0 || math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		if c1 == 0 {
			return [2]float64{}, 0
		}
		root := -c0 / c1
		if math.IsInf(root, 0) {
			return [2]float64{}, 0
		}
		return [2]float64{root}, 1
	}

	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1*sc1 overflowed; use sc1 x + x² = 0 for the large root
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 < root1 {
		root1, root2 = root2, root1
	}
	return [2]float64{root1, root2}, 2
}

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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/transform"
)

// Arc is an elliptical arc in endpoint parameterization, as used by the
// A command of SVG path data.
//
// Out-of-range parameters are corrected as described in appendix F.6 of
// the SVG specification: the signs of the radii are ignored, radii which
// are too small to reach from From to To are scaled up, and an arc with a
// zero radius is drawn as a straight line.  An arc with From == To draws
// nothing.
type Arc struct {
	From, To vec.Vec2
	RX, RY   float64
	Rotation angle.Angle // rotation of the ellipse's x-axis
	LargeArc bool
	Sweep    bool // the arc is traversed in the direction of increasing angles
}

// ArcCenter is the center parameterization of an elliptical arc.
// The point at angle θ is
//
//	Center + Rotate(Rotation)·(RX cos θ, RY sin θ).
type ArcCenter struct {
	Center   vec.Vec2
	RX, RY   float64
	Rotation angle.Angle
	Start    angle.Angle // angle of the start point
	Delta    angle.Angle // swept angle; positive for sweep-flag 1
}

func (Arc) isSegment() {}

func (a Arc) Start() vec.Vec2 { return a.From }

func (a Arc) End() vec.Vec2 { return a.To }

// IsLine reports whether the arc degenerates into a straight line because
// one of its radii is zero.
func (a Arc) IsLine() bool {
	return a.RX == 0 || a.RY == 0
}

// Center converts the arc to center parameterization.  The returned radii
// are already corrected.  The second return value is false if the arc is
// drawn as a straight line or draws nothing.
func (a Arc) Center() (ArcCenter, bool) {
	if a.From == a.To || a.IsLine() {
		return ArcCenter{}, false
	}
	rx := math.Abs(a.RX)
	ry := math.Abs(a.RY)
	sin, cos := a.Rotation.Sincos()

	// step 1: compute (x1', y1')
	dx := (a.From.X - a.To.X) / 2
	dy := (a.From.Y - a.To.Y) / 2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	// radius correction; the scaled-up ellipse is centered on the chord
	coef := 0.0
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda >= 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	} else {
		// step 2: compute (cx', cy')
		rx2, ry2 := rx*rx, ry*ry
		num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
		den := rx2*y1*y1 + ry2*x1*x1
		if num > 0 && den > 0 {
			coef = math.Sqrt(num / den)
		}
		if a.LargeArc == a.Sweep {
			coef = -coef
		}
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// step 3: compute (cx, cy)
	center := vec.Vec2{
		X: cos*cx1 - sin*cy1 + (a.From.X+a.To.X)/2,
		Y: sin*cx1 + cos*cy1 + (a.From.Y+a.To.Y)/2,
	}

	// step 4: compute the angles
	u := vec.Vec2{X: (x1 - cx1) / rx, Y: (y1 - cy1) / ry}
	v := vec.Vec2{X: (-x1 - cx1) / rx, Y: (-y1 - cy1) / ry}
	start := math.Atan2(u.Y, u.X)
	delta := math.Atan2(u.X*v.Y-u.Y*v.X, u.Dot(v))
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	return ArcCenter{
		Center:   center,
		RX:       rx,
		RY:       ry,
		Rotation: a.Rotation,
		Start:    angle.Angle(start),
		Delta:    angle.Angle(delta),
	}, true
}

// PointAtAngle returns the point of the ellipse at parametric angle theta.
func (c ArcCenter) PointAtAngle(theta angle.Angle) vec.Vec2 {
	sin, cos := c.Rotation.Sincos()
	st, ct := theta.Sincos()
	x := c.RX * ct
	y := c.RY * st
	return vec.Vec2{
		X: c.Center.X + cos*x - sin*y,
		Y: c.Center.Y + sin*x + cos*y,
	}
}

// Endpoint converts the arc to endpoint parameterization.
func (c ArcCenter) Endpoint() Arc {
	return Arc{
		From:     c.PointAtAngle(c.Start),
		To:       c.PointAtAngle(c.Start + c.Delta),
		RX:       c.RX,
		RY:       c.RY,
		Rotation: c.Rotation,
		LargeArc: math.Abs(float64(c.Delta)) > math.Pi,
		Sweep:    c.Delta > 0,
	}
}

// contains reports whether the parametric angle theta lies on the arc.
func (c ArcCenter) contains(theta float64) bool {
	d := float64(c.Delta)
	var off float64
	if d >= 0 {
		off = float64(angle.Angle(theta - float64(c.Start)).Normalize())
	} else {
		off = float64(angle.Angle(float64(c.Start) - theta).Normalize())
		d = -d
	}
	return off <= d
}

// ArcThrough returns the circular arc which starts at start, passes
// through via and ends at end.  If the three points are collinear, the
// result has zero radii and is drawn as a straight line.
func ArcThrough(start, via, end vec.Vec2) Arc {
	res := Arc{From: start, To: end}

	// circumcenter
	b := via.Sub(start)
	c := end.Sub(start)
	d := 2 * (b.X*c.Y - b.Y*c.X)
	if d == 0 || start == end {
		return res
	}
	b2 := b.Dot(b)
	c2 := c.Dot(c)
	center := vec.Vec2{
		X: start.X + (c.Y*b2-b.Y*c2)/d,
		Y: start.Y + (b.X*c2-c.X*b2)/d,
	}
	r := start.Sub(center).Length()
	res.RX = r
	res.RY = r

	// d > 0 means start -> via -> end turns towards increasing angles
	res.Sweep = d > 0
	t0 := math.Atan2(start.Y-center.Y, start.X-center.X)
	t1 := math.Atan2(end.Y-center.Y, end.X-center.X)
	delta := float64(angle.Angle(t1 - t0).Normalize())
	if !res.Sweep {
		delta = 2*math.Pi - delta
	}
	res.LargeArc = delta > math.Pi
	return res
}

// Control returns the midpoint of the arc, which together with the end
// points determines a circular arc.
func (a Arc) Control() vec.Vec2 {
	return a.PointAt(0.5)
}

// PointAt returns the point at parameter t, where t is proportional to the
// parametric angle of the ellipse.
func (a Arc) PointAt(t float64) vec.Vec2 {
	switch t {
	case 0:
		return a.From
	case 1:
		return a.To
	}
	c, ok := a.Center()
	if !ok {
		return lerp(a.From, a.To, t)
	}
	return c.PointAtAngle(c.Start + angle.Angle(t)*c.Delta)
}

// BBox returns the exact bounding box of the arc, including the extreme
// points of the ellipse which lie on the arc.
func (a Arc) BBox() (rect.Rect, bool) {
	bbox := pointsBBox(a.From, a.To)
	c, ok := a.Center()
	if !ok {
		return bbox, a.From != a.To
	}

	sin, cos := c.Rotation.Sincos()
	tx := math.Atan2(-c.RY*sin, c.RX*cos)
	ty := math.Atan2(c.RY*cos, c.RX*sin)
	for _, theta := range []float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		if c.contains(theta) {
			bbox = extend(bbox, c.PointAtAngle(angle.Angle(theta)))
		}
	}
	return bbox, true
}

// Transform maps the arc by m.  The image of an ellipse under an affine
// map is again an ellipse, whose axes are found from the singular value
// decomposition of the combined linear map.
func (a Arc) Transform(m transform.Matrix) Segment {
	res := Arc{
		From:     m.Apply(a.From),
		To:       m.Apply(a.To),
		LargeArc: a.LargeArc,
		Sweep:    a.Sweep,
	}
	if m.Det() < 0 {
		res.Sweep = !res.Sweep
	}
	rx := math.Abs(a.RX)
	ry := math.Abs(a.RY)
	if rx == 0 || ry == 0 {
		return res
	}

	e := m.Linear().Mul(transform.Rotate(a.Rotation)).Mul(transform.Scale(rx, ry))
	// e maps the unit circle onto the new ellipse: x' = p x + q y, y' = r x + s y
	p, q, r, s := e[0], e[2], e[1], e[3]
	E := (p + s) / 2
	F := (p - s) / 2
	G := (r + q) / 2
	H := (r - q) / 2
	Q := math.Hypot(E, H)
	R := math.Hypot(F, G)
	a1 := math.Atan2(G, F)
	a2 := math.Atan2(H, E)

	res.RX = Q + R
	res.RY = math.Abs(Q - R)
	if R > 1e-12*Q {
		// the rotation of a circle is arbitrary, leave it at zero
		res.Rotation = angle.Angle((a2 + a1) / 2)
	}
	return res
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc(start=%s, end=%s, rx=%s, ry=%s, rotation=%s, large_arc=%t, sweep=%t)",
		formatPoint(a.From), formatPoint(a.To), formatNumber(a.RX), formatNumber(a.RY),
		formatNumber(a.Rotation.Degrees()), a.LargeArc, a.Sweep)
}

// Cubics approximates the arc by cubic Bézier curves, each spanning at
// most a quarter turn of the ellipse.
func (a Arc) Cubics() []Cubic {
	c, ok := a.Center()
	if !ok {
		if a.From == a.To {
			return nil
		}
		return []Cubic{lineAsCubic(a.From, a.To)}
	}

	n := int(math.Ceil(math.Abs(float64(c.Delta))/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := float64(c.Delta) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	sin, cos := c.Rotation.Sincos()
	deriv := func(theta float64) vec.Vec2 {
		st, ct := math.Sincos(theta)
		x := -c.RX * st
		y := c.RY * ct
		return vec.Vec2{X: cos*x - sin*y, Y: sin*x + cos*y}
	}

	res := make([]Cubic, 0, n)
	p0 := a.From
	for i := range n {
		t0 := float64(c.Start) + float64(i)*step
		t1 := t0 + step
		p3 := a.To
		if i < n-1 {
			p3 = c.PointAtAngle(angle.Angle(t1))
		}
		res = append(res, Cubic{
			From:     p0,
			Control1: p0.Add(deriv(t0).Mul(k)),
			Control2: p3.Sub(deriv(t1).Mul(k)),
			To:       p3,
		})
		p0 = p3
	}
	return res
}

func lineAsCubic(from, to vec.Vec2) Cubic {
	d := to.Sub(from)
	return Cubic{
		From:     from,
		Control1: from.Add(d.Mul(1.0 / 3)),
		Control2: from.Add(d.Mul(2.0 / 3)),
		To:       to,
	}
}

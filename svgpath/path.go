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

// Package svgpath implements SVG path data: parsing, serialization and
// the geometry of the individual path segments.
package svgpath

import (
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/transform"
)

// Path is a sequence of segments.  The start point of every segment equals
// the end point of the segment before it.
type Path []Segment

// current returns the end point of the last segment, or the origin.
func (p Path) current() vec.Vec2 {
	if len(p) == 0 {
		return vec.Vec2{}
	}
	return p[len(p)-1].End()
}

// subpathStart returns the point a Close segment would return to.
func (p Path) subpathStart() vec.Vec2 {
	for i := len(p) - 1; i >= 0; i-- {
		if m, ok := p[i].(Move); ok {
			return m.To
		}
	}
	if len(p) > 0 {
		return p[0].Start()
	}
	return vec.Vec2{}
}

// begin inserts an implicit move if the path is empty.
func (p *Path) begin() {
	if len(*p) == 0 {
		*p = append(*p, Move{})
	}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	*p = append(*p, Move{From: p.current(), To: pt})
	return p
}

// LineTo adds a straight line to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.begin()
	*p = append(*p, Line{From: p.current(), To: pt})
	return p
}

// QuadTo adds a quadratic Bézier curve.
func (p *Path) QuadTo(control, pt vec.Vec2) *Path {
	p.begin()
	*p = append(*p, Quad{From: p.current(), Control: control, To: pt})
	return p
}

// CubeTo adds a cubic Bézier curve.
func (p *Path) CubeTo(control1, control2, pt vec.Vec2) *Path {
	p.begin()
	*p = append(*p, Cubic{From: p.current(), Control1: control1, Control2: control2, To: pt})
	return p
}

// ArcTo adds an elliptical arc in endpoint parameterization.
func (p *Path) ArcTo(rx, ry float64, rotation angle.Angle, largeArc, sweep bool, pt vec.Vec2) *Path {
	p.begin()
	*p = append(*p, Arc{
		From:     p.current(),
		To:       pt,
		RX:       rx,
		RY:       ry,
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
	})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.begin()
	*p = append(*p, Close{From: p.current(), To: p.subpathStart()})
	return p
}

// Append adds the segments of q at the end of p.
func (p *Path) Append(q Path) *Path {
	*p = append(*p, q...)
	return p
}

// Transform returns the path mapped by m.
func (p Path) Transform(m transform.Matrix) Path {
	if len(p) == 0 {
		return nil
	}
	res := make(Path, len(p))
	for i, seg := range p {
		res[i] = seg.Transform(m)
	}
	return res
}

// BBox returns the bounding box of all drawing segments.  The second
// return value is false if the path draws nothing.
func (p Path) BBox() (rect.Rect, bool) {
	var res rect.Rect
	found := false
	for _, seg := range p {
		r, ok := seg.BBox()
		if !ok {
			continue
		}
		if !found {
			res = r
			found = true
		} else {
			res = union(res, r)
		}
	}
	return res, found
}

// String returns the path in SVG path data syntax, using absolute
// coordinates throughout.
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch s := seg.(type) {
		case Move:
			b.WriteString("M ")
			writePoint(&b, s.To)
		case Line:
			b.WriteString("L ")
			writePoint(&b, s.To)
		case Quad:
			b.WriteString("Q ")
			writePoint(&b, s.Control)
			b.WriteByte(' ')
			writePoint(&b, s.To)
		case Cubic:
			b.WriteString("C ")
			writePoint(&b, s.Control1)
			b.WriteByte(' ')
			writePoint(&b, s.Control2)
			b.WriteByte(' ')
			writePoint(&b, s.To)
		case Arc:
			b.WriteString("A ")
			b.WriteString(formatNumber(s.RX))
			b.WriteByte(',')
			b.WriteString(formatNumber(s.RY))
			b.WriteByte(' ')
			b.WriteString(formatNumber(s.Rotation.Degrees()))
			b.WriteByte(' ')
			b.WriteString(formatFlag(s.LargeArc))
			b.WriteByte(',')
			b.WriteString(formatFlag(s.Sweep))
			b.WriteByte(' ')
			writePoint(&b, s.To)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p vec.Vec2) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(',')
	b.WriteString(formatNumber(p.Y))
}

func formatFlag(f bool) string {
	if f {
		return "1"
	}
	return "0"
}

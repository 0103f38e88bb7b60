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

package shape

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/transform"
)

// linearFrame decomposes the linear part of m applied after a rotation by
// rot.  This is the map from the axis-parallel frame of a shape to its
// drawn position.
func linearFrame(m transform.Matrix, rot angle.Angle) transform.Decomposition {
	l := m.Linear()
	if rot != 0 {
		l = l.Mul(transform.Rotate(rot))
	}
	return l.Decompose()
}

func vecOf(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// keepsFrame reports whether a shape with axis-parallel parameters can
// absorb the linear map described by dc.  Skews, reflections and singular
// maps cannot be absorbed.
func keepsFrame(dc transform.Decomposition) bool {
	return !dc.HasSkew() && !dc.IsFlip() && !dc.IsSingular()
}

// Reify returns a shape equivalent to s whose pending transformation is
// the identity.
//
// Where possible, the transformation is folded into the parameters of the
// shape and the result has the same type as s.  Rectangles, circles and
// ellipses cannot represent skewed or mirrored outlines, and circles
// cannot represent different scale factors for the two axes; in these
// cases the result is a [Path].  Lines, polylines, polygons and paths
// absorb every transformation.
//
// Unless the stroke is non-scaling, the scaling of the stroke width moves
// from the transformation into [Style.StrokeScale].
func Reify(s Shape) Shape {
	c := s.common()
	m := c.CTM()
	if m.IsIdentity() {
		return s
	}
	done := Common{Matrix: transform.Identity, Style: reifyStyle(c)}

	switch s := s.(type) {
	case Rect:
		dc := s.frame()
		if !keepsFrame(dc) {
			break
		}
		corner := m.Apply(vecOf(s.X, s.Y))
		return Rect{
			X:         corner.X,
			Y:         corner.Y,
			Width:     s.Width * dc.ScaleX,
			Height:    s.Height * dc.ScaleY,
			RX:        s.RX * dc.ScaleX,
			RY:        s.RY * dc.ScaleY,
			Rotation:  dc.Rotation,
			NonStrict: s.NonStrict,
			Common:    done,
		}

	case Circle:
		dc := linearFrame(m, s.Rotation)
		if !keepsFrame(dc) || !dc.IsUniformScale() {
			break
		}
		center := m.Apply(vecOf(s.CX, s.CY))
		return Circle{
			CX:       center.X,
			CY:       center.Y,
			R:        s.R * dc.ScaleX,
			Rotation: dc.Rotation,
			Common:   done,
		}

	case Ellipse:
		dc := linearFrame(m, s.Rotation)
		if !keepsFrame(dc) {
			break
		}
		center := m.Apply(vecOf(s.CX, s.CY))
		return Ellipse{
			CX:       center.X,
			CY:       center.Y,
			RX:       s.RX * dc.ScaleX,
			RY:       s.RY * dc.ScaleY,
			Rotation: dc.Rotation,
			Common:   done,
		}

	case SimpleLine:
		p1 := m.Apply(vecOf(s.X1, s.Y1))
		p2 := m.Apply(vecOf(s.X2, s.Y2))
		return SimpleLine{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y, Common: done}

	case Polyline:
		return Polyline{Points: mapPoints(m, s.Points), Common: done}

	case Polygon:
		return Polygon{Points: mapPoints(m, s.Points), Common: done}

	case Path:
		return Path{Data: s.Data.Transform(m), Common: done}
	}

	return Path{Data: Outline(s), Common: done}
}

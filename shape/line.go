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
	"seehuhn.de/go/svggeom/svgpath"
)

// SimpleLine is an SVG line element.
type SimpleLine struct {
	X1, Y1 float64
	X2, Y2 float64

	Common
}

// NewLine returns the line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) SimpleLine {
	return SimpleLine{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (l SimpleLine) withCommon(c Common) Shape {
	l.Common = c
	return l
}

// Geometry implements the [Shape] interface.  The outline of a line is
// never empty, even if both end points coincide.
func (l SimpleLine) Geometry() svgpath.Path {
	p := &svgpath.Path{}
	p.MoveTo(vec.Vec2{X: l.X1, Y: l.Y1}).LineTo(vec.Vec2{X: l.X2, Y: l.Y2})
	return *p
}

// ImplicitStart returns the start point after reification.
func (l SimpleLine) ImplicitStart() vec.Vec2 {
	return l.CTM().Apply(vec.Vec2{X: l.X1, Y: l.Y1})
}

// ImplicitEnd returns the end point after reification.
func (l SimpleLine) ImplicitEnd() vec.Vec2 {
	return l.CTM().Apply(vec.Vec2{X: l.X2, Y: l.Y2})
}

// ImplicitRotation returns the rotation part of the pending
// transformation.
func (l SimpleLine) ImplicitRotation() angle.Angle {
	return l.CTM().Decompose().Rotation
}

func (l SimpleLine) String() string {
	b := newRepr("SimpleLine")
	b.num("x1", l.X1)
	b.num("y1", l.Y1)
	b.num("x2", l.X2)
	b.num("y2", l.Y2)
	b.common(l.Common)
	return b.String()
}

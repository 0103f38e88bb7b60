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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/svgpath"
)

// Circle is an SVG circle.
type Circle struct {
	CX, CY   float64
	R        float64
	Rotation angle.Angle // direction of the start point of the outline

	Common
}

// NewCircle returns the circle with center (cx, cy) and radius r.
func NewCircle(cx, cy, r float64) Circle {
	return Circle{CX: cx, CY: cy, R: r}
}

func (c Circle) withCommon(cm Common) Shape {
	c.Common = cm
	return c
}

// Geometry implements the [Shape] interface.
func (c Circle) Geometry() svgpath.Path {
	return ellipseOutline(vec.Vec2{X: c.CX, Y: c.CY}, c.R, c.R, c.Rotation)
}

// ImplicitCenter returns the center after reification.
func (c Circle) ImplicitCenter() vec.Vec2 {
	return c.CTM().Apply(vec.Vec2{X: c.CX, Y: c.CY})
}

// ImplicitRX returns the first semi-axis of the transformed circle.
func (c Circle) ImplicitRX() float64 {
	return c.R * linearFrame(c.CTM(), c.Rotation).ScaleX
}

// ImplicitRY returns the second semi-axis of the transformed circle.
// This differs from [Circle.ImplicitRX] if the transformation does not
// scale uniformly.
func (c Circle) ImplicitRY() float64 {
	return c.R * math.Abs(linearFrame(c.CTM(), c.Rotation).ScaleY)
}

// ImplicitRotation returns the rotation after reification.
func (c Circle) ImplicitRotation() angle.Angle {
	return linearFrame(c.CTM(), c.Rotation).Rotation
}

func (c Circle) String() string {
	b := newRepr("Circle")
	b.num("cx", c.CX)
	b.num("cy", c.CY)
	b.num("r", c.R)
	if c.Rotation != 0 {
		b.num("rotation", c.Rotation.Degrees())
	}
	b.common(c.Common)
	return b.String()
}

// Ellipse is an SVG ellipse.  The axes of the ellipse are rotated by
// Rotation; the rotation is only ever set by [Reify].
type Ellipse struct {
	CX, CY   float64
	RX, RY   float64
	Rotation angle.Angle

	Common
}

// NewEllipse returns the axis-parallel ellipse with center (cx, cy) and
// radii rx and ry.
func NewEllipse(cx, cy, rx, ry float64) Ellipse {
	return Ellipse{CX: cx, CY: cy, RX: rx, RY: ry}
}

func (e Ellipse) withCommon(cm Common) Shape {
	e.Common = cm
	return e
}

// Geometry implements the [Shape] interface.
func (e Ellipse) Geometry() svgpath.Path {
	return ellipseOutline(vec.Vec2{X: e.CX, Y: e.CY}, e.RX, e.RY, e.Rotation)
}

// ImplicitCenter returns the center after reification.
func (e Ellipse) ImplicitCenter() vec.Vec2 {
	return e.CTM().Apply(vec.Vec2{X: e.CX, Y: e.CY})
}

// ImplicitRX returns the first radius after reification.
func (e Ellipse) ImplicitRX() float64 {
	return e.RX * linearFrame(e.CTM(), e.Rotation).ScaleX
}

// ImplicitRY returns the second radius after reification.
func (e Ellipse) ImplicitRY() float64 {
	return e.RY * math.Abs(linearFrame(e.CTM(), e.Rotation).ScaleY)
}

// ImplicitRotation returns the rotation after reification.
func (e Ellipse) ImplicitRotation() angle.Angle {
	return linearFrame(e.CTM(), e.Rotation).Rotation
}

func (e Ellipse) String() string {
	b := newRepr("Ellipse")
	b.num("cx", e.CX)
	b.num("cy", e.CY)
	if e.RX == e.RY {
		b.num("r", e.RX)
	} else {
		b.num("rx", e.RX)
		b.num("ry", e.RY)
	}
	if e.Rotation != 0 {
		b.num("rotation", e.Rotation.Degrees())
	}
	b.common(e.Common)
	return b.String()
}

// ellipseOutline draws four quarter arcs, starting at angle 0 in the
// direction of increasing angles.
func ellipseOutline(center vec.Vec2, rx, ry float64, rot angle.Angle) svgpath.Path {
	if !(rx > 0 && ry > 0) {
		return nil
	}
	sin, cos := rot.Sincos()
	at := func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: center.X + cos*x - sin*y,
			Y: center.Y + sin*x + cos*y,
		}
	}
	p := &svgpath.Path{}
	p.MoveTo(at(rx, 0))
	p.ArcTo(rx, ry, rot, false, true, at(0, ry))
	p.ArcTo(rx, ry, rot, false, true, at(-rx, 0))
	p.ArcTo(rx, ry, rot, false, true, at(0, -ry))
	p.ArcTo(rx, ry, rot, false, true, at(rx, 0))
	p.Close()
	return *p
}

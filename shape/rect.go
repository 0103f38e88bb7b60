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
	"seehuhn.de/go/svggeom/transform"
)

// Rect is an SVG rectangle with optionally rounded corners.
//
// The rectangle is rotated by Rotation around its corner (X, Y).  The
// rotation is only ever set by [Reify].
type Rect struct {
	X, Y          float64
	Width, Height float64
	RX, RY        float64 // corner radii
	Rotation      angle.Angle

	// NonStrict keeps negative corner radii, which then give scooped
	// corners.  A negative value in either RX or RY scoops the corners,
	// using the absolute values of both radii.  Normally, a negative
	// radius disables rounding.
	NonStrict bool

	Common
}

// NewRect returns the rectangle with corner (x, y) and the given size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRoundedRect returns a rectangle with corner radii rx and ry.
func NewRoundedRect(x, y, width, height, rx, ry float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height, RX: rx, RY: ry}
}

func (r Rect) withCommon(c Common) Shape {
	r.Common = c
	return r
}

// radii returns the radii used for drawing.  Negative values request
// scooped corners.
func (r Rect) radii() (rx, ry float64) {
	rx, ry = r.RX, r.RY
	if !r.NonStrict && (rx < 0 || ry < 0) {
		return 0, 0
	}
	if rx == 0 || ry == 0 {
		return 0, 0
	}
	rx = math.Copysign(min(math.Abs(rx), r.Width/2), rx)
	ry = math.Copysign(min(math.Abs(ry), r.Height/2), ry)
	return rx, ry
}

// Geometry implements the [Shape] interface.  A rectangle without rounded
// corners starts at its corner (X, Y), a rounded rectangle starts at the
// beginning of the straight part of its top edge.
func (r Rect) Geometry() svgpath.Path {
	if !(r.Width > 0 && r.Height > 0) {
		return nil
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height

	p := &svgpath.Path{}
	rx, ry := r.radii()
	if rx == 0 {
		p.MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	} else {
		sweep := rx > 0 && ry > 0
		rx, ry = math.Abs(rx), math.Abs(ry)
		corner := func(pt vec.Vec2) {
			p.ArcTo(rx, ry, 0, false, sweep, pt)
		}
		p.MoveTo(vec.Vec2{X: x0 + rx, Y: y0})
		p.LineTo(vec.Vec2{X: x1 - rx, Y: y0})
		corner(vec.Vec2{X: x1, Y: y0 + ry})
		p.LineTo(vec.Vec2{X: x1, Y: y1 - ry})
		corner(vec.Vec2{X: x1 - rx, Y: y1})
		p.LineTo(vec.Vec2{X: x0 + rx, Y: y1})
		corner(vec.Vec2{X: x0, Y: y1 - ry})
		p.LineTo(vec.Vec2{X: x0, Y: y0 + ry})
		corner(vec.Vec2{X: x0 + rx, Y: y0})
		p.Close()
	}

	if r.Rotation != 0 {
		return p.Transform(transform.RotateAbout(r.Rotation, r.X, r.Y))
	}
	return *p
}

// frame returns the decomposition of the combined linear map which takes
// the axis-parallel rectangle to its drawn position.
func (r Rect) frame() transform.Decomposition {
	return linearFrame(r.CTM(), r.Rotation)
}

// ImplicitX returns the x-coordinate of the corner after reification.
func (r Rect) ImplicitX() float64 { return r.implicitCorner().X }

// ImplicitY returns the y-coordinate of the corner after reification.
func (r Rect) ImplicitY() float64 { return r.implicitCorner().Y }

func (r Rect) implicitCorner() vec.Vec2 {
	return r.CTM().Apply(vec.Vec2{X: r.X, Y: r.Y})
}

// ImplicitWidth returns the width after reification.
func (r Rect) ImplicitWidth() float64 { return r.Width * r.frame().ScaleX }

// ImplicitHeight returns the height after reification.
func (r Rect) ImplicitHeight() float64 { return r.Height * math.Abs(r.frame().ScaleY) }

// ImplicitRX returns the horizontal corner radius after reification.
func (r Rect) ImplicitRX() float64 { return r.RX * r.frame().ScaleX }

// ImplicitRY returns the vertical corner radius after reification.
func (r Rect) ImplicitRY() float64 { return r.RY * math.Abs(r.frame().ScaleY) }

// ImplicitRotation returns the rotation after reification.
func (r Rect) ImplicitRotation() angle.Angle { return r.frame().Rotation }

func (r Rect) String() string {
	b := newRepr("Rect")
	b.num("x", r.X)
	b.num("y", r.Y)
	b.num("width", r.Width)
	b.num("height", r.Height)
	if r.RX != 0 || r.RY != 0 {
		b.num("rx", r.RX)
		b.num("ry", r.RY)
	}
	if r.Rotation != 0 {
		b.num("rotation", r.Rotation.Degrees())
	}
	b.common(r.Common)
	return b.String()
}

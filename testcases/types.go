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

// Package testcases holds a table of shapes, with and without pending
// transformations, shared by the tests and by the commands which export
// and preview the geometry.
package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/transform"
)

// TestCase defines a single geometry case.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Shape  shape.Shape // the shape, including paint and transformation
	Width  int         // canvas width in pixels
	Height int         // canvas height in pixels
}

// LineWidth is the stroke width used by [stroked] unless a case sets its
// own.
const LineWidth = 2

// filled gives s a black fill and no stroke.
func filled(s shape.Shape) shape.Shape {
	return shape.WithStyle(s, shape.Style{Fill: "black"})
}

// stroked gives s a black stroke of the given width, cap and join.
func stroked(s shape.Shape, width float64, capStyle graphics.LineCapStyle, join graphics.LineJoinStyle) shape.Shape {
	return shape.WithStyle(s, shape.Style{
		Stroke:      "black",
		StrokeWidth: width,
		Cap:         capStyle,
		Join:        join,
		MiterLimit:  10,
	})
}

// tf applies an SVG transform list to s.
func tf(s shape.Shape, list string) shape.Shape {
	return shape.Apply(s, transform.MustParse(list))
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

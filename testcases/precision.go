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

package testcases

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svggeom/shape"
)

var precisionCases = []TestCase{
	// subpixel positioning
	{
		Name:   "subpixel_offset_00",
		Shape:  filled(offsetRectangle(20, 20, 24, 24, 0.0)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Shape:  filled(offsetRectangle(20, 20, 24, 24, 0.25)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Shape:  filled(offsetRectangle(20, 20, 24, 24, 0.5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_line_y_half",
		Shape:  stroked(shape.NewLine(5, 10.5, 59, 10.5), 1, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},

	// large coordinates, moved back onto the canvas by the transformation
	{
		Name:   "large_coord_centered",
		Shape:  tf(filled(shape.NewRect(990, 990, 20, 20)), "translate(-968,-968)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "small_circle_large_offset",
		Shape:  tf(filled(shape.NewCircle(10000, 10000, 2)), "translate(-9968,-9968)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "float64_precision",
		Shape:  filled(float64PrecisionShape()),
		Width:  64,
		Height: 64,
	},

	// degenerate shapes have no outline
	{
		Name:   "zero_width_rect",
		Shape:  filled(shape.NewRect(10, 10, 0, 40)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_radius_circle",
		Shape:  filled(shape.NewCircle(32, 32, 0)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty_polygon",
		Shape:  filled(shape.NewPolygon()),
		Width:  64,
		Height: 64,
	},
}

// offsetRectangle builds a rectangle with a subpixel offset applied to
// all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) shape.Shape {
	return shape.NewRect(x1+offset, y1+offset, w, h)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() shape.Shape {
	// These values differ only in the low bits of float64
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2

	return shape.NewPolygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

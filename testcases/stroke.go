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

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Shape:  stroked(shape.NewLine(10, 32, 54, 32), 8, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_round",
		Shape:  stroked(shape.NewLine(10, 32, 54, 32), 8, graphics.LineCapRound, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_square",
		Shape:  stroked(shape.NewLine(10, 32, 54, 32), 8, graphics.LineCapSquare, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_miter",
		Shape:  stroked(corner(10, 50, 32, 14, 54, 50), 6, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_round",
		Shape:  stroked(corner(10, 50, 32, 14, 54, 50), 6, graphics.LineCapButt, graphics.LineJoinRound),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_bevel",
		Shape:  stroked(corner(10, 50, 32, 14, 54, 50), 6, graphics.LineCapButt, graphics.LineJoinBevel),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_outline",
		Shape:  stroked(shape.NewCircle(32, 32, 20), LineWidth, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},
	{
		// the stroke width scales with the transformation
		Name:   "scaled_stroke",
		Shape:  tf(stroked(shape.NewRect(2, 2, 12, 12), 1, graphics.LineCapButt, graphics.LineJoinMiter), "scale(4)"),
		Width:  64,
		Height: 64,
	},
	{
		// the stroke width ignores the transformation
		Name:   "non_scaling_stroke",
		Shape:  tf(nonScaling(shape.NewRect(2, 2, 12, 12), 2), "scale(4)"),
		Width:  64,
		Height: 64,
	},
}

// corner builds an open polyline with a single corner at (x2, y2).
func corner(x1, y1, x2, y2, x3, y3 float64) shape.Shape {
	return shape.NewPolyline(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// nonScaling gives s a black stroke which is not affected by
// transformations.
func nonScaling(s shape.Shape, width float64) shape.Shape {
	return shape.WithStyle(s, shape.Style{
		Stroke:           "black",
		StrokeWidth:      width,
		NonScalingStroke: true,
	})
}

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

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Shape:  tf(filled(shape.NewRect(0, 0, 20, 20)), "translate(12,12) scale(2)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "scale_half",
		Shape:  tf(filled(shape.NewCircle(0, 0, 40)), "translate(32,32) scale(0.5)"),
		Width:  64,
		Height: 64,
	},

	// non-uniform scaling turns circles into ellipses
	{
		Name:   "scale_circle_x",
		Shape:  tf(filled(shape.NewCircle(0, 0, 10)), "translate(32,32) scale(2.5,1)"),
		Width:  64,
		Height: 64,
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Shape:  tf(filled(shape.NewRect(-10, -10, 20, 20)), "translate(32,32) rotate(45)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_about_point",
		Shape:  tf(filled(shape.NewRoundedRect(16, 24, 32, 16, 4, 4)), "rotate(30,32,32)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_ellipse",
		Shape:  tf(filled(shape.NewEllipse(0, 0, 24, 10)), "translate(32,32) rotate(-60)"),
		Width:  64,
		Height: 64,
	},

	// skew
	{
		Name:   "skew_x",
		Shape:  tf(filled(shape.NewRect(-15, -15, 30, 30)), "translate(32,32) skewX(26.565)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "skew_y_circle",
		Shape:  tf(filled(shape.NewCircle(0, 0, 15)), "translate(32,32) skewY(30)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "skew_and_rotate",
		Shape:  tf(filled(shape.NewRect(-12, -12, 24, 24)), "translate(32,32) rotate(30) skewX(20)"),
		Width:  64,
		Height: 64,
	},

	// reflections
	{
		Name:   "mirror_vertical",
		Shape:  tf(filled(shape.NewRoundedRect(8, 8, 24, 16, 6, 6)), "translate(64,0) scale(-1,1)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "mirror_circle",
		Shape:  tf(filled(shape.NewCircle(20, 20, 12)), "matrix(1,0,0,-1,0,64)"),
		Width:  64,
		Height: 64,
	},

	// transformed strokes
	{
		Name:   "stroke_scaled_line",
		Shape:  tf(stroked(shape.NewLine(-20, 0, 20, 0), 1, graphics.LineCapRound, graphics.LineJoinRound), "translate(32,32) scale(3)"),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "stroke_rotated_polygon",
		Shape:  tf(stroked(shape.NewPolygon(pt(-15, -10), pt(15, -10), pt(0, 15)), 3, graphics.LineCapButt, graphics.LineJoinMiter), "translate(32,32) rotate(90)"),
		Width:  64,
		Height: 64,
	},
	{
		Name: "nested_transforms",
		Shape: tf(tf(tf(
			stroked(shape.NewEllipse(0, 0, 10, 5), 1, graphics.LineCapButt, graphics.LineJoinMiter),
			"scale(2)"), "rotate(45)"), "translate(32,32)"),
		Width:  64,
		Height: 64,
	},
}

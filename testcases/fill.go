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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/shape"
)

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Shape:  filled(shape.NewRect(10, 10, 44, 44)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle",
		Shape:  filled(shape.NewRoundedRect(8, 16, 48, 32, 10, 6)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle_clamped",
		Shape:  filled(shape.NewRoundedRect(8, 16, 48, 32, 40, 40)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "scooped_rectangle",
		Shape: filled(shape.Rect{
			X: 8, Y: 16, Width: 48, Height: 32,
			RX: -8, RY: -8,
			NonStrict: true,
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Shape:  filled(shape.NewCircle(32, 32, 24)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Shape:  filled(shape.NewEllipse(32, 32, 28, 14)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle",
		Shape:  filled(shape.NewPolygon(pt(10, 50), pt(32, 10), pt(54, 50))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Shape:  filled(shape.NewPolygon(fivePointStar(32, 32, 25)...)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_polyline",
		Shape:  filled(shape.NewPolyline(pt(8, 56), pt(20, 8), pt(32, 40), pt(44, 8), pt(56, 56))),
		Width:  64,
		Height: 64,
	},
}

// fivePointStar returns the vertices of a self-intersecting five-pointed
// star, visiting every second outer point.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range pts {
		// start at top, visit every second vertex
		phi := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return pts
}

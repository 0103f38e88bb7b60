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
	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/svgpath"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Shape:  filled(joined(triangle(16, 32, 12), triangle(48, 32, 12))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "overlapping_rectangles",
		Shape: filled(joined(
			shape.NewRect(10, 10, 30, 30),
			shape.NewRect(24, 24, 30, 30),
		)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_shape",
		Shape:  filled(ring(32, 32, 25, 12)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "multiple_rings",
		Shape: filled(joined(
			ring(34, 34, 20, 10),
			ring(94, 34, 20, 10),
			ring(64, 94, 20, 10),
		)),
		Width:  128,
		Height: 128,
	},
	{
		// a rectangle appended to a closed, empty subpath
		Name:   "rect_after_close",
		Shape:  filled(shape.NewPath(appendShapes(svgpath.MustParse("M4,4z"), shape.NewRect(8, 8, 48, 48)))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_small_shapes",
		Shape:  filled(manySmallShapes(8, 8)),
		Width:  128,
		Height: 128,
	},
}

// triangle builds an isosceles triangle around (cx, cy).
func triangle(cx, cy, size float64) shape.Shape {
	return shape.NewPolygon(pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size))
}

// ring builds a square ring: an outer square with a circular cutout.
func ring(cx, cy, outer, inner float64) shape.Shape {
	return joined(
		shape.NewRect(cx-outer, cy-outer, 2*outer, 2*outer),
		shape.NewCircle(cx, cy, inner),
	)
}

// joined combines the outlines of several shapes into a single path,
// one subpath per shape.
func joined(shapes ...shape.Shape) shape.Shape {
	return shape.NewPath(appendShapes(nil, shapes...))
}

// appendShapes appends the outlines of shapes to p.
func appendShapes(p svgpath.Path, shapes ...shape.Shape) svgpath.Path {
	for _, s := range shapes {
		p.Append(shape.Outline(s))
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) shape.Shape {
	size := 5.0
	spacing := 14.0

	var shapes []shape.Shape
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			shapes = append(shapes, triangle(cx, cy, size))
		}
	}
	return joined(shapes...)
}

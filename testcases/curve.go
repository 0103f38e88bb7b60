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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/svgpath"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	// quadratic Bézier curves
	{
		Name:   "quadratic",
		Shape:  filled(parsed("M10,50 Q32,10 54,50 Z")),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_shallow",
		Shape:  filled(parsed("M10,32 Q32,28 54,32 Z")), // control point near chord
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_smooth",
		Shape:  filled(parsed("M10,32 Q21,12 32,32 T54,32 Z")),
		Width:  64,
		Height: 64,
	},

	// cubic Bézier curves
	{
		Name:   "cubic",
		Shape:  filled(parsed("M10,50 C20,10 44,10 54,50 Z")),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_loop",
		Shape:  filled(parsed("M10,40 C70,0 -6,0 54,40 Z")), // control points cross
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_smooth_relative",
		Shape:  filled(parsed("m10,32 c5,-20 17,-20 22,0 s17,20 22,0 z")),
		Width:  64,
		Height: 64,
	},
	{
		// four cubics, not an exact circle
		Name:   "bezier_circle",
		Shape:  filled(shape.NewPath(svgpath.FromData(bezierCircle(32, 32, 25)))),
		Width:  64,
		Height: 64,
	},

	// elliptical arcs
	{
		Name:   "arc_small_sweep",
		Shape:  filled(parsed("M12,32 A20,20 0 0,1 52,32 Z")),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc_large_sweep",
		Shape:  filled(parsed("M12,40 A20,20 0 1,1 52,40 Z")),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc_rotated",
		Shape:  filled(parsed("M8,32 A28,12 30 0,0 56,32 Z")),
		Width:  64,
		Height: 64,
	},
	{
		// radii too small for the chord are scaled up
		Name:   "arc_radii_scaled",
		Shape:  filled(parsed("M8,32 A1,1 0 0,1 56,32 Z")),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc_pie_slice",
		Shape:  filled(shape.NewPath(pieSlice())),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc_through_points",
		Shape:  filled(shape.NewPath(threePointArc())),
		Width:  64,
		Height: 64,
	},
}

// parsed builds a path shape from SVG path data.  It panics if the path
// data is malformed.
func parsed(d string) shape.Shape {
	return shape.NewPath(svgpath.MustParse(d))
}

// bezierCircle builds an approximate circle using four cubic Bezier curves.
func bezierCircle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// pieSlice builds three quarters of a circle of radius 24 around (32, 32),
// joined to the center.
func pieSlice() svgpath.Path {
	p := (&svgpath.Path{}).
		MoveTo(pt(32, 32)).
		LineTo(pt(56, 32)).
		ArcTo(24, 24, angle.Degrees(0), true, false, pt(32, 56)).
		Close()
	return *p
}

// threePointArc builds a closed shape from a circular arc through three
// points.
func threePointArc() svgpath.Path {
	var p svgpath.Path
	p.MoveTo(pt(8, 40))
	p.Append(svgpath.Path{svgpath.ArcThrough(pt(8, 40), pt(32, 12), pt(56, 40))})
	p.Close()
	return p
}

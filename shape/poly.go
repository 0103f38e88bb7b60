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
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/internal/scan"
	"seehuhn.de/go/svggeom/svgpath"
	"seehuhn.de/go/svggeom/transform"
)

// ParsePoints parses the value of a points attribute.  Parsing stops at
// the first character which is neither part of a number nor a separator,
// and an unpaired last number is ignored.
func ParsePoints(s string) []vec.Vec2 {
	pts, _ := parsePoints(s)
	return pts
}

// parsePoints is like [ParsePoints], but reports a malformed tail as an
// error wrapping [ErrBadPoints].
func parsePoints(s string) ([]vec.Vec2, error) {
	pairs, n := scan.Pairs(s)
	var err error
	if n < len(s) {
		err = fmt.Errorf("%w at offset %d", ErrBadPoints, n)
	}
	if len(pairs) == 0 {
		return nil, err
	}
	res := make([]vec.Vec2, len(pairs))
	for i, p := range pairs {
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res, err
}

// Polyline is an open sequence of straight lines.
type Polyline struct {
	Points []vec.Vec2

	Common
}

// NewPolyline returns the polyline through the given points.
func NewPolyline(pts ...vec.Vec2) Polyline {
	return Polyline{Points: pts}
}

func (p Polyline) withCommon(c Common) Shape {
	p.Common = c
	return p
}

// Geometry implements the [Shape] interface.
func (p Polyline) Geometry() svgpath.Path {
	return polyOutline(p.Points, false)
}

// ImplicitPoints returns the vertices after reification.
func (p Polyline) ImplicitPoints() []vec.Vec2 {
	return mapPoints(p.CTM(), p.Points)
}

func (p Polyline) String() string {
	b := newRepr("Polyline")
	b.str("points", formatPoints(p.Points))
	b.common(p.Common)
	return b.String()
}

// Polygon is a closed sequence of straight lines.
type Polygon struct {
	Points []vec.Vec2

	Common
}

// NewPolygon returns the polygon with the given vertices.
func NewPolygon(pts ...vec.Vec2) Polygon {
	return Polygon{Points: pts}
}

func (p Polygon) withCommon(c Common) Shape {
	p.Common = c
	return p
}

// Geometry implements the [Shape] interface.
func (p Polygon) Geometry() svgpath.Path {
	return polyOutline(p.Points, true)
}

// ImplicitPoints returns the vertices after reification.
func (p Polygon) ImplicitPoints() []vec.Vec2 {
	return mapPoints(p.CTM(), p.Points)
}

func (p Polygon) String() string {
	b := newRepr("Polygon")
	b.str("points", formatPoints(p.Points))
	b.common(p.Common)
	return b.String()
}

func polyOutline(pts []vec.Vec2, closed bool) svgpath.Path {
	if len(pts) == 0 {
		return nil
	}
	p := &svgpath.Path{}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	if closed {
		p.Close()
	}
	return *p
}

func mapPoints(m transform.Matrix, pts []vec.Vec2) []vec.Vec2 {
	res := slices.Clone(pts)
	for i, p := range res {
		res[i] = m.Apply(p)
	}
	return res
}

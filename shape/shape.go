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

// Package shape implements the basic shapes of SVG: rectangles, circles,
// ellipses, lines, polylines, polygons and paths.
//
// Every shape carries a pending transformation matrix.  [Apply] composes
// a further transformation with this matrix, and [Reify] folds the matrix
// into the parameters of the shape where this is possible.
package shape

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/svgpath"
	"seehuhn.de/go/svggeom/transform"
)

// Shape is one of [Rect], [Circle], [Ellipse], [SimpleLine], [Polyline],
// [Polygon] and [Path].
type Shape interface {
	// Geometry returns the outline of the shape in its own coordinate
	// system, before the pending matrix is applied.  Degenerate shapes
	// have an empty outline.
	Geometry() svgpath.Path

	String() string

	common() Common
	withCommon(Common) Shape
}

// Common holds the fields shared by all shapes.
type Common struct {
	// Matrix is the pending transformation.  The zero matrix stands for
	// the identity.
	Matrix transform.Matrix

	Style Style
}

func (c Common) common() Common { return c }

// CTM returns the pending transformation, with the zero matrix replaced
// by the identity.
func (c Common) CTM() transform.Matrix {
	if c.Matrix == (transform.Matrix{}) {
		return transform.Identity
	}
	return c.Matrix
}

// Apply returns a copy of s, transformed by m.  The transformation m is
// applied after the pending transformation of s.
func Apply(s Shape, m transform.Matrix) Shape {
	c := s.common()
	c.Matrix = m.Mul(c.CTM())
	return s.withCommon(c)
}

// ApplyString is like [Apply], but takes an SVG transform list.  A
// malformed tail of the list is ignored and reported as an error.
func ApplyString(s Shape, list string) (Shape, error) {
	m, err := transform.Parse(list)
	return Apply(s, m), err
}

// WithStyle returns a copy of s with the given style.
func WithStyle(s Shape, st Style) Shape {
	c := s.common()
	c.Style = st
	return s.withCommon(c)
}

// StyleOf returns the style of s.
func StyleOf(s Shape) Style {
	return s.common().Style
}

// Outline returns the outline of s as drawn, with the pending
// transformation applied.
func Outline(s Shape) svgpath.Path {
	p := s.Geometry()
	m := s.common().CTM()
	if m.IsIdentity() {
		return p
	}
	return p.Transform(m)
}

// PathData returns the outline of s as SVG path data.  Degenerate shapes
// give the empty string.
func PathData(s Shape) string {
	return Outline(s).String()
}

// BBox returns the bounding box of s.  If transformed is true, the box
// covers the shape as drawn, otherwise it is given in the shape's own
// coordinates.  The second return value is false for shapes without
// geometry.
func BBox(s Shape, transformed bool) (rect.Rect, bool) {
	if transformed {
		return Outline(s).BBox()
	}
	return s.Geometry().BBox()
}

// PointAt returns the point at parameter t in [0, 1] along the outline as
// drawn.  See [svgpath.Path.PointAt].
func PointAt(s Shape, t float64) vec.Vec2 {
	return Outline(s).PointAt(t)
}

// Points evaluates [PointAt] for many parameters at once.
func Points(s Shape, ts []float64) []vec.Vec2 {
	return Outline(s).Points(ts)
}

// Length returns the length of the outline as drawn.
func Length(s Shape) float64 {
	return Outline(s).Length()
}

// Equal reports whether a and b draw the same outline with the same paint.
// Shapes of different types compare equal if their outlines agree, so
// that a circle equals the corresponding ellipse and a polygon equals the
// corresponding closed path.  The stroke width only matters when the
// shapes are stroked.
func Equal(a, b Shape) bool {
	sa, sb := a.common().Style, b.common().Style
	if sa.Fill != sb.Fill || sa.Stroke != sb.Stroke {
		return false
	}
	if sa.Stroke != "" && !nearRel(ImplicitStrokeWidth(a), ImplicitStrokeWidth(b)) {
		return false
	}
	return Outline(a).Equal(Outline(b))
}

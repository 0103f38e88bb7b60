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

package svgpath

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/transform"
)

// Segment is one drawing instruction of a path.
//
// The set of segment types is fixed: [Move], [Close], [Line], [Quad],
// [Cubic] and [Arc].  Every segment records both its start and its end
// point, so that segments can be inspected without reference to the
// segments before them.
type Segment interface {
	// Start returns the current point before the segment.
	Start() vec.Vec2

	// End returns the current point after the segment.
	End() vec.Vec2

	// PointAt returns the point at parameter t in [0, 1].
	PointAt(t float64) vec.Vec2

	// BBox returns the smallest axis-parallel rectangle containing the
	// segment.  The second return value is false for segments which do not
	// draw anything.
	BBox() (rect.Rect, bool)

	// Transform returns the segment mapped by m.  The result has the same
	// type as the receiver.
	Transform(m transform.Matrix) Segment

	String() string

	isSegment()
}

// Move starts a new subpath at To.  From is the current point before the
// move and carries no geometric meaning.
type Move struct {
	From, To vec.Vec2
}

// Close draws a straight line back to the start of the current subpath.
type Close struct {
	From, To vec.Vec2
}

// Line is a straight line.
type Line struct {
	From, To vec.Vec2
}

// Quad is a quadratic Bézier curve.
type Quad struct {
	From, Control, To vec.Vec2
}

// Cubic is a cubic Bézier curve.
type Cubic struct {
	From, Control1, Control2, To vec.Vec2
}

func (Move) isSegment()  {}
func (Close) isSegment() {}
func (Line) isSegment()  {}
func (Quad) isSegment()  {}
func (Cubic) isSegment() {}

func (s Move) Start() vec.Vec2  { return s.From }
func (s Close) Start() vec.Vec2 { return s.From }
func (s Line) Start() vec.Vec2  { return s.From }
func (s Quad) Start() vec.Vec2  { return s.From }
func (s Cubic) Start() vec.Vec2 { return s.From }

func (s Move) End() vec.Vec2  { return s.To }
func (s Close) End() vec.Vec2 { return s.To }
func (s Line) End() vec.Vec2  { return s.To }
func (s Quad) End() vec.Vec2  { return s.To }
func (s Cubic) End() vec.Vec2 { return s.To }

// PointAt returns the target of the move, for every t.
func (s Move) PointAt(t float64) vec.Vec2 {
	return s.To
}

func (s Close) PointAt(t float64) vec.Vec2 {
	return lerp(s.From, s.To, t)
}

func (s Line) PointAt(t float64) vec.Vec2 {
	return lerp(s.From, s.To, t)
}

func (s Quad) PointAt(t float64) vec.Vec2 {
	switch t {
	case 0:
		return s.From
	case 1:
		return s.To
	}
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return s.From.Mul(omt * omt).Add(s.Control.Mul(2 * omt * t)).Add(s.To.Mul(t * t))
}

func (s Cubic) PointAt(t float64) vec.Vec2 {
	switch t {
	case 0:
		return s.From
	case 1:
		return s.To
	}
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return s.From.Mul(omt2 * omt).
		Add(s.Control1.Mul(3 * omt2 * t)).
		Add(s.Control2.Mul(3 * omt * t2)).
		Add(s.To.Mul(t2 * t))
}

// BBox always returns false, since a move draws nothing.
func (s Move) BBox() (rect.Rect, bool) {
	return rect.Rect{}, false
}

func (s Close) BBox() (rect.Rect, bool) {
	return pointsBBox(s.From, s.To), true
}

func (s Line) BBox() (rect.Rect, bool) {
	return pointsBBox(s.From, s.To), true
}

func (s Quad) BBox() (rect.Rect, bool) {
	return quadBBox(s.From, s.Control, s.To), true
}

func (s Cubic) BBox() (rect.Rect, bool) {
	return cubicBBox(s.From, s.Control1, s.Control2, s.To), true
}

func (s Move) Transform(m transform.Matrix) Segment {
	return Move{From: m.Apply(s.From), To: m.Apply(s.To)}
}

func (s Close) Transform(m transform.Matrix) Segment {
	return Close{From: m.Apply(s.From), To: m.Apply(s.To)}
}

func (s Line) Transform(m transform.Matrix) Segment {
	return Line{From: m.Apply(s.From), To: m.Apply(s.To)}
}

func (s Quad) Transform(m transform.Matrix) Segment {
	return Quad{From: m.Apply(s.From), Control: m.Apply(s.Control), To: m.Apply(s.To)}
}

func (s Cubic) Transform(m transform.Matrix) Segment {
	return Cubic{
		From:     m.Apply(s.From),
		Control1: m.Apply(s.Control1),
		Control2: m.Apply(s.Control2),
		To:       m.Apply(s.To),
	}
}

func (s Move) String() string {
	return fmt.Sprintf("Move(start=%s, end=%s)", formatPoint(s.From), formatPoint(s.To))
}

func (s Close) String() string {
	return fmt.Sprintf("Close(start=%s, end=%s)", formatPoint(s.From), formatPoint(s.To))
}

func (s Line) String() string {
	return fmt.Sprintf("Line(start=%s, end=%s)", formatPoint(s.From), formatPoint(s.To))
}

func (s Quad) String() string {
	return fmt.Sprintf("Quad(start=%s, control=%s, end=%s)",
		formatPoint(s.From), formatPoint(s.Control), formatPoint(s.To))
}

func (s Cubic) String() string {
	return fmt.Sprintf("Cubic(start=%s, control1=%s, control2=%s, end=%s)",
		formatPoint(s.From), formatPoint(s.Control1), formatPoint(s.Control2), formatPoint(s.To))
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

func formatNumber(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatPoint(p vec.Vec2) string {
	return "(" + formatNumber(p.X) + "," + formatNumber(p.Y) + ")"
}

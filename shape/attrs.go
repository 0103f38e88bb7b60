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
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svggeom/internal/scan"
	"seehuhn.de/go/svggeom/svgpath"
	"seehuhn.de/go/svggeom/transform"
)

var (
	// ErrUnknownElement is returned by [FromAttributes] for element names
	// which do not describe a shape.
	ErrUnknownElement = errors.New("shape: unknown element")

	// ErrBadAttribute is returned by [FromAttributes] for attribute values
	// which cannot be used.
	ErrBadAttribute = errors.New("shape: invalid attribute value")

	// ErrBadPoints is returned together with the shape by [FromAttributes]
	// if a points list has a malformed tail.
	ErrBadPoints = errors.New("shape: malformed points list")
)

// Attributes maps attribute names to their values, as they appear in the
// document.  Inherited properties must already be resolved.
type Attributes map[string]string

// FromAttributes constructs the shape described by an SVG element with
// the given name and attributes.
//
// Lengths may carry the suffix "px"; other units must be converted by the
// caller.  Malformed "transform", "d" and "points" values are not fatal:
// the well-formed prefix is used and the shape is returned together with
// the parse error, which for points wraps [ErrBadPoints].  An unpaired
// last number in a points list is dropped without error.  Unusable
// numbers cause ErrBadAttribute.
func FromAttributes(tag string, attrs Attributes) (Shape, error) {
	r := &reader{attrs: attrs}

	var s Shape
	switch tag {
	case "rect":
		rect := Rect{
			X:      r.length("x"),
			Y:      r.length("y"),
			Width:  r.length("width"),
			Height: r.length("height"),
		}
		rect.RX, rect.RY = r.radii()
		s = rect
	case "circle":
		s = Circle{CX: r.length("cx"), CY: r.length("cy"), R: r.length("r")}
	case "ellipse":
		e := Ellipse{CX: r.length("cx"), CY: r.length("cy")}
		e.RX, e.RY = r.radii()
		s = e
	case "line":
		s = SimpleLine{
			X1: r.length("x1"), Y1: r.length("y1"),
			X2: r.length("x2"), Y2: r.length("y2"),
		}
	case "polyline":
		pts, err := parsePoints(attrs["points"])
		r.soft(err)
		s = Polyline{Points: pts}
	case "polygon":
		pts, err := parsePoints(attrs["points"])
		r.soft(err)
		s = Polygon{Points: pts}
	case "path":
		d, err := svgpath.Parse(attrs["d"])
		r.soft(err)
		s = Path{Data: d}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownElement, tag)
	}

	c := Common{Style: r.style()}
	if tf, ok := attrs["transform"]; ok {
		m, err := transform.Parse(tf)
		r.soft(err)
		c.Matrix = m
	}
	if r.err != nil {
		return nil, r.err
	}
	return s.withCommon(c), r.softErr
}

// reader collects the first hard and the first soft error while reading
// attributes.
type reader struct {
	attrs   Attributes
	err     error
	softErr error
}

func (r *reader) fail(key, val string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q", ErrBadAttribute, key, val)
	}
}

func (r *reader) soft(err error) {
	if r.softErr == nil && err != nil {
		r.softErr = err
	}
}

// length reads a length attribute.  Missing attributes give zero.
func (r *reader) length(key string) float64 {
	val, ok := r.attrs[key]
	if !ok {
		return 0
	}
	x, ok := parseLength(val)
	if !ok {
		r.fail(key, val)
	}
	return x
}

// radii reads rx and ry.  If only one of them is given, it is used for
// both.
func (r *reader) radii() (rx, ry float64) {
	rxVal, hasRX := r.attrs["rx"]
	ryVal, hasRY := r.attrs["ry"]
	hasRX = hasRX && strings.TrimSpace(rxVal) != "auto"
	hasRY = hasRY && strings.TrimSpace(ryVal) != "auto"
	if hasRX {
		rx = r.length("rx")
	}
	if hasRY {
		ry = r.length("ry")
	}
	switch {
	case hasRX && !hasRY:
		ry = rx
	case hasRY && !hasRX:
		rx = ry
	}
	return rx, ry
}

func (r *reader) style() Style {
	st := Style{
		Fill:   strings.TrimSpace(r.attrs["fill"]),
		Stroke: strings.TrimSpace(r.attrs["stroke"]),
	}
	if st.Fill == "none" {
		st.Fill = ""
	}
	if st.Stroke == "none" {
		st.Stroke = ""
	}
	if _, ok := r.attrs["stroke-width"]; ok {
		st.StrokeWidth = r.length("stroke-width")
		st.StrokeWidthSet = true
	}
	if _, ok := r.attrs["stroke-miterlimit"]; ok {
		st.MiterLimit = r.length("stroke-miterlimit")
	}
	st.NonScalingStroke = strings.TrimSpace(r.attrs["vector-effect"]) == "non-scaling-stroke"

	if val, ok := r.attrs["stroke-linecap"]; ok {
		switch strings.TrimSpace(val) {
		case "butt":
			st.Cap = graphics.LineCapButt
		case "round":
			st.Cap = graphics.LineCapRound
		case "square":
			st.Cap = graphics.LineCapSquare
		default:
			r.fail("stroke-linecap", val)
		}
	}
	if val, ok := r.attrs["stroke-linejoin"]; ok {
		switch strings.TrimSpace(val) {
		case "miter", "miter-clip", "arcs":
			st.Join = graphics.LineJoinMiter
		case "round":
			st.Join = graphics.LineJoinRound
		case "bevel":
			st.Join = graphics.LineJoinBevel
		default:
			r.fail("stroke-linejoin", val)
		}
	}
	return st
}

// parseLength reads a number with an optional "px" unit.
func parseLength(s string) (float64, bool) {
	b := []byte(strings.TrimSpace(s))
	x, n := scan.Number(b)
	if n == 0 {
		return 0, false
	}
	switch strings.TrimSpace(string(b[n:])) {
	case "", "px":
		return x, true
	}
	return 0, false
}

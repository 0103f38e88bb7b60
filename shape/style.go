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
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// Style holds the presentation attributes which influence geometry or
// equality of shapes.  Paint values are kept as written; colors are
// resolved elsewhere.
type Style struct {
	Fill   string // fill paint, "" if not set
	Stroke string // stroke paint, "" if not set

	// StrokeWidth is the stroke width as written.  Zero selects the
	// default width 1, unless StrokeWidthSet is true.
	StrokeWidth float64

	// StrokeWidthSet records that StrokeWidth was given explicitly, so
	// that a width of zero means no stroke.
	StrokeWidthSet bool

	// StrokeScale accumulates the scaling of the stroke by reified
	// transformations.  Zero stands for 1.
	StrokeScale float64

	// NonScalingStroke corresponds to "vector-effect: non-scaling-stroke".
	// The stroke width then ignores all transformations.
	NonScalingStroke bool

	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // zero selects the default 4
}

func (st Style) width() float64 {
	if st.StrokeWidth == 0 && !st.StrokeWidthSet {
		return 1
	}
	return st.StrokeWidth
}

func (st Style) scale() float64 {
	if st.StrokeScale == 0 {
		return 1
	}
	return st.StrokeScale
}

// ImplicitStrokeWidth returns the width of the stroke of s as drawn.  The
// width is scaled by the geometric mean of the scale factors of the
// pending transformation, unless the stroke is non-scaling.
func ImplicitStrokeWidth(s Shape) float64 {
	c := s.common()
	w := c.Style.width()
	if c.Style.NonScalingStroke {
		return w
	}
	return w * c.Style.scale() * math.Sqrt(math.Abs(c.CTM().Det()))
}

// reifyStyle moves the stroke scaling of the pending transformation into
// the style.  Singular transformations leave the style unchanged.
func reifyStyle(c Common) Style {
	st := c.Style
	if f := math.Sqrt(math.Abs(c.CTM().Det())); !st.NonScalingStroke && f > 0 {
		st.StrokeScale = st.scale() * f
	}
	return st
}

func nearRel(x, y float64) bool {
	return math.Abs(x-y) <= 1e-9*max(1, math.Abs(x), math.Abs(y))
}

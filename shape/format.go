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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// repr builds constructor-like string representations such as
// "Rect(x=0, y=0, width=1, height=1, fill='red')".
type repr struct {
	b strings.Builder
	n int
}

func newRepr(name string) *repr {
	r := &repr{}
	r.b.WriteString(name)
	r.b.WriteByte('(')
	return r
}

func (r *repr) sep() {
	if r.n > 0 {
		r.b.WriteString(", ")
	}
	r.n++
}

func (r *repr) num(key string, x float64) {
	r.sep()
	r.b.WriteString(key)
	r.b.WriteByte('=')
	r.b.WriteString(formatNumber(x))
}

func (r *repr) str(key, val string) {
	r.sep()
	r.b.WriteString(key)
	r.b.WriteString("='")
	r.b.WriteString(val)
	r.b.WriteByte('\'')
}

// common adds the non-default fields of c.
func (r *repr) common(c Common) {
	if m := c.CTM(); !m.IsIdentity() {
		r.str("transform", m.SVG())
	}
	st := c.Style
	if st.Fill != "" {
		r.str("fill", st.Fill)
	}
	if st.Stroke != "" {
		r.str("stroke", st.Stroke)
	}
	if st.StrokeWidth != 0 || st.StrokeWidthSet {
		r.num("stroke_width", st.StrokeWidth)
	}
	if st.NonScalingStroke {
		r.str("vector_effect", "non-scaling-stroke")
	}
}

func (r *repr) String() string {
	r.b.WriteByte(')')
	return r.b.String()
}

func formatNumber(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatPoints gives a points attribute value.
func formatPoints(pts []vec.Vec2) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(p.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(p.Y))
	}
	return b.String()
}

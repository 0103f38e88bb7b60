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
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// makeWave returns path data with n curve segments of every kind.
func makeWave(n int) string {
	var b strings.Builder
	b.WriteString("M0,0")
	for i := range n {
		x := float64(10 * i)
		fmt.Fprintf(&b, " L%g,5 Q%g,10 %g,0 C%g,-5 %g,5 %g,0 A4,3 15 0,1 %g,0",
			x+1, x+2, x+3, x+4, x+5, x+6, x+10)
	}
	b.WriteString(" Z")
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		d := makeWave(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(d)))
			b.ReportAllocs()
			for b.Loop() {
				_, err := Parse(d)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFlatten(b *testing.B) {
	p := MustParse(makeWave(100))
	for _, tol := range []float64{0.1, 0.01, 0.001} {
		b.Run(fmt.Sprintf("tol=%g", tol), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				p.Flatten(tol, func(from, to vec.Vec2) {})
			}
		})
	}
}

func BenchmarkBBox(b *testing.B) {
	p := MustParse(makeWave(100))
	b.ReportAllocs()
	for b.Loop() {
		p.BBox()
	}
}

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
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/svgpath"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// forAll runs fn as a subtest for every test case.
func forAll(t *testing.T, fn func(t *testing.T, tc TestCase)) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fn(t, tc)
			})
		}
	}
}

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			key := category + "_" + tc.Name
			if seen[key] {
				t.Errorf("duplicate test case %q", key)
			}
			seen[key] = true
		}
	}
}

// TestFitsCanvas checks that every outline lies inside its canvas, so
// that previews show the complete shape.
func TestFitsCanvas(t *testing.T) {
	forAll(t, func(t *testing.T, tc TestCase) {
		bbox, ok := shape.BBox(tc.Shape, true)
		if !ok {
			return
		}
		if bbox.LLx < 0 || bbox.LLy < 0 || bbox.URx > float64(tc.Width) || bbox.URy > float64(tc.Height) {
			t.Errorf("bbox %v outside of %dx%d canvas", bbox, tc.Width, tc.Height)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	forAll(t, func(t *testing.T, tc TestCase) {
		d := shape.PathData(tc.Shape)
		p, err := svgpath.Parse(d)
		if err != nil {
			t.Fatalf("%q: %v", d, err)
		}
		if !p.Equal(shape.Outline(tc.Shape)) {
			t.Errorf("%q does not reproduce the outline", d)
		}
	})
}

func TestReify(t *testing.T) {
	forAll(t, func(t *testing.T, tc TestCase) {
		r := shape.Reify(tc.Shape)
		if !shape.Equal(r, tc.Shape) {
			t.Errorf("reified %s differs from %s", r, tc.Shape)
		}
		if w, v := shape.ImplicitStrokeWidth(r), shape.ImplicitStrokeWidth(tc.Shape); !near(w, v) {
			t.Errorf("stroke width changed from %g to %g", v, w)
		}
	})
}

// TestDegenerate checks that shapes without a bounding box have empty
// path data, and the other way round.
func TestDegenerate(t *testing.T) {
	forAll(t, func(t *testing.T, tc TestCase) {
		_, ok := shape.BBox(tc.Shape, true)
		d := shape.PathData(tc.Shape)
		if ok == (d == "") {
			t.Errorf("bbox ok=%t, path data %q", ok, d)
		}
	})
}

func TestSamplesInBBox(t *testing.T) {
	const eps = 1e-9
	ts := make([]float64, 101)
	for i := range ts {
		ts[i] = float64(i) / 100
	}
	forAll(t, func(t *testing.T, tc TestCase) {
		bbox, ok := shape.BBox(tc.Shape, true)
		if !ok {
			return
		}
		for i, p := range shape.Points(tc.Shape, ts) {
			if p.X < bbox.LLx-eps || p.X > bbox.URx+eps || p.Y < bbox.LLy-eps || p.Y > bbox.URy+eps {
				t.Errorf("t=%g: point %v outside %v", ts[i], p, bbox)
			}
		}
	})
}

func near(x, y float64) bool {
	d := x - y
	return d < 1e-9 && d > -1e-9
}

func BenchmarkReify(b *testing.B) {
	var all []TestCase
	for _, category := range slices.Sorted(maps.Keys(All)) {
		all = append(all, All[category]...)
	}
	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range all {
			shape.Reify(tc.Shape)
		}
	}
}

func BenchmarkBBox(b *testing.B) {
	var all []TestCase
	for _, category := range slices.Sorted(maps.Keys(All)) {
		all = append(all, All[category]...)
	}
	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range all {
			shape.BBox(tc.Shape, true)
		}
	}
}

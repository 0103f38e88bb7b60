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

package transform

import (
	"errors"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Matrix
	}{
		{"", Identity},
		{"  ", Identity},
		{"translate(5)", Translate(5, 0)},
		{"translate(5,6)", Translate(5, 6)},
		{"translate(5-6)", Translate(5, -6)},
		{"scale(2)", Scale(2, 2)},
		{"scale(2 3)", Scale(2, 3)},
		{"rotate(90)", Rotate(angle.Degrees(90))},
		{"rotate(0.25turn)", Rotate(angle.Degrees(90))},
		{"rotate(100grad)", Rotate(angle.Degrees(90))},
		{"rotate(45, 10, 10)", RotateAbout(angle.Degrees(45), 10, 10)},
		{"skewX(30)", SkewX(angle.Degrees(30))},
		{"skewY(1rad)", SkewY(angle.Radians(1))},
		{"matrix(1,2,3,4,5,6)", Matrix{1, 2, 3, 4, 5, 6}},
		{"matrix(1 0 0 1 0 0)", Identity},
		{"skewy(10)", SkewY(angle.Degrees(10))},
		{"SkewX(10) Scale(2)", SkewX(angle.Degrees(10)).Mul(Scale(2, 2))},

		// ------------------------------------------------------------------
		// lists compose left to right

		{"rotate(20) scale(2) translate(5,0)",
			Rotate(angle.Degrees(20)).Mul(Scale(2, 2)).Mul(Translate(5, 0))},
		{"translate(10,0),scale(2)", Translate(10, 0).Mul(Scale(2, 2))},
		{"scale(2)translate(1)", Scale(2, 2).Mul(Translate(1, 0))},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Parse(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(c.want, 1e-12) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseRecovery(t *testing.T) {
	cases := []struct {
		in     string
		want   Matrix
		offset int
	}{
		{"translate(5) bogus(1)", Translate(5, 0), 13},
		{"scale(2) rotate(", Scale(2, 2), 9},
		{"scale(2) rotate(1, 2)", Scale(2, 2), 9},
		{"matrix(1 2 3)", Identity, 0},
		{"translate 5", Identity, 0},
		{"scale(2) translate(1e400)", Scale(2, 2), 9},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Parse(c.in)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got error %v, want *SyntaxError", err)
			}
			if se.Offset != c.offset {
				t.Errorf("offset %d, want %d", se.Offset, c.offset)
			}
			if !got.Equal(c.want, 1e-12) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestViewbox(t *testing.T) {
	vb, err := ParseViewbox("0 0 100 50")
	if err != nil {
		t.Fatal(err)
	}
	viewport := rect.Rect{LLx: 0, LLy: 0, URx: 200, URy: 200}

	cases := []struct {
		par  string
		in   vec.Vec2
		want vec.Vec2
	}{
		{"", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 50}},
		{"xMidYMid meet", vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 200, Y: 150}},
		{"xMinYMin", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 0}},
		{"xMaxYMax", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 100}},
		{"xMinYMin slice", vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 400, Y: 200}},
		{"xMaxYMid slice", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: -200, Y: 0}},
		{"none", vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 200, Y: 200}},
	}
	for _, c := range cases {
		t.Run(c.par, func(t *testing.T) {
			ar, err := ParseAspectRatio(c.par)
			if err != nil {
				t.Fatal(err)
			}
			got := vb.Transform(viewport, ar).Apply(c.in)
			if !near(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestViewboxErrors(t *testing.T) {
	for _, s := range []string{"", "0 0 10", "0 0 10 -1", "0 0 0 10", "0 0 1 1 1", "a b c d"} {
		if _, err := ParseViewbox(s); !errors.Is(err, ErrBadViewbox) {
			t.Errorf("ParseViewbox(%q): got %v", s, err)
		}
	}
	for _, s := range []string{"xMidYMid foo", "xmidymid", "none meet extra", "xMinYTop"} {
		if _, err := ParseAspectRatio(s); !errors.Is(err, ErrBadViewbox) {
			t.Errorf("ParseAspectRatio(%q): got %v", s, err)
		}
	}
}

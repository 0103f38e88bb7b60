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

package shape_test

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/svgpath"
	"seehuhn.de/go/svggeom/transform"
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func apply(t *testing.T, s shape.Shape, list string) shape.Shape {
	t.Helper()
	res, err := shape.ApplyString(s, list)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func nonScaling(s shape.Shape) shape.Shape {
	return shape.WithStyle(s, shape.Style{NonScalingStroke: true})
}

func rectNear(a, b rect.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.LLx-b.LLx) <= eps && math.Abs(a.LLy-b.LLy) <= eps &&
		math.Abs(a.URx-b.URx) <= eps && math.Abs(a.URy-b.URy) <= eps
}

func TestPathData(t *testing.T) {
	cases := []struct {
		s    shape.Shape
		want string
	}{
		{shape.NewRect(0, 0, 1, 1), "M 0,0 L 1,0 L 1,1 L 0,1 Z"},
		{shape.NewRoundedRect(0, 0, 4, 2, 1, 1),
			"M 1,0 L 3,0 A 1,1 0 0,1 4,1 L 4,1 A 1,1 0 0,1 3,2 L 1,2 A 1,1 0 0,1 0,1 L 0,1 A 1,1 0 0,1 1,0 Z"},
		{shape.NewCircle(0, 0, 1),
			"M 1,0 A 1,1 0 0,1 0,1 A 1,1 0 0,1 -1,0 A 1,1 0 0,1 0,-1 A 1,1 0 0,1 1,0 Z"},
		{shape.NewEllipse(0, 0, 2, 1),
			"M 2,0 A 2,1 0 0,1 0,1 A 2,1 0 0,1 -2,0 A 2,1 0 0,1 0,-1 A 2,1 0 0,1 2,0 Z"},
		{shape.NewLine(0, 0, 100, 100), "M 0,0 L 100,100"},
		{shape.NewPolyline(pt(0, 100), pt(50, 25), pt(50, 75), pt(100, 0)),
			"M 0,100 L 50,25 L 50,75 L 100,0"},
		{shape.NewPolygon(pt(0, 100), pt(50, 25), pt(50, 75), pt(100, 0)),
			"M 0,100 L 50,25 L 50,75 L 100,0 Z"},
	}
	for _, c := range cases {
		t.Run(c.s.String(), func(t *testing.T) {
			got := shape.PathData(c.s)
			if got != c.want {
				t.Errorf("got  %q\nwant %q", got, c.want)
			}
			back, err := svgpath.Parse(got)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(shape.Outline(c.s)) {
				t.Errorf("round trip gave %v", back)
			}
		})
	}
}

func TestCircleOutline(t *testing.T) {
	var c shape.Shape = shape.NewCircle(0, 0, 1)

	c = apply(t, c, "scale(2,1)")
	want := "M 2,0 A 2,1 0 0,1 0,1 A 2,1 0 0,1 -2,0 A 2,1 0 0,1 0,-1 A 2,1 0 0,1 2,0 Z"
	if got := shape.PathData(c); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	c = apply(t, c, "scale(0.5,1)")
	want = "M 1,0 A 1,1 0 0,1 0,1 A 1,1 0 0,1 -1,0 A 1,1 0 0,1 0,-1 A 1,1 0 0,1 1,0 Z"
	if got := shape.PathData(c); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	c = shape.NewCircle(22.4, 33.33, 4)
	d := svgpath.MustParse("M26.4,33.33A4,4 0 0,1 22.4,37.33 A4,4 0 0,1 18.4,33.33 A4,4 0 0,1 22.4,29.33 A4,4 0 0,1 26.4,33.33Z")
	if !shape.Outline(c).Equal(d) {
		t.Errorf("got %s", shape.PathData(c))
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b shape.Shape
		want bool
	}{
		{"circle ellipse", shape.NewCircle(0, 0, 10), shape.NewEllipse(0, 0, 10, 10), true},
		{"circle path", shape.NewCircle(0, 0, 1), shape.ToPath(shape.NewCircle(0, 0, 1)), true},
		{"rect path", shape.NewRect(0, 0, 1, 1), shape.NewPath(svgpath.MustParse("M0,0h1v1h-1z")), true},
		{"rect default", shape.NewRoundedRect(50, 51, 20, 10, 4, 2), shape.NewRect(0, 0, 1, 1), false},
		{"line polyline", shape.NewLine(0, 0, 1, 1), shape.NewPolyline(pt(0, 0), pt(1, 1)), true},
		{"polyline path", shape.NewPolyline(pt(0, 0), pt(1, 1)), shape.NewPath(svgpath.MustParse("M0,0L1,1")), true},
		{"polygon path", shape.NewPolygon(pt(0, 0), pt(1, 1)), shape.NewPath(svgpath.MustParse("M0,0L1,1z")), true},
		{"polyline polygon", shape.NewPolyline(pt(0, 0), pt(1, 1)), shape.NewPolygon(pt(0, 0), pt(1, 1)), false},
		{"empty polygon", shape.NewPolygon(), shape.NewPolygon(pt(0, 0), pt(1, 1)), false},
		{"stroke paint",
			shape.NewCircle(0, 0, 1),
			shape.WithStyle(shape.NewCircle(0, 0, 1), shape.Style{Stroke: "red"}), false},
		{"fill paint",
			shape.NewCircle(0, 0, 1),
			shape.WithStyle(shape.NewCircle(0, 0, 1), shape.Style{Fill: "red"}), false},
		{"unstroked width",
			shape.WithStyle(shape.NewCircle(0, 0, 1), shape.Style{StrokeWidth: 3}),
			shape.NewCircle(0, 0, 1), true},
		{"stroked width",
			shape.WithStyle(shape.NewCircle(0, 0, 1), shape.Style{Stroke: "red", StrokeWidth: 3}),
			shape.WithStyle(shape.NewCircle(0, 0, 1), shape.Style{Stroke: "red"}), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := shape.Equal(c.a, c.b); got != c.want {
				t.Errorf("Equal(%s, %s) = %t", c.a, c.b, got)
			}
			if got := shape.Equal(c.b, c.a); got != c.want {
				t.Errorf("Equal(%s, %s) = %t", c.b, c.a, got)
			}
		})
	}
}

func TestEqualTransformed(t *testing.T) {
	cases := []struct {
		name  string
		plain shape.Shape
		small shape.Shape
	}{
		{"circle", shape.NewCircle(0, 0, 2), shape.NewCircle(0, 0, 1)},
		{"rect", shape.NewRect(0, 0, 2, 2), shape.NewRect(0, 0, 1, 1)},
		{"rounded rect", shape.NewRoundedRect(0, 0, 2, 2, 1, 1), shape.NewRoundedRect(0, 0, 1, 1, 0.5, 0.5)},
		{"line", shape.NewLine(0, 0, 2, 2), shape.NewLine(0, 0, 1, 1)},
		{"polyline", shape.NewPolyline(pt(0, 0), pt(2, 2)), shape.NewPolyline(pt(0, 0), pt(1, 1))},
		{"closed polyline",
			shape.NewPath(*(&svgpath.Path{}).Append(shape.Outline(shape.NewPolyline(pt(0, 0), pt(2, 2)))).Close()),
			shape.NewPolygon(pt(0, 0), pt(1, 1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scaled := apply(t, nonScaling(c.small), "scale(2)")
			plain := shape.WithStyle(c.plain, shape.Style{NonScalingStroke: true})
			if !shape.Equal(plain, scaled) {
				t.Errorf("%s != %s", plain, scaled)
			}
			reified := shape.Reify(scaled)
			if !shape.Equal(plain, reified) {
				t.Errorf("%s != %s", plain, reified)
			}
		})
	}

	a := shape.NewPolyline(pt(0, 0), pt(2, 2))
	b := apply(t, shape.NewPolygon(pt(0, 0), pt(1, 1)), "scale(2)")
	if shape.Equal(a, b) {
		t.Error("polyline equals polygon")
	}
}

func TestPathPlusShape(t *testing.T) {
	p := svgpath.MustParse("M 0,0 z")
	p.Append(shape.Outline(shape.NewRect(0, 0, 1, 1)))
	if want := svgpath.MustParse("M0,0zM0,0h1v1h-1z"); !p.Equal(want) {
		t.Errorf("got %v", p)
	}
}

func TestBBox(t *testing.T) {
	cases := []struct {
		s          shape.Shape
		local, all rect.Rect
	}{
		{shape.NewRect(0, 0, 1, 1),
			rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}, rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}},
		{shape.NewCircle(0, 0, 1),
			rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}, rect.Rect{LLx: -20, LLy: -20, URx: 20, URy: 20}},
		{shape.NewEllipse(0, 0, 1, 1),
			rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}, rect.Rect{LLx: -20, LLy: -20, URx: 20, URy: 20}},
		{shape.NewPolygon(pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 0), pt(0, 0)),
			rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}, rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}},
		{shape.NewPolyline(pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 0), pt(0, 0)),
			rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}, rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}},
		{shape.NewLine(0, 0, 1, 1),
			rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}, rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}},
	}
	for _, c := range cases {
		t.Run(c.s.String(), func(t *testing.T) {
			s := apply(t, c.s, "scale(20)")
			local, ok := shape.BBox(s, false)
			if !ok || !rectNear(local, c.local) {
				t.Errorf("local bbox %v %t, want %v", local, ok, c.local)
			}
			all, ok := shape.BBox(s, true)
			if !ok || !rectNear(all, c.all) {
				t.Errorf("transformed bbox %v %t, want %v", all, ok, c.all)
			}
		})
	}

	for _, s := range []shape.Shape{shape.NewPolygon(), shape.NewPolyline()} {
		s = apply(t, s, "scale(20)")
		if _, ok := shape.BBox(s, false); ok {
			t.Errorf("%s has a local bbox", s)
		}
		if _, ok := shape.BBox(s, true); ok {
			t.Errorf("%s has a bbox", s)
		}
	}
}

func TestDegenerate(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewRect(0, 0, 0, 100),
		shape.NewRect(0, 0, 100, 0),
		shape.NewRect(0, 0, -5, 10),
		shape.NewCircle(0, 0, 0),
		shape.NewEllipse(0, 0, 0, 100),
		shape.NewEllipse(0, 0, 100, 0),
		shape.NewPolygon(shape.ParsePoints("")...),
		shape.NewPolyline(),
	}
	for _, s := range shapes {
		if d := shape.PathData(s); d != "" {
			t.Errorf("%s: path data %q", s, d)
		}
		if _, ok := shape.BBox(s, true); ok {
			t.Errorf("%s: has a bbox", s)
		}
		if l := shape.Length(s); l != 0 {
			t.Errorf("%s: length %g", s, l)
		}
	}
}

func TestRectRotation(t *testing.T) {
	r := shape.NewRect(10, 10, 8, 4)
	a := shape.PathData(r)
	if b := svgpath.MustParse(a).String(); a != b {
		t.Errorf("%q != %q", a, b)
	}

	m := transform.MustParse("rotate(0.5turn)")
	a = shape.PathData(shape.Apply(shape.NewPath(svgpath.MustParse(shape.PathData(r))), m))
	if b := shape.PathData(shape.Apply(r, m)); a != b {
		t.Errorf("%q != %q", a, b)
	}
}

func TestRectStrict(t *testing.T) {
	attrs := shape.Attributes{
		"rx":     "-4",
		"x":      "50",
		"y":      "51",
		"width":  "20",
		"height": "10",
	}
	s, err := shape.FromAttributes("rect", attrs)
	if err != nil {
		t.Fatal(err)
	}
	plain := shape.NewRect(50, 51, 20, 10)
	if !shape.Equal(s, plain) {
		t.Errorf("%s != %s", s, plain)
	}

	scooped := s.(shape.Rect)
	scooped.NonStrict = true
	if shape.Equal(scooped, plain) {
		t.Errorf("scooped rect equals %s", plain)
	}
	bbox, ok := shape.BBox(scooped, true)
	if !ok || !rectNear(bbox, rect.Rect{LLx: 50, LLy: 51, URx: 70, URy: 61}) {
		t.Errorf("scooped bbox %v", bbox)
	}
	if l := shape.Length(scooped); l <= 0 || l >= 60 {
		t.Errorf("scooped length %g", l)
	}

	// with mixed signs, the corners are scooped with the absolute radii
	mixed := shape.NewRoundedRect(50, 51, 20, 10, -4, 2)
	mixed.NonStrict = true
	both := shape.NewRoundedRect(50, 51, 20, 10, -4, -2)
	both.NonStrict = true
	if !shape.Equal(mixed, both) {
		t.Errorf("%s != %s", mixed, both)
	}
	mixed.RX, mixed.RY = 4, -2
	if !shape.Equal(mixed, both) {
		t.Errorf("%s != %s", mixed, both)
	}
	rounded := shape.NewRoundedRect(50, 51, 20, 10, 4, 2)
	if shape.Equal(mixed, rounded) {
		t.Errorf("scooped rect equals %s", rounded)
	}

	attrs["ry"] = "4"
	s, err = shape.FromAttributes("rect", attrs)
	if err != nil {
		t.Fatal(err)
	}
	if !shape.Equal(s, plain) {
		t.Errorf("%s != %s", s, plain)
	}
}

func TestLength(t *testing.T) {
	cases := []struct {
		s    shape.Shape
		want float64
	}{
		{shape.NewRect(0, 0, 10, 10), 40},
		{shape.NewCircle(5, 5, 1), 2 * math.Pi},
		{shape.NewLine(0, 0, 3, 4), 5},
		{shape.NewPolygon(pt(0, 0), pt(3, 0), pt(3, 4)), 12},
		{shape.NewRoundedRect(0, 0, 10, 10, 5, 5), 10 * math.Pi},
	}
	for _, c := range cases {
		if got := shape.Length(c.s); math.Abs(got-c.want) > 1e-3 {
			t.Errorf("%s: length %g, want %g", c.s, got, c.want)
		}
	}
}

func TestPoints(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewRect(10, 20, 300, 340),
		shape.NewCircle(10, 10, 5),
		shape.NewEllipse(50, 50, 30, 20),
		shape.NewPolygon(pt(10, 10), pt(20, 30), pt(50, 20)),
		shape.NewPolyline(pt(10, 10), pt(20, 30), pt(50, 20), pt(100, 120)),
	}
	const n = 1000
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / (n - 1)
	}
	for _, s := range shapes {
		pts := shape.Points(s, ts)
		for i, tt := range ts {
			if p := shape.PointAt(s, tt); p != pts[i] {
				t.Errorf("%s: PointAt(%g) = %v, Points gives %v", s, tt, p, pts[i])
				break
			}
		}
		if pts[0] != shape.Outline(s)[0].End() {
			t.Errorf("%s: starts at %v", s, pts[0])
		}
	}
}

func TestString(t *testing.T) {
	red := shape.Style{Fill: "red"}
	cases := []struct {
		s    shape.Shape
		want string
	}{
		{shape.NewRect(100, 100, 500, 500), "Rect(x=100, y=100, width=500, height=500)"},
		{shape.WithStyle(shape.NewRect(0, 0, 1, 1), red), "Rect(x=0, y=0, width=1, height=1, fill='red')"},
		{shape.WithStyle(shape.NewCircle(0, 0, 1), red), "Circle(cx=0, cy=0, r=1, fill='red')"},
		{shape.WithStyle(shape.NewEllipse(0, 0, 1, 1), red), "Ellipse(cx=0, cy=0, r=1, fill='red')"},
		{shape.NewEllipse(1, 2, 3, 4), "Ellipse(cx=1, cy=2, rx=3, ry=4)"},
		{shape.WithStyle(shape.NewLine(0, 0, 0, 0), red), "SimpleLine(x1=0, y1=0, x2=0, y2=0, fill='red')"},
		{shape.WithStyle(shape.NewPolygon(), red), "Polygon(points='', fill='red')"},
		{shape.WithStyle(shape.NewPolyline(), red), "Polyline(points='', fill='red')"},
		{shape.NewPolyline(pt(0, 0), pt(1.5, 2)), "Polyline(points='0,0 1.5,2')"},
		{shape.WithStyle(shape.NewPath(nil), red), "Path(fill='red')"},
		{shape.Apply(shape.NewRect(100, 100, 500, 500), transform.Scale(2, 2)),
			"Rect(x=100, y=100, width=500, height=500, transform='scale(2)')"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

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
	"testing"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/svggeom/transform"
)

func TestData(t *testing.T) {
	p := MustParse("M0,0 L10,0 Q15,5 10,10 C5,15 0,15 0,10 Z")
	d := p.Data()

	var cmds []path.Command
	for cmd := range d.Iter() {
		cmds = append(cmds, cmd)
	}
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("got %v, want %v", cmds, want)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d is %v, want %v", i, cmds[i], want[i])
		}
	}

	back := FromData(d)
	if !back.Equal(p) {
		t.Errorf("round trip gave %v", back)
	}
}

func TestDataArc(t *testing.T) {
	p := MustParse("M1,0 A1,1 0 1,1 0,-1")
	back := FromData(p.Data())
	if len(back) != 4 {
		t.Fatalf("got %d segments, want a move and three cubics", len(back))
	}
	if back[len(back)-1].End() != pt(0, -1) {
		t.Errorf("end point %v", back[len(back)-1].End())
	}

	line := MustParse("M0,0 A0,5 0 0,1 10,0")
	back = FromData(line.Data())
	if !back.Equal(MustParse("M0,0 L10,0")) {
		t.Errorf("flat arc gives %v", back)
	}
}

func TestDataTransform(t *testing.T) {
	p := MustParse("M0,0 C1,2 3,4 5,6 L7,8")
	m := transform.MustParse("translate(1,2) rotate(30) scale(2)")

	a := FromData(p.Transform(m).Data())
	b := FromData(p.Data()).Transform(m)
	if !a.Equal(b) {
		t.Errorf("%v != %v", a, b)
	}
}

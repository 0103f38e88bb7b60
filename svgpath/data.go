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
	"seehuhn.de/go/geom/path"
)

// Data converts the path to the command list used by PDF content streams.
// Arcs are approximated by cubic Bézier curves.
func (p Path) Data() *path.Data {
	d := &path.Data{}
	for _, seg := range p {
		switch s := seg.(type) {
		case Move:
			d.MoveTo(s.To)
		case Line:
			d.LineTo(s.To)
		case Quad:
			d.QuadTo(s.Control, s.To)
		case Cubic:
			d.CubeTo(s.Control1, s.Control2, s.To)
		case Arc:
			if s.IsLine() {
				if s.From != s.To {
					d.LineTo(s.To)
				}
				continue
			}
			for _, c := range s.Cubics() {
				d.CubeTo(c.Control1, c.Control2, c.To)
			}
		case Close:
			d.Close()
		}
	}
	return d
}

// FromData converts a PDF-style command list to a path.
func FromData(d *path.Data) Path {
	res := &Path{}
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			res.MoveTo(pts[0])
		case path.CmdLineTo:
			res.LineTo(pts[0])
		case path.CmdQuadTo:
			res.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			res.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			res.Close()
		}
	}
	return *res
}


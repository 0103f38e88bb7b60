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
	"seehuhn.de/go/svggeom/svgpath"
)

// Path is an SVG path element.
type Path struct {
	Data svgpath.Path

	Common
}

// NewPath returns a path shape with the given segments.
func NewPath(d svgpath.Path) Path {
	return Path{Data: d}
}

// ParsePath returns a path shape for the given path data.  A malformed
// tail of the data is dropped and reported as an error.
func ParsePath(d string) (Path, error) {
	p, err := svgpath.Parse(d)
	return Path{Data: p}, err
}

// ToPath converts any shape into a path shape with the same outline,
// pending transformation and style.
func ToPath(s Shape) Path {
	if p, ok := s.(Path); ok {
		return p
	}
	return Path{Data: s.Geometry(), Common: s.common()}
}

func (p Path) withCommon(c Common) Shape {
	p.Common = c
	return p
}

// Geometry implements the [Shape] interface.
func (p Path) Geometry() svgpath.Path {
	return p.Data
}

func (p Path) String() string {
	b := newRepr("Path")
	if len(p.Data) > 0 {
		b.str("d", p.Data.String())
	}
	b.common(p.Common)
	return b.String()
}

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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svggeom/internal/scan"
)

// Viewbox is the user-space rectangle given by a viewBox attribute.
type Viewbox struct {
	MinX, MinY    float64
	Width, Height float64
}

// ErrBadViewbox is returned by [ParseViewbox] and [ParseAspectRatio] for
// malformed attribute values.
var ErrBadViewbox = errors.New("transform: invalid viewBox")

// ParseViewbox parses the four numbers of a viewBox attribute.  Width and
// height must be positive.
func ParseViewbox(s string) (Viewbox, error) {
	b := []byte(s)
	nums, n := scan.Numbers(b)
	n += scan.SkipSeparators(b[n:])
	if len(nums) != 4 || n != len(b) {
		return Viewbox{}, fmt.Errorf("%w: %q", ErrBadViewbox, s)
	}
	vb := Viewbox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}
	if !(vb.Width > 0 && vb.Height > 0) {
		return Viewbox{}, fmt.Errorf("%w: non-positive size in %q", ErrBadViewbox, s)
	}
	return vb, nil
}

// Align selects how the viewbox is positioned along one axis when the
// aspect ratio is preserved.
type Align uint8

// The zero value centres the viewbox, which is the SVG default.
const (
	AlignMid Align = iota
	AlignMin
	AlignMax
)

func (a Align) offset(free float64) float64 {
	switch a {
	case AlignMin:
		return 0
	case AlignMax:
		return free
	}
	return free / 2
}

// AspectRatio is the value of a preserveAspectRatio attribute.
// The zero value is "xMidYMid meet".
type AspectRatio struct {
	None  bool  // scale the axes independently ("none")
	X, Y  Align // position of the viewbox inside the viewport
	Slice bool  // cover the viewport instead of fitting inside it
}

var alignNames = map[string]Align{
	"Min": AlignMin,
	"Mid": AlignMid,
	"Max": AlignMax,
}

// ParseAspectRatio parses a preserveAspectRatio attribute like
// "xMaxYMid slice".  The empty string gives the default.
func ParseAspectRatio(s string) (AspectRatio, error) {
	var ar AspectRatio
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ar, nil
	}
	if len(fields) > 2 {
		return ar, fmt.Errorf("%w: preserveAspectRatio %q", ErrBadViewbox, s)
	}

	align := fields[0]
	if align == "none" {
		ar.None = true
	} else {
		if len(align) != 8 || align[0] != 'x' || align[4] != 'Y' {
			return AspectRatio{}, fmt.Errorf("%w: alignment %q", ErrBadViewbox, align)
		}
		x, okX := alignNames[align[1:4]]
		y, okY := alignNames[align[5:8]]
		if !okX || !okY {
			return AspectRatio{}, fmt.Errorf("%w: alignment %q", ErrBadViewbox, align)
		}
		ar.X, ar.Y = x, y
	}

	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			ar.Slice = true
		default:
			return AspectRatio{}, fmt.Errorf("%w: %q is neither meet nor slice", ErrBadViewbox, fields[1])
		}
	}
	return ar, nil
}

// Transform returns the matrix which maps the viewbox into the given
// viewport.
func (vb Viewbox) Transform(viewport rect.Rect, ar AspectRatio) Matrix {
	vpW := viewport.URx - viewport.LLx
	vpH := viewport.URy - viewport.LLy
	sx := vpW / vb.Width
	sy := vpH / vb.Height

	tx := viewport.LLx
	ty := viewport.LLy
	if !ar.None {
		s := min(sx, sy)
		if ar.Slice {
			s = max(sx, sy)
		}
		sx, sy = s, s
		tx += ar.X.offset(vpW - vb.Width*s)
		ty += ar.Y.offset(vpH - vb.Height*s)
	}
	return Translate(tx-vb.MinX*sx, ty-vb.MinY*sy).Mul(Scale(sx, sy))
}

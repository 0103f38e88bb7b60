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
	"fmt"
	"math"

	"seehuhn.de/go/svggeom/angle"
)

// Tolerance is the relative accuracy used by the predicates of
// [Decomposition].
const Tolerance = 1e-9

// Decomposition describes a matrix as the product
//
//	Translate(TX, TY) · Rotate(Rotation) · Scale(ScaleX, ScaleY) · SkewX(Skew)
//
// ScaleX is never negative.  A reflection shows up as a negative ScaleY.
type Decomposition struct {
	TX, TY   float64
	Rotation angle.Angle
	ScaleX   float64
	ScaleY   float64
	Skew     angle.Angle
}

// Decompose splits m into translation, rotation, scale and skew.
//
// The rotation is the direction of the image of the x-axis.  For a matrix
// which maps the x-axis to zero, the rotation is taken from the image of
// the y-axis instead, and ScaleX is zero.
func (m Matrix) Decompose() Decomposition {
	a, b, c, d := m[0], m[1], m[2], m[3]
	res := Decomposition{TX: m[4], TY: m[5]}

	sx := math.Hypot(a, b)
	if sx == 0 {
		res.ScaleY = math.Hypot(c, d)
		if res.ScaleY > 0 {
			res.Rotation = angle.Angle(math.Atan2(-c, d))
		}
		return res
	}

	cos, sin := a/sx, b/sx
	res.Rotation = angle.Angle(math.Atan2(b, a))
	res.ScaleX = sx
	res.ScaleY = (a*d - b*c) / sx
	res.Skew = angle.Angle(math.Atan((c*cos + d*sin) / sx))
	return res
}

// Compose returns the matrix described by the decomposition.
func (dc Decomposition) Compose() Matrix {
	return Translate(dc.TX, dc.TY).
		Mul(Rotate(dc.Rotation)).
		Mul(Scale(dc.ScaleX, dc.ScaleY)).
		Mul(SkewX(dc.Skew))
}

// HasSkew reports whether the transformation fails to preserve right
// angles.
func (dc Decomposition) HasSkew() bool {
	return math.Abs(math.Tan(float64(dc.Skew))) > Tolerance
}

// IsFlip reports whether the transformation reverses orientation.
func (dc Decomposition) IsFlip() bool {
	return dc.ScaleY < 0
}

// IsUniformScale reports whether the transformation scales all directions
// by the same factor.  Rotations and reflections are allowed.
func (dc Decomposition) IsUniformScale() bool {
	if dc.HasSkew() {
		return false
	}
	sx, sy := math.Abs(dc.ScaleX), math.Abs(dc.ScaleY)
	return math.Abs(sx-sy) <= Tolerance*max(sx, sy)
}

// IsTranslation reports whether the linear part of the transformation is
// the identity, up to rounding errors.
func (dc Decomposition) IsTranslation() bool {
	return !dc.HasSkew() &&
		math.Abs(dc.ScaleX-1) <= Tolerance &&
		math.Abs(dc.ScaleY-1) <= Tolerance &&
		dc.Rotation.Parallel(0, Tolerance)
}

// IsSingular reports whether the transformation collapses the plane onto
// a line or a point.
func (dc Decomposition) IsSingular() bool {
	return dc.ScaleX == 0 || dc.ScaleY == 0
}

func (dc Decomposition) String() string {
	return fmt.Sprintf("translate(%g, %g) rotate(%g) scale(%g, %g) skewX(%g)",
		dc.TX, dc.TY, dc.Rotation.Degrees(), dc.ScaleX, dc.ScaleY, dc.Skew.Degrees())
}

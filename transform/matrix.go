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

// Package transform implements the affine coordinate transformations of
// SVG documents.
//
// A Matrix holds the six coefficients [a b c d e f] of the transformation
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// which is the order used by the SVG matrix() function as well as by PDF
// content streams.
package transform

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
)

// Matrix is a 2D affine transformation.
type Matrix [6]float64

// Identity is the transformation which leaves every point unchanged.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// ErrSingular is returned when a transformation with zero determinant
// would need to be inverted.
var ErrSingular = errors.New("transform: singular matrix")

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a scaling by sx horizontally and sy vertically.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation by a around the origin.  In the y-down SVG
// coordinate system, positive angles turn clockwise on screen.
func Rotate(a angle.Angle) Matrix {
	sin, cos := a.Sincos()
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a rotation by a around the point (cx, cy).
func RotateAbout(a angle.Angle, cx, cy float64) Matrix {
	return Translate(cx, cy).Mul(Rotate(a)).Mul(Translate(-cx, -cy))
}

// SkewX returns a shear parallel to the x-axis.
func SkewX(a angle.Angle) Matrix {
	return Matrix{1, 0, math.Tan(float64(a)), 1, 0, 0}
}

// SkewY returns a shear parallel to the y-axis.
func SkewY(a angle.Angle) Matrix {
	return Matrix{1, math.Tan(float64(a)), 0, 1, 0, 0}
}

// Mul returns the product m·n.  The resulting transformation applies n
// first and then m, so that Translate(5, 0).Mul(Scale(2, 2)) scales
// before translating.  This is the composition order of an SVG transform
// list read from left to right.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse transformation.
// If m is singular, ErrSingular is returned.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, ErrSingular
	}
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, nil
}

// Apply transforms the point p.
func (m Matrix) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyVector applies only the linear part of m, as appropriate for
// direction vectors and relative coordinates.
func (m Matrix) ApplyVector(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// InverseApply returns the point which m maps to p.
// If m is singular, ErrSingular is returned.
func (m Matrix) InverseApply(p vec.Vec2) (vec.Vec2, error) {
	inv, err := m.Invert()
	if err != nil {
		return vec.Vec2{}, err
	}
	return inv.Apply(p), nil
}

// Linear returns m with the translation part removed.
func (m Matrix) Linear() Matrix {
	return Matrix{m[0], m[1], m[2], m[3], 0, 0}
}

// IsIdentity reports whether m is exactly the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Equal reports whether all coefficients of m and n differ by at most tol.
func (m Matrix) Equal(n Matrix, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > tol {
			return false
		}
	}
	return true
}

// String returns the matrix in the form "matrix(a b c d e f)".
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteString("matrix(")
	for i, x := range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(x))
	}
	b.WriteByte(')')
	return b.String()
}

// SVG returns the shortest transform attribute value which describes m.
// The identity is represented by the empty string.
func (m Matrix) SVG() string {
	switch {
	case m.IsIdentity():
		return ""
	case m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1:
		if m[5] == 0 {
			return "translate(" + formatNumber(m[4]) + ")"
		}
		return "translate(" + formatNumber(m[4]) + " " + formatNumber(m[5]) + ")"
	case m[1] == 0 && m[2] == 0 && m[4] == 0 && m[5] == 0:
		if m[0] == m[3] {
			return "scale(" + formatNumber(m[0]) + ")"
		}
		return "scale(" + formatNumber(m[0]) + " " + formatNumber(m[3]) + ")"
	}
	return m.String()
}

// PDF returns m as a PDF transformation matrix.
func (m Matrix) PDF() matrix.Matrix {
	return matrix.Matrix(m)
}

// FromPDF converts a PDF transformation matrix.
func FromPDF(m matrix.Matrix) Matrix {
	return Matrix(m)
}

func formatNumber(x float64) string {
	if x == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

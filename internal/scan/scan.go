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

// Package scan implements the relaxed number grammar shared by SVG path
// data, point lists and transform lists.
//
// Numbers may follow each other without a separator whenever a sign or a
// second decimal point unambiguously starts the next number, so "1.5.5"
// scans as 1.5 and .5, and "1-2" scans as 1 and -2.
package scan

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// IsSeparator reports whether c is a comma or SVG white space.
func IsSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

// IsSpace reports whether c is SVG white space.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

// SkipSeparators returns the number of leading commas and white space
// characters in b.
func SkipSeparators(b []byte) int {
	i := 0
	for i < len(b) && IsSeparator(b[i]) {
		i++
	}
	return i
}

// SkipSpace returns the number of leading white space characters in b.
func SkipSpace(b []byte) int {
	i := 0
	for i < len(b) && IsSpace(b[i]) {
		i++
	}
	return i
}

// Number reads a number after optional separators at the start of b.
// It returns the value and the number of bytes consumed, including the
// separators.  If no number is present, n is zero.  Literals which
// overflow float64 count as missing; a zero mantissa always gives zero.
func Number(b []byte) (x float64, n int) {
	i := SkipSeparators(b)
	if i >= len(b) || !startsNumber(b[i]) {
		return 0, 0
	}
	x, k := strconv.ParseFloat(b[i:])
	if k == 0 || math.IsInf(x, 0) {
		return 0, 0
	}
	if math.IsNaN(x) {
		// 0 * 10^k with k beyond the float64 range
		x = 0
	}
	return x, i + k
}

// Flag reads a single-digit arc flag ("0" or "1") after optional
// separators.  Flags need no separator after them, so "01" holds two
// flags.  If no flag is present, n is zero.
func Flag(b []byte) (f bool, n int) {
	i := SkipSeparators(b)
	if i >= len(b) {
		return false, 0
	}
	switch b[i] {
	case '0':
		return false, i + 1
	case '1':
		return true, i + 1
	}
	return false, 0
}

// Numbers reads numbers from the start of b until something other than a
// number or a separator is found.  It returns the numbers and the number
// of bytes consumed.
func Numbers(b []byte) ([]float64, int) {
	var res []float64
	pos := 0
	for {
		x, n := Number(b[pos:])
		if n == 0 {
			break
		}
		res = append(res, x)
		pos += n
	}
	return res, pos
}

// Pairs reads the coordinate list of a points attribute.  The numbers are
// paired in the order they appear, regardless of how the separators group
// them, and a single unpaired number at the end is discarded.  The second
// return value is the number of bytes consumed, including trailing
// separators.  It is less than len(s) if the list has a malformed tail.
func Pairs(s string) ([][2]float64, int) {
	b := []byte(s)
	nums, n := Numbers(b)
	n += SkipSeparators(b[n:])
	res := make([][2]float64, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		res = append(res, [2]float64{nums[i], nums[i+1]})
	}
	return res, n
}

func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svggeom/angle"
	"seehuhn.de/go/svggeom/internal/scan"
)

// SyntaxError reports malformed path data.  The path returned together
// with the error contains all commands before Offset.
type SyntaxError struct {
	Offset int // byte offset of the first command which was dropped
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d", e.Msg, e.Offset)
}

// argCount gives the number of arguments of each path command.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6,
	'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

// Parse parses SVG path data, starting at the origin.
//
// Parsing never fails completely.  If the data is malformed, Parse returns
// the path up to the last complete command, together with a
// *SyntaxError describing the first problem.
func Parse(d string) (Path, error) {
	return ParseFrom(d, vec.Vec2{})
}

// MustParse is like [Parse] but panics if the path data is malformed.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseFrom parses SVG path data, using start as the initial current
// point.  Relative coordinates at the beginning of the data refer to
// start.
func ParseFrom(d string, start vec.Vec2) (Path, error) {
	p := &parser{
		b:        []byte(d),
		cur:      start,
		subStart: start,
	}
	err := p.run()
	return p.res, err
}

type parser struct {
	b   []byte
	pos int
	res Path

	cur      vec.Vec2
	subStart vec.Vec2
	prev     byte     // upper-case previous command, 0 at the start
	ctrl     vec.Vec2 // last control point, for S and T
	args     [7]float64
}

func (p *parser) run() error {
	var cmd byte
	for {
		p.pos += scan.SkipSeparators(p.b[p.pos:])
		if p.pos >= len(p.b) {
			return nil
		}
		start := p.pos

		c := p.b[p.pos]
		if _, isCmd := argCount[upper(c)]; isCmd {
			cmd = c
			p.pos++
		} else if cmd == 0 || upper(cmd) == 'Z' {
			return &SyntaxError{Offset: start, Msg: fmt.Sprintf("unexpected %q", c)}
		} else {
			// implicit repetition of the previous command
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}

		if !p.readArgs(upper(cmd)) {
			return &SyntaxError{Offset: start, Msg: fmt.Sprintf("incomplete %c command", cmd)}
		}
		p.apply(cmd)
	}
}

// readArgs reads the arguments of one command into p.args.
func (p *parser) readArgs(cmd byte) bool {
	n := argCount[cmd]
	for i := range n {
		var k int
		if cmd == 'A' && (i == 3 || i == 4) {
			var f bool
			f, k = scan.Flag(p.b[p.pos:])
			p.args[i] = 0
			if f {
				p.args[i] = 1
			}
		} else {
			p.args[i], k = scan.Number(p.b[p.pos:])
		}
		if k == 0 {
			return false
		}
		p.pos += k
	}
	return true
}

func (p *parser) apply(cmd byte) {
	rel := cmd >= 'a'
	ucmd := upper(cmd)
	a := p.args

	point := func(x, y float64) vec.Vec2 {
		if rel {
			return vec.Vec2{X: p.cur.X + x, Y: p.cur.Y + y}
		}
		return vec.Vec2{X: x, Y: y}
	}

	if ucmd != 'M' && len(p.res) == 0 {
		p.res = append(p.res, Move{From: p.cur, To: p.cur})
	}

	var seg Segment
	switch ucmd {
	case 'M':
		to := point(a[0], a[1])
		seg = Move{From: p.cur, To: to}
		p.subStart = to
	case 'L':
		seg = Line{From: p.cur, To: point(a[0], a[1])}
	case 'H':
		x := a[0]
		if rel {
			x += p.cur.X
		}
		seg = Line{From: p.cur, To: vec.Vec2{X: x, Y: p.cur.Y}}
	case 'V':
		y := a[0]
		if rel {
			y += p.cur.Y
		}
		seg = Line{From: p.cur, To: vec.Vec2{X: p.cur.X, Y: y}}
	case 'C':
		c1 := point(a[0], a[1])
		c2 := point(a[2], a[3])
		seg = Cubic{From: p.cur, Control1: c1, Control2: c2, To: point(a[4], a[5])}
		p.ctrl = c2
	case 'S':
		c1 := p.cur
		if p.prev == 'C' || p.prev == 'S' {
			c1 = p.cur.Mul(2).Sub(p.ctrl)
		}
		c2 := point(a[0], a[1])
		seg = Cubic{From: p.cur, Control1: c1, Control2: c2, To: point(a[2], a[3])}
		p.ctrl = c2
	case 'Q':
		c := point(a[0], a[1])
		seg = Quad{From: p.cur, Control: c, To: point(a[2], a[3])}
		p.ctrl = c
	case 'T':
		c := p.cur
		if p.prev == 'Q' || p.prev == 'T' {
			c = p.cur.Mul(2).Sub(p.ctrl)
		}
		seg = Quad{From: p.cur, Control: c, To: point(a[0], a[1])}
		p.ctrl = c
	case 'A':
		seg = Arc{
			From:     p.cur,
			To:       point(a[5], a[6]),
			RX:       a[0],
			RY:       a[1],
			Rotation: angle.Degrees(a[2]),
			LargeArc: a[3] != 0,
			Sweep:    a[4] != 0,
		}
	case 'Z':
		seg = Close{From: p.cur, To: p.subStart}
	}

	p.res = append(p.res, seg)
	p.cur = seg.End()
	p.prev = ucmd
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// seehuhn.de/go/glyphraster - a glyph outline rasterizer
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

package glyphraster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
)

// Outline describes one glyph as a set of closed contours in font units.
// The last point of each contour implicitly connects back to the first.
// Outlines are read-only for this package.
type Outline struct {
	// Contours are the closed boundary loops of the glyph, with each point
	// tagged as on-curve or off-curve.
	Contours []glyf.Contour

	// Bounds is the bounding box of the outline in font units.
	Bounds funit.Rect16

	// UnitsPerEm is the number of font units per em.
	UnitsPerEm uint16
}

// segOp distinguishes the two segment kinds.
type segOp uint8

const (
	segLine segOp = iota
	segQuad
)

// segment is one explicit piece of a decoded contour: a straight line from
// p0 to p1, or a quadratic Bézier from p0 to p1 with control point ctrl.
// Segments are derived from contours on the fly and never persisted.
type segment struct {
	op           segOp
	p0, ctrl, p1 vec.Vec2
}

// decodeContour reconstructs the explicit segments of one closed contour and
// calls emit for each of them.  An empty contour yields no segments.
//
// Consecutive point pairs are classified as in the TrueType glyph format:
// on→on is a line, on→off→on is a quadratic curve with the off-curve point
// as control, and two consecutive off-curve points imply an unstored
// on-curve point at their arithmetic midpoint, splitting the stretch into
// two curves.  A contour starting with an off-curve point is rotated to the
// first on-curve point; if the contour has no on-curve point at all, the
// walk starts at the implied midpoint between the last and first point.
func decodeContour(c glyf.Contour, emit func(segment)) {
	n := len(c)
	if n == 0 {
		return
	}

	// find the starting on-curve point
	start := -1
	for i := range c {
		if c[i].OnCurve {
			start = i
			break
		}
	}

	var first vec.Vec2
	if start >= 0 {
		first = fpoint(c[start])
	} else {
		// all points are off-curve
		first = midpoint(fpoint(c[n-1]), fpoint(c[0]))
		start = n - 1 // walk visits indices start+1 … start+n, i.e. 0 … n-1
	}

	cur := first
	var ctrl vec.Vec2
	haveCtrl := false

	for k := 1; k <= n; k++ {
		idx := (start + k) % n
		if idx == start && c[start].OnCurve {
			break // wrapped around to the starting point
		}
		p := fpoint(c[idx])
		if c[idx].OnCurve {
			if haveCtrl {
				emit(segment{op: segQuad, p0: cur, ctrl: ctrl, p1: p})
				haveCtrl = false
			} else {
				emit(segment{op: segLine, p0: cur, p1: p})
			}
			cur = p
		} else {
			if haveCtrl {
				m := midpoint(ctrl, p)
				emit(segment{op: segQuad, p0: cur, ctrl: ctrl, p1: m})
				cur = m
			}
			ctrl = p
			haveCtrl = true
		}
	}

	// close the loop back to the starting point
	if haveCtrl {
		emit(segment{op: segQuad, p0: cur, ctrl: ctrl, p1: first})
	} else if cur != first {
		emit(segment{op: segLine, p0: cur, p1: first})
	}
}

// Path returns the decoded outline as a path in font units.  Each contour
// becomes one closed subpath of line and quadratic Bézier commands.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		buf := make([]vec.Vec2, 2)
		for _, c := range o.Contours {
			open := false
			stopped := false
			decodeContour(c, func(s segment) {
				if stopped {
					return
				}
				if !open {
					buf[0] = s.p0
					if !yield(path.CmdMoveTo, buf[:1]) {
						stopped = true
						return
					}
					open = true
				}
				switch s.op {
				case segLine:
					buf[0] = s.p1
					if !yield(path.CmdLineTo, buf[:1]) {
						stopped = true
					}
				case segQuad:
					buf[0] = s.ctrl
					buf[1] = s.p1
					if !yield(path.CmdQuadTo, buf[:2]) {
						stopped = true
					}
				}
			})
			if stopped {
				return
			}
			if open && !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// fpoint converts a font-unit point to a float vector.
func fpoint(p glyf.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// midpoint returns the arithmetic midpoint of a and b.
func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

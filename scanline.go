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

import "math"

// crossing records where an edge crosses a horizontal scanline and in which
// vertical direction the boundary runs there.  Crossings are produced per
// sub-scanline and consumed immediately by the span sweep.
type crossing struct {
	x       float64
	winding int
}

// appendCrossings appends the crossings of e with the horizontal line at y.
// A line edge contributes at most one crossing, a quadratic edge at most two.
func appendCrossings(dst []crossing, e *edge, y float64) []crossing {
	if y < e.yMin || y >= e.yMax {
		return dst
	}

	switch e.op {
	case segLine:
		x := e.p0.X + e.dxdy*(y-e.p0.Y)
		dst = append(dst, crossing{x: x, winding: e.winding})

	case segQuad:
		dst = appendQuadCrossings(dst, e, y)
	}
	return dst
}

// appendQuadCrossings solves for the parameter values where the edge's curve
// meets the scanline.  With Y(t) = (1-t)²y0 + 2(1-t)t·y1 + t²y2, setting
// Y(t) = y gives a·t² + b·t + c = 0 with
//
//	a = y0 - 2y1 + y2
//	b = 2(y1 - y0)
//	c = y0 - y
func appendQuadCrossings(dst []crossing, e *edge, y float64) []crossing {
	y0, y1, y2 := e.p0.Y, e.ctrl.Y, e.p1.Y
	a := y0 - 2*y1 + y2
	b := 2 * (y1 - y0)
	c := y0 - y

	if a > -quadraticEpsilon && a < quadraticEpsilon {
		// the curve is locally straight in y
		if b > -quadraticEpsilon && b < quadraticEpsilon {
			return dst
		}
		w := 1
		if b < 0 {
			w = -1
		}
		return appendQuadRoot(dst, e, y, -c/b, w)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)

	// The y-derivative 2a·t+b equals -sq at the first root and +sq at the
	// second, independent of the sign of a.  This fixes each crossing's
	// winding direction; for a double root (scanline tangent to the curve's
	// extremum) the two crossings cancel.
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	dst = appendQuadRoot(dst, e, y, t0, -1)
	dst = appendQuadRoot(dst, e, y, t1, +1)
	return dst
}

// appendQuadRoot validates one root of the scanline equation and appends the
// corresponding crossing.  Roots outside the parameter range belong to a
// neighbouring edge and are rejected.  A root at t=1 is kept when the
// scanline lies on the edge's lower extent: the successor edge's half-open
// range excludes that y, so rejecting the root there would lose the crossing.
func appendQuadRoot(dst []crossing, e *edge, y, t float64, winding int) []crossing {
	if t < 0 || t > 1 {
		return dst
	}
	if t == 1 && y != e.yMin {
		return dst
	}
	omt := 1 - t
	x := omt*omt*e.p0.X + 2*omt*t*e.ctrl.X + t*t*e.p1.X
	return append(dst, crossing{x: x, winding: winding})
}

// fillSpans sweeps the x-sorted crossings of one sub-scanline from left to
// right, maintaining the running winding sum.  Wherever the sum is non-zero
// the span up to the next crossing is inside the glyph, and every sample
// column whose center falls into the span scores one hit for its output
// pixel.  Sample column k covers the output pixel k/n and has its center at
// (k+0.5)/n.
func fillSpans(crossings []crossing, hits []uint32, n int) {
	nf := float64(n)
	numCols := len(hits) * n

	winding := 0
	for i := 0; i+1 < len(crossings); i++ {
		winding += crossings[i].winding
		if winding == 0 {
			continue
		}
		x0 := crossings[i].x
		x1 := crossings[i+1].x

		k := int(math.Ceil(x0*nf - 0.5))
		if k < 0 {
			k = 0
		}
		for ; k < numCols && float64(k)+0.5 < x1*nf; k++ {
			hits[k/n]++
		}
	}
}

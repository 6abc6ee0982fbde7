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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// edge is one scaled segment prepared for scanline intersection.  Edges are
// stored as values in a flat slice and scanned in full for each sub-scanline.
type edge struct {
	op           segOp
	p0, ctrl, p1 vec.Vec2 // bitmap-space coordinates

	// yMin, yMax is the half-open vertical extent [yMin, yMax) of the
	// segment.  The open upper bound keeps a vertex shared by two
	// consecutive edges from being counted twice.  For curves this is the
	// full extent including the interior extremum, not just the endpoints.
	yMin, yMax float64

	// winding is +1 if y increases along the segment's natural
	// parameterization and -1 otherwise.
	winding int

	// dxdy is (x1-x0)/(y1-y0), precomputed for line edges only.
	dxdy float64
}

// addEdge transforms s into bitmap space and appends the resulting edge.
// Horizontal segments (vertical extent below horizontalEdgeThreshold) never
// contribute a crossing and are dropped.
func (r *Rasterizer) addEdge(m matrix.Matrix, s segment) {
	p0 := applyMatrix(m, s.p0)
	p1 := applyMatrix(m, s.p1)

	e := edge{op: s.op, p0: p0, p1: p1}
	e.yMin = min(p0.Y, p1.Y)
	e.yMax = max(p0.Y, p1.Y)
	if p1.Y >= p0.Y {
		e.winding = 1
	} else {
		e.winding = -1
	}

	switch s.op {
	case segLine:
		dy := p1.Y - p0.Y
		if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
			return
		}
		e.dxdy = (p1.X - p0.X) / dy

	case segQuad:
		e.ctrl = applyMatrix(m, s.ctrl)

		// extend the vertical extent to the interior extremum, if any
		a := p0.Y - 2*e.ctrl.Y + p1.Y
		if a > quadraticEpsilon || a < -quadraticEpsilon {
			t := (p0.Y - e.ctrl.Y) / a
			if t > 0 && t < 1 {
				omt := 1 - t
				yExt := omt*omt*p0.Y + 2*omt*t*e.ctrl.Y + t*t*p1.Y
				e.yMin = min(e.yMin, yExt)
				e.yMax = max(e.yMax, yExt)
			}
		}
		if e.yMax-e.yMin < horizontalEdgeThreshold {
			return
		}
	}

	r.edges = append(r.edges, e)
}

// applyMatrix transforms v by the affine matrix m.
func applyMatrix(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

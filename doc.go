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

// Package glyphraster converts glyph outlines into anti-aliased coverage
// bitmaps.
//
// The input is a set of closed contours in font units, with points tagged as
// on-curve or off-curve in the usual TrueType manner.  The package
// reconstructs the line and quadratic Bézier segments of each contour,
// scales them to pixel space, and fills the enclosed region using the
// non-zero winding rule.  Anti-aliasing is done by supersampling: each
// output pixel is tested at N×N sub-positions and the coverage byte is the
// rounded average.
//
// The package does not parse font files, position glyphs, or talk to any
// graphics device.  Outlines typically come from a font parser such as
// seehuhn.de/go/sfnt; the resulting bitmaps are meant to be packed into an
// atlas or drawn directly by the caller.
package glyphraster

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'glyph.raster'
func tracer() tracing.Trace {
	return tracing.Select("glyph.raster")
}

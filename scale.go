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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// frame describes the bitmap geometry derived from a scaled outline: the
// padded pixel dimensions, the bearing offsets, and the transformation from
// font units to bitmap coordinates.  Bitmap space is y-down with the origin
// at the top-left pixel corner; font space is y-up with the origin on the
// baseline.
type frame struct {
	width, height      int
	bearingX, bearingY int

	// trfm maps font units to bitmap coordinates.  The vertical flip and
	// the padding offset are folded into the matrix, so the outline's
	// bounding box lands at [padding, width-padding) × [padding,
	// height-padding).
	trfm matrix.Matrix
}

// glyphFrame computes the bitmap geometry for rendering o at the given pixel
// height.  The second return value is false for whitespace glyphs (empty
// bounding box or no contours), which render as a zero-sized bitmap.
func glyphFrame(o *Outline, pixelHeight float64) (frame, bool) {
	if len(o.Contours) == 0 || o.UnitsPerEm == 0 ||
		o.Bounds.URx <= o.Bounds.LLx || o.Bounds.URy <= o.Bounds.LLy {
		return frame{}, false
	}

	scale := pixelHeight / float64(o.UnitsPerEm)

	xMin := float64(o.Bounds.LLx) * scale
	xMax := float64(o.Bounds.URx) * scale
	yMin := float64(o.Bounds.LLy) * scale
	yMax := float64(o.Bounds.URy) * scale

	left := math.Floor(xMin) - bitmapPadding
	top := math.Ceil(yMax) + bitmapPadding

	f := frame{
		width:    int(math.Ceil(xMax)-math.Floor(xMin)) + 2*bitmapPadding,
		height:   int(math.Ceil(yMax)-math.Floor(yMin)) + 2*bitmapPadding,
		bearingX: int(left),
		bearingY: int(top),
		trfm:     matrix.Matrix{scale, 0, 0, -scale, -left, top},
	}
	return f, true
}

// bitmapPadding is the margin, in pixels, added on each side of the scaled
// bounding box so that anti-aliased edge pixels are never clipped.
const bitmapPadding = 1

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
	"cmp"
	"errors"
	"slices"
)

// Options controls how an outline is rasterized.
type Options struct {
	// SupersampleLevel is the number of sub-samples per pixel axis.
	// A value of 1 produces binary (aliased) output; 4 is a typical
	// choice.  Must be at least 1.
	SupersampleLevel int
}

// Bitmap is a single-channel coverage bitmap.  Each byte gives the fraction
// of the pixel covered by the glyph, from 0 (outside) to 255 (fully inside).
// Pixels are stored in row-major order, top row first.
type Bitmap struct {
	Width, Height int
	Pix           []byte // Width*Height coverage values

	// BearingX is the offset, in pixels, from the pen position to the left
	// edge of the bitmap.
	BearingX int

	// BearingY is the offset, in pixels, from the baseline up to the top
	// edge of the bitmap.
	BearingY int
}

// Possible errors returned by Rasterize.
var (
	// ErrSupersampleLevel indicates that Options.SupersampleLevel is
	// less than 1.
	ErrSupersampleLevel = errors.New("glyphraster: supersample level must be at least 1")

	// ErrBitmapTooLarge indicates that the requested pixel height would
	// require a bitmap larger than maxBitmapPixels.
	ErrBitmapTooLarge = errors.New("glyphraster: bitmap too large")
)

// Rasterizer converts glyph outlines to coverage bitmaps.  The caller
// creates one instance and reuses it for multiple glyphs.  Internal buffers
// grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Internal buffers (reused across calls)
	edges     []edge     // edge list for the current glyph (bitmap space)
	crossings []crossing // crossings for the current sub-scanline
	hits      []uint32   // per-pixel hit counts for the current row
}

// NewRasterizer creates a new Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Reset releases the Rasterizer's references into previously processed
// outlines while preserving buffer capacity for reuse.
func (r *Rasterizer) Reset() {
	r.edges = r.edges[:0]
	r.crossings = r.crossings[:0]
	r.hits = r.hits[:0]
}

// Rasterize renders the outline at the given pixel height into a new
// coverage bitmap.  A whitespace glyph (no contours, or an empty bounding
// box) successfully yields a zero-sized bitmap.
//
// The call either fully succeeds or fails without a partial result.
func (r *Rasterizer) Rasterize(o *Outline, pixelHeight float64, opts Options) (*Bitmap, error) {
	if opts.SupersampleLevel < 1 {
		return nil, ErrSupersampleLevel
	}

	fr, ok := glyphFrame(o, pixelHeight)
	if !ok {
		return &Bitmap{}, nil
	}
	// Check the dimensions individually: the pixel count itself could
	// overflow, and extreme pixel heights can overflow the float to int
	// conversion in glyphFrame into negative dimensions.
	if fr.width <= 0 || fr.height <= 0 ||
		fr.width > maxBitmapPixels || fr.height > maxBitmapPixels/fr.width {
		return nil, ErrBitmapTooLarge
	}

	// build the edge list
	r.edges = r.edges[:0]
	for _, c := range o.Contours {
		decodeContour(c, func(s segment) {
			r.addEdge(fr.trfm, s)
		})
	}
	tracer().Debugf("rasterizing glyph: %d contours, %d edges, %dx%d bitmap, level %d",
		len(o.Contours), len(r.edges), fr.width, fr.height, opts.SupersampleLevel)

	bm := &Bitmap{
		Width:    fr.width,
		Height:   fr.height,
		Pix:      make([]byte, fr.width*fr.height),
		BearingX: fr.bearingX,
		BearingY: fr.bearingY,
	}
	if len(r.edges) == 0 {
		return bm, nil
	}

	n := opts.SupersampleLevel
	n2 := uint64(n) * uint64(n)

	r.hits = slices.Grow(r.hits[:0], fr.width)[:fr.width]

	for y := range fr.height {
		clear(r.hits)
		touched := false

		for s := range n {
			ySub := float64(y) + (float64(s)+0.5)/float64(n)

			r.crossings = r.crossings[:0]
			for i := range r.edges {
				r.crossings = appendCrossings(r.crossings, &r.edges[i], ySub)
			}
			if len(r.crossings) < 2 {
				continue
			}

			slices.SortFunc(r.crossings, func(a, b crossing) int {
				return cmp.Compare(a.x, b.x)
			})
			fillSpans(r.crossings, r.hits, n)
			touched = true
		}
		if !touched {
			continue
		}

		// average the sub-sample hits into coverage bytes
		row := bm.Pix[y*fr.width : (y+1)*fr.width]
		for x, h := range r.hits {
			if h == 0 {
				continue
			}
			row[x] = byte((uint64(h)*510 + n2) / (2 * n2))
		}
	}

	return bm, nil
}

// Rasterize renders the outline at the given pixel height into a new
// coverage bitmap, using a throwaway Rasterizer.  Callers rendering many
// glyphs should reuse a Rasterizer instead.
func Rasterize(o *Outline, pixelHeight float64, opts Options) (*Bitmap, error) {
	var r Rasterizer
	return r.Rasterize(o, pixelHeight, opts)
}

// Numerical tolerances and limits for the rasterizer.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.  Edges with a y-extent below this
	// threshold are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10

	// quadraticEpsilon is the threshold below which the leading
	// coefficient of the scanline equation is treated as zero and the
	// linear fallback is used.
	quadraticEpsilon = 1e-9

	// maxBitmapPixels limits the size of a single coverage bitmap.
	// Requests beyond this fail with ErrBitmapTooLarge instead of
	// attempting the allocation.
	maxBitmapPixels = 1 << 26
)

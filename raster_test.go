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

package glyphraster_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/glyphraster"
	"seehuhn.de/go/glyphraster/testcases"
)

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("test case %s/%s not found", category, name)
	return testcases.TestCase{}
}

func render(t *testing.T, tc testcases.TestCase, level int) *glyphraster.Bitmap {
	t.Helper()
	bm, err := glyphraster.Rasterize(tc.Outline, tc.PixelHeight,
		glyphraster.Options{SupersampleLevel: level})
	if err != nil {
		t.Fatalf("%s: %v", tc.Name, err)
	}
	return bm
}

// TestUnitSquare renders a 10x10 em square 1:1 and checks every pixel: a
// one-pixel empty border from the padding, full coverage inside.
func TestUnitSquare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyph.raster")
	defer teardown()

	o := &glyphraster.Outline{
		Contours: []glyf.Contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 0, Y: 10, OnCurve: true},
				{X: 10, Y: 10, OnCurve: true},
				{X: 10, Y: 0, OnCurve: true},
			},
		},
		Bounds:     funit.Rect16{LLx: 0, LLy: 0, URx: 10, URy: 10},
		UnitsPerEm: 10,
	}

	bm, err := glyphraster.Rasterize(o, 10, glyphraster.Options{SupersampleLevel: 1})
	if err != nil {
		t.Fatal(err)
	}

	if bm.Width != 12 || bm.Height != 12 {
		t.Fatalf("got %dx%d bitmap, want 12x12", bm.Width, bm.Height)
	}
	if bm.BearingX != -1 || bm.BearingY != 11 {
		t.Errorf("got bearings (%d,%d), want (-1,11)", bm.BearingX, bm.BearingY)
	}

	for y := range bm.Height {
		for x := range bm.Width {
			inside := x >= 1 && x <= 10 && y >= 1 && y <= 10
			want := byte(0)
			if inside {
				want = 255
			}
			if got := bm.Pix[y*bm.Width+x]; got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

// TestBinaryCoverage checks that without anti-aliasing every pixel is
// either empty or full.
func TestBinaryCoverage(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			bm := render(t, tc, 1)
			for i, v := range bm.Pix {
				if v != 0 && v != 255 {
					t.Errorf("%s_%s: pixel %d has intermediate value %d",
						category, tc.Name, i, v)
				}
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	r := glyphraster.NewRasterizer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				opts := glyphraster.Options{SupersampleLevel: tc.Level}
				first, err := r.Rasterize(tc.Outline, tc.PixelHeight, opts)
				if err != nil {
					t.Fatal(err)
				}
				second, err := r.Rasterize(tc.Outline, tc.PixelHeight, opts)
				if err != nil {
					t.Fatal(err)
				}
				if first.Width != second.Width || first.Height != second.Height ||
					!bytes.Equal(first.Pix, second.Pix) {
					t.Error("repeated rasterization differs")
				}
			})
		}
	}
}

// TestRefinementSharpens rasterizes the diamond (all edges at 45°) at
// increasing supersample levels.  Higher sampling must not smear coverage
// over more pixels: the count of intermediate pixels never grows.
func TestRefinementSharpens(t *testing.T) {
	tc := findCase(t, "fill", "diamond")

	prev := -1
	for _, level := range []int{2, 4, 8, 16} {
		bm := render(t, tc, level)
		count := 0
		for _, v := range bm.Pix {
			if v > 0 && v < 255 {
				count++
			}
		}
		if prev >= 0 && count > prev {
			t.Errorf("level %d has %d intermediate pixels, previous level had %d",
				level, count, prev)
		}
		prev = count
	}
}

// TestRingWinding checks the non-zero winding rule on nested contours: an
// opposite-wound inner contour is a hole, a same-wound one is not.
func TestRingWinding(t *testing.T) {
	ring := render(t, findCase(t, "winding", "ring"), 4)

	// bitmap layout: outer box covers pixels 1..32, hole covers 9..24
	center := ring.Pix[17*ring.Width+17]
	if center != 0 {
		writeDebugPNG(t, "ring", ring)
		t.Errorf("ring center has coverage %d, want 0", center)
	}
	annulus := ring.Pix[4*ring.Width+17]
	if annulus != 255 {
		writeDebugPNG(t, "ring", ring)
		t.Errorf("ring annulus has coverage %d, want 255", annulus)
	}

	solid := render(t, findCase(t, "winding", "nested_same_direction"), 4)
	center = solid.Pix[17*solid.Width+17]
	if center != 255 {
		writeDebugPNG(t, "nested_same_direction", solid)
		t.Errorf("same-direction center has coverage %d, want 255", center)
	}
}

// TestAnnulusWinding is the curved variant of TestRingWinding.
func TestAnnulusWinding(t *testing.T) {
	bm := render(t, findCase(t, "winding", "annulus"), 4)

	cx, cy := bm.Width/2, bm.Height/2
	if got := bm.Pix[cy*bm.Width+cx]; got != 0 {
		writeDebugPNG(t, "annulus", bm)
		t.Errorf("annulus center has coverage %d, want 0", got)
	}
	// halfway between the inner and outer circle
	if got := bm.Pix[cy*bm.Width+cx+17]; got != 255 {
		writeDebugPNG(t, "annulus", bm)
		t.Errorf("annulus body has coverage %d, want 255", got)
	}
}

// TestHorizontalEdges checks that splitting a horizontal edge with extra
// collinear points changes nothing: horizontal segments contribute no
// crossings.
func TestHorizontalEdges(t *testing.T) {
	plain := render(t, findCase(t, "fill", "square"), 1)
	split := render(t, findCase(t, "degenerate", "horizontal_split"), 1)

	if plain.Width != split.Width || plain.Height != split.Height {
		t.Fatalf("dimensions differ: %dx%d vs %dx%d",
			plain.Width, plain.Height, split.Width, split.Height)
	}
	if !bytes.Equal(plain.Pix, split.Pix) {
		writeDebugPNG(t, "horizontal_split", split)
		t.Error("splitting a horizontal edge changed the output")
	}
}

func TestWhitespaceGlyphs(t *testing.T) {
	for _, name := range []string{"empty", "single_point", "horizontal_sliver"} {
		tc := findCase(t, "degenerate", name)
		bm := render(t, tc, tc.Level)
		if bm.Width != 0 || bm.Height != 0 || len(bm.Pix) != 0 {
			t.Errorf("%s: got %dx%d bitmap, want 0x0", name, bm.Width, bm.Height)
		}
	}
}

// TestArchSymmetry rasterizes a symmetric quadratic arch and checks that
// coverage is mirror-symmetric about the vertical center line, up to one
// subsample of rounding slack.
func TestArchSymmetry(t *testing.T) {
	const level = 4
	const slack = 255/(level*level) + 1

	bm := render(t, findCase(t, "curve", "arch"), level)

	for y := range bm.Height {
		row := bm.Pix[y*bm.Width : (y+1)*bm.Width]
		for x := range bm.Width / 2 {
			l, r := row[x], row[bm.Width-1-x]
			d := int(l) - int(r)
			if d < -slack || d > slack {
				writeDebugPNG(t, "arch", bm)
				t.Fatalf("row %d: pixel %d has coverage %d, mirror has %d",
					y, x, l, r)
			}
		}
	}
}

func TestInvalidOptions(t *testing.T) {
	tc := findCase(t, "fill", "square")

	_, err := glyphraster.Rasterize(tc.Outline, tc.PixelHeight,
		glyphraster.Options{SupersampleLevel: 0})
	if !errors.Is(err, glyphraster.ErrSupersampleLevel) {
		t.Errorf("got %v, want ErrSupersampleLevel", err)
	}
}

func TestBitmapTooLarge(t *testing.T) {
	cases := []struct {
		name        string
		tc          testcases.TestCase
		pixelHeight float64
	}{
		// plainly over the pixel limit
		{"huge", findCase(t, "curve", "disc"), 1e7},
		// width*height wraps around int64 if multiplied
		{"overflow", findCase(t, "fill", "square"), 4e9},
		// the dimensions themselves overflow the float to int conversion
		{"astronomical", findCase(t, "fill", "square"), 1e19},
	}
	for _, c := range cases {
		_, err := glyphraster.Rasterize(c.tc.Outline, c.pixelHeight,
			glyphraster.Options{SupersampleLevel: 1})
		if !errors.Is(err, glyphraster.ErrBitmapTooLarge) {
			t.Errorf("%s: got %v, want ErrBitmapTooLarge", c.name, err)
		}
	}
}

// writeDebugPNG dumps a bitmap to debug/ for inspection of test failures.
func writeDebugPNG(t *testing.T, name string, bm *glyphraster.Bitmap) {
	t.Helper()
	os.MkdirAll("debug", 0755)

	img := image.NewGray(image.Rect(0, 0, bm.Width, bm.Height))
	copy(img.Pix, bm.Pix)

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

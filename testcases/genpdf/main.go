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

// Command genpdf generates reference images for the glyph test outlines.
// It draws each outline into a PDF page sized like the coverage bitmap and
// renders the page to PNG using Ghostscript.  The PNGs are for visual
// comparison with the rasterizer's own output.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/glyphraster"
	"seehuhn.de/go/glyphraster/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			bm, err := glyphraster.Rasterize(tc.Outline, tc.PixelHeight,
				glyphraster.Options{SupersampleLevel: tc.Level})
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if bm.Width == 0 || bm.Height == 0 {
				continue // whitespace glyphs have no reference image
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, bm, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, bm *glyphraster.Bitmap, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(bm.Width),
		URy: float64(bm.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Paint black background first (PDF default is white, but we need
	// black background for coverage semantics: 0=no coverage, 255=full)
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(bm.Width), float64(bm.Height))
	page.Fill()

	// Map font units onto the page so that the glyph sits exactly where
	// the rasterizer places it in the bitmap.  PDF pages are y-up, so no
	// flip is needed; the baseline lies bearingY pixels below the top.
	scale := tc.PixelHeight / float64(tc.Outline.UnitsPerEm)
	page.Transform(matrix.Matrix{
		scale, 0, 0, scale,
		-float64(bm.BearingX),
		float64(bm.Height - bm.BearingY),
	})

	page.SetFillColor(color.DeviceGray(1))

	// Draw the outline, converting quadratic segments to cubics
	// (PDF has no quadratic curve operator).
	var cur vec2
	for cmd, pts := range tc.Outline.Path() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
			cur = vec2{pts[0].X, pts[0].Y}
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
			cur = vec2{pts[0].X, pts[0].Y}
		case path.CmdQuadTo:
			qx, qy := pts[0].X, pts[0].Y
			ex, ey := pts[1].X, pts[1].Y
			c1x := cur.x + 2.0/3.0*(qx-cur.x)
			c1y := cur.y + 2.0/3.0*(qy-cur.y)
			c2x := ex + 2.0/3.0*(qx-ex)
			c2y := ey + 2.0/3.0*(qy-ey)
			page.CurveTo(c1x, c1y, c2x, c2y, ex, ey)
			cur = vec2{ex, ey}
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Fill() // non-zero winding rule

	return page.Close()
}

type vec2 struct {
	x, y float64
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

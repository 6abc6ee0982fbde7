// Command export rasterizes all test outlines and writes the coverage
// bitmaps as grayscale PNGs, for visual inspection and for comparison with
// the genpdf reference images.  Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"image/png"

	"seehuhn.de/go/glyphraster"
	"seehuhn.de/go/glyphraster/testcases"
)

const outDir = "testdata/actual"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	r := glyphraster.NewRasterizer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			bm, err := r.Rasterize(tc.Outline, tc.PixelHeight,
				glyphraster.Options{SupersampleLevel: tc.Level})
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if bm.Width == 0 || bm.Height == 0 {
				continue
			}

			img := image.NewGray(image.Rect(0, 0, bm.Width, bm.Height))
			copy(img.Pix, bm.Pix)

			f, err := os.Create(filepath.Join(outDir, name+".png"))
			if err != nil {
				panic(err)
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := f.Close(); err != nil {
				panic(err)
			}
		}
	}
}

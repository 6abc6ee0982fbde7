package testcases

import "seehuhn.de/go/sfnt/glyf"

var fillCases = []TestCase{
	{
		// the classic unit square: a 10x10 em square rendered 1:1
		Name: "square",
		Outline: outline(10, glyf.Contour{
			on(0, 0), on(0, 10), on(10, 10), on(10, 0),
		}),
		PixelHeight: 10,
		Level:       1,
	},
	{
		Name: "diamond",
		Outline: outline(1000, glyf.Contour{
			on(500, 0), on(1000, 500), on(500, 1000), on(0, 500),
		}),
		PixelHeight: 32,
		Level:       4,
	},
	{
		Name: "triangle",
		Outline: outline(1000, glyf.Contour{
			on(0, 0), on(1000, 0), on(500, 900),
		}),
		PixelHeight: 24,
		Level:       4,
	},
	{
		Name: "thin_bar",
		Outline: outline(1000, glyf.Contour{
			on(450, 0), on(450, 1000), on(550, 1000), on(550, 0),
		}),
		PixelHeight: 16,
		Level:       4,
	},
}

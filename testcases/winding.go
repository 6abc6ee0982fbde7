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

package testcases

import "seehuhn.de/go/sfnt/glyf"

var windingCases = []TestCase{
	{
		// outer contour clockwise, inner counter-clockwise: the inner
		// square is a hole
		Name: "ring",
		Outline: outline(1000,
			glyf.Contour{on(0, 0), on(0, 1000), on(1000, 1000), on(1000, 0)},
			glyf.Contour{on(250, 250), on(750, 250), on(750, 750), on(250, 750)},
		),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// both contours wound the same way: the overlap stays filled
		// under the non-zero rule
		Name: "nested_same_direction",
		Outline: outline(1000,
			glyf.Contour{on(0, 0), on(0, 1000), on(1000, 1000), on(1000, 0)},
			glyf.Contour{on(250, 250), on(250, 750), on(750, 750), on(750, 250)},
		),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// two overlapping squares, same direction: their union is filled
		Name: "overlap",
		Outline: outline(1000,
			glyf.Contour{on(0, 0), on(0, 600), on(600, 600), on(600, 0)},
			glyf.Contour{on(400, 400), on(400, 1000), on(1000, 1000), on(1000, 400)},
		),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// a curved ring: disc outline with an opposite-wound inner disc
		Name: "annulus",
		Outline: outline(1000,
			glyf.Contour{
				on(950, 500), off(950, 950), on(500, 950), off(50, 950),
				on(50, 500), off(50, 50), on(500, 50), off(950, 50),
			},
			glyf.Contour{
				on(700, 500), off(700, 300), on(500, 300), off(300, 300),
				on(300, 500), off(300, 700), on(500, 700), off(700, 700),
			},
		),
		PixelHeight: 64,
		Level:       4,
	},
}

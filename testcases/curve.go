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

var curveCases = []TestCase{
	{
		// circle approximation with four quadratic arcs
		Name: "disc",
		Outline: outline(1000, glyf.Contour{
			on(950, 500), off(950, 950), on(500, 950), off(50, 950),
			on(50, 500), off(50, 50), on(500, 50), off(950, 50),
		}),
		PixelHeight: 64,
		Level:       4,
	},
	{
		// a single upward arc closed by the implicit baseline segment
		Name: "arch",
		Outline: outline(1000, glyf.Contour{
			on(0, 0), off(500, 1000), on(1000, 0),
		}),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// two consecutive off-curve points force an implicit on-curve
		// midpoint
		Name: "implicit_midpoint",
		Outline: outline(1000, glyf.Contour{
			on(0, 0), off(250, 900), off(750, 900), on(1000, 0),
		}),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// every point is off-curve; the decoder synthesizes all four
		// on-curve midpoints
		Name: "all_off_curve",
		Outline: outline(1000, glyf.Contour{
			off(500, 0), off(1000, 500), off(500, 1000), off(0, 500),
		}),
		PixelHeight: 48,
		Level:       4,
	},
	{
		// the contour starts with an off-curve point
		Name: "off_curve_start",
		Outline: outline(1000, glyf.Contour{
			off(500, 1000), on(0, 0), on(1000, 0),
		}),
		PixelHeight: 32,
		Level:       4,
	},
}

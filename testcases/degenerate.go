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

var degenerateCases = []TestCase{
	{
		// whitespace glyph: no contours at all
		Name:        "empty",
		Outline:     outline(1000),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// a single point has an empty bounding box
		Name:        "single_point",
		Outline:     outline(1000, glyf.Contour{on(500, 500)}),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// all points on one horizontal line: zero-height bounding box
		Name: "horizontal_sliver",
		Outline: outline(1000, glyf.Contour{
			on(0, 500), on(500, 500), on(1000, 500),
		}),
		PixelHeight: 32,
		Level:       4,
	},
	{
		// the square with extra collinear points splitting its
		// horizontal edges; must render identically to fill/square
		Name: "horizontal_split",
		Outline: outline(10, glyf.Contour{
			on(0, 0), on(0, 10), on(5, 10), on(10, 10), on(10, 0), on(5, 0),
		}),
		PixelHeight: 10,
		Level:       1,
	},
}

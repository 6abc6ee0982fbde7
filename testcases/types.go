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

// Package testcases defines synthetic glyph outlines for rasterizer tests
// and tools.
package testcases

import (
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/glyphraster"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name        string               // lowercase a-z and _ only
	Outline     *glyphraster.Outline // the glyph to render
	PixelHeight float64              // target pixel height
	Level       int                  // supersample level
}

// on creates an on-curve point.
func on(x, y funit.Int16) glyf.Point {
	return glyf.Point{X: x, Y: y, OnCurve: true}
}

// off creates an off-curve (control) point.
func off(x, y funit.Int16) glyf.Point {
	return glyf.Point{X: x, Y: y, OnCurve: false}
}

// outline assembles an Outline from contours, computing the bounding box
// from the points.  Control points count towards the box, as in the
// TrueType `glyf` table.
func outline(unitsPerEm uint16, contours ...glyf.Contour) *glyphraster.Outline {
	o := &glyphraster.Outline{
		Contours:   contours,
		UnitsPerEm: unitsPerEm,
	}
	first := true
	for _, c := range contours {
		for _, p := range c {
			if first {
				o.Bounds = funit.Rect16{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			o.Bounds.LLx = min(o.Bounds.LLx, p.X)
			o.Bounds.LLy = min(o.Bounds.LLy, p.Y)
			o.Bounds.URx = max(o.Bounds.URx, p.X)
			o.Bounds.URy = max(o.Bounds.URy, p.Y)
		}
	}
	return o
}

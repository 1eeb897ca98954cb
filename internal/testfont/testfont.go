// seehuhn.de/go/dalifont - segment tables for morphing clock digits
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

// Package testfont provides a tiny hand-drawn clock font for tests.
//
// The digits and the slash are 5x7 pixels, the colon is 3x7 pixels.
package testfont

import (
	"fmt"
	"strings"

	"seehuhn.de/go/dalifont/bitmap"
	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
)

// Glyph metrics of the test font.
const (
	CharWidth  = 5
	CharHeight = 7
	ColonWidth = 3
)

// Drawings contains the glyph shapes, in the order of [glyph.All].
var Drawings = [glyph.Count][]string{
	{
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	},
	{
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	},
	{
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#####",
	},
	{
		"#####",
		"...#.",
		"..#..",
		"...#.",
		"....#",
		"#...#",
		".###.",
	},
	{
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	},
	{
		"#####",
		"#....",
		"####.",
		"....#",
		"....#",
		"#...#",
		".###.",
	},
	{
		"..##.",
		".#...",
		"#....",
		"####.",
		"#...#",
		"#...#",
		".###.",
	},
	{
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
	},
	{
		".###.",
		"#...#",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	},
	{
		".###.",
		"#...#",
		"#...#",
		".####",
		"....#",
		"...#.",
		".##..",
	},
	{
		"...",
		".#.",
		".#.",
		"...",
		".#.",
		".#.",
		"...",
	},
	{
		"....#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#....",
	},
}

// Bitmaps returns freshly allocated bitmaps for all glyphs.
func Bitmaps() [glyph.Count]*bitmap.Bitmap {
	var res [glyph.Count]*bitmap.Bitmap
	for _, g := range glyph.All {
		b, err := bitmap.Parse(Drawings[g]...)
		if err != nil {
			panic(fmt.Sprintf("testfont: %s: %v", g, err))
		}
		res[g] = b
	}
	return res
}

// Padded returns the test font with all glyphs except the colon extended to
// the given width, by adding background columns on the right.
func Padded(width int) [glyph.Count]*bitmap.Bitmap {
	if width < CharWidth {
		panic(fmt.Sprintf("testfont: width %d < %d", width, CharWidth))
	}
	var res [glyph.Count]*bitmap.Bitmap
	for _, g := range glyph.All {
		rows := Drawings[g]
		if g != glyph.Colon {
			padded := make([]string, len(rows))
			for y, row := range rows {
				padded[y] = row + strings.Repeat(".", width-len(row))
			}
			rows = padded
		}
		b, err := bitmap.Parse(rows...)
		if err != nil {
			panic(fmt.Sprintf("testfont: %s: %v", g, err))
		}
		res[g] = b
	}
	return res
}

// Source is a [fonttable.Source] which returns the test font
// for every font size.
type Source struct{}

// Glyphs implements the [fonttable.Source] interface.
func (Source) Glyphs(fonttable.Size) ([glyph.Count]*bitmap.Bitmap, error) {
	return Bitmaps(), nil
}

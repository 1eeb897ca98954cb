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

package dalifont

import (
	"fmt"

	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
	"seehuhn.de/go/dalifont/segment"
)

// Font is a clock font where all glyphs have been converted to segments.
type Font struct {
	// Selector is the font size, between 0 and 7.
	Selector int

	CharWidth  int
	CharHeight int
	ColonWidth int

	// Frames holds the segments of the glyphs, in the order of [glyph.All].
	Frames [glyph.Count]segment.Frame
}

// New loads the glyph bitmaps for font size sel from src
// and converts them to segments.
func New(src fonttable.Source, sel int) (*Font, error) {
	raw, err := fonttable.Load(src, sel)
	if err != nil {
		return nil, err
	}
	return Build(raw)
}

// Build converts the glyph bitmaps in raw to segments.
//
// If any glyph has a row with more than [segment.MaxSegsPerLine] runs of
// foreground pixels, the returned error wraps a [*segment.TooCurvyError].
func Build(raw *fonttable.Raw) (*Font, error) {
	F := &Font{
		Selector:   raw.Selector,
		CharWidth:  raw.CharWidth,
		CharHeight: raw.CharHeight,
		ColonWidth: raw.ColonWidth,
	}
	for _, g := range glyph.All {
		frame, err := segment.FromBitmap(raw.Glyphs[g])
		if err != nil {
			return nil, fmt.Errorf("font size %s: %s: %w", raw.Size.Name, g, err)
		}
		F.Frames[g] = frame
	}
	return F, nil
}

// Width returns the width of glyph g in pixels.
func (F *Font) Width(g glyph.Glyph) int {
	if g == glyph.Colon {
		return F.ColonWidth
	}
	return F.CharWidth
}

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

// Package fonttable maps font size selectors to sets of glyph bitmaps.
//
// There are eight font sizes, numbered 0 to 7.  Each size has a short name
// (for example "C3"), which asset sources use to locate the twelve glyph
// bitmaps of that size.
package fonttable

import (
	"fmt"

	"seehuhn.de/go/dalifont/bitmap"
	"seehuhn.de/go/dalifont/glyph"
)

// Size describes one of the font sizes.
type Size struct {
	// Name identifies the bitmap set, e.g. "D4".
	Name string

	// Height is the nominal glyph height in pixels.  Sources which render
	// glyphs from outlines use this as the cell height.
	Height int
}

// Sizes lists the available font sizes, indexed by selector.
var Sizes = [...]Size{
	{Name: "E", Height: 192},
	{Name: "D4", Height: 144},
	{Name: "D3", Height: 112},
	{Name: "C3", Height: 88},
	{Name: "C2", Height: 64},
	{Name: "B2", Height: 48},
	{Name: "B", Height: 36},
	{Name: "A", Height: 24},
}

// SelectorError is returned when a font size selector is out of range.
type SelectorError struct {
	Selector int
}

func (err *SelectorError) Error() string {
	return fmt.Sprintf("invalid font size %d (must be between 0 and %d)",
		err.Selector, len(Sizes)-1)
}

// Lookup returns the font size for the given selector.
func Lookup(sel int) (Size, error) {
	if sel < 0 || sel >= len(Sizes) {
		return Size{}, &SelectorError{Selector: sel}
	}
	return Sizes[sel], nil
}

// Source provides the glyph bitmaps for a font size.
// The result must contain one bitmap for every glyph, in the order of
// [glyph.All].
type Source interface {
	Glyphs(size Size) ([glyph.Count]*bitmap.Bitmap, error)
}

// Raw is the set of glyph bitmaps for one font size.
type Raw struct {
	Selector int
	Size     Size
	Glyphs   [glyph.Count]*bitmap.Bitmap

	CharWidth  int
	CharHeight int
	ColonWidth int
}

// Load fetches the glyph bitmaps for the font size sel from src.
//
// The character width and height are taken from the bitmap for [glyph.Zero],
// the colon width from the bitmap for [glyph.Colon].  All glyphs must have the
// same height, and all glyphs except the colon must have the same width.
func Load(src Source, sel int) (*Raw, error) {
	size, err := Lookup(sel)
	if err != nil {
		return nil, err
	}

	glyphs, err := src.Glyphs(size)
	if err != nil {
		return nil, fmt.Errorf("font size %s: %w", size.Name, err)
	}
	for _, g := range glyph.All {
		if glyphs[g] == nil {
			return nil, fmt.Errorf("font size %s: missing bitmap for %s", size.Name, g)
		}
	}

	raw := &Raw{
		Selector:   sel,
		Size:       size,
		Glyphs:     glyphs,
		CharWidth:  glyphs[glyph.Zero].Width,
		CharHeight: glyphs[glyph.Zero].Height,
		ColonWidth: glyphs[glyph.Colon].Width,
	}
	for _, g := range glyph.All {
		if h := glyphs[g].Height; h != raw.CharHeight {
			return nil, fmt.Errorf("font size %s: %s has height %d, expected %d",
				size.Name, g, h, raw.CharHeight)
		}
		if g == glyph.Colon {
			continue
		}
		if w := glyphs[g].Width; w != raw.CharWidth {
			return nil, fmt.Errorf("font size %s: %s has width %d, expected %d",
				size.Name, g, w, raw.CharWidth)
		}
	}
	return raw, nil
}

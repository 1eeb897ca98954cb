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

// Package bdffont takes clock glyphs from bitmap fonts in BDF format.
//
// The font for size "C3" is read from the file "C3.bdf".  Every glyph is
// drawn into a cell which is as high as the font's ascent plus descent.
// Digits and the slash use the advance width of the digit zero, the colon
// uses its own advance width.
package bdffont

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/dalifont/bitmap"
	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
)

// FileName returns the name of the BDF file for the given size.
func FileName(size fonttable.Size) string {
	return size.Name + ".bdf"
}

// Source reads glyph bitmaps from BDF fonts.
// It implements [fonttable.Source].
type Source struct {
	FS fs.FS
}

// Glyphs implements the [fonttable.Source] interface.
func (s Source) Glyphs(size fonttable.Size) ([glyph.Count]*bitmap.Bitmap, error) {
	var res [glyph.Count]*bitmap.Bitmap

	fname := FileName(size)
	data, err := fs.ReadFile(s.FS, fname)
	if err != nil {
		return res, err
	}
	bdfFont, err := bdf.Parse(data)
	if err != nil {
		return res, fmt.Errorf("bdf: %s: %w", fname, err)
	}
	// The face substitutes the default character for missing runes,
	// so presence is checked on the font itself.
	for _, g := range glyph.All {
		if _, ok := bdfFont.CharMap[g.Rune()]; !ok {
			return res, fmt.Errorf("bdf: %s: no glyph for %s", fname, g)
		}
	}

	face := bdfFont.NewFace()
	defer face.Close()

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height < 1 {
		return res, fmt.Errorf("bdf: %s: invalid font height %d", fname, height)
	}

	charAdvance, _ := face.GlyphAdvance(glyph.Zero.Rune())
	for _, g := range glyph.All {
		advance := charAdvance
		if g == glyph.Colon {
			advance, _ = face.GlyphAdvance(g.Rune())
		}
		b, err := draw(face, g.Rune(), advance.Ceil(), height, ascent)
		if err != nil {
			return res, fmt.Errorf("bdf: %s: %s: %w", fname, g, err)
		}
		res[g] = b
	}
	return res, nil
}

// draw renders a single rune into a width x height cell, with the
// baseline at the given distance from the top.
func draw(face font.Face, r rune, width, height, baseline int) (*bitmap.Bitmap, error) {
	if width < 1 {
		return nil, fmt.Errorf("invalid advance width %d", width)
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, baseline),
	}
	d.DrawString(string(r))
	return bitmap.FromImage(dst)
}

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

// Package dalifont builds segment tables for morphing clock fonts.
//
// A morphing clock animates the change from one digit to the next by
// interpolating the outlines of both glyphs.  To make this possible, every
// glyph is described scanline by scanline, using a fixed number of
// horizontal segments per row (see [segment.MaxSegsPerLine]).
//
// A clock font consists of the ten digits, a colon and a slash at one of
// eight sizes.  The glyph bitmaps for a size are obtained from a
// [fonttable.Source]:
//
//	src, err := outline.New(outline.MonoBold)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	F, err := dalifont.New(src, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = segdoc.New(F).WriteTo(os.Stdout)
//
// The packages [seehuhn.de/go/dalifont/xbm] and
// [seehuhn.de/go/dalifont/bdffont] read glyph bitmaps from X11 bitmap files
// and BDF fonts, respectively.
package dalifont

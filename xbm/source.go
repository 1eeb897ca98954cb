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

package xbm

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"seehuhn.de/go/dalifont/bitmap"
	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
)

// FileName returns the name of the XBM file for glyph g at the given size,
// for example "colonD4.xbm".
func FileName(g glyph.Glyph, size fonttable.Size) string {
	return g.BaseName() + size.Name + ".xbm"
}

// MissingError is returned by [Source.Glyphs] if some of the glyph files
// do not exist.
type MissingError struct {
	Size  string
	Files []string
}

func (err *MissingError) Error() string {
	return fmt.Sprintf("xbm: font size %s: missing %s",
		err.Size, strings.Join(err.Files, ", "))
}

// Source reads glyph bitmaps from XBM files.
// It implements [fonttable.Source].
type Source struct {
	FS fs.FS
}

// Glyphs implements the [fonttable.Source] interface.
func (s Source) Glyphs(size fonttable.Size) ([glyph.Count]*bitmap.Bitmap, error) {
	var res [glyph.Count]*bitmap.Bitmap

	var found bitset.BitSet
	for _, g := range glyph.All {
		fname := FileName(g, size)
		f, err := s.FS.Open(fname)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return res, err
		}
		b, _, err := Decode(f)
		f.Close()
		if err != nil {
			return res, fmt.Errorf("%s: %w", fname, err)
		}
		res[g] = b
		found.Set(uint(g))
	}

	if found.Count() < glyph.Count {
		err := &MissingError{Size: size.Name}
		for _, g := range glyph.All {
			if !found.Test(uint(g)) {
				err.Files = append(err.Files, FileName(g, size))
			}
		}
		return res, err
	}
	return res, nil
}

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

package bdffont

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/dalifont"
	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
	"seehuhn.de/go/dalifont/internal/testfont"
)

const (
	testAscent  = 6
	testDescent = 1
)

// makeBDF converts the test font into BDF format.  Every glyph bitmap
// covers its whole cell.  Glyphs listed in skip are left out.
func makeBDF(skip ...glyph.Glyph) string {
	sb := &strings.Builder{}
	fmt.Fprintln(sb, "STARTFONT 2.1")
	fmt.Fprintln(sb, "FONT -test-clock-medium-r-normal--7-70-75-75-c-50-iso10646-1")
	fmt.Fprintln(sb, "SIZE 7 75 75")
	fmt.Fprintf(sb, "FONTBOUNDINGBOX %d %d 0 %d\n",
		testfont.CharWidth, testfont.CharHeight, -testDescent)
	fmt.Fprintln(sb, "STARTPROPERTIES 4")
	fmt.Fprintln(sb, "PIXEL_SIZE 7")
	fmt.Fprintf(sb, "FONT_ASCENT %d\n", testAscent)
	fmt.Fprintf(sb, "FONT_DESCENT %d\n", testDescent)
	fmt.Fprintln(sb, "DEFAULT_CHAR 48")
	fmt.Fprintln(sb, "ENDPROPERTIES")

	var chars []glyph.Glyph
glyphLoop:
	for _, g := range glyph.All {
		for _, s := range skip {
			if g == s {
				continue glyphLoop
			}
		}
		chars = append(chars, g)
	}
	fmt.Fprintf(sb, "CHARS %d\n", len(chars))

	for _, g := range chars {
		rows := testfont.Drawings[g]
		width := len(rows[0])
		fmt.Fprintf(sb, "STARTCHAR %s\n", g.BaseName())
		fmt.Fprintf(sb, "ENCODING %d\n", g.Rune())
		fmt.Fprintf(sb, "SWIDTH %d 0\n", width*1000/testfont.CharHeight)
		fmt.Fprintf(sb, "DWIDTH %d 0\n", width)
		fmt.Fprintf(sb, "BBX %d %d 0 %d\n", width, len(rows), -testDescent)
		fmt.Fprintln(sb, "BITMAP")
		for _, row := range rows {
			var v byte
			for x := 0; x < len(row); x++ {
				if row[x] == '#' {
					v |= 0x80 >> x
				}
			}
			fmt.Fprintf(sb, "%02X\n", v)
		}
		fmt.Fprintln(sb, "ENDCHAR")
	}
	fmt.Fprintln(sb, "ENDFONT")
	return sb.String()
}

func TestGlyphs(t *testing.T) {
	size := fonttable.Sizes[6]
	fsys := fstest.MapFS{
		FileName(size): &fstest.MapFile{Data: []byte(makeBDF())},
	}

	glyphs, err := Source{FS: fsys}.Glyphs(size)
	require.NoError(t, err)

	want := testfont.Bitmaps()
	for _, g := range glyph.All {
		require.NotNil(t, glyphs[g])
		require.Equal(t, testAscent+testDescent, glyphs[g].Height, "%s", g)
		require.True(t, want[g].Equal(glyphs[g]), "%s: got\n%s", g, glyphs[g])
	}
}

func TestFont(t *testing.T) {
	size := fonttable.Sizes[2]
	fsys := fstest.MapFS{
		FileName(size): &fstest.MapFile{Data: []byte(makeBDF())},
	}

	F, err := dalifont.New(Source{FS: fsys}, 2)
	require.NoError(t, err)
	require.Equal(t, testfont.CharWidth, F.CharWidth)
	require.Equal(t, testfont.CharHeight, F.CharHeight)
	require.Equal(t, testfont.ColonWidth, F.ColonWidth)
}

func TestMissingFile(t *testing.T) {
	_, err := Source{FS: fstest.MapFS{}}.Glyphs(fonttable.Sizes[0])
	require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestMissingGlyph(t *testing.T) {
	// DEFAULT_CHAR is the digit zero, which the face would draw instead
	size := fonttable.Sizes[4]
	for _, g := range []glyph.Glyph{glyph.Slash, glyph.Colon, glyph.Seven} {
		fsys := fstest.MapFS{
			FileName(size): &fstest.MapFile{Data: []byte(makeBDF(g))},
		}

		glyphs, err := Source{FS: fsys}.Glyphs(size)
		require.Error(t, err, "%s", g)
		require.Contains(t, err.Error(), "C2.bdf: no glyph for "+g.String())
		require.Nil(t, glyphs[g])
	}
}

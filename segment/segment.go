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

// Package segment converts glyph bitmaps into per-scanline segment lists.
//
// A glyph is described row by row.  Every row holds exactly [MaxSegsPerLine]
// horizontal segments.  Rows with fewer runs of foreground pixels repeat
// their last run; blank rows consist of zero-width segments in the middle of
// the glyph.  This gives a morphing renderer the same number of segments to
// interpolate on every row of every glyph.
package segment

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/dalifont/bitmap"
)

// MaxSegsPerLine is the number of segments stored for each row of a glyph.
// A glyph with more runs of foreground pixels on a single row cannot be
// represented.
const MaxSegsPerLine = 5

// Pair is a horizontal segment covering the columns Left <= x < Right.
type Pair struct {
	Left, Right int
}

// Width returns the number of pixels covered by the segment.
func (p Pair) Width() int {
	return p.Right - p.Left
}

// MarshalJSON encodes the pair as a two-element array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Left, p.Right})
}

// UnmarshalJSON decodes a pair from a two-element array.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var a [2]int
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a[0] > a[1] {
		return fmt.Errorf("segment: invalid pair [%d,%d]", a[0], a[1])
	}
	p.Left, p.Right = a[0], a[1]
	return nil
}

// Scanline holds the segments of one glyph row, ordered left to right.
type Scanline [MaxSegsPerLine]Pair

// Frame holds one scanline for every row of a glyph.
type Frame []Scanline

func blankLine(width int) Scanline {
	mid := Pair{Left: width / 2, Right: width / 2}
	var line Scanline
	for i := range line {
		line[i] = mid
	}
	return line
}

// Blank returns a frame for a glyph of the given size
// where every row is a zero-width line in the middle of the glyph.
func Blank(width, height int) Frame {
	frame := make(Frame, height)
	line := blankLine(width)
	for y := range frame {
		frame[y] = line
	}
	return frame
}

// Runs returns the segments of the scanline with adjacent duplicates
// removed.  For a row with k runs of foreground pixels this gives the k runs;
// for a blank row it gives the single midline segment.
func (s Scanline) Runs() []Pair {
	return slices.Compact(slices.Clone(s[:]))
}

// Expand reverses [Scanline.Runs]: the last segment is repeated
// to fill all slots.  An empty list gives the blank midline row
// for a glyph of the given width.
func Expand(runs []Pair, width int) (Scanline, error) {
	if len(runs) > MaxSegsPerLine {
		return Scanline{}, fmt.Errorf("segment: %d segments exceed the limit of %d",
			len(runs), MaxSegsPerLine)
	}
	if len(runs) == 0 {
		return blankLine(width), nil
	}

	var line Scanline
	n := copy(line[:], runs)
	for i := n; i < MaxSegsPerLine; i++ {
		line[i] = runs[n-1]
	}
	return line, nil
}

// MaxRuns returns the largest number of distinct segments on any row.
func (f Frame) MaxRuns() int {
	res := 0
	for _, line := range f {
		res = max(res, len(line.Runs()))
	}
	return res
}

// Bitmap renders the frame as a bitmap of the given width.
// Zero-width segments do not cover any pixels.
func (f Frame) Bitmap(width int) (*bitmap.Bitmap, error) {
	stride := bitmap.Stride(width)
	data := make([]byte, stride*len(f))
	for y, line := range f {
		for _, seg := range line {
			if seg.Left < 0 || seg.Right > width {
				return nil, fmt.Errorf("segment: row %d: segment [%d,%d) outside width %d",
					y, seg.Left, seg.Right, width)
			}
			for x := seg.Left; x < seg.Right; x++ {
				data[y*stride+x>>3] |= 1 << (x & 7)
			}
		}
	}
	return bitmap.New(width, len(f), data)
}

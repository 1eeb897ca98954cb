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

package segment

import (
	"fmt"

	"seehuhn.de/go/dalifont/bitmap"
)

// TooCurvyError is returned by [FromBitmap] if a row of the glyph
// has more than [MaxSegsPerLine] runs of foreground pixels.
type TooCurvyError struct {
	Row int

	// Column is the first foreground pixel which does not fit
	// into the segment budget.
	Column int
}

func (err *TooCurvyError) Error() string {
	return fmt.Sprintf("font is too curvy: row %d needs more than %d segments (column %d)",
		err.Row, MaxSegsPerLine, err.Column)
}

// FromBitmap converts a glyph bitmap into a frame.
//
// On every row, the runs of foreground pixels are recorded from left to
// right.  Unused slots repeat the last run.  Rows without foreground pixels
// keep the blank midline segments of [Blank].
func FromBitmap(b *bitmap.Bitmap) (Frame, error) {
	width := b.Width
	frame := Blank(width, b.Height)

	for y := range frame {
		line := &frame[y]

		x := 0
		seg := 0
		for seg < MaxSegsPerLine {
			for x < width && !b.At(x, y) {
				x++
			}
			if x == width {
				break
			}
			line[seg].Left = x
			for x < width && b.At(x, y) {
				x++
			}
			line[seg].Right = x
			seg++
		}

		for ; x < width; x++ {
			if b.At(x, y) {
				return nil, &TooCurvyError{Row: y, Column: x}
			}
		}

		if seg > 0 {
			last := line[seg-1]
			for ; seg < MaxSegsPerLine; seg++ {
				line[seg] = last
			}
		}
	}

	return frame, nil
}

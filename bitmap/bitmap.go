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

// Package bitmap implements monochrome images with one bit per pixel.
//
// Pixels are stored row by row.  Every row starts on a byte boundary, and
// within a byte the least significant bit holds the leftmost pixel.  This is
// the layout used by X11 bitmap (XBM) files.
package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/icza/bitio"
)

// Bitmap is a read-only monochrome image.
// Set bits are foreground pixels.
type Bitmap struct {
	Width  int
	Height int
	Data   []byte
}

// Stride returns the number of bytes used for one row of a bitmap
// with the given width.
func Stride(width int) int {
	return (width + 7) / 8
}

// New returns a bitmap which uses data as its pixel buffer.
// The buffer is not copied.
func New(width, height int, data []byte) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("bitmap: invalid size %dx%d", width, height)
	}
	if n := height * Stride(width); len(data) != n {
		return nil, fmt.Errorf("bitmap: %dx%d image needs %d bytes, got %d",
			width, height, n, len(data))
	}
	return &Bitmap{Width: width, Height: height, Data: data}, nil
}

// At reports whether the pixel at (x, y) is a foreground pixel.
// The coordinates must be inside the image.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		panic(fmt.Sprintf("bitmap: pixel (%d, %d) outside %dx%d image",
			x, y, b.Width, b.Height))
	}
	return b.Data[y*Stride(b.Width)+x>>3]&(1<<(x&7)) != 0
}

// Equal reports whether b and other show the same pixels.
// Padding bits at the end of rows are ignored.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.Width != other.Width || b.Height != other.Height {
		return false
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) != other.At(x, y) {
				return false
			}
		}
	}
	return true
}

// String returns an ASCII rendering of the bitmap, one line per row.
// Foreground pixels are shown as '#', background pixels as '.'.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse converts an ASCII drawing into a bitmap.
// Every string is one row; '#' and 'X' mark foreground pixels, all other
// characters are background.  All rows must have the same length.
func Parse(rows ...string) (*Bitmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("bitmap: empty drawing")
	}
	width := len(rows[0])
	stride := Stride(width)
	data := make([]byte, stride*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("bitmap: row %d has length %d, expected %d",
				y, len(row), width)
		}
		for x := 0; x < width; x++ {
			if row[x] == '#' || row[x] == 'X' {
				data[y*stride+x>>3] |= 1 << (x & 7)
			}
		}
	}
	return New(width, len(rows), data)
}

// FromImage converts img to a bitmap.  Pixels with at least 50% alpha
// become foreground pixels.
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("bitmap: invalid image size %dx%d", width, height)
	}

	buf := &bytes.Buffer{}
	w := bitio.NewWriter(buf)
	stride := Stride(width)
	for y := 0; y < height; y++ {
		for i := 0; i < stride; i++ {
			// bitio emits the most significant bit first,
			// but the leftmost pixel goes into bit 0.
			for bit := 7; bit >= 0; bit-- {
				x := 8*i + bit
				on := false
				if x < width {
					_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
					on = a >= 0x8000
				}
				if err := w.WriteBool(on); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return New(width, height, buf.Bytes())
}

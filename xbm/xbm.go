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

// Package xbm reads and writes X11 bitmap files.
//
// An XBM file is a fragment of C source code, for example
//
//	#define zeroA_width 14
//	#define zeroA_height 24
//	static unsigned char zeroA_bits[] = {
//	   0xf0, 0x03, 0xfc, 0x0f, ...};
//
// The pixel layout of the bits array is the same as for [bitmap.Bitmap],
// so no repacking is needed.
package xbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/dalifont/bitmap"
)

var (
	defineRe = regexp.MustCompile(`(?m)^\s*#\s*define\s+(\w+)_(width|height)\s+(\d+)`)
	bitsRe   = regexp.MustCompile(`(?s)\b(\w+)_bits\s*\[\s*\]\s*=\s*\{(.*?)\}`)
)

// ErrFormat is wrapped by all errors caused by malformed input.
var ErrFormat = errors.New("malformed XBM data")

// Decode reads an XBM image.  The returned name is the prefix of the
// "_width", "_height" and "_bits" identifiers.
func Decode(r io.Reader) (*bitmap.Bitmap, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	text := string(data)

	var name string
	width, height := -1, -1
	for _, m := range defineRe.FindAllStringSubmatch(text, -1) {
		if name == "" {
			name = m[1]
		} else if m[1] != name {
			continue
		}
		n, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, "", fmt.Errorf("xbm: %s_%s: %w", m[1], m[2], ErrFormat)
		}
		if m[2] == "width" {
			width = n
		} else {
			height = n
		}
	}
	if width < 0 || height < 0 {
		return nil, "", fmt.Errorf("xbm: missing width or height: %w", ErrFormat)
	}

	m := bitsRe.FindStringSubmatch(text)
	if m == nil || m[1] != name {
		return nil, "", fmt.Errorf("xbm: missing %s_bits array: %w", name, ErrFormat)
	}
	pixels := make([]byte, 0, bitmap.Stride(width)*height)
	for _, tok := range strings.Split(m[2], ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			return nil, "", fmt.Errorf("xbm: %s: invalid byte %q: %w", name, tok, ErrFormat)
		}
		pixels = append(pixels, byte(v))
	}

	b, err := bitmap.New(width, height, pixels)
	if err != nil {
		return nil, "", fmt.Errorf("xbm: %s: %w", name, errors.Join(err, ErrFormat))
	}
	return b, name, nil
}

// Encode writes b in the format used by the X11 bitmap(1) program.
func Encode(w io.Writer, name string, b *bitmap.Bitmap) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "#define %s_width %d\n", name, b.Width)
	fmt.Fprintf(out, "#define %s_height %d\n", name, b.Height)
	fmt.Fprintf(out, "static unsigned char %s_bits[] = {", name)

	n := bitmap.Stride(b.Width) * b.Height
	for i := 0; i < n; i++ {
		if i%12 == 0 {
			out.WriteString("\n   ")
		} else {
			out.WriteByte(' ')
		}
		fmt.Fprintf(out, "0x%02x", b.Data[i])
		if i < n-1 {
			out.WriteByte(',')
		}
	}
	out.WriteString("};\n")
	return out.Flush()
}

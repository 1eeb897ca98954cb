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

// Package segdoc implements the JSON document format for segment tables.
//
// The document lists, for each of the twelve glyphs, one array per scanline.
// A scanline array contains the [left, right] pairs of the segments, with
// repeated segments omitted.  A consumer can restore the full set of
// [segment.MaxSegsPerLine] segments by repeating the last pair (see
// [segment.Expand]).
package segdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/dalifont"
	"seehuhn.de/go/dalifont/glyph"
	"seehuhn.de/go/dalifont/segment"
)

// Document is the serialised form of a [dalifont.Font].
type Document struct {
	FontNumber int `json:"font_number"`
	CharWidth  int `json:"char_width"`
	CharHeight int `json:"char_height"`
	ColonWidth int `json:"colon_width"`

	// Segments is indexed by glyph, then by row.
	Segments [][][]segment.Pair `json:"segments"`
}

// New converts a font into a document.
func New(F *dalifont.Font) *Document {
	doc := &Document{
		FontNumber: F.Selector,
		CharWidth:  F.CharWidth,
		CharHeight: F.CharHeight,
		ColonWidth: F.ColonWidth,
		Segments:   make([][][]segment.Pair, glyph.Count),
	}
	for _, g := range glyph.All {
		frame := F.Frames[g]
		rows := make([][]segment.Pair, len(frame))
		for y, line := range frame {
			rows[y] = line.Runs()
		}
		doc.Segments[g] = rows
	}
	return doc
}

// WriteTo writes the document as JSON, using one line per scanline.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, "{")
	fmt.Fprintf(buf, " \"font_number\": %d,\n", doc.FontNumber)
	fmt.Fprintf(buf, " \"char_width\": %d,\n", doc.CharWidth)
	fmt.Fprintf(buf, " \"char_height\": %d,\n", doc.CharHeight)
	fmt.Fprintf(buf, " \"colon_width\": %d,\n", doc.ColonWidth)
	fmt.Fprintln(buf, " \"segments\": [")
	for i, rows := range doc.Segments {
		fmt.Fprintln(buf, "  [")
		for y, row := range rows {
			buf.WriteString("   [")
			for j, p := range row {
				if j > 0 {
					buf.WriteByte(',')
				}
				fmt.Fprintf(buf, "[%d,%d]", p.Left, p.Right)
			}
			buf.WriteByte(']')
			if y < len(rows)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("  ]")
		if i < len(doc.Segments)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	fmt.Fprintln(buf, " ]")
	fmt.Fprintln(buf, "}")

	return buf.WriteTo(w)
}

// Decode reads a document and checks that it is well-formed.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("segdoc: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return doc, nil
}

var errNoPairs = errors.New("empty scanline")

func (doc *Document) check() error {
	if len(doc.Segments) != glyph.Count {
		return fmt.Errorf("segdoc: expected %d glyphs, got %d",
			glyph.Count, len(doc.Segments))
	}
	for _, g := range glyph.All {
		rows := doc.Segments[g]
		if len(rows) != doc.CharHeight {
			return fmt.Errorf("segdoc: %s: expected %d rows, got %d",
				g, doc.CharHeight, len(rows))
		}
		width := doc.width(g)
		for y, row := range rows {
			if len(row) == 0 {
				return fmt.Errorf("segdoc: %s: row %d: %w", g, y, errNoPairs)
			}
			if len(row) > segment.MaxSegsPerLine {
				return fmt.Errorf("segdoc: %s: row %d: %d segments, at most %d allowed",
					g, y, len(row), segment.MaxSegsPerLine)
			}
			for _, p := range row {
				if p.Left < 0 || p.Right > width {
					return fmt.Errorf("segdoc: %s: row %d: segment [%d,%d] outside width %d",
						g, y, p.Left, p.Right, width)
				}
			}
		}
	}
	return nil
}

func (doc *Document) width(g glyph.Glyph) int {
	if g == glyph.Colon {
		return doc.ColonWidth
	}
	return doc.CharWidth
}

// Font restores the full segment table from the document.
func (doc *Document) Font() (*dalifont.Font, error) {
	if err := doc.check(); err != nil {
		return nil, err
	}

	F := &dalifont.Font{
		Selector:   doc.FontNumber,
		CharWidth:  doc.CharWidth,
		CharHeight: doc.CharHeight,
		ColonWidth: doc.ColonWidth,
	}
	for _, g := range glyph.All {
		rows := doc.Segments[g]
		frame := make(segment.Frame, len(rows))
		for y, row := range rows {
			line, err := segment.Expand(row, doc.width(g))
			if err != nil {
				return nil, fmt.Errorf("segdoc: %s: row %d: %w", g, y, err)
			}
			frame[y] = line
		}
		F.Frames[g] = frame
	}
	return F, nil
}

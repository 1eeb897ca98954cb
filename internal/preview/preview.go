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

// Package preview draws segment tables as ASCII art.
package preview

import (
	"bufio"
	"io"
	"strings"

	"seehuhn.de/go/dalifont"
	"seehuhn.de/go/dalifont/glyph"
)

const gap = 2

// Write renders all glyphs of F, rebuilt from their segments, next to each
// other.  Glyphs wrap onto a new band when a line would be longer than
// columns characters.  At least one glyph is placed on every band.
func Write(w io.Writer, F *dalifont.Font, columns int) error {
	cells := make([][]string, 0, glyph.Count)
	for _, g := range glyph.All {
		b, err := F.Frames[g].Bitmap(F.Width(g))
		if err != nil {
			return err
		}
		rows := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		label := string(g.Rune())
		cells = append(cells, append([]string{label + strings.Repeat(" ", b.Width-1)}, rows...))
	}

	out := bufio.NewWriter(w)
	for start := 0; start < len(cells); {
		end := start + 1
		used := len(cells[start][0])
		for end < len(cells) && used+gap+len(cells[end][0]) <= columns {
			used += gap + len(cells[end][0])
			end++
		}

		if start > 0 {
			out.WriteByte('\n')
		}
		for y := range cells[start] {
			line := &strings.Builder{}
			for i, cell := range cells[start:end] {
				if i > 0 {
					line.WriteString(strings.Repeat(" ", gap))
				}
				line.WriteString(cell[y])
			}
			out.WriteString(strings.TrimRight(line.String(), " "))
			out.WriteByte('\n')
		}
		start = end
	}
	return out.Flush()
}

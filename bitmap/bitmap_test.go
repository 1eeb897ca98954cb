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

package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAt(t *testing.T) {
	// 10 pixels wide: two bytes per row
	data := []byte{
		0b00011100, 0b00000010, // ..###....#
		0b00000001, 0b00000000, // #.........
	}
	b, err := New(10, 2, data)
	if err != nil {
		t.Fatal(err)
	}

	want := "..###....#\n#.........\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", diff)
	}
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		w, h int
		n    int
	}{
		{0, 1, 0},
		{1, 0, 0},
		{8, 2, 3},
		{9, 2, 2},
	}
	for _, c := range cases {
		_, err := New(c.w, c.h, make([]byte, c.n))
		if err == nil {
			t.Errorf("New(%d, %d, [%d]byte) succeeded", c.w, c.h, c.n)
		}
	}
}

func TestAtPanics(t *testing.T) {
	b, err := Parse("##")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("out of bounds access did not panic")
		}
	}()
	b.At(2, 0)
}

func TestParse(t *testing.T) {
	b, err := Parse(
		"#........X",
		"..........",
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x02, 0x00, 0x00}
	if diff := cmp.Diff(want, b.Data); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}

	_, err = Parse("###", "##")
	if err == nil {
		t.Error("ragged drawing accepted")
	}
	_, err = Parse()
	if err == nil {
		t.Error("empty drawing accepted")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewAlpha(image.Rect(3, 5, 14, 8))
	img.SetAlpha(3, 5, color.Alpha{A: 0xFF})
	img.SetAlpha(11, 5, color.Alpha{A: 0x80})
	img.SetAlpha(12, 5, color.Alpha{A: 0x7F})
	img.SetAlpha(13, 7, color.Alpha{A: 0xFF})

	b, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Parse(
		"#.......#..",
		"...........",
		"..........#",
	)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Equal(want) {
		t.Errorf("wrong pixels:\n%s\nwant:\n%s", b, want)
	}
	if diff := cmp.Diff(want.Data, b.Data); diff != "" {
		t.Errorf("padding bits differ (-want +got):\n%s", diff)
	}
}

func TestEqualIgnoresPadding(t *testing.T) {
	a, err := New(3, 1, []byte{0b00000101})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(3, 1, []byte{0b11111101})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("padding bits were compared")
	}
	c, _ := Parse("#.#.")
	if a.Equal(c) {
		t.Error("bitmaps of different width compared equal")
	}
}

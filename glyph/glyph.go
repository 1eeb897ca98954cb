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

// Package glyph enumerates the symbols of a morphing clock font.
package glyph

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// Glyph identifies one of the twelve symbols of a clock font.
type Glyph int

// The glyphs in canonical order.
const (
	Zero Glyph = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Colon
	Slash
)

// Count is the number of glyphs in every clock font.
const Count = 12

// All lists the glyphs in canonical order.
var All = [Count]Glyph{
	Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine, Colon, Slash,
}

var baseNames = [Count]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
	"colon", "slash",
}

// IsValid reports whether g is one of the twelve clock glyphs.
func (g Glyph) IsValid() bool {
	return g >= 0 && g < Count
}

// Rune returns the character shown by the glyph.
func (g Glyph) Rune() rune {
	switch {
	case g >= Zero && g <= Nine:
		return '0' + rune(g)
	case g == Colon:
		return ':'
	case g == Slash:
		return '/'
	default:
		return 0
	}
}

// BaseName returns the name used for the glyph in asset file names,
// e.g. "zero" for [Zero] and "colon" for [Colon].
func (g Glyph) BaseName() string {
	if !g.IsValid() {
		return ""
	}
	return baseNames[g]
}

// String returns the Unicode name of the glyph's character,
// e.g. "DIGIT SEVEN" or "SOLIDUS".
func (g Glyph) String() string {
	if !g.IsValid() {
		return fmt.Sprintf("Glyph(%d)", int(g))
	}
	return runenames.Name(g.Rune())
}

// FromRune returns the glyph showing r.
// The second return value is false if r is not a clock character.
func FromRune(r rune) (Glyph, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Glyph(r - '0'), true
	case r == ':':
		return Colon, true
	case r == '/':
		return Slash, true
	default:
		return 0, false
	}
}

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

// Package outline renders clock glyphs from the outlines of the Go fonts.
//
// This is the built-in glyph source.  The glyph outlines are scaled so that
// the distance between the font's ascent and descent equals the pixel height
// of the requested size, filled using an anti-aliasing rasteriser, and then
// thresholded at 50% coverage.
package outline

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/dalifont/bitmap"
	"seehuhn.de/go/dalifont/fonttable"
	clock "seehuhn.de/go/dalifont/glyph"
)

// Face identifies one of the Go fonts.
type Face int

// The faces of the Go font family.
const (
	Regular Face = iota
	Bold
	BoldItalic
	Italic
	Medium
	MediumItalic
	Smallcaps
	SmallcapsItalic
	Mono
	MonoBold
	MonoBoldItalic
	MonoItalic
)

var ttf = map[Face][]byte{
	Regular:         goregular.TTF,
	Bold:            gobold.TTF,
	BoldItalic:      gobolditalic.TTF,
	Italic:          goitalic.TTF,
	Medium:          gomedium.TTF,
	MediumItalic:    gomediumitalic.TTF,
	Smallcaps:       gosmallcaps.TTF,
	SmallcapsItalic: gosmallcapsitalic.TTF,
	Mono:            gomono.TTF,
	MonoBold:        gomonobold.TTF,
	MonoBoldItalic:  gomonobolditalic.TTF,
	MonoItalic:      gomonoitalic.TTF,
}

var faceNames = map[string]Face{
	"regular":         Regular,
	"bold":            Bold,
	"bolditalic":      BoldItalic,
	"italic":          Italic,
	"medium":          Medium,
	"mediumitalic":    MediumItalic,
	"smallcaps":       Smallcaps,
	"smallcapsitalic": SmallcapsItalic,
	"mono":            Mono,
	"monobold":        MonoBold,
	"monobolditalic":  MonoBoldItalic,
	"monoitalic":      MonoItalic,
}

// ParseFace returns the face with the given name, for example "monobold".
// Names are case insensitive.
func ParseFace(name string) (Face, error) {
	f, ok := faceNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("outline: unknown Go font %q", name)
	}
	return f, nil
}

func (f Face) String() string {
	for name, f2 := range faceNames {
		if f2 == f {
			return name
		}
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Source renders clock glyphs from one of the Go fonts.
// It implements [fonttable.Source].
type Source struct {
	font *sfnt.Font
	cmap cmap.Subtable
}

// New parses the font data for the given face.
func New(f Face) (*Source, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("outline: unknown font %d", f)
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	if info.Outlines == nil {
		return nil, fmt.Errorf("outline: %s has no glyph outlines", f)
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}

	return &Source{font: info, cmap: subtable}, nil
}

// Glyphs implements the [fonttable.Source] interface.
//
// Digits and the slash are as wide as the advance width of the digit zero,
// the colon gets half that width.  Every glyph is centred horizontally in its
// cell.
func (s *Source) Glyphs(size fonttable.Size) ([clock.Count]*bitmap.Bitmap, error) {
	var res [clock.Count]*bitmap.Bitmap

	var gids [clock.Count]glyph.ID
	for _, g := range clock.All {
		gid := s.cmap.Lookup(g.Rune())
		if gid == 0 {
			return res, fmt.Errorf("outline: no glyph for %s", g)
		}
		gids[g] = gid
	}

	info := s.font
	scale := pixelScale(info.Ascent, info.Descent, size.Height)
	if scale <= 0 {
		return res, fmt.Errorf("outline: invalid vertical metrics")
	}
	charWidth := max(1, int(math.Round(float64(info.GlyphWidth(gids[clock.Zero]))*scale)))
	colonWidth := max(1, charWidth/2)

	for _, g := range clock.All {
		width := charWidth
		if g == clock.Colon {
			width = colonWidth
		}

		gid := gids[g]
		advance := float64(info.GlyphWidth(gid)) * scale
		M := matrix.Matrix{
			scale, 0,
			0, -scale,
			(float64(width) - advance) / 2, float64(info.Ascent) * scale,
		}
		img := rasterize(info.Outlines.Path(gid), M, width, size.Height)

		b, err := bitmap.FromImage(img)
		if err != nil {
			return res, fmt.Errorf("outline: %s: %w", g, err)
		}
		res[g] = b
	}
	return res, nil
}

// pixelScale returns the factor which maps font design units to pixels,
// so that the range from descent to ascent covers the given height.
func pixelScale(ascent, descent funit.Int16, height int) float64 {
	extent := float64(ascent) - float64(descent)
	if extent <= 0 {
		return 0
	}
	return float64(height) / extent
}

// rasterize fills the glyph outline p, after transformation by M,
// into an alpha mask of the given size.
func rasterize(p path.Path, M matrix.Matrix, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src

	apply := func(v vec.Vec2) (float32, float32) {
		x := M[0]*v.X + M[2]*v.Y + M[4]
		y := M[1]*v.X + M[3]*v.Y + M[5]
		return float32(x), float32(y)
	}

	for cmd, points := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(apply(points[0]))
		case path.CmdLineTo:
			r.LineTo(apply(points[0]))
		case path.CmdQuadTo:
			x1, y1 := apply(points[0])
			x2, y2 := apply(points[1])
			r.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := apply(points[0])
			x2, y2 := apply(points[1])
			x3, y3 := apply(points[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/dalifont"
	"seehuhn.de/go/dalifont/bitmap"
	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
	"seehuhn.de/go/dalifont/internal/testfont"
	"seehuhn.de/go/dalifont/segdoc"
	"seehuhn.de/go/dalifont/xbm"
)

func runTool(args ...string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	status := run("dalifont", args, stdout, stderr)
	return status, stdout.String(), stderr.String()
}

// writeXBM stores the test font as XBM files for the given size selector
// and returns the directory name.
func writeXBM(t *testing.T, sel int, glyphs [glyph.Count]*bitmap.Bitmap) string {
	t.Helper()
	dir := t.TempDir()
	size := fonttable.Sizes[sel]
	for _, g := range glyph.All {
		fname := xbm.FileName(g, size)
		buf := &bytes.Buffer{}
		if err := xbm.Encode(buf, strings.TrimSuffix(fname, ".xbm"), glyphs[g]); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, fname), buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"1", "2"}, {"--no-such-option", "1"}} {
		status, stdout, stderr := runTool(args...)
		if status != exitUsage {
			t.Errorf("%q: exit status %d", args, status)
		}
		if stdout != "" {
			t.Errorf("%q: unexpected output %q", args, stdout)
		}
		if !strings.Contains(stderr, "usage: dalifont") {
			t.Errorf("%q: missing usage message in %q", args, stderr)
		}
	}
}

func TestInvalidSelector(t *testing.T) {
	for _, arg := range []string{"99", "8", "x"} {
		status, stdout, stderr := runTool(arg)
		if status != exitFatal {
			t.Errorf("%q: exit status %d", arg, status)
		}
		if stdout != "" {
			t.Errorf("%q: unexpected output %q", arg, stdout)
		}
		if !strings.HasPrefix(stderr, "dalifont: invalid font size") {
			t.Errorf("%q: unexpected diagnostic %q", arg, stderr)
		}
	}
}

func TestBuiltin(t *testing.T) {
	status, stdout, stderr := runTool("7")
	if status != exitOK {
		t.Fatalf("exit status %d: %s", status, stderr)
	}
	doc, err := segdoc.Decode(strings.NewReader(stdout))
	if err != nil {
		t.Fatal(err)
	}
	if doc.FontNumber != 7 || doc.CharHeight != fonttable.Sizes[7].Height {
		t.Errorf("wrong header: font %d, height %d", doc.FontNumber, doc.CharHeight)
	}
}

func TestXBM(t *testing.T) {
	dir := writeXBM(t, 3, testfont.Bitmaps())

	F, err := dalifont.New(testfont.Source{}, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := &bytes.Buffer{}
	if _, err := segdoc.New(F).WriteTo(want); err != nil {
		t.Fatal(err)
	}

	status, stdout, stderr := runTool("-s", "xbm", "-d", dir, "3")
	if status != exitOK {
		t.Fatalf("exit status %d: %s", status, stderr)
	}
	if diff := cmp.Diff(want.String(), stdout); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	// compact output carries the same document
	status, stdout, _ = runTool("--source=xbm", "--dir", dir, "--compact", "3")
	if status != exitOK {
		t.Fatalf("exit status %d", status)
	}
	if strings.Count(stdout, "\n") != 1 {
		t.Errorf("compact output has %d lines", strings.Count(stdout, "\n"))
	}
	doc, err := segdoc.Decode(strings.NewReader(stdout))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(segdoc.New(F), doc); diff != "" {
		t.Errorf("document changed (-want +got):\n%s", diff)
	}

	// the files only exist for size C3
	status, stdout, stderr = runTool("-s", "xbm", "-d", dir, "4")
	if status != exitFatal || stdout != "" {
		t.Errorf("missing files: exit status %d, output %q", status, stdout)
	}
	if !strings.Contains(stderr, "zeroC2.xbm") {
		t.Errorf("missing file not reported: %q", stderr)
	}
}

func TestTooCurvy(t *testing.T) {
	glyphs := testfont.Padded(11)
	// six runs in a row
	curvy, err := bitmap.Parse(
		"#.#.#.#.#.#",
		"...........",
		"...........",
		"...........",
		"...........",
		"...........",
		"...........",
	)
	if err != nil {
		t.Fatal(err)
	}
	glyphs[glyph.Nine] = curvy
	dir := writeXBM(t, 0, glyphs)

	status, stdout, stderr := runTool("-s", "xbm", "-d", dir, "0")
	if status != exitFatal {
		t.Errorf("exit status %d", status)
	}
	if stdout != "" {
		t.Errorf("unexpected output %q", stdout)
	}
	if !strings.Contains(stderr, "too curvy") {
		t.Errorf("unexpected diagnostic %q", stderr)
	}
}

func TestMixedWidths(t *testing.T) {
	glyphs := testfont.Bitmaps()
	glyphs[glyph.Seven] = testfont.Padded(7)[glyph.Seven]
	dir := writeXBM(t, 5, glyphs)

	status, stdout, stderr := runTool("-s", "xbm", "-d", dir, "5")
	if status != exitFatal {
		t.Errorf("exit status %d", status)
	}
	if stdout != "" {
		t.Errorf("unexpected output %q", stdout)
	}
	if !strings.Contains(stderr, "DIGIT SEVEN has width 7, expected 5") {
		t.Errorf("unexpected diagnostic %q", stderr)
	}
}

func TestVerbose(t *testing.T) {
	dir := writeXBM(t, 6, testfont.Bitmaps())
	status, _, stderr := runTool("-v", "-p", "-s", "xbm", "-d", dir, "6")
	if status != exitOK {
		t.Fatalf("exit status %d: %s", status, stderr)
	}
	for _, want := range []string{"debug: font loaded", "DIGIT EIGHT", "runs=2", ".###."} {
		if !strings.Contains(stderr, want) {
			t.Errorf("%q missing from %q", want, stderr)
		}
	}
}

func TestVersion(t *testing.T) {
	status, stdout, _ := runTool("--version")
	if status != exitOK {
		t.Errorf("exit status %d", status)
	}
	if !strings.HasPrefix(stdout, "dalifont") {
		t.Errorf("unexpected version %q", stdout)
	}
}

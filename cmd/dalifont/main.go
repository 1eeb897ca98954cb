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

// Dalifont converts bitmap clock digits into segment tables.
//
// Usage:
//
//	dalifont [options] font > out.json
//
// The argument selects one of eight font sizes, from 0 (largest) to 7
// (smallest).  The segment table is written to standard output as JSON.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"seehuhn.de/go/dalifont"
	"seehuhn.de/go/dalifont/bdffont"
	"seehuhn.de/go/dalifont/fonttable"
	"seehuhn.de/go/dalifont/glyph"
	"seehuhn.de/go/dalifont/internal/buildinfo"
	"seehuhn.de/go/dalifont/internal/preview"
	"seehuhn.de/go/dalifont/internal/profile"
	"seehuhn.de/go/dalifont/outline"
	"seehuhn.de/go/dalifont/segdoc"
	"seehuhn.de/go/dalifont/xbm"
)

const (
	exitOK    = 0
	exitUsage = 1
	exitFatal = 2
)

const defaultColumns = 80

type options struct {
	Source  string         `short:"s" long:"source" choice:"gomono" choice:"xbm" choice:"bdf" default:"gomono" description:"where to get the glyph bitmaps from"`
	Dir     flags.Filename `short:"d" long:"dir" default:"." description:"directory with the XBM or BDF files"`
	GoFont  string         `short:"g" long:"gofont" default:"monobold" description:"Go font face used by the gomono source"`
	Compact bool           `short:"c" long:"compact" description:"write the JSON document on a single line"`
	Preview bool           `short:"p" long:"preview" description:"draw the glyphs on standard error"`
	Verbose bool           `short:"v" long:"verbose" description:"show glyph statistics"`

	CPUProfile string `long:"cpuprofile" value-name:"FILE" description:"write CPU profile to FILE"`
	MemProfile string `long:"memprofile" value-name:"FILE" description:"write memory profile to FILE"`
	Version    bool   `long:"version" description:"show version information and exit"`
}

func main() {
	progname := filepath.Base(os.Args[0])
	os.Exit(run(progname, os.Args[1:], os.Stdout, os.Stderr))
}

func run(progname string, args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = progname
	parser.Usage = "[options] font > out.json"
	args, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return exitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", progname, err)
		printUsage(stderr, progname)
		return exitUsage
	}

	if opts.Version {
		fmt.Fprintln(stdout, buildinfo.Short(progname))
		return exitOK
	}
	if len(args) != 1 {
		printUsage(stderr, progname)
		return exitUsage
	}

	log := newLogger(progname, stderr, opts.Verbose)

	stop, err := profile.Start(opts.CPUProfile, opts.MemProfile)
	if err != nil {
		log.Error(err)
		return exitFatal
	}
	defer func() {
		if err := stop(); err != nil {
			log.Warn(err)
		}
	}()

	out, F, err := convert(opts, args[0], log)
	if err != nil {
		log.Error(err)
		return exitFatal
	}

	if opts.Preview {
		if err := preview.Write(stderr, F, terminalWidth(stderr)); err != nil {
			log.Error(err)
			return exitFatal
		}
	}

	if _, err := stdout.Write(out); err != nil {
		log.Error(err)
		return exitFatal
	}
	return exitOK
}

func printUsage(w io.Writer, progname string) {
	fmt.Fprintf(w, "usage: %s [options] font > out.json\n", progname)
}

// convert builds the segment table for the font size given by arg and
// returns the encoded document.
func convert(opts *options, arg string, log *logrus.Logger) ([]byte, *dalifont.Font, error) {
	sel, err := strconv.Atoi(arg)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid font size %q", arg)
	}

	src, err := newSource(opts)
	if err != nil {
		return nil, nil, err
	}
	raw, err := fonttable.Load(src, sel)
	if err != nil {
		return nil, nil, err
	}
	F, err := dalifont.Build(raw)
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"source":      opts.Source,
		"size":        raw.Size.Name,
		"char_width":  F.CharWidth,
		"char_height": F.CharHeight,
		"colon_width": F.ColonWidth,
	}).Debug("font loaded")
	for _, g := range glyph.All {
		b := raw.Glyphs[g]
		log.WithFields(logrus.Fields{
			"size": fmt.Sprintf("%dx%d", b.Width, b.Height),
			"runs": F.Frames[g].MaxRuns(),
		}).Debug(g.String())
	}

	doc := segdoc.New(F)
	buf := &bytes.Buffer{}
	if opts.Compact {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, nil, err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	} else if _, err := doc.WriteTo(buf); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), F, nil
}

func newSource(opts *options) (fonttable.Source, error) {
	switch opts.Source {
	case "xbm":
		return xbm.Source{FS: os.DirFS(string(opts.Dir))}, nil
	case "bdf":
		return bdffont.Source{FS: os.DirFS(string(opts.Dir))}, nil
	default:
		face, err := outline.ParseFace(opts.GoFont)
		if err != nil {
			return nil, err
		}
		src, err := outline.New(face)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
}

// terminalWidth returns the width of the terminal w is connected to,
// or a default width if w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultColumns
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultColumns
	}
	return width
}

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
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

func newLogger(progname string, w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &diagFormatter{progname: progname}
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}

// diagFormatter formats log entries as "progname: message key=value ...".
// The level is shown for all entries except errors.
type diagFormatter struct {
	progname string
}

func (f *diagFormatter) Format(e *logrus.Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(f.progname)
	buf.WriteString(": ")
	if e.Level != logrus.ErrorLevel {
		buf.WriteString(e.Level.String())
		buf.WriteString(": ")
	}
	buf.WriteString(e.Message)
	for _, key := range slices.Sorted(maps.Keys(e.Data)) {
		fmt.Fprintf(buf, " %s=%v", key, e.Data[key])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

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

// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Info describes how the binary was built.
type Info struct {
	Path     string // main module path
	Version  string // module version, empty for development builds
	Revision string // VCS revision, shortened
	Dirty    bool   // the working tree had local modifications
}

// Read extracts the build information embedded by the Go toolchain.
// The second return value is false if no information is available.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return fromBuildInfo(bi), true
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Revision) > 8 {
		info.Revision = info.Revision[:8]
	}
	return info
}

// Short returns a one-line description like "dalifont (seehuhn.de/go/dalifont v0.3.0)".
func (info Info) Short(tool string) string {
	version := info.Version
	if version == "" {
		version = info.Revision
		if version != "" && info.Dirty {
			version += "+dirty"
		}
	}
	if version == "" {
		return tool
	}
	return tool + " (" + info.Path + " " + version + ")"
}

// Short describes the running binary, see [Info.Short].
func Short(tool string) string {
	info, ok := Read()
	if !ok {
		return tool
	}
	return info.Short(tool)
}

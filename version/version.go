// This file is part of Gopher3000.
//
// Gopher3000 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher3000 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher3000.  If not, see <https://www.gnu.org/licenses/>.


// Package version reports the version of the application. The version number
// is set by the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher3000/version.number=v0.1.0"
//
// When no number has been set the version is taken from the build
// information of the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher3000"

// set by the linker
var number string

// the vcs revision, suffixed with "+dirty" if the source had uncommitted
// changes at build time
var revision string

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// A version string of "unreleased" means the binary was built from a vcs
// checkout without a version number. A version string of "local" means there
// is neither a version number nor vcs information, which is what happens
// with "go run".
func Version() (string, string, bool) {
	if number != "" {
		return number, revision, true
	}
	return fromBuildInfo(), revision, false
}

// String returns a one line summary of the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func fromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "local"
	}

	var vcs bool
	for _, s := range info.Settings {
		if s.Key == "vcs" {
			vcs = true
		}
	}

	if vcs {
		return "unreleased"
	}
	return "local"
}

func init() {
	revision = "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified && revision != "no revision information" {
		revision = fmt.Sprintf("%s+dirty", revision)
	}
}

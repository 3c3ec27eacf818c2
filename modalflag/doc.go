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

// Package modalflag wraps the flag package of the standard library to handle
// program modes. Each mode has its own set of flags and can have its own
// sub-modes.
//
// Arguments are given with NewArgs() and then parsed with Parse(). After
// parsing, any sub-mode found is available through Mode() and the remaining
// arguments through RemainingArgs() and GetArg(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "MONITOR")
//	echo := md.AddBool("log", false, "echo log to stdout")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode in the list is the default. The default is used when
// the first argument after the flags is not one of the sub-modes. Sub-modes
// are not case sensitive.
//
// Calling NewMode() begins a new layer of parsing, starting with the
// arguments that follow the sub-mode. Flags added before the call to
// NewMode() are not available to the new layer.
//
// The Path() function returns the list of sub-modes found so far, separated
// by a slash.
package modalflag

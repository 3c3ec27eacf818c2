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

// Package prefs facilitates the storage of preferential values. The Bool,
// Int, Float and String types hold a single value of the named type. Each
// can have functions attached that run before and after the value changes:
//
//	var scale prefs.Int
//	scale.SetHookPost(func(v prefs.Value) error {
//		return resize(v.(int))
//	})
//
// Values are collected in a Disk, which saves the values to and loads the
// values from a file. Each value is stored on its own line:
//
//	key :: value
//
// A file can be shared by more than one Disk instance. Entries in the file
// that are not known to the Disk instance being saved are kept.
//
// Values can also be given on the command line. The command line stack is a
// list of groups of key/value pairs. A value on the top of the stack is used
// in preference to the value loaded from disk. A command line group is a
// string of the form:
//
//	key::value; key::value
package prefs

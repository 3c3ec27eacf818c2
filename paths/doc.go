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

// Package paths contains functions to prepare paths for resources used by
// the emulator: the NVRAM file, the preferences file, screenshots.
//
// Resources are kept in the .gopher3000 directory. If that directory exists
// in the current working directory it is used. Otherwise, the directory is
// placed in the user's configuration directory, without the leading dot.
package paths

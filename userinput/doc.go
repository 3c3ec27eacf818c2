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

// Package userinput handles input from the real keyboard of the user and
// forwards it to the emulated keyboard matrix.
//
// It can be thought of as a translation layer between the GUI implementation
// and the hardware keyboard package. Key names are the names used by SDL and
// so there is a bias towards that system.
//
// The Type() function presses and releases keys in sequence to produce a
// string of text. It is used by the monitor and by macros.
package userinput

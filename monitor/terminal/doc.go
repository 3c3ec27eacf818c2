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

// Package terminal defines the operations required for input and output by
// the monitor. Implementations are in the sub-packages.
//
// The plainterm package implements the Terminal interface with whatever mode
// the terminal is already in. The easyterm package wraps termios and
// implements the KeyReader interface, allowing individual key presses to be
// read from a terminal in raw mode.
package terminal

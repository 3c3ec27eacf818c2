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

// Package monitor implements a command line interface to a running
// machine. Commands are read from a terminal.Terminal, one per line, and the
// result of each command is written back to the same terminal.
//
// Commands are not case sensitive. Numeric arguments are decimal unless they
// are prefixed with "0x" or "$", in which case they are hexadecimal. Lines
// beginning with "#" or "--" are comments and are ignored.
//
// The KEYS command forwards key presses from the real keyboard to the
// emulated keyboard. It requires a terminal.KeyReader, which the monitor is
// given through the Keys field. Press Ctrl-C to leave KEYS mode.
package monitor

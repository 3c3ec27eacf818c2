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

// Package gpio emulates the connections made to the general purpose I/O
// ports of the DragonBall EZ in the AlphaSmart 3000.
//
// Port A drives the low byte of the keyboard column mask. Writing bit 6 of
// port A is the strobe that copies bits 0 to 6 of the port into the column
// mask. Port D is read-only and returns the row data of the most recent
// keyboard scan. A scan happens only when the high byte of the column mask is
// written, which is done through the memory mapped register handled by the
// WriteMatrixHigh() function.
//
// Port C is the 4 bit bus to the two LCD controllers:
//
//	bits 0-3	data nibble
//	bit 4		direction (set: read from controller)
//	bit 5		register select
//	bit 6		strobe controller 0
//	bit 7		strobe controller 1
//
// Writing a 1 to a strobe bit transfers a nibble to or from the controller.
// Writing a 0 to a strobe bit changes the latch only.
//
// Port G bit 4 is hard wired to logic 1.
//
// The DragonBall core sees each pin separately, so a write of the whole port
// is applied as eight bit writes, starting with bit 0.
package gpio

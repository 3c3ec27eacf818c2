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

// Package memory implements the memory bus of the AlphaSmart 3000, as seen
// by the CPU.
//
//	CPU ---- cpu.Bus ---- MEMORY ---- NVRAM
//	                        |
//	                        |---- ROM
//	                        |
//	                         ---- column mask register ---- gpio
//
// The bus is big-endian. Word and long word accesses must be aligned to an
// even address. A long word access is two word accesses, high word first.
//
// The column mask register is a single byte at 0x600000. On the 16 bit bus
// the register is on the upper byte lane of the word at that address. The
// lower byte lane is not connected. Writing the register causes the keyboard
// to be scanned, the details of which are handled by the gpio package.
//
// Accesses to unmapped addresses and writes to the ROM return errors created
// with the UnmappedAddress and ReadOnlyAddress patterns. The Peek() and
// Poke() functions are for debugging. They do not cause errors for ROM, which
// means the ROM can be patched with Poke().
package memory

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

// Package memorymap describes the address space of the AlphaSmart 3000 as seen
// by the CPU. The MapAddress() function decodes an address into an area and
// an offset into that area.
//
// The 68000 family has a 24 bit address bus so the upper byte of an address
// is ignored. Anything that does not fall into one of the defined areas is
// Unmapped.
package memorymap

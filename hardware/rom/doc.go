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

// Package rom assembles the ROM region of the AlphaSmart 3000.
//
// The region is built from three files, which are the files distributed by
// AlphaSmart as firmware updates:
//
//	smallos3krom.os3kos	0x4000 bytes at 0x0
//	os3krom.os3kos		0x44000 bytes at 0xc0000
//	alphawordplus.os3kapp	0x18cdc bytes at 0x8000
//
// After the second file is loaded the region from 0x100000 to 0x103fff is
// copied to 0x4000. LoadSet() assembles the region from the three files in a
// directory. LoadImage() loads a single file that already contains the
// assembled region.
//
// The region is larger than the address window of the ROM. The CPU can see
// only the first megabyte. Offsets inside the window but beyond the end of
// the data read as zero.
package rom

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

// Package nvram implements the battery-backed RAM of the AlphaSmart 3000.
//
// The RAM is mapped at the start of the address space. On reset the first
// 1KB of ROM is copied to the start of the RAM with the Seed() function. This
// is where the CPU finds its reset vectors. The rest of the RAM is left
// untouched by a reset.
//
// The content of the RAM can be loaded from and saved to a file on disk. A
// missing file is not an error and leaves the RAM filled with zeroes.
package nvram

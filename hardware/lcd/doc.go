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

// Package lcd defines the interface to the character LCD controllers of the
// AlphaSmart 3000 and the Bitmap type they render to.
//
// The machine has two KS0066 controllers (HD44780 compatible), each driving
// two rows of forty characters. The controllers are accessed over a 4 bit
// bus so the data of each transfer is always in the upper nibble of the
// byte. How a controller interprets the transfers is not the concern of the
// machine.
//
// The Recorder type is a Controller that records all transfers and renders a
// blank panel. It is the controller used by the machine unless another is
// supplied.
package lcd

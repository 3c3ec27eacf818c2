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

// Package keyboard emulates the scanned keyboard matrix of the AlphaSmart
// 3000. The keyboard is organised as 16 columns of 8 keys. The state of each
// column is a byte in which a pressed key reads as 0.
//
// The firmware selects columns by clearing bits in a 16 bit column mask and
// reads back the AND of every selected column with Scan(). Note that column i
// is selected by bit (i-1)&0xf of the mask and not by bit i. In other words,
// mask bit 15 selects column 0 and mask bit 0 selects column 1.
//
// The Keys table lists every key on the keyboard, its position in the matrix
// and the characters it produces. Positions not in the table are not
// connected to anything but they can still be set with SetColumn() and
// Press() for testing purposes.
//
// Every transition of a key is reported to the TransitionHandler, if one has
// been attached. In the AlphaSmart 3000 every key transition raises an
// interrupt.
package keyboard

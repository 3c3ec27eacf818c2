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

// Package display composites the panels of the two LCD controllers into the
// single screen of the AlphaSmart 3000.
//
// Controller 0 drives the top two rows of the screen and controller 1 drives
// the bottom two rows. Both controllers render into the same scratch bitmap,
// which is copied to the screen after each render. The image from controller
// 1 is placed 18 pixels below the top of the screen. Copies are clipped to the
// bounds of the screen.
//
// Image() converts an indexed bitmap to an image.RGBA with the palette of the
// machine. Screenshot() writes the converted image to a PNG file.
package display

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


// Package sdlplay is a simple SDL based GUI for the machine. It shows the
// composited screen in a window and forwards keyboard events to the
// emulation as userinput events.
//
// The window is created by NewSdlPlay() and serviced by Service(), both of
// which must be called from the main thread. NewFrame() is intended to be
// used as the OnFrame callback of the hardware.Machine type and is called
// from the emulation goroutine.
package sdlplay

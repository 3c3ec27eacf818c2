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


// Package gui is an abstraction layer for real GUI implementations. It
// defines the GUI interface that the implementations satisfy and the list of
// feature requests that can be made of them.
//
// Implementations are created on the main thread and the Service() function
// must be called regularly from that thread. SetFeature() is called from the
// emulation goroutine and blocks until the request has been serviced, so it
// must never be called from the main thread.
package gui

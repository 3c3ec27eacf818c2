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

// Package clocks defines the clock rates of the components in the AlphaSmart
// 3000.
//
// The CPU clock is the rated speed of the MC68EZ328PU16V part and has not
// been verified on hardware. The LCD controller clock is the typical value
// from the KS0066 datasheet. The refresh rate is an estimate.
package clocks

// Clock rates in Hz.
const (
	CPU = 16000000
	LCD = 270000
)

// RefreshRate of the LCD in frames per second.
const RefreshRate = 50

// CyclesPerFrame is the number of CPU cycles in one frame.
const CyclesPerFrame = CPU / RefreshRate

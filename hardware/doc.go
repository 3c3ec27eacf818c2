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

// Package hardware is the base package for the AlphaSmart 3000 emulation. It
// and its sub-packages contain everything required to emulate the machine,
// with the exception of the CPU core and the character rendering of the LCD
// controllers. Both of those are connected through interfaces.
//
// The Machine type wires the components together. The CPU core sees the
// machine through the memory bus and the GPIO ports:
//
//	                 cpu.Bus       ---- NVRAM
//	CPU core ---- memory.Memory ---|---- ROM
//	   |                           |
//	   |                            ---- column mask register
//	   |                                        |
//	    -------- cpu.PortBus ---- gpio.Ports ---|---- keyboard.Matrix
//	                                            |
//	                                             ---- lcd.Controller x 2
//
// The screen is composited from the two LCD controllers once per frame by
// the display package.
//
// The Machine also implements the logger.Permission interface. Logging from
// all components of the machine can be turned off with SetLogging().
package hardware

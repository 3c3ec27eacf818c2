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

// Package cpu defines the interfaces between the machine and a 68000-family
// CPU core. Instruction execution is not implemented by this repository. A
// core is any type that implements the Core interface and it is created by a
// NewCore function, which is given the memory bus and the port bus of the
// machine.
//
// The idle sub-package contains a core that executes nothing. It is useful
// when the machine is being driven from outside, by the monitor or by a
// script, in place of a real CPU.
package cpu

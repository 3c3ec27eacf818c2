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

package cpu

import (
	"fmt"
	"strings"
)

// Bus is the big-endian memory bus as seen by the CPU core. Addresses are
// byte addresses.
type Bus interface {
	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)
	Read32(address uint32) (uint32, error)
	Write8(address uint32, data uint8) error
	Write16(address uint32, data uint16) error
	Write32(address uint32, data uint32) error
}

// PortID identifies one of the general purpose I/O ports of the DragonBall
// EZ.
type PortID int

// List of valid PortID values. Only the ports that are connected to anything
// in the AlphaSmart 3000 are listed.
const (
	PortA PortID = iota
	PortC
	PortD
	PortG
)

func (id PortID) String() string {
	switch id {
	case PortA:
		return "A"
	case PortC:
		return "C"
	case PortD:
		return "D"
	case PortG:
		return "G"
	}
	return fmt.Sprintf("unknown port (%d)", int(id))
}

// ParsePortID converts a port name to a PortID. The name can be a single
// letter or be prefixed with "port" and is not case sensitive.
func ParsePortID(s string) (PortID, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "PORT")
	switch s {
	case "A":
		return PortA, true
	case "C":
		return PortC, true
	case "D":
		return PortD, true
	case "G":
		return PortG, true
	}
	return PortA, false
}

// PortBus is how the CPU core accesses the GPIO ports. A write to a port is
// the equivalent of driving all eight pins of the port.
type PortBus interface {
	ReadPort(id PortID) uint8
	WritePort(id PortID, data uint8)
}

// LineState is the state of an interrupt input line.
type LineState int

// List of valid LineState values.
const (
	// the line is not asserted
	ClearLine LineState = iota

	// the line is asserted until it is cleared
	AssertLine

	// the line is asserted until the interrupt is acknowledged by the core
	HoldLine
)

func (s LineState) String() string {
	switch s {
	case ClearLine:
		return "clear"
	case AssertLine:
		return "assert"
	case HoldLine:
		return "hold"
	}
	return fmt.Sprintf("unknown line state (%d)", int(s))
}

// The interrupt level raised by the keyboard on every key transition.
const KeyboardIRQ = 4

// Core is the interface to a CPU core.
type Core interface {
	// Reset the core. The core should fetch its initial stack pointer and
	// program counter from the bus.
	Reset() error

	// Step executes a single instruction and returns the number of cycles
	// consumed. A core should never return zero cycles without an error.
	Step() (int, error)

	// SetInputLine changes the state of an interrupt line.
	SetInputLine(level int, state LineState)
}

// NewCore creates a core connected to the memory bus and to the port bus.
type NewCore func(mem Bus, ports PortBus) Core

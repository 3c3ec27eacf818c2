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

// Package idle implements a cpu.Core that executes nothing. Each call to
// Step() consumes a fixed number of cycles so that frame timing still
// works. Interrupts are acknowledged immediately.
package idle

import (
	"fmt"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/cpu"
)

// the number of cycles consumed by each call to Step(). the value is the
// length of a typical short 68000 instruction.
const cyclesPerStep = 4

// Idle is a CPU core that does nothing except read the reset vectors.
type Idle struct {
	mem   cpu.Bus
	ports cpu.PortBus

	// the values of the reset vectors read in Reset()
	StackPointer   uint32
	ProgramCounter uint32

	// number of cycles since reset
	Cycles int

	// count of interrupts seen on each level. interrupts are acknowledged as
	// soon as they are raised
	Interrupts [8]int
}

// NewIdle is the preferred method of initialisation for the Idle type. It
// satisfies the cpu.NewCore type.
func NewIdle(mem cpu.Bus, ports cpu.PortBus) cpu.Core {
	return &Idle{
		mem:   mem,
		ports: ports,
	}
}

func (c *Idle) String() string {
	return fmt.Sprintf("idle: SP=%#08x PC=%#08x cycles=%d", c.StackPointer, c.ProgramCounter, c.Cycles)
}

// Reset implements the cpu.Core interface.
func (c *Idle) Reset() error {
	var err error

	c.StackPointer, err = c.mem.Read32(0x00000000)
	if err != nil {
		return curated.Errorf("idle: %v", err)
	}
	c.ProgramCounter, err = c.mem.Read32(0x00000004)
	if err != nil {
		return curated.Errorf("idle: %v", err)
	}

	c.Cycles = 0
	c.Interrupts = [8]int{}

	return nil
}

// Step implements the cpu.Core interface.
func (c *Idle) Step() (int, error) {
	c.Cycles += cyclesPerStep
	return cyclesPerStep, nil
}

// SetInputLine implements the cpu.Core interface.
func (c *Idle) SetInputLine(level int, state cpu.LineState) {
	if level < 0 || level >= len(c.Interrupts) {
		return
	}
	if state != cpu.ClearLine {
		c.Interrupts[level]++
	}
}

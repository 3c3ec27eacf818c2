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

package idle_test

import (
	"testing"

	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/hardware/cpu/idle"
	"github.com/jetsetilly/gopher3000/test"
)

type bus struct {
	data map[uint32]uint32
}

func (b bus) Read8(address uint32) (uint8, error)       { return 0, nil }
func (b bus) Read16(address uint32) (uint16, error)     { return 0, nil }
func (b bus) Read32(address uint32) (uint32, error)     { return b.data[address], nil }
func (b bus) Write8(address uint32, data uint8) error   { return nil }
func (b bus) Write16(address uint32, data uint16) error { return nil }
func (b bus) Write32(address uint32, data uint32) error { return nil }

func TestIdle(t *testing.T) {
	b := bus{data: map[uint32]uint32{0: 0x00001000, 4: 0x00400100}}
	c := idle.NewIdle(b, nil).(*idle.Idle)

	test.DemandSuccess(t, c.Reset())
	test.ExpectEquality(t, c.StackPointer, uint32(0x00001000))
	test.ExpectEquality(t, c.ProgramCounter, uint32(0x00400100))

	n, err := c.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, n > 0)
	test.ExpectEquality(t, c.Cycles, n)

	c.SetInputLine(cpu.KeyboardIRQ, cpu.HoldLine)
	c.SetInputLine(cpu.KeyboardIRQ, cpu.ClearLine)
	c.SetInputLine(9, cpu.HoldLine)
	test.ExpectEquality(t, c.Interrupts[cpu.KeyboardIRQ], 1)
}

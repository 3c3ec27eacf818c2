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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/hardware/gpio"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/hardware/memory"
	"github.com/jetsetilly/gopher3000/hardware/nvram"
	"github.com/jetsetilly/gopher3000/hardware/rom"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/test"
)

type fixture struct {
	mem    *memory.Memory
	ports  *gpio.Ports
	matrix *keyboard.Matrix
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	d := make([]uint8, 0x1000)
	for i := range d {
		d[i] = uint8(i)
	}
	r, err := rom.NewROM("test", d)
	test.DemandSuccess(t, err)

	m := keyboard.NewMatrix()
	p := gpio.NewPorts(logger.Allow, m, [gpio.NumControllers]lcd.Controller{lcd.NewRecorder(), lcd.NewRecorder()})
	mem := memory.NewMemory(logger.Allow, nvram.NewNVRAM(logger.Allow), r, p)

	return fixture{mem: mem, ports: p, matrix: m}
}

// memory.Memory must satisfy the cpu.Bus interface
var _ cpu.Bus = (*memory.Memory)(nil)

func TestRAM(t *testing.T) {
	f := newFixture(t)

	test.ExpectSuccess(t, f.mem.Write8(0x1000, 0xab))
	v, err := f.mem.Read8(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xab))

	test.ExpectSuccess(t, f.mem.Write16(0x2000, 0x1234))
	test.ExpectEquality(t, f.mem.NVRAM.Data[0x2000], uint8(0x12))
	test.ExpectEquality(t, f.mem.NVRAM.Data[0x2001], uint8(0x34))

	test.ExpectSuccess(t, f.mem.Write32(0x3fffc, 0xdeadbeef))
	l, err := f.mem.Read32(0x3fffc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, uint32(0xdeadbeef))

	test.ExpectEquality(t, f.mem.LastAddress, uint32(0x3fffe))
	test.ExpectFailure(t, f.mem.LastWrite)
}

func TestROM(t *testing.T) {
	f := newFixture(t)

	v, err := f.mem.Read16(0x400010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x1011))

	// beyond the data, inside the window
	b, err := f.mem.Read8(0x4fffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x00))

	err = f.mem.Write8(0x400000, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.ReadOnlyAddress))

	// poke is allowed to patch rom
	test.ExpectSuccess(t, f.mem.Poke(0x400000, 0xff))
	b, err = f.mem.Peek(0x400000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0xff))
}

func TestUnmapped(t *testing.T) {
	f := newFixture(t)

	_, err := f.mem.Read8(0x00040000)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))

	err = f.mem.Write16(0x00500000, 0x0000)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))

	_, err = f.mem.Read8(0x00600001)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))

	_, err = f.mem.Peek(0x00700000)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))

	_, err = f.mem.Read16(0x00001001)
	test.ExpectSuccess(t, curated.Is(err, memory.UnalignedAddress))
}

func TestMatrixRegister(t *testing.T) {
	f := newFixture(t)

	// low byte of the column mask selects column 1 (mask bit 0)
	f.ports.WritePort(cpu.PortA, 0x7e)
	f.matrix.Press(keyboard.Key{Column: 1, Row: 4})

	// writing the high byte scans the keyboard. mask bit 15 (column 0) and
	// mask bit 7 (column 8) are also selected
	test.ExpectSuccess(t, f.mem.Write8(0x600000, 0x7f))
	test.ExpectEquality(t, f.ports.ReadPort(cpu.PortD), f.matrix.Scan(0x7f7e))
	test.ExpectEquality(t, f.ports.ReadPort(cpu.PortD), uint8(0xef))

	v, err := f.mem.Read8(0x600000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x7f))

	// the register is on the upper byte lane
	test.ExpectSuccess(t, f.mem.Write16(0x600000, 0xff00))
	test.ExpectEquality(t, f.ports.MatrixHigh(), uint8(0xff))
	w, err := f.mem.Read16(0x600000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0xff00))
	test.ExpectEquality(t, f.ports.ReadPort(cpu.PortD), f.matrix.Scan(0xff7e))
}

func TestDump(t *testing.T) {
	f := newFixture(t)
	d := f.mem.Dump(0x400002, 4)
	test.ExpectEquality(t, strings.TrimSpace(d), "400000 |       02 03 04 05")

	d = f.mem.Dump(0x3fffe, 4)
	test.ExpectSuccess(t, strings.Contains(d, "040000 | -- --"))

	// the top of the address space
	d = f.mem.Dump(0xfffffff0, 15)
	test.ExpectEquality(t, strings.Count(d, "\n"), 1)
	test.ExpectEquality(t, strings.Count(d, "--"), 15)

	d = f.mem.Dump(0xffffff00, 0x100)
	test.ExpectEquality(t, strings.Count(d, "\n"), 16)
	test.ExpectEquality(t, strings.Count(d, "--"), 0x100)
}

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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher3000/hardware/nvram"
	"github.com/jetsetilly/gopher3000/hardware/rom"
	"github.com/jetsetilly/gopher3000/logger"
)

// Sentinel error patterns.
const (
	UnmappedAddress  = "memory: unmapped address (%#08x)"
	ReadOnlyAddress  = "memory: write to read-only address (%#08x)"
	UnalignedAddress = "memory: unaligned access (%#08x)"
)

// MatrixRegister is the interface to the high byte of the keyboard column
// mask.
type MatrixRegister interface {
	MatrixHigh() uint8
	WriteMatrixHigh(data uint8)
}

// DebugBus defines the meta-operations for memory, meaning operations outside
// of the normal operation of the machine.
type DebugBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, data uint8) error
}

// Memory implements the cpu.Bus interface.
type Memory struct {
	perm logger.Permission

	NVRAM  *nvram.NVRAM
	ROM    *rom.ROM
	matrix MatrixRegister

	// the most recent address accessed by the CPU and whether it was a write
	LastAddress uint32
	LastWrite   bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(perm logger.Permission, nv *nvram.NVRAM, r *rom.ROM, matrix MatrixRegister) *Memory {
	return &Memory{
		perm:   perm,
		NVRAM:  nv,
		ROM:    r,
		matrix: matrix,
	}
}

func (mem *Memory) String() string {
	return memorymap.Summary()
}

func (mem *Memory) read(address uint32) (uint8, error) {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.NVRAM.Read8(offset), nil
	case memorymap.ROM:
		if mem.ROM == nil {
			return 0, nil
		}
		return mem.ROM.Read8(offset), nil
	case memorymap.MatrixHigh:
		return mem.matrix.MatrixHigh(), nil
	}
	return 0, curated.Errorf(UnmappedAddress, address)
}

func (mem *Memory) write(address uint32, data uint8) error {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.NVRAM.Write8(offset, data)
		return nil
	case memorymap.ROM:
		return curated.Errorf(ReadOnlyAddress, address)
	case memorymap.MatrixHigh:
		mem.matrix.WriteMatrixHigh(data)
		return nil
	}
	return curated.Errorf(UnmappedAddress, address)
}

// Read8 implements the cpu.Bus interface.
func (mem *Memory) Read8(address uint32) (uint8, error) {
	mem.LastAddress = address
	mem.LastWrite = false
	return mem.read(address)
}

// Write8 implements the cpu.Bus interface.
func (mem *Memory) Write8(address uint32, data uint8) error {
	mem.LastAddress = address
	mem.LastWrite = true
	return mem.write(address, data)
}

// Read16 implements the cpu.Bus interface.
func (mem *Memory) Read16(address uint32) (uint16, error) {
	if address&0x01 == 0x01 {
		return 0, curated.Errorf(UnalignedAddress, address)
	}

	mem.LastAddress = address
	mem.LastWrite = false

	hi, err := mem.read(address)
	if err != nil {
		return 0, err
	}

	// lower byte lane of the register is not connected
	if memorymap.IsArea(address, memorymap.MatrixHigh) {
		return uint16(hi) << 8, nil
	}

	lo, err := mem.read(address + 1)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 implements the cpu.Bus interface.
func (mem *Memory) Write16(address uint32, data uint16) error {
	if address&0x01 == 0x01 {
		return curated.Errorf(UnalignedAddress, address)
	}

	mem.LastAddress = address
	mem.LastWrite = true

	if memorymap.IsArea(address, memorymap.MatrixHigh) {
		return mem.write(address, uint8(data>>8))
	}

	if err := mem.write(address, uint8(data>>8)); err != nil {
		return err
	}
	return mem.write(address+1, uint8(data))
}

// Read32 implements the cpu.Bus interface.
func (mem *Memory) Read32(address uint32) (uint32, error) {
	hi, err := mem.Read16(address)
	if err != nil {
		return 0, err
	}
	lo, err := mem.Read16(address + 2)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// Write32 implements the cpu.Bus interface.
func (mem *Memory) Write32(address uint32, data uint32) error {
	if err := mem.Write16(address, uint16(data>>16)); err != nil {
		return err
	}
	return mem.Write16(address+2, uint16(data))
}

// Peek implements the DebugBus interface. The column mask register returns
// the stored value.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	return mem.read(address)
}

// Poke implements the DebugBus interface. Writing to ROM is allowed. Writing
// to the column mask register rescans the keyboard in the same way as a
// write by the CPU.
func (mem *Memory) Poke(address uint32, data uint8) error {
	offset, area := memorymap.MapAddress(address)
	if area == memorymap.ROM {
		if mem.ROM == nil {
			return curated.Errorf(UnmappedAddress, address)
		}
		mem.ROM.Poke(offset, data)
		logger.Logf(mem.perm, "memory", "rom patched at %#08x", address)
		return nil
	}
	return mem.write(address, data)
}

// Dump returns a hex dump of n bytes of memory starting at address. Unmapped
// bytes are shown as "--".
func (mem *Memory) Dump(address uint32, n int) string {
	s := strings.Builder{}

	// the range is calculated in 64 bits so that it does not wrap at the top
	// of the address space
	first := uint64(address)
	start := first &^ 0x0f
	end := first + uint64(n)

	for row := start; row < end; row += 16 {
		s.WriteString(fmt.Sprintf("%06x |", uint32(row)&memorymap.AddressMask))
		for a := row; a < row+16; a++ {
			if a < first || a >= end {
				s.WriteString("   ")
				continue
			}
			d, err := mem.Peek(uint32(a))
			if err != nil {
				s.WriteString(" --")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", d))
			}
		}
		s.WriteRune('\n')
	}

	return s.String()
}

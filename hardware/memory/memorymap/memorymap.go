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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	case MatrixHigh:
		return "MatrixHigh"
	}

	return "Unmapped"
}

// The different memory areas in the AlphaSmart 3000.
const (
	Unmapped Area = iota
	RAM
	ROM
	MatrixHigh
)

// The origin and memory top for each area of memory. Memtop values are
// inclusive.
const (
	OriginRAM    = uint32(0x00000000)
	MemtopRAM    = uint32(0x0003ffff)
	OriginROM    = uint32(0x00400000)
	MemtopROM    = uint32(0x004fffff)
	OriginMatrix = uint32(0x00600000)
	MemtopMatrix = uint32(0x00600000)
)

// Memtop is the top most address of the 24 bit address bus.
const Memtop = uint32(0x00ffffff)

// AddressMask removes the bits that are not connected to the address bus.
const AddressMask = Memtop

// MapAddress decodes the address into an Area and an offset from the origin
// of that area. The offset for an Unmapped address is the normalised address.
func MapAddress(address uint32) (uint32, Area) {
	address &= AddressMask

	switch {
	case address <= MemtopRAM:
		return address - OriginRAM, RAM
	case address >= OriginROM && address <= MemtopROM:
		return address - OriginROM, ROM
	case address >= OriginMatrix && address <= MemtopMatrix:
		return address - OriginMatrix, MatrixHigh
	}

	return address, Unmapped
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

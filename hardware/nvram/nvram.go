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

package nvram

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/logger"
)

// Size of the NVRAM in bytes.
const Size = 0x40000

// SeedSize is the number of bytes copied from ROM to NVRAM by Seed().
const SeedSize = 0x400

// Sentinel error patterns.
const (
	BadSize = "nvram: file is of incorrect size (%d bytes)"
)

// NVRAM is the battery-backed RAM of the machine.
type NVRAM struct {
	perm logger.Permission

	// amend Data only through Write8() and Seed() or by loading from disk
	Data []uint8

	// the data as it is on disk
	DiskData []uint8
}

// NewNVRAM is the preferred method of initialisation for the NVRAM type.
// The RAM is filled with zeroes.
func NewNVRAM(perm logger.Permission) *NVRAM {
	return &NVRAM{
		perm:     perm,
		Data:     make([]uint8, Size),
		DiskData: make([]uint8, Size),
	}
}

// Seed the start of NVRAM with the start of the ROM. If the rom data is
// shorter than SeedSize then only the available data is copied.
func (nv *NVRAM) Seed(rom []uint8) {
	n := copy(nv.Data[:SeedSize], rom)
	if n < SeedSize {
		logger.Logf(nv.perm, "nvram", "seeded with %d bytes (short rom)", n)
	}
}

// Read8 returns the byte at the offset.
func (nv *NVRAM) Read8(offset uint32) uint8 {
	return nv.Data[offset%Size]
}

// Write8 sets the byte at the offset.
func (nv *NVRAM) Write8(offset uint32, data uint8) {
	nv.Data[offset%Size] = data
}

// Read16 returns the big-endian word at the offset. The offset should be
// even.
func (nv *NVRAM) Read16(offset uint32) uint16 {
	return uint16(nv.Read8(offset))<<8 | uint16(nv.Read8(offset+1))
}

// Write16 sets the big-endian word at the offset.
func (nv *NVRAM) Write16(offset uint32, data uint16) {
	nv.Write8(offset, uint8(data>>8))
	nv.Write8(offset+1, uint8(data))
}

// Dirty returns true if the data has changed since it was last loaded or
// saved.
func (nv *NVRAM) Dirty() bool {
	return !bytes.Equal(nv.Data, nv.DiskData)
}

// Load NVRAM from the file. A missing file is logged and is not an error.
func (nv *NVRAM) Load(filename string) error {
	d, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(nv.perm, "nvram", "no nvram file found at %s", filename)
			return nil
		}
		return curated.Errorf("nvram: %v", err)
	}

	if len(d) != Size {
		return curated.Errorf(BadSize, len(d))
	}

	copy(nv.Data, d)
	copy(nv.DiskData, d)

	logger.Logf(nv.perm, "nvram", "loaded from %s", filename)

	return nil
}

// Save NVRAM to the file.
func (nv *NVRAM) Save(filename string) error {
	err := os.WriteFile(filename, nv.Data, 0600)
	if err != nil {
		return curated.Errorf("nvram: %v", err)
	}

	copy(nv.DiskData, nv.Data)

	logger.Logf(nv.perm, "nvram", "saved to %s", filename)

	return nil
}

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

package rom

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/logger"
)

// RegionSize is the size of the assembled ROM region.
const RegionSize = 0x104000

// WindowSize is the size of the ROM as seen by the CPU.
const WindowSize = 0x100000

// Sentinel error patterns.
const (
	BadSize = "rom: %s is of incorrect size (%d bytes, expecting %d)"
)

// Part is a single file in a ROM set.
type Part struct {
	Filename string
	Size     int
	Offset   int
}

// the part after which the copy is made
const copyAfter = "os3krom.os3kos"

// the copy made during assembly of the region
const (
	copySource = 0x100000
	copyDest   = 0x4000
	copyLength = 0x4000
)

// Parts of the ROM set in the order they are loaded.
var Parts = []Part{
	{Filename: "smallos3krom.os3kos", Size: 0x4000, Offset: 0x0},
	{Filename: "os3krom.os3kos", Size: 0x44000, Offset: 0xc0000},
	{Filename: "alphawordplus.os3kapp", Size: 0x18cdc, Offset: 0x8000},
}

// ROM is the assembled ROM region.
type ROM struct {
	// where the data came from. either a directory or a filename
	Source string

	// the assembled region. always RegionSize bytes long
	Data []uint8
}

// NewROM creates a ROM from data that contains an assembled region. Data
// shorter than the region is padded with zeroes.
func NewROM(source string, data []uint8) (*ROM, error) {
	if len(data) == 0 || len(data) > RegionSize {
		return nil, curated.Errorf(BadSize, source, len(data), RegionSize)
	}

	r := &ROM{
		Source: source,
		Data:   make([]uint8, RegionSize),
	}
	copy(r.Data, data)

	return r, nil
}

// LoadImage loads a file containing an assembled ROM region.
func LoadImage(filename string) (*ROM, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("rom: %v", err)
	}
	return NewROM(filename, d)
}

// LoadSet assembles the ROM region from the Parts found in the directory.
func LoadSet(dir string) (*ROM, error) {
	r := &ROM{
		Source: dir,
		Data:   make([]uint8, RegionSize),
	}

	for _, p := range Parts {
		fn := filepath.Join(dir, p.Filename)

		d, err := os.ReadFile(fn)
		if err != nil {
			return nil, curated.Errorf("rom: %v", err)
		}
		if len(d) != p.Size {
			return nil, curated.Errorf(BadSize, p.Filename, len(d), p.Size)
		}

		copy(r.Data[p.Offset:], d)

		if p.Filename == copyAfter {
			copy(r.Data[copyDest:copyDest+copyLength], r.Data[copySource:copySource+copyLength])
		}
	}

	return r, nil
}

// Load decides whether the path is a ROM set or an image. A directory is
// loaded with LoadSet() and a file with LoadImage().
func Load(path string) (*ROM, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, curated.Errorf("rom: %v", err)
	}

	var r *ROM
	if fi.IsDir() {
		r, err = LoadSet(path)
	} else {
		r, err = LoadImage(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "rom", "loaded from %s", r)

	return r, nil
}

func (r *ROM) String() string {
	return fmt.Sprintf("%s (%#x bytes)", r.Source, len(r.Data))
}

// Read8 returns the byte at the offset in the ROM window. Offsets beyond the
// data read as zero.
func (r *ROM) Read8(offset uint32) uint8 {
	if offset >= uint32(len(r.Data)) {
		return 0
	}
	return r.Data[offset]
}

// Poke sets the byte at the offset. Offsets beyond the data are ignored.
func (r *ROM) Poke(offset uint32, data uint8) {
	if offset >= uint32(len(r.Data)) {
		return
	}
	r.Data[offset] = data
}

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

package nvram_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/nvram"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/test"
)

func TestSeed(t *testing.T) {
	nv := nvram.NewNVRAM(logger.Allow)

	for i := range nv.Data {
		nv.Data[i] = 0xaa
	}

	rom := make([]uint8, 0x1000)
	for i := range rom {
		rom[i] = uint8(i)
	}

	nv.Seed(rom)
	for i := 0; i < nvram.SeedSize; i++ {
		test.ExpectEquality(t, nv.Data[i], rom[i], i)
	}

	// the rest of NVRAM is retained
	test.ExpectEquality(t, nv.Data[nvram.SeedSize], uint8(0xaa))
	test.ExpectEquality(t, nv.Data[nvram.Size-1], uint8(0xaa))

	// seeding twice gives the same result
	nv.Seed(rom)
	test.ExpectEquality(t, nv.Data[0x3ff], uint8(0xff))
}

func TestWords(t *testing.T) {
	nv := nvram.NewNVRAM(logger.Allow)
	nv.Write16(0x100, 0x1234)
	test.ExpectEquality(t, nv.Read8(0x100), uint8(0x12))
	test.ExpectEquality(t, nv.Read8(0x101), uint8(0x34))
	test.ExpectEquality(t, nv.Read16(0x100), uint16(0x1234))
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "nvram")

	nv := nvram.NewNVRAM(logger.Allow)

	// missing file is not an error
	test.ExpectSuccess(t, nv.Load(fn))
	test.ExpectFailure(t, nv.Dirty())

	nv.Write8(0x2000, 0x55)
	test.ExpectSuccess(t, nv.Dirty())
	test.DemandSuccess(t, nv.Save(fn))
	test.ExpectFailure(t, nv.Dirty())

	nv2 := nvram.NewNVRAM(logger.Allow)
	test.DemandSuccess(t, nv2.Load(fn))
	test.ExpectEquality(t, nv2.Read8(0x2000), uint8(0x55))

	// file of the wrong size
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3}, 0600))
	err := nv2.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, nvram.BadSize))
	test.ExpectEquality(t, nv2.Read8(0x2000), uint8(0x55))
}

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

import (
	"fmt"
	"strings"
)

// the boundaries of each area in address order. the summary visits only
// these addresses and the address immediately after each one, which is
// enough to find every change of area.
var boundaries = []uint32{
	OriginRAM, MemtopRAM,
	OriginROM, MemtopROM,
	OriginMatrix, MemtopMatrix,
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}

	var sa uint32
	_, current := MapAddress(0)

	edges := make([]uint32, 0, len(boundaries)*2)
	for _, b := range boundaries {
		if b > 0 {
			edges = append(edges, b)
		}
		if b < Memtop {
			edges = append(edges, b+1)
		}
	}

	var prev uint32
	for _, a := range edges {
		if a <= prev {
			continue
		}
		prev = a

		_, area := MapAddress(a)
		if area != current {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, Memtop, current.String()))

	return s.String()
}

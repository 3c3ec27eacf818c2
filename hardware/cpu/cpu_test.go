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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/test"
)

func TestParsePortID(t *testing.T) {
	for _, id := range []cpu.PortID{cpu.PortA, cpu.PortC, cpu.PortD, cpu.PortG} {
		p, ok := cpu.ParsePortID(id.String())
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, id)
	}

	p, ok := cpu.ParsePortID("portg")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, cpu.PortG)

	_, ok = cpu.ParsePortID("B")
	test.ExpectFailure(t, ok)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, cpu.PortC.String(), "C")
	test.ExpectEquality(t, cpu.PortID(10).String(), "unknown port (10)")
	test.ExpectEquality(t, cpu.HoldLine.String(), "hold")
}

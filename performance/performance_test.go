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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/gopher3000/performance"
	"github.com/jetsetilly/gopher3000/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(50, 100, 2.0)
	test.ExpectEquality(t, fps, 50.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = performance.CalcFPS(50, 50, 2.0)
	test.ExpectEquality(t, fps, 25.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, _ = performance.CalcFPS(50, 50, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfileString("cpu,foo")
	test.ExpectFailure(t, err)
}

func TestRunProfilerNone(t *testing.T) {
	ran := false
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}

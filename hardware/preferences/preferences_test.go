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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher3000/hardware/preferences"
	"github.com/jetsetilly/gopher3000/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.AutoSaveNVRAM.Get().(bool), true)
	test.ExpectEquality(t, p.ScreenshotScale.Get().(int), 4)
	test.ExpectEquality(t, p.Scale.Get().(int), 3)
	test.ExpectEquality(t, p.FPSCap.Get().(bool), true)

	// file is created on first use
	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "sdlplay.scale :: 3\n"))
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Scale.Set(5))
	test.ExpectSuccess(t, p.FPSCap.Set(false))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Scale.Get().(int), 5)
	test.ExpectEquality(t, q.FPSCap.Get().(bool), false)

	q.SetDefaults()
	test.ExpectEquality(t, q.Scale.Get().(int), 3)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.Scale.Get().(int), 5)
}

func TestScaleLimit(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectEquality(t, p.Scale.Get().(int), 3)
	test.ExpectFailure(t, p.ScreenshotScale.Set(-1))
}

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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/prefs"
	"github.com/jetsetilly/gopher3000/test"
)

func cmpFile(t *testing.T, path string, expected string) {
	t.Helper()
	d, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), expected)
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("true"))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.String(), "3")
	test.ExpectSuccess(t, v.Set(" 42 "))
	test.ExpectEquality(t, v.Get().(int), 42)
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(int), 42)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(1.5))
	test.ExpectEquality(t, v.String(), "1.500")
	test.ExpectSuccess(t, v.Set("0.25"))
	test.ExpectEquality(t, v.Get().(float64), 0.25)
	test.ExpectFailure(t, v.Set(true))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("hello world"))
	test.ExpectEquality(t, v.String(), "hello world")
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	test.ExpectEquality(t, v.String(), "abcde")
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return curated.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Bool
	var b prefs.Int
	test.ExpectSuccess(t, dsk.Add("test.bool", &a))
	test.ExpectSuccess(t, dsk.Add("test.int", &b))
	test.ExpectFailure(t, dsk.Add("test::bad", &b))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, a.Set(true))
	test.ExpectSuccess(t, b.Set(7))
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, prefs.WarningBoilerPlate+"\ntest.bool :: true\ntest.int :: 7\n")

	// a second disk instance sharing the same file
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var c prefs.String
	test.ExpectSuccess(t, dsk2.Add("other.string", &c))
	test.ExpectSuccess(t, c.Set("foo bar"))
	test.ExpectSuccess(t, dsk2.Save())
	cmpFile(t, fn, prefs.WarningBoilerPlate+"\nother.string :: foo bar\ntest.bool :: true\ntest.int :: 7\n")

	// reload the first disk instance
	test.ExpectSuccess(t, a.Reset())
	test.ExpectSuccess(t, b.Reset())
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, a.Get().(bool), true)
	test.ExpectEquality(t, b.Get().(int), 7)
	test.ExpectEquality(t, dsk.String(), "test.bool :: true\ntest.int :: 7\n")
}

func TestDiskSaveOnFirstUse(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectSuccess(t, dsk.Add("scale", &v))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpFile(t, fn, prefs.WarningBoilerPlate+"\nscale :: 2\n")
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("scale", &v))
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("scale::4; unused::yes")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 4)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::yes")
}

func TestDiskReset(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var a prefs.Bool
	var b prefs.String
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, a.Set(true))
	test.ExpectSuccess(t, b.Set("foo"))
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, a.Get().(bool), false)
	test.ExpectEquality(t, b.String(), "")
}

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
	"testing"

	"github.com/jetsetilly/gopher3000/prefs"
	"github.com/jetsetilly/gopher3000/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty stack
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	// a value can be retrieved only once
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// unused values are returned on pop
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// malformed entries are ignored
	prefs.PushCommandLineStack("foo::bar; baz; qux:: ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar; qux::")

	// the top of the stack hides earlier groups
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	ok, v = prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// popping an empty stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

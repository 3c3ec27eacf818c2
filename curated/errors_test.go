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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, f.Error(), "wrapped: test error: foo")
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testPattern))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("memory: %v", curated.Errorf("memory: unmapped address"))
	test.ExpectEquality(t, e.Error(), "memory: unmapped address")

	e = curated.Errorf("nvram: %v", curated.Errorf("nvram: %v", curated.Errorf("nvram: file too short")))
	test.ExpectEquality(t, e.Error(), "nvram: file too short")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("rom: %v", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	e = curated.Errorf("rom: no error value (%d)", 10)
	test.ExpectSuccess(t, errors.Unwrap(e) == nil)
}

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

package logger_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatAndPermission(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "gpio", "write to port D")
	logger.Log(logger.Allow, "gpio", "write to port D")
	logger.Log(logger.Allow, "gpio", "write to port D")
	logger.Log(deny{}, "gpio", "denied")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "gpio: write to port D (repeat x3)\n")

	tw.Clear()
	logger.Clear()
	logger.Logf(logger.Allow, "memory", "unmapped %#x", 0x800000)
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "memory: unmapped 0x800000\n")
}

func TestEchoAndLimit(t *testing.T) {
	logger.Clear()
	echo := &test.CompareWriter{}
	logger.SetEcho(echo)
	logger.Log(logger.Allow, "echo", "hello")
	logger.SetEcho(nil)
	logger.Log(logger.Allow, "echo", "silent")
	test.ExpectEquality(t, echo.String(), "echo: hello\n")

	logger.Clear()
	for i := 0; i < 1000; i++ {
		logger.Log(logger.Allow, "limit", fmt.Sprintf("%d", i))
	}
	e := logger.Copy()
	test.ExpectEquality(t, len(e), 256)
	test.ExpectEquality(t, e[len(e)-1].Detail, "999")
	test.ExpectEquality(t, e[0].Detail, "744")
}

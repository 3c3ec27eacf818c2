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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher3000/monitor/terminal"
	"github.com/jetsetilly/gopher3000/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher3000/test"
)

func TestRead(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("peek 0\r\nreset\nquit"), out)
	test.ExpectSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek 0")

	s, err = pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "reset")

	s, err = pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead("> ")
	test.ExpectEquality(t, err, io.EOF)

	// prompt is not shown for non-interactive terminals
	test.ExpectSuccess(t, out.Compare(""))
}

func TestPrint(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)

	pt.TermPrintLine(terminal.StyleNormal, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("hello\n* bad\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleHelp, "help")
	pt.TermPrintLine(terminal.StyleError, "still bad")
	test.ExpectSuccess(t, out.Compare("* still bad\n"))
}

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

//go:build !windows

package easyterm

import (
	"bufio"
	"os"
	"sync"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/monitor/terminal"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The input file must be a terminal.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("easyterm: terminal requires an input and an output file")
	}
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal)
	}

	pt := &Terminal{
		input:  input,
		output: output,
		reader: bufio.NewReader(input),
	}

	// prepare the attributes for the different terminal modes we'll be using
	var can unix.Termios
	err := termios.Tcgetattr(pt.input.Fd(), &can)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}
	pt.canAttr = can
	pt.rawAttr = can
	pt.cbreakAttr = can
	termios.Cfmakeraw(&pt.rawAttr)
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// Geometry returns the number of columns and rows of the output terminal.
func (pt *Terminal) Geometry() (cols int, rows int, err error) {
	cols, rows, err = term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return 0, 0, curated.Errorf("easyterm: %v", err)
	}
	return cols, rows, nil
}

func (pt *Terminal) setAttr(attr *unix.Termios) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, attr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return pt.setAttr(&pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return pt.setAttr(&pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return pt.setAttr(&pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// ReadKey implements the terminal.KeyReader interface. The terminal should
// be in raw mode.
func (pt *Terminal) ReadKey() (terminal.Key, error) {
	return ReadKey(pt.reader)
}

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

//go:build windows

package easyterm

import (
	"os"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/monitor/terminal"
)

// Terminal is not available on Windows.
type Terminal struct{}

// NewTerminal always returns an error on Windows.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	return nil, curated.Errorf(NotATerminal)
}

// CanonicalMode implements the terminal.KeyReader interface.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// RawMode implements the terminal.KeyReader interface.
func (pt *Terminal) RawMode() error {
	return curated.Errorf(NotATerminal)
}

// ReadKey implements the terminal.KeyReader interface.
func (pt *Terminal) ReadKey() (terminal.Key, error) {
	return terminal.Key{}, curated.Errorf(NotATerminal)
}

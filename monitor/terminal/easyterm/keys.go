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

package easyterm

import (
	"bufio"

	"github.com/jetsetilly/gopher3000/monitor/terminal"
)

// NotATerminal is returned when a Terminal cannot be created.
const NotATerminal = "easyterm: input is not a terminal"

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyEOF            = 4 // end-of-transmission character
	KeyBackspace      = 8
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyDelete         = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
	EscAlt    = 'O'
)

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorHome     = 'H'
	CursorEnd      = 'F'
	CursorDelete   = '3'
)

// ReadKey reads a single key press from the reader. Escape sequences for
// the cursor keys are converted into named keys. An escape character that is
// not followed immediately by more input is the Esc key.
func ReadKey(r *bufio.Reader) (terminal.Key, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return terminal.Key{}, err
	}

	switch c {
	case KeyInterrupt:
		return terminal.Key{Name: terminal.KeyInterrupt}, nil
	case KeyEOF:
		return terminal.Key{Name: terminal.KeyEOF}, nil
	case KeyBackspace, KeyDelete:
		return terminal.Key{Name: terminal.KeyDelete}, nil
	case KeyTab:
		return terminal.Key{Name: terminal.KeyTab}, nil
	case KeyLineFeed, KeyCarriageReturn:
		return terminal.Key{Name: terminal.KeyReturn}, nil
	case KeyEsc:
		if r.Buffered() == 0 {
			return terminal.Key{Name: terminal.KeyEsc}, nil
		}
		return readEscape(r)
	}

	return terminal.Key{Rune: c}, nil
}

func readEscape(r *bufio.Reader) (terminal.Key, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return terminal.Key{}, err
	}
	if c != EscCursor && c != EscAlt {
		return terminal.Key{Name: terminal.KeyEsc}, nil
	}

	c, _, err = r.ReadRune()
	if err != nil {
		return terminal.Key{}, err
	}

	switch c {
	case CursorUp:
		return terminal.Key{Name: terminal.KeyUp}, nil
	case CursorDown:
		return terminal.Key{Name: terminal.KeyDown}, nil
	case CursorForward:
		return terminal.Key{Name: terminal.KeyRight}, nil
	case CursorBackward:
		return terminal.Key{Name: terminal.KeyLeft}, nil
	case CursorHome:
		return terminal.Key{Name: terminal.KeyHome}, nil
	case CursorEnd:
		return terminal.Key{Name: terminal.KeyEnd}, nil
	case CursorDelete:
		// sequence is terminated with a tilde
		if t, _, err := r.ReadRune(); err == nil && t != '~' {
			_ = r.UnreadRune()
		}
		return terminal.Key{Name: terminal.KeyDelete}, nil
	}

	return terminal.Key{Name: terminal.KeyEsc}, nil
}

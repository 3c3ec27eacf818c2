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

package keyboard

import (
	"fmt"
	"strings"
)

// The dimensions of the keyboard matrix.
const (
	NumColumns = 16
	NumRows    = 8
)

// TransitionHandler is notified whenever a key changes state.
type TransitionHandler interface {
	KeyTransition(column int, row int, pressed bool)
}

// Matrix is the live state of the keyboard. A column value of 0xff means no
// key in that column is pressed.
type Matrix struct {
	columns [NumColumns]uint8
	handler TransitionHandler
}

// NewMatrix is the preferred method of initialisation for the Matrix type.
func NewMatrix() *Matrix {
	m := &Matrix{}
	for i := range m.columns {
		m.columns[i] = 0xff
	}
	return m
}

// AttachTransitionHandler sets the handler notified on key transitions. A
// value of nil removes any existing handler.
func (m *Matrix) AttachTransitionHandler(h TransitionHandler) {
	m.handler = h
}

func (m *Matrix) String() string {
	s := strings.Builder{}
	for i, c := range m.columns {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", c))
	}
	return s.String()
}

// Scan returns the row data for the column mask. Columns are selected by
// clearing bits in the mask. A column i is selected by bit (i-1)&0xf.
//
// The result is the AND of the selected columns. A mask with no bits cleared
// always returns 0xff.
func (m *Matrix) Scan(mask uint16) uint8 {
	data := uint8(0xff)
	for i := 0; i < NumColumns; i++ {
		if mask&(1<<((i-1)&0xf)) == 0 {
			data &= m.columns[i]
		}
	}
	return data
}

// Column returns the live state of column i. Columns outside the keyboard
// read as 0xff.
func (m *Matrix) Column(i int) uint8 {
	if i < 0 || i >= NumColumns {
		return 0xff
	}
	return m.columns[i]
}

// SetColumn sets the entire state of a column. Each bit that changes as a
// result is a key transition.
func (m *Matrix) SetColumn(i int, v uint8) {
	if i < 0 || i >= NumColumns {
		return
	}

	changed := m.columns[i] ^ v
	m.columns[i] = v

	if m.handler == nil || changed == 0 {
		return
	}

	for r := 0; r < NumRows; r++ {
		if changed&(1<<r) != 0 {
			m.handler.KeyTransition(i, r, v&(1<<r) == 0)
		}
	}
}

// Press the key. Returns false if the key was already pressed or is not on
// the keyboard.
func (m *Matrix) Press(k Key) bool {
	if !k.valid() || m.IsPressed(k) {
		return false
	}
	m.SetColumn(k.Column, m.columns[k.Column]&^k.bit())
	return true
}

// Release the key. Returns false if the key was not pressed.
func (m *Matrix) Release(k Key) bool {
	if !k.valid() || !m.IsPressed(k) {
		return false
	}
	m.SetColumn(k.Column, m.columns[k.Column]|k.bit())
	return true
}

// IsPressed returns true if the key is currently pressed.
func (m *Matrix) IsPressed(k Key) bool {
	if !k.valid() {
		return false
	}
	return m.columns[k.Column]&k.bit() == 0
}

// ReleaseAll keys. Transitions are reported for every key that was pressed.
func (m *Matrix) ReleaseAll() {
	for i := range m.columns {
		m.SetColumn(i, 0xff)
	}
}

// Pressed returns the list of pressed keys, in column and row order.
func (m *Matrix) Pressed() []Key {
	var p []Key
	for c := 0; c < NumColumns; c++ {
		for r := 0; r < NumRows; r++ {
			if m.columns[c]&(1<<r) == 0 {
				p = append(p, KeyAt(c, r))
			}
		}
	}
	return p
}

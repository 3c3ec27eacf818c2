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

package keyboard_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/test"
)

type transition struct {
	column  int
	row     int
	pressed bool
}

type transitions struct {
	log []transition
}

func (t *transitions) KeyTransition(column int, row int, pressed bool) {
	t.log = append(t.log, transition{column: column, row: row, pressed: pressed})
}

func TestIdleScan(t *testing.T) {
	m := keyboard.NewMatrix()
	test.ExpectEquality(t, m.Scan(0x0000), uint8(0xff))
	test.ExpectEquality(t, m.Scan(0xffff), uint8(0xff))

	// no columns selected always scans as 0xff regardless of key state
	for c := 0; c < keyboard.NumColumns; c++ {
		m.SetColumn(c, 0x00)
	}
	test.ExpectEquality(t, m.Scan(0xffff), uint8(0xff))
	test.ExpectEquality(t, m.Scan(0x0000), uint8(0x00))
}

func TestDeterministic(t *testing.T) {
	m := keyboard.NewMatrix()
	m.SetColumn(3, 0x5a)
	m.SetColumn(12, 0xa5)
	for _, mask := range []uint16{0x0000, 0xfffb, 0xf7ff, 0x1234, 0xffff} {
		test.ExpectEquality(t, m.Scan(mask), m.Scan(mask), fmt.Sprintf("%04x", mask))
	}
}

func TestColumnRotation(t *testing.T) {
	m := keyboard.NewMatrix()
	for c := 0; c < keyboard.NumColumns; c++ {
		m.SetColumn(c, uint8(c*0x10+0x0f)^0x81)
	}

	// a mask with exactly bit b cleared selects column (b+1)%16
	for b := 0; b < 16; b++ {
		mask := ^uint16(1 << b)
		col := (b + 1) % 16
		test.ExpectEquality(t, m.Scan(mask), m.Column(col), b)
	}
}

func TestSingleKey(t *testing.T) {
	m := keyboard.NewMatrix()

	// the key at column 5 row 3 is selected by mask bit 4
	m.Press(keyboard.Key{Column: 5, Row: 3})
	test.ExpectEquality(t, m.Scan(^uint16(1<<4)), uint8(0xf7))

	// other columns are not affected
	test.ExpectEquality(t, m.Scan(^uint16(1<<5)), uint8(0xff))

	// selecting every column includes the key
	test.ExpectEquality(t, m.Scan(0x0000), uint8(0xf7))
}

func TestPressRelease(t *testing.T) {
	m := keyboard.NewMatrix()
	tr := &transitions{}
	m.AttachTransitionHandler(tr)

	k, ok := keyboard.Lookup("k")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, k.Column, 0)
	test.ExpectEquality(t, k.Row, 2)

	test.ExpectSuccess(t, m.Press(k))
	test.ExpectSuccess(t, m.IsPressed(k))
	test.ExpectEquality(t, m.Column(0), uint8(0xfb))

	// pressing a pressed key is not a transition
	test.ExpectFailure(t, m.Press(k))
	test.ExpectEquality(t, len(tr.log), 1)

	test.ExpectSuccess(t, m.Release(k))
	test.ExpectFailure(t, m.Release(k))
	test.ExpectEquality(t, len(tr.log), 2)

	test.ExpectEquality(t, tr.log[0], transition{column: 0, row: 2, pressed: true})
	test.ExpectEquality(t, tr.log[1], transition{column: 0, row: 2, pressed: false})

	// setting a column reports only the changed bits
	tr.log = tr.log[:0]
	m.SetColumn(9, 0x7e)
	test.ExpectEquality(t, len(tr.log), 2)
	m.SetColumn(9, 0x7e)
	test.ExpectEquality(t, len(tr.log), 2)
	test.ExpectEquality(t, len(m.Pressed()), 2)

	m.ReleaseAll()
	test.ExpectEquality(t, len(tr.log), 4)
	test.ExpectEquality(t, len(m.Pressed()), 0)
}

func TestKeyTable(t *testing.T) {
	seen := make(map[string]bool)
	pos := make(map[[2]int]bool)
	for _, k := range keyboard.Keys {
		test.ExpectFailure(t, seen[k.Name], k.Name)
		seen[k.Name] = true

		p := [2]int{k.Column, k.Row}
		test.ExpectFailure(t, pos[p], k.Name)
		pos[p] = true

		// column 8 is not connected
		test.ExpectInequality(t, k.Column, 8, k.Name)
	}

	test.ExpectSuccess(t, keyboard.KeyAt(8, 0).Unused())
	test.ExpectSuccess(t, keyboard.KeyAt(1, 0).Unused())
	test.ExpectFailure(t, keyboard.KeyAt(9, 7).Unused())

	k, ok := keyboard.Lookup("Spell Check")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k.Name, "f10")

	k, shift, ok := keyboard.LookupChar('N')
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, shift)
	test.ExpectEquality(t, k.Name, "n")

	k, shift, ok = keyboard.LookupChar('\r')
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, shift)
	test.ExpectEquality(t, k.Name, "return")

	_, _, ok = keyboard.LookupChar('£')
	test.ExpectFailure(t, ok)

	// unused positions cannot be looked up
	_, ok = keyboard.Lookup("")
	test.ExpectFailure(t, ok)
}

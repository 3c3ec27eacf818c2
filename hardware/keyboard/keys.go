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

// Key is a single key on the keyboard.
type Key struct {
	// position in the matrix
	Column int
	Row    int

	// short identifier for the key. unique and lower case
	Name string

	// description of the key, as printed on the keycap. if the keycap has
	// nothing printed on it other than the character then the label is
	// the same as the name
	Label string

	// the characters produced by the key with and without shift. zero if the
	// key produces no character
	Char      rune
	ShiftChar rune
}

func (k Key) String() string {
	if k.Name == "" {
		return fmt.Sprintf("unused (%d, %d)", k.Column, k.Row)
	}
	if k.Label != k.Name {
		return k.Label
	}
	return k.Name
}

// Unused returns true if there is no key at the key's matrix position.
func (k Key) Unused() bool {
	return k.Name == ""
}

func (k Key) valid() bool {
	return k.Column >= 0 && k.Column < NumColumns && k.Row >= 0 && k.Row < NumRows
}

func (k Key) bit() uint8 {
	return 1 << k.Row
}

func char(c int, r int, ch rune, shift rune) Key {
	n := string(ch)
	return Key{Column: c, Row: r, Name: n, Label: n, Char: ch, ShiftChar: shift}
}

func special(c int, r int, name string, label string) Key {
	return Key{Column: c, Row: r, Name: name, Label: label}
}

// Keys is the table of every key on the keyboard.
var Keys = []Key{
	char(0, 0, ']', '}'),
	special(0, 1, "f6", "F6 (File 6)"),
	char(0, 2, 'k', 'K'),
	char(0, 3, 'i', 'I'),
	char(0, 4, '=', '_'),
	char(0, 5, '8', '*'),
	char(0, 6, ',', '<'),

	special(1, 4, "leftalt", "Left Alt/Option"),
	special(1, 6, "rightalt", "Right Alt/Option"),

	special(2, 0, "f7", "F7 (File 7)"),
	char(2, 2, 'l', 'L'),
	char(2, 3, 'o', 'O'),
	special(2, 4, "f8", "F8 (File 8)"),
	char(2, 5, '9', '('),
	char(2, 6, '.', '>'),

	char(3, 0, '[', '{'),
	char(3, 1, '\'', '"'),
	char(3, 2, ';', ':'),
	char(3, 3, 'p', 'P'),
	char(3, 4, '-', '_'),
	char(3, 5, '0', ')'),
	char(3, 7, '/', '?'),

	special(4, 1, "command", "Command"),
	special(4, 3, "home", "Home"),
	special(4, 5, "f12", "Clear File"),
	special(4, 7, "esc", "Esc"),

	special(5, 1, "down", "Down"),
	special(5, 6, "end", "End"),
	special(5, 7, "left", "Left"),

	special(6, 4, "enter", "Enter"),
	special(6, 7, "right", "Right"),

	special(7, 6, "f11", "Find"),
	special(7, 7, "up", "Up"),

	// column 8 is not connected to any keys

	{Column: 9, Row: 0, Name: "delete", Label: "Delete", Char: '\b'},
	special(9, 1, "f5", "F5 (File 5)"),
	char(9, 2, '\\', '|'),
	special(9, 4, "f9", "Print"),
	special(9, 5, "f10", "Spell Check"),
	{Column: 9, Row: 6, Name: "return", Label: "Return", Char: '\n'},
	{Column: 9, Row: 7, Name: "space", Label: "Space", Char: ' ', ShiftChar: ' '},

	special(10, 0, "f3", "F3 (File 3)"),
	special(10, 1, "f4", "F4 (File 4)"),
	char(10, 2, 'd', 'D'),
	char(10, 3, 'e', 'E'),
	special(10, 4, "f2", "F2 (File 2)"),
	char(10, 5, '3', '#'),
	char(10, 6, 'c', 'C'),

	special(11, 0, "capslock", "Caps Lock"),
	char(11, 2, 's', 'S'),
	char(11, 3, 'w', 'W'),
	special(11, 4, "f1", "F1 (File 1)"),
	char(11, 5, '2', '@'),
	char(11, 6, 'x', 'X'),

	{Column: 12, Row: 0, Name: "tab", Label: "Tab", Char: '\t'},
	char(12, 2, 'a', 'A'),
	char(12, 3, 'q', 'Q'),
	char(12, 4, '`', '~'),
	char(12, 5, '1', '!'),
	char(12, 6, 'z', 'Z'),
	special(12, 7, "control", "Control"),

	char(13, 0, 't', 'T'),
	char(13, 1, 'g', 'G'),
	char(13, 2, 'f', 'F'),
	char(13, 3, 'r', 'R'),
	char(13, 4, '5', '%'),
	char(13, 5, '4', '$'),
	char(13, 6, 'v', 'V'),
	char(13, 7, 'b', 'B'),

	special(14, 0, "leftshift", "Left Shift"),
	special(14, 6, "rightshift", "Right Shift"),

	char(15, 0, 'y', 'Y'),
	char(15, 1, 'h', 'H'),
	char(15, 2, 'j', 'J'),
	char(15, 3, 'u', 'U'),
	char(15, 4, '6', '^'),
	char(15, 5, '7', '&'),
	char(15, 6, 'm', 'M'),
	char(15, 7, 'n', 'N'),
}

// the shift key used when typing a shifted character
var shiftKey = KeyAt(14, 0)

// ShiftKey returns the key used by Type() for shifted characters.
func ShiftKey() Key {
	return shiftKey
}

// Lookup a key by name or by label. The search is case insensitive but the
// name is compared first. So "k" and "K" will both find the K key.
func Lookup(name string) (Key, bool) {
	// unused positions have no name
	if name == "" {
		return Key{}, false
	}

	for _, k := range Keys {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	for _, k := range Keys {
		if strings.EqualFold(k.Label, name) {
			return k, true
		}
	}
	return Key{}, false
}

// LookupChar finds the key that produces the character. The shift value
// indicates whether the shift key is required.
//
// The '_' character appears on two keys. The first key in the table wins.
func LookupChar(r rune) (k Key, shift bool, ok bool) {
	if r == '\r' {
		r = '\n'
	}
	for _, k := range Keys {
		if k.Char != 0 && k.Char == r {
			return k, false, true
		}
	}
	for _, k := range Keys {
		if k.ShiftChar != 0 && k.ShiftChar == r {
			return k, true, true
		}
	}
	return Key{}, false, false
}

// KeyAt returns the key at the matrix position. If there is no key at that
// position an Unused key is returned.
func KeyAt(column int, row int) Key {
	for _, k := range Keys {
		if k.Column == column && k.Row == row {
			return k
		}
	}
	return Key{Column: column, Row: row}
}

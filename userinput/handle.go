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

package userinput

import (
	"strings"

	"github.com/jetsetilly/gopher3000/hardware/keyboard"
)

// HandleInput conceptualises data being sent to the keyboard matrix. It is
// satisfied by *keyboard.Matrix.
type HandleInput interface {
	// Press and Release return false if the key was already in the
	// requested state.
	Press(k keyboard.Key) bool
	Release(k keyboard.Key) bool
}

// host key names that do not match the name or label of an emulated key.
var hostKeys = map[string]string{
	"backspace":    "delete",
	"escape":       "esc",
	"left ctrl":    "control",
	"right ctrl":   "control",
	"left gui":     "command",
	"right gui":    "command",
	"keypad enter": "enter",
	"left shift":   "leftshift",
	"right shift":  "rightshift",
	"left alt":     "leftalt",
	"right alt":    "rightalt",
}

// HostKey maps the name of a host key to the emulated key. The name is not
// case sensitive.
func HostKey(name string) (keyboard.Key, bool) {
	n := strings.ToLower(name)
	if m, ok := hostKeys[n]; ok {
		n = m
	}
	return keyboard.Lookup(n)
}

// HandleUserInput deciphers the Event and forwards the input to the keyboard
// matrix. Returns true if the event is a quit event and false otherwise.
//
// Keyboard events for host keys that have no emulated equivalent are
// ignored.
func HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true
	case EventKeyboard:
		if k, ok := HostKey(ev.Key); ok {
			if ev.Down {
				handle.Press(k)
			} else {
				handle.Release(k)
			}
		}
	}
	return false
}

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
	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
)

// UnknownCharacter is returned by Type() for characters that cannot be typed.
const UnknownCharacter = "userinput: no key for character (%q)"

// FrameRunner runs the emulation for a single frame. It is satisfied by
// *hardware.Machine.
type FrameRunner interface {
	Frame() error
}

// DefaultHold is the suggested number of frames a key is held down, and
// released for, by Type().
const DefaultHold = 2

// Tap presses the key, runs for hold frames, releases the key and runs for a
// further hold frames.
//
// The key is released if the emulation returns an error.
func Tap(handle HandleInput, run FrameRunner, k keyboard.Key, hold int) error {
	handle.Press(k)
	if err := frames(run, hold); err != nil {
		handle.Release(k)
		return err
	}
	handle.Release(k)
	return frames(run, hold)
}

// Type the text by pressing and releasing keys in sequence. The shift key is
// held down for characters that require it and is released if the emulation
// returns an error.
//
// The entire text is checked before any key is pressed.
func Type(handle HandleInput, run FrameRunner, text string, hold int) error {
	type stroke struct {
		key   keyboard.Key
		shift bool
	}

	strokes := make([]stroke, 0, len(text))
	for _, r := range text {
		k, shift, ok := keyboard.LookupChar(r)
		if !ok {
			return curated.Errorf(UnknownCharacter, r)
		}
		strokes = append(strokes, stroke{key: k, shift: shift})
	}

	for _, s := range strokes {
		if s.shift {
			handle.Press(keyboard.ShiftKey())
		}

		if err := Tap(handle, run, s.key, hold); err != nil {
			if s.shift {
				handle.Release(keyboard.ShiftKey())
			}
			return err
		}

		if s.shift {
			handle.Release(keyboard.ShiftKey())
		}
	}

	return nil
}

func frames(run FrameRunner, n int) error {
	for i := 0; i < n; i++ {
		if err := run.Frame(); err != nil {
			return curated.Errorf("userinput: %v", err)
		}
	}
	return nil
}

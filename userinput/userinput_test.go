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

package userinput_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/test"
	"github.com/jetsetilly/gopher3000/userinput"
)

// records the sequence of key events and frames.
type recorder struct {
	log []string
}

func (r *recorder) Press(k keyboard.Key) bool {
	r.log = append(r.log, fmt.Sprintf("+%s", k.Name))
	return true
}

func (r *recorder) Release(k keyboard.Key) bool {
	r.log = append(r.log, fmt.Sprintf("-%s", k.Name))
	return true
}

func (r *recorder) Frame() error {
	r.log = append(r.log, "f")
	return nil
}

// a FrameRunner that fails after a number of frames.
type failingRunner struct {
	frames int
}

func (fr *failingRunner) Frame() error {
	if fr.frames <= 0 {
		return errors.New("frame failed")
	}
	fr.frames--
	return nil
}

func (r *recorder) String() string {
	return strings.Join(r.log, " ")
}

func TestHostKey(t *testing.T) {
	k, ok := userinput.HostKey("A")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k.Name, "a")

	k, ok = userinput.HostKey("Backspace")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k.Name, "delete")

	k, ok = userinput.HostKey("Left Shift")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k.Name, "leftshift")

	k, ok = userinput.HostKey("Return")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k.Name, "return")

	_, ok = userinput.HostKey("Keypad 7")
	test.ExpectFailure(t, ok)
}

func TestHandleUserInput(t *testing.T) {
	m := keyboard.NewMatrix()
	a, _ := keyboard.Lookup("a")

	quit := userinput.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true}, m)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, m.IsPressed(a))

	userinput.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: false}, m)
	test.ExpectFailure(t, m.IsPressed(a))

	// unknown keys are ignored
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "Keypad 7", Down: true}, m)
	test.ExpectEquality(t, len(m.Pressed()), 0)

	quit = userinput.HandleUserInput(userinput.EventQuit{}, m)
	test.ExpectSuccess(t, quit)
}

func TestType(t *testing.T) {
	r := &recorder{}
	test.ExpectSuccess(t, userinput.Type(r, r, "aB", 1))
	test.ExpectEquality(t, r.String(), "+a f -a f +leftshift +b f -b f -leftshift")

	r = &recorder{}
	err := userinput.Type(r, r, "aé", 1)
	test.ExpectSuccess(t, curated.Is(err, userinput.UnknownCharacter))
	test.ExpectEquality(t, r.String(), "")
}

func TestTapMatrix(t *testing.T) {
	m := keyboard.NewMatrix()
	r := &recorder{}
	k, _ := keyboard.Lookup("space")
	test.ExpectSuccess(t, userinput.Tap(m, r, k, 3))
	test.ExpectEquality(t, r.String(), "f f f f f f")
	test.ExpectFailure(t, m.IsPressed(k))
}

func TestReleaseOnError(t *testing.T) {
	m := keyboard.NewMatrix()
	k, _ := keyboard.Lookup("space")

	err := userinput.Tap(m, &failingRunner{frames: 1}, k, 3)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, m.IsPressed(k))

	// shifted character. the error happens while the key is held
	err = userinput.Type(m, &failingRunner{frames: 0}, "B", 2)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(m.Pressed()), 0)
	test.ExpectFailure(t, m.IsPressed(keyboard.ShiftKey()))
}

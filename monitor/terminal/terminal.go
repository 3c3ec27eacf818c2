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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function.
type Style int

// List of valid Style values.
const (
	// input from the user being echoed back to the user
	StyleEcho Style = iota

	// information from the machine
	StyleNormal

	// information about the command that has just been run
	StyleFeedback

	// help text
	StyleHelp

	// error text
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line ending. The
	// prompt should be displayed if the terminal is interactive. Returns
	// io.EOF when there is no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive returns true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all terminal implementations will need to
	// do anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}

// Key is a single key press read by a KeyReader. Keys that do not produce a
// character are identified by name.
type Key struct {
	Rune rune
	Name string
}

// List of key names that can be returned by a KeyReader.
const (
	KeyInterrupt = "interrupt"
	KeyEOF       = "eof"
	KeyReturn    = "return"
	KeyDelete    = "delete"
	KeyTab       = "tab"
	KeyEsc       = "esc"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyHome      = "home"
	KeyEnd       = "end"
)

func (k Key) String() string {
	if k.Name != "" {
		return k.Name
	}
	return string(k.Rune)
}

// KeyReader is implemented by terminals that can read individual key
// presses.
type KeyReader interface {
	// RawMode puts the terminal into a mode where keys are read as soon as
	// they are pressed. CanonicalMode restores the terminal.
	RawMode() error
	CanonicalMode() error

	// ReadKey blocks until a key is pressed.
	ReadKey() (Key, error)
}

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

package monitor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware"
	"github.com/jetsetilly/gopher3000/hardware/preferences"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/monitor/terminal"
	"github.com/jetsetilly/gopher3000/userinput"
)

// Sentinel error patterns.
const (
	UnknownCommand = "monitor: unknown command (%s)"
	BadArguments   = "monitor: %s: %s"
)

const prompt = "> "

// Monitor is a command line interface to the machine.
type Monitor struct {
	m     *hardware.Machine
	term  terminal.Terminal
	prefs *preferences.Preferences

	// the file used by the SAVE command
	NVRAMFile string

	// used by the KEYS command. can be nil in which case the KEYS command is
	// not available
	Keys terminal.KeyReader

	// the number of frames a key is held down for by KEY and TYPE
	Hold int

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The preferences can be nil, in which case the defaults are used.
func NewMonitor(m *hardware.Machine, term terminal.Terminal, prefs *preferences.Preferences) *Monitor {
	return &Monitor{
		m:     m,
		term:  term,
		prefs: prefs,
		Hold:  userinput.DefaultHold,
	}
}

// Run the monitor until the QUIT command or until there is no more input.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer mon.term.CleanUp()

	mon.quit = false
	for !mon.quit {
		input, err := mon.term.TermRead(prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		mon.term.TermPrintLine(terminal.StyleEcho, input)

		if err := mon.Execute(input); err != nil {
			mon.term.TermPrintLine(terminal.StyleError, err.Error())

			// errors end the session if the input isn't interactive. a script
			// should not carry on if one of its commands has failed
			if !mon.term.IsInteractive() {
				return err
			}
		}
	}

	return nil
}

// Quit returns true if the QUIT command has been executed.
func (mon *Monitor) Quit() bool {
	return mon.quit
}

func (mon *Monitor) print(style terminal.Style, s string, a ...interface{}) {
	mon.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// print multiline text without a trailing newline
func (mon *Monitor) printBlock(style terminal.Style, s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	for _, l := range strings.Split(s, "\n") {
		mon.term.TermPrintLine(style, l)
	}
}

// Execute a single line of input.
func (mon *Monitor) Execute(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") || strings.HasPrefix(input, "--") {
		return nil
	}

	toks := strings.Fields(input)

	cmd, ok := lookupCommand(toks[0])
	if !ok {
		return curated.Errorf(UnknownCommand, toks[0])
	}
	args := toks[1:]

	c := commands[cmd]
	if len(args) < c.minArgs || (c.maxArgs != anyArgs && len(args) > c.maxArgs) {
		return curated.Errorf(BadArguments, cmd, c.usage)
	}

	switch cmd {
	case cmdHelp:
		return mon.help(args)
	case cmdReset:
		return mon.reset()
	case cmdPeek:
		return mon.peek(args)
	case cmdPoke:
		return mon.poke(args)
	case cmdPort:
		return mon.port(args)
	case cmdBit:
		return mon.bit(args)
	case cmdKey:
		return mon.key(args)
	case cmdType:
		// the text is the rest of the input line after the command
		return mon.typeText(strings.TrimSpace(input[len(toks[0]):]))
	case cmdKeys:
		return mon.keys()
	case cmdScan:
		return mon.scan(args)
	case cmdMatrix:
		return mon.matrix()
	case cmdLCD:
		return mon.lcd(args)
	case cmdFrame:
		return mon.frame()
	case cmdScreenshot:
		return mon.screenshot(args)
	case cmdSave:
		return mon.save()
	case cmdLog:
		return mon.log(args)
	case cmdGraph:
		return mon.graph(args[0])
	case cmdScript:
		return mon.script(args[0])
	case cmdRun:
		return mon.run(args[0])
	case cmdQuit:
		mon.quit = true
		return nil
	}

	return curated.Errorf(UnknownCommand, toks[0])
}

// parse a number. hexadecimal numbers are prefixed with 0x or $
func parseNumber(s string, bitSize int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, curated.Errorf("monitor: not a valid number (%s)", s)
	}
	return v, nil
}

func (mon *Monitor) screenshotScale() int {
	if mon.prefs == nil {
		return 1
	}
	return mon.prefs.ScreenshotScale.Get().(int)
}

func (mon *Monitor) logTail(n int) {
	s := strings.Builder{}
	logger.Tail(&s, n)
	mon.printBlock(terminal.StyleNormal, s.String())
}

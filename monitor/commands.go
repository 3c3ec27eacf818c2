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
	"sort"
	"strings"
)

// monitor keywords
const (
	cmdHelp       = "HELP"
	cmdReset      = "RESET"
	cmdPeek       = "PEEK"
	cmdPoke       = "POKE"
	cmdPort       = "PORT"
	cmdBit        = "BIT"
	cmdKey        = "KEY"
	cmdType       = "TYPE"
	cmdKeys       = "KEYS"
	cmdScan       = "SCAN"
	cmdMatrix     = "MATRIX"
	cmdLCD        = "LCD"
	cmdFrame      = "FRAME"
	cmdScreenshot = "SCREENSHOT"
	cmdSave       = "SAVE"
	cmdLog        = "LOG"
	cmdGraph      = "GRAPH"
	cmdScript     = "SCRIPT"
	cmdRun        = "RUN"
	cmdQuit       = "QUIT"
)

// unlimited number of arguments
const anyArgs = -1

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
}

var commands = map[string]command{
	cmdHelp:       {usage: "HELP [command]", help: "List commands or show help for a command", maxArgs: 1},
	cmdReset:      {usage: "RESET", help: "Reset the machine. NVRAM is reseeded from ROM"},
	cmdPeek:       {usage: "PEEK address [count]", help: "Display the contents of memory, without side effects", minArgs: 1, maxArgs: 2},
	cmdPoke:       {usage: "POKE address value [value ...]", help: "Modify memory. Writes to ROM patch the ROM image", minArgs: 2, maxArgs: anyArgs},
	cmdPort:       {usage: "PORT A|C|D|G [value]", help: "Display or write the latch of a GPIO port", minArgs: 1, maxArgs: 2},
	cmdBit:        {usage: "BIT A|C|D|G n [0|1]", help: "Display or write a single bit of a GPIO port", minArgs: 2, maxArgs: 3},
	cmdKey:        {usage: "KEY name [DOWN|UP]", help: "Press, release or tap (without direction) a key on the keyboard", minArgs: 1, maxArgs: 2},
	cmdType:       {usage: "TYPE text", help: "Type the text on the keyboard", minArgs: 1, maxArgs: anyArgs},
	cmdKeys:       {usage: "KEYS", help: "Forward key presses from the terminal to the keyboard. Ctrl-C to finish"},
	cmdScan:       {usage: "SCAN [mask]", help: "Scan the keyboard with the column mask. Uses the current mask by default", maxArgs: 1},
	cmdMatrix:     {usage: "MATRIX", help: "Display the state of the keyboard matrix and the keys being pressed"},
	cmdLCD:        {usage: "LCD [n]", help: "Display the most recent LCD controller transfers", maxArgs: 1},
	cmdFrame:      {usage: "FRAME", help: "Display the screen as text"},
	cmdScreenshot: {usage: "SCREENSHOT [filename]", help: "Save the screen as a PNG file", maxArgs: 1},
	cmdSave:       {usage: "SAVE", help: "Save NVRAM to disk"},
	cmdLog:        {usage: "LOG [n]", help: "Display the last n log entries", maxArgs: 1},
	cmdGraph:      {usage: "GRAPH filename", help: "Write a graphviz DOT file of the machine state", minArgs: 1, maxArgs: 1},
	cmdScript:     {usage: "SCRIPT filename", help: "Run the Lua script", minArgs: 1, maxArgs: 1},
	cmdRun:        {usage: "RUN frames", help: "Run the machine for a number of frames", minArgs: 1, maxArgs: 1},
	cmdQuit:       {usage: "QUIT", help: "Leave the monitor"},
}

// sorted list of command names. used by HELP
var commandNames []string

func init() {
	for n := range commands {
		commandNames = append(commandNames, n)
	}
	sort.Strings(commandNames)
}

// returns the full name of the command. a command can be abbreviated to any
// unique prefix
func lookupCommand(s string) (string, bool) {
	s = strings.ToUpper(s)
	if _, ok := commands[s]; ok {
		return s, true
	}

	var found string
	for _, n := range commandNames {
		if strings.HasPrefix(n, s) {
			if found != "" {
				return "", false
			}
			found = n
		}
	}

	return found, found != ""
}

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
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/hardware/display"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/macro"
	"github.com/jetsetilly/gopher3000/monitor/terminal"
	"github.com/jetsetilly/gopher3000/paths"
	"github.com/jetsetilly/gopher3000/userinput"
)

// the largest number of bytes PEEK will display
const maxPeek = 0x1000

func (mon *Monitor) help(args []string) error {
	if len(args) == 0 {
		for _, n := range commandNames {
			mon.print(terminal.StyleHelp, "%-10s %s", n, commands[n].help)
		}
		return nil
	}

	n, ok := lookupCommand(args[0])
	if !ok {
		return curated.Errorf(UnknownCommand, args[0])
	}
	mon.print(terminal.StyleHelp, "%s", commands[n].usage)
	mon.print(terminal.StyleHelp, "  %s", commands[n].help)
	return nil
}

func (mon *Monitor) reset() error {
	if err := mon.m.Reset(); err != nil {
		return err
	}
	mon.print(terminal.StyleFeedback, "machine reset")
	return nil
}

func (mon *Monitor) peek(args []string) error {
	a, err := parseNumber(args[0], 32)
	if err != nil {
		return err
	}

	n := uint64(1)
	if len(args) > 1 {
		n, err = parseNumber(args[1], 32)
		if err != nil {
			return err
		}
		if n == 0 || n > maxPeek {
			return curated.Errorf(BadArguments, cmdPeek, fmt.Sprintf("count must be between 1 and %d", maxPeek))
		}
	}

	mon.printBlock(terminal.StyleNormal, mon.m.Mem.Dump(uint32(a), int(n)))
	return nil
}

func (mon *Monitor) poke(args []string) error {
	a, err := parseNumber(args[0], 32)
	if err != nil {
		return err
	}

	// check all values before poking anything
	values := make([]uint8, 0, len(args)-1)
	for _, s := range args[1:] {
		v, err := parseNumber(s, 8)
		if err != nil {
			return err
		}
		values = append(values, uint8(v))
	}

	for i, v := range values {
		if err := mon.m.Mem.Poke(uint32(a)+uint32(i), v); err != nil {
			return err
		}
	}

	mon.printBlock(terminal.StyleFeedback, mon.m.Mem.Dump(uint32(a), len(values)))
	return nil
}

func parsePort(s string) (cpu.PortID, error) {
	id, ok := cpu.ParsePortID(s)
	if !ok {
		return cpu.PortA, curated.Errorf("monitor: not a valid port (%s)", s)
	}
	return id, nil
}

func (mon *Monitor) port(args []string) error {
	id, err := parsePort(args[0])
	if err != nil {
		return err
	}

	if len(args) > 1 {
		v, err := parseNumber(args[1], 8)
		if err != nil {
			return err
		}
		mon.m.Ports.WritePort(id, uint8(v))
	}

	mon.print(terminal.StyleNormal, "port %s: %02x", id, mon.m.Ports.ReadPort(id))
	return nil
}

func (mon *Monitor) bit(args []string) error {
	id, err := parsePort(args[0])
	if err != nil {
		return err
	}

	n, err := parseNumber(args[1], 8)
	if err != nil {
		return err
	}
	if n > 7 {
		return curated.Errorf(BadArguments, cmdBit, "bit must be between 0 and 7")
	}

	if len(args) > 2 {
		v, err := parseNumber(args[2], 1)
		if err != nil {
			return err
		}
		mon.m.Ports.WriteBit(id, int(n), uint8(v))
	}

	mon.print(terminal.StyleNormal, "port %s bit %d: %d", id, n, mon.m.Ports.ReadBit(id, int(n)))
	return nil
}

func lookupKey(name string) (keyboard.Key, error) {
	k, ok := keyboard.Lookup(name)
	if !ok {
		return keyboard.Key{}, curated.Errorf("monitor: no key named %s", name)
	}
	return k, nil
}

func (mon *Monitor) key(args []string) error {
	k, err := lookupKey(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := userinput.Tap(mon.m.Keyboard, mon.m, k, mon.Hold); err != nil {
			return err
		}
		mon.print(terminal.StyleFeedback, "%s tapped", k)
		return nil
	}

	switch strings.ToUpper(args[1]) {
	case "DOWN":
		mon.m.Keyboard.Press(k)
		mon.print(terminal.StyleFeedback, "%s down", k)
	case "UP":
		mon.m.Keyboard.Release(k)
		mon.print(terminal.StyleFeedback, "%s up", k)
	default:
		return curated.Errorf(BadArguments, cmdKey, commands[cmdKey].usage)
	}

	return nil
}

func (mon *Monitor) typeText(text string) error {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "\t")
	return userinput.Type(mon.m.Keyboard, mon.m, text, mon.Hold)
}

func (mon *Monitor) keys() error {
	if mon.Keys == nil {
		return curated.Errorf("monitor: KEYS requires a real terminal")
	}

	mon.print(terminal.StyleFeedback, "forwarding key presses to the keyboard. ctrl-c to finish")

	if err := mon.Keys.RawMode(); err != nil {
		return err
	}
	defer mon.Keys.CanonicalMode()

	for {
		key, err := mon.Keys.ReadKey()
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}

		if key.Name == terminal.KeyInterrupt || key.Name == terminal.KeyEOF {
			return nil
		}

		// named keys have the same name as the emulated key
		if key.Name != "" {
			if k, ok := keyboard.Lookup(key.Name); ok {
				if err := userinput.Tap(mon.m.Keyboard, mon.m, k, mon.Hold); err != nil {
					return err
				}
			}
			continue
		}

		// characters that have no emulated key are ignored
		if _, _, ok := keyboard.LookupChar(key.Rune); ok {
			if err := userinput.Type(mon.m.Keyboard, mon.m, string(key.Rune), mon.Hold); err != nil {
				return err
			}
		}
	}
}

func (mon *Monitor) scan(args []string) error {
	mask := mon.m.Ports.ColumnMask()
	if len(args) > 0 {
		v, err := parseNumber(args[0], 16)
		if err != nil {
			return err
		}
		mask = uint16(v)
	}
	mon.print(terminal.StyleNormal, "scan %04x: %02x", mask, mon.m.Keyboard.Scan(mask))
	return nil
}

func (mon *Monitor) matrix() error {
	mon.print(terminal.StyleNormal, "columns: %s", mon.m.Keyboard)
	mon.print(terminal.StyleNormal, "mask: %04x", mon.m.Ports.ColumnMask())

	p := mon.m.Keyboard.Pressed()
	if len(p) == 0 {
		mon.print(terminal.StyleNormal, "pressed: none")
		return nil
	}

	s := make([]string, 0, len(p))
	for _, k := range p {
		s = append(s, k.String())
	}
	mon.print(terminal.StyleNormal, "pressed: %s", strings.Join(s, ", "))
	return nil
}

func (mon *Monitor) lcd(args []string) error {
	n := uint64(16)
	if len(args) > 0 {
		var err error
		n, err = parseNumber(args[0], 16)
		if err != nil {
			return err
		}
	}

	for i, c := range mon.m.LCD {
		rec, ok := c.(*lcd.Recorder)
		if !ok {
			mon.print(terminal.StyleNormal, "lcd %d: %T", i, c)
			continue
		}
		mon.print(terminal.StyleNormal, "lcd %d: %s", i, rec)
		mon.printBlock(terminal.StyleNormal, rec.Tail(int(n)))
	}

	return nil
}

func (mon *Monitor) frame() error {
	mon.m.Compose()
	mon.printBlock(terminal.StyleNormal, textFrame(mon.m.Screen))
	mon.print(terminal.StyleFeedback, "frame %d", mon.m.FrameNum)
	return nil
}

// textFrame renders the bitmap as text. The foreground pen is shown as '#'.
func textFrame(bmp *lcd.Bitmap) string {
	s := strings.Builder{}
	for y := 0; y < bmp.Height; y++ {
		for x := 0; x < bmp.Width; x++ {
			if bmp.At(x, y) == lcd.PenForeground {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

func (mon *Monitor) screenshot(args []string) error {
	var fn string
	if len(args) > 0 {
		fn = args[0]
	} else {
		fn = paths.UniqueFilename("screenshot", "png")
	}

	err := display.Screenshot(fn, mon.m.Screen, mon.m.Config.Palette[:], mon.screenshotScale())
	if err != nil {
		return err
	}

	mon.print(terminal.StyleFeedback, "screenshot saved to %s", fn)
	return nil
}

func (mon *Monitor) save() error {
	if mon.NVRAMFile == "" {
		return curated.Errorf("monitor: no NVRAM file")
	}
	if err := mon.m.SaveNVRAM(mon.NVRAMFile); err != nil {
		return err
	}
	mon.print(terminal.StyleFeedback, "nvram saved to %s", mon.NVRAMFile)
	return nil
}

func (mon *Monitor) log(args []string) error {
	n := uint64(10)
	if len(args) > 0 {
		var err error
		n, err = parseNumber(args[0], 16)
		if err != nil {
			return err
		}
	}
	mon.logTail(int(n))
	return nil
}

// the parts of the machine that are visualised by GRAPH. the machine is not
// graphed directly because of the size of the memory arrays
type machineState struct {
	Name         string
	FrameNum     int
	Clock        int
	Instructions int
	Ports        map[string]uint8
	ColumnMask   uint16
	Columns      [keyboard.NumColumns]uint8
	Pressed      []string
	LCD          []string
}

func (mon *Monitor) graph(filename string) error {
	st := &machineState{
		Name:         mon.m.Config.Name,
		FrameNum:     mon.m.FrameNum,
		Clock:        mon.m.Clock,
		Instructions: mon.m.Instructions,
		Ports:        make(map[string]uint8),
		ColumnMask:   mon.m.Ports.ColumnMask(),
	}

	for _, id := range []cpu.PortID{cpu.PortA, cpu.PortC, cpu.PortD, cpu.PortG} {
		st.Ports[id.String()] = mon.m.Ports.ReadPort(id)
	}
	for i := range st.Columns {
		st.Columns[i] = mon.m.Keyboard.Column(i)
	}
	for _, k := range mon.m.Keyboard.Pressed() {
		st.Pressed = append(st.Pressed, k.String())
	}
	for _, c := range mon.m.LCD {
		st.LCD = append(st.LCD, fmt.Sprintf("%v", c))
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer f.Close()

	memviz.Map(f, st)

	mon.print(terminal.StyleFeedback, "graph saved to %s", filename)
	return nil
}

func (mon *Monitor) script(filename string) error {
	mcr := macro.NewMacro(mon.m)
	defer mcr.Close()

	mcr.Hold = mon.Hold
	mcr.ScreenshotScale = mon.screenshotScale()

	if err := mcr.Run(filename); err != nil {
		return err
	}

	mon.print(terminal.StyleFeedback, "script %s finished", filename)
	return nil
}

func (mon *Monitor) run(frames string) error {
	n, err := parseNumber(frames, 32)
	if err != nil {
		return err
	}
	if err := mon.m.RunForFrameCount(int(n), nil); err != nil {
		return err
	}
	mon.print(terminal.StyleFeedback, "frame %d", mon.m.FrameNum)
	return nil
}

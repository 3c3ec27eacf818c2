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

package macro

import (
	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/digest"
	"github.com/jetsetilly/gopher3000/hardware"
	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/hardware/display"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/userinput"
	lua "github.com/yuin/gopher-lua"
)

// Macro is a type that allows control of an emulation from a Lua script.
type Macro struct {
	m *hardware.Machine
	L *lua.LState

	// the number of frames a key is held down for by tap() and type()
	Hold int

	// scaling applied by screenshot()
	ScreenshotScale int

	// fingerprint of every frame since the macro was created or since the
	// last reset()
	dig *digest.Screen
}

// NewMacro is the preferred method of initialisation for the Macro type.
// Close() should be called when the Macro is no longer needed.
func NewMacro(m *hardware.Machine) *Macro {
	mcr := &Macro{
		m:               m,
		L:               lua.NewState(),
		Hold:            userinput.DefaultHold,
		ScreenshotScale: 1,
		dig:             digest.NewScreen(),
	}

	// chain the digest with any existing frame callback
	onFrame := m.OnFrame
	m.OnFrame = func(bmp *lcd.Bitmap) {
		mcr.dig.NewFrame(bmp)
		if onFrame != nil {
			onFrame(bmp)
		}
	}

	mcr.L.SetGlobal("luatype", mcr.L.GetGlobal("type"))

	for n, f := range map[string]lua.LGFunction{
		"press":      mcr.press,
		"release":    mcr.release,
		"tap":        mcr.tap,
		"type":       mcr.typeText,
		"peek":       mcr.peek,
		"poke":       mcr.poke,
		"port":       mcr.port,
		"frames":     mcr.frames,
		"reset":      mcr.reset,
		"screenshot": mcr.screenshot,
		"log":        mcr.log,
		"digest":     mcr.digest,
	} {
		mcr.L.SetGlobal(n, mcr.L.NewFunction(f))
	}

	return mcr
}

// Close the Lua state.
func (mcr *Macro) Close() {
	mcr.L.Close()
}

// Run the script in the file.
func (mcr *Macro) Run(filename string) error {
	if err := mcr.L.DoFile(filename); err != nil {
		return curated.Errorf("macro: %v", err)
	}
	return nil
}

// RunString runs the script in the string.
func (mcr *Macro) RunString(script string) error {
	if err := mcr.L.DoString(script); err != nil {
		return curated.Errorf("macro: %v", err)
	}
	return nil
}

// raise a Lua error. the function does not return.
func raise(L *lua.LState, err error) int {
	L.RaiseError("%v", err)
	return 0
}

func (mcr *Macro) key(L *lua.LState) keyboard.Key {
	n := L.CheckString(1)
	k, ok := keyboard.Lookup(n)
	if !ok {
		L.ArgError(1, "no key named "+n)
	}
	return k
}

func (mcr *Macro) press(L *lua.LState) int {
	mcr.m.Keyboard.Press(mcr.key(L))
	return 0
}

func (mcr *Macro) release(L *lua.LState) int {
	mcr.m.Keyboard.Release(mcr.key(L))
	return 0
}

func (mcr *Macro) tap(L *lua.LState) int {
	k := mcr.key(L)
	hold := L.OptInt(2, mcr.Hold)
	if err := userinput.Tap(mcr.m.Keyboard, mcr.m, k, hold); err != nil {
		return raise(L, err)
	}
	return 0
}

func (mcr *Macro) typeText(L *lua.LState) int {
	if err := userinput.Type(mcr.m.Keyboard, mcr.m, L.CheckString(1), mcr.Hold); err != nil {
		return raise(L, err)
	}
	return 0
}

func (mcr *Macro) peek(L *lua.LState) int {
	v, err := mcr.m.Mem.Peek(uint32(L.CheckInt64(1)))
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (mcr *Macro) poke(L *lua.LState) int {
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value must be a byte")
	}
	if err := mcr.m.Mem.Poke(uint32(L.CheckInt64(1)), uint8(v)); err != nil {
		return raise(L, err)
	}
	return 0
}

func (mcr *Macro) port(L *lua.LState) int {
	n := L.CheckString(1)
	id, ok := cpu.ParsePortID(n)
	if !ok {
		L.ArgError(1, "no port named "+n)
	}
	if L.GetTop() >= 2 {
		v := L.CheckInt(2)
		if v < 0 || v > 0xff {
			L.ArgError(2, "value must be a byte")
		}
		mcr.m.Ports.WritePort(id, uint8(v))
	}
	L.Push(lua.LNumber(mcr.m.Ports.ReadPort(id)))
	return 1
}

func (mcr *Macro) frames(L *lua.LState) int {
	n := L.CheckInt(1)
	if err := mcr.m.RunForFrameCount(n, nil); err != nil {
		return raise(L, err)
	}
	return 0
}

func (mcr *Macro) reset(L *lua.LState) int {
	if err := mcr.m.Reset(); err != nil {
		return raise(L, err)
	}
	mcr.dig.ResetDigest()
	return 0
}

func (mcr *Macro) digest(L *lua.LState) int {
	L.Push(lua.LString(mcr.dig.Hash()))
	return 1
}

func (mcr *Macro) screenshot(L *lua.LState) int {
	fn := L.CheckString(1)
	err := display.Screenshot(fn, mcr.m.Screen, mcr.m.Config.Palette[:], mcr.ScreenshotScale)
	if err != nil {
		return raise(L, err)
	}
	logger.Logf(mcr.m, "macro", "screenshot saved to %s", fn)
	return 0
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Log(mcr.m, "macro", L.CheckString(1))
	return 0
}

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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/config"
	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/hardware/cpu/idle"
	"github.com/jetsetilly/gopher3000/hardware/display"
	"github.com/jetsetilly/gopher3000/hardware/gpio"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/hardware/memory"
	"github.com/jetsetilly/gopher3000/hardware/nvram"
	"github.com/jetsetilly/gopher3000/hardware/rom"
	"github.com/jetsetilly/gopher3000/logger"
)

// Machine is the AlphaSmart 3000.
type Machine struct {
	Config config.Machine

	CPU      cpu.Core
	Mem      *memory.Memory
	NVRAM    *nvram.NVRAM
	ROM      *rom.ROM
	Keyboard *keyboard.Matrix
	Ports    *gpio.Ports
	LCD      [gpio.NumControllers]lcd.Controller
	Display  *display.Compositor

	// the composited screen. updated at the end of every frame
	Screen *lcd.Bitmap

	// number of cycles into the current frame
	Clock int

	// number of frames since the last reset
	FrameNum int

	// number of instructions since the last reset
	Instructions int

	// called at the end of every frame, after the screen has been composited
	OnFrame func(screen *lcd.Bitmap)

	logging bool
}

// NewMachine creates a new Machine with the ROM. The machine is reset before
// it is returned.
//
// The CPU core is created with the newCore function. If newCore is nil the
// idle core is used. Any entry in the lcds array that is nil is replaced by
// an lcd.Recorder.
func NewMachine(cfg config.Machine, r *rom.ROM, newCore cpu.NewCore, lcds [gpio.NumControllers]lcd.Controller) (*Machine, error) {
	if r == nil {
		return nil, curated.Errorf("machine: no rom")
	}

	m := &Machine{
		Config:  cfg,
		ROM:     r,
		logging: true,
	}

	for i := range lcds {
		if lcds[i] == nil {
			lcds[i] = lcd.NewRecorder()
		}
	}
	m.LCD = lcds

	m.Keyboard = keyboard.NewMatrix()
	m.Keyboard.AttachTransitionHandler(m)

	m.NVRAM = nvram.NewNVRAM(m)
	m.Ports = gpio.NewPorts(m, m.Keyboard, m.LCD)
	m.Mem = memory.NewMemory(m, m.NVRAM, m.ROM, m.Ports)
	m.Display = display.NewCompositor(cfg, m.LCD)
	m.Screen = lcd.NewBitmap(cfg.ScreenWidth, cfg.ScreenHeight)

	if newCore == nil {
		newCore = idle.NewIdle
	}
	m.CPU = newCore(m.Mem, m.Ports)

	if err := m.Reset(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: frame=%d clock=%d ports=[%s]", m.Config.Name, m.FrameNum, m.Clock, m.Ports)
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.logging
}

// SetLogging turns logging for the machine on or off.
func (m *Machine) SetLogging(allow bool) {
	m.logging = allow
}

// Reset the machine. The first 1KB of the ROM is copied into NVRAM before
// anything else happens, meaning that the CPU core will read its reset
// vectors from the copy. The rest of NVRAM is not changed.
func (m *Machine) Reset() error {
	m.NVRAM.Seed(m.ROM.Data)

	m.Ports.Reset()
	for _, c := range m.LCD {
		c.Reset()
	}
	m.Screen.Fill(lcd.PenBackground)

	m.Clock = 0
	m.FrameNum = 0
	m.Instructions = 0

	if err := m.CPU.Reset(); err != nil {
		return curated.Errorf("machine: %v", err)
	}

	logger.Log(m, "machine", "reset")

	return nil
}

// KeyTransition implements the keyboard.TransitionHandler interface. Every
// transition raises the keyboard interrupt.
func (m *Machine) KeyTransition(column int, row int, pressed bool) {
	m.CPU.SetInputLine(cpu.KeyboardIRQ, cpu.HoldLine)
}

// Compose the screen from the current state of the LCD controllers.
func (m *Machine) Compose() display.Status {
	return m.Display.Compose(m.Screen)
}

// LoadNVRAM from the file.
func (m *Machine) LoadNVRAM(filename string) error {
	if err := m.NVRAM.Load(filename); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}

// SaveNVRAM to the file.
func (m *Machine) SaveNVRAM(filename string) error {
	if err := m.NVRAM.Save(filename); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}

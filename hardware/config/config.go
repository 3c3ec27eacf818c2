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

// Package config describes the fixed configuration of an AlphaSmart 3000
// machine. Values that describe the wiring of the hardware are constant but
// are collected in the Machine type so that they can be passed explicitly to
// the components that need them.
package config

import (
	"image/color"

	"github.com/jetsetilly/gopher3000/hardware/clocks"
)

// LCD describes the geometry of one LCD controller.
type LCD struct {
	// number of character rows and columns driven by the controller
	Rows    int
	Columns int

	// size of a character cell in pixels
	CellWidth  int
	CellHeight int
}

// Height of the controller's output in pixels.
func (l LCD) Height() int {
	return l.Rows * l.CellHeight
}

// Width of the controller's output in pixels.
func (l LCD) Width() int {
	return l.Columns * l.CellWidth
}

// Machine is the configuration of the AlphaSmart 3000.
type Machine struct {
	Name string

	CPUClock    int
	LCDClock    int
	RefreshRate int

	// geometry of each of the two LCD controllers
	LCD LCD

	// number of LCD controllers
	NumLCD int

	// size of the screen. this is the size of the scratch bitmap that each
	// controller renders to and of the composited screen
	ScreenWidth  int
	ScreenHeight int

	// the two pens of the LCD
	Palette [2]color.RGBA

	// the name of the software list for the machine
	SoftwareList string
}

// Default returns the configuration of the AlphaSmart 3000. The LCD values
// are from the AlphaSmart 2000 and have not been confirmed for the 3000.
func Default() Machine {
	lcd := LCD{
		Rows:       2,
		Columns:    40,
		CellWidth:  6,
		CellHeight: 9,
	}

	return Machine{
		Name:         "AlphaSmart 3000",
		CPUClock:     clocks.CPU,
		LCDClock:     clocks.LCD,
		RefreshRate:  clocks.RefreshRate,
		LCD:          lcd,
		NumLCD:       2,
		ScreenWidth:  lcd.Width(),
		ScreenHeight: lcd.CellHeight * lcd.Rows * 2,
		Palette: [2]color.RGBA{
			{R: 138, G: 146, B: 148, A: 255},
			{R: 92, G: 83, B: 88, A: 255},
		},
		SoftwareList: "alphasmart_kapps",
	}
}

// CyclesPerFrame returns the number of CPU cycles in each frame.
func (m Machine) CyclesPerFrame() int {
	return m.CPUClock / m.RefreshRate
}

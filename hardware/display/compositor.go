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

package display

import (
	"github.com/jetsetilly/gopher3000/hardware/config"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
)

// Status is returned by Compose().
type Status int

// List of valid Status values.
const (
	// the screen has been updated
	Handled Status = iota
)

func (s Status) String() string {
	switch s {
	case Handled:
		return "handled"
	}
	return "unknown"
}

// the vertical position of the panel driven by the second controller
const secondPanelOffset = 18

// Compositor merges the panels of the LCD controllers into one bitmap.
type Compositor struct {
	lcd     [2]lcd.Controller
	scratch *lcd.Bitmap
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. The scratch bitmap is the same size as the screen.
func NewCompositor(cfg config.Machine, lcds [2]lcd.Controller) *Compositor {
	return &Compositor{
		lcd:     lcds,
		scratch: lcd.NewBitmap(cfg.ScreenWidth, cfg.ScreenHeight),
	}
}

// Compose renders both controllers into the output bitmap. The output should
// be the size of the screen but any size is clipped correctly.
func (cmp *Compositor) Compose(out *lcd.Bitmap) Status {
	cmp.render(0)
	out.Blit(cmp.scratch, 0, 0)
	cmp.render(1)
	out.Blit(cmp.scratch, 0, secondPanelOffset)
	return Handled
}

func (cmp *Compositor) render(i int) {
	if cmp.lcd[i] == nil {
		cmp.scratch.Fill(lcd.PenBackground)
		return
	}
	cmp.lcd[i].Render(cmp.scratch)
}

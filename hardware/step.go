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
	"github.com/jetsetilly/gopher3000/curated"
)

// Step the machine by one CPU instruction. If the instruction crosses the
// end of a frame then the screen is composited and the OnFrame() function is
// called.
func (m *Machine) Step() error {
	cycles, err := m.CPU.Step()
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}
	if cycles <= 0 {
		return curated.Errorf("machine: cpu core did not advance")
	}

	m.Instructions++

	m.Clock += cycles
	if m.Clock >= m.Config.CyclesPerFrame() {
		m.Clock -= m.Config.CyclesPerFrame()
		m.endFrame()
	}

	return nil
}

func (m *Machine) endFrame() {
	m.Compose()
	m.FrameNum++
	if m.OnFrame != nil {
		m.OnFrame(m.Screen)
	}
}

// Frame runs the machine until the end of the current frame.
func (m *Machine) Frame() error {
	fn := m.FrameNum
	for fn == m.FrameNum {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

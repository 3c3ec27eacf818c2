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
	"github.com/jetsetilly/gopher3000/hardware/govern"
)

// PerformanceBrake is the number of instructions to run between calls to
// the continueCheck() function in Run(). A continue check can be expensive
// and there is no need to do it after every instruction.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called at most once every PerformanceBrake instructions and
// should return govern.Ending when the emulation should stop.
//
// The emulation does not advance while the state is govern.Paused but the
// continueCheck() function is still called.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			for i := 0; i < PerformanceBrake; i++ {
				if err := m.Step(); err != nil {
					return err
				}
			}
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. The continueCheck() function is called at the end of every frame.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := m.FrameNum + numFrames

	state := govern.Running
	for m.FrameNum < targetFrame && state != govern.Ending {
		if err := m.Frame(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(m.FrameNum)
		if err != nil {
			return err
		}
	}

	return nil
}

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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware"
	"github.com/jetsetilly/gopher3000/hardware/govern"
)

// used to end the measurement period.
const timedOut = "performance: timed out"

// the time given to the emulation to settle down before measurement starts
var leadTime = 2 * time.Second

// Check runs the machine for the duration and writes the frame rate achieved
// to output. The duration is a string suitable for time.ParseDuration().
//
// Machine logging is silenced for the duration of the check.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m.SetLogging(false)
	defer m.SetLogging(true)

	startFrame := m.FrameNum

	runner := func() error {
		// the timer signals false when the lead time has elapsed and true when
		// the measurement period has finished
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		return m.Run(func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, curated.Errorf(timedOut)
				}
				startFrame = m.FrameNum
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := m.FrameNum - startFrame
	fps, accuracy := CalcFPS(m.Config.RefreshRate, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}

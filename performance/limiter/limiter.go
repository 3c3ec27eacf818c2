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

// Package limiter provides a simple method of limiting the frequency of an
// event.
package limiter

import (
	"time"
)

// FpsLimiter will trigger every frequency. Use Wait() to block until the next
// trigger.
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit alters the limit at which the FpsLimiter triggers. Values of zero
// or less are treated as one.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	lim.framesPerSecond = framesPerSecond

	d := time.Second / time.Duration(framesPerSecond)
	if lim.ticker == nil {
		lim.ticker = time.NewTicker(d)
	} else {
		lim.ticker.Reset(d)
	}
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has occurred since the last call to
// Wait() or HasWaited(). It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}

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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher3000/performance/limiter"
	"github.com/jetsetilly/gopher3000/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Limit(), 100)

	st := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(st) >= 80*time.Millisecond)

	lim.SetLimit(0)
	test.ExpectEquality(t, lim.Limit(), 1)
}

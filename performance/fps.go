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

// CalcFPS returns the number of frames per second achieved during the
// duration (in seconds). The accuracy value is the percentage of the
// refreshRate that has been achieved.
func CalcFPS(refreshRate int, numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 || refreshRate <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * float64(refreshRate))
	return fps, accuracy
}

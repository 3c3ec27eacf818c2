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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher3000/hardware/lcd"
)

// Screen is an implementation of the Digest interface for the composited
// screen of the machine.
type Screen struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{}
}

// Hash implements digest.Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Screen) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Screen) Frames() int {
	return dig.frameNum
}

// NewFrame adds the bitmap to the digest. Suitable for use as the OnFrame
// callback of the hardware.Machine type.
func (dig *Screen) NewFrame(bmp *lcd.Bitmap) {
	// room for the previous digest and the pen of every pixel
	l := len(dig.digest) + len(bmp.Pix)
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], bmp.Pix)

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}

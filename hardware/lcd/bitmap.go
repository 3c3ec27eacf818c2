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

package lcd

// Pen values used in a Bitmap.
const (
	PenBackground uint8 = iota
	PenForeground
)

// Bitmap is an indexed image. Each pixel is a pen value.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBitmap is the preferred method of initialisation for the Bitmap type.
func NewBitmap(width int, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the pen at the coordinates. Returns PenBackground for coordinates
// outside of the bitmap.
func (bmp *Bitmap) At(x int, y int) uint8 {
	if x < 0 || y < 0 || x >= bmp.Width || y >= bmp.Height {
		return PenBackground
	}
	return bmp.Pix[y*bmp.Width+x]
}

// Set the pen at the coordinates. Coordinates outside of the bitmap are
// ignored.
func (bmp *Bitmap) Set(x int, y int, pen uint8) {
	if x < 0 || y < 0 || x >= bmp.Width || y >= bmp.Height {
		return
	}
	bmp.Pix[y*bmp.Width+x] = pen
}

// Fill entire bitmap with the pen.
func (bmp *Bitmap) Fill(pen uint8) {
	for i := range bmp.Pix {
		bmp.Pix[i] = pen
	}
}

// Blit copies the src bitmap into bmp with the top-left corner of the src
// bitmap at position (x, y). The copy is clipped to the bounds of bmp.
func (bmp *Bitmap) Blit(src *Bitmap, x int, y int) {
	for sy := 0; sy < src.Height; sy++ {
		dy := y + sy
		if dy < 0 {
			continue
		}
		if dy >= bmp.Height {
			break
		}

		sx := 0
		dx := x
		if dx < 0 {
			sx = -dx
			dx = 0
		}
		if sx >= src.Width || dx >= bmp.Width {
			continue
		}

		n := min(src.Width-sx, bmp.Width-dx)
		copy(bmp.Pix[dy*bmp.Width+dx:dy*bmp.Width+dx+n], src.Pix[sy*src.Width+sx:sy*src.Width+sx+n])
	}
}

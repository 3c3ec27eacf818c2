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
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"golang.org/x/image/draw"
)

// Image converts the indexed bitmap to an RGBA image. Pen values outside of
// the palette are drawn with the last colour of the palette.
func Image(bmp *lcd.Bitmap, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bmp.Width, bmp.Height))
	if len(palette) == 0 {
		return img
	}

	for y := 0; y < bmp.Height; y++ {
		for x := 0; x < bmp.Width; x++ {
			p := int(bmp.Pix[y*bmp.Width+x])
			if p >= len(palette) {
				p = len(palette) - 1
			}
			img.SetRGBA(x, y, palette[p])
		}
	}

	return img
}

// Scale the image by an integer factor. Scaling uses nearest-neighbour
// sampling so that the pixels of the LCD stay sharp.
func Scale(img image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}

// Screenshot converts the bitmap to an image, scales it and saves it as a PNG
// file.
func Screenshot(filename string, bmp *lcd.Bitmap, palette []color.RGBA, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer f.Close()

	err = png.Encode(f, Scale(Image(bmp, palette), scale))
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}

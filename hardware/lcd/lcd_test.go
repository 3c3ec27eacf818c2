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

package lcd_test

import (
	"testing"

	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/test"
)

func TestBlit(t *testing.T) {
	src := lcd.NewBitmap(4, 2)
	src.Fill(lcd.PenForeground)

	dst := lcd.NewBitmap(6, 3)
	dst.Blit(src, 0, 0)
	test.ExpectEquality(t, dst.At(3, 1), lcd.PenForeground)
	test.ExpectEquality(t, dst.At(4, 1), lcd.PenBackground)
	test.ExpectEquality(t, dst.At(0, 2), lcd.PenBackground)

	// clipped on the right and bottom edges
	dst.Fill(lcd.PenBackground)
	dst.Blit(src, 4, 2)
	test.ExpectEquality(t, dst.At(4, 2), lcd.PenForeground)
	test.ExpectEquality(t, dst.At(5, 2), lcd.PenForeground)
	test.ExpectEquality(t, dst.At(3, 2), lcd.PenBackground)
	test.ExpectEquality(t, dst.At(4, 1), lcd.PenBackground)

	// clipped on the left edge
	dst.Fill(lcd.PenBackground)
	dst.Blit(src, -3, 0)
	test.ExpectEquality(t, dst.At(0, 0), lcd.PenForeground)
	test.ExpectEquality(t, dst.At(1, 0), lcd.PenBackground)

	// completely outside
	dst.Fill(lcd.PenBackground)
	dst.Blit(src, 10, 10)
	dst.Blit(src, -10, 0)
	for _, p := range dst.Pix {
		test.ExpectEquality(t, p, lcd.PenBackground)
	}

	// out of bounds access
	dst.Set(-1, 0, lcd.PenForeground)
	dst.Set(0, 100, lcd.PenForeground)
	test.ExpectEquality(t, dst.At(-1, 0), lcd.PenBackground)
}

func TestRecorder(t *testing.T) {
	rec := lcd.NewRecorder()
	rec.ReadData[lcd.InstructionRegister] = 0x80

	rec.Write(lcd.InstructionRegister, 0x30)
	rec.Write(lcd.DataRegister, 0x40)
	test.ExpectEquality(t, rec.Read(lcd.InstructionRegister), uint8(0x80))
	test.ExpectEquality(t, rec.Read(lcd.DataRegister), uint8(0x00))

	test.ExpectEquality(t, rec.Writes, 2)
	test.ExpectEquality(t, rec.Reads, 2)

	tr := rec.Transfers()
	test.DemandEquality(t, len(tr), 4)
	test.ExpectEquality(t, tr[0], lcd.Transfer{Write: true, Register: 0, Data: 0x30})
	test.ExpectEquality(t, tr[1], lcd.Transfer{Write: true, Register: 1, Data: 0x40})
	test.ExpectEquality(t, tr[2], lcd.Transfer{Register: 0, Data: 0x80})
	test.ExpectEquality(t, rec.Tail(1), "read DR 00\n")

	for i := 0; i < 1000; i++ {
		rec.Write(lcd.DataRegister, uint8(i))
	}
	tr = rec.Transfers()
	test.ExpectEquality(t, len(tr), 256)
	test.ExpectEquality(t, tr[len(tr)-1].Data, uint8(999&0xff))

	bmp := lcd.NewBitmap(10, 10)
	bmp.Fill(lcd.PenForeground)
	rec.Render(bmp)
	test.ExpectEquality(t, bmp.At(5, 5), lcd.PenBackground)

	rec.Reset()
	test.ExpectEquality(t, len(rec.Transfers()), 0)
	test.ExpectEquality(t, rec.Writes, 0)
}

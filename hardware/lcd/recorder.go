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

import (
	"fmt"
	"strings"
)

// the number of transfers kept by the recorder
const maxTransfers = 256

// Transfer is a single access of an LCD controller register.
type Transfer struct {
	Write    bool
	Register int
	Data     uint8
}

func (t Transfer) String() string {
	reg := "IR"
	if t.Register == DataRegister {
		reg = "DR"
	}
	if t.Write {
		return fmt.Sprintf("write %s %02x", reg, t.Data)
	}
	return fmt.Sprintf("read %s %02x", reg, t.Data)
}

// Recorder implements the Controller interface. It keeps a record of the
// most recent transfers but otherwise does nothing with them.
type Recorder struct {
	// the values returned by Read() for each register
	ReadData [2]uint8

	// total number of reads and writes since reset
	Reads  int
	Writes int

	transfers []Transfer
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder() *Recorder {
	return &Recorder{
		transfers: make([]Transfer, 0, maxTransfers),
	}
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("reads=%d writes=%d", rec.Reads, rec.Writes)
}

func (rec *Recorder) record(t Transfer) {
	if len(rec.transfers) == maxTransfers {
		copy(rec.transfers, rec.transfers[1:])
		rec.transfers = rec.transfers[:maxTransfers-1]
	}
	rec.transfers = append(rec.transfers, t)
}

// Read implements the Controller interface.
func (rec *Recorder) Read(register int) uint8 {
	register &= 0x01
	rec.Reads++
	rec.record(Transfer{Register: register, Data: rec.ReadData[register]})
	return rec.ReadData[register]
}

// Write implements the Controller interface.
func (rec *Recorder) Write(register int, data uint8) {
	register &= 0x01
	rec.Writes++
	rec.record(Transfer{Write: true, Register: register, Data: data})
}

// Render implements the Controller interface. The recorder always renders
// a blank panel.
func (rec *Recorder) Render(bmp *Bitmap) {
	bmp.Fill(PenBackground)
}

// Reset implements the Controller interface.
func (rec *Recorder) Reset() {
	rec.Reads = 0
	rec.Writes = 0
	rec.transfers = rec.transfers[:0]
}

// Transfers returns a copy of the most recent transfers, oldest first.
func (rec *Recorder) Transfers() []Transfer {
	t := make([]Transfer, len(rec.transfers))
	copy(t, rec.transfers)
	return t
}

// Tail returns the last n transfers as a multiline string.
func (rec *Recorder) Tail(n int) string {
	s := strings.Builder{}
	i := max(0, len(rec.transfers)-n)
	for _, t := range rec.transfers[i:] {
		s.WriteString(t.String())
		s.WriteRune('\n')
	}
	return s.String()
}

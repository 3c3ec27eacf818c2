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

package gpio

import (
	"fmt"

	"github.com/jetsetilly/gopher3000/hardware/cpu"
	"github.com/jetsetilly/gopher3000/hardware/keyboard"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/logger"
)

// bits of port C
const (
	portCData      = 0x0f
	portCDirection = 4
	portCRegister  = 5
	portCStrobe0   = 6
	portCStrobe1   = 7
)

// strobe bit of port A which copies the port into the column mask
const portAStrobe = 6

// the bit of port G that is hard wired high
const portGHigh = 4

// NumControllers is the number of LCD controllers connected to port C.
const NumControllers = 2

// Ports is the state of the GPIO ports and the latches connected to them.
type Ports struct {
	perm logger.Permission

	matrix *keyboard.Matrix
	lcd    [NumControllers]lcd.Controller

	a uint8
	c uint8

	// row result latch read through port D
	d uint8

	// the column mask. index 0 is the low byte
	mask [2]uint8
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(perm logger.Permission, matrix *keyboard.Matrix, lcds [NumControllers]lcd.Controller) *Ports {
	return &Ports{
		perm:   perm,
		matrix: matrix,
		lcd:    lcds,
	}
}

func (p *Ports) String() string {
	return fmt.Sprintf("A=%02x C=%02x D=%02x mask=%04x", p.a, p.c, p.d, p.ColumnMask())
}

// Reset all latches to zero.
func (p *Ports) Reset() {
	p.a = 0
	p.c = 0
	p.d = 0
	p.mask[0] = 0
	p.mask[1] = 0
}

// ColumnMask returns the current 16 bit keyboard column mask.
func (p *Ports) ColumnMask() uint16 {
	return uint16(p.mask[1])<<8 | uint16(p.mask[0])
}

// MatrixHigh returns the high byte of the column mask.
func (p *Ports) MatrixHigh() uint8 {
	return p.mask[1]
}

// WriteMatrixHigh sets the high byte of the column mask and scans the
// keyboard with the new mask. The result of the scan can then be read
// through port D.
func (p *Ports) WriteMatrixHigh(data uint8) {
	p.mask[1] = data
	p.d = p.matrix.Scan(p.ColumnMask())
}

// ReadBit returns the value of bit n of the port, either 0 or 1.
func (p *Ports) ReadBit(id cpu.PortID, n int) uint8 {
	if n < 0 || n > 7 {
		return 0
	}

	switch id {
	case cpu.PortA:
		return (p.a >> n) & 0x01
	case cpu.PortC:
		return (p.c >> n) & 0x01
	case cpu.PortD:
		return (p.d >> n) & 0x01
	case cpu.PortG:
		if n == portGHigh {
			return 1
		}
		return 0
	}

	return 0
}

// WriteBit sets bit n of the port to v. Any non-zero value of v is a 1.
func (p *Ports) WriteBit(id cpu.PortID, n int, v uint8) {
	if n < 0 || n > 7 {
		return
	}

	var state uint8
	if v != 0 {
		state = 1
	}

	switch id {
	case cpu.PortA:
		p.a = p.a&^(1<<n) | state<<n
		if n == portAStrobe {
			p.mask[0] = p.a & 0x7f
		}

	case cpu.PortC:
		p.c = p.c&^(1<<n) | state<<n
		if (n == portCStrobe0 || n == portCStrobe1) && state == 1 {
			p.transfer(n - portCStrobe0)
		}

	case cpu.PortD:
		logger.Logf(p.perm, "gpio", "write to read-only port D (bit %d)", n)

	case cpu.PortG:
		// port G writes are not connected to anything
	}
}

// transfer nibble to or from the LCD controller.
func (p *Ports) transfer(controller int) {
	ctrl := p.lcd[controller]
	if ctrl == nil {
		return
	}

	register := int((p.c >> portCRegister) & 0x01)

	if (p.c>>portCDirection)&0x01 == 0x01 {
		p.c &= 0xf0
		p.c |= ctrl.Read(register) >> 4
	} else {
		ctrl.Write(register, (p.c&portCData)<<4)
	}
}

// ReadPort implements the cpu.PortBus interface.
func (p *Ports) ReadPort(id cpu.PortID) uint8 {
	var d uint8
	for n := 0; n < 8; n++ {
		d |= p.ReadBit(id, n) << n
	}
	return d
}

// WritePort implements the cpu.PortBus interface. The write is applied as
// eight bit writes, starting with bit 0.
func (p *Ports) WritePort(id cpu.PortID, data uint8) {
	if id == cpu.PortD {
		logger.Logf(p.perm, "gpio", "write to read-only port D (%02x)", data)
		return
	}
	for n := 0; n < 8; n++ {
		p.WriteBit(id, n, (data>>n)&0x01)
	}
}

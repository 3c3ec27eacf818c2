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

// Controller is the interface to a single LCD controller.
type Controller interface {
	// Read the register selected by the register argument. Register 0 is the
	// instruction register and register 1 is the data register.
	Read(register int) uint8

	// Write data to the register.
	Write(register int, data uint8)

	// Render the panel driven by the controller into the bitmap. The
	// controller should not draw outside of its own panel area, starting at
	// position (0, 0).
	Render(bmp *Bitmap)

	// Reset the controller to its power-on state.
	Reset()
}

// The register select values.
const (
	InstructionRegister = 0
	DataRegister        = 1
)

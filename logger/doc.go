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

// Package logger is the central logging facility. Entries are made up of a
// tag and a detail string. The tag should name the component making the
// entry:
//
//	logger.Log(logger.Allow, "nvram", "seeded from ROM")
//	logger.Logf(machine, "gpio", "write to port D ignored (%#02x)", v)
//
// The first argument to Log() and Logf() is a Permission. The logger.Allow
// value always allows logging. Other implementations, such as the machine
// type in the hardware package, can decide at the time of the call.
//
// Consecutive entries that are identical are collapsed into one entry with a
// repeat count. Only the most recent entries are kept.
package logger

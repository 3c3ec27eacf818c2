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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. A curated error is created with Errorf(), which takes a
// pattern string and values in the same way as fmt.Errorf(). The pattern is
// what identifies the error:
//
//	const UnmappedAddress = "memory: unmapped address (%#08x)"
//
//	err := curated.Errorf(UnmappedAddress, address)
//	if curated.Is(err, UnmappedAddress) {
//		...
//	}
//
// Has() looks for the pattern anywhere in a chain of curated errors, so an
// error that has been wrapped by a higher level package can still be
// identified:
//
//	err = curated.Errorf("machine: %v", err)
//	curated.Is(err, UnmappedAddress)  // false
//	curated.Has(err, UnmappedAddress) // true
//
// Chains are thought of as parts separated by ": ". When the message is
// produced by Error() adjacent duplicate parts are removed, so wrapping an
// error with the same prefix as the error being wrapped does not stutter.
//
// Curated errors also implement Unwrap(). The first error value found among
// the values given to Errorf() is returned, which means errors.Is() and
// errors.As() from the standard library see through a curated wrapper to a
// wrapped system error, such as fs.ErrNotExist.
//
// Sentinel patterns should be exported string constants in the package that
// creates the error.
package curated

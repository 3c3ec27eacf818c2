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


// Package digest computes fingerprints of the emulation's output. The
// fingerprint of a frame is chained with the fingerprint of the previous
// frame, so two emulations that share a digest value have produced the same
// sequence of frames.
package digest

// Digest implementations compute a hash of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}

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

// Package test contains helper functions that remove boilerplate from unit
// tests.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when the
// value being tested is relied on by the rest of the test. For example, the
// length of a slice that is about to be indexed.
//
// Success and failure are decided by the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// CompareWriter implements io.Writer and is used to capture output for
// comparison with an expected string.
package test

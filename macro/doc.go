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

// Package macro runs Lua scripts that control the emulation. Scripts are run
// with github.com/yuin/gopher-lua and have access to the following functions:
//
//	press(name)          press the key with the name or label
//	release(name)        release the key
//	tap(name [, frames]) press and release the key
//	type(text)           type the text, using shift as required
//	peek(address)        return the byte at the address
//	poke(address, value) write the byte to the address
//	port(id [, value])   return (and optionally write) the port latch
//	frames(n)            run the emulation for n frames
//	reset()              reset the machine and the digest
//	screenshot(filename) save the screen as a PNG file
//	log(text)            add an entry to the log
//	digest()             return the fingerprint of every frame so far
//
// The type() function replaces the Lua function of the same name. The
// original function is available as luatype().
//
// Any error in a script ends the script. The error is returned by Run() and
// RunString().
//
// An example script:
//
//	-- start a new file and write something in it
//	tap("f1")
//	type("hello world\n")
//	frames(50)
//	screenshot("hello.png")
package macro

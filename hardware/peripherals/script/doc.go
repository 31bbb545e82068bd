// This file is part of GopherAVR.
//
// GopherAVR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAVR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAVR.  If not, see <https://www.gnu.org/licenses/>.

// Package script implements a peripheral whose behaviour is defined by a Lua
// script. The script is bound to a range of addresses in the I/O area and can
// define any of the following global functions:
//
//	init()               called once when the peripheral is attached
//	reset()              called when the AVR is reset
//	clock()              called once every CPU cycle
//	read(address)        called when the program reads an address in the range.
//	                     should return the value read
//	write(address, data) called when the program writes an address in the range
//
// The script can call the following functions in the avr table:
//
//	avr.raise(vector)    raise an interrupt
//	avr.clear(vector)    clear an interrupt
//	avr.log(message)     add an entry to the log
//	avr.cycles()         the number of cycles since the peripheral was reset
//
// A runtime error in the script kills the CPU.
package script

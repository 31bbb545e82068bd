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

// Package disassembly creates a textual representation of an AVR program.
//
// FromMemory() decodes a range of program memory. Every address in the range
// is decoded as though it is the start of an instruction, but only those
// addresses reached by a linear pass from the start of the range are
// "blessed". An address that is the second word of a two word instruction is
// therefore decoded but not blessed.
//
// The Disassembly type satisfies the cpu.Tracer interface. When attached to
// the CPU, entries are marked as executed as the program runs. Executed
// entries are the most reliable of all because there can be no doubt that
// the address is the start of an instruction.
//
// The Render() function is useful on its own for rendering a single
// instruction. It prefers the common aliases (LSL, ROL, TST, CLR, SER and the
// named conditional branches) to the underlying instruction where the
// encoding allows it.
package disassembly

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

// Package cpu emulates the AVR 8bit CPU. The CPU type executes one instruction
// at a time with the Step() function.
//
// Instructions are dispatched through four tables of 65536 entries, one entry
// for every possible opcode. The tables hold the decode function, the execute
// function, the size of the instruction in words and the minimum number of
// cycles. The tables are built once, the first time a CPU is created, by
// running every opcode through instructions.Classify(). The tables are shared
// by all CPU instances.
//
// Each step fetches the opcode, decodes the operands into the Operands type,
// executes the instruction, advances the program counter and cycle count, and
// then clocks the memory bindings once for every cycle consumed. Finally, any
// pending interrupt is serviced.
//
// Two word instructions clock the memory bindings once during decode, to
// represent the fetch of the second word. The total number of clocks is
// always equal to the number of cycles consumed by the instruction.
//
// The CPU is not safe for concurrent use. A CPU, its memory and the bindings
// attached to that memory must be owned by one goroutine.
//
// Access to an address outside of the data space kills the CPU. The Step()
// function returns an error matching the AddressFault pattern, which includes
// a dump of the CPU state. A killed CPU must be Reset() before it can be used
// again.
package cpu

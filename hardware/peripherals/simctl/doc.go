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

// Package simctl implements a set of registers that give the program control
// over the emulation. It is intended for test programs that need to report
// results and end the emulation with an exit code.
//
// The registers are implemented with write callouts rather than a binding.
// Every write to a simctl register is refused, so the registers always read
// as zero.
//
// Writing a byte to the CONSOLE register appends it to the current line. The
// line is logged (and written to the output, if there is one) when a newline
// is written.
//
// Writing to the COMMAND register performs the command:
//
//	CmdExit   end the emulation. the exit code is the value in the ARG register
//	CmdDump   log the state of the CPU
//	CmdCycles log the number of cycles since reset
package simctl

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

package execution

import (
	"fmt"
	"strings"
)

// Result is the state of the CPU immediately after an instruction has been
// executed. The PC field is the address of the instruction and not the
// address of the next instruction.
type Result struct {
	InstructionCount uint64
	Cycles           uint64

	PC     uint16
	Opcode uint16

	// the second word of a two word instruction. undefined for one word
	// instructions
	Operand uint16

	SP        uint16
	SREG      uint8
	Registers [32]uint8
}

func (r Result) String() string {
	return fmt.Sprintf("%8d %10d %04x: %04x sp=%04x sreg=%08b", r.InstructionCount, r.Cycles,
		r.PC, r.Opcode, r.SP, r.SREG)
}

// RegisterString returns the register bank as a string. Eight registers to a
// line.
func (r Result) RegisterString() string {
	s := strings.Builder{}
	for i, v := range r.Registers {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("r%02d=%02x", i, v))
	}
	return s.String()
}

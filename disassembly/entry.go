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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheravr/disassembly/symbols"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every address is a valid
// instruction. Blessed entries meanwhile take into consideration the preceding
// instruction and the number of words it would have consumed.
//
// Decoded entries are useful in the event of the CPU landing on an address that
// didn't look like an instruction at disassembly time.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown"
}

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// word address of the instruction in program memory
	Address uint16

	// the instruction word and the word following it. the second word is
	// only meaningful if Defn.Words is two
	Opcode uint16
	Second uint16

	Defn    instructions.Definition
	Decoded cpu.Operands

	// string representations of the instruction
	Label    string
	Bytecode string
	Operator string
	Operand  string

	// the most recent execution of the entry. only valid if Level is
	// EntryLevelExecuted
	Result        execution.Result
	ExecutedCount int
}

// newEntry decodes and renders the instruction at the address. The sym
// argument can be nil.
func newEntry(sym *symbols.Symbols, address uint16, opcode uint16, second uint16, level EntryLevel) *Entry {
	e := &Entry{
		Level:   level,
		Address: address,
		Opcode:  opcode,
		Second:  second,
	}
	e.Defn, e.Decoded = cpu.Decode(opcode, second)
	e.Operator, e.Operand = RenderWithSymbols(sym, address, e.Defn, e.Decoded)
	if e.Defn.Mnemonic == instructions.Undefined {
		e.Operand = fmt.Sprintf("%#04x", opcode)
	}
	e.Bytecode = bytecode(opcode, second, e.Defn.Words)
	if sym != nil {
		e.Label, _ = sym.GetLabel(address)
	}
	return e
}

// bytecode is shown in program memory order. each word is little-endian
func bytecode(opcode uint16, second uint16, words int) string {
	s := fmt.Sprintf("%02x %02x", uint8(opcode), uint8(opcode>>8))
	if words == 2 {
		s = fmt.Sprintf("%s %02x %02x", s, uint8(second), uint8(second>>8))
	}
	return s
}

// updateExecutionEntry must be the only way the Result field is changed.
func (e *Entry) updateExecutionEntry(sym *symbols.Symbols, result execution.Result) {
	// the program has been changed since disassembly
	if result.Opcode != e.Opcode || (e.Defn.Words == 2 && result.Operand != e.Second) {
		*e = *newEntry(sym, e.Address, result.Opcode, result.Operand, EntryLevelExecuted)
	}

	e.Result = result
	e.Level = EntryLevelExecuted
	e.ExecutedCount++
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// pad string to width with spaces.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

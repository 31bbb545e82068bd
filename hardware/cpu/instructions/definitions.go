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

package instructions

import "fmt"

// Operands describes how the operands of an instruction are encoded in the
// opcode.
type Operands int

// List of operand encodings. In the comments, d and r are register bits, K is
// an immediate value, k is an address or displacement, q is a displacement, A
// is an I/O address, b is a bit number and s is a status register bit number.
const (
	// no operands
	Implied Operands = iota

	// 0000 00rd dddd rrrr: two registers from the full register file
	RdRr

	// 0000 000d dddd 0000: one register from the full register file
	Rd

	// KKKK dddd KKKK: one register from the upper bank and an 8bit value
	RdK

	// 0000 0000 dddd rrrr: two registers from the upper bank
	RdRrUpper

	// 0000 0000 0ddd 0rrr: two registers from r16 to r23
	RdRrMultiply

	// 0000 0000 dddd rrrr: two register pairs
	RdRrPair

	// 0000 0000 KKdd KKKK: one of the four upper register pairs and a 6bit
	// value
	RdPairK

	// 00q0 qq0d dddd 0qqq: one register and a 6bit displacement
	RdQ

	// 0000 000d dddd 0000 kkkk kkkk kkkk kkkk: one register and a 16bit
	// address in the next word
	RdAddress

	// 0000 000k kkkk 000k kkkk kkkk kkkk kkkk: a 22bit address spread over
	// the two words
	Address

	// 0000 00kk kkkk ksss: a 7bit signed displacement and a status bit
	Branch

	// 0000 kkkk kkkk kkkk: a 12bit signed displacement
	Relative

	// 0000 0000 AAAA Abbb: a 5bit I/O address and a bit number
	IOBit

	// 0000 0AAd dddd AAAA: a register and a 6bit I/O address
	RdIO

	// 0000 000d dddd 0bbb: a register and a bit number
	RdBit

	// 0000 0000 0sss 0000: a status register bit number
	StatusBit

	// 0000 0000 KKKK 0000: a 4bit value
	K4
)

// Pointer identifies the pointer register used by indirect memory access.
type Pointer int

// List of pointer registers.
const (
	NoPointer Pointer = iota
	X
	Y
	Z
)

func (p Pointer) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return ""
}

// Access describes how an indirect memory access uses the pointer register.
type Access int

// List of pointer access types.
const (
	Plain Access = iota
	PostIncrement
	PreDecrement
	Displacement
)

// Definition describes an instruction.
type Definition struct {
	Mnemonic Mnemonic
	Operands Operands

	// pointer register and access type for indirect instructions
	Pointer Pointer
	Access  Access

	// size of instruction in words
	Words int

	// minimum number of cycles taken by the instruction. branches and skips
	// will take longer if they are taken
	Cycles int
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s (%d words, %d cycles)", defn.Mnemonic, defn.Words, defn.Cycles)
}

// IsDefined returns false if the definition is for an undefined opcode.
func (defn Definition) IsDefined() bool {
	return defn.Mnemonic != Undefined
}

func define(m Mnemonic, o Operands, cycles int) Definition {
	return Definition{Mnemonic: m, Operands: o, Words: 1, Cycles: cycles}
}

func long(m Mnemonic, o Operands, cycles int) Definition {
	return Definition{Mnemonic: m, Operands: o, Words: 2, Cycles: cycles}
}

func indirect(m Mnemonic, o Operands, p Pointer, a Access, cycles int) Definition {
	return Definition{Mnemonic: m, Operands: o, Pointer: p, Access: a, Words: 1, Cycles: cycles}
}

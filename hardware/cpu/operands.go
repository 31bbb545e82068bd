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

package cpu

import "github.com/jetsetilly/gopheravr/hardware/cpu/instructions"

// Operands are the decoded operands of an instruction. Which fields are
// meaningful depends on the instruction. The CPU clears the operands before
// every decode.
type Operands struct {
	// indexes into the register file
	Rd uint8
	Rr uint8

	// 8bit immediate value. also used for the 6bit value of ADIW and SBIW and
	// the 4bit value of DES
	K uint8

	// signed displacement for relative branches, jumps and calls
	Offset int

	// absolute address for LDS, STS, JMP and CALL
	Address uint32

	// bit number for the bit instructions
	Bit uint8

	// status register bit number for BRBS, BRBC and the set and clear
	// instructions
	Flag uint8

	// displacement for LDD and STD
	Q uint8

	// I/O address. this is not a data space address
	A uint8
}

// decoder extracts the operands from the opcode. The second word is only
// meaningful for two word instructions.
type decoder func(opcode uint16, second uint16, ops *Operands)

func decodeImplied(_ uint16, _ uint16, _ *Operands) {
}

func decodeRdRr(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x1f
	ops.Rr = uint8(opcode&0x0f) | uint8(opcode>>5)&0x10
}

func decodeRd(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x1f
}

func decodeRdK(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = 16 + uint8(opcode>>4)&0x0f
	ops.K = uint8(opcode>>4)&0xf0 | uint8(opcode)&0x0f
}

func decodeRdRrUpper(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = 16 + uint8(opcode>>4)&0x0f
	ops.Rr = 16 + uint8(opcode)&0x0f
}

func decodeRdRrMultiply(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = 16 + uint8(opcode>>4)&0x07
	ops.Rr = 16 + uint8(opcode)&0x07
}

func decodeRdRrPair(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x0f << 1
	ops.Rr = uint8(opcode) & 0x0f << 1
}

func decodeRdPairK(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = 24 + uint8(opcode>>4)&0x03<<1
	ops.K = uint8(opcode>>2)&0x30 | uint8(opcode)&0x0f
}

// the displacement is in three parts: bit 13, bits 11-10 and bits 2-0
func decodeRdQ(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x1f
	ops.Q = uint8(opcode>>8)&0x20 | uint8(opcode>>7)&0x18 | uint8(opcode)&0x07
}

func decodeRdAddress(opcode uint16, second uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x1f
	ops.Address = uint32(second)
}

// the upper six bits of the 22bit address are in bits 8-4 and bit 0 of the
// opcode
func decodeAddress(opcode uint16, second uint16, ops *Operands) {
	ops.Address = uint32(opcode>>4)&0x1f<<17 | uint32(opcode&0x01)<<16 | uint32(second)
}

func decodeBranch(opcode uint16, _ uint16, ops *Operands) {
	k := int(opcode>>3) & 0x7f
	if k&0x40 == 0x40 {
		k -= 0x80
	}
	ops.Offset = k
	ops.Flag = uint8(opcode) & 0x07
}

func decodeRelative(opcode uint16, _ uint16, ops *Operands) {
	k := int(opcode) & 0x0fff
	if k&0x0800 == 0x0800 {
		k -= 0x1000
	}
	ops.Offset = k
}

func decodeIOBit(opcode uint16, _ uint16, ops *Operands) {
	ops.A = uint8(opcode>>3) & 0x1f
	ops.Bit = uint8(opcode) & 0x07
}

func decodeRdIO(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x1f
	ops.A = uint8(opcode>>5)&0x30 | uint8(opcode)&0x0f
}

func decodeRdBit(opcode uint16, _ uint16, ops *Operands) {
	ops.Rd = uint8(opcode>>4) & 0x1f
	ops.Bit = uint8(opcode) & 0x07
}

func decodeStatusBit(opcode uint16, _ uint16, ops *Operands) {
	ops.Flag = uint8(opcode>>4) & 0x07
}

func decodeK4(opcode uint16, _ uint16, ops *Operands) {
	ops.K = uint8(opcode>>4) & 0x0f
}

// classifyDecoder returns the decode function for the opcode.
func classifyDecoder(opcode uint16) decoder {
	return decoderFor(instructions.Classify(opcode).Operands)
}

func decoderFor(operands instructions.Operands) decoder {
	switch operands {
	case instructions.RdRr:
		return decodeRdRr
	case instructions.Rd:
		return decodeRd
	case instructions.RdK:
		return decodeRdK
	case instructions.RdRrUpper:
		return decodeRdRrUpper
	case instructions.RdRrMultiply:
		return decodeRdRrMultiply
	case instructions.RdRrPair:
		return decodeRdRrPair
	case instructions.RdPairK:
		return decodeRdPairK
	case instructions.RdQ:
		return decodeRdQ
	case instructions.RdAddress:
		return decodeRdAddress
	case instructions.Address:
		return decodeAddress
	case instructions.Branch:
		return decodeBranch
	case instructions.Relative:
		return decodeRelative
	case instructions.IOBit:
		return decodeIOBit
	case instructions.RdIO:
		return decodeRdIO
	case instructions.RdBit:
		return decodeRdBit
	case instructions.StatusBit:
		return decodeStatusBit
	case instructions.K4:
		return decodeK4
	}
	return decodeImplied
}

// Decode returns the definition and operands for an instruction without
// executing it. The second word is only used if the instruction is a two word
// instruction. Decode does not affect the state of any CPU.
func Decode(opcode uint16, second uint16) (instructions.Definition, Operands) {
	defn := instructions.Classify(opcode)
	var ops Operands
	decoderFor(defn.Operands)(opcode, second, &ops)
	return defn, ops
}

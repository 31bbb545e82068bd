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

// Classify returns the Definition for the opcode. It is a total function over
// all 16bit values.
//
// The order of the tests is significant. Exact encodings are tested before
// the masked encodings, and the masks are tested in decreasing order of
// specificity.
func Classify(opcode uint16) Definition {
	// exact encodings
	switch opcode {
	case 0x0000:
		return define(NOP, Implied, 1)
	case 0x9508:
		return define(RET, Implied, 4)
	case 0x9518:
		return define(RETI, Implied, 4)
	case 0x9588:
		return define(SLEEP, Implied, 1)
	case 0x9598:
		return define(BREAK, Implied, 1)
	case 0x95a8:
		return define(WDR, Implied, 1)
	case 0x95c8:
		return indirect(LPM, Implied, Z, Plain, 3)
	case 0x95d8:
		return indirect(ELPM, Implied, Z, Plain, 3)
	case 0x95e8:
		return indirect(SPM, Implied, Z, Plain, 1)
	case 0x95f8:
		return indirect(SPM, Implied, Z, PostIncrement, 1)
	case 0x9409:
		return indirect(IJMP, Implied, Z, Plain, 2)
	case 0x9419:
		return indirect(EIJMP, Implied, Z, Plain, 2)
	case 0x9509:
		return indirect(ICALL, Implied, Z, Plain, 3)
	case 0x9519:
		return indirect(EICALL, Implied, Z, Plain, 4)
	}

	// status register set and clear. these are the only valid encodings of
	// BSET and BCLR
	if opcode&0xff8f == 0x9408 {
		return define(SEC+Mnemonic((opcode>>4)&0x07), StatusBit, 1)
	}
	if opcode&0xff8f == 0x9488 {
		return define(CLC+Mnemonic((opcode>>4)&0x07), StatusBit, 1)
	}

	switch opcode & 0xfe0f {
	case 0x9000:
		return long(LDS, RdAddress, 2)
	case 0x9001:
		return indirect(LD, Rd, Z, PostIncrement, 2)
	case 0x9002:
		return indirect(LD, Rd, Z, PreDecrement, 2)
	case 0x9004:
		return indirect(LPM, Rd, Z, Plain, 3)
	case 0x9005:
		return indirect(LPM, Rd, Z, PostIncrement, 3)
	case 0x9006:
		return indirect(ELPM, Rd, Z, Plain, 3)
	case 0x9007:
		return indirect(ELPM, Rd, Z, PostIncrement, 3)
	case 0x9009:
		return indirect(LD, Rd, Y, PostIncrement, 2)
	case 0x900a:
		return indirect(LD, Rd, Y, PreDecrement, 2)
	case 0x900c:
		return indirect(LD, Rd, X, Plain, 2)
	case 0x900d:
		return indirect(LD, Rd, X, PostIncrement, 2)
	case 0x900e:
		return indirect(LD, Rd, X, PreDecrement, 2)
	case 0x900f:
		return define(POP, Rd, 2)
	case 0x9200:
		return long(STS, RdAddress, 2)
	case 0x9201:
		return indirect(ST, Rd, Z, PostIncrement, 2)
	case 0x9202:
		return indirect(ST, Rd, Z, PreDecrement, 2)
	case 0x9204:
		return indirect(XCH, Rd, Z, Plain, 2)
	case 0x9205:
		return indirect(LAS, Rd, Z, Plain, 2)
	case 0x9206:
		return indirect(LAC, Rd, Z, Plain, 2)
	case 0x9207:
		return indirect(LAT, Rd, Z, Plain, 2)
	case 0x9209:
		return indirect(ST, Rd, Y, PostIncrement, 2)
	case 0x920a:
		return indirect(ST, Rd, Y, PreDecrement, 2)
	case 0x920c:
		return indirect(ST, Rd, X, Plain, 2)
	case 0x920d:
		return indirect(ST, Rd, X, PostIncrement, 2)
	case 0x920e:
		return indirect(ST, Rd, X, PreDecrement, 2)
	case 0x920f:
		return define(PUSH, Rd, 2)
	case 0x9400:
		return define(COM, Rd, 1)
	case 0x9401:
		return define(NEG, Rd, 1)
	case 0x9402:
		return define(SWAP, Rd, 1)
	case 0x9403:
		return define(INC, Rd, 1)
	case 0x9405:
		return define(ASR, Rd, 1)
	case 0x9406:
		return define(LSR, Rd, 1)
	case 0x9407:
		return define(ROR, Rd, 1)
	case 0x940a:
		return define(DEC, Rd, 1)
	}

	switch opcode & 0xfe0e {
	case 0x940c:
		return long(JMP, Address, 3)
	case 0x940e:
		return long(CALL, Address, 4)
	}

	if opcode&0xff0f == 0x940b {
		return define(DES, K4, 1)
	}

	// unreachable in practice because of the SEx and CLx tests above but
	// kept so that the cascade covers the complete instruction set
	switch opcode & 0xff8f {
	case 0x9408:
		return define(BSET, StatusBit, 1)
	case 0x9488:
		return define(BCLR, StatusBit, 1)
	}

	switch opcode & 0xff88 {
	case 0x0300:
		return define(MULSU, RdRrMultiply, 2)
	case 0x0308:
		return define(FMUL, RdRrMultiply, 2)
	case 0x0380:
		return define(FMULS, RdRrMultiply, 2)
	case 0x0388:
		return define(FMULSU, RdRrMultiply, 2)
	}

	switch opcode & 0xff00 {
	case 0x0100:
		return define(MOVW, RdRrPair, 1)
	case 0x0200:
		return define(MULS, RdRrUpper, 2)
	case 0x9600:
		return define(ADIW, RdPairK, 2)
	case 0x9700:
		return define(SBIW, RdPairK, 2)
	case 0x9800:
		return define(CBI, IOBit, 2)
	case 0x9900:
		return define(SBIC, IOBit, 1)
	case 0x9a00:
		return define(SBI, IOBit, 2)
	case 0x9b00:
		return define(SBIS, IOBit, 1)
	}

	switch opcode & 0xfe08 {
	case 0xf800:
		return define(BLD, RdBit, 1)
	case 0xfa00:
		return define(BST, RdBit, 1)
	case 0xfc00:
		return define(SBRC, RdBit, 1)
	case 0xfe00:
		return define(SBRS, RdBit, 1)
	}

	switch opcode & 0xfc00 {
	case 0x9c00:
		return define(MUL, RdRr, 2)
	case 0x0400:
		return define(CPC, RdRr, 1)
	case 0x0800:
		return define(SBC, RdRr, 1)
	case 0x0c00:
		return define(ADD, RdRr, 1)
	case 0x1000:
		return define(CPSE, RdRr, 1)
	case 0x1400:
		return define(CP, RdRr, 1)
	case 0x1800:
		return define(SUB, RdRr, 1)
	case 0x1c00:
		return define(ADC, RdRr, 1)
	case 0x2000:
		return define(AND, RdRr, 1)
	case 0x2400:
		return define(EOR, RdRr, 1)
	case 0x2800:
		return define(OR, RdRr, 1)
	case 0x2c00:
		return define(MOV, RdRr, 1)
	case 0xf000:
		return define(BRBS, Branch, 1)
	case 0xf400:
		return define(BRBC, Branch, 1)
	}

	switch opcode & 0xf800 {
	case 0xb000:
		return define(IN, RdIO, 1)
	case 0xb800:
		return define(OUT, RdIO, 1)
	}

	switch opcode & 0xd208 {
	case 0x8000:
		return indirect(LDD, RdQ, Z, Displacement, 2)
	case 0x8008:
		return indirect(LDD, RdQ, Y, Displacement, 2)
	case 0x8200:
		return indirect(STD, RdQ, Z, Displacement, 2)
	case 0x8208:
		return indirect(STD, RdQ, Y, Displacement, 2)
	}

	switch opcode & 0xf000 {
	case 0x3000:
		return define(CPI, RdK, 1)
	case 0x4000:
		return define(SBCI, RdK, 1)
	case 0x5000:
		return define(SUBI, RdK, 1)
	case 0x6000:
		return define(ORI, RdK, 1)
	case 0x7000:
		return define(ANDI, RdK, 1)
	case 0xc000:
		return define(RJMP, Relative, 2)
	case 0xd000:
		return define(RCALL, Relative, 3)
	case 0xe000:
		return define(LDI, RdK, 1)
	}

	return define(Undefined, Implied, 1)
}

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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/test"
)

func TestClassification(t *testing.T) {
	cases := []struct {
		opcode   uint16
		mnemonic instructions.Mnemonic
		words    int
		cycles   int
	}{
		{0x0000, instructions.NOP, 1, 1},
		{0x0c01, instructions.ADD, 1, 1},
		{0x1c11, instructions.ADC, 1, 1},
		{0x9601, instructions.ADIW, 1, 2},
		{0x9701, instructions.SBIW, 1, 2},
		{0x0123, instructions.MOVW, 1, 1},
		{0x0212, instructions.MULS, 1, 2},
		{0x0312, instructions.MULSU, 1, 2},
		{0x031a, instructions.FMUL, 1, 2},
		{0x0392, instructions.FMULS, 1, 2},
		{0x039a, instructions.FMULSU, 1, 2},
		{0x9c12, instructions.MUL, 1, 2},
		{0x940b, instructions.DES, 1, 1},
		{0x94fb, instructions.DES, 1, 1},
		{0x940c, instructions.JMP, 2, 3},
		{0x95fd, instructions.JMP, 2, 3},
		{0x940e, instructions.CALL, 2, 4},
		{0x9508, instructions.RET, 1, 4},
		{0x9518, instructions.RETI, 1, 4},
		{0xc000, instructions.RJMP, 1, 2},
		{0xd000, instructions.RCALL, 1, 3},
		{0x9409, instructions.IJMP, 1, 2},
		{0x9509, instructions.ICALL, 1, 3},
		{0x9419, instructions.EIJMP, 1, 2},
		{0x9519, instructions.EICALL, 1, 4},
		{0xf001, instructions.BRBS, 1, 1},
		{0xf7f9, instructions.BRBC, 1, 1},
		{0x1001, instructions.CPSE, 1, 1},
		{0xfc07, instructions.SBRC, 1, 1},
		{0xfe07, instructions.SBRS, 1, 1},
		{0x9900, instructions.SBIC, 1, 1},
		{0x9b00, instructions.SBIS, 1, 1},
		{0x9800, instructions.CBI, 1, 2},
		{0x9a00, instructions.SBI, 1, 2},
		{0x9000, instructions.LDS, 2, 2},
		{0x9200, instructions.STS, 2, 2},
		{0x900c, instructions.LD, 1, 2},
		{0x8000, instructions.LDD, 1, 2},
		{0xadff, instructions.LDD, 1, 2},
		{0x8208, instructions.STD, 1, 2},
		{0x920f, instructions.PUSH, 1, 2},
		{0x900f, instructions.POP, 1, 2},
		{0x95c8, instructions.LPM, 1, 3},
		{0x9005, instructions.LPM, 1, 3},
		{0x95d8, instructions.ELPM, 1, 3},
		{0x95e8, instructions.SPM, 1, 1},
		{0x9204, instructions.XCH, 1, 2},
		{0xb000, instructions.IN, 1, 1},
		{0xbfff, instructions.OUT, 1, 1},
		{0xe0ff, instructions.LDI, 1, 1},
		{0x3000, instructions.CPI, 1, 1},
		{0x2400, instructions.EOR, 1, 1},
		{0xf800, instructions.BLD, 1, 1},
		{0xfa00, instructions.BST, 1, 1},
		{0x9588, instructions.SLEEP, 1, 1},
		{0x95a8, instructions.WDR, 1, 1},
		{0x9598, instructions.BREAK, 1, 1},
		{0x9408, instructions.SEC, 1, 1},
		{0x9478, instructions.SEI, 1, 1},
		{0x9488, instructions.CLC, 1, 1},
		{0x94f8, instructions.CLI, 1, 1},
	}

	for _, c := range cases {
		tag := fmt.Sprintf("%04x", c.opcode)
		defn := instructions.Classify(c.opcode)
		test.ExpectEquality(t, defn.Mnemonic, c.mnemonic, tag)
		test.ExpectEquality(t, defn.Words, c.words, tag)
		test.ExpectEquality(t, defn.Cycles, c.cycles, tag)
	}
}

func TestStatusEncodings(t *testing.T) {
	// the SEx and CLx encodings subsume BSET and BCLR completely
	for s := uint16(0); s < 8; s++ {
		set := instructions.Classify(0x9408 | s<<4)
		test.ExpectSuccess(t, set.Mnemonic.IsSetStatus())
		test.ExpectEquality(t, set.Mnemonic, instructions.SEC+instructions.Mnemonic(s))
		test.ExpectEquality(t, set.Operands, instructions.StatusBit)

		clr := instructions.Classify(0x9488 | s<<4)
		test.ExpectSuccess(t, clr.Mnemonic.IsClearStatus())
		test.ExpectEquality(t, clr.Mnemonic, instructions.CLC+instructions.Mnemonic(s))
	}

	for op := 0; op < 0x10000; op++ {
		m := instructions.Classify(uint16(op)).Mnemonic
		if m == instructions.BSET || m == instructions.BCLR {
			t.Fatalf("%04x classified as %s", op, m)
		}
	}
}

func TestPointers(t *testing.T) {
	defn := instructions.Classify(0x900e)
	test.ExpectEquality(t, defn.Pointer, instructions.X)
	test.ExpectEquality(t, defn.Access, instructions.PreDecrement)

	defn = instructions.Classify(0x9209)
	test.ExpectEquality(t, defn.Pointer, instructions.Y)
	test.ExpectEquality(t, defn.Access, instructions.PostIncrement)

	defn = instructions.Classify(0x8008)
	test.ExpectEquality(t, defn.Pointer, instructions.Y)
	test.ExpectEquality(t, defn.Access, instructions.Displacement)

	defn = instructions.Classify(0x95c8)
	test.ExpectEquality(t, defn.Pointer, instructions.Z)
	test.ExpectEquality(t, defn.Operands, instructions.Implied)
}

func TestUndefined(t *testing.T) {
	for _, op := range []uint16{0x9003, 0x9008, 0x9203, 0x9404, 0x9528, 0x95b8, 0xf808, 0xfe08, 0xff0f} {
		defn := instructions.Classify(op)
		tag := fmt.Sprintf("%04x", op)
		test.ExpectEquality(t, defn.Mnemonic, instructions.Undefined, tag)
		test.ExpectEquality(t, defn.Words, 1, tag)
		test.ExpectEquality(t, defn.Cycles, 1, tag)
		test.ExpectFailure(t, defn.IsDefined(), tag)
	}
}

func TestTotality(t *testing.T) {
	var defined int
	for op := 0; op < 0x10000; op++ {
		defn := instructions.Classify(uint16(op))
		if defn.Words < 1 || defn.Words > 2 {
			t.Fatalf("%04x has size of %d words", op, defn.Words)
		}
		if defn.Cycles < 1 || defn.Cycles > 4 {
			t.Fatalf("%04x has %d cycles", op, defn.Cycles)
		}
		if defn.IsDefined() {
			defined++
		}
		if defn.Mnemonic.String() == "" {
			t.Fatalf("%04x has no mnemonic name", op)
		}
	}

	// most of the opcode space is used
	test.ExpectSuccess(t, defined > 0xf000)
}

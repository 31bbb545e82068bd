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

	"github.com/jetsetilly/gopheravr/disassembly/symbols"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
)

// conditional branch names indexed by status register bit. BRBS and BRBC are
// never shown
var (
	branchSet   = [8]string{"BRCS", "BREQ", "BRMI", "BRVS", "BRLT", "BRHS", "BRTS", "BRIE"}
	branchClear = [8]string{"BRCC", "BRNE", "BRPL", "BRVC", "BRGE", "BRHC", "BRTC", "BRID"}
)

// Render returns the operator and operand strings for a decoded instruction.
// The address is the word address of the instruction and is used to resolve
// the target of relative branches.
func Render(address uint16, defn instructions.Definition, ops cpu.Operands) (string, string) {
	return RenderWithSymbols(nil, address, defn, ops)
}

// RenderWithSymbols is the same as Render() but branch targets and I/O
// addresses are replaced with symbols where possible. The sym argument can be
// nil.
func RenderWithSymbols(sym *symbols.Symbols, address uint16, defn instructions.Definition, ops cpu.Operands) (string, string) {
	r := renderer{sym: sym}

	operator := defn.Mnemonic.String()

	switch defn.Operands {
	case instructions.Implied:
		switch defn.Mnemonic {
		case instructions.Undefined:
			return ".word", ""
		case instructions.SPM:
			if defn.Access == instructions.PostIncrement {
				return operator, "Z+"
			}
		}
		return operator, ""

	case instructions.RdRr:
		if ops.Rd == ops.Rr {
			switch defn.Mnemonic {
			case instructions.ADD:
				return "LSL", reg(ops.Rd)
			case instructions.ADC:
				return "ROL", reg(ops.Rd)
			case instructions.AND:
				return "TST", reg(ops.Rd)
			case instructions.EOR:
				return "CLR", reg(ops.Rd)
			}
		}
		return operator, fmt.Sprintf("%s, %s", reg(ops.Rd), reg(ops.Rr))

	case instructions.RdRrUpper, instructions.RdRrMultiply, instructions.RdRrPair:
		return operator, fmt.Sprintf("%s, %s", reg(ops.Rd), reg(ops.Rr))

	case instructions.Rd:
		if defn.Pointer == instructions.NoPointer {
			return operator, reg(ops.Rd)
		}
		p := pointer(defn.Pointer, defn.Access, 0)
		switch defn.Mnemonic {
		case instructions.ST, instructions.XCH, instructions.LAS, instructions.LAC, instructions.LAT:
			return operator, fmt.Sprintf("%s, %s", p, reg(ops.Rd))
		}
		return operator, fmt.Sprintf("%s, %s", reg(ops.Rd), p)

	case instructions.RdK:
		if defn.Mnemonic == instructions.LDI && ops.K == 0xff {
			return "SER", reg(ops.Rd)
		}
		return operator, fmt.Sprintf("%s, %#02x", reg(ops.Rd), ops.K)

	case instructions.RdPairK:
		return operator, fmt.Sprintf("%s, %d", reg(ops.Rd), ops.K)

	case instructions.RdQ:
		// a displacement of zero is the plain form of LD and ST
		if ops.Q == 0 {
			switch defn.Mnemonic {
			case instructions.LDD:
				operator = instructions.LD.String()
			case instructions.STD:
				operator = instructions.ST.String()
			}
		}
		p := pointer(defn.Pointer, defn.Access, ops.Q)
		if defn.Mnemonic == instructions.STD {
			return operator, fmt.Sprintf("%s, %s", p, reg(ops.Rd))
		}
		return operator, fmt.Sprintf("%s, %s", reg(ops.Rd), p)

	case instructions.RdAddress:
		a := r.data(uint16(ops.Address))
		if defn.Mnemonic == instructions.STS {
			return operator, fmt.Sprintf("%s, %s", a, reg(ops.Rd))
		}
		return operator, fmt.Sprintf("%s, %s", reg(ops.Rd), a)

	case instructions.Address:
		return operator, r.program(uint16(ops.Address))

	case instructions.Branch:
		if defn.Mnemonic == instructions.BRBS {
			operator = branchSet[ops.Flag&0x07]
		} else {
			operator = branchClear[ops.Flag&0x07]
		}
		return operator, r.relative(address, ops.Offset)

	case instructions.Relative:
		return operator, r.relative(address, ops.Offset)

	case instructions.IOBit:
		return operator, fmt.Sprintf("%s, %d", r.io(ops.A), ops.Bit)

	case instructions.RdIO:
		if defn.Mnemonic == instructions.OUT {
			return operator, fmt.Sprintf("%s, %s", r.io(ops.A), reg(ops.Rd))
		}
		return operator, fmt.Sprintf("%s, %s", reg(ops.Rd), r.io(ops.A))

	case instructions.RdBit:
		return operator, fmt.Sprintf("%s, %d", reg(ops.Rd), ops.Bit)

	case instructions.StatusBit:
		// the SEx and CLx mnemonics include the bit number
		if defn.Mnemonic.IsSetStatus() || defn.Mnemonic.IsClearStatus() {
			return operator, ""
		}
		return operator, fmt.Sprintf("%d", ops.Flag)

	case instructions.K4:
		return operator, fmt.Sprintf("%#x", ops.K)
	}

	return operator, ""
}

func reg(r uint8) string {
	return fmt.Sprintf("r%d", r)
}

func pointer(p instructions.Pointer, a instructions.Access, q uint8) string {
	switch a {
	case instructions.PostIncrement:
		return p.String() + "+"
	case instructions.PreDecrement:
		return "-" + p.String()
	case instructions.Displacement:
		if q > 0 {
			return fmt.Sprintf("%s+%d", p, q)
		}
	}
	return p.String()
}

type renderer struct {
	sym *symbols.Symbols
}

// program address. used for JMP and CALL
func (r renderer) program(address uint16) string {
	if r.sym != nil {
		if s, ok := r.sym.GetLabel(address); ok {
			return s
		}
	}
	return fmt.Sprintf("%#04x", address)
}

// target of a relative branch. the offset is from the address of the
// following instruction
func (r renderer) relative(address uint16, offset int) string {
	target := uint16(int(address) + 1 + offset)
	if r.sym != nil {
		if s, ok := r.sym.GetLabel(target); ok {
			return s
		}
	}
	return fmt.Sprintf("%#04x", target)
}

// data space address. used for LDS and STS
func (r renderer) data(address uint16) string {
	if r.sym != nil && addresses.IsIO(address) {
		if s, ok := r.sym.GetIO(address); ok {
			return s
		}
	}
	return fmt.Sprintf("%#04x", address)
}

// I/O address. used by IN, OUT and the I/O bit instructions. the symbols
// table is indexed by data space address
func (r renderer) io(a uint8) string {
	if r.sym != nil {
		if s, ok := r.sym.GetIO(uint16(a) + addresses.IOOffset); ok {
			return s
		}
	}
	return fmt.Sprintf("%#02x", a)
}

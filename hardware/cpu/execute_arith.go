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

func executeADD(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	r := mc.mem.Data[mc.ops.Rr]
	res := d + r
	mc.mem.Data[mc.ops.Rd] = res

	sr := mc.SREG()
	sr.add(d, r, res)
	mc.SetSREG(sr)
}

func executeADC(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	r := mc.mem.Data[mc.ops.Rr]
	sr := mc.SREG()
	res := d + r
	if sr.Is(C) {
		res++
	}
	mc.mem.Data[mc.ops.Rd] = res

	sr.add(d, r, res)
	mc.SetSREG(sr)
}

func executeADIW(mc *CPU) {
	d := mc.pair(mc.ops.Rd)
	res := d + uint16(mc.ops.K)
	mc.setPair(mc.ops.Rd, res)

	sr := mc.SREG()
	sr.Set(V, d&0x8000 == 0 && res&0x8000 == 0x8000)
	sr.Set(C, d&0x8000 == 0x8000 && res&0x8000 == 0)
	sr.Set(N, res&0x8000 == 0x8000)
	sr.Set(Z, res == 0)
	sr.sign()
	mc.SetSREG(sr)
}

func executeSBIW(mc *CPU) {
	d := mc.pair(mc.ops.Rd)
	res := d - uint16(mc.ops.K)
	mc.setPair(mc.ops.Rd, res)

	sr := mc.SREG()
	sr.Set(V, d&0x8000 == 0x8000 && res&0x8000 == 0)
	sr.Set(C, d&0x8000 == 0 && res&0x8000 == 0x8000)
	sr.Set(N, res&0x8000 == 0x8000)
	sr.Set(Z, res == 0)
	sr.sign()
	mc.SetSREG(sr)
}

// subtract is the basis of SUB, SUBI, SBC, SBCI, CP, CPC and CPI. the result
// is only stored if the store argument is true.
func (mc *CPU) subtract(r uint8, withCarry bool, store bool) {
	d := mc.mem.Data[mc.ops.Rd]
	sr := mc.SREG()
	res := d - r
	if withCarry && sr.Is(C) {
		res--
	}
	if store {
		mc.mem.Data[mc.ops.Rd] = res
	}

	sr.sub(d, r, res, withCarry)
	mc.SetSREG(sr)
}

func executeSUB(mc *CPU) {
	mc.subtract(mc.mem.Data[mc.ops.Rr], false, true)
}

func executeSUBI(mc *CPU) {
	mc.subtract(mc.ops.K, false, true)
}

func executeSBC(mc *CPU) {
	mc.subtract(mc.mem.Data[mc.ops.Rr], true, true)
}

func executeSBCI(mc *CPU) {
	mc.subtract(mc.ops.K, true, true)
}

func executeCP(mc *CPU) {
	mc.subtract(mc.mem.Data[mc.ops.Rr], false, false)
}

func executeCPC(mc *CPU) {
	mc.subtract(mc.mem.Data[mc.ops.Rr], true, false)
}

func executeCPI(mc *CPU) {
	mc.subtract(mc.ops.K, false, false)
}

func executeINC(mc *CPU) {
	res := mc.mem.Data[mc.ops.Rd] + 1
	mc.mem.Data[mc.ops.Rd] = res

	sr := mc.SREG()
	sr.Set(V, res == 0x80)
	sr.nzs(res)
	mc.SetSREG(sr)
}

func executeDEC(mc *CPU) {
	res := mc.mem.Data[mc.ops.Rd] - 1
	mc.mem.Data[mc.ops.Rd] = res

	sr := mc.SREG()
	sr.Set(V, res == 0x7f)
	sr.nzs(res)
	mc.SetSREG(sr)
}

func executeNEG(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	res := -d
	mc.mem.Data[mc.ops.Rd] = res

	sr := mc.SREG()
	sr.Set(H, (res|d)&0x08 == 0x08)
	sr.Set(V, res == 0x80)
	sr.Set(C, res != 0)
	sr.nzs(res)
	mc.SetSREG(sr)
}

func executeCOM(mc *CPU) {
	res := ^mc.mem.Data[mc.ops.Rd]
	mc.mem.Data[mc.ops.Rd] = res

	sr := mc.SREG()
	sr.Set(C, true)
	sr.logic(res)
	mc.SetSREG(sr)
}

// product stores the result of a multiplication in R1:R0. the fractional
// forms shift the result left by one bit. the carry flag is always bit 15 of
// the unshifted product.
func (mc *CPU) product(p uint16, fractional bool) {
	res := p
	if fractional {
		res <<= 1
	}
	mc.setPair(0, res)

	sr := mc.SREG()
	sr.Set(C, p&0x8000 == 0x8000)
	sr.Set(Z, res == 0)
	mc.SetSREG(sr)
}

func executeMUL(mc *CPU) {
	d := uint16(mc.mem.Data[mc.ops.Rd])
	r := uint16(mc.mem.Data[mc.ops.Rr])
	mc.product(d*r, false)
}

func executeMULS(mc *CPU) {
	d := int16(int8(mc.mem.Data[mc.ops.Rd]))
	r := int16(int8(mc.mem.Data[mc.ops.Rr]))
	mc.product(uint16(d*r), false)
}

func executeMULSU(mc *CPU) {
	d := int16(int8(mc.mem.Data[mc.ops.Rd]))
	r := int16(mc.mem.Data[mc.ops.Rr])
	mc.product(uint16(d*r), false)
}

func executeFMUL(mc *CPU) {
	d := uint16(mc.mem.Data[mc.ops.Rd])
	r := uint16(mc.mem.Data[mc.ops.Rr])
	mc.product(d*r, true)
}

func executeFMULS(mc *CPU) {
	d := int16(int8(mc.mem.Data[mc.ops.Rd]))
	r := int16(int8(mc.mem.Data[mc.ops.Rr]))
	mc.product(uint16(d*r), true)
}

func executeFMULSU(mc *CPU) {
	d := int16(int8(mc.mem.Data[mc.ops.Rd]))
	r := int16(mc.mem.Data[mc.ops.Rr])
	mc.product(uint16(d*r), true)
}

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

func executeAND(mc *CPU) {
	mc.logical(mc.mem.Data[mc.ops.Rd] & mc.mem.Data[mc.ops.Rr])
}

func executeANDI(mc *CPU) {
	mc.logical(mc.mem.Data[mc.ops.Rd] & mc.ops.K)
}

func executeOR(mc *CPU) {
	mc.logical(mc.mem.Data[mc.ops.Rd] | mc.mem.Data[mc.ops.Rr])
}

func executeORI(mc *CPU) {
	mc.logical(mc.mem.Data[mc.ops.Rd] | mc.ops.K)
}

func executeEOR(mc *CPU) {
	mc.logical(mc.mem.Data[mc.ops.Rd] ^ mc.mem.Data[mc.ops.Rr])
}

func (mc *CPU) logical(res uint8) {
	mc.mem.Data[mc.ops.Rd] = res
	sr := mc.SREG()
	sr.logic(res)
	mc.SetSREG(sr)
}

func executeLSR(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	mc.shifted(d>>1, d&0x01 == 0x01)
}

func executeROR(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	res := d >> 1
	if mc.SREG().Is(C) {
		res |= 0x80
	}
	mc.shifted(res, d&0x01 == 0x01)
}

func executeASR(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	mc.shifted(d&0x80|d>>1, d&0x01 == 0x01)
}

func (mc *CPU) shifted(res uint8, carry bool) {
	mc.mem.Data[mc.ops.Rd] = res
	sr := mc.SREG()
	sr.shift(res, carry)
	mc.SetSREG(sr)
}

func executeSWAP(mc *CPU) {
	d := mc.mem.Data[mc.ops.Rd]
	mc.mem.Data[mc.ops.Rd] = d<<4 | d>>4
}

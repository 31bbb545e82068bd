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

import "github.com/jetsetilly/gopheravr/hardware/memory/addresses"

func executeSBI(mc *CPU) {
	address := uint16(mc.ops.A) + addresses.IOOffset
	mc.mem.Write(address, mc.mem.Read(address)|1<<mc.ops.Bit)
}

func executeCBI(mc *CPU) {
	address := uint16(mc.ops.A) + addresses.IOOffset
	mc.mem.Write(address, mc.mem.Read(address)&^(1<<mc.ops.Bit))
}

func executeBST(mc *CPU) {
	sr := mc.SREG()
	sr.Set(T, mc.mem.Data[mc.ops.Rd]&(1<<mc.ops.Bit) != 0)
	mc.SetSREG(sr)
}

func executeBLD(mc *CPU) {
	if mc.SREG().Is(T) {
		mc.mem.Data[mc.ops.Rd] |= 1 << mc.ops.Bit
	} else {
		mc.mem.Data[mc.ops.Rd] &^= 1 << mc.ops.Bit
	}
}

func executeBSET(mc *CPU) {
	sr := mc.SREG()
	sr.Set(Status(1)<<mc.ops.Flag, true)
	mc.SetSREG(sr)
}

func executeBCLR(mc *CPU) {
	sr := mc.SREG()
	sr.Set(Status(1)<<mc.ops.Flag, false)
	mc.SetSREG(sr)
}

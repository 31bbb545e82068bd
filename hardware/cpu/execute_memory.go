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

import (
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
)

func executeMOV(mc *CPU) {
	mc.mem.Data[mc.ops.Rd] = mc.mem.Data[mc.ops.Rr]
}

func executeMOVW(mc *CPU) {
	mc.setPair(mc.ops.Rd, mc.pair(mc.ops.Rr))
}

func executeLDI(mc *CPU) {
	mc.mem.Data[mc.ops.Rd] = mc.ops.K
}

func executeLDS(mc *CPU) {
	mc.mem.Data[mc.ops.Rd] = mc.mem.Read(uint16(mc.ops.Address))
}

func executeSTS(mc *CPU) {
	mc.mem.Write(uint16(mc.ops.Address), mc.mem.Data[mc.ops.Rd])
}

// indirect returns the data space address for an indirect memory access,
// updating the pointer register as required by the access type.
func (mc *CPU) indirect(p instructions.Pointer, access instructions.Access) uint16 {
	r := pointerRegister(p)
	v := mc.pair(r)

	switch access {
	case instructions.PostIncrement:
		mc.setPair(r, v+1)
	case instructions.PreDecrement:
		v--
		mc.setPair(r, v)
	case instructions.Displacement:
		v += uint16(mc.ops.Q)
	}

	return v
}

// load returns the execute function for LD and LDD with the pointer and
// access type.
func load(p instructions.Pointer, access instructions.Access) executor {
	return func(mc *CPU) {
		address := mc.indirect(p, access)
		mc.mem.Data[mc.ops.Rd] = mc.mem.Read(address)
	}
}

// store returns the execute function for ST and STD with the pointer and
// access type.
func store(p instructions.Pointer, access instructions.Access) executor {
	return func(mc *CPU) {
		// read the register before the pointer is updated. storing a pointer
		// register through itself stores the original value
		v := mc.mem.Data[mc.ops.Rd]
		address := mc.indirect(p, access)
		mc.mem.Write(address, v)
	}
}

// the implied form of LPM and ELPM loads into r0. the zero value of the
// operands means that no special handling is required
func executeLPM(postIncrement bool) executor {
	return func(mc *CPU) {
		z := mc.pair(uint8(addresses.ZL))
		mc.mem.Data[mc.ops.Rd] = mc.mem.ReadProgramByte(uint32(z))
		if postIncrement {
			mc.setPair(uint8(addresses.ZL), z+1)
		}
	}
}

// ELPM extends the Z register with RAMPZ.
func executeELPM(postIncrement bool) executor {
	return func(mc *CPU) {
		address := uint32(mc.mem.Data[addresses.RAMPZ])<<16 | uint32(mc.pair(uint8(addresses.ZL)))
		mc.mem.Data[mc.ops.Rd] = mc.mem.ReadProgramByte(address)
		if postIncrement {
			address++
			mc.mem.Data[addresses.RAMPZ] = uint8(address >> 16)
			mc.setPair(uint8(addresses.ZL), uint16(address))
		}
	}
}

func executeIN(mc *CPU) {
	mc.mem.Data[mc.ops.Rd] = mc.mem.Read(uint16(mc.ops.A) + addresses.IOOffset)
}

func executeOUT(mc *CPU) {
	mc.mem.Write(uint16(mc.ops.A)+addresses.IOOffset, mc.mem.Data[mc.ops.Rd])
}

func executePUSH(mc *CPU) {
	mc.push(mc.mem.Data[mc.ops.Rd])
}

func executePOP(mc *CPU) {
	mc.mem.Data[mc.ops.Rd] = mc.pop()
}

// the read-modify-write instructions all operate on the address in Z and load
// the original value into the register.
func (mc *CPU) exchange(f func(d, z uint8) uint8) {
	address := mc.pair(uint8(addresses.ZL))
	z := mc.mem.Read(address)
	mc.mem.Write(address, f(mc.mem.Data[mc.ops.Rd], z))
	mc.mem.Data[mc.ops.Rd] = z
}

func executeXCH(mc *CPU) {
	mc.exchange(func(d, _ uint8) uint8 { return d })
}

func executeLAS(mc *CPU) {
	mc.exchange(func(d, z uint8) uint8 { return d | z })
}

func executeLAC(mc *CPU) {
	mc.exchange(func(d, z uint8) uint8 { return ^d & z })
}

func executeLAT(mc *CPU) {
	mc.exchange(func(d, z uint8) uint8 { return d ^ z })
}

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

func executeRJMP(mc *CPU) {
	mc.nextPC += mc.ops.Offset
}

func executeRCALL(mc *CPU) {
	mc.pushPC(mc.wrap(mc.nextPC))
	mc.nextPC += mc.ops.Offset
}

func executeJMP(mc *CPU) {
	mc.nextPC = int(mc.ops.Address)
}

func executeCALL(mc *CPU) {
	mc.pushPC(mc.wrap(mc.nextPC))
	mc.nextPC = int(mc.ops.Address)
}

func executeIJMP(mc *CPU) {
	mc.nextPC = int(mc.pair(uint8(addresses.ZL)))
}

func executeICALL(mc *CPU) {
	mc.pushPC(mc.wrap(mc.nextPC))
	mc.nextPC = int(mc.pair(uint8(addresses.ZL)))
}

func executeRET(mc *CPU) {
	mc.nextPC = int(mc.popPC())
}

func executeRETI(mc *CPU) {
	mc.nextPC = int(mc.popPC())

	sr := mc.SREG()
	sr.Set(I, true)
	mc.SetSREG(sr)

	mc.interruptExit()
}

func executeBRBS(mc *CPU) {
	if mc.SREG().Is(Status(1) << mc.ops.Flag) {
		mc.nextPC += mc.ops.Offset
		mc.extraCycles++
	}
}

func executeBRBC(mc *CPU) {
	if !mc.SREG().Is(Status(1) << mc.ops.Flag) {
		mc.nextPC += mc.ops.Offset
		mc.extraCycles++
	}
}

// skip the next instruction. the program counter and the cycle count are
// both increased by the size of the instruction being skipped.
func (mc *CPU) skip() {
	w := int(tables.size[mc.mem.Program[mc.wrap(mc.nextPC)]])
	mc.nextPC += w
	mc.extraCycles += w
}

func executeCPSE(mc *CPU) {
	if mc.mem.Data[mc.ops.Rd] == mc.mem.Data[mc.ops.Rr] {
		mc.skip()
	}
}

func executeSBRC(mc *CPU) {
	if mc.mem.Data[mc.ops.Rd]&(1<<mc.ops.Bit) == 0 {
		mc.skip()
	}
}

func executeSBRS(mc *CPU) {
	if mc.mem.Data[mc.ops.Rd]&(1<<mc.ops.Bit) != 0 {
		mc.skip()
	}
}

func executeSBIC(mc *CPU) {
	if mc.mem.Read(uint16(mc.ops.A)+addresses.IOOffset)&(1<<mc.ops.Bit) == 0 {
		mc.skip()
	}
}

func executeSBIS(mc *CPU) {
	if mc.mem.Read(uint16(mc.ops.A)+addresses.IOOffset)&(1<<mc.ops.Bit) != 0 {
		mc.skip()
	}
}

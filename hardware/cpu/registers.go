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

// the status register and stack pointer are in the data space and are
// accessed directly. they are part of the register file and never reach the
// read and write chains

// SREG returns the status register.
func (mc *CPU) SREG() Status {
	return Status(mc.mem.Data[addresses.SREG])
}

// SetSREG sets the status register.
func (mc *CPU) SetSREG(sr Status) {
	mc.mem.Data[addresses.SREG] = uint8(sr)
}

// SP returns the stack pointer.
func (mc *CPU) SP() uint16 {
	return mc.mem.Read16(addresses.SPL)
}

// SetSP sets the stack pointer.
func (mc *CPU) SetSP(sp uint16) {
	mc.mem.Write16(addresses.SPL, sp)
}

// Register returns the value of a core register.
func (mc *CPU) Register(r uint8) uint8 {
	return mc.mem.Data[r&0x1f]
}

// SetRegister sets the value of a core register.
func (mc *CPU) SetRegister(r uint8, v uint8) {
	mc.mem.Data[r&0x1f] = v
}

// pair returns the 16bit value in the register pair starting at r.
func (mc *CPU) pair(r uint8) uint16 {
	return uint16(mc.mem.Data[r]) | uint16(mc.mem.Data[r+1])<<8
}

func (mc *CPU) setPair(r uint8, v uint16) {
	mc.mem.Data[r] = uint8(v)
	mc.mem.Data[r+1] = uint8(v >> 8)
}

func pointerRegister(p instructions.Pointer) uint8 {
	switch p {
	case instructions.X:
		return uint8(addresses.XL)
	case instructions.Y:
		return uint8(addresses.YL)
	}
	return uint8(addresses.ZL)
}

// Pointer returns the value of the X, Y or Z pointer register.
func (mc *CPU) Pointer(p instructions.Pointer) uint16 {
	return mc.pair(pointerRegister(p))
}

// push a byte to the stack. post-decrement
func (mc *CPU) push(v uint8) {
	sp := mc.SP()
	mc.mem.Write(sp, v)
	mc.SetSP(sp - 1)
}

// pop a byte from the stack. pre-increment
func (mc *CPU) pop() uint8 {
	sp := mc.SP() + 1
	mc.SetSP(sp)
	return mc.mem.Read(sp)
}

// pushPC pushes a return address to the stack. the low byte is pushed first
// so that the high byte is at the lower address.
func (mc *CPU) pushPC(pc uint16) {
	mc.push(uint8(pc))
	mc.push(uint8(pc >> 8))
}

// popPC is the counterpart to pushPC().
func (mc *CPU) popPC() uint16 {
	hi := mc.pop()
	lo := mc.pop()
	return uint16(hi)<<8 | uint16(lo)
}

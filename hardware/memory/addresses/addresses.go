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

// Package addresses names the fixed locations in the AVR data space. The
// register file, the I/O area and the extended I/O registers used by the CPU
// itself are all mapped into a single address space.
//
// Addresses in this package are data space addresses. The I/O address used by
// the IN and OUT instructions is the data space address minus IOOffset.
package addresses

// Boundaries of the data space areas.
const (
	Registers uint16 = 0x00
	IOOrigin  uint16 = 0x20
	IOMemtop  uint16 = 0xff
	RAMOrigin uint16 = 0x100
)

// IOOffset is the difference between an I/O address and its data space
// address.
const IOOffset = 0x20

// Registers in the I/O area that the CPU uses directly.
const (
	RAMPZ uint16 = 0x5b
	EIND  uint16 = 0x5c
	SPL   uint16 = 0x5d
	SPH   uint16 = 0x5e
	SREG  uint16 = 0x5f
)

// Pointer registers. Each is a pair of core registers, low byte first.
const (
	XL uint16 = 26
	XH uint16 = 27
	YL uint16 = 28
	YH uint16 = 29
	ZL uint16 = 30
	ZH uint16 = 31
)

// CPUNames maps a data space address to a symbolic name.
var CPUNames = map[uint16]string{
	RAMPZ: "RAMPZ",
	EIND:  "EIND",
	SPL:   "SPL",
	SPH:   "SPH",
	SREG:  "SREG",
	XL:    "XL",
	XH:    "XH",
	YL:    "YL",
	YH:    "YH",
	ZL:    "ZL",
	ZH:    "ZH",
}

// IsIO returns true if the address is in the I/O area.
func IsIO(address uint16) bool {
	return address >= IOOrigin && address <= IOMemtop
}

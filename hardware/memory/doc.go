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

// Package memory implements the data space, program memory and EEPROM of an
// emulated AVR device.
//
// The data space is a single byte array. The first 32 bytes are the core
// registers, the next 224 bytes are the I/O area and everything after that is
// general purpose RAM. The CPU reaches all of it through the Read() and
// Write() functions.
//
// Peripherals are attached with a Binding. A binding covers a range of
// addresses in the I/O area and can supply read and write handlers for those
// addresses. Bindings accumulate so that several peripherals can watch the
// same address. If no binding covers an I/O address then that address
// behaves as RAM.
//
// Write callouts are a separate mechanism intended for debuggers and for
// synthetic command registers. A callout sees every write to its address
// before the write happens and can prevent the write from taking effect.
//
// Accessing an address outside of the data space is a fault. The access has
// no effect and the fault is held until it is collected with Fault(). It is
// up to the CPU to decide what to do about it.
package memory

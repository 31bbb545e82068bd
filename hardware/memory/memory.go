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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
)

// Sentinal error patterns.
const (
	// IllegalAccess is recorded when the CPU accesses an address outside of
	// the data space or program memory.
	IllegalAccess = "memory: illegal %s of address %#04x"

	// AddressError is returned by Peek() and Poke() for addresses outside of
	// the data space.
	AddressError = "memory: address %#04x out of range"

	// BindingError is returned by AddBinding() when a binding is malformed.
	BindingError = "memory: binding %s: %s"
)

// Memory is the complete memory of an AVR device.
type Memory struct {
	// the data space: registers, I/O and RAM
	Data []uint8

	// program memory is addressed by word
	Program []uint16

	EEPROM []uint8

	bindings []Binding

	// read and write chains for each address in the I/O area. indexed by data
	// space address, so the first 32 entries are never used
	reads  [addresses.IOMemtop + 1][]func(address uint16) uint8
	writes [addresses.IOMemtop + 1][]func(address uint16, data uint8)

	callouts map[uint16][]WriteCallout

	// the first fault since the last call to Fault()
	fault error
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(prefs *preferences.Preferences) *Memory {
	return &Memory{
		Data:     make([]uint8, prefs.DataSize()),
		Program:  make([]uint16, prefs.ProgramWords()),
		EEPROM:   make([]uint8, prefs.EEPROMSize.Get().(int)),
		callouts: make(map[uint16][]WriteCallout),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("data=%d program=%d eeprom=%d bindings=%d", len(mem.Data),
		len(mem.Program)*2, len(mem.EEPROM), len(mem.bindings))
}

// Reset clears the data space. Program memory, EEPROM and all bindings and
// callouts are untouched.
func (mem *Memory) Reset() {
	clear(mem.Data)
	mem.fault = nil
}

func (mem *Memory) illegal(event string, address uint32) {
	if mem.fault == nil {
		mem.fault = curated.Errorf(IllegalAccess, event, address)
	}
}

// Fault returns the first illegal access since the previous call to Fault().
// Returns nil if there has been no illegal access.
func (mem *Memory) Fault() error {
	err := mem.fault
	mem.fault = nil
	return err
}

// Read returns the value at the data space address. Reading from an address
// with a read chain calls every handler in the chain. The value returned by
// the last handler is stored in the data space and returned.
func (mem *Memory) Read(address uint16) uint8 {
	if int(address) >= len(mem.Data) {
		mem.illegal("read", uint32(address))
		return 0
	}

	if address >= addresses.IOOrigin && address <= addresses.IOMemtop {
		if chain := mem.reads[address]; len(chain) > 0 {
			var v uint8
			for _, r := range chain {
				v = r(address)
			}
			mem.Data[address] = v
			return v
		}
	}

	return mem.Data[address]
}

// Write stores the value at the data space address. The write callouts for
// the address are consulted first and if any of them refuses the write
// nothing more happens. Addresses with a write chain pass the value to every
// handler in the chain instead of storing it.
func (mem *Memory) Write(address uint16, data uint8) {
	if int(address) >= len(mem.Data) {
		mem.illegal("write", uint32(address))
		return
	}

	if len(mem.callouts) > 0 {
		if callouts, ok := mem.callouts[address]; ok {
			allow := true
			for _, c := range callouts {
				allow = c(address, data) && allow
			}
			if !allow {
				return
			}
		}
	}

	if address >= addresses.IOOrigin && address <= addresses.IOMemtop {
		if chain := mem.writes[address]; len(chain) > 0 {
			for _, w := range chain {
				w(address, data)
			}
			return
		}
	}

	mem.Data[address] = data
}

// ReadProgram returns the word at the program memory address.
func (mem *Memory) ReadProgram(address uint32) uint16 {
	if address >= uint32(len(mem.Program)) {
		mem.illegal("program read", address)
		return 0
	}
	return mem.Program[address]
}

// ReadProgramByte returns the byte at the program memory byte address. Even
// addresses select the low byte of a word and odd addresses the high byte.
func (mem *Memory) ReadProgramByte(address uint32) uint8 {
	w := mem.ReadProgram(address >> 1)
	if address&0x01 == 0x01 {
		return uint8(w >> 8)
	}
	return uint8(w)
}

// Peek returns the value at the data space address without triggering any
// read handlers. For use by debuggers and other non-CPU actors.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if int(address) >= len(mem.Data) {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.Data[address], nil
}

// Poke sets the value at the data space address without triggering any write
// handlers or callouts. For use by debuggers and other non-CPU actors.
func (mem *Memory) Poke(address uint16, value uint8) error {
	if int(address) >= len(mem.Data) {
		return curated.Errorf(AddressError, address)
	}
	mem.Data[address] = value
	return nil
}

// Read16 and Write16 access a 16bit little-endian value in the data space,
// such as the stack pointer. They do not go through the read and write
// chains.
func (mem *Memory) Read16(address uint16) uint16 {
	return uint16(mem.Data[address]) | uint16(mem.Data[address+1])<<8
}

// Write16 is the counterpart to Read16().
func (mem *Memory) Write16(address uint16, value uint16) {
	mem.Data[address] = uint8(value)
	mem.Data[address+1] = uint8(value >> 8)
}

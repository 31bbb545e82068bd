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

package eeprom

import (
	"bytes"
	"os"

	"github.com/jetsetilly/gopheravr/hardware/clocks"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/logger"
)

// Data space addresses of the EEPROM registers.
const (
	EECR  = 0x3f
	EEDR  = 0x40
	EEARL = 0x41
	EEARH = 0x42
)

// Bits in the EECR register.
const (
	EERE  = 0x01
	EEPE  = 0x02
	EEMPE = 0x04
	EERIE = 0x08
)

// VectorReady is the interrupt vector raised when the EEPROM is ready and the
// EERIE bit is set.
const VectorReady = 22

// WriteCycles is the number of cycles a write to EEPROM takes. A write takes
// 3.4ms regardless of the clock speed.
const WriteCycles = int(0.0034 * clocks.Default * 1000000)

// the number of cycles the EEMPE bit remains set
const masterEnableCycles = 4

// EEPROM implements the peripherals.Peripheral interface.
type EEPROM struct {
	perm logger.Permission

	// file to load and save EEPROM data. can be empty
	filename string

	irq cpu.Interrupter

	// the EEPROM area in memory. amend only through write()
	data []uint8

	// the data as it is on disk
	diskData []uint8

	address uint16
	eedr    uint8
	eecr    uint8

	masterEnable int
	busy         int
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type.
// The filename argument can be empty, in which case the contents of EEPROM
// are not loaded or saved.
func NewEEPROM(perm logger.Permission, filename string) *EEPROM {
	return &EEPROM{
		perm:     perm,
		filename: filename,
	}
}

// Label implements the peripherals.Peripheral interface.
func (ee *EEPROM) Label() string {
	return "eeprom"
}

// Symbols implements the peripherals.Symbolic interface.
func (ee *EEPROM) Symbols() map[uint16]string {
	return map[uint16]string{
		EECR:  "EECR",
		EEDR:  "EEDR",
		EEARL: "EEARL",
		EEARH: "EEARH",
	}
}

// Attach implements the peripherals.Peripheral interface. If a filename was
// given to NewEEPROM() then the file is loaded into the EEPROM area.
func (ee *EEPROM) Attach(mem *memory.Memory, mc *cpu.CPU) error {
	ee.irq = mc
	ee.data = mem.EEPROM
	ee.diskData = make([]uint8, len(ee.data))
	copy(ee.diskData, ee.data)

	ee.Read()

	return mem.AddBinding(memory.Binding{
		Label: ee.Label(),
		Start: EECR,
		End:   EEARH,
		Clock: ee.clock,
		Read:  ee.readRegister,
		Write: ee.writeRegister,
	})
}

// Reset implements the peripherals.Resetter interface. Any write in progress
// is completed immediately.
func (ee *EEPROM) Reset() {
	ee.address = 0
	ee.eedr = 0
	ee.eecr = 0
	ee.masterEnable = 0
	ee.busy = 0
}

// End implements the peripherals.Ender interface. EEPROM data is written to
// disk if it has changed.
func (ee *EEPROM) End() error {
	if ee.filename == "" || bytes.Equal(ee.data, ee.diskData) {
		return nil
	}
	return ee.Write()
}

// Read EEPROM data from disk. Errors are logged but otherwise ignored. A
// missing file is not an error.
func (ee *EEPROM) Read() {
	if ee.filename == "" {
		return
	}

	d, err := os.ReadFile(ee.filename)
	if err != nil {
		logger.Logf(ee.perm, "eeprom", "could not load eeprom file: %v", err)
		return
	}

	if len(d) != len(ee.data) {
		logger.Logf(ee.perm, "eeprom", "eeprom file is of incorrect length. %d should be %d", len(d), len(ee.data))
	}

	copy(ee.data, d)
	copy(ee.diskData, ee.data)

	logger.Logf(ee.perm, "eeprom", "eeprom file loaded from %s", ee.filename)
}

// Write EEPROM data to disk.
func (ee *EEPROM) Write() error {
	if err := os.WriteFile(ee.filename, ee.data, 0o644); err != nil {
		logger.Logf(ee.perm, "eeprom", "could not write eeprom file: %v", err)
		return err
	}

	logger.Logf(ee.perm, "eeprom", "eeprom file saved to %s", ee.filename)

	copy(ee.diskData, ee.data)

	return nil
}

func (ee *EEPROM) clock() {
	if ee.masterEnable > 0 {
		ee.masterEnable--
	}

	if ee.busy > 0 {
		ee.busy--
		if ee.busy > 0 {
			return
		}
	}

	if ee.eecr&EERIE == EERIE {
		ee.irq.RaiseInterrupt(VectorReady)
	}
}

// the address is limited to the size of EEPROM.
func (ee *EEPROM) effectiveAddress() int {
	if len(ee.data) == 0 {
		return -1
	}
	return int(ee.address) % len(ee.data)
}

func (ee *EEPROM) readRegister(address uint16) uint8 {
	switch address {
	case EECR:
		v := ee.eecr & EERIE
		if ee.masterEnable > 0 {
			v |= EEMPE
		}
		if ee.busy > 0 {
			v |= EEPE
		}
		return v
	case EEDR:
		return ee.eedr
	case EEARL:
		return uint8(ee.address)
	case EEARH:
		return uint8(ee.address >> 8)
	}
	return 0
}

func (ee *EEPROM) writeRegister(address uint16, data uint8) {
	switch address {
	case EECR:
		ee.eecr = data & EERIE
		if ee.eecr&EERIE == 0 {
			ee.irq.ClearInterrupt(VectorReady)
		}

		// registers can't be used while a write is in progress
		if ee.busy > 0 {
			return
		}

		if data&EEPE == EEPE {
			if ee.masterEnable > 0 {
				ee.masterEnable = 0
				if a := ee.effectiveAddress(); a >= 0 {
					ee.data[a] = ee.eedr
				}
				ee.busy = WriteCycles
				ee.irq.ClearInterrupt(VectorReady)
			}
		} else if data&EEMPE == EEMPE {
			ee.masterEnable = masterEnableCycles
		}

		if data&EERE == EERE {
			if a := ee.effectiveAddress(); a >= 0 {
				ee.eedr = ee.data[a]
			}
		}
	case EEDR:
		ee.eedr = data
	case EEARL:
		ee.address = ee.address&0xff00 | uint16(data)
	case EEARH:
		ee.address = ee.address&0x00ff | uint16(data)<<8
	}
}

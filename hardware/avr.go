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

package hardware

import (
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/peripherals"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/logger"
	"github.com/jetsetilly/gopheravr/programloader"
)

// Sentinal error patterns.
const (
	AVRError        = "avr: %v"
	PeripheralError = "avr: peripheral %s: %v"
)

// AVR struct is the main container for the emulated components of the AVR.
type AVR struct {
	Prefs *preferences.Preferences
	Mem   *memory.Memory
	CPU   *cpu.CPU

	// the program most recently attached with AttachProgram()
	Program programloader.Loader

	peripherals []peripherals.Peripheral
}

// NewAVR creates a new AVR and everything associated with the hardware. If
// the prefs argument is nil then preferences are created with the default
// values (and any values on the command line preferences stack).
func NewAVR(prefs *preferences.Preferences) (*AVR, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(AVRError, err)
		}
	} else if err = prefs.Validate(); err != nil {
		return nil, curated.Errorf(AVRError, err)
	}

	avr := &AVR{Prefs: prefs}
	avr.Mem = memory.NewMemory(prefs)
	avr.CPU = cpu.NewCPU(prefs, avr.Mem)

	logger.Logf(prefs, "avr", "created with %s", avr.Mem)

	return avr, nil
}

// AttachProgram loads the program into program memory and resets the AVR.
func (avr *AVR) AttachProgram(pl programloader.Loader) error {
	if err := pl.LoadProgram(avr.Mem.Program); err != nil {
		return curated.Errorf(AVRError, err)
	}
	avr.Program = pl
	avr.Reset()

	logger.Logf(avr.Prefs, "avr", "attached program %s (%s)", pl.ShortName(), pl.Format)

	return nil
}

// AttachEEPROM loads an image into EEPROM. The AVR is not reset.
func (avr *AVR) AttachEEPROM(pl programloader.Loader) error {
	if err := pl.LoadEEPROM(avr.Mem.EEPROM); err != nil {
		return curated.Errorf(AVRError, err)
	}

	logger.Logf(avr.Prefs, "avr", "attached eeprom %s (%s)", pl.ShortName(), pl.Format)

	return nil
}

// AddPeripheral attaches the peripheral to the AVR.
func (avr *AVR) AddPeripheral(p peripherals.Peripheral) error {
	if err := p.Attach(avr.Mem, avr.CPU); err != nil {
		return curated.Errorf(PeripheralError, p.Label(), err)
	}
	avr.peripherals = append(avr.peripherals, p)

	logger.Logf(avr.Prefs, "avr", "attached peripheral %s", p.Label())

	return nil
}

// Peripherals returns the labels of the attached peripherals in the order
// they were attached.
func (avr *AVR) Peripherals() []string {
	l := make([]string, 0, len(avr.peripherals))
	for _, p := range avr.peripherals {
		l = append(l, p.Label())
	}
	return l
}

// Symbols returns the register names of all attached peripherals that
// implement the Symbolic interface.
func (avr *AVR) Symbols() map[uint16]string {
	sym := make(map[uint16]string)
	for _, p := range avr.peripherals {
		if s, ok := p.(peripherals.Symbolic); ok {
			for k, v := range s.Symbols() {
				sym[k] = v
			}
		}
	}
	return sym
}

// Reset the AVR. The CPU and data space are reset along with any peripheral
// that implements the Resetter interface. Program memory and EEPROM are not
// changed.
func (avr *AVR) Reset() {
	avr.CPU.Reset()
	for _, p := range avr.peripherals {
		if r, ok := p.(peripherals.Resetter); ok {
			r.Reset()
		}
	}
}

// End the emulation. Peripherals that implement the Ender interface are ended
// in the reverse order to which they were attached. All peripherals are ended
// even if an earlier peripheral returns an error. The first error is
// returned.
func (avr *AVR) End() error {
	var err error
	for i := len(avr.peripherals) - 1; i >= 0; i-- {
		if e, ok := avr.peripherals[i].(peripherals.Ender); ok {
			if perr := e.End(); perr != nil && err == nil {
				err = curated.Errorf(PeripheralError, avr.peripherals[i].Label(), perr)
			}
		}
	}
	return err
}

// Step the emulation by a single instruction.
func (avr *AVR) Step() error {
	_, err := avr.CPU.Step()
	return err
}

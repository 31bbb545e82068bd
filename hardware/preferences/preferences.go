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

// Package preferences holds the construction time configuration of an
// emulated AVR device. These are the only configuration values the emulation
// core accepts; once the device has been created they are not consulted again
// except for the logging permission.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/prefs"
)

// InvalidSize is the curated error pattern returned by Validate() when one of
// the memory sizes is unusable.
const InvalidSize = "preferences: invalid %s size (%d)"

// Default values are those of an ATmega128 class device.
const (
	// DefaultRAMSize is the size of the data space including the register
	// file and I/O area.
	DefaultRAMSize = 0x1100

	// DefaultROMSize is the size of program memory in bytes.
	DefaultROMSize = 0x20000

	// DefaultEEPROMSize is the size of the EEPROM in bytes.
	DefaultEEPROMSize = 0x1000
)

// MaxROMSize is the largest program memory supported. Return addresses are
// pushed to the stack as two bytes so program memory is limited to 64K words.
const MaxROMSize = 0x20000

// IOSize is the number of addresses in the data space occupied by the
// register file and I/O space. Data space smaller than this is rounded up.
const IOSize = 0x100

// Preferences defines the configuration of an emulated device.
type Preferences struct {
	// size of data space, in bytes. includes the register file and the I/O
	// area
	RAMSize prefs.Int

	// size of program memory, in bytes. program memory is addressed by word
	// so the number of words is half this value
	ROMSize prefs.Int

	// size of EEPROM, in bytes
	EEPROMSize prefs.Int

	// initial value of the stack pointer. a value of zero means the top of
	// RAM
	StackBase prefs.Int

	// stop the emulation when the program counter returns to the reset
	// vector
	ExitOnReset prefs.Bool

	// whether the device is allowed to make log entries
	Logging prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The returned Preferences will have default values,
// overridden by any values in the prefs package's command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	for _, c := range []struct {
		key string
		p   prefs.Pref
	}{
		{key: "ram", p: &p.RAMSize},
		{key: "rom", p: &p.ROMSize},
		{key: "eeprom", p: &p.EEPROMSize},
		{key: "stack", p: &p.StackBase},
		{key: "exitonreset", p: &p.ExitOnReset},
		{key: "logging", p: &p.Logging},
	} {
		if err := prefs.ApplyCommandLine(c.key, c.p); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.RAMSize.Set(DefaultRAMSize)
	_ = p.ROMSize.Set(DefaultROMSize)
	_ = p.EEPROMSize.Set(DefaultEEPROMSize)
	_ = p.StackBase.Set(0)
	_ = p.ExitOnReset.Set(false)
	_ = p.Logging.Set(true)
}

// Validate checks that the preferences describe a device that can be
// created.
func (p *Preferences) Validate() error {
	if v := p.RAMSize.Get().(int); v <= 0 || v > 0x10000 {
		return curated.Errorf(InvalidSize, "ram", v)
	}
	if v := p.ROMSize.Get().(int); v < 2 || v > MaxROMSize || v&1 == 1 {
		return curated.Errorf(InvalidSize, "rom", v)
	}
	if v := p.EEPROMSize.Get().(int); v < 0 || v > 0x10000 {
		return curated.Errorf(InvalidSize, "eeprom", v)
	}
	if v := p.StackBase.Get().(int); v < 0 || v >= p.DataSize() {
		return curated.Errorf(InvalidSize, "stack", v)
	}
	return nil
}

// DataSize returns the size of the data space. This is the configured
// RAMSize rounded up to cover the register file and I/O area.
func (p *Preferences) DataSize() int {
	return max(p.RAMSize.Get().(int), IOSize)
}

// ProgramWords returns the number of 16bit words in program memory.
func (p *Preferences) ProgramWords() int {
	return p.ROMSize.Get().(int) / 2
}

// InitialSP returns the value the stack pointer should be set to on reset.
func (p *Preferences) InitialSP() uint16 {
	if v := p.StackBase.Get().(int); v != 0 {
		return uint16(v)
	}
	return uint16(p.DataSize() - 1)
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}

func (p *Preferences) String() string {
	return fmt.Sprintf("ram=%s rom=%s eeprom=%s stack=%#04x", p.RAMSize.String(),
		p.ROMSize.String(), p.EEPROMSize.String(), p.InitialSP())
}

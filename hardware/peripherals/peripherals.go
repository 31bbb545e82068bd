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

// Package peripherals defines the interface for devices that attach to the
// AVR. The devices themselves are implemented in the sub-packages.
//
// A peripheral attaches itself to the memory with one or more bindings (see
// memory.AddBinding()) and optionally with write callouts. Peripherals that
// raise interrupts register their vectors with the CPU during Attach().
package peripherals

import (
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
)

// Available is the list of peripherals that can be attached from the command
// line. These are the values returned by the Label() function of the
// Peripheral implementations in the sub-packages.
var Available = []string{"console", "eeprom", "dac", "adc", "script", "simctl"}

// Peripheral is implemented by all devices that attach to the AVR.
type Peripheral interface {
	Label() string

	// Attach is called once by hardware.AVR.AddPeripheral()
	Attach(mem *memory.Memory, mc *cpu.CPU) error
}

// Resetter is implemented by peripherals that have state that should be
// returned to its initial value when the AVR is reset.
type Resetter interface {
	Reset()
}

// Ender is implemented by peripherals that hold resources that must be
// released at the end of the emulation. For example, files that need to be
// written or a terminal that needs to be restored.
type Ender interface {
	End() error
}

// Symbolic is implemented by peripherals that can name their registers. The
// map is indexed by data space address.
type Symbolic interface {
	Symbols() map[uint16]string
}

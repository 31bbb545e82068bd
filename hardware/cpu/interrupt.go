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
	"math/bits"

	"github.com/jetsetilly/gopheravr/curated"
)

// NumVectors is the number of interrupt vectors supported by the interrupt
// controller. Vector zero is the reset vector.
const NumVectors = 32

// NoInterrupt is the value of the priority register when no interrupt is
// pending.
const NoInterrupt = 255

// InvalidVector is returned by RegisterVector() for a vector number outside
// of the supported range.
const InvalidVector = "cpu: invalid interrupt vector (%d)"

// Interrupter is the interface to the interrupt controller used by
// peripherals.
type Interrupter interface {
	RaiseInterrupt(vector int)
	ClearInterrupt(vector int)
}

// InterruptCallout is notified when an interrupt is serviced and when the
// interrupt routine returns with RETI.
type InterruptCallout interface {
	InterruptEntry(vector int)
	InterruptExit(vector int)
}

type interrupts struct {
	// lowest numbered pending vector or NoInterrupt
	priority uint8

	// one bit per vector
	pending uint32

	acknowledge [NumVectors]func()
	callouts    []InterruptCallout

	// vectors currently being serviced. the most recent is at the end
	inService []int
}

func (in *interrupts) reset() {
	in.priority = NoInterrupt
	in.pending = 0
	in.inService = in.inService[:0]
}

// recompute the priority register from the pending vectors. the scan is from
// vector zero upwards so that the lowest numbered vector has the highest
// priority, the same as when a vector is raised
func (in *interrupts) recompute() {
	if in.pending == 0 {
		in.priority = NoInterrupt
		return
	}
	in.priority = uint8(bits.TrailingZeros32(in.pending))
}

// RegisterVector sets the function to be called when the interrupt vector is
// serviced. A nil function removes any existing function.
func (mc *CPU) RegisterVector(vector int, acknowledge func()) error {
	if vector < 0 || vector >= NumVectors {
		return curated.Errorf(InvalidVector, vector)
	}
	mc.interrupts.acknowledge[vector] = acknowledge
	return nil
}

// AddInterruptCallout adds a callout to be notified of interrupt entry and
// exit. Callouts are notified in the order they were added.
func (mc *CPU) AddInterruptCallout(callout InterruptCallout) {
	mc.interrupts.callouts = append(mc.interrupts.callouts, callout)
}

// RaiseInterrupt implements the Interrupter interface. Vectors outside the
// supported range are ignored.
func (mc *CPU) RaiseInterrupt(vector int) {
	if vector < 0 || vector >= NumVectors {
		return
	}
	mc.interrupts.pending |= 1 << vector
	if uint8(vector) < mc.interrupts.priority {
		mc.interrupts.priority = uint8(vector)
	}
}

// ClearInterrupt implements the Interrupter interface. Vectors outside the
// supported range are ignored.
func (mc *CPU) ClearInterrupt(vector int) {
	if vector < 0 || vector >= NumVectors {
		return
	}
	mc.interrupts.pending &^= 1 << vector
	mc.interrupts.recompute()
}

// Priority returns the vector that will be serviced next, or NoInterrupt.
func (mc *CPU) Priority() int {
	return int(mc.interrupts.priority)
}

// Pending returns the pending vectors as a bit mask.
func (mc *CPU) Pending() uint32 {
	return mc.interrupts.pending
}

// Service the highest priority pending interrupt. Does nothing if the I flag
// is clear or if no interrupt is pending.
//
// The current program counter is pushed to the stack and the program counter
// is set to the vector address. The I flag is cleared so that the interrupt
// routine is not itself interrupted, unless the routine sets it again.
func (mc *CPU) Service() {
	if mc.interrupts.priority == NoInterrupt {
		return
	}

	sr := mc.SREG()
	if !sr.Is(I) {
		return
	}

	vector := int(mc.interrupts.priority)

	mc.pushPC(mc.PC)
	mc.PC = mc.wrap(vector * 2)

	sr.Set(I, false)
	mc.SetSREG(sr)

	if ack := mc.interrupts.acknowledge[vector]; ack != nil {
		ack()
	}
	for _, c := range mc.interrupts.callouts {
		c.InterruptEntry(vector)
	}
	mc.interrupts.inService = append(mc.interrupts.inService, vector)

	mc.ClearInterrupt(vector)
	mc.Asleep = false
}

// called by RETI.
func (mc *CPU) interruptExit() {
	vector := NoInterrupt
	if n := len(mc.interrupts.inService); n > 0 {
		vector = mc.interrupts.inService[n-1]
		mc.interrupts.inService = mc.interrupts.inService[:n-1]
	}
	for _, c := range mc.interrupts.callouts {
		c.InterruptExit(vector)
	}
}

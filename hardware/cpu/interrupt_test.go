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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/test"
)

type calloutRecorder struct {
	entries []int
	exits   []int
}

func (r *calloutRecorder) InterruptEntry(vector int) {
	r.entries = append(r.entries, vector)
}

func (r *calloutRecorder) InterruptExit(vector int) {
	r.exits = append(r.exits, vector)
}

func TestInterruptArbitration(t *testing.T) {
	mc, _ := newCPU(t)
	mc.SetSREG(cpu.I)

	mc.RaiseInterrupt(5)
	test.ExpectEquality(t, mc.Priority(), 5)
	mc.RaiseInterrupt(2)
	test.ExpectEquality(t, mc.Priority(), 2)

	// vector 2 is serviced after the NOP at address zero
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 4)
	test.ExpectFailure(t, mc.SREG().Is(cpu.I))
	test.ExpectEquality(t, mc.Priority(), 5)
	test.ExpectEquality(t, mc.Pending(), 1<<5)

	// vector 5 is not serviced while I is clear
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 5)

	mc.SetSREG(cpu.I)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 10)
	test.ExpectEquality(t, mc.Priority(), cpu.NoInterrupt)
	test.ExpectEquality(t, mc.Pending(), 0)
}

func TestInterruptPriorityAfterClear(t *testing.T) {
	mc, _ := newCPU(t)

	mc.RaiseInterrupt(9)
	mc.RaiseInterrupt(2)
	mc.RaiseInterrupt(5)
	test.ExpectEquality(t, mc.Priority(), 2)

	// the priority is recomputed by scanning up from vector zero. a scan down
	// from vector 31 would select vector 9 here, which would contradict the
	// lower-number-wins rule applied when vectors are raised
	mc.ClearInterrupt(2)
	test.ExpectEquality(t, mc.Priority(), 5)

	mc.ClearInterrupt(9)
	test.ExpectEquality(t, mc.Priority(), 5)

	mc.ClearInterrupt(5)
	test.ExpectEquality(t, mc.Priority(), cpu.NoInterrupt)

	// clearing a vector that isn't pending has no effect
	mc.RaiseInterrupt(7)
	mc.ClearInterrupt(3)
	test.ExpectEquality(t, mc.Priority(), 7)

	// out of range vectors are ignored
	mc.RaiseInterrupt(cpu.NumVectors)
	mc.RaiseInterrupt(-1)
	test.ExpectEquality(t, mc.Pending(), 1<<7)
}

func TestInterruptService(t *testing.T) {
	mc, mem := newCPU(t, opNOP, opNOP)
	mem.Program[6] = opRETI
	sp := mc.SP()

	var acknowledged int
	test.ExpectSuccess(t, mc.RegisterVector(3, func() { acknowledged++ }))
	test.ExpectSuccess(t, curated.Is(mc.RegisterVector(cpu.NumVectors, nil), cpu.InvalidVector))

	rec := &calloutRecorder{}
	mc.AddInterruptCallout(rec)

	mc.SetSREG(cpu.I | cpu.C)
	mc.RaiseInterrupt(3)

	step(t, mc)
	test.ExpectEquality(t, mc.PC, 6)
	test.ExpectEquality(t, mc.SP(), sp-2)
	test.ExpectEquality(t, mem.Data[sp], 0x01)
	test.ExpectEquality(t, mem.Data[sp-1], 0x00)
	test.ExpectEquality(t, mc.SREG(), cpu.C)
	test.ExpectEquality(t, acknowledged, 1)
	test.ExpectEquality(t, len(rec.entries), 1)
	test.ExpectEquality(t, rec.entries[0], 3)

	// vectoring itself takes no cycles
	test.ExpectEquality(t, mc.Cycles, 1)

	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, mc.PC, 1)
	test.ExpectEquality(t, mc.SP(), sp)
	test.ExpectEquality(t, mc.SREG(), cpu.C|cpu.I)
	test.ExpectEquality(t, len(rec.exits), 1)
	test.ExpectEquality(t, rec.exits[0], 3)
}

func TestInterruptStackLayout(t *testing.T) {
	// the return address is stacked the same way as by CALL. the low byte is
	// pushed first so that RETI and RET share the same pop order
	mc, mem := newCPU(t)
	mem.Program[0x0010] = opCALL
	mem.Program[0x0011] = 0x0200
	mem.Program[0x0200] = opRET
	sp := mc.SP()

	mc.PC = 0x0010
	step(t, mc)
	test.ExpectEquality(t, mem.Data[sp], 0x12)
	test.ExpectEquality(t, mem.Data[sp-1], 0x00)
	step(t, mc)

	mem.Program[0x0122] = opNOP
	mc.PC = 0x0122
	mc.SetSREG(cpu.I)
	mc.RaiseInterrupt(1)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 2)
	test.ExpectEquality(t, mc.SP(), sp-2)
	test.ExpectEquality(t, mem.Data[sp], 0x23)
	test.ExpectEquality(t, mem.Data[sp-1], 0x01)
}

func TestNestedInterrupts(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Program[4] = opSEI
	mem.Program[5] = opNOP
	mem.Program[8] = opRETI
	mem.Program[6] = opRETI

	rec := &calloutRecorder{}
	mc.AddInterruptCallout(rec)

	mc.SetSREG(cpu.I)
	mc.RaiseInterrupt(2)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 4)

	// interrupt routine for vector 2 enables interrupts and is interrupted by
	// vector 4
	mc.RaiseInterrupt(4)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 8)

	step(t, mc)
	test.ExpectEquality(t, mc.PC, 5)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 1)

	test.ExpectEquality(t, len(rec.exits), 2)
	test.ExpectEquality(t, rec.exits[0], 4)
	test.ExpectEquality(t, rec.exits[1], 2)
}

func TestResetClearsInterrupts(t *testing.T) {
	mc, _ := newCPU(t)
	mc.RaiseInterrupt(1)
	mc.Reset()
	test.ExpectEquality(t, mc.Priority(), cpu.NoInterrupt)
	test.ExpectEquality(t, mc.Pending(), 0)
}

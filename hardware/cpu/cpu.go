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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/logger"
)

// Sentinal error patterns.
const (
	// AddressFault is returned by Step() when the instruction accessed an
	// address outside of memory. The CPU is killed.
	AddressFault = "cpu: address fault at %#04x: %v\n%s"

	// Terminated is returned by Step() when the program counter returns to
	// the reset vector and the ExitOnReset preference is set.
	Terminated = "cpu: terminated"

	// Killed is returned by Step() when the CPU has been killed.
	Killed = "cpu: killed: %v"
)

// Tracer receives a snapshot of the CPU after every instruction.
type Tracer interface {
	Trace(execution.Result)
}

// CPU implements the AVR 8bit CPU.
type CPU struct {
	prefs *preferences.Preferences
	mem   *memory.Memory

	// program counter. a word address into program memory
	PC uint16

	// number of cycles and instructions since reset
	Cycles       uint64
	Instructions uint64

	// the CPU is waiting for an interrupt
	Asleep bool

	// the operands of the current instruction
	ops Operands

	// the opcode and second word of the current instruction
	opcode uint16
	second uint16

	// the address of the next instruction and the number of cycles in
	// addition to the minimum for the current instruction. the execute
	// functions change these as required
	nextPC      int
	extraCycles int

	interrupts interrupts

	// cycle count at the most recent WDR instruction
	watchdog uint64

	exitOnReset bool

	tracer Tracer

	// the reason the CPU was killed. nil if the CPU is running normally
	killed error
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset before it is returned.
func NewCPU(prefs *preferences.Preferences, mem *memory.Memory) *CPU {
	buildTables()

	mc := &CPU{
		prefs: prefs,
		mem:   mem,
	}
	mc.Reset()

	return mc
}

// Reset the CPU. The data space is cleared and the stack pointer set to the
// initial value. Program memory, interrupt registrations, callouts and the
// tracer are untouched.
func (mc *CPU) Reset() {
	mc.mem.Reset()
	mc.mem.Write16(addresses.SPL, mc.prefs.InitialSP())

	mc.PC = 0
	mc.Cycles = 0
	mc.Instructions = 0
	mc.Asleep = false
	mc.ops = Operands{}
	mc.nextPC = 0
	mc.extraCycles = 0
	mc.watchdog = 0
	mc.killed = nil
	mc.exitOnReset = mc.prefs.ExitOnReset.Get().(bool)
	mc.interrupts.reset()
}

// SetTracer attaches a tracer to the CPU. A nil value removes the tracer.
func (mc *CPU) SetTracer(tracer Tracer) {
	mc.tracer = tracer
}

// Kill stops the CPU. Every future call to Step() will return an error
// wrapping the reason, until the CPU is Reset().
func (mc *CPU) Kill(reason error) {
	if mc.killed == nil {
		mc.killed = curated.Errorf(Killed, reason)
	}
}

// IsKilled returns true if the CPU has been killed.
func (mc *CPU) IsKilled() bool {
	return mc.killed != nil
}

// Step executes a single instruction, or a single cycle if the CPU is asleep.
// Returns the number of cycles consumed.
func (mc *CPU) Step() (int, error) {
	if mc.killed != nil {
		return 0, mc.killed
	}

	if mc.Asleep {
		mc.Cycles++
		mc.mem.Clock()
		mc.Service()
		return 1, mc.checkFault(mc.PC)
	}

	// the PC field may have been set to anything by the caller
	pc := mc.wrap(int(mc.PC))
	mc.PC = pc
	size := int(tables.size[mc.mem.Program[pc]])

	mc.opcode = mc.mem.Program[pc]
	mc.ops = Operands{}
	mc.nextPC = int(pc) + size
	mc.extraCycles = 0

	// fetching the second word is an extra tick on top of the cycles of the
	// instruction
	if size == 2 {
		mc.second = mc.mem.Program[mc.wrap(int(pc)+1)]
		mc.mem.Clock()
	} else {
		mc.second = 0
	}

	tables.decode[mc.opcode](mc.opcode, mc.second, &mc.ops)
	tables.execute[mc.opcode](mc)

	if err := mc.checkFault(pc); err != nil {
		return 0, err
	}

	cycles := int(tables.cycles[mc.opcode]) + mc.extraCycles
	mc.Cycles += uint64(cycles)
	mc.Instructions++
	mc.PC = mc.wrap(mc.nextPC)

	for rangeIdx := 0; rangeIdx < cycles; rangeIdx++ {
		mc.mem.Clock()
	}

	if mc.tracer != nil {
		mc.tracer.Trace(mc.result(pc))
	}

	mc.Service()
	if err := mc.checkFault(pc); err != nil {
		return cycles, err
	}

	// a peripheral or callout may have killed the CPU during the instruction
	if mc.killed != nil {
		return cycles, mc.killed
	}

	if mc.exitOnReset && mc.PC == 0 {
		return cycles, curated.Errorf(Terminated)
	}

	return cycles, nil
}

// checkFault kills the CPU if the memory has recorded an illegal access.
func (mc *CPU) checkFault(pc uint16) error {
	fault := mc.mem.Fault()
	if fault == nil {
		return nil
	}
	err := curated.Errorf(AddressFault, pc, fault, mc.String())
	logger.Log(mc.prefs, "cpu", fault)
	mc.killed = err
	return err
}

// wrap a program address to the size of program memory.
func (mc *CPU) wrap(address int) uint16 {
	n := len(mc.mem.Program)
	address %= n
	if address < 0 {
		address += n
	}
	return uint16(address)
}

func (mc *CPU) result(pc uint16) execution.Result {
	r := execution.Result{
		InstructionCount: mc.Instructions,
		Cycles:           mc.Cycles,
		PC:               pc,
		Opcode:           mc.opcode,
		Operand:          mc.second,
		SP:               mc.SP(),
		SREG:             uint8(mc.SREG()),
	}
	copy(r.Registers[:], mc.mem.Data[:32])
	return r
}

// Watchdog returns the number of cycles since the watchdog was last reset with
// the WDR instruction.
func (mc *CPU) Watchdog() uint64 {
	return mc.Cycles - mc.watchdog
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x SP=%04x SREG=%s cycles=%d instructions=%d",
		mc.PC, mc.SP(), mc.SREG(), mc.Cycles, mc.Instructions))
	if mc.Asleep {
		s.WriteString(" asleep")
	}
	for i := 0; i < 32; i++ {
		if i%8 == 0 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("r%02d=%02x", i, mc.mem.Data[i]))
	}
	return s.String()
}

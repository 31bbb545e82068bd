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

	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/test"
)

const ramSize = 0x800

func newPreferences(t *testing.T) *preferences.Preferences {
	t.Helper()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.RAMSize.Set(ramSize))
	test.DemandSuccess(t, p.Logging.Set(false))

	return p
}

func newCPU(t *testing.T, program ...uint16) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	p := newPreferences(t)
	mem := memory.NewMemory(p)
	copy(mem.Program, program)

	return cpu.NewCPU(p, mem), mem
}

// step the CPU and fail the test if there is an error.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	test.DemandSuccess(t, err)
	return cycles
}

// opcode builders for the more awkward encodings

func rdrr(base uint16, d, r uint8) uint16 {
	return base | uint16(d&0x1f)<<4 | uint16(r&0x0f) | uint16(r&0x10)<<5
}

func rd(base uint16, d uint8) uint16 {
	return base | uint16(d&0x1f)<<4
}

func rdk(base uint16, d, k uint8) uint16 {
	return base | uint16(d&0x0f)<<4 | uint16(k&0xf0)<<4 | uint16(k&0x0f)
}

func rdb(base uint16, d, b uint8) uint16 {
	return base | uint16(d&0x1f)<<4 | uint16(b&0x07)
}

func branch(base uint16, s uint8, k int) uint16 {
	return base | uint16(k&0x7f)<<3 | uint16(s&0x07)
}

func rdq(base uint16, d, q uint8) uint16 {
	return base | uint16(d&0x1f)<<4 | uint16(q&0x20)<<8 | uint16(q&0x18)<<7 | uint16(q&0x07)
}

func ioA(base uint16, d, a uint8) uint16 {
	return base | uint16(d&0x1f)<<4 | uint16(a&0x30)<<5 | uint16(a&0x0f)
}

// opcodes used by the tests
const (
	opNOP   = 0x0000
	opRET   = 0x9508
	opRETI  = 0x9518
	opSLEEP = 0x9588
	opJMP   = 0x940c
	opCALL  = 0x940e
	opLDS   = 0x9000
	opSTS   = 0x9200
	opSEI   = 0x9478
	opCLI   = 0x94f8
	opSEC   = 0x9408
	opLPM   = 0x95c8
	opWDR   = 0x95a8

	baseADD  = 0x0c00
	baseADC  = 0x1c00
	baseSUB  = 0x1800
	baseSBC  = 0x0800
	baseCP   = 0x1400
	baseCPC  = 0x0400
	baseAND  = 0x2000
	baseEOR  = 0x2400
	baseMOV  = 0x2c00
	baseCPSE = 0x1000
	baseMUL  = 0x9c00
	baseLDI  = 0xe000
	baseSUBI = 0x5000
	baseSBCI = 0x4000
	baseCPI  = 0x3000
	baseORI  = 0x6000
	baseANDI = 0x7000
	baseINC  = 0x9403
	baseDEC  = 0x940a
	baseNEG  = 0x9401
	baseCOM  = 0x9400
	baseSWAP = 0x9402
	baseASR  = 0x9405
	baseLSR  = 0x9406
	baseROR  = 0x9407
	basePUSH = 0x920f
	basePOP  = 0x900f
	baseLDX  = 0x900c
	baseLDXp = 0x900d
	baseSTmZ = 0x9202
	baseLDD  = 0x8008
	baseSTD  = 0x8208
	baseLPMp = 0x9005
	baseXCH  = 0x9204
	baseSBRC = 0xfc00
	baseSBRS = 0xfe00
	baseBST  = 0xfa00
	baseBLD  = 0xf800
	baseBRBS = 0xf000
	baseBRBC = 0xf400
	baseIN   = 0xb000
	baseOUT  = 0xb800
)

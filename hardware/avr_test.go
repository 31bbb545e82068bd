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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/govern"
	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/programloader"
	"github.com/jetsetilly/gopheravr/test"
)

func newAVR(t *testing.T, exitOnReset bool) *hardware.AVR {
	t.Helper()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.RAMSize.Set(0x800))
	test.DemandSuccess(t, p.Logging.Set(false))
	test.DemandSuccess(t, p.ExitOnReset.Set(exitOnReset))

	avr, err := hardware.NewAVR(p)
	test.DemandSuccess(t, err)

	return avr
}

// words converts program words to the little-endian byte form expected by
// the program loader.
func words(w ...uint16) []byte {
	b := make([]byte, 0, len(w)*2)
	for _, v := range w {
		b = append(b, uint8(v), uint8(v>>8))
	}
	return b
}

func attach(t *testing.T, avr *hardware.AVR, w ...uint16) {
	t.Helper()
	test.DemandSuccess(t, avr.AttachProgram(programloader.NewLoaderFromData("test.bin", words(w...), "")))
}

func TestNewAVR(t *testing.T) {
	avr, err := hardware.NewAVR(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(avr.Mem.Data), preferences.DefaultRAMSize)
	test.ExpectEquality(t, len(avr.Mem.Program), preferences.DefaultROMSize/2)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.ROMSize.Set(0))
	_, err = hardware.NewAVR(p)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.AVRError))
}

func TestRunToReset(t *testing.T) {
	avr := newAVR(t, true)
	attach(t, avr,
		0xe005, // LDI r16, 5
		0x950a, // DEC r16
		0xf7f1, // BRNE -2
		0xcffc, // RJMP -4
	)

	test.ExpectSuccess(t, avr.Run(nil))
	test.ExpectEquality(t, avr.CPU.Register(16), 0)
	test.ExpectEquality(t, avr.CPU.PC, 0)
	test.ExpectEquality(t, avr.CPU.Cycles, 17)
	test.ExpectEquality(t, avr.CPU.Instructions, 12)
}

func TestRunContinueCheck(t *testing.T) {
	avr := newAVR(t, false)
	attach(t, avr, 0x0000, 0x0000, 0x0000, 0xcffc)

	var n int
	err := avr.Run(func() (govern.State, error) {
		n++
		if n == 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, avr.CPU.Instructions, 3)
	test.ExpectEquality(t, avr.CPU.PC, 3)

	// errors from the continue check end the run
	checkErr := errors.New("check failed")
	err = avr.Run(func() (govern.State, error) {
		return govern.Running, checkErr
	})
	test.ExpectSuccess(t, errors.Is(err, checkErr))
	test.ExpectEquality(t, avr.CPU.Instructions, 4)

	// paused emulation does not execute instructions
	n = 0
	err = avr.Run(func() (govern.State, error) {
		n++
		if n == 10 {
			return govern.Ending, nil
		}
		return govern.Paused, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, avr.CPU.Instructions, 5)
}

func TestRunFault(t *testing.T) {
	avr := newAVR(t, false)

	// LDS r0, 0xffff
	attach(t, avr, 0x9000, 0xffff)

	err := avr.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.AddressFault))
	test.ExpectSuccess(t, avr.CPU.IsKilled())

	// resetting revives the CPU
	avr.Reset()
	test.ExpectFailure(t, avr.CPU.IsKilled())
}

func TestRunForCycles(t *testing.T) {
	avr := newAVR(t, false)
	attach(t, avr, 0xcfff) // RJMP -1

	test.ExpectSuccess(t, avr.RunForCycles(10, nil))
	test.ExpectEquality(t, avr.CPU.Cycles, 10)

	var last uint64
	test.ExpectSuccess(t, avr.RunForCycles(100, func(cycles uint64) (govern.State, error) {
		last = cycles
		if cycles >= 20 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}))
	test.ExpectEquality(t, last, 20)
	test.ExpectEquality(t, avr.CPU.Cycles, 30)
}

func TestStep(t *testing.T) {
	avr := newAVR(t, false)
	attach(t, avr, 0xe005, 0x0000)

	test.ExpectSuccess(t, avr.Step())
	test.ExpectEquality(t, avr.CPU.Register(16), 5)
	test.ExpectEquality(t, avr.CPU.PC, 1)
}

func TestAttachProgram(t *testing.T) {
	avr := newAVR(t, false)
	attach(t, avr, 0xe005)
	test.ExpectSuccess(t, avr.Step())

	// attaching a program resets the CPU
	attach(t, avr, 0xe107)
	test.ExpectEquality(t, avr.CPU.PC, 0)
	test.ExpectEquality(t, avr.CPU.Register(16), 0)
	test.ExpectEquality(t, avr.Program.ShortName(), "test")

	test.ExpectFailure(t, avr.AttachProgram(programloader.NewLoaderFromData("test.hex", []byte("bad data"), "")))

	eep := programloader.NewLoaderFromData("test.eep", []byte(":0200000012AB41\n:00000001FF\n"), "")
	test.ExpectSuccess(t, avr.AttachEEPROM(eep))
	test.ExpectEquality(t, avr.Mem.EEPROM[0], 0x12)
	test.ExpectEquality(t, avr.Mem.EEPROM[1], 0xab)
	test.ExpectEquality(t, avr.Mem.EEPROM[2], 0xff)
}

type testPeripheral struct {
	label    string
	attached bool
	resets   int
	endErr   error
	ended    *[]string
}

func (p *testPeripheral) Label() string {
	return p.label
}

func (p *testPeripheral) Attach(mem *memory.Memory, mc *cpu.CPU) error {
	if p.label == "broken" {
		return errors.New("cannot attach")
	}
	p.attached = true
	return nil
}

func (p *testPeripheral) Reset() {
	p.resets++
}

func (p *testPeripheral) End() error {
	*p.ended = append(*p.ended, p.label)
	return p.endErr
}

func TestPeripherals(t *testing.T) {
	avr := newAVR(t, false)

	var ended []string
	a := &testPeripheral{label: "a", ended: &ended}
	b := &testPeripheral{label: "b", ended: &ended, endErr: errors.New("end failed")}
	c := &testPeripheral{label: "c", ended: &ended}

	test.ExpectSuccess(t, avr.AddPeripheral(a))
	test.ExpectSuccess(t, avr.AddPeripheral(b))
	test.ExpectSuccess(t, avr.AddPeripheral(c))
	test.ExpectSuccess(t, a.attached)

	err := avr.AddPeripheral(&testPeripheral{label: "broken", ended: &ended})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.PeripheralError))

	test.ExpectEquality(t, len(avr.Peripherals()), 3)
	test.ExpectEquality(t, avr.Peripherals()[1], "b")

	avr.Reset()
	test.ExpectEquality(t, a.resets, 1)
	test.ExpectEquality(t, c.resets, 1)

	err = avr.End()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(ended), 3)
	test.ExpectEquality(t, ended[0], "c")
	test.ExpectEquality(t, ended[2], "a")
}

type symbolicPeripheral struct {
	testPeripheral
}

func (p *symbolicPeripheral) Symbols() map[uint16]string {
	return map[uint16]string{0x80: "TESTR"}
}

func TestPeripheralSymbols(t *testing.T) {
	avr := newAVR(t, false)

	var ended []string
	test.DemandSuccess(t, avr.AddPeripheral(&testPeripheral{label: "plain", ended: &ended}))
	test.ExpectEquality(t, len(avr.Symbols()), 0)

	test.DemandSuccess(t, avr.AddPeripheral(&symbolicPeripheral{testPeripheral{label: "symbolic", ended: &ended}}))
	sym := avr.Symbols()
	test.ExpectEquality(t, len(sym), 1)
	test.ExpectEquality(t, sym[0x80], "TESTR")
}

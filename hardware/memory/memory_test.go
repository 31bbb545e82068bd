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

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/test"
)

func newMemory(t *testing.T) *memory.Memory {
	t.Helper()
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.RAMSize.Set(0x400))
	return memory.NewMemory(p)
}

func TestRAM(t *testing.T) {
	mem := newMemory(t)

	mem.Write(0x200, 0x42)
	test.ExpectEquality(t, mem.Read(0x200), 0x42)

	// I/O address with no binding behaves as RAM
	mem.Write(0x40, 0x99)
	test.ExpectEquality(t, mem.Read(0x40), 0x99)

	// register file
	mem.Write(0x10, 0x01)
	test.ExpectEquality(t, mem.Data[0x10], 0x01)

	test.ExpectSuccess(t, mem.Fault())
}

func TestIllegalAccess(t *testing.T) {
	mem := newMemory(t)

	test.ExpectEquality(t, mem.Read(0x400), 0)
	mem.Write(0x401, 0xff)

	// only the first fault is kept
	err := mem.Fault()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.IllegalAccess))
	test.ExpectEquality(t, err.Error(), "memory: illegal read of address 0x400")

	// fault has been collected
	test.ExpectSuccess(t, mem.Fault())

	_ = mem.ReadProgram(uint32(len(mem.Program)))
	test.ExpectFailure(t, mem.Fault())
}

func TestPeekPoke(t *testing.T) {
	mem := newMemory(t)

	test.ExpectSuccess(t, mem.Poke(0x300, 0x12))
	v, err := mem.Peek(0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x12)

	_, err = mem.Peek(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
	test.ExpectFailure(t, mem.Poke(0x400, 0))

	// peek and poke never record a fault
	test.ExpectSuccess(t, mem.Fault())
}

func TestBindingChain(t *testing.T) {
	mem := newMemory(t)

	var order []string
	var written []uint8

	test.ExpectSuccess(t, mem.AddBinding(memory.Binding{
		Label: "first",
		Start: 0x30,
		End:   0x31,
		Read: func(_ uint16) uint8 {
			order = append(order, "first")
			return 0x01
		},
		Write: func(_ uint16, data uint8) {
			written = append(written, data)
		},
	}))
	test.ExpectSuccess(t, mem.AddBinding(memory.Binding{
		Label: "second",
		Start: 0x31,
		End:   0x31,
		Read: func(_ uint16) uint8 {
			order = append(order, "second")
			return 0x02
		},
	}))

	// last handler wins and the value is mirrored into the data space
	test.ExpectEquality(t, mem.Read(0x31), 0x02)
	test.ExpectEquality(t, mem.Data[0x31], 0x02)
	test.ExpectEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], "first")
	test.ExpectEquality(t, order[1], "second")

	test.ExpectEquality(t, mem.Read(0x30), 0x01)

	// writes to a bound address go to the handlers and not to the data space
	mem.Write(0x30, 0x55)
	test.ExpectEquality(t, len(written), 1)
	test.ExpectEquality(t, written[0], 0x55)
	test.ExpectEquality(t, mem.Data[0x30], 0x01)

	test.ExpectEquality(t, len(mem.Bindings()), 2)
}

func TestBindingErrors(t *testing.T) {
	mem := newMemory(t)

	err := mem.AddBinding(memory.Binding{Label: "reversed", Start: 0x40, End: 0x30})
	test.ExpectSuccess(t, curated.Is(err, memory.BindingError))

	err = mem.AddBinding(memory.Binding{Label: "ram", Start: 0x100, End: 0x110})
	test.ExpectSuccess(t, curated.Is(err, memory.BindingError))

	err = mem.AddBinding(memory.Binding{Label: "registers", Start: 0x00, End: 0x20})
	test.ExpectFailure(t, err)

	initErr := errors.New("no device")
	err = mem.AddBinding(memory.Binding{
		Label: "init",
		Start: addresses.IOOrigin,
		End:   addresses.IOOrigin,
		Init:  func() error { return initErr },
	})
	test.ExpectSuccess(t, errors.Is(err, initErr))
	test.ExpectEquality(t, len(mem.Bindings()), 0)
}

func TestClock(t *testing.T) {
	mem := newMemory(t)

	var a, b int
	test.ExpectSuccess(t, mem.AddBinding(memory.Binding{Label: "a", Start: 0x20, End: 0x20, Clock: func() { a++ }}))
	test.ExpectSuccess(t, mem.AddBinding(memory.Binding{Label: "b", Start: 0x21, End: 0x21, Clock: func() { b++ }}))
	test.ExpectSuccess(t, mem.AddBinding(memory.Binding{Label: "c", Start: 0x22, End: 0x22}))

	for rangeIdx := 0; rangeIdx < 10; rangeIdx++ {
		mem.Clock()
	}
	test.ExpectEquality(t, a, 10)
	test.ExpectEquality(t, b, 10)
}

func TestWriteCallout(t *testing.T) {
	mem := newMemory(t)

	var seen []uint8
	test.ExpectSuccess(t, mem.AddWriteCallout(0x200, func(_ uint16, data uint8) bool {
		seen = append(seen, data)
		return data != 0xff
	}))
	test.ExpectSuccess(t, mem.AddWriteCallout(0x200, func(_ uint16, data uint8) bool {
		seen = append(seen, data)
		return true
	}))

	mem.Write(0x200, 0x10)
	test.ExpectEquality(t, mem.Data[0x200], 0x10)

	// vetoed by the first callout but the second callout still sees it
	mem.Write(0x200, 0xff)
	test.ExpectEquality(t, mem.Data[0x200], 0x10)
	test.ExpectEquality(t, len(seen), 4)

	// other addresses are unaffected
	mem.Write(0x201, 0xff)
	test.ExpectEquality(t, mem.Data[0x201], 0xff)

	test.ExpectFailure(t, mem.AddWriteCallout(0x400, nil))
}

func TestProgramBytes(t *testing.T) {
	mem := newMemory(t)
	mem.Program[2] = 0xbeef

	test.ExpectEquality(t, mem.ReadProgramByte(4), 0xef)
	test.ExpectEquality(t, mem.ReadProgramByte(5), 0xbe)
}

func TestReset(t *testing.T) {
	mem := newMemory(t)
	mem.Program[0] = 0x1234
	mem.Write(0x300, 0x01)
	mem.Write16(addresses.SPL, 0x03ff)
	test.ExpectEquality(t, mem.Read16(addresses.SPL), 0x03ff)

	mem.Reset()
	test.ExpectEquality(t, mem.Data[0x300], 0)
	test.ExpectEquality(t, mem.Read16(addresses.SPL), 0)
	test.ExpectEquality(t, mem.Program[0], 0x1234)
}

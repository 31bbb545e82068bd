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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/script"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/test"
)

const timer = `
count = 0
value = 0

function init()
	value = 7
end

function reset()
	value = 0
end

function clock()
	count = count + 1
	if count == 10 then
		avr.raise(3)
	end
end

function read(address)
	if address == 0xe8 then
		return value
	end
	return count % 256
end

function write(address, data)
	if data == 0xff then
		avr.clear(3)
		avr.log("cleared")
		return
	end
	value = data
end
`

func newSystem(t *testing.T) (*memory.Memory, *cpu.CPU, *preferences.Preferences) {
	t.Helper()
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Logging.Set(false))
	mem := memory.NewMemory(p)
	return mem, cpu.NewCPU(p, mem), p
}

func TestScript(t *testing.T) {
	mem, mc, p := newSystem(t)

	scr := script.NewScript(p, "timer", 0xe8, 0xe9, timer)
	test.DemandSuccess(t, scr.Attach(mem, mc))
	test.ExpectEquality(t, scr.Label(), "timer")

	// value set by init()
	test.ExpectEquality(t, mem.Read(0xe8), 7)

	mem.Write(0xe8, 0x55)
	test.ExpectEquality(t, mem.Read(0xe8), 0x55)

	for rangeIdx := 0; rangeIdx < 9; rangeIdx++ {
		mem.Clock()
	}
	test.ExpectEquality(t, mc.Priority(), cpu.NoInterrupt)
	mem.Clock()
	test.ExpectEquality(t, mc.Priority(), 3)
	test.ExpectEquality(t, mem.Read(0xe9), 10)

	mem.Write(0xe9, 0xff)
	test.ExpectEquality(t, mc.Priority(), cpu.NoInterrupt)
	test.ExpectEquality(t, mem.Read(0xe8), 0x55)

	scr.Reset()
	test.ExpectEquality(t, mem.Read(0xe8), 0)

	test.ExpectSuccess(t, scr.End())
}

func TestCycles(t *testing.T) {
	mem, mc, p := newSystem(t)

	src := `
function read(address)
	return avr.cycles()
end
`
	scr := script.NewScript(p, "cycles", 0xe0, 0xe0, src)
	test.DemandSuccess(t, scr.Attach(mem, mc))

	for rangeIdx := 0; rangeIdx < 5; rangeIdx++ {
		mem.Clock()
	}
	test.ExpectEquality(t, mem.Read(0xe0), 5)

	scr.Reset()
	test.ExpectEquality(t, mem.Read(0xe0), 0)
}

func TestErrors(t *testing.T) {
	mem, mc, p := newSystem(t)

	// syntax error
	scr := script.NewScript(p, "syntax", 0xe0, 0xe0, "function read(")
	err := scr.Attach(mem, mc)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// error in init
	scr = script.NewScript(p, "init", 0xe0, 0xe0, "function init() error('no') end")
	test.ExpectFailure(t, scr.Attach(mem, mc))

	// runtime error kills the CPU
	scr = script.NewScript(p, "runtime", 0xe0, 0xe0, "function read(address) return nil + 1 end")
	test.DemandSuccess(t, scr.Attach(mem, mc))
	test.ExpectFailure(t, mc.IsKilled())
	test.ExpectEquality(t, mem.Read(0xe0), 0)
	test.ExpectSuccess(t, mc.IsKilled())

	_, err = mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.Killed))
}

func TestLoadScript(t *testing.T) {
	mem, mc, p := newSystem(t)

	_, err := script.LoadScript(p, filepath.Join(t.TempDir(), "missing.lua"), 0xe0, 0xe0)
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "constant.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("function read(address) return 0x42 end"), 0o644))
	scr, err := script.LoadScript(p, fn, 0xf0, 0xf0)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, scr.Attach(mem, mc))
	test.ExpectEquality(t, mem.Read(0xf0), 0x42)
}

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

package script

import (
	"os"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %s: %v"
)

// Script implements the peripherals.Peripheral interface.
type Script struct {
	perm  logger.Permission
	label string

	start uint16
	end   uint16

	source string

	L  *lua.LState
	mc *cpu.CPU

	initFn  lua.LValue
	resetFn lua.LValue
	clockFn lua.LValue
	readFn  lua.LValue
	writeFn lua.LValue

	cycles uint64
}

// NewScript is the preferred method of initialisation for the Script type.
// The source argument is the Lua source code of the peripheral. The label is
// used to identify the peripheral in the log and in error messages.
func NewScript(perm logger.Permission, label string, start uint16, end uint16, source string) *Script {
	return &Script{
		perm:   perm,
		label:  label,
		start:  start,
		end:    end,
		source: source,
	}
}

// LoadScript creates a Script with source code read from the named file.
func LoadScript(perm logger.Permission, filename string, start uint16, end uint16) (*Script, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ScriptError, filename, err)
	}
	return NewScript(perm, filename, start, end, string(b)), nil
}

// Label implements the peripherals.Peripheral interface.
func (scr *Script) Label() string {
	return scr.label
}

// Attach implements the peripherals.Peripheral interface. The script is
// compiled and run. The init() function is then called if it is defined.
func (scr *Script) Attach(mem *memory.Memory, mc *cpu.CPU) error {
	scr.mc = mc
	scr.L = lua.NewState()

	avr := scr.L.NewTable()
	scr.L.SetFuncs(avr, map[string]lua.LGFunction{
		"raise": func(L *lua.LState) int {
			mc.RaiseInterrupt(L.CheckInt(1))
			return 0
		},
		"clear": func(L *lua.LState) int {
			mc.ClearInterrupt(L.CheckInt(1))
			return 0
		},
		"log": func(L *lua.LState) int {
			logger.Log(scr.perm, scr.label, L.CheckString(1))
			return 0
		},
		"cycles": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.cycles))
			return 1
		},
	})
	scr.L.SetGlobal("avr", avr)

	if err := scr.L.DoString(scr.source); err != nil {
		scr.L.Close()
		scr.L = nil
		return curated.Errorf(ScriptError, scr.label, err)
	}

	scr.initFn = scr.function("init")
	scr.resetFn = scr.function("reset")
	scr.clockFn = scr.function("clock")
	scr.readFn = scr.function("read")
	scr.writeFn = scr.function("write")

	b := memory.Binding{
		Label: scr.label,
		Start: scr.start,
		End:   scr.end,
		Init: func() error {
			if scr.initFn == nil {
				return nil
			}
			_, err := scr.call(scr.initFn, 0)
			return err
		},
	}
	b.Clock = scr.clock
	if scr.readFn != nil {
		b.Read = scr.read
	}
	if scr.writeFn != nil {
		b.Write = scr.write
	}

	return mem.AddBinding(b)
}

// returns nil if the global is not a function.
func (scr *Script) function(name string) lua.LValue {
	fn := scr.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil
	}
	return fn
}

func (scr *Script) call(fn lua.LValue, nret int, args ...lua.LValue) (lua.LValue, error) {
	err := scr.L.CallByParam(lua.P{Fn: fn, NRet: nret, Protect: true}, args...)
	if err != nil {
		return lua.LNil, curated.Errorf(ScriptError, scr.label, err)
	}
	if nret == 0 {
		return lua.LNil, nil
	}
	ret := scr.L.Get(-1)
	scr.L.Pop(1)
	return ret, nil
}

// runtime errors kill the CPU.
func (scr *Script) fail(err error) {
	logger.Log(scr.perm, scr.label, err)
	scr.mc.Kill(err)
}

// Reset implements the peripherals.Resetter interface.
func (scr *Script) Reset() {
	scr.cycles = 0
	if scr.resetFn == nil {
		return
	}
	if _, err := scr.call(scr.resetFn, 0); err != nil {
		scr.fail(err)
	}
}

// End implements the peripherals.Ender interface.
func (scr *Script) End() error {
	if scr.L != nil {
		scr.L.Close()
		scr.L = nil
	}
	return nil
}

func (scr *Script) clock() {
	scr.cycles++
	if scr.clockFn == nil || scr.mc.IsKilled() {
		return
	}
	if _, err := scr.call(scr.clockFn, 0); err != nil {
		scr.fail(err)
	}
}

func (scr *Script) read(address uint16) uint8 {
	ret, err := scr.call(scr.readFn, 1, lua.LNumber(address))
	if err != nil {
		scr.fail(err)
		return 0
	}
	if n, ok := ret.(lua.LNumber); ok {
		return uint8(int(n))
	}
	return 0
}

func (scr *Script) write(address uint16, data uint8) {
	if _, err := scr.call(scr.writeFn, 0, lua.LNumber(address), lua.LNumber(data)); err != nil {
		scr.fail(err)
	}
}

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

package simctl

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/logger"
)

// Data space addresses of the simctl registers.
const (
	ARG     = 0xfd
	CONSOLE = 0xfe
	COMMAND = 0xff
)

// List of commands.
const (
	CmdExit   = 0x01
	CmdDump   = 0x02
	CmdCycles = 0x03
)

// Exit is the reason given to cpu.Kill() when the program writes CmdExit.
const Exit = "simctl: exit with code %d"

// SimCtl implements the peripherals.Peripheral interface.
type SimCtl struct {
	perm   logger.Permission
	output io.Writer

	mc *cpu.CPU

	arg  uint8
	line strings.Builder

	exited   bool
	exitCode int
}

// NewSimCtl is the preferred method of initialisation for the SimCtl type.
// The output argument can be nil.
func NewSimCtl(perm logger.Permission, output io.Writer) *SimCtl {
	return &SimCtl{
		perm:   perm,
		output: output,
	}
}

// Label implements the peripherals.Peripheral interface.
func (sc *SimCtl) Label() string {
	return "simctl"
}

// Symbols implements the peripherals.Symbolic interface.
func (sc *SimCtl) Symbols() map[uint16]string {
	return map[uint16]string{
		ARG:     "SIMARG",
		CONSOLE: "SIMCON",
		COMMAND: "SIMCMD",
	}
}

// Attach implements the peripherals.Peripheral interface.
func (sc *SimCtl) Attach(mem *memory.Memory, mc *cpu.CPU) error {
	sc.mc = mc

	if err := mem.AddWriteCallout(ARG, func(_ uint16, data uint8) bool {
		sc.arg = data
		return false
	}); err != nil {
		return err
	}

	if err := mem.AddWriteCallout(CONSOLE, func(_ uint16, data uint8) bool {
		sc.putc(data)
		return false
	}); err != nil {
		return err
	}

	return mem.AddWriteCallout(COMMAND, func(_ uint16, data uint8) bool {
		sc.command(data)
		return false
	})
}

// Reset implements the peripherals.Resetter interface.
func (sc *SimCtl) Reset() {
	sc.arg = 0
	sc.line.Reset()
	sc.exited = false
	sc.exitCode = 0
}

// End implements the peripherals.Ender interface. An unfinished line is
// flushed.
func (sc *SimCtl) End() error {
	if sc.line.Len() > 0 {
		return sc.flush()
	}
	return nil
}

// ExitCode returns the exit code written by the program. The boolean value is
// false if the program has not exited.
func (sc *SimCtl) ExitCode() (int, bool) {
	return sc.exitCode, sc.exited
}

func (sc *SimCtl) putc(data uint8) {
	if data == '\n' {
		if err := sc.flush(); err != nil {
			logger.Log(sc.perm, "simctl", err)
		}
		return
	}
	sc.line.WriteByte(data)
}

func (sc *SimCtl) flush() error {
	s := sc.line.String()
	sc.line.Reset()

	logger.Log(sc.perm, "simctl", s)
	if sc.output != nil {
		if _, err := io.WriteString(sc.output, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (sc *SimCtl) command(cmd uint8) {
	switch cmd {
	case CmdExit:
		sc.exited = true
		sc.exitCode = int(sc.arg)
		sc.mc.Kill(curated.Errorf(Exit, sc.exitCode))
	case CmdDump:
		logger.Log(sc.perm, "simctl", sc.mc)
	case CmdCycles:
		logger.Logf(sc.perm, "simctl", "cycles: %d", sc.mc.Cycles)
	default:
		logger.Logf(sc.perm, "simctl", "unknown command (%#02x)", cmd)
	}
}

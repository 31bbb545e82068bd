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

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/peripherals/adc"
	"github.com/jetsetilly/gopheravr/test"
)

// writeProgram writes the words to a binary file in a temporary directory.
func writeProgram(t *testing.T, w ...uint16) string {
	t.Helper()
	b := make([]byte, 0, len(w)*2)
	for _, v := range w {
		b = append(b, uint8(v), uint8(v>>8))
	}
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, b, 0o644))
	return fn
}

func TestParseADCSpec(t *testing.T) {
	loaded := ""
	load := func(filename string) (adc.Source, error) {
		if filename == "missing.wav" {
			return nil, errors.New("missing")
		}
		loaded = filename
		return adc.Level(0), nil
	}

	channel, src, err := parseADCSpec("0.5", 2, load)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, channel, 2)
	test.ExpectEquality(t, src, adc.Source(adc.Level(0.5)))

	channel, _, err = parseADCSpec("5=sine.wav", 0, load)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, channel, 5)
	test.ExpectEquality(t, loaded, "sine.wav")

	_, _, err = parseADCSpec("8=0.5", 0, load)
	test.ExpectFailure(t, err)
	_, _, err = parseADCSpec("x=0.5", 0, load)
	test.ExpectFailure(t, err)
	_, _, err = parseADCSpec("1.5", 0, load)
	test.ExpectFailure(t, err)
	_, _, err = parseADCSpec("missing.wav", 0, load)
	test.ExpectFailure(t, err)
}

func TestParseScriptSpec(t *testing.T) {
	fn, start, end, err := parseScriptSpec("timer.lua:0x60:0x6f")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "timer.lua")
	test.ExpectEquality(t, start, uint16(0x60))
	test.ExpectEquality(t, end, uint16(0x6f))

	fn, _, _, err = parseScriptSpec("c:/scripts/timer.lua:96:111")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "c:/scripts/timer.lua")

	_, _, _, err = parseScriptSpec("timer.lua:0x60")
	test.ExpectFailure(t, err)
	_, _, _, err = parseScriptSpec("timer.lua:0x6f:0x60")
	test.ExpectFailure(t, err)
	_, _, _, err = parseScriptSpec("timer.lua:start:0x60")
	test.ExpectFailure(t, err)
}

func TestKnownRegisters(t *testing.T) {
	reg := knownRegisters()
	test.ExpectEquality(t, reg[0xc6], "UDR")
	test.ExpectEquality(t, reg[0x3f], "EECR")
	test.ExpectEquality(t, reg[0xff], "SIMCMD")
}

func TestLaunchHelp(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-help"}, w, nil), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Usage:"))

	w.Reset()
	test.ExpectEquality(t, launch([]string{"-version"}, w, nil), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "GopherAVR "))

	w.Reset()
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w, nil), exitParseError)

	w.Reset()
	test.ExpectEquality(t, launch([]string{"run"}, w, nil), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in RUN mode"))
}

func TestLaunchDisasm(t *testing.T) {
	fn := writeProgram(t,
		0xe005, // LDI r16, 5
		0x950a, // DEC r16
		0xf7f1, // BRNE -2
		0xbf0f, // OUT 0x3f, r16
		0xcfff, // RJMP -1
	)

	w := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"disasm", fn}, w, nil), exitOK)
	test.ExpectEquality(t, w.String(), `0x0000  LDI    r16, 0x05
0x0001  DEC    r16
0x0002  BRNE   0x0001
0x0003  OUT    SREG, r16
0x0004  RJMP   0x0004
`)

	w.Reset()
	test.ExpectEquality(t, launch([]string{"disasm", "-start", "3", "-end", "4", fn}, w, nil), exitOK)
	test.ExpectEquality(t, w.String(), "0x0003  OUT    SREG, r16\n")

	w.Reset()
	test.ExpectEquality(t, launch([]string{"disasm", "-end", "0x100", fn}, w, nil), exitModeError)
}

func TestLaunchRun(t *testing.T) {
	fn := writeProgram(t,
		0xe60f,         // LDI r16, 'o'
		0x9300, 0x00fe, // STS CONSOLE, r16
		0xe60b,         // LDI r16, 'k'
		0x9300, 0x00fe, // STS CONSOLE, r16
		0xe00a,         // LDI r16, '\n'
		0x9300, 0x00fe, // STS CONSOLE, r16
		0xe003,         // LDI r16, 3
		0x9300, 0x00fd, // STS ARG, r16
		0xe001,         // LDI r16, CmdExit
		0x9300, 0x00ff, // STS COMMAND, r16
		0xcfff,         // RJMP -1
	)

	quit := make(chan bool)

	w := &strings.Builder{}
	args := []string{"-prefs", "logging::false", "run", "-console=false", "-trace", "2", fn}
	test.ExpectEquality(t, launch(args, w, quit), 3)

	out := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "ok\n"))
	test.ExpectSuccess(t, strings.Contains(out, "LDI    r16, 0x01"))
	test.ExpectSuccess(t, strings.Contains(out, "STS    SIMCMD, r16"))

	// memviz output of the final state
	dot := filepath.Join(t.TempDir(), "cpu.dot")
	args = []string{"-prefs", "logging::false", "run", "-console=false", "-memviz", dot, fn}
	test.ExpectEquality(t, launch(args, w, quit), 3)
	_, err := os.Stat(dot)
	test.ExpectSuccess(t, err)
}

func TestLaunchRunQuit(t *testing.T) {
	fn := writeProgram(t, 0xcfff) // RJMP -1

	quit := make(chan bool)
	close(quit)

	w := &strings.Builder{}
	args := []string{"-prefs", "logging::false", "run", "-console=false", fn}
	test.ExpectEquality(t, launch(args, w, quit), exitOK)
	test.ExpectEquality(t, w.String(), "")
}

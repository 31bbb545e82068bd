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
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/disassembly"
	"github.com/jetsetilly/gopheravr/disassembly/symbols"
	"github.com/jetsetilly/gopheravr/govern"
	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/simctl"
	"github.com/jetsetilly/gopheravr/logger"
	"github.com/jetsetilly/gopheravr/memvizdump"
	"github.com/jetsetilly/gopheravr/modalflag"
	"github.com/jetsetilly/gopheravr/performance"
	"github.com/jetsetilly/gopheravr/performance/limiter"
	"github.com/jetsetilly/gopheravr/prefs"
	"github.com/jetsetilly/gopheravr/programloader"
	"github.com/jetsetilly/gopheravr/statsview"
	"github.com/jetsetilly/gopheravr/version"
	"golang.org/x/term"
)

// exit values for the process. a program that exits through the simctl
// peripheral supplies its own exit value
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc handler. the emulation is ended at the next opportunity so that
	// peripherals can release their resources
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	quit := make(chan bool)
	go func() {
		<-intChan
		fmt.Println("\r")
		close(quit)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout, quit))
}

// launch parses the top level of the command line and hands off to the
// selected mode. returns the exit value for the process.
func launch(args []string, output io.Writer, quit <-chan bool) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubMode("RUN", "run an AVR program")
	md.AddSubMode("DISASM", "disassemble an AVR program")
	md.AddSubMode("PERFORMANCE", "measure the speed of the emulation")

	log := md.AddBool("log", false, "echo log to stderr")
	showVersion := md.AddBool("version", false, "print version information and exit")
	prefsStack := md.AddString("prefs", "", "preferences for the emulation. eg. \"ram::0x800; exitonreset::true\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	if *log {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
		defer logger.SetEcho(nil)
	}

	if *prefsStack != "" {
		prefs.PushCommandLineStack(*prefsStack)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	exitVal := exitOK

	switch md.Mode() {
	case "RUN":
		exitVal, err = run(md, quit)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitVal
}

func run(md *modalflag.Modes, quit <-chan bool) (int, error) {
	md.NewMode()

	pf := addPeripheralFlags(md, true)
	traceLen := md.AddInt("trace", 0, "print the last N instructions when the emulation ends")
	memviz := md.AddString("memviz", "", "write graphviz rendering of the final CPU state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	realtime := md.AddBool("realtime", false, "limit emulation to the speed given by -mhz")
	profile := md.AddString("profile", "none", "run emulation through the profiler: none, cpu, mem, trace")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitOK, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return exitOK, fmt.Errorf("AVR program required for %s mode", md)
	case 1:
	default:
		return exitOK, fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return exitOK, err
	}

	if *stats {
		if !statsview.Available() {
			return exitOK, fmt.Errorf("stats server not available in this build")
		}
		defer statsview.Launch(md.Output, logger.Allow)()
	}

	avr, err := hardware.NewAVR(nil)
	if err != nil {
		return exitOK, err
	}

	err = avr.AttachProgram(programloader.NewLoader(md.GetArg(0), programloader.FormatAuto))
	if err != nil {
		return exitOK, err
	}

	sc, err := pf.attach(avr, md.Output)
	if err != nil {
		_ = avr.End()
		return exitOK, err
	}

	// the trace ring is also used to provide the final state for memviz
	var ring *execution.Ring
	if *traceLen > 0 || *memviz != "" {
		ring = execution.NewRing(max(*traceLen, 1))
		avr.CPU.SetTracer(ring)
	}

	var lim *limiter.CycleLimiter
	if *realtime {
		lim = limiter.NewCycleLimiter(*pf.mhz)
		defer lim.End()
	}

	performanceBrake := 0
	runErr := performance.RunProfiler(prf, "gopheravr", func() error {
		return avr.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			if lim != nil {
				lim.Limit(avr.CPU.Cycles)
			}

			select {
			case <-quit:
				return govern.Ending, nil
			default:
			}

			return govern.Running, nil
		})
	})

	// end peripherals before any further output. the console may need to
	// restore the terminal
	endErr := avr.End()

	// the program ending through simctl is a normal end
	if curated.Has(runErr, simctl.Exit) {
		runErr = nil
	}

	if ring != nil {
		if *traceLen > 0 {
			writeTrace(md.Output, avr, ring)
		}
		if *memviz != "" && ring.Len() > 0 {
			results := ring.Results()
			if err := memvizdump.WriteFile(*memviz, results[len(results)-1]); err != nil {
				return exitOK, err
			}
		}
	}

	if runErr != nil {
		return exitOK, runErr
	}
	if endErr != nil {
		return exitOK, endErr
	}

	if sc != nil {
		if code, ok := sc.ExitCode(); ok {
			return code, nil
		}
	}

	return exitOK, nil
}

// writeTrace prints the contents of the ring with the disassembly of each
// instruction.
func writeTrace(output io.Writer, avr *hardware.AVR, ring *execution.Ring) {
	sym := symbols.NewSymbols()
	for k, v := range avr.Symbols() {
		sym.AddIO(k, v)
	}

	for _, r := range ring.Results() {
		defn, ops := cpu.Decode(r.Opcode, r.Operand)
		operator, operand := disassembly.RenderWithSymbols(sym, r.PC, defn, ops)
		fmt.Fprintf(output, "%s  %-6s %s\n", r, operator, operand)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	start := md.AddHex("start", 0, "first word address to disassemble")
	end := md.AddHex("end", 0, "word address after the last to disassemble. defaults to end of program")
	symbolsFile := md.AddString("symbols", "", "avr-nm output to use for labels")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("AVR program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pl := programloader.NewLoader(md.GetArg(0), programloader.FormatAuto)
	if err := pl.Load(); err != nil {
		return err
	}
	img, err := pl.Image()
	if err != nil {
		return err
	}

	program := make([]uint16, (len(img)+1)/2)
	if err := pl.LoadProgram(program); err != nil {
		return err
	}

	if *end == 0 {
		*end = uint32(len(program))
	}

	// names of the registers of every peripheral that can be attached
	sym := symbols.NewSymbols()
	for k, v := range knownRegisters() {
		sym.AddIO(k, v)
	}
	if *symbolsFile != "" {
		if err := sym.ReadSymbolsFile(*symbolsFile); err != nil {
			return err
		}
	}

	dsm, err := disassembly.FromMemory(program, sym, int(*start), int(*end))
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	pf := addPeripheralFlags(md, false)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check through the profiler: none, cpu, mem, trace")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("AVR program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	avr, err := hardware.NewAVR(nil)
	if err != nil {
		return err
	}

	err = avr.AttachProgram(programloader.NewLoader(md.GetArg(0), programloader.FormatAuto))
	if err != nil {
		return err
	}

	// simctl output is discarded so that it doesn't interfere with the
	// performance report
	if _, err := pf.attach(avr, io.Discard); err != nil {
		_ = avr.End()
		return err
	}

	err = performance.Check(md.Output, prf, avr, *duration)
	if curated.Has(err, simctl.Exit) {
		err = nil
	}
	if endErr := avr.End(); err == nil {
		err = endErr
	}

	return err
}

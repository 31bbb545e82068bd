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
	"maps"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/clocks"
	"github.com/jetsetilly/gopheravr/hardware/peripherals"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/adc"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/console"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/dac"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/eeprom"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/script"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/simctl"
	"github.com/jetsetilly/gopheravr/modalflag"
)

// peripheralFlags are the flags shared by the modes that run a program.
type peripheralFlags struct {
	console *bool
	simctl  *bool
	eeprom  *string
	dac     *string
	dacRate *int
	adc     *[]string
	scripts *[]string
	mhz     *float64
}

func addPeripheralFlags(md *modalflag.Modes, withConsole bool) *peripheralFlags {
	return &peripheralFlags{
		console: md.AddBool("console", withConsole, "attach console peripheral to the terminal"),
		simctl:  md.AddBool("simctl", true, "attach simulation control peripheral"),
		eeprom:  md.AddString("eeprom", "", "attach EEPROM peripheral. contents are kept in the named file"),
		dac:     md.AddString("dac", "", "attach DAC peripheral. output is recorded to the named WAV file"),
		dacRate: md.AddInt("dacrate", dac.DefaultSampleRate, "sample rate of DAC recording"),
		adc:     md.AddStringList("adc", "ADC channel input: [channel=]file or [channel=]level. can be repeated"),
		scripts: md.AddStringList("script", "Lua peripheral: file:start:end. can be repeated"),
		mhz:     md.AddFloat64("mhz", clocks.Default, "clock speed of the emulated AVR in MHz"),
	}
}

// attach the peripherals requested by the flags. the SimCtl instance is
// returned if one was attached.
func (pf *peripheralFlags) attach(avr *hardware.AVR, output io.Writer) (*simctl.SimCtl, error) {
	var sc *simctl.SimCtl

	if *pf.simctl {
		sc = simctl.NewSimCtl(avr.Prefs, output)
		if err := avr.AddPeripheral(sc); err != nil {
			return nil, err
		}
	}

	if *pf.console {
		con, err := console.NewHostConsole(avr.Prefs)
		if err != nil {
			return nil, err
		}
		if err := avr.AddPeripheral(con); err != nil {
			return nil, err
		}
	}

	if *pf.eeprom != "" {
		if err := avr.AddPeripheral(eeprom.NewEEPROM(avr.Prefs, *pf.eeprom)); err != nil {
			return nil, err
		}
	}

	if *pf.dac != "" {
		if err := avr.AddPeripheral(dac.NewDAC(avr.Prefs, *pf.dac, *pf.dacRate, *pf.mhz)); err != nil {
			return nil, err
		}
	}

	if len(*pf.adc) > 0 {
		conv := adc.NewADC(avr.Prefs)
		for i, spec := range *pf.adc {
			channel, src, err := parseADCSpec(spec, i, func(filename string) (adc.Source, error) {
				return adc.LoadPCM(avr.Prefs, filename, *pf.mhz)
			})
			if err != nil {
				return nil, err
			}
			if err := conv.SetSource(channel, src); err != nil {
				return nil, err
			}
		}
		if err := avr.AddPeripheral(conv); err != nil {
			return nil, err
		}
	}

	for _, spec := range *pf.scripts {
		filename, start, end, err := parseScriptSpec(spec)
		if err != nil {
			return nil, err
		}
		scr, err := script.LoadScript(avr.Prefs, filename, start, end)
		if err != nil {
			return nil, err
		}
		if err := avr.AddPeripheral(scr); err != nil {
			return nil, err
		}
	}

	return sc, nil
}

// parseADCSpec parses an ADC flag value of the form [channel=]source. The
// source is a fixed level if it can be parsed as a number, otherwise it is a
// filename passed to the load function. If no channel is given the default
// channel is used.
func parseADCSpec(spec string, defaultChannel int, load func(string) (adc.Source, error)) (int, adc.Source, error) {
	channel := defaultChannel
	value := spec

	if c, v, ok := strings.Cut(spec, "="); ok {
		n, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return 0, nil, fmt.Errorf("adc: bad channel in %q", spec)
		}
		channel = n
		value = v
	}

	if channel < 0 || channel >= adc.NumChannels {
		return 0, nil, fmt.Errorf("adc: channel %d out of range", channel)
	}

	if l, err := strconv.ParseFloat(strings.TrimSpace(value), 32); err == nil {
		if l < -1 || l > 1 {
			return 0, nil, fmt.Errorf("adc: level %s out of range", value)
		}
		return channel, adc.Level(l), nil
	}

	src, err := load(value)
	if err != nil {
		return 0, nil, err
	}
	return channel, src, nil
}

// parseScriptSpec parses a script flag value of the form file:start:end. The
// addresses are data space addresses and can be given in hexadecimal with the
// 0x prefix. The filename can itself contain colons.
func parseScriptSpec(spec string) (string, uint16, uint16, error) {
	flds := strings.Split(spec, ":")
	if len(flds) < 3 {
		return "", 0, 0, fmt.Errorf("script: %q should be of the form file:start:end", spec)
	}

	n := len(flds)
	start, err := strconv.ParseUint(flds[n-2], 0, 16)
	if err != nil {
		return "", 0, 0, fmt.Errorf("script: bad start address in %q", spec)
	}
	end, err := strconv.ParseUint(flds[n-1], 0, 16)
	if err != nil {
		return "", 0, 0, fmt.Errorf("script: bad end address in %q", spec)
	}
	if end < start {
		return "", 0, 0, fmt.Errorf("script: end address before start address in %q", spec)
	}

	return strings.Join(flds[:n-2], ":"), uint16(start), uint16(end), nil
}

// knownRegisters returns the register names of every peripheral that names
// its registers. used when there is no AVR with attached peripherals.
func knownRegisters() map[uint16]string {
	sym := make(map[uint16]string)
	for _, p := range []peripherals.Symbolic{
		&console.Console{},
		&eeprom.EEPROM{},
		&adc.ADC{},
		&dac.DAC{},
		&simctl.SimCtl{},
	} {
		maps.Copy(sym, p.Symbols())
	}
	return sym
}

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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("run", "run a program")
//	md.AddSubMode("disasm", "disassemble a program")
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode added
// is the default and is selected if the first argument after the flags is not
// a sub-mode. Sub-mode comparisons are case insensitive and Mode() always
// returns the upper case version.
//
// A mode can then be parsed for its own flags and sub-modes by calling
// NewMode() and then Parse() again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddInt("trace", 0, "number of instructions to trace")
//		md.Parse()
//		run(md.RemainingArgs(), *trace)
//	}
//
// Path() returns the chain of modes selected by each call to Parse(), separated
// by a forward slash.
//
// In addition to the flag types of the flag package, AddHex() accepts numbers
// in hexadecimal and decimal notation, and AddStringList() accepts a flag that
// can be specified more than once.
package modalflag

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

package symbols

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
)

// Sentinal error patterns.
const (
	SymbolsError     = "symbols: %v"
	SymbolsFileError = "symbols: %s: line %d: %v"
)

// Symbols contains all currently defined symbols.
type Symbols struct {
	// program memory labels. indexed by word address
	label *table

	// names of registers in the I/O area. indexed by data space address
	io *table

	crit sync.Mutex
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The I/O table is populated with the canonical register names.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label: newTable(),
		io:    newTable(),
	}
	for k, v := range addresses.CPUNames {
		if addresses.IsIO(k) {
			sym.io.add(k, v, true)
		}
	}
	return sym
}

// AddLabel adds a label for a program memory address. If prefer is true then
// any existing label for the address is replaced.
func (sym *Symbols) AddLabel(addr uint16, symbol string, prefer bool) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.add(addr, symbol, prefer)
}

// GetLabel returns the label for a program memory address.
func (sym *Symbols) GetLabel(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.get(addr)
}

// RemoveLabel removes the label for a program memory address.
func (sym *Symbols) RemoveLabel(addr uint16) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.remove(addr)
}

// SearchLabel returns the address of the label. The search is case
// insensitive.
func (sym *Symbols) SearchLabel(symbol string) (uint16, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.search(symbol)
}

// AddIO names a register in the I/O area. Canonical names are never replaced.
func (sym *Symbols) AddIO(addr uint16, symbol string) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	if !addresses.IsIO(addr) {
		return false
	}
	if _, ok := addresses.CPUNames[addr]; ok {
		return false
	}
	return sym.io.add(addr, symbol, true)
}

// GetIO returns the name of the register at the data space address.
func (sym *Symbols) GetIO(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.io.get(addr)
}

// LabelWidth returns the maximum number of characters required by a label.
func (sym *Symbols) LabelWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.maxWidth
}

// ReadSymbolsFile adds the text symbols found in the output of avr-nm to the
// label table. Lines are of the form:
//
//	00000068 T main
//
// The address in the file is a byte address. Symbols of other types are
// ignored, as are lines without an address.
func (sym *Symbols) ReadSymbolsFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(SymbolsError, err)
	}
	defer f.Close()

	return sym.readSymbols(filename, f)
}

func (sym *Symbols) readSymbols(name string, r io.Reader) error {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		flds := strings.Fields(scanner.Text())
		if len(flds) < 3 {
			continue
		}

		switch flds[1] {
		case "T", "t", "W", "w":
		default:
			continue
		}

		addr, err := strconv.ParseUint(flds[0], 16, 32)
		if err != nil {
			return curated.Errorf(SymbolsFileError, name, line, err)
		}
		if addr&0x01 == 0x01 || addr>>1 > 0xffff {
			continue
		}

		// the first symbol seen for an address is kept
		sym.label.add(uint16(addr>>1), flds[2], false)
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(SymbolsFileError, name, line, err)
	}

	return nil
}

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

package disassembly

import (
	"sync"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/disassembly/symbols"
	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
)

// DisasmError is the sentinal error pattern for the package.
const DisasmError = "disassembly: %v"

// Disassembly represents the annotated disassembly of a range of program
// memory.
type Disassembly struct {
	crit sync.Mutex

	// symbols used in the disassembly. can be nil
	Sym *symbols.Symbols

	// the range of addresses in the disassembly. end is exclusive
	start uint16
	end   uint16

	// indexed by address minus start
	entries []*Entry
}

// FromMemory disassembles the program memory between the start and end
// addresses. The end address is exclusive. The sym argument can be nil.
func FromMemory(program []uint16, sym *symbols.Symbols, start int, end int) (*Disassembly, error) {
	if start < 0 || end > len(program) || start >= end {
		return nil, curated.Errorf(DisasmError, "address range out of bounds")
	}

	dsm := &Disassembly{
		Sym:     sym,
		start:   uint16(start),
		end:     uint16(end),
		entries: make([]*Entry, end-start),
	}

	// decode every address
	for a := start; a < end; a++ {
		var second uint16
		if a+1 < len(program) {
			second = program[a+1]
		}
		dsm.entries[a-start] = newEntry(sym, uint16(a), program[a], second, EntryLevelDecoded)
	}

	// bless the addresses reached by a linear pass
	for a := start; a < end; {
		e := dsm.entries[a-start]
		e.Level = EntryLevelBlessed
		a += e.Defn.Words
	}

	return dsm, nil
}

// Range returns the first address and the address after the last address in
// the disassembly.
func (dsm *Disassembly) Range() (uint16, uint16) {
	return dsm.start, dsm.end
}

// Get returns the entry for the address. Returns false if the address is
// outside the range of the disassembly.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if address < dsm.start || address >= dsm.end {
		return nil, false
	}
	return dsm.entries[address-dsm.start], true
}

// Entries returns the entries with a level of at least the specified level,
// in address order.
func (dsm *Disassembly) Entries(level EntryLevel) []*Entry {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	l := make([]*Entry, 0, len(dsm.entries))
	for _, e := range dsm.entries {
		if e.Level >= level {
			l = append(l, e)
		}
	}
	return l
}

// Trace implements the cpu.Tracer interface. Instructions outside the range
// of the disassembly are ignored.
func (dsm *Disassembly) Trace(result execution.Result) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if result.PC < dsm.start || result.PC >= dsm.end {
		return
	}
	dsm.entries[result.PC-dsm.start].updateExecutionEntry(dsm.Sym, result)
}

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

package memory

import (
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/memory/addresses"
)

// Binding attaches a peripheral to a range of addresses in the I/O area. All
// fields other than Start and End are optional.
type Binding struct {
	Label string

	// the range of data space addresses covered by the binding. both values
	// are inclusive
	Start uint16
	End   uint16

	// called once when the binding is added
	Init func() error

	// called once for every CPU cycle
	Clock func()

	// handlers for reads and writes to any address in the range
	Read  func(address uint16) uint8
	Write func(address uint16, data uint8)
}

// AddBinding registers a peripheral. Read and write handlers are appended to
// the chain of every address in the range, so a binding added later is called
// after a binding added earlier.
func (mem *Memory) AddBinding(b Binding) error {
	if b.Start > b.End {
		return curated.Errorf(BindingError, b.Label, "start of range is after end")
	}
	if !addresses.IsIO(b.Start) || !addresses.IsIO(b.End) {
		return curated.Errorf(BindingError, b.Label, "range is outside of I/O area")
	}

	if b.Init != nil {
		if err := b.Init(); err != nil {
			return curated.Errorf(BindingError, b.Label, err)
		}
	}

	for a := int(b.Start); a <= int(b.End); a++ {
		if b.Read != nil {
			mem.reads[a] = append(mem.reads[a], b.Read)
		}
		if b.Write != nil {
			mem.writes[a] = append(mem.writes[a], b.Write)
		}
	}

	mem.bindings = append(mem.bindings, b)

	return nil
}

// Bindings returns the labels of every binding in the order they were added.
func (mem *Memory) Bindings() []string {
	l := make([]string, 0, len(mem.bindings))
	for _, b := range mem.bindings {
		l = append(l, b.Label)
	}
	return l
}

// Clock advances every binding by one cycle.
func (mem *Memory) Clock() {
	for i := range mem.bindings {
		if mem.bindings[i].Clock != nil {
			mem.bindings[i].Clock()
		}
	}
}

// WriteCallout is consulted before a write to the data space. Returning false
// prevents the write.
type WriteCallout func(address uint16, data uint8) bool

// AddWriteCallout registers a callout for the data space address. All
// callouts for an address are called for every write, even if an earlier
// callout has already refused the write.
func (mem *Memory) AddWriteCallout(address uint16, callout WriteCallout) error {
	if int(address) >= len(mem.Data) {
		return curated.Errorf(AddressError, address)
	}
	mem.callouts[address] = append(mem.callouts[address], callout)
	return nil
}

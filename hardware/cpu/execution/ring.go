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

package execution

// Ring is a fixed size history of results. When the ring is full the oldest
// result is overwritten.
type Ring struct {
	entries []Result
	next    int
	full    bool
}

// NewRing is the preferred method of initialisation for the Ring type. A
// size of less than one is treated as one.
func NewRing(size int) *Ring {
	return &Ring{
		entries: make([]Result, max(size, 1)),
	}
}

// Trace implements the cpu.Tracer interface.
func (r *Ring) Trace(result Result) {
	r.entries[r.next] = result
	r.next++
	if r.next >= len(r.entries) {
		r.next = 0
		r.full = true
	}
}

// Len returns the number of results in the ring.
func (r *Ring) Len() int {
	if r.full {
		return len(r.entries)
	}
	return r.next
}

// Results returns the results in the ring, oldest first.
func (r *Ring) Results() []Result {
	if !r.full {
		return append([]Result{}, r.entries[:r.next]...)
	}
	l := make([]Result, 0, len(r.entries))
	l = append(l, r.entries[r.next:]...)
	return append(l, r.entries[:r.next]...)
}

// Clear empties the ring.
func (r *Ring) Clear() {
	r.next = 0
	r.full = false
}

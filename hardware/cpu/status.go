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

package cpu

import "strings"

// Status is the value of the status register. The bits are accessed through
// the named constants.
type Status uint8

// Status register bits.
const (
	C Status = 1 << iota // carry
	Z                    // zero
	N                    // negative
	V                    // two's complement overflow
	S                    // sign
	H                    // half carry
	T                    // transfer bit
	I                    // global interrupt enable
)

// Is returns true if the flag is set.
func (sr Status) Is(f Status) bool {
	return sr&f == f
}

// Set sets or clears the flag.
func (sr *Status) Set(f Status, v bool) {
	if v {
		*sr |= f
	} else {
		*sr &^= f
	}
}

// String returns the status register with one letter per bit. Upper case
// letters indicate the bit is set.
func (sr Status) String() string {
	s := strings.Builder{}
	for i, l := range "ITHSVNZC" {
		f := Status(0x80 >> i)
		if sr.Is(f) {
			s.WriteRune(l)
		} else {
			s.WriteRune(l + 'a' - 'A')
		}
	}
	return s.String()
}

// nzs sets the N and Z flags from the result and then sets S from N and V. The
// V flag must be correct before calling this function.
func (sr *Status) nzs(res uint8) {
	sr.Set(N, res&0x80 == 0x80)
	sr.Set(Z, res == 0)
	sr.sign()
}

// sign sets the S flag from the N and V flags.
func (sr *Status) sign() {
	sr.Set(S, sr.Is(N) != sr.Is(V))
}

// add sets the flags for 8bit addition. Carries are calculated for every bit
// position at once: bit 3 is the half carry and bit 7 is the full carry.
func (sr *Status) add(d, r, res uint8) {
	carries := d&r | r&^res | ^res&d
	overflow := d&r&^res | ^d&^r&res
	sr.Set(H, carries&0x08 == 0x08)
	sr.Set(C, carries&0x80 == 0x80)
	sr.Set(V, overflow&0x80 == 0x80)
	sr.nzs(res)
}

// sub sets the flags for 8bit subtraction. The chained argument is used for
// the subtract-with-carry instructions, which can clear the Z flag but never
// set it.
func (sr *Status) sub(d, r, res uint8, chained bool) {
	borrows := ^d&r | r&res | res&^d
	overflow := d&^r&^res | ^d&r&res
	sr.Set(H, borrows&0x08 == 0x08)
	sr.Set(C, borrows&0x80 == 0x80)
	sr.Set(V, overflow&0x80 == 0x80)
	sr.Set(N, res&0x80 == 0x80)
	if chained {
		if res != 0 {
			sr.Set(Z, false)
		}
	} else {
		sr.Set(Z, res == 0)
	}
	sr.sign()
}

// logic sets the flags for the logical instructions.
func (sr *Status) logic(res uint8) {
	sr.Set(V, false)
	sr.nzs(res)
}

// shift sets the flags for the right shift and rotate instructions. The carry
// argument is the bit shifted out of the register.
func (sr *Status) shift(res uint8, carry bool) {
	sr.Set(C, carry)
	sr.Set(N, res&0x80 == 0x80)
	sr.Set(Z, res == 0)
	sr.Set(V, sr.Is(N) != sr.Is(C))
	sr.sign()
}

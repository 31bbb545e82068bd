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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like fmt.Errorf() it
// takes a formatting pattern and placeholder values. Unlike fmt.Errorf() the
// pattern is retained and can be used to identify the error later on.
//
//	e := curated.Errorf("memory: address fault (%#04x)", addr)
//
//	if curated.Is(e, "memory: address fault (%#04x)") {
//		fmt.Println("true")
//	}
//
// The Has() function checks whether a pattern occurs anywhere in the error
// chain. Values that are themselves curated errors are considered part of the
// chain, as are errors wrapped by the standard library's %w verb.
//
// Patterns that callers are expected to test against should be declared as
// const strings in the package that creates them. For example, the cpu
// package declares the AddressFault and Terminated patterns.
//
// The Error() function normalises the message so that duplicate adjacent
// parts are removed. A part is a section of the message separated by ": ".
// This means that a function does not need to worry about whether the error
// it is wrapping already carries the same prefix:
//
//	curated.Errorf("avr: %v", curated.Errorf("avr: %v", "no program"))
//
// produces the message "avr: no program".
package curated

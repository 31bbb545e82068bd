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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and return, allowing
// the test to continue. The Demand functions report with t.Fatalf() and are
// useful when the values being tested are used by later parts of the test.
//
// ExpectSuccess and ExpectFailure interpret their argument according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is there because a nil error value reaches the function as an
// untyped nil.
//
// The RingWriter type implements io.Writer and keeps only the most recent
// bytes written. Useful for capturing the output of long running processes.
package test

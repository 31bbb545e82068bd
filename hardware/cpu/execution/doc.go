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

// Package execution holds the Result type, a snapshot of the CPU taken after
// an instruction has completed, and the Ring type, a fixed size history of
// results.
//
// The CPU does not keep a history of its own. A Ring, or any other type that
// satisfies the cpu.Tracer interface, can be attached to the CPU to collect
// results as they are produced.
package execution

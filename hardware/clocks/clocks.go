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

// Package clocks defines the clock speeds of common AVR devices. The CPU
// emulation has no concept of time, only of cycles. These values are used to
// relate cycles to real time, for example when sampling audio or when
// measuring the performance of the emulation.
package clocks

// Clock speeds in MHz.
const (
	Internal1MHz = 1.0
	Internal8MHz = 8.0
	Crystal16MHz = 16.0
	Crystal20MHz = 20.0
)

// Default is the clock speed assumed by the emulation.
const Default = Crystal16MHz

// CyclesPerSecond converts a clock speed in MHz to cycles per second.
func CyclesPerSecond(mhz float64) float64 {
	return mhz * 1000000
}

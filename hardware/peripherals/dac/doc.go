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

// Package dac implements an 8bit digital to analogue converter. The value of
// the DACR register is sampled at a fixed rate and the samples are written to
// a WAV file when the emulation ends.
//
// Samples are buffered in memory in their entirety and written to disk by
// End(). The package is therefore only suitable for short recordings.
package dac

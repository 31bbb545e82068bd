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

// Package adc implements the 10bit analogue to digital converter of the
// ATmega family. The register layout follows the ATmega328.
//
// Each of the eight input channels is connected to a Source. A Source can be
// a fixed level or sampled audio loaded from a WAV or MP3 file with LoadPCM().
// Sampled audio repeats when it reaches the end. Unconnected channels read as
// zero.
package adc

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

// Package eeprom implements the EEPROM controller of the ATmega family. The
// controller gives the program access to the EEPROM area of memory through
// the EEAR, EEDR and EECR registers.
//
// Writing to EEPROM requires the program to set the EEMPE bit and then, within
// four cycles, the EEPE bit. The EEPE bit remains set until the write has
// completed, which takes WriteCycles cycles.
//
// The contents of EEPROM can be loaded from and saved to a file on disk. The
// file is only written if the data has changed.
package eeprom

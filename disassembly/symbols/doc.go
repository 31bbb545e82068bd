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

// Package symbols keeps track of the names given to addresses in a program.
// There are two tables. The label table names program memory (word)
// addresses and the I/O table names data space addresses in the I/O area.
//
// The I/O table is populated with the canonical names of the registers used by
// the CPU itself. Peripherals can add names for their own registers with
// AddIO(). Labels are loaded from the output of avr-nm with ReadSymbolsFile().
package symbols

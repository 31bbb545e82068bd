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

// Package hardware is the base package for the AVR emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The AVR type is the root of the emulation and contains external references
// to all the device sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for continued
// execution) or it can be stepped one instruction at a time.
//
// Peripherals are attached with AddPeripheral(). The available peripherals
// are in the peripherals sub-packages.
package hardware

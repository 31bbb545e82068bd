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

// Package console implements a serial console peripheral. The register
// layout is a simplified version of the USART found in the ATmega family.
//
// Bytes written to the UDR register are sent to the output. Bytes received
// from the input are read from the UDR register one at a time. The RXC bit in
// the UCSRA register indicates that a byte is waiting and the receive
// interrupt is raised for as long as a byte is waiting, if the RXCIE bit in
// UCSRB is set.
//
// Input is read in a separate goroutine and passed to the emulation over a
// buffered channel. The emulation never waits for input.
//
// When the console is attached to the host terminal with NewHostConsole(), the
// terminal is put into cbreak mode so that key presses are received
// immediately. The terminal is restored by End().
package console

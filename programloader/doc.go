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

// Package programloader reads AVR program images from disk (or over HTTP) and
// copies them into program memory or EEPROM.
//
// Two formats are supported: raw binary, in which each pair of bytes is one
// little-endian program word, and Intel HEX. The format is normally decided
// by the file extension but can be forced with the format argument to
// NewLoader().
//
// Intel HEX files are interpreted as byte addressed images, the same as the
// files produced by avr-objcopy. Record types 00 (data), 01 (end of file), 02
// (extended segment address) and 04 (extended linear address) are understood.
// Record types 03 and 05 (start address) are accepted and ignored.
package programloader

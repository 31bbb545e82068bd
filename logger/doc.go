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

// Package logger is the central log for the emulation. Log entries are tagged
// with a short string indicating the part of the emulation that made the
// entry. Consecutive entries with identical tag and detail are collapsed into
// a single entry with a repeat count.
//
// Creating a log entry requires a Permission. The Allow value can be used
// when an entry should always be made. The preferences of an emulated device
// also implement Permission, which allows log entries made on behalf of a
// secondary instance to be suppressed.
//
// The package level functions operate on the central logger. A separate
// Logger can be created with NewLogger() which is useful for testing.
package logger

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

package logger

// Permission is implemented by anything that decides whether a log request
// creates an entry. The preferences of an AVR instance are the usual
// implementation, so that each instance can be silenced on its own.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow is the Permission for log entries that should always be made.
var Allow Permission = fixed(true)

// Deny is the Permission for components that should never log. For example, a
// peripheral created only to list its register names.
var Deny Permission = fixed(false)

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

// Package prefs facilitates the typed preference values used to configure an
// emulated device. Each type guards its value with an atomic value so that
// preferences can be read from a goroutine other than the one that set them.
//
// Values can be set directly with the Set() function, or indirectly through
// the command line stack. The command line stack is a way of passing
// preferences values from the command line to the part of the program that
// owns the preference. The format of the string given to
// PushCommandLineStack() is:
//
//	key::value; key::value
//
// The owner of a preference retrieves the value with GetCommandLinePref().
package prefs

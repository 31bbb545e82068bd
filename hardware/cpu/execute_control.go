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

package cpu

// NOP is also used for BREAK, DES, SPM, EIJMP, EICALL and for undefined
// opcodes.
func executeNOP(_ *CPU) {
}

func executeSLEEP(mc *CPU) {
	mc.Asleep = true
}

func executeWDR(mc *CPU) {
	mc.watchdog = mc.Cycles
}

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

package symbols

import (
	"io"
)

// ListSymbols outputs every symbol.
func (sym *Symbols) ListSymbols(output io.Writer) {
	sym.ListLabels(output)
	sym.ListIO(output)
}

// ListLabels outputs every label.
func (sym *Symbols) ListLabels(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	output.Write([]byte("Labels\n------\n"))
	output.Write([]byte(sym.label.String()))
}

// ListIO outputs the names of the I/O registers.
func (sym *Symbols) ListIO(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	output.Write([]byte("\nI/O Registers\n-------------\n"))
	output.Write([]byte(sym.io.String()))
}

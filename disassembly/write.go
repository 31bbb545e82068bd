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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopheravr/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool

	// only write entries that have been executed
	Executed bool

	// append the number of times the entry has been executed
	Counts bool
}

// column widths
const (
	widthBytecode = 11
	widthOperator = 6
)

// Write the disassembly to io.Writer. Only blessed entries are written unless
// the entry has been executed.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	level := EntryLevelBlessed
	if attr.Executed {
		level = EntryLevelExecuted
	}

	for _, e := range dsm.Entries(level) {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e.Label != "" {
		if _, err := fmt.Fprintf(output, "%s:\n", e.Label); err != nil {
			return curated.Errorf(DisasmError, err)
		}
	}

	s := fmt.Sprintf("%#04x  ", e.Address)
	if attr.ByteCode {
		s = fmt.Sprintf("%s%s  ", s, pad(e.Bytecode, widthBytecode))
	}

	if e.Operand == "" {
		s = fmt.Sprintf("%s%s", s, e.Operator)
	} else {
		s = fmt.Sprintf("%s%s %s", s, pad(e.Operator, widthOperator), e.Operand)
	}

	if attr.Counts && e.Level == EntryLevelExecuted {
		s = fmt.Sprintf("%s  ; %d", s, e.ExecutedCount)
	}

	if _, err := fmt.Fprintln(output, s); err != nil {
		return curated.Errorf(DisasmError, err)
	}

	return nil
}

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

// Package memvizdump writes a graphviz rendering of a snapshot of the CPU. The
// rendering is made by "github.com/bradleyjkemp/memviz" and can be converted
// to an image with the dot command:
//
//	dot -Tpng cpu.dot > cpu.png
package memvizdump

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
)

// MemvizError is the sentinal error pattern for the package.
const MemvizError = "memviz: %v"

// snapshot is the structure drawn by memviz. the register file is grouped in
// rows of eight to keep the graph readable
type snapshot struct {
	Result    string
	PC        uint16
	SP        uint16
	SREG      string
	Registers [4][8]uint8
}

func newSnapshot(result execution.Result) *snapshot {
	s := &snapshot{
		Result: result.String(),
		PC:     result.PC,
		SP:     result.SP,
		SREG:   sregString(result.SREG),
	}
	for i, v := range result.Registers {
		s.Registers[i/8][i%8] = v
	}
	return s
}

// status register bits from I to C. a clear bit is shown in lower case
func sregString(sreg uint8) string {
	const flags = "ithsvnzc"
	b := []byte(flags)
	for i := range b {
		if sreg&(0x80>>i) != 0 {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// Write the graphviz rendering of the result to the writer.
func Write(output io.Writer, result execution.Result) {
	memviz.Map(output, newSnapshot(result))
}

// WriteFile writes the graphviz rendering of the result to the named file.
func WriteFile(filename string, result execution.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}

	Write(f, result)

	if err := f.Close(); err != nil {
		return curated.Errorf(MemvizError, err)
	}
	return nil
}

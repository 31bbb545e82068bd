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

import (
	"bytes"
	"io"
)

// ANSI sequences used by the Colorizer
const (
	tagPen    = "\033[36m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of every
// line is drawn in a different colour to the detail.
//
// Only useful when the output is a terminal. The caller should check that
// with something like term.IsTerminal() before wrapping the output.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer
	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}
		if i := bytes.Index(l, []byte(": ")); i > 0 {
			b.WriteString(tagPen)
			b.Write(l[:i])
			b.WriteString(normalPen)
			b.Write(l[i:])
		} else {
			b.Write(l)
		}
	}

	_, err := c.out.Write(b.Bytes())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

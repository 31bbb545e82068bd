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

package console

import (
	"io"
	"os"

	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/logger"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Data space addresses of the console registers.
const (
	UCSRA = 0xc0
	UCSRB = 0xc1
	UDR   = 0xc6
)

// Bits in the UCSRA register.
const (
	RXC  = 0x80
	TXC  = 0x40
	UDRE = 0x20
)

// Bits in the UCSRB register.
const (
	RXCIE = 0x80
	RXEN  = 0x10
	TXEN  = 0x08
)

// VectorRX is the interrupt vector raised when a byte is waiting.
const VectorRX = 18

// the number of bytes that can be received before the input goroutine
// blocks
const inputBuffer = 256

// the input channel is checked once every pollInterval cycles
const pollInterval = 64

// Console implements the peripherals.Peripheral interface.
type Console struct {
	perm logger.Permission

	output io.Writer
	input  chan uint8

	// the host terminal. nil if the console is not attached to a terminal
	tty *term.Term

	irq cpu.Interrupter

	ucsrb uint8

	// the byte waiting to be read from UDR
	rx    uint8
	hasRx bool

	poll int
}

// NewConsole is the preferred method of initialisation for the Console type.
// Input is read from the input argument until it returns an error (including
// io.EOF). The input argument can be nil, in which case the console will never
// receive a byte.
func NewConsole(perm logger.Permission, input io.Reader, output io.Writer) *Console {
	con := &Console{
		perm:   perm,
		output: output,
		input:  make(chan uint8, inputBuffer),
	}

	if input != nil {
		go con.read(input)
	}

	return con
}

// NewHostConsole creates a console that is connected to the standard input
// and output of the process. If standard input is a terminal then it is put
// into cbreak mode.
func NewHostConsole(perm logger.Permission) (*Console, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		logger.Log(perm, "console", "stdin is not a terminal")
		return NewConsole(perm, os.Stdin, os.Stdout), nil
	}

	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, err
	}

	con := NewConsole(perm, tty, os.Stdout)
	con.tty = tty
	logger.Log(perm, "console", "terminal in cbreak mode")

	return con, nil
}

func (con *Console) read(input io.Reader) {
	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			con.input <- b[0]
		}
		if err != nil {
			if err != io.EOF {
				logger.Log(con.perm, "console", err)
			}
			return
		}
	}
}

// Label implements the peripherals.Peripheral interface.
func (con *Console) Label() string {
	return "console"
}

// Symbols implements the peripherals.Symbolic interface.
func (con *Console) Symbols() map[uint16]string {
	return map[uint16]string{
		UCSRA: "UCSRA",
		UCSRB: "UCSRB",
		UDR:   "UDR",
	}
}

// Attach implements the peripherals.Peripheral interface.
func (con *Console) Attach(mem *memory.Memory, mc *cpu.CPU) error {
	con.irq = mc
	return mem.AddBinding(memory.Binding{
		Label: con.Label(),
		Start: UCSRA,
		End:   UDR,
		Clock: con.clock,
		Read:  con.readRegister,
		Write: con.writeRegister,
	})
}

// Reset implements the peripherals.Resetter interface. A byte waiting to be
// read is lost.
func (con *Console) Reset() {
	con.ucsrb = 0
	con.hasRx = false
	con.poll = 0
}

// End implements the peripherals.Ender interface.
func (con *Console) End() error {
	if con.tty == nil {
		return nil
	}
	tty := con.tty
	con.tty = nil
	if err := tty.Restore(); err != nil {
		return err
	}
	logger.Log(con.perm, "console", "terminal restored")
	return tty.Close()
}

func (con *Console) clock() {
	if !con.hasRx {
		con.poll++
		if con.poll < pollInterval {
			return
		}
		con.poll = 0

		select {
		case b := <-con.input:
			con.rx = b
			con.hasRx = true
		default:
			return
		}
	}

	if con.ucsrb&(RXCIE|RXEN) == RXCIE|RXEN {
		con.irq.RaiseInterrupt(VectorRX)
	}
}

func (con *Console) readRegister(address uint16) uint8 {
	switch address {
	case UCSRA:
		v := uint8(UDRE | TXC)
		if con.hasRx {
			v |= RXC
		}
		return v
	case UCSRB:
		return con.ucsrb
	case UDR:
		if !con.hasRx {
			return 0
		}
		con.hasRx = false
		con.irq.ClearInterrupt(VectorRX)
		return con.rx
	}
	return 0
}

func (con *Console) writeRegister(address uint16, data uint8) {
	switch address {
	case UCSRB:
		con.ucsrb = data
		if data&RXCIE == 0 {
			con.irq.ClearInterrupt(VectorRX)
		}
	case UDR:
		if con.ucsrb&TXEN == TXEN && con.output != nil {
			if _, err := con.output.Write([]byte{data}); err != nil {
				logger.Log(con.perm, "console", err)
			}
		}
	}
}

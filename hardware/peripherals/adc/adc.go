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

package adc

import (
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/logger"
)

// Data space addresses of the ADC registers.
const (
	ADCL   = 0x78
	ADCH   = 0x79
	ADCSRA = 0x7a
	ADCSRB = 0x7b
	ADMUX  = 0x7c
)

// Bits in the ADCSRA register.
const (
	ADEN  = 0x80
	ADSC  = 0x40
	ADATE = 0x20
	ADIF  = 0x10
	ADIE  = 0x08
	ADPS  = 0x07
)

// Bits in the ADMUX register.
const (
	ADLAR = 0x20
	MUX   = 0x0f
)

// VectorComplete is the interrupt vector raised when a conversion completes
// and the ADIE bit is set.
const VectorComplete = 21

// NumChannels is the number of input channels.
const NumChannels = 8

// a conversion takes 13 ADC clocks
const conversionClocks = 13

// Sentinal error patterns.
const (
	ADCError = "adc: %v"
)

// ADC implements the peripherals.Peripheral interface.
type ADC struct {
	perm logger.Permission
	irq  cpu.Interrupter

	sources [NumChannels]Source

	adcsra uint8
	adcsrb uint8
	admux  uint8
	result uint16

	// number of cycles remaining in the current conversion. zero if no
	// conversion is in progress
	converting int

	// number of cycles since reset. used to index into sampled sources
	cycle uint64
}

// NewADC is the preferred method of initialisation for the ADC type.
func NewADC(perm logger.Permission) *ADC {
	return &ADC{perm: perm}
}

// SetSource connects a source to the input channel. A nil source disconnects
// the channel.
func (adc *ADC) SetSource(channel int, src Source) error {
	if channel < 0 || channel >= NumChannels {
		return curated.Errorf(ADCError, "channel out of range")
	}
	adc.sources[channel] = src
	logger.Logf(adc.perm, "adc", "channel %d: %v", channel, src)
	return nil
}

// Label implements the peripherals.Peripheral interface.
func (adc *ADC) Label() string {
	return "adc"
}

// Symbols implements the peripherals.Symbolic interface.
func (adc *ADC) Symbols() map[uint16]string {
	return map[uint16]string{
		ADCL:   "ADCL",
		ADCH:   "ADCH",
		ADCSRA: "ADCSRA",
		ADCSRB: "ADCSRB",
		ADMUX:  "ADMUX",
	}
}

// Attach implements the peripherals.Peripheral interface.
func (adc *ADC) Attach(mem *memory.Memory, mc *cpu.CPU) error {
	adc.irq = mc

	// servicing the interrupt clears the interrupt flag
	err := mc.RegisterVector(VectorComplete, func() {
		adc.adcsra &^= ADIF
	})
	if err != nil {
		return err
	}

	return mem.AddBinding(memory.Binding{
		Label: adc.Label(),
		Start: ADCL,
		End:   ADMUX,
		Clock: adc.clock,
		Read:  adc.readRegister,
		Write: adc.writeRegister,
	})
}

// Reset implements the peripherals.Resetter interface.
func (adc *ADC) Reset() {
	adc.adcsra = 0
	adc.adcsrb = 0
	adc.admux = 0
	adc.result = 0
	adc.converting = 0
	adc.cycle = 0
}

// the number of CPU cycles in one ADC clock.
func (adc *ADC) prescale() int {
	ps := adc.adcsra & ADPS
	if ps == 0 {
		return 2
	}
	return 1 << ps
}

func (adc *ADC) start() {
	adc.converting = conversionClocks * adc.prescale()
}

func (adc *ADC) clock() {
	adc.cycle++

	if adc.converting == 0 {
		return
	}
	adc.converting--
	if adc.converting > 0 {
		return
	}

	var level float32 = -1
	if ch := int(adc.admux & MUX); ch < NumChannels && adc.sources[ch] != nil {
		level = adc.sources[ch].Level(adc.cycle)
	}
	adc.result = quantise(level)

	adc.adcsra |= ADIF
	if adc.adcsra&ADIE == ADIE {
		adc.irq.RaiseInterrupt(VectorComplete)
	}

	if adc.adcsra&ADATE == ADATE {
		adc.start()
	}
}

// quantise a level in the range -1 to 1 to a 10bit value.
func quantise(level float32) uint16 {
	v := (level+1)/2*1023 + 0.5
	if v < 0 {
		return 0
	}
	if v > 1023 {
		return 1023
	}
	return uint16(v)
}

func (adc *ADC) adjusted() uint16 {
	if adc.admux&ADLAR == ADLAR {
		return adc.result << 6
	}
	return adc.result
}

func (adc *ADC) readRegister(address uint16) uint8 {
	switch address {
	case ADCL:
		return uint8(adc.adjusted())
	case ADCH:
		return uint8(adc.adjusted() >> 8)
	case ADCSRA:
		v := adc.adcsra &^ ADSC
		if adc.converting > 0 {
			v |= ADSC
		}
		return v
	case ADCSRB:
		return adc.adcsrb
	case ADMUX:
		return adc.admux
	}
	return 0
}

func (adc *ADC) writeRegister(address uint16, data uint8) {
	switch address {
	case ADCSRA:
		// the interrupt flag is cleared by writing a one to it
		flag := adc.adcsra & ADIF
		if data&ADIF == ADIF {
			flag = 0
			adc.irq.ClearInterrupt(VectorComplete)
		}
		adc.adcsra = data&^(ADIF|ADSC) | flag

		if data&ADEN == 0 {
			adc.converting = 0
			return
		}

		if data&ADIE == 0 {
			adc.irq.ClearInterrupt(VectorComplete)
		} else if flag == ADIF {
			adc.irq.RaiseInterrupt(VectorComplete)
		}

		if data&ADSC == ADSC && adc.converting == 0 {
			adc.start()
		}
	case ADCSRB:
		adc.adcsrb = data
	case ADMUX:
		adc.admux = data
	}
}

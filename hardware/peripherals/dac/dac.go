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

package dac

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/clocks"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/logger"
)

// DACR is the data space address of the DAC register.
const DACR = 0xe0

// DefaultSampleRate is the sample rate used when none is specified.
const DefaultSampleRate = 22050

// the value of the DAC register at reset. the mid-point of an unsigned 8bit
// sample is silence
const silence = 0x80

// sentinal error patterns
const (
	DACError = "dac: %v"
)

// DAC implements the peripherals.Peripheral interface.
type DAC struct {
	perm     logger.Permission
	filename string

	sampleRate      int
	cyclesPerSample float64

	value uint8

	// number of cycles since the last sample
	count float64

	samples []int
}

// NewDAC is the preferred method of initialisation for the DAC type. The
// samples will be written to the named file by End(). A sampleRate of zero
// or less will be replaced by DefaultSampleRate. The mhz argument is the
// clock speed of the emulated AVR and can also be zero, in which case
// clocks.Default is assumed.
func NewDAC(perm logger.Permission, filename string, sampleRate int, mhz float64) *DAC {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if mhz <= 0 {
		mhz = clocks.Default
	}
	return &DAC{
		perm:            perm,
		filename:        filename,
		sampleRate:      sampleRate,
		cyclesPerSample: clocks.CyclesPerSecond(mhz) / float64(sampleRate),
		value:           silence,
	}
}

// Label implements the peripherals.Peripheral interface.
func (dac *DAC) Label() string {
	return "dac"
}

// Symbols implements the peripherals.Symbolic interface.
func (dac *DAC) Symbols() map[uint16]string {
	return map[uint16]string{DACR: "DACR"}
}

// Attach implements the peripherals.Peripheral interface.
func (dac *DAC) Attach(mem *memory.Memory, _ *cpu.CPU) error {
	return mem.AddBinding(memory.Binding{
		Label: dac.Label(),
		Start: DACR,
		End:   DACR,
		Clock: dac.clock,
		Read: func(_ uint16) uint8 {
			return dac.value
		},
		Write: func(_ uint16, data uint8) {
			dac.value = data
		},
	})
}

// Reset implements the peripherals.Resetter interface. Samples that have
// already been taken are kept.
func (dac *DAC) Reset() {
	dac.value = silence
	dac.count = 0
}

// NumSamples returns the number of samples taken so far.
func (dac *DAC) NumSamples() int {
	return len(dac.samples)
}

func (dac *DAC) clock() {
	dac.count++
	if dac.count >= dac.cyclesPerSample {
		dac.count -= dac.cyclesPerSample
		dac.samples = append(dac.samples, int(dac.value))
	}
}

// End implements the peripherals.Ender interface. The samples are written to
// disk as an 8bit mono WAV file.
func (dac *DAC) End() (rerr error) {
	f, err := os.Create(dac.filename)
	if err != nil {
		return curated.Errorf(DACError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(DACError, err)
		}
	}()

	enc := wav.NewEncoder(f, dac.sampleRate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  dac.sampleRate,
		},
		Data:           dac.samples,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(DACError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(DACError, err)
	}

	logger.Logf(dac.perm, "dac", "%d samples written to %s", len(dac.samples), dac.filename)

	return nil
}

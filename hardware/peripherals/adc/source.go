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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/hardware/clocks"
	"github.com/jetsetilly/gopheravr/logger"
)

// Source is the input to an ADC channel. The value returned by Level() should
// be in the range -1 to 1, where -1 is ground and 1 is the reference voltage.
type Source interface {
	Level(cycle uint64) float32
}

// Level is a Source with a fixed value.
type Level float32

// Level implements the Source interface.
func (l Level) Level(_ uint64) float32 {
	return float32(l)
}

func (l Level) String() string {
	return fmt.Sprintf("level %.2f", float32(l))
}

// PCM is a Source of sampled audio. Only the first channel of multi-channel
// audio is kept.
type PCM struct {
	Data       []float32
	SampleRate float64

	cyclesPerSample float64
}

// NewPCM is the preferred method of initialisation for the PCM type. The mhz
// argument is the clock speed of the emulated AVR. If it is zero or less then
// clocks.Default is used.
func NewPCM(data []float32, sampleRate float64, mhz float64) *PCM {
	if mhz <= 0 {
		mhz = clocks.Default
	}
	return &PCM{
		Data:            data,
		SampleRate:      sampleRate,
		cyclesPerSample: clocks.CyclesPerSecond(mhz) / sampleRate,
	}
}

// Level implements the Source interface.
func (p *PCM) Level(cycle uint64) float32 {
	if len(p.Data) == 0 {
		return -1
	}
	idx := uint64(float64(cycle)/p.cyclesPerSample) % uint64(len(p.Data))
	return p.Data[idx]
}

func (p *PCM) String() string {
	return fmt.Sprintf("pcm %d samples at %.0fHz", len(p.Data), p.SampleRate)
}

// LoadPCM loads sampled audio from a WAV or MP3 file. The type of file is
// decided by the file extension.
func LoadPCM(perm logger.Permission, filename string, mhz float64) (*PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ADCError, err)
	}
	defer f.Close()

	var data []float32
	var sampleRate float64

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return nil, curated.Errorf(ADCError, "wav: not a valid wav file")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf(ADCError, fmt.Errorf("wav: %w", err))
		}
		floatBuf := buf.AsFloat32Buffer()

		// 8bit wav data is unsigned
		var offset float32
		if dec.BitDepth == 8 {
			offset = -1
		}

		// copy first channel only of data stream
		data = make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			data = append(data, floatBuf.Data[i]+offset)
		}

		sampleRate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, curated.Errorf(ADCError, fmt.Errorf("mp3: %w", err))
		}

		// the decoded stream is always 16bit little endian stereo. a sample
		// is therefore four bytes and the left channel is the first two
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				data = append(data, float32(s)/32768)
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				return nil, curated.Errorf(ADCError, fmt.Errorf("mp3: %w", err))
			}
		}

		sampleRate = float64(dec.SampleRate())

	default:
		return nil, curated.Errorf(ADCError, fmt.Sprintf("unsupported file type (%s)", filepath.Ext(filename)))
	}

	if len(data) == 0 || sampleRate <= 0 {
		return nil, curated.Errorf(ADCError, "no sample data")
	}

	p := NewPCM(data, sampleRate, mhz)
	logger.Logf(perm, "adc", "loaded %s from %s", p, filename)

	return p, nil
}

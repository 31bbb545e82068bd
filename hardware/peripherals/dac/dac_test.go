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

package dac_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/memory"
	"github.com/jetsetilly/gopheravr/hardware/peripherals/dac"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/logger"
	"github.com/jetsetilly/gopheravr/test"
)

func TestRecording(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Logging.Set(false))
	mem := memory.NewMemory(p)
	mc := cpu.NewCPU(p, mem)

	fn := filepath.Join(t.TempDir(), "dac.wav")

	// 16MHz clock and a 8kHz sample rate is 2000 cycles per sample
	d := dac.NewDAC(p, fn, 8000, 16)
	test.DemandSuccess(t, d.Attach(mem, mc))
	test.ExpectEquality(t, mem.Read(dac.DACR), 0x80)

	mem.Write(dac.DACR, 0x10)
	test.ExpectEquality(t, mem.Read(dac.DACR), 0x10)
	for rangeIdx := 0; rangeIdx < 4000; rangeIdx++ {
		mem.Clock()
	}
	test.ExpectEquality(t, d.NumSamples(), 2)

	mem.Write(dac.DACR, 0xf0)
	for rangeIdx := 0; rangeIdx < 3999; rangeIdx++ {
		mem.Clock()
	}
	test.ExpectEquality(t, d.NumSamples(), 3)
	mem.Clock()
	test.ExpectEquality(t, d.NumSamples(), 4)

	d.Reset()
	test.ExpectEquality(t, mem.Read(dac.DACR), 0x80)

	test.DemandSuccess(t, d.End())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, 8000)
	test.ExpectEquality(t, dec.NumChans, 1)
	test.ExpectEquality(t, dec.BitDepth, 8)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 4)
	test.ExpectEquality(t, buf.Data[0], 0x10)
	test.ExpectEquality(t, buf.Data[1], 0x10)
	test.ExpectEquality(t, buf.Data[2], 0xf0)
	test.ExpectEquality(t, buf.Data[3], 0xf0)
}

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "dac.wav")
	d := dac.NewDAC(logger.Allow, fn, 0, 0)
	test.ExpectEquality(t, d.Label(), "dac")

	// directory does not exist
	test.ExpectFailure(t, d.End())
}

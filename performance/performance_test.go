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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/performance"
	"github.com/jetsetilly/gopheravr/programloader"
	"github.com/jetsetilly/gopheravr/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(32000000, 2.0, 16.0)
	test.ExpectApproximate(t, mhz, 16.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	mhz, accuracy = performance.CalcMHz(8000000, 1.0, 16.0)
	test.ExpectApproximate(t, mhz, 8.0, 0.001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.001)

	mhz, accuracy = performance.CalcMHz(1000, 0, 16.0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileTrace)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	performance.LeadTime = 10 * time.Millisecond

	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Logging.Set(false))

	avr, err := hardware.NewAVR(prefs)
	test.DemandSuccess(t, err)

	// NOP followed by RJMP -2
	data := []byte{0x00, 0x00, 0xfe, 0xcf}
	test.DemandSuccess(t, avr.AttachProgram(programloader.NewLoaderFromData("test.bin", data, "")))

	w := &strings.Builder{}
	test.DemandSuccess(t, performance.Check(w, performance.ProfileNone, avr, "50ms"))
	test.ExpectSuccess(t, strings.Contains(w.String(), " MHz ("))
	test.ExpectInequality(t, avr.CPU.Cycles, 0)

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, avr, "fifty"))
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "unused", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}

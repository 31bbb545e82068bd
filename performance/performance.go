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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/govern"
	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/clocks"
)

// PerformanceError is the sentinal error pattern for the package.
const PerformanceError = "performance: %v"

// LeadTime is the amount of time the emulation runs for before measurement
// starts. This gives the host time to settle down.
var LeadTime = 2 * time.Second

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator running the program already attached
// to the AVR.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
//
// If the program ends before the duration has elapsed then the measurement is
// made over the time the program ran for. The measurement is written to the
// output even if the program ended with an error.
func Check(output io.Writer, profile Profile, avr *hardware.AVR, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var startCycles uint64
	var startTime time.Time

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has elapsed. buffered so that the timers never
		// block if the emulation has already ended
		timerChan := make(chan bool, 2)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		startCycles = avr.CPU.Cycles
		startTime = time.Now()

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions
		performanceBrake := 0

		return avr.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// lead time has concluded. measurement starts now
				startCycles = avr.CPU.Cycles
				startTime = time.Now()
			default:
			}

			return govern.Running, nil
		})
	}

	runErr := RunProfiler(profile, "performance", runner)

	elapsed := time.Since(startTime).Seconds()
	numCycles := avr.CPU.Cycles - startCycles

	mhz, accuracy := CalcMHz(numCycles, elapsed, clocks.Default)
	output.Write([]byte(fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, numCycles, elapsed, accuracy)))

	if runErr != nil && !errors.Is(runErr, timedOut) {
		return curated.Errorf(PerformanceError, runErr)
	}

	return nil
}

// CalcMHz takes the number of cycles and duration (in seconds) and returns
// the effective clock speed in MHz and the accuracy of that value, as a
// percentage of the nominal clock speed.
func CalcMHz(numCycles uint64, duration float64, nominal float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(numCycles) / duration / 1000000
	if nominal > 0 {
		accuracy = 100 * mhz / nominal
	}
	return mhz, accuracy
}

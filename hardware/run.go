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

package hardware

import (
	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/govern"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The run ends when
// the continueCheck function returns govern.Ending or when the CPU returns an
// error. A CPU terminated by returning to the reset vector (see the
// ExitOnReset preference) is a normal end and no error is returned.
func (avr *AVR) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if _, err := avr.CPU.Step(); err != nil {
				if curated.Is(err, cpu.Terminated) {
					return nil
				}
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("avr: unsupported emulation state (%d) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the emulation running until at least the specified
// number of cycles have been consumed. The continueCheck function is passed
// the number of cycles consumed so far and can be nil.
func (avr *AVR) RunForCycles(numCycles uint64, continueCheck func(cycles uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ uint64) (govern.State, error) { return govern.Running, nil }
	}

	var consumed uint64

	state := govern.Running
	for consumed < numCycles && state != govern.Ending {
		if state == govern.Running {
			n, err := avr.CPU.Step()
			if err != nil {
				if curated.Is(err, cpu.Terminated) {
					return nil
				}
				return err
			}
			consumed += uint64(n)
		}

		var err error
		state, err = continueCheck(consumed)
		if err != nil {
			return err
		}
	}

	return nil
}

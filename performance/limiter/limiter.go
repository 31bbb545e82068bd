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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(100)
//	defer lim.End()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		doSomething()
//	}
//
// The CycleLimiter type uses a Limiter to restrict the emulation to a clock
// speed. The emulation runs as quickly as possible until it has used up the
// cycles allowed for the current tick.
package limiter

import (
	"time"

	"github.com/jetsetilly/gopheravr/hardware/clocks"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	ticksPerSecond int
	secondsPerTick time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for Limiter type. A
// value of less than one is treated as one.
func NewLimiter(ticksPerSecond int) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(ticksPerSecond)

	// run ticker concurrently
	go func() {
		adjustedSecondsPerTick := lim.secondsPerTick
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjustedSecondsPerTick)
			nt := time.Now()
			adjustedSecondsPerTick -= nt.Sub(t) - lim.secondsPerTick
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the Limiter waits. Should not be called
// after the first call to Wait().
func (lim *Limiter) SetLimit(ticksPerSecond int) {
	lim.ticksPerSecond = max(ticksPerSecond, 1)
	lim.secondsPerTick = time.Second / time.Duration(lim.ticksPerSecond)
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// End stops the ticker. The Limiter should not be used after End() has been
// called.
func (lim *Limiter) End() {
	close(lim.quit)
}

// TicksPerSecond used by CycleLimiter.
const TicksPerSecond = 100

// CycleLimiter restricts the number of cycles that can be consumed per second.
type CycleLimiter struct {
	lim *Limiter

	cyclesPerTick uint64
	next          uint64
}

// NewCycleLimiter is the preferred method of initialisation for the
// CycleLimiter type. The clock speed is in MHz.
func NewCycleLimiter(mhz float64) *CycleLimiter {
	c := &CycleLimiter{
		lim:           NewLimiter(TicksPerSecond),
		cyclesPerTick: max(uint64(clocks.CyclesPerSecond(mhz)/TicksPerSecond), 1),
	}
	c.next = c.cyclesPerTick
	return c
}

// Limit blocks until the number of cycles is allowed. The cycles argument is
// the total number of cycles consumed by the emulation and should never go
// backwards.
func (c *CycleLimiter) Limit(cycles uint64) {
	for cycles >= c.next {
		c.lim.Wait()
		c.next += c.cyclesPerTick
	}
}

// Reset should be called if the cycle count of the emulation is reset.
func (c *CycleLimiter) Reset() {
	c.next = c.cyclesPerTick
}

// End stops the underlying Limiter.
func (c *CycleLimiter) End() {
	c.lim.End()
}

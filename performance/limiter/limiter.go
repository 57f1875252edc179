// This file is part of cgol.
//
// cgol is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cgol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cgol.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace the frames of an animated display.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(30)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		showGrid()
//	}
package limiter

import (
	"fmt"
	"time"
)

// Limiter will trigger at a fixed number of events per second.
type Limiter struct {
	eventsPerSecond int
	ticker          *time.Ticker
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(eventsPerSecond int) (*Limiter, error) {
	lim := &Limiter{}
	if err := lim.SetLimit(eventsPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

func interval(eventsPerSecond int) (time.Duration, error) {
	if eventsPerSecond < 1 {
		return 0, fmt.Errorf("limiter: rate must be positive (%d)", eventsPerSecond)
	}
	return time.Second / time.Duration(eventsPerSecond), nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(eventsPerSecond int) error {
	d, err := interval(eventsPerSecond)
	if err != nil {
		return err
	}
	lim.eventsPerSecond = eventsPerSecond
	if lim.ticker == nil {
		lim.ticker = time.NewTicker(d)
	} else {
		lim.ticker.Reset(d)
	}
	return nil
}

// Limit returns the current rate.
func (lim *Limiter) Limit() int {
	return lim.eventsPerSecond
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. It must not be used after it has been stopped.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}

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

package accelerator

import (
	"context"
	"fmt"
	"time"

	"github.com/cgol-xlr/cgol/logger"
)

// Default values for the Channel's polling fields.
const (
	DefaultPollInterval = 100 * time.Microsecond
	DefaultTimeout      = 5 * time.Second
)

// Channel drives the accelerator's register protocol. A Channel is not safe
// for concurrent use.
type Channel struct {
	bus      Bus
	regsBase uint32

	// the time between reads of the DONE register in Wait()
	PollInterval time.Duration

	// the time Wait() will wait for the DONE register to be set before giving
	// up with ErrTimeout
	Timeout time.Duration

	cfg        Config
	configured bool

	// a run is in flight when started is true and completed is false. DONE is
	// level sensitive and remains set from the previous run until the device
	// sees the next START so a read of DONE is only meaningful after a start
	started   bool
	completed bool
}

// NewChannel is the preferred method of initialisation for the Channel type.
// The regsBase argument is the address of the register block on the bus.
func NewChannel(bus Bus, regsBase uint32) *Channel {
	return &Channel{
		bus:          bus,
		regsBase:     regsBase,
		PollInterval: DefaultPollInterval,
		Timeout:      DefaultTimeout,
	}
}

func (c *Channel) read(r Register) (uint32, error) {
	addr := c.regsBase + r.Offset()
	v, err := c.bus.Read32(addr)
	if err != nil {
		logger.Logf(logger.Allow, "xlr", "read of %s (%08x) failed: %v", r, addr, err)
		return 0, fmt.Errorf("xlr: %w: %s: %w", ErrBus, r, err)
	}
	return v, nil
}

func (c *Channel) write(r Register, val uint32) error {
	addr := c.regsBase + r.Offset()
	if err := c.bus.Write32(addr, val); err != nil {
		logger.Logf(logger.Allow, "xlr", "write of %s (%08x) failed: %v", r, addr, err)
		return fmt.Errorf("xlr: %w: %s: %w", ErrBus, r, err)
	}
	return nil
}

// InFlight returns true if a start has been issued and completion has not yet
// been observed.
func (c *Channel) InFlight() bool {
	return c.started && !c.completed
}

// Configure writes the host->device registers. It is not possible to change
// the configuration while a run is in flight.
func (c *Channel) Configure(cfg Config) error {
	if c.InFlight() {
		// the device may have finished without anyone polling
		done, err := c.PollDone()
		if err != nil {
			return err
		}
		if !done {
			return fmt.Errorf("xlr: %w: cannot configure while a run is in flight", ErrBusy)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// once the first register has been written the previous configuration
	// no longer exists in the device
	c.configured = false
	c.started = false
	c.completed = false

	for _, w := range []struct {
		r   Register
		val uint32
	}{
		{GridBaseAddr, cfg.GridBaseAddr},
		{GridWidth, cfg.Width},
		{GridHeight, cfg.Height},
		{NumItr, cfg.NumIterations},
	} {
		if err := c.write(w.r, w.val); err != nil {
			return err
		}
	}

	c.cfg = cfg
	c.configured = true

	logger.Logf(logger.Allow, "xlr", "configured: %s", cfg)

	return nil
}

// Config returns the most recent configuration written by Configure(). The
// boolean return value is false if there is no valid configuration.
func (c *Channel) Config() (Config, bool) {
	return c.cfg, c.configured
}

// Start triggers the device. Configure() must have been called since the
// previous start.
func (c *Channel) Start() error {
	if !c.configured {
		return fmt.Errorf("xlr: %w", ErrNotConfigured)
	}
	if c.started {
		return fmt.Errorf("xlr: %w: already started with this configuration", ErrBusy)
	}

	if err := c.write(Start, 1); err != nil {
		return err
	}

	c.started = true
	c.completed = false

	return nil
}

// PollDone reads the DONE register once. It returns false without accessing
// the bus if there has been no start since the most recent configuration.
func (c *Channel) PollDone() (bool, error) {
	if !c.started {
		return false, nil
	}
	if c.completed {
		return true, nil
	}

	v, err := c.read(Done)
	if err != nil {
		return false, err
	}

	// any nonzero value indicates completion
	c.completed = v != 0
	return c.completed, nil
}

// Wait polls the DONE register until it is set, the Timeout is reached or the
// context is cancelled. Wait never accesses grid memory.
func (c *Channel) Wait(ctx context.Context) error {
	if !c.started {
		return fmt.Errorf("xlr: %w: wait without start", ErrNotConfigured)
	}

	timeout := time.NewTimer(c.Timeout)
	defer timeout.Stop()

	poll := time.NewTicker(max(c.PollInterval, time.Microsecond))
	defer poll.Stop()

	for {
		done, err := c.PollDone()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "xlr", "wait abandoned: %v", ctx.Err())
			return fmt.Errorf("xlr: %w", ctx.Err())
		case <-timeout.C:
			logger.Logf(logger.Allow, "xlr", "no DONE after %v", c.Timeout)
			return fmt.Errorf("xlr: %w: no DONE after %v", ErrTimeout, c.Timeout)
		case <-poll.C:
		}
	}
}

// Run configures the device, starts it and waits for it to finish.
func (c *Channel) Run(ctx context.Context, cfg Config) error {
	if err := c.Configure(cfg); err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		return err
	}
	return c.Wait(ctx)
}

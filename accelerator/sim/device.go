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

package sim

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
)

// Memory is the device's view of the address space.
type Memory interface {
	Load32(addr uint32) (uint32, error)
	Store32(addr uint32, val uint32) error
}

// Layout is the order in which the device expects cells to be packed into a
// word.
type Layout int

// List of valid Layout values. LSBFirst matches the grid package. MSBFirst
// is deliberately incompatible and is used to show that a layout mismatch
// between host and device is detected.
const (
	LSBFirst Layout = iota
	MSBFirst
)

func (l Layout) String() string {
	switch l {
	case LSBFirst:
		return "LSB first"
	case MSBFirst:
		return "MSB first"
	}
	return "unknown layout"
}

// Device is a simulated accelerator. The exported fields should be set
// before the device is started and not changed while it is running.
type Device struct {
	// registers are accessed by the host and by the engine goroutine
	regs [accelerator.NumRegisters]atomic.Uint32

	mem Memory

	// the boundary policy is fixed in the hardware. there is no register for
	// it
	Boundary grid.Boundary

	// the cell packing expected by the engine
	Layout Layout

	// the time taken to compute each generation
	Latency time.Duration

	// a stalled device never sets DONE
	Stall bool

	crit    sync.Mutex
	running bool
	runs    int
	wg      sync.WaitGroup
}

// NewDevice is the preferred method of initialisation for the Device type.
// The device must be attached to a Bus before it is started.
func NewDevice(boundary grid.Boundary) *Device {
	return &Device{
		Boundary: boundary,
	}
}

func (dev *Device) attach(mem Memory) {
	dev.mem = mem
}

// Read implements a peripheral read of the register at the offset from the
// register window.
func (dev *Device) Read(offset uint32) (uint32, bool, string) {
	r, ok := accelerator.RegisterAt(offset)
	if !ok {
		return 0, false, ""
	}
	return dev.regs[r].Load(), true, ""
}

// Write implements a peripheral write of the register at the offset from the
// register window.
func (dev *Device) Write(offset uint32, val uint32) (bool, string) {
	r, ok := accelerator.RegisterAt(offset)
	if !ok {
		return false, ""
	}

	switch r {
	case accelerator.Done:
		return true, "write to DONE ignored"

	case accelerator.Start:
		dev.regs[r].Store(val)
		if val&0x01 == 0x00 {
			return true, ""
		}
		return true, dev.start()
	}

	dev.regs[r].Store(val)

	return true, fmt.Sprintf("%s = %08x", r, val)
}

func (dev *Device) start() string {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.running {
		return "START ignored: run in progress"
	}
	if dev.mem == nil {
		return "START ignored: device is not attached to a bus"
	}

	// DONE is cleared as soon as the device sees START
	dev.regs[accelerator.Done].Store(0)

	cfg := accelerator.Config{
		GridBaseAddr:  dev.regs[accelerator.GridBaseAddr].Load(),
		Width:         dev.regs[accelerator.GridWidth].Load(),
		Height:        dev.regs[accelerator.GridHeight].Load(),
		NumIterations: dev.regs[accelerator.NumItr].Load(),
	}

	dev.running = true
	dev.runs++
	dev.wg.Add(1)
	go dev.run(cfg)

	return fmt.Sprintf("start: %s", cfg)
}

func (dev *Device) run(cfg accelerator.Config) {
	defer dev.wg.Done()

	err := dev.compute(cfg)

	dev.crit.Lock()
	dev.running = false
	dev.crit.Unlock()

	if err != nil {
		logger.Logf(logger.Allow, "xlr sim", "run abandoned: %v", err)
		return
	}
	if dev.Stall {
		logger.Log(logger.Allow, "xlr sim", "stalled: DONE will not be set")
		return
	}

	dev.regs[accelerator.Done].Store(1)
}

func (dev *Device) compute(cfg accelerator.Config) error {
	if dev.Stall {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e := newEngine(dev.mem, cfg, dev.Boundary, dev.Layout)
	for range cfg.NumIterations {
		if dev.Latency > 0 {
			time.Sleep(dev.Latency)
		}
		if err := e.generation(); err != nil {
			return err
		}
	}

	return nil
}

// Running returns true if the engine is computing generations.
func (dev *Device) Running() bool {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.running
}

// Runs returns the number of times the device has been started.
func (dev *Device) Runs() int {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.runs
}

// Wait blocks until the engine is no longer running.
func (dev *Device) Wait() {
	dev.wg.Wait()
}

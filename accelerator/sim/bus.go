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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/logger"
)

// ErrFault is returned by the Bus for any access that cannot be completed.
// The fault is also recorded in the fault log.
var ErrFault = errors.New("bus fault")

// the size in bytes of the device's register window
const windowSize = uint64(accelerator.NumRegisters) * accelerator.RegisterStride

type region struct {
	base  uint32
	words []uint32
}

func (r region) end() uint64 {
	return uint64(r.base) + uint64(len(r.words))*4
}

func (r region) contains(addr uint32) bool {
	return addr >= r.base && uint64(addr)+4 <= r.end()
}

// Bus is a simulated 32-bit address space. It contains the register window of
// one Device and any number of regions of word memory. Word memory is backed
// by ordinary slices so a grid.Grid can be placed in it.
type Bus struct {
	crit sync.RWMutex

	dev     *Device
	devBase uint32
	regions []region

	faultsCrit sync.Mutex
	faults     Faults

	// register accesses that change device state are logged with this
	// permission. a nil value is the same as logger.Deny
	Trace logger.Permission
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		faults: newFaults(),
		Trace:  logger.Allow,
	}
}

func (b *Bus) trace(comment string) {
	if comment == "" || b.Trace == nil {
		return
	}
	logger.Log(b.Trace, "xlr sim", comment)
}

// check that the range [base, end) is free. must be called with the critical
// section held
func (b *Bus) free(base uint32, end uint64) error {
	if base%4 != 0 {
		return fmt.Errorf("sim: %08x is not word aligned", base)
	}
	if end > 1<<32 {
		return fmt.Errorf("sim: range at %08x extends past the end of the address space", base)
	}
	if b.dev != nil {
		if uint64(base) < uint64(b.devBase)+windowSize && end > uint64(b.devBase) {
			return fmt.Errorf("sim: range at %08x overlaps device registers at %08x", base, b.devBase)
		}
	}
	for _, r := range b.regions {
		if uint64(base) < r.end() && end > uint64(r.base) {
			return fmt.Errorf("sim: range at %08x overlaps memory at %08x", base, r.base)
		}
	}
	return nil
}

// AttachDevice places the device's register window at the base address.
func (b *Bus) AttachDevice(base uint32, dev *Device) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.dev != nil {
		return fmt.Errorf("sim: device already attached at %08x", b.devBase)
	}
	if err := b.free(base, uint64(base)+windowSize); err != nil {
		return err
	}

	b.dev = dev
	b.devBase = base
	dev.attach(b)

	return nil
}

// MapWords makes the words visible at the base address. The words are not
// copied and any subsequent access through the bus is an access to the
// slice.
func (b *Bus) MapWords(base uint32, words []uint32) error {
	if len(words) == 0 {
		return fmt.Errorf("sim: cannot map empty memory at %08x", base)
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	if err := b.free(base, uint64(base)+uint64(len(words))*4); err != nil {
		return err
	}
	b.regions = append(b.regions, region{base: base, words: words})

	return nil
}

// Unmap removes memory previously mapped at the base address.
func (b *Bus) Unmap(base uint32) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	for i, r := range b.regions {
		if r.base == base {
			b.regions = append(b.regions[:i], b.regions[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("sim: no memory mapped at %08x", base)
}

func (b *Bus) fault(category Category, event string, addr uint32) error {
	b.faultsCrit.Lock()
	b.faults.add(category, event, addr)
	b.faultsCrit.Unlock()
	return fmt.Errorf("sim: %w: %s: %s at %08x", ErrFault, event, category, addr)
}

// Faults returns a copy of the fault log.
func (b *Bus) Faults() []Fault {
	b.faultsCrit.Lock()
	defer b.faultsCrit.Unlock()

	l := make([]Fault, 0, len(b.faults.Log))
	for _, f := range b.faults.Log {
		l = append(l, *f)
	}
	return l
}

// ClearFaults empties the fault log.
func (b *Bus) ClearFaults() {
	b.faultsCrit.Lock()
	defer b.faultsCrit.Unlock()
	b.faults.Clear()
}

func (b *Bus) inWindow(addr uint32) bool {
	return b.dev != nil && addr >= b.devBase && uint64(addr-b.devBase) < windowSize
}

// word returns the memory word at the address. must be called with the
// critical section held
func (b *Bus) word(event string, addr uint32) (*uint32, error) {
	if addr%4 != 0 {
		return nil, b.fault(MisalignedAccess, event, addr)
	}
	for _, r := range b.regions {
		if r.contains(addr) {
			return &r.words[(addr-r.base)/4], nil
		}
	}
	return nil, b.fault(UnmappedAddress, event, addr)
}

// Read32 implements the accelerator.Bus interface.
func (b *Bus) Read32(addr uint32) (uint32, error) {
	b.crit.RLock()
	defer b.crit.RUnlock()

	if b.inWindow(addr) {
		if addr%4 != 0 {
			return 0, b.fault(MisalignedAccess, "register read", addr)
		}
		v, ok, comment := b.dev.Read(addr - b.devBase)
		if !ok {
			return 0, b.fault(IllegalRegister, "register read", addr)
		}
		b.trace(comment)
		return v, nil
	}

	p, err := b.word("read", addr)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

// Write32 implements the accelerator.Bus interface.
func (b *Bus) Write32(addr uint32, val uint32) error {
	b.crit.RLock()
	defer b.crit.RUnlock()

	if b.inWindow(addr) {
		if addr%4 != 0 {
			return b.fault(MisalignedAccess, "register write", addr)
		}
		ok, comment := b.dev.Write(addr-b.devBase, val)
		if !ok {
			return b.fault(IllegalRegister, "register write", addr)
		}
		b.trace(comment)
		return nil
	}

	p, err := b.word("write", addr)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, val)
	return nil
}

// Load32 is a memory read by the device. The device cannot read its own
// registers through the bus.
func (b *Bus) Load32(addr uint32) (uint32, error) {
	b.crit.RLock()
	defer b.crit.RUnlock()

	p, err := b.word("device load", addr)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

// Store32 is a memory write by the device.
func (b *Bus) Store32(addr uint32, val uint32) error {
	b.crit.RLock()
	defer b.crit.RUnlock()

	p, err := b.word("device store", addr)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, val)
	return nil
}

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

//go:build linux

// Package mmio provides access to physical memory on Linux through a memory
// mapping of /dev/mem (or any other file). A Window implements
// accelerator.Bus and can also provide a []uint32 view of device memory so
// that a grid can be placed where the accelerator can see it.
//
// Words are accessed in the host's byte order. The accelerator expects
// little-endian words so mmio is only useful on little-endian hosts.
package mmio

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is the usual path to physical memory.
const DevMem = "/dev/mem"

// ErrAccess is returned for accesses that are misaligned or outside the
// window.
var ErrAccess = errors.New("illegal access")

// Window is a mapping of a range of physical addresses.
type Window struct {
	file *os.File
	phys uint32
	size uint32

	// the mapping begins on a page boundary. skip is the distance from the
	// start of the mapping to phys
	data []byte
	skip uint32
}

// Open maps size bytes of the file at path beginning at the physical address
// phys. The physical address must be word aligned.
func Open(path string, phys uint32, size uint32) (*Window, error) {
	if phys%4 != 0 {
		return nil, fmt.Errorf("mmio: %w: %08x is not word aligned", ErrAccess, phys)
	}
	if size == 0 || uint64(phys)+uint64(size) > 1<<32 {
		return nil, fmt.Errorf("mmio: %w: %d bytes at %08x", ErrAccess, size, phys)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("mmio: %w", err)
	}

	page := uint32(unix.Getpagesize())
	base := phys &^ (page - 1)
	skip := phys - base

	data, err := unix.Mmap(int(f.Fd()), int64(base), int(skip+size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmio: %w", err)
	}

	return &Window{
		file: f,
		phys: phys,
		size: size,
		data: data,
		skip: skip,
	}, nil
}

// Close unmaps the window. The window and any slices returned by Words() must
// not be used after Close().
func (w *Window) Close() error {
	err := unix.Munmap(w.data)
	w.data = nil
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("mmio: %w", err)
	}
	return nil
}

// Base returns the physical address of the first byte in the window.
func (w *Window) Base() uint32 {
	return w.phys
}

func (w *Window) ptr(addr uint32, n uint32) (unsafe.Pointer, error) {
	if w.data == nil {
		return nil, fmt.Errorf("mmio: %w: window is closed", ErrAccess)
	}
	if addr%4 != 0 {
		return nil, fmt.Errorf("mmio: %w: %08x is not word aligned", ErrAccess, addr)
	}
	if addr < w.phys || uint64(addr)+uint64(n)*4 > uint64(w.phys)+uint64(w.size) {
		return nil, fmt.Errorf("mmio: %w: %08x is outside window", ErrAccess, addr)
	}
	return unsafe.Pointer(&w.data[w.skip+addr-w.phys]), nil
}

// Read32 implements the accelerator.Bus interface.
func (w *Window) Read32(addr uint32) (uint32, error) {
	p, err := w.ptr(addr, 1)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32((*uint32)(p)), nil
}

// Write32 implements the accelerator.Bus interface.
func (w *Window) Write32(addr uint32, val uint32) error {
	p, err := w.ptr(addr, 1)
	if err != nil {
		return err
	}
	atomic.StoreUint32((*uint32)(p), val)
	return nil
}

// Words returns n words of the window beginning at addr. The slice refers to
// the mapped memory.
func (w *Window) Words(addr uint32, n int) ([]uint32, error) {
	if n < 1 {
		return nil, fmt.Errorf("mmio: %w: %d words", ErrAccess, n)
	}
	p, err := w.ptr(addr, uint32(n))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*uint32)(p), n), nil
}

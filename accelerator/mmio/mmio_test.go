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

package mmio_test

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/accelerator/mmio"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/test"
	"golang.org/x/sys/unix"
)

// a regular file stands in for physical memory
func physicalMemory(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mem")
	test.DemandSuccess(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func TestWindow(t *testing.T) {
	page := unix.Getpagesize()
	path := physicalMemory(t, page*2)

	// window does not begin on a page boundary
	phys := uint32(page + 0x40)
	w, err := mmio.Open(path, phys, 0x100)
	test.DemandSuccess(t, err)
	test.ExpectImplements[accelerator.Bus](t, w)
	test.ExpectEquality(t, w.Base(), phys)

	test.ExpectSuccess(t, w.Write32(phys+4, 0x11223344))
	v, err := w.Read32(phys + 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x11223344))

	err = w.Write32(phys+2, 0)
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrAccess))
	_, err = w.Read32(phys - 4)
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrAccess))
	_, err = w.Read32(phys + 0x100)
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrAccess))

	test.DemandSuccess(t, w.Close())

	_, err = w.Read32(phys + 4)
	test.ExpectFailure(t, err)

	// the write reached the file
	b, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		test.ExpectEquality(t, binary.LittleEndian.Uint32(b[phys+4:]), uint32(0x11223344))
	}
}

func TestGridInWindow(t *testing.T) {
	path := physicalMemory(t, unix.Getpagesize())

	w, err := mmio.Open(path, 0, 0x400)
	test.DemandSuccess(t, err)
	defer w.Close()

	words, err := w.Words(0x100, grid.WordsRequired(40, 4))
	test.DemandSuccess(t, err)

	g, err := grid.NewGridOver(words, 40, 4, grid.Toroidal)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.Set(1, 33, true))

	// cell (1, 33) is in the fourth word of the grid
	v, err := w.Read32(0x100 + 3*4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1<<1))

	_, err = w.Words(0x3f0, 8)
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrAccess))
}

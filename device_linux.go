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

package main

import (
	"errors"
	"fmt"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/accelerator/mmio"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
	"github.com/cgol-xlr/cgol/setup"
)

// device is a physical accelerator reached through /dev/mem.
type device struct {
	bus  accelerator.Bus
	grid *grid.Grid
	regs *mmio.Window
	mem  *mmio.Window
}

func openDevice(regsBase uint32, gridBase uint32, cfg setup.Config) (*device, error) {
	regs, err := mmio.Open(mmio.DevMem, regsBase, uint32(accelerator.NumRegisters)*accelerator.RegisterStride)
	if err != nil {
		return nil, err
	}

	n := grid.WordsRequired(cfg.Width, cfg.Height)
	mem, err := mmio.Open(mmio.DevMem, gridBase, uint32(n*4))
	if err != nil {
		_ = regs.Close()
		return nil, err
	}

	words, err := mem.Words(gridBase, n)
	if err == nil {
		var g *grid.Grid
		g, err = grid.NewGridOver(words, cfg.Width, cfg.Height, cfg.Boundary)
		if err == nil {
			logger.Logf(logger.Allow, "xlr", "registers at %08x, grid at %08x", regsBase, gridBase)
			return &device{bus: regs, grid: g, regs: regs, mem: mem}, nil
		}
	}

	return nil, errors.Join(err, mem.Close(), regs.Close())
}

// place copies the grid into device memory.
func (dev *device) place(g *grid.Grid) (*grid.Grid, error) {
	if err := dev.grid.CopyFrom(g); err != nil {
		return nil, fmt.Errorf("xlr: %w", err)
	}
	return dev.grid, nil
}

func (dev *device) close() error {
	return errors.Join(dev.mem.Close(), dev.regs.Close())
}

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

//go:build !linux

package main

import (
	"errors"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/setup"
)

type device struct {
	bus accelerator.Bus
}

func openDevice(_ uint32, _ uint32, _ setup.Config) (*device, error) {
	return nil, errors.New("xlr: physical accelerator is only supported on linux")
}

func (dev *device) place(_ *grid.Grid) (*grid.Grid, error) {
	return nil, errors.New("xlr: no device")
}

func (dev *device) close() error {
	return nil
}

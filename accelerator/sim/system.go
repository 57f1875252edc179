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

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/grid"
)

// Default addresses used by the System type.
const (
	DefaultRegsBase uint32 = 0x4000_0000
	DefaultGridBase uint32 = 0x8000_0000
)

// System is a Bus with a Device attached at DefaultRegsBase and a window for
// a single grid at DefaultGridBase.
type System struct {
	Bus    *Bus
	Device *Device

	RegsBase uint32
	GridBase uint32

	attached bool
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem(boundary grid.Boundary) (*System, error) {
	sys := &System{
		Bus:      NewBus(),
		Device:   NewDevice(boundary),
		RegsBase: DefaultRegsBase,
		GridBase: DefaultGridBase,
	}

	if err := sys.Bus.AttachDevice(sys.RegsBase, sys.Device); err != nil {
		return nil, err
	}

	return sys, nil
}

// Attach makes the grid's storage visible to the device at GridBase. Any
// previously attached grid is detached.
func (sys *System) Attach(g *grid.Grid) error {
	if sys.Device.Running() {
		return fmt.Errorf("sim: %w: cannot attach grid while device is running", accelerator.ErrBusy)
	}
	if sys.attached {
		if err := sys.Bus.Unmap(sys.GridBase); err != nil {
			return err
		}
		sys.attached = false
	}
	if err := sys.Bus.MapWords(sys.GridBase, g.Words()); err != nil {
		return err
	}
	sys.attached = true
	return nil
}

// Place copies the grid into new storage and attaches it.
func (sys *System) Place(g *grid.Grid) (*grid.Grid, error) {
	c := g.Clone()
	if err := sys.Attach(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Channel returns a new accelerator.Channel for the device.
func (sys *System) Channel() *accelerator.Channel {
	return accelerator.NewChannel(sys.Bus, sys.RegsBase)
}

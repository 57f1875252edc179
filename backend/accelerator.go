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

package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
)

// ErrNotVisible is returned by Accelerator.Run() for a grid that is not
// stored in the memory the device sees.
var ErrNotVisible = errors.New("grid not visible to device")

// Accelerator advances grids using the accelerator. The grid passed to Run()
// must be the grid most recently returned by Place().
type Accelerator struct {
	ch       *accelerator.Channel
	gridBase uint32
	place    Placement

	// the grid stored at gridBase. nil until Place() succeeds
	placed *grid.Grid
}

// NewAccelerator is the preferred method of initialisation for the
// Accelerator type. The place function must copy a grid into the memory the
// device sees at gridBase and return the copy.
func NewAccelerator(ch *accelerator.Channel, gridBase uint32, place Placement) *Accelerator {
	return &Accelerator{
		ch:       ch,
		gridBase: gridBase,
		place:    place,
	}
}

// Place copies g into device memory. The returned grid is the only grid that
// Run() will accept until the next call to Place().
func (xlr *Accelerator) Place(g *grid.Grid) (*grid.Grid, error) {
	if xlr.place == nil {
		return nil, fmt.Errorf("backend: %s: %w: no placement", xlr.ID(), ErrNotVisible)
	}
	dg, err := xlr.place(g)
	if err != nil {
		xlr.placed = nil
		return nil, fmt.Errorf("backend: %s: %w", xlr.ID(), err)
	}
	xlr.placed = dg
	return dg, nil
}

// visible returns true if g shares storage with the placed grid.
func (xlr *Accelerator) visible(g *grid.Grid) bool {
	if g == nil || xlr.placed == nil {
		return false
	}
	if g.Width() != xlr.placed.Width() || g.Height() != xlr.placed.Height() {
		return false
	}
	a := g.Words()
	b := xlr.placed.Words()
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

// ID implements the Backend interface.
func (xlr *Accelerator) ID() ID {
	return AcceleratorID
}

// Run implements the Backend interface.
func (xlr *Accelerator) Run(ctx context.Context, g *grid.Grid, iterations int) error {
	if !xlr.visible(g) {
		return fmt.Errorf("backend: %s: %w", xlr.ID(), ErrNotVisible)
	}

	cfg, err := accelerator.NewConfig(g, xlr.gridBase, iterations)
	if err != nil {
		return fmt.Errorf("backend: %s: %w", xlr.ID(), err)
	}

	if err := xlr.ch.Run(ctx, cfg); err != nil {
		if xlr.HoldsGrid() {
			logger.Logf(logger.Allow, "backend", "%s still holds the grid", xlr.ID())
		}
		return fmt.Errorf("backend: %s: %w", xlr.ID(), err)
	}

	return nil
}

// HoldsGrid implements the Holder interface. It returns true if the device
// was started and has not been seen to finish.
func (xlr *Accelerator) HoldsGrid() bool {
	if !xlr.ch.InFlight() {
		return false
	}
	// the device may have finished since the last poll
	done, err := xlr.ch.PollDone()
	return err != nil || !done
}

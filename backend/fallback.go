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

	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
)

// Fallback runs the Primary backend and, if that fails, the Secondary
// backend. The Secondary is not used if the Primary still holds the grid.
//
// The Secondary is run on the original grid content so the Primary must
// leave the grid unchanged when it fails without holding it. The software
// evolver and an accelerator that was never started both do this.
type Fallback struct {
	Primary   Backend
	Secondary Backend

	// the backend that completed the most recent run
	used Backend
}

// ID implements the Backend interface. The ID is that of the backend that
// completed the most recent run, or the Primary if there has been no
// successful run.
func (fb *Fallback) ID() ID {
	if fb.used != nil {
		return fb.used.ID()
	}
	return fb.Primary.ID()
}

// Run implements the Backend interface.
func (fb *Fallback) Run(ctx context.Context, g *grid.Grid, iterations int) error {
	fb.used = nil

	err := fb.Primary.Run(ctx, g, iterations)
	if err == nil {
		fb.used = fb.Primary
		return nil
	}

	if fb.Secondary == nil || holdsGrid(fb.Primary) || ctx.Err() != nil {
		return err
	}

	logger.Logf(logger.Allow, "backend", "falling back to %s: %v", fb.Secondary.ID(), err)

	if err := fb.Secondary.Run(ctx, g, iterations); err != nil {
		return err
	}
	fb.used = fb.Secondary

	return nil
}

// HoldsGrid implements the Holder interface.
func (fb *Fallback) HoldsGrid() bool {
	return holdsGrid(fb.Primary)
}

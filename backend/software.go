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
	"fmt"

	"github.com/cgol-xlr/cgol/evolver"
	"github.com/cgol-xlr/cgol/grid"
)

// Software advances grids with the in-place bitwise evolver.
type Software struct {
	ev *evolver.Evolver
}

// NewSoftware is the preferred method of initialisation for the Software type.
func NewSoftware() *Software {
	return &Software{
		ev: evolver.NewEvolver(),
	}
}

// Evolver returns the underlying evolver. This is useful for setting the
// Observer field.
func (sw *Software) Evolver() *evolver.Evolver {
	return sw.ev
}

// ID implements the Backend interface.
func (sw *Software) ID() ID {
	return SoftwareID
}

// Run implements the Backend interface.
func (sw *Software) Run(ctx context.Context, g *grid.Grid, iterations int) error {
	if err := sw.ev.Run(ctx, g, iterations); err != nil {
		return fmt.Errorf("backend: %s: %w", sw.ID(), err)
	}
	return nil
}

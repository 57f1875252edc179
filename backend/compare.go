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

	"golang.org/x/sync/errgroup"

	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
)

// ErrLayoutMismatch is returned by Compare() when two backends produce
// different grids from the same starting grid. The usual cause is that the
// host and the accelerator disagree about how cells are packed into memory.
var ErrLayoutMismatch = errors.New("layout mismatch")

// Placement returns a copy of the grid stored in memory that a backend can
// use.
type Placement func(g *grid.Grid) (*grid.Grid, error)

// Clone is a Placement for backends that can work with any memory.
func Clone(g *grid.Grid) (*grid.Grid, error) {
	return g.Clone(), nil
}

// Candidate is a backend taking part in a comparison. If Place is nil then
// Clone() is used.
type Candidate struct {
	Backend Backend
	Place   Placement
}

func (c Candidate) place(g *grid.Grid) (*grid.Grid, error) {
	if c.Place == nil {
		return Clone(g)
	}
	return c.Place(g)
}

// Comparison is the result of a successful call to Compare().
type Comparison struct {
	A *grid.Grid
	B *grid.Grid
}

// Compare runs two backends for the same number of generations starting
// from bit-identical copies of the initial grid. The backends are run
// concurrently. The initial grid is not changed.
func Compare(ctx context.Context, initial *grid.Grid, iterations int, a Candidate, b Candidate) (Comparison, error) {
	var cmp Comparison
	var err error

	cmp.A, err = a.place(initial)
	if err != nil {
		return Comparison{}, fmt.Errorf("backend: %s: %w", a.Backend.ID(), err)
	}
	cmp.B, err = b.place(initial)
	if err != nil {
		return Comparison{}, fmt.Errorf("backend: %s: %w", b.Backend.ID(), err)
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return a.Backend.Run(ctx, cmp.A, iterations)
	})
	grp.Go(func() error {
		return b.Backend.Run(ctx, cmp.B, iterations)
	})
	if err := grp.Wait(); err != nil {
		return Comparison{}, err
	}

	if c, diff := cmp.A.FirstDifference(cmp.B); diff {
		logger.Logf(logger.Allow, "backend", "%s and %s differ after %d generations", a.Backend.ID(), b.Backend.ID(), iterations)
		return cmp, fmt.Errorf("backend: %w: %s and %s first differ at %v",
			ErrLayoutMismatch, a.Backend.ID(), b.Backend.ID(), c)
	}

	return cmp, nil
}

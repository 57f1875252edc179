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

package setup_test

import (
	"errors"
	"testing"

	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/setup"
	"github.com/cgol-xlr/cgol/test"
)

func TestDefaultConfig(t *testing.T) {
	cfg := setup.DefaultConfig()
	g, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Width(), 64)
	test.ExpectEquality(t, g.Height(), 64)
	test.ExpectEquality(t, g.Boundary(), grid.Toroidal)
	test.ExpectEquality(t, g.Population(), 5)

	// glider is centred
	v, err := g.Get(30, 31)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, true)
}

func TestNewGridPosition(t *testing.T) {
	cfg := setup.DefaultConfig()
	cfg.Width = 10
	cfg.Height = 6
	cfg.Boundary = grid.Bounded
	cfg.Pattern = "blinker"
	cfg.Row = 1
	cfg.Col = 2

	g, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.String(),
		"..........\n"+
			"..OOO.....\n"+
			"..........\n"+
			"..........\n"+
			"..........\n"+
			"..........\n")

	cfg.Col = 8
	_, err = setup.NewGrid(cfg)
	test.ExpectSuccess(t, errors.Is(err, grid.ErrOutOfRange))
}

func TestNewGridErrors(t *testing.T) {
	cfg := setup.DefaultConfig()
	cfg.Width = 0
	_, err := setup.NewGrid(cfg)
	test.ExpectSuccess(t, errors.Is(err, grid.ErrInvalidDimensions))

	cfg = setup.DefaultConfig()
	cfg.Density = 1.5
	_, err = setup.NewGrid(cfg)
	test.ExpectFailure(t, err)

	cfg = setup.DefaultConfig()
	cfg.Iterations = -1
	_, err = setup.NewGrid(cfg)
	test.ExpectFailure(t, err)
}

func TestSoup(t *testing.T) {
	cfg := setup.DefaultConfig()
	cfg.Pattern = ""
	cfg.Width = 40
	cfg.Height = 30
	cfg.Density = 0.3
	cfg.Seed = 1234

	a, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	b, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, a.Equal(b))

	// roughly the requested density
	test.ExpectApproximate(t, float64(a.Population())/1200, 0.3, 0.25)

	cfg.Seed = 4321
	c, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, !a.Equal(c))

	cfg.Density = 1.0
	d, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Population(), 1200)

	cfg.Density = 0
	e, err := setup.NewGrid(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Population(), 0)
}

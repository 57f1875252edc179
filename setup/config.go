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

package setup

import (
	"fmt"

	"github.com/cgol-xlr/cgol/backend"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
	"github.com/cgol-xlr/cgol/random"
)

// Config describes the initial state of a run.
type Config struct {
	Width      int
	Height     int
	Iterations int
	Boundary   grid.Boundary
	Backend    backend.ID

	// name of a built-in pattern or a pattern file. can be empty
	Pattern string

	// position of the pattern. if either value is negative the pattern is
	// centred
	Row int
	Col int

	// proportion of cells that are alive in the random soup. zero means no
	// soup
	Density float64

	// seed for the random soup. zero means a different soup every run
	Seed int64
}

// DefaultConfig returns a Config for a glider in the middle of a 64x64 torus.
func DefaultConfig() Config {
	return Config{
		Width:      64,
		Height:     64,
		Iterations: 100,
		Boundary:   grid.Toroidal,
		Backend:    backend.SoftwareID,
		Pattern:    "glider",
		Row:        -1,
		Col:        -1,
	}
}

func (cfg Config) String() string {
	s := fmt.Sprintf("%dx%d %s grid, %d iterations on %s", cfg.Width, cfg.Height,
		cfg.Boundary, cfg.Iterations, cfg.Backend)
	if cfg.Pattern != "" {
		s = fmt.Sprintf("%s, %s", s, cfg.Pattern)
	}
	if cfg.Density > 0 {
		s = fmt.Sprintf("%s, soup %.2f", s, cfg.Density)
	}
	return s
}

// NewGrid creates a grid and seeds it as described by the Config. The random
// soup is created first and the pattern is placed on top.
func NewGrid(cfg Config) (*grid.Grid, error) {
	if cfg.Iterations < 0 {
		return nil, fmt.Errorf("setup: negative iteration count (%d)", cfg.Iterations)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("setup: density must be between 0 and 1 (%.3f)", cfg.Density)
	}

	g, err := grid.NewGrid(cfg.Width, cfg.Height, cfg.Boundary)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	if cfg.Density > 0 {
		rnd := random.NewRandom(cfg.Seed)
		for row := range g.Height() {
			for col := range g.Width() {
				if rnd.Cell(row, col) < cfg.Density {
					_ = g.Set(row, col, true)
				}
			}
		}
		logger.Logf(logger.Allow, "setup", "soup with density %.3f and seed %d", cfg.Density, rnd.Seed())
	}

	if cfg.Pattern != "" {
		p, err := LoadPattern(cfg.Pattern)
		if err != nil {
			return nil, err
		}

		row, col := cfg.Row, cfg.Col
		if row < 0 || col < 0 {
			row, col = p.Centre(g)
		}

		if err := p.Place(g, row, col); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "setup", "placed %s at %d,%d", p, row, col)
	}

	return g, nil
}

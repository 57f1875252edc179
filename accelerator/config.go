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

package accelerator

import (
	"fmt"
	"math"

	"github.com/cgol-xlr/cgol/grid"
)

// Config is the content of the host->device registers for one run.
type Config struct {
	GridBaseAddr  uint32
	Width         uint32
	Height        uint32
	NumIterations uint32
}

// NewConfig creates a configuration for a grid placed at the base address in
// the device's address space.
func NewConfig(g *grid.Grid, base uint32, iterations int) (Config, error) {
	if iterations < 0 || uint64(iterations) > math.MaxUint32 {
		return Config{}, fmt.Errorf("xlr: %w: iteration count of %d", ErrConfig, iterations)
	}

	cfg := Config{
		GridBaseAddr:  base,
		Width:         uint32(g.Width()),
		Height:        uint32(g.Height()),
		NumIterations: uint32(iterations),
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration describes a grid the device can
// process.
func (cfg Config) Validate() error {
	if cfg.Width < 1 || cfg.Width > grid.MaxDimension {
		return fmt.Errorf("xlr: %w: width of %d", ErrConfig, cfg.Width)
	}
	if cfg.Height < 1 || cfg.Height > grid.MaxDimension {
		return fmt.Errorf("xlr: %w: height of %d", ErrConfig, cfg.Height)
	}
	if cfg.GridBaseAddr%4 != 0 {
		return fmt.Errorf("xlr: %w: grid base address %08x is not word aligned", ErrConfig, cfg.GridBaseAddr)
	}
	size := uint64(grid.WordsRequired(int(cfg.Width), int(cfg.Height))) * 4
	if uint64(cfg.GridBaseAddr)+size > math.MaxUint32+1 {
		return fmt.Errorf("xlr: %w: grid at %08x does not fit in the address space", ErrConfig, cfg.GridBaseAddr)
	}
	return nil
}

func (cfg Config) String() string {
	return fmt.Sprintf("%dx%d grid at %08x for %d iterations", cfg.Width, cfg.Height, cfg.GridBaseAddr, cfg.NumIterations)
}

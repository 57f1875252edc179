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

package performance

import (
	"context"
	"fmt"
	"io"

	"github.com/cgol-xlr/cgol/backend"
	"github.com/cgol-xlr/cgol/grid"
)

// Check the performance of a backend by advancing the grid by the number of
// iterations. The profiles specified by the Profile argument are created
// with the backend ID as the filename header. The measurement is written to
// the output.
func Check(ctx context.Context, output io.Writer, profile Profile, b backend.Backend, g *grid.Grid, iterations int) error {
	m := NewMeasurement(b.ID(), g.Width(), g.Height(), iterations)

	err := RunProfiler(profile, string(b.ID()), func() error {
		m.Start()
		defer m.Stop()
		return b.Run(ctx, g, iterations)
	})
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return m.Report(output)
}

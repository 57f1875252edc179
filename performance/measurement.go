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
	"fmt"
	"io"
	"time"

	"github.com/cgol-xlr/cgol/backend"
)

// CalcRate takes the number of generations of a grid with the number of
// cells and the duration (in seconds) and returns the generations-per-second
// and cell-updates-per-second.
func CalcRate(generations int, cells int, duration float64) (genRate float64, cellRate float64) {
	if duration <= 0 {
		return 0, 0
	}
	genRate = float64(generations) / duration
	cellRate = genRate * float64(cells)
	return genRate, cellRate
}

// Measurement times a single run of a backend.
type Measurement struct {
	Backend     backend.ID
	Width       int
	Height      int
	Generations int

	start   time.Time
	elapsed time.Duration
	running bool
}

// NewMeasurement is the preferred method of initialisation for the
// Measurement type.
func NewMeasurement(id backend.ID, width int, height int, generations int) *Measurement {
	return &Measurement{
		Backend:     id,
		Width:       width,
		Height:      height,
		Generations: generations,
	}
}

// Start the measurement.
func (m *Measurement) Start() {
	m.running = true
	m.elapsed = 0
	m.start = time.Now()
}

// Stop the measurement. Stop has no effect if the measurement has not been
// started.
func (m *Measurement) Stop() {
	if !m.running {
		return
	}
	m.elapsed = time.Since(m.start)
	m.running = false
}

// Elapsed returns the time between Start() and Stop(). If the measurement is
// still running it returns the time since Start().
func (m *Measurement) Elapsed() time.Duration {
	if m.running {
		return time.Since(m.start)
	}
	return m.elapsed
}

func (m *Measurement) String() string {
	gen, cells := CalcRate(m.Generations, m.Width*m.Height, m.Elapsed().Seconds())
	return fmt.Sprintf("%s: %d generations of %dx%d grid in %v (%.2f gen/s, %.2f Mcells/s)",
		m.Backend, m.Generations, m.Width, m.Height, m.Elapsed().Round(time.Microsecond), gen, cells/1e6)
}

// Report writes a summary of the measurement to the io.Writer.
func (m *Measurement) Report(w io.Writer) error {
	if _, err := fmt.Fprintln(w, m.String()); err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	return nil
}

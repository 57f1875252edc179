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

package performance_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cgol-xlr/cgol/backend"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/performance"
	"github.com/cgol-xlr/cgol/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfile("cpu, Trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	gen, cells := performance.CalcRate(100, 1000, 2.0)
	test.ExpectApproximate(t, gen, 50.0, 0.001)
	test.ExpectApproximate(t, cells, 50000.0, 0.001)

	gen, cells = performance.CalcRate(100, 1000, 0)
	test.ExpectEquality(t, gen, 0.0)
	test.ExpectEquality(t, cells, 0.0)
}

func TestMeasurement(t *testing.T) {
	m := performance.NewMeasurement(backend.SoftwareID, 64, 32, 10)
	test.ExpectEquality(t, m.Elapsed(), time.Duration(0))

	// stop without start has no effect
	m.Stop()
	test.ExpectEquality(t, m.Elapsed(), time.Duration(0))

	m.Start()
	time.Sleep(2 * time.Millisecond)
	m.Stop()
	e := m.Elapsed()
	test.ExpectSuccess(t, e >= 2*time.Millisecond)
	test.ExpectEquality(t, m.Elapsed(), e)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, m.Report(w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "software: 10 generations of 64x32 grid in "))
}

type failing struct{}

func (failing) ID() backend.ID { return "failing" }

func (failing) Run(_ context.Context, _ *grid.Grid, _ int) error {
	return errors.New("failing backend")
}

func TestCheck(t *testing.T) {
	g, err := grid.NewGrid(100, 100, grid.Toroidal)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, performance.Check(context.Background(), w, performance.ProfileNone, backend.NewSoftware(), g, 5))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "software: 5 generations"))

	w.Clear()
	test.ExpectFailure(t, performance.Check(context.Background(), w, performance.ProfileNone, failing{}, g, 5))
	test.ExpectEquality(t, w.String(), "")
}

func TestRunProfiler(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	var ran bool
	err = performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	for _, f := range []string{"test_cpu.profile", "test_mem.profile"} {
		_, err := os.Stat(f)
		test.ExpectSuccess(t, err, f)
	}
	_, err = os.Stat("test_trace.profile")
	test.ExpectFailure(t, err)
}

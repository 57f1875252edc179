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
	"path/filepath"
	"testing"
	"time"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/accelerator/sim"
	"github.com/cgol-xlr/cgol/backend"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/prefs"
	"github.com/cgol-xlr/cgol/setup"
	"github.com/cgol-xlr/cgol/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := setup.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	cfg, err := p.Config()
	test.DemandSuccess(t, err)

	def := setup.DefaultConfig()
	test.ExpectEquality(t, cfg.Width, def.Width)
	test.ExpectEquality(t, cfg.Height, def.Height)
	test.ExpectEquality(t, cfg.Iterations, def.Iterations)
	test.ExpectEquality(t, cfg.Boundary, grid.Toroidal)
	test.ExpectEquality(t, cfg.Backend, backend.SoftwareID)
	test.ExpectEquality(t, cfg.Pattern, "")
	test.ExpectEquality(t, p.Simulated(), true)
	test.ExpectEquality(t, p.Fallback.Get().(bool), true)
	test.ExpectEquality(t, p.Timeout.Get().(time.Duration), accelerator.DefaultTimeout)
}

func TestPreferencesValidation(t *testing.T) {
	p, err := setup.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Width.Set(0))
	test.ExpectFailure(t, p.Height.Set(grid.MaxDimension+1))
	test.ExpectSuccess(t, p.Height.Set(grid.MaxDimension))
	test.ExpectFailure(t, p.Iterations.Set(-1))
	test.ExpectFailure(t, p.Boundary.Set("klein"))
	test.ExpectSuccess(t, p.Boundary.Set("wrap"))
	test.ExpectFailure(t, p.Backend.Set("gpu"))
	test.ExpectSuccess(t, p.Backend.Set("xlr"))
	test.ExpectFailure(t, p.Density.Set(1.01))
	test.ExpectFailure(t, p.RegsBase.Set("0x40000002"))
	test.ExpectFailure(t, p.RegsBase.Set(-4))
	test.ExpectFailure(t, p.GridBase.Set("0x100000000"))
	test.ExpectSuccess(t, p.RegsBase.Set("0x43c00000"))
	test.ExpectFailure(t, p.Timeout.Set("0s"))
	test.ExpectFailure(t, p.PollInterval.Set("-1ms"))
	test.ExpectFailure(t, p.Latency.Set("-1ms"))
	test.ExpectSuccess(t, p.Latency.Set("0s"))
	test.ExpectFailure(t, p.Alive.Set("##"))
	test.ExpectSuccess(t, p.Alive.Set("█"))

	// failed values do not change the preference
	test.ExpectEquality(t, p.Width.Get().(int), 64)
	test.ExpectEquality(t, p.Simulated(), false)

	cfg, err := p.Config()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Backend, backend.AcceleratorID)
	test.ExpectEquality(t, cfg.Height, grid.MaxDimension)
}

func TestPreferencesPersist(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	p, err := setup.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Width.Set(100))
	test.DemandSuccess(t, p.Boundary.Set("bounded"))
	test.DemandSuccess(t, p.Density.Set(0.125))
	test.DemandSuccess(t, p.PollInterval.Set("250us"))
	test.DemandSuccess(t, p.Save())

	q, err := setup.NewPreferences(pth)
	test.DemandSuccess(t, err)
	cfg, err := q.Config()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 100)
	test.ExpectEquality(t, cfg.Boundary, grid.Bounded)
	test.ExpectEquality(t, cfg.Density, 0.125)

	ch := accelerator.NewChannel(sim.NewBus(), 0)
	q.Apply(ch)
	test.ExpectEquality(t, ch.PollInterval, 250*time.Microsecond)
	test.ExpectEquality(t, ch.Timeout, accelerator.DefaultTimeout)

	// reverting to defaults does not change the file until it is saved
	test.DemandSuccess(t, q.SetDefaults())
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Width.Get().(int), 100)
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cgol.height::32; accelerator.latency::1ms")
	defer prefs.PopCommandLineStack()

	p, err := setup.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Height.Get().(int), 32)

	sys, err := sim.NewSystem(grid.Toroidal)
	test.DemandSuccess(t, err)
	p.ApplySim(sys)
	test.ExpectEquality(t, sys.Device.Latency, time.Millisecond)
}

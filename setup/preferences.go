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
	"time"
	"unicode/utf8"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/accelerator/sim"
	"github.com/cgol-xlr/cgol/backend"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/paths"
	"github.com/cgol-xlr/cgol/prefs"
)

// Preferences are the persisted settings for grid setup, the accelerator and
// the display.
type Preferences struct {
	dsk *prefs.Disk

	Width      prefs.Int
	Height     prefs.Int
	Iterations prefs.Int
	Boundary   prefs.String
	Backend    prefs.String
	Fallback   prefs.Bool
	Seed       prefs.Int
	Density    prefs.Float

	// physical addresses of the register window and of the grid memory. an
	// address of zero means the simulated accelerator is used
	RegsBase prefs.Int
	GridBase prefs.Int

	Timeout      prefs.Duration
	PollInterval prefs.Duration

	// latency of each generation of the simulated accelerator
	Latency prefs.Duration

	Alive prefs.String
	Dead  prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If the path is empty the preferences file in the resource directory
// is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	p.Width.SetHookPre(dimension)
	p.Height.SetHookPre(dimension)
	p.Iterations.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("setup: negative iteration count (%d)", v.(int))
		}
		return nil
	})
	p.Boundary.SetHookPre(func(v prefs.Value) error {
		_, err := grid.ParseBoundary(v.(string))
		return err
	})
	p.Backend.SetHookPre(func(v prefs.Value) error {
		_, err := backend.ParseID(v.(string))
		return err
	})
	p.Density.SetHookPre(func(v prefs.Value) error {
		if d := v.(float64); d < 0 || d > 1 {
			return fmt.Errorf("setup: density must be between 0 and 1 (%.3f)", d)
		}
		return nil
	})
	p.RegsBase.SetHookPre(address)
	p.GridBase.SetHookPre(address)
	p.Timeout.SetHookPre(positive)
	p.PollInterval.SetHookPre(positive)
	p.Latency.SetHookPre(func(v prefs.Value) error {
		if v.(time.Duration) < 0 {
			return fmt.Errorf("setup: negative duration (%v)", v)
		}
		return nil
	})
	p.Alive.SetHookPre(singleRune)
	p.Dead.SetHookPre(singleRune)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	for _, e := range []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"cgol.width", &p.Width},
		{"cgol.height", &p.Height},
		{"cgol.iterations", &p.Iterations},
		{"cgol.boundary", &p.Boundary},
		{"cgol.backend", &p.Backend},
		{"cgol.fallback", &p.Fallback},
		{"cgol.seed", &p.Seed},
		{"cgol.density", &p.Density},
		{"accelerator.regsBase", &p.RegsBase},
		{"accelerator.gridBase", &p.GridBase},
		{"accelerator.timeout", &p.Timeout},
		{"accelerator.pollInterval", &p.PollInterval},
		{"accelerator.latency", &p.Latency},
		{"display.alive", &p.Alive},
		{"display.dead", &p.Dead},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	def := DefaultConfig()

	for _, err := range []error{
		p.Width.Set(def.Width),
		p.Height.Set(def.Height),
		p.Iterations.Set(def.Iterations),
		p.Boundary.Set(def.Boundary.String()),
		p.Backend.Set(string(def.Backend)),
		p.Fallback.Set(true),
		p.Seed.Set(0),
		p.Density.Set(0.0),
		p.RegsBase.Set(0),
		p.GridBase.Set(0),
		p.Timeout.Set(accelerator.DefaultTimeout),
		p.PollInterval.Set(accelerator.DefaultPollInterval),
		p.Latency.Set(time.Duration(0)),
		p.Alive.Set("O"),
		p.Dead.Set("."),
	} {
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}

	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config built from the current preference values. The
// pattern fields of the Config are not stored as preferences and are left
// empty.
func (p *Preferences) Config() (Config, error) {
	b, err := grid.ParseBoundary(p.Boundary.String())
	if err != nil {
		return Config{}, fmt.Errorf("setup: %w", err)
	}
	id, err := backend.ParseID(p.Backend.String())
	if err != nil {
		return Config{}, fmt.Errorf("setup: %w", err)
	}

	return Config{
		Width:      p.Width.Get().(int),
		Height:     p.Height.Get().(int),
		Iterations: p.Iterations.Get().(int),
		Boundary:   b,
		Backend:    id,
		Row:        -1,
		Col:        -1,
		Density:    p.Density.Get().(float64),
		Seed:       int64(p.Seed.Get().(int)),
	}, nil
}

// Simulated returns true if the accelerator settings do not name a physical
// register window.
func (p *Preferences) Simulated() bool {
	return p.RegsBase.Get().(int) == 0
}

// Apply the accelerator timing preferences to the channel.
func (p *Preferences) Apply(ch *accelerator.Channel) {
	ch.Timeout = p.Timeout.Get().(time.Duration)
	ch.PollInterval = p.PollInterval.Get().(time.Duration)
}

// ApplySim applies the simulated accelerator preferences to the system.
func (p *Preferences) ApplySim(sys *sim.System) {
	sys.Device.Latency = p.Latency.Get().(time.Duration)
}

func dimension(v prefs.Value) error {
	if n := v.(int); n < 1 || n > grid.MaxDimension {
		return fmt.Errorf("setup: %w: %d", grid.ErrInvalidDimensions, n)
	}
	return nil
}

func address(v prefs.Value) error {
	n := v.(int)
	if n < 0 || int64(n) > 0xffffffff {
		return fmt.Errorf("setup: address out of range (%#x)", n)
	}
	if n%accelerator.RegisterStride != 0 {
		return fmt.Errorf("setup: address not word aligned (%#08x)", n)
	}
	return nil
}

func positive(v prefs.Value) error {
	if d := v.(time.Duration); d <= 0 {
		return fmt.Errorf("setup: duration must be positive (%v)", d)
	}
	return nil
}

func singleRune(v prefs.Value) error {
	if utf8.RuneCountInString(v.(string)) != 1 {
		return fmt.Errorf("setup: cell character must be a single character (%q)", v)
	}
	return nil
}

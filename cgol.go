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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/accelerator/sim"
	"github.com/cgol-xlr/cgol/backend"
	"github.com/cgol-xlr/cgol/digest"
	"github.com/cgol-xlr/cgol/display"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
	"github.com/cgol-xlr/cgol/modalflag"
	"github.com/cgol-xlr/cgol/paths"
	"github.com/cgol-xlr/cgol/performance"
	"github.com/cgol-xlr/cgol/performance/limiter"
	"github.com/cgol-xlr/cgol/prefs"
	"github.com/cgol-xlr/cgol/setup"
	"github.com/cgol-xlr/cgol/statsview"
	"github.com/cgol-xlr/cgol/version"
)

type stateReq string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// exit values sent with reqQuit
const (
	exitParse = 10
	exitMode  = 20
)

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// the first interrupt cancels the context given to launch(). a second
	// interrupt ends the program immediately
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(ctx, sync, os.Args[1:], os.Stdout)

	done := false
	interrupted := false
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			if interrupted {
				exitVal = 1
				done = true
			}
			interrupted = true
			cancel()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	cancel()
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when the program should quit.
func launch(ctx context.Context, sync *mainSync, args []string, output io.Writer) {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "COMPARE", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("built-in patterns: %s", strings.Join(setup.Builtins(), ", ")))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitParse}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "COMPARE":
		err = compare(ctx, md)
	case "PERFORMANCE":
		err = perform(ctx, md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: exitMode}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// gridArgs are the flags shared by every mode that creates a grid. flags
// that are set override the corresponding preference.
type gridArgs struct {
	width      *int
	height     *int
	iterations *int
	boundary   *string
	density    *float64
	seed       *int64
	pattern    *string
	row        *int
	col        *int
	prefs      *string
	save       *bool
	log        *bool
}

func addGridArgs(md *modalflag.Modes) *gridArgs {
	return &gridArgs{
		width:      md.AddInt("width", 64, "width of grid"),
		height:     md.AddInt("height", 64, "height of grid"),
		iterations: md.AddInt("iterations", 100, "number of generations"),
		boundary:   md.AddString("boundary", "toroidal", "edge policy: toroidal, bounded"),
		density:    md.AddFloat64("density", 0.0, "density of random soup (0 for no soup)"),
		seed:       md.AddInt64("seed", 0, "seed for random soup (0 for a random seed)"),
		pattern:    md.AddString("pattern", "glider", "built-in pattern or pattern file (empty for no pattern)"),
		row:        md.AddInt("row", -1, "row of pattern (negative to centre)"),
		col:        md.AddInt("col", -1, "column of pattern (negative to centre)"),
		prefs:      md.AddString("prefs", "", "preferences to apply for this run only (key::value; key::value)"),
		save:       md.AddBool("save", false, "save flag values as preferences"),
		log:        md.AddBool("log", false, "echo log to stderr"),
	}
}

// preferences loads the preferences and applies any flags that have been set
// in the most recent call to md.Parse().
func (a *gridArgs) preferences(md *modalflag.Modes) (*setup.Preferences, error) {
	if *a.log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *a.prefs != "" {
		prefs.PushCommandLineStack(*a.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	p, err := setup.NewPreferences("")
	if err != nil {
		return nil, err
	}

	var errs []error
	md.Visit(func(f string) {
		switch f {
		case "width":
			errs = append(errs, p.Width.Set(*a.width))
		case "height":
			errs = append(errs, p.Height.Set(*a.height))
		case "iterations":
			errs = append(errs, p.Iterations.Set(*a.iterations))
		case "boundary":
			errs = append(errs, p.Boundary.Set(*a.boundary))
		case "density":
			errs = append(errs, p.Density.Set(*a.density))
		case "seed":
			errs = append(errs, p.Seed.Set(*a.seed))
		}
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if *a.save {
		if err := p.Save(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (a *gridArgs) config(p *setup.Preferences) (setup.Config, error) {
	cfg, err := p.Config()
	if err != nil {
		return setup.Config{}, err
	}
	cfg.Pattern = *a.pattern
	cfg.Row = *a.row
	cfg.Col = *a.col
	return cfg, nil
}

// xlrSession is an accelerator backend and a means of placing grids in
// memory that the accelerator can see.
type xlrSession struct {
	backend *backend.Accelerator
	close   func() error
}

func newAccelerator(p *setup.Preferences, cfg setup.Config) (*xlrSession, error) {
	if p.Simulated() {
		sys, err := sim.NewSystem(cfg.Boundary)
		if err != nil {
			return nil, err
		}
		p.ApplySim(sys)

		ch := sys.Channel()
		p.Apply(ch)

		return &xlrSession{
			backend: backend.NewAccelerator(ch, sys.GridBase, sys.Place),
			close:   func() error { return nil },
		}, nil
	}

	regsBase := uint32(p.RegsBase.Get().(int))
	gridBase := uint32(p.GridBase.Get().(int))

	dev, err := openDevice(regsBase, gridBase, cfg)
	if err != nil {
		return nil, err
	}

	ch := accelerator.NewChannel(dev.bus, regsBase)
	p.Apply(ch)

	return &xlrSession{
		backend: backend.NewAccelerator(ch, gridBase, dev.place),
		close:   dev.close,
	}, nil
}

// selectBackend returns the backend for the configuration and the grid that
// the backend will work on.
func selectBackend(p *setup.Preferences, cfg setup.Config, g *grid.Grid) (backend.Backend, *grid.Grid, func() error, error) {
	noClose := func() error { return nil }

	if cfg.Backend == backend.SoftwareID {
		return backend.NewSoftware(), g, noClose, nil
	}

	xlr, err := newAccelerator(p, cfg)
	if err != nil {
		if p.Fallback.Get().(bool) {
			logger.Logf(logger.Allow, "backend", "accelerator unavailable, using software: %v", err)
			return backend.NewSoftware(), g, noClose, nil
		}
		return nil, nil, nil, err
	}

	dg, err := xlr.backend.Place(g)
	if err != nil {
		_ = xlr.close()
		return nil, nil, nil, err
	}

	if p.Fallback.Get().(bool) {
		return &backend.Fallback{Primary: xlr.backend, Secondary: backend.NewSoftware()}, dg, xlr.close, nil
	}
	return xlr.backend, dg, xlr.close, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	ga := addGridArgs(md)
	backendID := md.AddString("backend", "", "backend to use: software, accelerator (default from preferences)")
	fallback := md.AddBool("fallback", true, "use software if the accelerator fails")
	disp := md.AddString("display", "text", fmt.Sprintf("display type: %s", strings.Join(display.Kinds, ", ")))
	animate := md.AddInt("animate", 0, "show every generation at this many generations per second (0 to show final grid only)")
	interactive := md.AddBool("interactive", false, "wait for key press before ending terminal display")
	pen := md.AddString("pen", "green", "colour of live cells in terminal display")
	memviz := md.AddBool("memviz", false, "write a graphviz file of the grid and backend")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run statsview server on %s", statsview.DefaultAddress))
	fingerprint := md.AddBool("digest", false, "print fingerprint of final grid and, for the software backend, of every generation")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := ga.preferences(md)
	if err != nil {
		return err
	}

	var errs []error
	md.Visit(func(f string) {
		switch f {
		case "backend":
			errs = append(errs, prf.Backend.Set(*backendID))
		case "fallback":
			errs = append(errs, prf.Fallback.Set(*fallback))
		}
	})
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if *ga.save {
		if err := prf.Save(); err != nil {
			return err
		}
	}

	if *stats {
		stop, err := statsview.Launch(os.Stderr, statsview.DefaultAddress)
		if err != nil {
			logger.Log(logger.Allow, "statsview", err)
		} else {
			defer stop()
		}
	}

	cfg, err := ga.config(prf)
	if err != nil {
		return err
	}
	logger.Log(logger.Allow, "setup", cfg)

	initial, err := setup.NewGrid(cfg)
	if err != nil {
		return err
	}

	b, g, closeBackend, err := selectBackend(prf, cfg, initial)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logger.Log(logger.Allow, "backend", err)
		}
	}()

	var history *digest.Generations
	if *fingerprint {
		if sw, ok := b.(*backend.Software); ok {
			history = &digest.Generations{}
			sw.Evolver().Observer = history.Observe
		}
	}

	d, err := display.New(*disp, md.Output)
	if err != nil {
		return err
	}
	switch d := d.(type) {
	case *display.Text:
		d.Alive = []rune(prf.Alive.String())[0]
		d.Dead = []rune(prf.Dead.String())[0]
	case *display.Terminal:
		d.Interactive = *interactive
		if err := d.SetCells(*pen, prf.Alive.String(), prf.Dead.String()); err != nil {
			return err
		}
	}

	m := performance.NewMeasurement(b.ID(), cfg.Width, cfg.Height, cfg.Iterations)

	if *animate > 0 {
		lim, err := limiter.NewLimiter(*animate)
		if err != nil {
			return err
		}
		defer lim.Stop()

		show := display.Observe(d)
		show(g, 0)

		m.Start()
		for gen := 1; gen <= cfg.Iterations; gen++ {
			if err := b.Run(ctx, g, 1); err != nil {
				return err
			}
			lim.Wait()
			show(g, gen)
		}
		m.Stop()
	} else {
		m.Start()
		err := b.Run(ctx, g, cfg.Iterations)
		m.Stop()
		if err != nil {
			return err
		}
		if err := d.Show(g, cfg.Iterations); err != nil {
			return err
		}
	}

	// the fallback backend reports the backend that did the work
	m.Backend = b.ID()

	if err := initial.CopyFrom(g); err != nil {
		return err
	}

	if *memviz {
		if err := dumpStructure(initial, b); err != nil {
			return err
		}
	}

	if err := d.End(); err != nil {
		return err
	}

	if err := m.Report(md.Output); err != nil {
		return err
	}

	if *fingerprint {
		fmt.Fprintf(md.Output, "digest: %s\n", digest.Of(initial))
		if history != nil {
			fmt.Fprintf(md.Output, "history: %s (%d generations)\n", history.Hash(), history.Count())
		}
	}

	return nil
}

func dumpStructure(g *grid.Grid, b backend.Backend) error {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", string(b.ID())))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	display.DumpStructure(f, g, b)
	logger.Logf(logger.Allow, "display", "memviz written to %s", fn)

	return nil
}

func compare(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	ga := addGridArgs(md)
	show := md.AddBool("show", false, "show both grids if they differ")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := ga.preferences(md)
	if err != nil {
		return err
	}

	cfg, err := ga.config(prf)
	if err != nil {
		return err
	}

	initial, err := setup.NewGrid(cfg)
	if err != nil {
		return err
	}

	xlr, err := newAccelerator(prf, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := xlr.close(); err != nil {
			logger.Log(logger.Allow, "backend", err)
		}
	}()

	cmp, err := backend.Compare(ctx, initial, cfg.Iterations,
		backend.Candidate{Backend: backend.NewSoftware()},
		backend.Candidate{Backend: xlr.backend, Place: xlr.backend.Place},
	)
	if err != nil {
		if errors.Is(err, backend.ErrLayoutMismatch) && *show {
			txt := display.NewText(md.Output)
			_ = txt.Show(cmp.A, cfg.Iterations)
			_ = txt.Show(cmp.B, cfg.Iterations)
		}
		return err
	}

	fmt.Fprintf(md.Output, "backends agree after %d generations (%d live cells, digest %s)\n",
		cfg.Iterations, cmp.A.Population(), digest.Of(cmp.A))

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	ga := addGridArgs(md)
	backendID := md.AddString("backend", "software", "backend to measure: software, accelerator")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	prf, err := ga.preferences(md)
	if err != nil {
		return err
	}

	// measurements are of a single backend
	if err := prf.Fallback.Set(false); err != nil {
		return err
	}
	if err := prf.Backend.Set(*backendID); err != nil {
		return err
	}

	cfg, err := ga.config(prf)
	if err != nil {
		return err
	}

	initial, err := setup.NewGrid(cfg)
	if err != nil {
		return err
	}

	b, g, closeBackend, err := selectBackend(prf, cfg, initial)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logger.Log(logger.Allow, "backend", err)
		}
	}()

	return performance.Check(ctx, md.Output, prof, b, g, cfg.Iterations)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(md.Output, rev)
		return nil
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}

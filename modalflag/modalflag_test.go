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

package modalflag_test

import (
	"io"
	"testing"

	"github.com/cgol-xlr/cgol/modalflag"
	"github.com/cgol-xlr/cgol/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, md.Parsed(), true)
}

func TestFlagsWithoutModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-width", "100", "-torus", "glider", "extra"})
	width := md.AddInt("width", 64, "grid width")
	torus := md.AddBool("torus", false, "wrap edges")
	density := md.AddFloat64("density", 0.25, "soup density")

	test.ExpectEquality(t, *width, 64)
	test.ExpectEquality(t, *torus, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectEquality(t, *width, 100)
	test.ExpectEquality(t, *torus, true)
	test.ExpectEquality(t, *density, 0.25)

	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "glider")
	test.ExpectEquality(t, md.GetArg(1), "extra")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "torus")
	test.ExpectEquality(t, visited[1], "width")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-height", "10"})
	md.AddInt("width", 64, "grid width")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("torus", true, "wrap edges")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -torus\n" +
		"    	wrap edges (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "compare", "version")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: RUN, COMPARE, VERSION\n" +
		"    default: RUN\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("torus", true, "wrap edges")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("patterns are in the resources directory")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -torus\n" +
		"    	wrap edges (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"patterns are in the resources directory\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpInSubMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"compare", "-help"})
	md.AddSubModes("run", "compare")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "COMPARE")

	md.NewMode()
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available for COMPARE mode\n"), tw.String())
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"glider"})
	md.AddSubModes("run", "version")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "glider")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "glider")
}

func TestDefaultModeWithFlags(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-width", "20", "glider"})
	md.AddSubModes("run", "version")

	// the flag is not known to the first layer so the default sub-mode is
	// chosen and the flag is left for the next layer
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	width := md.AddInt("width", 64, "grid width")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *width, 20)
	test.ExpectEquality(t, md.GetArg(0), "glider")
}

func TestSelectedModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-log", "performance", "cpu", "-generations", "50"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("run", "performance")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "PERFORMANCE")
	test.ExpectEquality(t, len(md.RemainingArgs()), 3)

	md.NewMode()
	md.AddSubModes("software")
	md.AddDefaultSubMode("cpu")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CPU")
	test.ExpectEquality(t, md.Path(), "PERFORMANCE/CPU")
	test.ExpectEquality(t, md.String(), "PERFORMANCE/CPU")

	md.NewMode()
	generations := md.AddInt("generations", 10, "number of generations")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *generations, 50)
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

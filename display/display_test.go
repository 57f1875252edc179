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

package display_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cgol-xlr/cgol/display"
	"github.com/cgol-xlr/cgol/display/ansi"
	"github.com/cgol-xlr/cgol/evolver"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/test"
)

func blinker(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(3, 3, grid.Bounded)
	test.DemandSuccess(t, err)
	for c := range 3 {
		test.DemandSuccess(t, g.Set(1, c, true))
	}
	return g
}

func TestNew(t *testing.T) {
	for _, k := range display.Kinds {
		d, err := display.New(k, &test.CompareWriter{})
		test.ExpectSuccess(t, err, k)
		test.ExpectImplements[display.Display](t, d, k)
	}
	_, err := display.New("hologram", &test.CompareWriter{})
	test.ExpectFailure(t, err)
}

func TestText(t *testing.T) {
	w := &test.CompareWriter{}
	txt := display.NewText(w)

	test.ExpectSuccess(t, txt.Show(blinker(t), 7))
	test.ExpectSuccess(t, w.Compare("generation 7\n...\nOOO\n...\n"))

	w.Clear()
	txt.Alive = '#'
	txt.Dead = ' '
	test.ExpectSuccess(t, txt.Show(blinker(t), 8))
	test.ExpectSuccess(t, w.Compare("generation 8\n   \n###\n   \n"))
	test.ExpectSuccess(t, txt.End())
}

func TestTerminal(t *testing.T) {
	w := &test.CompareWriter{}
	tm, err := display.NewTerminal(w)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tm.SetCells("red", "@", "-"))

	test.ExpectSuccess(t, tm.Show(blinker(t), 1))
	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, ansi.ClearScreen))
	test.ExpectSuccess(t, strings.Contains(s, "population 3"))
	test.ExpectEquality(t, strings.Count(s, "@"), 3)
	test.ExpectEquality(t, strings.Count(s, "-"), 6)

	// subsequent frames do not clear the screen
	w.Clear()
	test.ExpectSuccess(t, tm.Show(blinker(t), 2))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), ansi.CursorHome))
	test.ExpectEquality(t, tm.Frames(), 2)

	w.Clear()
	test.ExpectSuccess(t, tm.End())
	test.ExpectSuccess(t, w.Compare(ansi.CursorShow))

	test.ExpectFailure(t, tm.SetCells("puce", "@", "-"))
}

func TestObserve(t *testing.T) {
	w := &test.CompareWriter{}
	ev := evolver.NewEvolver()
	ev.Observer = display.Observe(display.NewText(w))

	test.DemandSuccess(t, ev.Run(context.Background(), blinker(t), 2))
	test.ExpectSuccess(t, w.Compare("generation 1\n.O.\n.O.\n.O.\ngeneration 2\n...\nOOO\n...\n"))
}

func TestDumpStructure(t *testing.T) {
	w := &test.CompareWriter{}
	display.DumpStructure(w, blinker(t))
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

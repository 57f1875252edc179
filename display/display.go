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

// Package display shows the state of a grid. A Display is given the grid
// after the final generation, or after every generation if the evolver's
// Observer is set with Observe(). A Display never changes the grid.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
)

// Display is implemented by any type that can show a grid.
type Display interface {
	// Show the grid after the generation
	Show(g *grid.Grid, generation int) error

	// End is called once no more grids will be shown. It may block, for
	// example to wait for the user to dismiss the display
	End() error
}

// Kinds lists the values accepted by New().
var Kinds = []string{"text", "terminal", "none"}

// New creates a display of the named kind that writes to w.
func New(kind string, w io.Writer) (Display, error) {
	switch strings.ToLower(kind) {
	case "text":
		return NewText(w), nil
	case "terminal":
		return NewTerminal(w)
	case "none", "":
		return None{}, nil
	}
	return nil, fmt.Errorf("display: unrecognised display (%s)", kind)
}

// Observe returns a function suitable for the evolver's Observer field. Show
// errors are logged but otherwise ignored.
func Observe(d Display) func(g *grid.Grid, generation int) {
	return func(g *grid.Grid, generation int) {
		if err := d.Show(g, generation); err != nil {
			logger.Log(logger.Allow, "display", err)
		}
	}
}

// None is a display that shows nothing.
type None struct{}

// Show implements the Display interface.
func (None) Show(_ *grid.Grid, _ int) error {
	return nil
}

// End implements the Display interface.
func (None) End() error {
	return nil
}

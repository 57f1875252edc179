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

package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cgol-xlr/cgol/display/ansi"
	"github.com/cgol-xlr/cgol/grid"
)

// Terminal draws grids on an ANSI terminal. Each call to Show() replaces the
// previous frame.
type Terminal struct {
	w io.Writer

	// the strings used for each cell. they may include ANSI sequences
	alive string
	dead  string

	// if Interactive is true then End() waits for a key press before
	// returning
	Interactive bool

	// the terminal device used to read the key press
	TTY string

	frames int
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(w io.Writer) (*Terminal, error) {
	tm := &Terminal{
		w:   w,
		TTY: "/dev/tty",
	}
	if err := tm.SetCells("green", "O", "."); err != nil {
		return nil, err
	}
	return tm, nil
}

// SetCells changes the appearance of alive and dead cells. Alive cells are
// drawn in the named pen colour.
func (tm *Terminal) SetCells(pen string, alive string, dead string) error {
	p, err := ansi.ColorBuild(pen, "", "bold", true, false)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	tm.alive = p + alive + ansi.NormalPen
	tm.dead = dead
	return nil
}

// Frames returns the number of frames drawn.
func (tm *Terminal) Frames() int {
	return tm.frames
}

// Show implements the Display interface.
func (tm *Terminal) Show(g *grid.Grid, generation int) error {
	b := bufio.NewWriter(tm.w)

	if tm.frames == 0 {
		b.WriteString(ansi.ClearScreen)
		b.WriteString(ansi.CursorHide)
	}
	b.WriteString(ansi.CursorHome)
	b.WriteString(ansi.ClearLine)
	fmt.Fprintf(b, "generation %d  population %d\n", generation, g.Population())
	writeRows(b, g, tm.alive, tm.dead)

	if err := b.Flush(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	tm.frames++

	return nil
}

// End implements the Display interface.
func (tm *Terminal) End() error {
	if _, err := io.WriteString(tm.w, ansi.CursorShow); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if !tm.Interactive {
		return nil
	}
	if _, err := io.WriteString(tm.w, "press any key\n"); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return waitKey(tm.TTY)
}

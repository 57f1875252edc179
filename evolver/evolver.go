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

package evolver

import (
	"context"
	"fmt"

	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
)

// Evolver computes generations of a grid in software.
type Evolver struct {
	cache *RowCache

	// details of the grid currently being processed. set at the start of
	// every Step()
	width    int
	stride   int
	wrap     bool
	lastBit  uint
	lastMask uint32

	// Observer is called after every generation completed by Run(). The
	// generation argument counts from one. The grid must not be modified by
	// the observer.
	Observer func(g *grid.Grid, generation int)
}

// NewEvolver is the preferred method of initialisation for the Evolver type.
func NewEvolver() *Evolver {
	return &Evolver{}
}

// Run advances the grid by the specified number of generations. A count of
// zero leaves the grid unchanged. The context is checked between generations
// and if it is cancelled the grid is left at the last completed generation.
func (ev *Evolver) Run(ctx context.Context, g *grid.Grid, generations int) error {
	if generations < 0 {
		return fmt.Errorf("evolver: negative generation count (%d)", generations)
	}

	for i := 1; i <= generations; i++ {
		if err := ctx.Err(); err != nil {
			logger.Logf(logger.Allow, "evolver", "stopped after %d of %d generations", i-1, generations)
			return fmt.Errorf("evolver: %w", err)
		}
		ev.Step(g)
		if ev.Observer != nil {
			ev.Observer(g, i)
		}
	}

	return nil
}

// Step advances the grid by exactly one generation.
func (ev *Evolver) Step(g *grid.Grid) {
	ev.prepare(g)

	rc := ev.cache
	rc.Reset(g)

	for r := 0; r < g.Height(); r++ {
		rc.LoadAhead(g, r)
		ev.row(rc.prev, rc.curr, rc.ahead, rc.next)
		g.CommitRow(r, rc.next)
		rc.Rotate()
	}
}

func (ev *Evolver) prepare(g *grid.Grid) {
	ev.width = g.Width()
	ev.stride = g.Stride()
	ev.wrap = g.Boundary() == grid.Toroidal
	ev.lastBit = uint((ev.width - 1) % grid.WordBits)
	ev.lastMask = g.LastWordMask()

	if ev.cache == nil || !ev.cache.fits(ev.stride) {
		ev.cache = NewRowCache(ev.stride)
	}
}

// west returns word i of the row shifted so that each bit holds the cell to
// its left.
func (ev *Evolver) west(row []uint32, i int) uint32 {
	w := row[i] << 1
	if i > 0 {
		w |= row[i-1] >> (grid.WordBits - 1)
	} else if ev.wrap {
		w |= (row[ev.stride-1] >> ev.lastBit) & 1
	}
	return w
}

// east returns word i of the row shifted so that each bit holds the cell to
// its right. padding bits are zero so the cell to the right of the last column
// is dead unless the grid wraps.
func (ev *Evolver) east(row []uint32, i int) uint32 {
	e := row[i] >> 1
	if i < ev.stride-1 {
		e |= row[i+1] << (grid.WordBits - 1)
	} else if ev.wrap {
		e |= (row[0] & 1) << ev.lastBit
	}
	return e
}

// add one bit-plane to the bit-sliced counter. s0 and s1 are the low two bits
// of the count and s2 is set once the count reaches four. a count of four or
// more kills the cell so there is no need to count any higher.
func add(s0, s1, s2, x uint32) (uint32, uint32, uint32) {
	c0 := s0 & x
	s0 ^= x
	c1 := s1 & c0
	s1 ^= c0
	s2 |= c1
	return s0, s1, s2
}

// row computes the next generation for the curr row into next.
func (ev *Evolver) row(prev, curr, ahead, next []uint32) {
	for i := 0; i < ev.stride; i++ {
		var s0, s1, s2 uint32

		s0, s1, s2 = add(s0, s1, s2, ev.west(prev, i))
		s0, s1, s2 = add(s0, s1, s2, prev[i])
		s0, s1, s2 = add(s0, s1, s2, ev.east(prev, i))
		s0, s1, s2 = add(s0, s1, s2, ev.west(curr, i))
		s0, s1, s2 = add(s0, s1, s2, ev.east(curr, i))
		s0, s1, s2 = add(s0, s1, s2, ev.west(ahead, i))
		s0, s1, s2 = add(s0, s1, s2, ahead[i])
		s0, s1, s2 = add(s0, s1, s2, ev.east(ahead, i))

		// alive with exactly three neighbours, or exactly two neighbours and
		// already alive
		next[i] = s1 &^ s2 & (s0 | curr[i])
	}
	next[ev.stride-1] &= ev.lastMask
}

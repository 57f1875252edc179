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

import "github.com/cgol-xlr/cgol/grid"

// RowCache holds the rows needed to update one row of a grid in place.
//
// When row r is being computed, prev holds the original content of row r-1,
// curr holds the original content of row r and ahead holds the original
// content of row r+1. The result for row r is assembled in next.
//
// The first field holds the original content of row zero. For a toroidal grid
// this is the row below the last row and it will have been overwritten by the
// time the last row is reached.
type RowCache struct {
	prev  []uint32
	curr  []uint32
	ahead []uint32
	next  []uint32
	first []uint32
}

// NewRowCache is the preferred method of initialisation for the RowCache
// type. The stride argument is the number of words in each row.
func NewRowCache(stride int) *RowCache {
	return &RowCache{
		prev:  make([]uint32, stride),
		curr:  make([]uint32, stride),
		ahead: make([]uint32, stride),
		next:  make([]uint32, stride),
		first: make([]uint32, stride),
	}
}

func (rc *RowCache) fits(stride int) bool {
	return len(rc.prev) == stride
}

// Reset prepares the cache for a new sweep of the grid. The grid must not
// have been modified since the previous generation completed.
func (rc *RowCache) Reset(g *grid.Grid) {
	g.CopyRow(rc.first, 0)
	copy(rc.curr, rc.first)
	switch g.Boundary() {
	case grid.Toroidal:
		g.CopyRow(rc.prev, g.Height()-1)
	default:
		clear(rc.prev)
	}
	clear(rc.ahead)
	clear(rc.next)
}

// LoadAhead reads the original content of the row below row r. This must
// happen before row r is committed.
func (rc *RowCache) LoadAhead(g *grid.Grid, r int) {
	if r+1 < g.Height() {
		g.CopyRow(rc.ahead, r+1)
		return
	}

	switch g.Boundary() {
	case grid.Toroidal:
		copy(rc.ahead, rc.first)
	default:
		clear(rc.ahead)
	}
}

// Rotate moves the window down by one row. The buffers are swapped rather
// than copied.
func (rc *RowCache) Rotate() {
	rc.prev, rc.curr, rc.ahead = rc.curr, rc.ahead, rc.prev
}

// Prev returns the original content of the row above the current row.
func (rc *RowCache) Prev() []uint32 {
	return rc.prev
}

// Curr returns the original content of the current row.
func (rc *RowCache) Curr() []uint32 {
	return rc.curr
}

// Ahead returns the original content of the row below the current row.
func (rc *RowCache) Ahead() []uint32 {
	return rc.ahead
}

// Next returns the buffer in which the result for the current row is built.
func (rc *RowCache) Next() []uint32 {
	return rc.next
}

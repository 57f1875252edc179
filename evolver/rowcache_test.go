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

package evolver_test

import (
	"testing"

	"github.com/cgol-xlr/cgol/evolver"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/test"
)

func rowGrid(t *testing.T, boundary grid.Boundary) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(8, 4, boundary)
	test.DemandSuccess(t, err)
	for r := 0; r < 4; r++ {
		g.Row(r)[0] = uint32(r + 1)
	}
	return g
}

func TestRowCacheToroidal(t *testing.T) {
	g := rowGrid(t, grid.Toroidal)
	rc := evolver.NewRowCache(g.Stride())

	rc.Reset(g)
	test.ExpectEquality(t, rc.Prev()[0], uint32(4))
	test.ExpectEquality(t, rc.Curr()[0], uint32(1))

	for r := 0; r < g.Height(); r++ {
		rc.LoadAhead(g, r)

		// simulate the commit of row r. the cache must continue to return
		// the original content
		g.Row(r)[0] = 0xff

		if r < g.Height()-1 {
			test.ExpectEquality(t, rc.Ahead()[0], uint32(r+2), r)
		} else {
			test.ExpectEquality(t, rc.Ahead()[0], uint32(1), r)
		}
		rc.Rotate()

		test.ExpectEquality(t, rc.Prev()[0], uint32(r+1), r)
	}
}

func TestRowCacheBounded(t *testing.T) {
	g := rowGrid(t, grid.Bounded)
	rc := evolver.NewRowCache(g.Stride())

	rc.Reset(g)
	test.ExpectEquality(t, rc.Prev()[0], uint32(0))
	test.ExpectEquality(t, rc.Curr()[0], uint32(1))

	rc.LoadAhead(g, 0)
	test.ExpectEquality(t, rc.Ahead()[0], uint32(2))

	rc.LoadAhead(g, g.Height()-1)
	test.ExpectEquality(t, rc.Ahead()[0], uint32(0))
}

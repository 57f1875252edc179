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
	"context"
	"math/rand"
	"testing"

	"github.com/cgol-xlr/cgol/evolver"
	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/test"
)

// reference returns the next generation of g computed one cell at a time,
// using a second grid so there is no possibility of reading updated cells
func reference(t *testing.T, g *grid.Grid) *grid.Grid {
	t.Helper()
	n := g.Clone()
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cnt, err := g.NeighbourCount(r, c)
			test.DemandSuccess(t, err)
			alive, err := g.Get(r, c)
			test.DemandSuccess(t, err)
			test.DemandSuccess(t, n.Set(r, c, cnt == 3 || (cnt == 2 && alive)))
		}
	}
	return n
}

func randomGrid(t *testing.T, rnd *rand.Rand, width, height int, boundary grid.Boundary) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(width, height, boundary)
	test.DemandSuccess(t, err)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			test.DemandSuccess(t, g.Set(r, c, rnd.Intn(3) == 0))
		}
	}
	return g
}

func set(t *testing.T, g *grid.Grid, cells ...grid.Coords) {
	t.Helper()
	for _, c := range cells {
		test.DemandSuccess(t, g.Set(c.Row, c.Col, true))
	}
}

func TestEmptyGrid(t *testing.T) {
	ev := evolver.NewEvolver()
	for _, b := range []grid.Boundary{grid.Toroidal, grid.Bounded} {
		for _, d := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {32, 3}, {33, 7}, {100, 40}} {
			g, err := grid.NewGrid(d[0], d[1], b)
			test.DemandSuccess(t, err)
			ev.Step(g)
			test.ExpectEquality(t, g.Population(), 0, b, d)
		}
	}
}

func TestIsolatedCell(t *testing.T) {
	g, err := grid.NewGrid(3, 3, grid.Toroidal)
	test.DemandSuccess(t, err)
	set(t, g, grid.Coords{Row: 1, Col: 1})

	evolver.NewEvolver().Step(g)
	test.ExpectEquality(t, g.Population(), 0)
}

func TestBlinker(t *testing.T) {
	g, err := grid.NewGrid(5, 5, grid.Toroidal)
	test.DemandSuccess(t, err)
	set(t, g, grid.Coords{Row: 2, Col: 1}, grid.Coords{Row: 2, Col: 2}, grid.Coords{Row: 2, Col: 3})
	horizontal := g.Clone()

	ev := evolver.NewEvolver()
	ev.Step(g)
	test.ExpectEquality(t, g.String(), ".....\n..O..\n..O..\n..O..\n.....\n")

	ev.Step(g)
	test.ExpectSuccess(t, g.Equal(horizontal))
}

func TestBlinkerAcrossWrap(t *testing.T) {
	// a vertical blinker that straddles the top and bottom edges of the torus
	g, err := grid.NewGrid(40, 6, grid.Toroidal)
	test.DemandSuccess(t, err)
	set(t, g, grid.Coords{Row: 5, Col: 0}, grid.Coords{Row: 0, Col: 0}, grid.Coords{Row: 1, Col: 0})

	evolver.NewEvolver().Step(g)

	exp, err := grid.NewGrid(40, 6, grid.Toroidal)
	test.DemandSuccess(t, err)
	set(t, exp, grid.Coords{Row: 0, Col: 39}, grid.Coords{Row: 0, Col: 0}, grid.Coords{Row: 0, Col: 1})
	test.ExpectSuccess(t, g.Equal(exp))
}

func TestGlider(t *testing.T) {
	g, err := grid.NewGrid(8, 8, grid.Bounded)
	test.DemandSuccess(t, err)

	glider := []grid.Coords{{Row: 1, Col: 0}, {Row: 2, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
	set(t, g, glider...)

	ev := evolver.NewEvolver()
	for shift := 1; shift <= 2; shift++ {
		test.DemandSuccess(t, ev.Run(context.Background(), g, 4))

		exp, err := grid.NewGrid(8, 8, grid.Bounded)
		test.DemandSuccess(t, err)
		for _, c := range glider {
			set(t, exp, grid.Coords{Row: c.Row + shift, Col: c.Col + shift})
		}
		test.ExpectSuccess(t, g.Equal(exp), shift)
	}
}

// the in-place bitwise update must agree with the cell by cell reference for
// every combination of edge condition
func TestReferenceEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(2600))
	ev := evolver.NewEvolver()

	widths := []int{1, 2, 3, 7, 31, 32, 33, 63, 64, 65, 100}
	heights := []int{1, 2, 3, 17}

	for _, b := range []grid.Boundary{grid.Toroidal, grid.Bounded} {
		for _, w := range widths {
			for _, h := range heights {
				g := randomGrid(t, rnd, w, h, b)
				for gen := 0; gen < 4; gen++ {
					exp := reference(t, g)
					ev.Step(g)
					if !test.ExpectSuccess(t, g.Equal(exp), b, w, h, gen) {
						c, _ := g.FirstDifference(exp)
						t.Logf("first difference at %v\n%s", c, g)
						break
					}
				}
			}
		}
	}
}

func TestRun(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	g := randomGrid(t, rnd, 20, 20, grid.Toroidal)
	before := g.Clone()

	ev := evolver.NewEvolver()

	// zero generations is a valid request and changes nothing
	test.ExpectSuccess(t, ev.Run(context.Background(), g, 0))
	test.ExpectSuccess(t, g.Equal(before))

	test.ExpectFailure(t, ev.Run(context.Background(), g, -1))
	test.ExpectSuccess(t, g.Equal(before))

	var generations []int
	ev.Observer = func(_ *grid.Grid, generation int) {
		generations = append(generations, generation)
	}
	test.ExpectSuccess(t, ev.Run(context.Background(), g, 3))
	test.ExpectEquality(t, len(generations), 3)
	test.ExpectEquality(t, generations[2], 3)

	exp := before
	for range 3 {
		exp = reference(t, exp)
	}
	test.ExpectSuccess(t, g.Equal(exp))

	// a cancelled context stops the run before any generation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	before = g.Clone()
	test.ExpectFailure(t, ev.Run(ctx, g, 10))
	test.ExpectSuccess(t, g.Equal(before))
}

// the same evolver can be used with grids of different sizes
func TestDifferentGrids(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	ev := evolver.NewEvolver()
	for _, w := range []int{70, 5, 33} {
		g := randomGrid(t, rnd, w, 9, grid.Toroidal)
		exp := reference(t, g)
		ev.Step(g)
		test.ExpectSuccess(t, g.Equal(exp), w)
	}
}

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

package grid

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// WordBits is the number of cells stored in each word of the grid.
const WordBits = 32

// MaxDimension is the largest width or height of a grid.
const MaxDimension = 0xffff

// Sentinel errors returned by the grid package. Errors are wrapped so use
// errors.Is() to test for them.
var (
	// the grid width or height is zero, negative or too large
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// a coordinate is outside the grid
	ErrOutOfRange = errors.New("out of range")
)

// Coords identify a single cell in the grid.
type Coords struct {
	Row int
	Col int
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Stride returns the number of words required for a single row of the
// specified width.
func Stride(width int) int {
	return (width + WordBits - 1) / WordBits
}

// WordsRequired returns the number of words of storage required for a grid of
// the specified dimensions.
func WordsRequired(width, height int) int {
	return Stride(width) * height
}

// Grid is a bit-packed Game of Life grid. See the package documentation for a
// description of the layout.
type Grid struct {
	width    int
	height   int
	stride   int
	boundary Boundary

	// mask of the valid bits in the last word of each row
	lastMask uint32

	words []uint32
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("grid: %w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// NewGrid is the preferred method of initialisation for the Grid type. All
// cells in the new grid are dead.
func NewGrid(width, height int, boundary Boundary) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return newGrid(make([]uint32, WordsRequired(width, height)), width, height, boundary), nil
}

// NewGridOver creates a grid that uses the supplied words for storage rather
// than allocating its own. This is used to place the grid in memory that is
// visible to the accelerator. Only the first WordsRequired() words are used
// and the content of those words is preserved, except for the padding bits
// which are cleared.
func NewGridOver(words []uint32, width, height int, boundary Boundary) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	n := WordsRequired(width, height)
	if len(words) < n {
		return nil, fmt.Errorf("grid: %w: %dx%d requires %d words of storage, %d supplied",
			ErrInvalidDimensions, width, height, n, len(words))
	}
	g := newGrid(words[:n:n], width, height, boundary)
	for r := 0; r < height; r++ {
		g.words[r*g.stride+g.stride-1] &= g.lastMask
	}
	return g, nil
}

func newGrid(words []uint32, width, height int, boundary Boundary) *Grid {
	g := &Grid{
		width:    width,
		height:   height,
		stride:   Stride(width),
		boundary: boundary,
		words:    words,
		lastMask: ^uint32(0),
	}
	if n := width % WordBits; n != 0 {
		g.lastMask = (uint32(1) << n) - 1
	}
	return g
}

// Width returns the number of cells in each row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Stride returns the number of words in each row.
func (g *Grid) Stride() int {
	return g.stride
}

// Boundary returns the boundary policy of the grid.
func (g *Grid) Boundary() Boundary {
	return g.boundary
}

// Words returns the underlying storage of the grid. Changing the content of
// the slice changes the grid.
func (g *Grid) Words() []uint32 {
	return g.words
}

// LastWordMask returns the mask of valid (non-padding) bits in the last word
// of every row.
func (g *Grid) LastWordMask() uint32 {
	return g.lastMask
}

func (g *Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// the bit for (row, col). coordinates must be in range
func (g *Grid) bit(row, col int) bool {
	return g.words[row*g.stride+col/WordBits]&(1<<(col%WordBits)) != 0
}

// Get returns true if the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	if !g.inRange(row, col) {
		return false, fmt.Errorf("grid: %w: %v in %dx%d grid", ErrOutOfRange, Coords{row, col}, g.width, g.height)
	}
	return g.bit(row, col), nil
}

// Set the cell at (row, col) to alive (true) or dead (false).
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inRange(row, col) {
		return fmt.Errorf("grid: %w: %v in %dx%d grid", ErrOutOfRange, Coords{row, col}, g.width, g.height)
	}
	idx := row*g.stride + col/WordBits
	if alive {
		g.words[idx] |= 1 << (col % WordBits)
	} else {
		g.words[idx] &^= 1 << (col % WordBits)
	}
	return nil
}

// NeighbourCount returns the number of live cells among the eight neighbours
// of the cell at (row, col).
//
// On a Toroidal grid the neighbour coordinates wrap around the edges of the
// grid. Note that this means that for very narrow or very short grids the same
// cell may be counted more than once and that a cell may count itself. For a
// Bounded grid neighbours outside the grid are not counted.
func (g *Grid) NeighbourCount(row, col int) (int, error) {
	if !g.inRange(row, col) {
		return 0, fmt.Errorf("grid: %w: %v in %dx%d grid", ErrOutOfRange, Coords{row, col}, g.width, g.height)
	}

	var n int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := row + dr
			c := col + dc
			if g.boundary == Toroidal {
				r = (r + g.height) % g.height
				c = (c + g.width) % g.width
			} else if !g.inRange(r, c) {
				continue
			}
			if g.bit(r, c) {
				n++
			}
		}
	}

	return n, nil
}

// Row returns the words for the specified row. The returned slice refers to
// the grid storage and is not a copy. The function will panic if the row is
// out of range.
func (g *Grid) Row(row int) []uint32 {
	return g.words[row*g.stride : (row+1)*g.stride]
}

// CopyRow copies the words of the specified row into dst, which must be at
// least Stride() words long.
func (g *Grid) CopyRow(dst []uint32, row int) {
	copy(dst[:g.stride], g.Row(row))
}

// CommitRow copies src into the specified row. Padding bits in src are not
// copied.
func (g *Grid) CommitRow(row int, src []uint32) {
	r := g.Row(row)
	copy(r, src[:g.stride])
	r[g.stride-1] &= g.lastMask
}

// Clear kills every cell in the grid.
func (g *Grid) Clear() {
	clear(g.words)
}

// Population returns the number of live cells in the grid.
func (g *Grid) Population() int {
	var n int
	for _, w := range g.words {
		n += bits.OnesCount32(w)
	}
	return n
}

// Clone returns a copy of the grid with its own storage.
func (g *Grid) Clone() *Grid {
	c := newGrid(make([]uint32, len(g.words)), g.width, g.height, g.boundary)
	copy(c.words, g.words)
	return c
}

// CopyFrom copies the cells of another grid into this grid. The grids must
// have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.width != src.width || g.height != src.height {
		return fmt.Errorf("grid: %w: cannot copy %dx%d grid to %dx%d grid",
			ErrInvalidDimensions, src.width, src.height, g.width, g.height)
	}
	copy(g.words, src.words)
	return nil
}

// Equal returns true if the two grids have the same dimensions and the same
// cells are alive. The boundary policy is not compared.
func (g *Grid) Equal(o *Grid) bool {
	_, diff := g.FirstDifference(o)
	return !diff
}

// FirstDifference returns the coordinates of the first cell (in row order)
// that differs between the two grids. If the grids have different dimensions
// then the coordinates are (-1, -1).
func (g *Grid) FirstDifference(o *Grid) (Coords, bool) {
	if g.width != o.width || g.height != o.height {
		return Coords{-1, -1}, true
	}
	for i := range g.words {
		if d := g.words[i] ^ o.words[i]; d != 0 {
			return Coords{
				Row: i / g.stride,
				Col: (i%g.stride)*WordBits + bits.TrailingZeros32(d),
			}, true
		}
	}
	return Coords{}, false
}

// String returns the grid as rows of 'O' (alive) and '.' (dead) characters.
// Each row is terminated by a newline.
func (g *Grid) String() string {
	s := strings.Builder{}
	s.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.bit(r, c) {
				s.WriteByte('O')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

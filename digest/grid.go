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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/cgol-xlr/cgol/grid"
)

// Of returns the fingerprint of a single grid. Two grids with the same
// dimensions and the same live cells have the same fingerprint.
func Of(g *grid.Grid) string {
	data := make([]byte, 8+g.EncodedSize())
	header(data, g)
	_ = g.Encode(data[8:])
	return fmt.Sprintf("%x", sha1.Sum(data))
}

func header(data []byte, g *grid.Grid) {
	grid.ByteOrder.PutUint32(data[0:], uint32(g.Width()))
	grid.ByteOrder.PutUint32(data[4:], uint32(g.Height()))
}

// Generations is a fingerprint chained over successive generations of a grid.
type Generations struct {
	digest [sha1.Size]byte
	data   []byte
	count  int
}

// Hash implements the Digest interface.
func (dig *Generations) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Generations) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Count returns the number of grids added since the last reset.
func (dig *Generations) Count() int {
	return dig.count
}

// Add the grid to the fingerprint.
func (dig *Generations) Add(g *grid.Grid) error {
	// the previous fingerprint is at the head of the data so that it
	// contributes to the new fingerprint
	l := len(dig.digest) + 8 + g.EncodedSize()
	if len(dig.data) != l {
		dig.data = make([]byte, l)
	}

	n := copy(dig.data, dig.digest[:])
	header(dig.data[n:], g)
	if err := g.Encode(dig.data[n+8:]); err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	dig.digest = sha1.Sum(dig.data)
	dig.count++

	return nil
}

// Observe has the signature required by the evolver's Observer field. It
// adds every generation to the fingerprint.
func (dig *Generations) Observe(g *grid.Grid, _ int) {
	_ = dig.Add(g)
}

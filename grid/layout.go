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
	"encoding/binary"
	"fmt"
)

// ByteOrder is the order in which the bytes of each grid word are placed in
// byte addressable memory.
var ByteOrder = binary.LittleEndian

// EncodedSize returns the number of bytes required to encode the grid.
func (g *Grid) EncodedSize() int {
	return len(g.words) * 4
}

// Encode the grid into dst using the layout expected by the accelerator.
func (g *Grid) Encode(dst []byte) error {
	if len(dst) < g.EncodedSize() {
		return fmt.Errorf("grid: encode: %d bytes required, %d supplied", g.EncodedSize(), len(dst))
	}
	for i, w := range g.words {
		ByteOrder.PutUint32(dst[i*4:], w)
	}
	return nil
}

// Decode src into the grid. The src is expected to be in the layout written by
// Encode(). Padding bits in src are ignored.
func (g *Grid) Decode(src []byte) error {
	if len(src) < g.EncodedSize() {
		return fmt.Errorf("grid: decode: %d bytes required, %d supplied", g.EncodedSize(), len(src))
	}
	for i := range g.words {
		g.words[i] = ByteOrder.Uint32(src[i*4:])
	}
	for r := 0; r < g.height; r++ {
		g.words[r*g.stride+g.stride-1] &= g.lastMask
	}
	return nil
}

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

// Package grid implements the bit-packed Game of Life grid. Each cell is
// stored as a single bit and the grid is mutated in place by whichever backend
// is evolving it.
//
// The layout of the grid in memory is a contract with the hardware
// accelerator and must not be changed without changing the accelerator:
//
//   - storage is a sequence of 32bit words
//   - rows are stored in order, each row starting on a word boundary. the
//     number of words per row is the Stride, which is width/32 rounded up
//   - cell (row, col) is in word row*Stride+col/32 at bit col%32, counting
//     from the least significant bit
//   - bits in the last word of a row that are beyond the width of the grid
//     (padding bits) are always zero
//   - when the words are placed in byte addressable memory they are stored
//     in little-endian order (see ByteOrder)
//
// The Boundary of a grid decides how neighbours are found at the edges. A
// Toroidal grid wraps in both directions. On a Bounded grid any neighbour
// outside the grid is permanently dead.
package grid

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

// Package evolver is the software backend. It advances a grid.Grid one
// generation at a time, in place, without allocating a second grid.
//
// Rows are processed in order from top to bottom. A row can only be
// overwritten once the original content of the row below it has been read, and
// the original content of the row above it must be remembered because the
// grid copy has already been overwritten. The RowCache type holds this window
// of original rows. Each row is updated a word at a time using bitwise
// operations; the eight neighbours of every cell in a word are counted in
// parallel with a bit-sliced adder.
package evolver

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

// Package setup prepares the initial state of a grid. The grid can be seeded
// with a pattern, with a random soup of cells or with both.
//
// Patterns are either built-in or loaded from a file. Two file formats are
// supported: the plaintext format, usually with a .cells extension, and the
// run length encoded format, usually with a .rle extension. Pattern files are
// looked for in the working directory and then in the patterns sub-directory
// of the resource path.
//
// The Preferences type persists the grid and accelerator settings between
// runs of the program.
package setup

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

// Package digest produces fingerprints of grids. A fingerprint can be of a
// single grid or it can be chained over many generations of a grid, in which
// case it identifies the entire history of the grid and not only the final
// state.
package digest

// Digest implementations compute a fingerprint. The fingerprint is returned
// by Hash() as a string and reset with ResetDigest().
type Digest interface {
	Hash() string
	ResetDigest()
}

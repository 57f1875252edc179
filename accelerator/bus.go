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

package accelerator

// Bus is the host's view of the address space containing the register block.
// Accesses are raw unsigned 32-bit reads and writes with no framing. An
// implementation must not cache or reorder accesses.
type Bus interface {
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, val uint32) error
}

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

package display

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// DumpStructure writes a graphviz description of the values and everything
// they refer to. This is useful for inspecting a grid and the objects that
// drive it.
func DumpStructure(w io.Writer, values ...any) {
	memviz.Map(w, values...)
}

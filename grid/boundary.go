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
	"fmt"
	"strings"
)

// Boundary is the policy used when finding the neighbours of cells at the
// edge of the grid.
type Boundary int

// List of valid Boundary values.
const (
	Toroidal Boundary = iota
	Bounded
)

func (b Boundary) String() string {
	switch b {
	case Toroidal:
		return "TOROIDAL"
	case Bounded:
		return "BOUNDED"
	}
	return fmt.Sprintf("boundary(%d)", int(b))
}

// ParseBoundary converts a string to a Boundary value. The comparison is case
// insensitive and the alternatives WRAP and TORUS are accepted for Toroidal.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TOROIDAL", "TORUS", "WRAP":
		return Toroidal, nil
	case "BOUNDED":
		return Bounded, nil
	}
	return Toroidal, fmt.Errorf("grid: unknown boundary policy (%s)", s)
}

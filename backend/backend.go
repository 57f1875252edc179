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

// Package backend presents the software evolver and the accelerator behind a
// single interface so that the rest of the program does not need to know
// which of them is producing generations.
//
// After a successful call to Run() the grid contains the state after the
// requested number of generations, whichever backend is used. After a failed
// call the grid content is undefined and no generation count should be
// reported.
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/cgol-xlr/cgol/grid"
)

// ID identifies a type of backend.
type ID string

// List of valid ID values.
const (
	SoftwareID    ID = "software"
	AcceleratorID ID = "accelerator"
)

// IDs lists all valid ID values.
var IDs = []ID{SoftwareID, AcceleratorID}

// ParseID converts a string to an ID. The string is not case sensitive.
func ParseID(s string) (ID, error) {
	switch ID(strings.ToLower(strings.TrimSpace(s))) {
	case SoftwareID, "sw", "cpu":
		return SoftwareID, nil
	case AcceleratorID, "xlr", "hw":
		return AcceleratorID, nil
	}
	return "", fmt.Errorf("backend: unrecognised backend (%s)", s)
}

// Backend is implemented by any type that can advance a grid by a number of
// generations.
type Backend interface {
	ID() ID
	Run(ctx context.Context, g *grid.Grid, iterations int) error
}

// Holder is implemented by backends that may retain ownership of the grid
// memory after a failed run. If HoldsGrid() returns true the grid must not be
// read or modified.
type Holder interface {
	HoldsGrid() bool
}

// holdsGrid returns true if the backend implements Holder and holds the grid.
func holdsGrid(b Backend) bool {
	if h, ok := b.(Holder); ok {
		return h.HoldsGrid()
	}
	return false
}

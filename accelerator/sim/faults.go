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

package sim

import (
	"fmt"
	"io"
)

// Category classifies the reason for a fault
type Category string

// List of valid Category values
const (
	UnmappedAddress  Category = "unmapped address"
	MisalignedAccess Category = "misaligned access"
	IllegalRegister  Category = "illegal register"
)

// Fault is a single entry in the fault log
type Fault struct {
	Category Category

	// description of the event that triggered the fault
	Event string

	// the address being accessed
	Addr uint32

	// number of times this specific fault has been seen
	Count int
}

func (f Fault) String() string {
	return fmt.Sprintf("%s: %s: %08x", f.Category, f.Event, f.Addr)
}

// Faults records illegal accesses by the device or by the host
type Faults struct {
	// entries are keyed by category and address
	entries map[string]*Fault

	// all the faults in order of the first time they appear. the Count field
	// can be used to see if that fault was seen more than once *after* the
	// first appearance
	Log []*Fault
}

func newFaults() Faults {
	return Faults{
		entries: make(map[string]*Fault),
	}
}

// Clear all entries from faults log
func (flt *Faults) Clear() {
	clear(flt.entries)
	flt.Log = flt.Log[:0]
}

// WriteLog writes the list of faults in the order they were added
func (flt Faults) WriteLog(w io.Writer) {
	for _, f := range flt.Log {
		io.WriteString(w, f.String())
		io.WriteString(w, "\n")
	}
}

// add a new entry to the list of faults
func (flt *Faults) add(category Category, event string, addr uint32) {
	key := fmt.Sprintf("%s%08x", category, addr)

	f, found := flt.entries[key]
	if !found {
		f = &Fault{
			Category: category,
			Event:    event,
			Addr:     addr,
		}
		flt.entries[key] = f
		flt.Log = append(flt.Log, f)
	}

	f.Count++
}

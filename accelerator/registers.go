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

import "fmt"

// Register identifies one of the accelerator's registers.
type Register int

// List of valid Register values. The value of each register is its index in
// the register block.
const (
	GridBaseAddr Register = iota
	GridWidth
	GridHeight
	Start
	Done
	NumItr

	NumRegisters
)

// RegisterStride is the distance in bytes between adjacent registers.
const RegisterStride = 4

// Direction indicates which side of the protocol writes a register.
type Direction int

// List of valid Direction values.
const (
	HostToDevice Direction = iota
	DeviceToHost
)

func (d Direction) String() string {
	switch d {
	case HostToDevice:
		return "host->device"
	case DeviceToHost:
		return "device->host"
	}
	return "unknown direction"
}

type registerSpec struct {
	name   string
	offset uint32
	dir    Direction
}

var registers = [NumRegisters]registerSpec{
	GridBaseAddr: {name: "GRID_BASE_ADDR", offset: 0x00, dir: HostToDevice},
	GridWidth:    {name: "GRID_WIDTH", offset: 0x04, dir: HostToDevice},
	GridHeight:   {name: "GRID_HEIGHT", offset: 0x08, dir: HostToDevice},
	Start:        {name: "START", offset: 0x0c, dir: HostToDevice},
	Done:         {name: "DONE", offset: 0x10, dir: DeviceToHost},
	NumItr:       {name: "NUM_ITR", offset: 0x14, dir: HostToDevice},
}

// the register block layout is fixed by the hardware. a mistake in the table
// is a programming error
func init() {
	for i, r := range registers {
		if r.name == "" {
			panic(fmt.Sprintf("accelerator: register %d has no name", i))
		}
		if r.offset != uint32(i)*RegisterStride {
			panic(fmt.Sprintf("accelerator: register %s has offset %#02x", r.name, r.offset))
		}
	}
}

// Offset returns the byte offset of the register from the base of the
// register block.
func (r Register) Offset() uint32 {
	return registers[r].offset
}

// Direction returns which side of the protocol writes the register.
func (r Register) Direction() Direction {
	return registers[r].dir
}

func (r Register) String() string {
	if r < 0 || r >= NumRegisters {
		return fmt.Sprintf("register(%d)", int(r))
	}
	return registers[r].name
}

// RegisterAt returns the register at the byte offset from the base of the
// register block. The boolean return value is false if there is no register
// at the offset.
func RegisterAt(offset uint32) (Register, bool) {
	if offset%RegisterStride != 0 {
		return 0, false
	}
	r := Register(offset / RegisterStride)
	if r >= NumRegisters {
		return 0, false
	}
	return r, true
}

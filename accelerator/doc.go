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

// Package accelerator implements the host side of the register protocol used
// to drive a Game of Life accelerator.
//
// The accelerator is a memory-mapped device with six 32-bit registers placed
// four bytes apart from the base address of the register block. The host
// writes the address and dimensions of a grid and the number of generations
// to compute, writes one to START and then polls DONE until the device
// reports that the grid memory contains the result.
//
// The Channel type drives the protocol over any implementation of the Bus
// interface. The sim package provides a simulated device and address space.
// The mmio package provides a Bus over physical memory on Linux.
//
// While a run is in flight the grid memory belongs to the device. The host
// must not read or modify it until DONE has been observed.
package accelerator

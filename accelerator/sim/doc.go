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

// Package sim is a software model of the Game of Life accelerator and of the
// address space it shares with the host.
//
// The Bus type implements accelerator.Bus and so can be driven by an
// accelerator.Channel exactly as the real hardware would be. The Device
// computes generations with its own cell-serial engine, which shares no code
// with the software evolver. Comparing the two is a meaningful test of either.
//
// The System type wires a Bus and Device together at the default addresses.
package sim

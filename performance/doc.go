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

// Package performance contains helper functions relating to performance.
//
// Measurement times a single run of a backend and reports the rate at which
// generations and cells were processed. It is purely observational and has
// no effect on the grid.
//
// Check() is a quick way of measuring a backend. It will optionally generate
// profiling information.
//
// RunProfiler() can be used to generate the various profile types around any
// function.
package performance

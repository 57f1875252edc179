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

// Package statsview serves live runtime statistics while a long run is in
// progress. It is only functional when the statsview build constraint is
// present. Without it Available() returns false and Launch() fails.
//
//	Underlying funcionality provided by "github.com/go-echarts/statsview"
//
//	After launch, graphical statistics (heap, goroutines, GC) will be
//	viewable at:
//
//		localhost:12600/debug/statsview
//
//	And standard Go pprof statistics available at:
//
//		localhost:12600/debug/pprof/
package statsview

// DefaultAddress is the address used by the statsview server unless another
// is specified.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

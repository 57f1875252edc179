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
	"github.com/cgol-xlr/cgol/accelerator"
	"github.com/cgol-xlr/cgol/grid"
)

// engine computes generations one cell at a time. it holds three lines of
// unpacked cells: the original content of the line above, the current line
// and the line below. the original content of the top line is also kept for
// toroidal grids because it has been overwritten by the time the bottom line
// is reached
type engine struct {
	mem    Memory
	base   uint32
	width  int
	height int
	stride int
	wrap   bool
	layout Layout

	top   []bool
	above []bool
	line  []bool
	below []bool
	out   []bool
}

func newEngine(mem Memory, cfg accelerator.Config, boundary grid.Boundary, layout Layout) *engine {
	w := int(cfg.Width)
	return &engine{
		mem:    mem,
		base:   cfg.GridBaseAddr,
		width:  w,
		height: int(cfg.Height),
		stride: (w + 31) / 32,
		wrap:   boundary == grid.Toroidal,
		layout: layout,
		top:    make([]bool, w),
		above:  make([]bool, w),
		line:   make([]bool, w),
		below:  make([]bool, w),
		out:    make([]bool, w),
	}
}

func (e *engine) bit(col int) uint32 {
	if e.layout == MSBFirst {
		return 1 << (31 - col%32)
	}
	return 1 << (col % 32)
}

func (e *engine) addr(row int, word int) uint32 {
	return e.base + uint32(row*e.stride+word)*4
}

func (e *engine) load(dst []bool, row int) error {
	for k := range e.stride {
		v, err := e.mem.Load32(e.addr(row, k))
		if err != nil {
			return err
		}
		for c := k * 32; c < min((k+1)*32, e.width); c++ {
			dst[c] = v&e.bit(c) != 0
		}
	}
	return nil
}

func (e *engine) store(src []bool, row int) error {
	for k := range e.stride {
		var v uint32
		for c := k * 32; c < min((k+1)*32, e.width); c++ {
			if src[c] {
				v |= e.bit(c)
			}
		}
		if err := e.mem.Store32(e.addr(row, k), v); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) count(lines [3][]bool, col int) int {
	var n int
	for i, l := range lines {
		for dc := -1; dc <= 1; dc++ {
			if i == 1 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= e.width {
				if !e.wrap {
					continue
				}
				c = (c + e.width) % e.width
			}
			if l[c] {
				n++
			}
		}
	}
	return n
}

func (e *engine) generation() error {
	if err := e.load(e.top, 0); err != nil {
		return err
	}
	copy(e.line, e.top)

	if e.wrap {
		if err := e.load(e.above, e.height-1); err != nil {
			return err
		}
	} else {
		clear(e.above)
	}

	for r := range e.height {
		switch {
		case r+1 < e.height:
			if err := e.load(e.below, r+1); err != nil {
				return err
			}
		case e.wrap:
			copy(e.below, e.top)
		default:
			clear(e.below)
		}

		lines := [3][]bool{e.above, e.line, e.below}
		for c := range e.width {
			n := e.count(lines, c)
			e.out[c] = n == 3 || (n == 2 && e.line[c])
		}

		if err := e.store(e.out, r); err != nil {
			return err
		}

		e.above, e.line, e.below = e.line, e.below, e.above
	}

	return nil
}

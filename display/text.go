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
	"bufio"
	"fmt"
	"io"

	"github.com/cgol-xlr/cgol/grid"
)

// Text writes each grid as lines of characters, preceded by the generation.
type Text struct {
	w io.Writer

	Alive rune
	Dead  rune
}

// NewText is the preferred method of initialisation for the Text type.
func NewText(w io.Writer) *Text {
	return &Text{
		w:     w,
		Alive: 'O',
		Dead:  '.',
	}
}

// Show implements the Display interface.
func (txt *Text) Show(g *grid.Grid, generation int) error {
	b := bufio.NewWriter(txt.w)

	fmt.Fprintf(b, "generation %d\n", generation)
	writeRows(b, g, string(txt.Alive), string(txt.Dead))

	if err := b.Flush(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// End implements the Display interface.
func (txt *Text) End() error {
	return nil
}

func writeRows(b *bufio.Writer, g *grid.Grid, alive string, dead string) {
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			// coordinates are always in range
			if a, _ := g.Get(r, c); a {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
}

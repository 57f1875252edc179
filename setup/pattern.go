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

package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cgol-xlr/cgol/grid"
	"github.com/cgol-xlr/cgol/logger"
	"github.com/cgol-xlr/cgol/paths"
)

// ErrPattern is returned when a pattern cannot be parsed or found.
var ErrPattern = errors.New("pattern")

// the resource sub-directory searched by LoadPattern()
const patternsDir = "patterns"

// Pattern is a set of live cells relative to the top-left corner of the
// pattern's bounding box.
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []grid.Coords
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s (%dx%d, %d cells)", p.Name, p.Width, p.Height, len(p.Cells))
}

// Place the pattern on the grid with the top-left corner of the pattern at the
// row and column. On a toroidal grid the pattern wraps around the edges. On a
// bounded grid a pattern that does not fit is an error and the grid is not
// changed.
func (p Pattern) Place(g *grid.Grid, row int, col int) error {
	w := g.Width()
	h := g.Height()

	if g.Boundary() == grid.Bounded {
		if row < 0 || col < 0 || row+p.Height > h || col+p.Width > w {
			return fmt.Errorf("setup: %w: %s does not fit at %d,%d on a %dx%d grid",
				grid.ErrOutOfRange, p.Name, row, col, w, h)
		}
	}

	for _, c := range p.Cells {
		r := ((row+c.Row)%h + h) % h
		k := ((col+c.Col)%w + w) % w
		if err := g.Set(r, k, true); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}

	return nil
}

// Centre returns the row and column that will place the pattern in the middle
// of the grid.
func (p Pattern) Centre(g *grid.Grid) (int, int) {
	return max(0, (g.Height()-p.Height)/2), max(0, (g.Width()-p.Width)/2)
}

// ParsePlaintext reads a pattern in the plaintext format. Lines beginning with
// '!' are comments. The characters 'O' and '*' are live cells and '.' is a
// dead cell. A comment of the form "!Name: glider" names the pattern.
func ParsePlaintext(r io.Reader, name string) (Pattern, error) {
	p := Pattern{Name: name}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if strings.HasPrefix(line, "!") {
			if n, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(n)
			}
			continue // for loop
		}

		for col, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, grid.Coords{Row: p.Height, Col: col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("setup: %w: %s: unexpected character %q on line %d",
					ErrPattern, name, ch, p.Height+1)
			}
		}
		p.Width = max(p.Width, len(line))
		p.Height++
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("setup: %w: %s: %w", ErrPattern, name, err)
	}

	if p.Height == 0 {
		return Pattern{}, fmt.Errorf("setup: %w: %s: no pattern data", ErrPattern, name)
	}

	return p, nil
}

// the only rule accepted in an RLE header
var lifeRules = []string{"B3/S23", "23/3"}

// ParseRLE reads a pattern in the run length encoded format. Lines beginning
// with '#' are comments, "#N" names the pattern. The header line gives the
// size of the pattern and optionally the rule, which must be the standard Life
// rule. In the data 'b' is a dead cell, 'o' a live cell, '$' the end of a row
// and '!' the end of the pattern. Any of these can be preceded by a run count.
func ParseRLE(r io.Reader, name string) (Pattern, error) {
	p := Pattern{Name: name}

	fail := func(format string, args ...any) (Pattern, error) {
		return Pattern{}, fmt.Errorf("setup: %w: %s: %s", ErrPattern, name, fmt.Sprintf(format, args...))
	}

	var header bool
	var row, col int
	var count int
	var done bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && !done {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			if n, ok := strings.CutPrefix(line, "#N"); ok {
				p.Name = strings.TrimSpace(n)
			}
			continue // for loop
		}

		if line == "" {
			continue // for loop
		}

		if !header {
			for _, f := range strings.Split(line, ",") {
				k, v, ok := strings.Cut(f, "=")
				if !ok {
					return fail("badly formed header %q", line)
				}
				k = strings.TrimSpace(k)
				v = strings.TrimSpace(v)
				switch k {
				case "x", "y":
					n, err := strconv.Atoi(v)
					if err != nil || n < 0 || n > grid.MaxDimension {
						return fail("bad %s value in header (%s)", k, v)
					}
					if k == "x" {
						p.Width = n
					} else {
						p.Height = n
					}
				case "rule":
					if !slices.Contains(lifeRules, strings.ToUpper(v)) {
						return fail("unsupported rule (%s)", v)
					}
				}
			}
			header = true
			continue // for loop
		}

		for _, ch := range line {
			if ch >= '0' && ch <= '9' {
				count = count*10 + int(ch-'0')
				// no run can be longer than a grid dimension
				if count > grid.MaxDimension {
					return fail("run count exceeds %d", grid.MaxDimension)
				}
				continue // for loop
			}

			n := max(1, count)
			count = 0

			switch ch {
			case 'b':
				col += n
			case 'o':
				for range n {
					if row >= p.Height || col >= p.Width {
						return fail("cell %d,%d outside of %dx%d header size", row, col, p.Width, p.Height)
					}
					p.Cells = append(p.Cells, grid.Coords{Row: row, Col: col})
					col++
				}
			case '$':
				row += n
				col = 0
			case '!':
				done = true
			case ' ', '\t':
			default:
				return fail("unexpected character %q", ch)
			}

			if done {
				break // for loop
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("setup: %w: %s: %w", ErrPattern, name, err)
	}

	if !header {
		return fail("missing header")
	}

	return p, nil
}

// builtin patterns in plaintext format
var builtin = map[string]string{
	"glider": ".O.\n" +
		"..O\n" +
		"OOO\n",
	"blinker": "OOO\n",
	"block": "OO\n" +
		"OO\n",
	"beehive": ".OO.\n" +
		"O..O\n" +
		".OO.\n",
	"rpentomino": ".OO\n" +
		"OO.\n" +
		".O.\n",
	"lwss": ".O..O\n" +
		"O....\n" +
		"O...O\n" +
		"OOOO.\n",
	"diehard": "......O.\n" +
		"OO......\n" +
		".O...OOO\n",
	"acorn": ".O.....\n" +
		"...O...\n" +
		"OO..OOO\n",
}

// Builtins returns the names of the built-in patterns in alphabetical order.
func Builtins() []string {
	var names []string
	for n := range builtin {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// LoadPattern returns the named pattern. The name is first checked against
// the built-in patterns. Otherwise the name is treated as a filename, which is
// looked for in the working directory and then in the patterns resource
// directory. Files with the .rle extension are parsed as RLE and all other
// files as plaintext.
func LoadPattern(name string) (Pattern, error) {
	if s, ok := builtin[strings.ToLower(name)]; ok {
		return ParsePlaintext(strings.NewReader(s), strings.ToLower(name))
	}

	pth := name
	if _, err := os.Stat(pth); err != nil {
		res, rerr := paths.ResourcePath(patternsDir, name)
		if rerr != nil {
			return Pattern{}, fmt.Errorf("setup: %w: %w", ErrPattern, rerr)
		}
		if _, serr := os.Stat(res); serr != nil {
			return Pattern{}, fmt.Errorf("setup: %w: %s is not a built-in pattern or a file", ErrPattern, name)
		}
		pth = res
	}

	f, err := os.Open(pth)
	if err != nil {
		return Pattern{}, fmt.Errorf("setup: %w: %w", ErrPattern, err)
	}
	defer f.Close()

	logger.Logf(logger.Allow, "setup", "loading pattern from %s", pth)

	base := strings.TrimSuffix(filepath.Base(pth), filepath.Ext(pth))
	if strings.EqualFold(filepath.Ext(pth), ".rle") {
		return ParseRLE(f, base)
	}
	return ParsePlaintext(f, base)
}

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

package logger

import (
	"io"
	"strings"

	"github.com/cgol-xlr/cgol/display/ansi"
)

// Colorizer applies basic coloring rules to logging output. The first line of
// each write is printed normally and any subsequent lines are dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	tag, detail, found := strings.Cut(l[0], ": ")
	if found {
		_, err = io.WriteString(c.out, ansi.Pens["cyan"]+tag+ansi.NormalPen+": "+detail+"\n")
	} else {
		_, err = io.WriteString(c.out, l[0]+"\n")
	}
	if err != nil {
		return 0, err
	}

	if len(l) > 1 {
		_, err = io.WriteString(c.out, ansi.DimPens["red"]+strings.Join(l[1:], "\n")+"\n"+ansi.NormalPen)
		if err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

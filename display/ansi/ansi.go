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

// Package ansi defines ANSI control codes for styles and colours, as used by
// the terminal display and the log colorizer.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// Papers is the table of background colours.
var Papers map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	Papers = make(map[string]string)

	// none of these calls can fail because the arguments are known to be valid
	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
		Papers[c], _ = ColorBuild("", c, "", false, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen/paper/attribute
// combination. An empty string for each argument leaves that part of the
// sequence unspecified.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.WriteString("\033[")

	parts := make([]string, 0, 3)

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	// no parts means a reset of all attributes
	if len(parts) == 0 {
		parts = append(parts, "0")
	}

	s.WriteString(strings.Join(parts, ";"))
	s.WriteString("m")

	return s.String(), nil
}

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// CursorHome is the CSI sequence to move the cursor to the top-left corner.
const CursorHome = "\033[H"

// CursorHide is the CSI sequence to make the cursor invisible.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to make the cursor visible again.
const CursorShow = "\033[?25h"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

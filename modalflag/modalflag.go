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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles command line arguments in layers. The Output field should be
// specified before calling Parse() or help messages will not be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags  *flag.FlagSet
	parsed bool

	// the first non-flag argument was taken as the sub-mode
	consumed bool

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []string

	// the sub-modes selected by all calls to Parse() since NewArgs()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all selected sub-modes, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins processing of a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode. Flags and sub-modes from the previous layer are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}
	md.parsed = false
	md.consumed = false
}

// AdditionalHelp adds text to be printed after the regular help for the
// current layer.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since either NewArgs() or
// NewMode(), even if Parse() returned an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were added then the
	// selected sub-mode is returned by Mode().
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}

		// the flag may belong to the default sub-mode. if there are no
		// sub-modes then the flag is simply not recognised
		if len(md.subModes) == 0 {
			return ParseError, fmt.Errorf("modalflag: %w", err)
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg() + 1
				md.consumed = true
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var hasFlags bool
	md.flags.VisitAll(func(_ *flag.Flag) {
		hasFlags = true
	})

	if !hasFlags && len(md.subModes) == 0 {
		if md.Path() != "" {
			fmt.Fprintf(md.Output, "No help available for %s mode\n", md.Path())
		} else {
			fmt.Fprintln(md.Output, "No help available")
		}
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}

	if hasFlags {
		md.flags.SetOutput(md.Output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.subModes) > 0 {
		if hasFlags {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments after a call to Parse() that are not
// flags or a selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	if md.consumed {
		return md.flags.Args()[1:]
	}
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or selected
// sub-mode. An empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	rem := md.RemainingArgs()
	if i < 0 || i >= len(rem) {
		return ""
	}
	return rem[i]
}

// AddSubModes to list of sub-modes for the next parse. The first sub-mode
// added is the default sub-mode.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list of sub-modes,
// making it the default.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddInt64 flag for next call to Parse().
func (md *Modes) AddInt64(name string, value int64, usage string) *int64 {
	return md.flags.Int64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for each flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/cgol-xlr/cgol/logger"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** cgol preferences. changes will be overwritten ***"

// the separator between key and value in the preferences file
const separator = " :: "

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// Disk associates preference values with keys and persists them in a file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference value under the key. Keys must be unique and cannot
// contain whitespace or the separator.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Has returns true if the key has been added.
func (dsk *Disk) Has(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the preferences file and return the key/value pairs. a missing file
// is not an error. it simply has no values
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("prefs: %w", err)
		}
		return values, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: %s is not a preferences file", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return values, nil
}

// Save preference values to disk. Values in the file for keys that have not
// been added to this Disk are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(values[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over values in the file. If saveOnFail is true and the file
// does not exist then it is created.
func (dsk *Disk) Load(saveOnFail bool) error {
	if _, err := os.Stat(dsk.path); errors.Is(err, fs.ErrNotExist) && saveOnFail {
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set to %s from command line", k, v)
		}
	}

	return nil
}

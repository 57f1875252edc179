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

//go:build !windows

package display

import (
	"fmt"

	"github.com/pkg/term"
)

// waitKey blocks until a single byte can be read from the terminal. the
// terminal is in raw mode for the duration so that the key does not need to
// be followed by return
func waitKey(tty string) error {
	t, err := term.Open(tty, term.RawMode)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	defer t.Close()
	defer t.Restore()

	b := make([]byte, 1)
	if _, err := t.Read(b); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

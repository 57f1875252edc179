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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/cgol-xlr/cgol/statsview"
	"github.com/cgol-xlr/cgol/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())

	w := &test.CompareWriter{}
	stop, err := statsview.Launch(w, "")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, stop == nil)
	test.ExpectEquality(t, w.String(), "")
}

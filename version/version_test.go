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

package version_test

import (
	"strings"
	"testing"

	"github.com/cgol-xlr/cgol/version"
	"github.com/cgol-xlr/cgol/test"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()

	// tests are never built with a version number
	test.ExpectFailure(t, release)
	test.ExpectSuccess(t, v == "unreleased" || v == "local")
	test.ExpectInequality(t, r, "")

	s := version.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, version.ApplicationName+" "+v))
}

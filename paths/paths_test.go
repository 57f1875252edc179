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

//go:build !release

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/cgol-xlr/cgol/paths"
	"github.com/cgol-xlr/cgol/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".cgol/foo/bar/baz")

	// the directory has been created but not the file
	_, err = os.Stat(".cgol/foo/bar")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(".cgol/foo/bar/baz")
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".cgol/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".cgol/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".cgol")
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^memviz_software_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("memviz", "software")))

	re = regexp.MustCompile(`^memviz_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("memviz", " ")))
}

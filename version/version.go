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

// Package version reports the version of the program. A numbered version can
// be set at build time with:
//
//	-ldflags "-X github.com/cgol-xlr/cgol/version.number=v1.0.0"
//
// Otherwise the version is derived from the build information embedded by
// the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "cgol"

// if number is empty then the project was not built with a version number
var number string

// revision contains the vcs revision. If the source has been modified but
// has not been committed then the revision string will be suffixed with
// "+dirty"
var revision string

// version contains a the current version number of the project
//
// If the version string is "unreleased" then there is vcs information but no
// version number
//
// If the version string is "local" then there is no version number and no vcs
// information. This can happen when compiling/running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the version, suitable for the
// VERSION mode of the program.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s (%s)", ApplicationName, v, runtime.Version())
	}
	return fmt.Sprintf("%s %s [%s] (%s)", ApplicationName, v, r, runtime.Version())
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(num string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case num != "":
		return num, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

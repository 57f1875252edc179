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

// Package paths contains functions to prepare paths to cgol resources, such
// as the preferences file and pattern files.
//
// The ResourcePath() function returns the supplied resource prepended with
// the appropriate config directory. For example, the following will return
// the path to a pattern file.
//
//	d, _ := paths.ResourcePath("patterns", "gosper.rle")
//
// For development builds the config directory is ".cgol" in the current
// directory. For release builds (the release build constraint) it is "cgol"
// in the user's config directory, as returned by os.UserConfigDir(). On a
// modern Linux system, the path returned by the example above will be:
//
//	/home/user/.config/cgol/patterns/gosper.rle
//
// In both cases the directory (but not the file) is created if it does not
// exist.
package paths

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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are first given to NewArgs() and then parsed one layer at a time
// with Parse(). Before each call to Parse() the flags and sub-modes for that
// layer are added. For example, a program with a RUN mode and a VERSION mode,
// where RUN is the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		width := md.AddInt("width", 64, "width of grid")
//		...
//	}
//
// Sub-mode names are not case sensitive. If the first argument is not a
// sub-mode then the default sub-mode is selected and the argument is left for
// the next layer. Help for the current layer is printed to the Output when
// the -help flag is given.
package modalflag

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

// Package prefs holds the preference values used by the program. Values are
// typed and can be persisted to disk with the Disk type. The preferences
// file is a simple list of "key :: value" lines.
//
// A hook can be attached to a value with SetHookPre() and SetHookPost(). A
// pre-hook that returns an error prevents the value from changing, which is
// the usual way of validating a value.
//
// Values can also be set on the command line. A prefs string (for example,
// "cgol.width::100; cgol.height::50") is pushed onto the command line stack
// with PushCommandLineStack() and the values are applied, taking precedence
// over the values in the file, the next time a Disk is loaded.
package prefs

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

package logger

// Permission gates a log request. Callers that log from a hot path, such as
// register traces from the simulated accelerator bus, take a Permission so
// that the noise can be turned off without removing the call.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

// Allow is the permission used by most log requests in cgol. The entry is
// always made.
var Allow Permission = allow{}

// Deny suppresses the log entry. Useful as the value of a Permission field to
// silence a component.
var Deny Permission = deny{}

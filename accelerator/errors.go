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

package accelerator

import "errors"

// Sentinel errors returned by the Channel type. They are always wrapped with
// further detail and should be tested for with errors.Is().
var (
	// the device did not report completion within the time allowed. the
	// device may still be running and the grid memory is undefined
	ErrTimeout = errors.New("accelerator timeout")

	// a run is in flight and the request would interfere with it
	ErrBusy = errors.New("accelerator busy")

	// start requested without a preceding configuration
	ErrNotConfigured = errors.New("accelerator not configured")

	// a register access failed
	ErrBus = errors.New("register access failed")

	// the configuration cannot be represented by the register set
	ErrConfig = errors.New("invalid accelerator configuration")
)

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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/cgol-xlr/cgol/logger"
)

// Launch a new goroutine running the statsview server at addr. The returned
// function stops the server.
func Launch(output io.Writer, addr string) (func(), error) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		mgr.Start()
		logger.Logf(logger.Allow, "statsview", "server at %s has stopped", addr)
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", addr, url)

	return mgr.Stop, nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}

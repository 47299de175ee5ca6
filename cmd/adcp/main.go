/*
Copyright © 2026 the map data viewer authors.
This file is part of the map data viewer.

The map data viewer is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

The map data viewer is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the map data viewer.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command adcp is a command-line interface for extracting ADCP current
// vectors as JSON for the map data viewer server.
package main

import (
	"os"

	"github.com/jess-barreleye/map-data-viewer/adcputil"
)

func main() {
	// Cobra reports errors and usage on standard error; standard output
	// must stay reserved for the JSON document.
	if err := adcputil.Root.Execute(); err != nil {
		os.Exit(1)
	}
}

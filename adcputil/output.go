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

package adcputil

import (
	"encoding/json"
	"fmt"
	"io"

	adcp "github.com/jess-barreleye/map-data-viewer"
)

// Emit writes data to w as one compact JSON document followed by a
// newline. The invoking server reads exactly one line, so nothing else
// may be written to the same stream.
func Emit(w io.Writer, data *adcp.VectorSet) error {
	e := json.NewEncoder(w)
	if err := e.Encode(data); err != nil {
		return fmt.Errorf("adcp: encoding vector set: %v", err)
	}
	return nil
}

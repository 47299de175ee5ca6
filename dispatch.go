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

package adcp

import "github.com/sirupsen/logrus"

// Vectors returns current vectors for the requested window, degrading to
// synthetic data whenever real measurements cannot be supplied. If src is
// nil, mock data is generated directly. If src fails, the error is logged
// and mock data is generated instead; a source problem is never fatal to
// the request. timeStart and timeEnd are Unix epoch milliseconds; they
// are passed through to src but do not influence the mock path.
func Vectors(src DataSource, log logrus.FieldLogger, timeStart, timeEnd int64, depthRange, instrument string) *VectorSet {
	if src == nil {
		return GenerateMockData(depthRange, instrument)
	}
	data, err := src.ReadRange(timeStart, timeEnd, depthRange, instrument)
	if err != nil {
		log.WithError(err).Warn("reading measurement source; falling back to mock data")
		return GenerateMockData(depthRange, instrument)
	}
	return data
}

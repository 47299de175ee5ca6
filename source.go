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

import (
	"errors"
	"fmt"
	"os"

	"github.com/ctessum/cdf"
)

// ErrSourceUnavailable is returned by a DataSource that cannot currently
// supply measurements.
var ErrSourceUnavailable = errors.New("adcp: measurement source unavailable")

// A DataSource supplies current vectors for a time window, depth range,
// and instrument. timeStart and timeEnd are Unix epoch milliseconds.
// Implementations return ErrSourceUnavailable (possibly wrapped) when
// they cannot supply data; callers are expected to degrade to
// GenerateMockData rather than fail.
type DataSource interface {
	ReadRange(timeStart, timeEnd int64, depthRange, instrument string) (*VectorSet, error)
}

// adcpVariables are the NetCDF variables an ADCP file must declare:
// sample times, positions, bin depths, velocity components, and the
// percent-good quality indicator.
var adcpVariables = []string{"time", "lat", "lon", "depth", "u", "v", "pg"}

// A FileSource reads ADCP measurements from a NetCDF file.
//
// Range extraction is not implemented yet: ReadRange validates that the
// file exists and declares the expected ADCP variables, then reports
// ErrSourceUnavailable so the caller falls back to mock data. The header
// check is kept so a misconfigured path or a non-ADCP file is diagnosed
// now rather than when extraction lands.
type FileSource struct {
	// Path is the location of the NetCDF file.
	Path string
}

// ReadRange implements DataSource.
func (s *FileSource) ReadRange(timeStart, timeEnd int64, depthRange, instrument string) (*VectorSet, error) {
	if _, _, err := ParseDepthRange(depthRange); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("adcp: opening netcdf file: %v", err)
	}
	defer f.Close()

	cf, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("adcp: reading netcdf header %s: %v", s.Path, err)
	}
	for _, v := range adcpVariables {
		if len(cf.Header.Lengths(v)) == 0 {
			return nil, fmt.Errorf("adcp: netcdf file %s: variable %v not in file", s.Path, v)
		}
	}

	// TODO: filter time, depth, u, v, and pg by the requested window and
	// depth bounds once the shipboard processing pipeline settles on a
	// time coordinate convention (days since yearbase vs. epoch seconds).
	return nil, fmt.Errorf("%w: netcdf range extraction not implemented", ErrSourceUnavailable)
}

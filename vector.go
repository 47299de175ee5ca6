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

// Package adcp extracts ocean-current vectors measured by an Acoustic
// Doppler Current Profiler (ADCP) and prepares them for the map data
// viewer server. The server invokes the adcp command as a subprocess and
// reads one JSON VectorSet from its standard output.
package adcp

import "time"

// Version is the version of this tool.
const Version = "0.1.0"

// TimeFormat is the timestamp layout used in output JSON: ISO-8601 UTC
// with microsecond precision and a 'Z' suffix.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

// A CurrentVector is one sample of horizontal current velocity at a
// geographic location and depth.
type CurrentVector struct {
	// Lat and Lon are the sample location in decimal degrees.
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// U and V are the eastward and northward velocity components [m/s].
	U float64 `json:"u"`
	V float64 `json:"v"`

	// Speed is the horizontal current speed [m/s].
	Speed float64 `json:"speed"`

	// Direction is the compass bearing the current flows toward
	// [degrees]: 0 = north, 90 = east, always in [0, 360).
	Direction float64 `json:"direction"`

	// Depth is the measurement depth below the surface [m].
	Depth float64 `json:"depth"`

	// Time is the sample time in TimeFormat.
	Time string `json:"time"`

	// Quality is the instrument percent-good indicator [0, 100].
	Quality int `json:"quality"`
}

// A VectorSet is the response envelope for one extraction request.
type VectorSet struct {
	// Timestamp is the generation time in TimeFormat.
	Timestamp string `json:"timestamp"`

	// Instrument echoes the requested instrument name (e.g. WH300,
	// EC150, OS38). It is not validated against a known instrument list.
	Instrument string `json:"instrument"`

	// DepthRange echoes the requested depth range string.
	DepthRange string `json:"depthRange"`

	// Vectors holds the extracted samples in generation order.
	Vectors []CurrentVector `json:"vectors"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

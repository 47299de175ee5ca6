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
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ctessum/geom"
)

const (
	// Anchor point off the US Pacific coast for the synthetic track.
	mockBaseLat = 43.9
	mockBaseLon = -125.1

	mockVectorCount = 20

	// mockFallbackDepth is used when the requested depth range has no
	// parseable minimum bound [m].
	mockFallbackDepth = 300

	mockQuality = 95
)

// GenerateMockData creates a synthetic VectorSet for use when no real
// measurement source is available. It returns exactly 20 vectors along a
// northeast-trending track, cycling through five speed tiers
// (0.2–0.8 m/s) and slowly rotating directions. All vectors share one
// depth: the minimum bound of depthRange when it has the "<min>-<max>"
// shape, or 300 m otherwise. The instrument and depth range strings are
// echoed unvalidated. Apart from the wall-clock timestamps the output is
// fully deterministic.
func GenerateMockData(depthRange, instrument string) *VectorSet {
	depth := float64(mockFallbackDepth)
	if strings.Contains(depthRange, "-") {
		if d, err := strconv.ParseFloat(strings.SplitN(depthRange, "-", 2)[0], 64); err == nil {
			depth = d
		}
	}

	vectors := make([]CurrentVector, 0, mockVectorCount)
	for i := 0; i < mockVectorCount; i++ {
		p := geom.Point{
			X: mockBaseLon + float64(i)*0.01,
			Y: mockBaseLat + float64(i)*0.02,
		}

		// Vary the speed and rotate the bearing so the rendered arrows
		// are visually distinguishable.
		speed := 0.2 + float64(i%5)*0.15
		direction := float64((45 + i*5) % 360)

		u := speed * math.Sin(direction*math.Pi/180)
		v := speed * math.Cos(direction*math.Pi/180)

		vectors = append(vectors, CurrentVector{
			Lat:       p.Y,
			Lon:       p.X,
			U:         roundTo(u, 4),
			V:         roundTo(v, 4),
			Speed:     roundTo(speed, 3),
			Direction: roundTo(direction, 1),
			Depth:     depth,
			Time:      formatTime(time.Now()),
			Quality:   mockQuality,
		})
	}

	return &VectorSet{
		Timestamp:  formatTime(time.Now()),
		Instrument: instrument,
		DepthRange: depthRange,
		Vectors:    vectors,
	}
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}

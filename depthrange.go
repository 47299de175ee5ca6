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
	"strconv"
	"strings"
)

// ErrInvalidDepthRange is returned by ParseDepthRange for strings that
// match neither accepted depth range shape.
var ErrInvalidDepthRange = errors.New("adcp: invalid depth range")

// openRangeMaxDepth is the upper bound assigned to ">"-shaped ranges [m].
const openRangeMaxDepth = 10000

// ParseDepthRange parses a depth range string into minimum and maximum
// depths in meters. Two shapes are accepted: "<min>-<max>" (e.g. "0-25",
// "25-50") and "><min>" (e.g. ">300"), meaning deeper than min with no
// upper bound, which is represented as a maximum of 10000 m. No check is
// made that min < max or that the bounds are non-negative.
func ParseDepthRange(s string) (min, max float64, err error) {
	if strings.HasPrefix(s, ">") {
		min, err = strconv.ParseFloat(strings.TrimPrefix(s, ">"), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDepthRange, s)
		}
		return min, openRangeMaxDepth, nil
	}
	if !strings.Contains(s, "-") {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDepthRange, s)
	}
	parts := strings.SplitN(s, "-", 2)
	min, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDepthRange, s)
	}
	max, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDepthRange, s)
	}
	return min, max, nil
}

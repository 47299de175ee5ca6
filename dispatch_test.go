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
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type stubSource struct {
	data *VectorSet
	err  error
}

func (s *stubSource) ReadRange(timeStart, timeEnd int64, depthRange, instrument string) (*VectorSet, error) {
	return s.data, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestVectors(t *testing.T) {
	t.Run("nil source generates mock data", func(t *testing.T) {
		data := Vectors(nil, quietLogger(), 0, 1000, "0-25", "WH300")
		if len(data.Vectors) != 20 {
			t.Errorf("vector count: %d != 20", len(data.Vectors))
		}
		if data.Instrument != "WH300" {
			t.Errorf("instrument: %v != WH300", data.Instrument)
		}
	})

	t.Run("source failure falls back to mock data", func(t *testing.T) {
		src := &stubSource{err: errors.New("disk on fire")}
		data := Vectors(src, quietLogger(), 0, 1000, "25-50", "EC150")
		if len(data.Vectors) != 20 {
			t.Errorf("vector count: %d != 20", len(data.Vectors))
		}
		for i, vec := range data.Vectors {
			if vec.Depth != 25 {
				t.Errorf("vector %d depth: %v != 25", i, vec.Depth)
			}
		}
	})

	t.Run("source unavailable falls back to mock data", func(t *testing.T) {
		src := &stubSource{err: ErrSourceUnavailable}
		data := Vectors(src, quietLogger(), 0, 1000, ">300", "OS38")
		if len(data.Vectors) != 20 {
			t.Errorf("vector count: %d != 20", len(data.Vectors))
		}
	})

	t.Run("source data passes through", func(t *testing.T) {
		want := &VectorSet{Instrument: "WH300", DepthRange: "0-25"}
		src := &stubSource{data: want}
		if got := Vectors(src, quietLogger(), 0, 1000, "0-25", "WH300"); got != want {
			t.Errorf("%+v != %+v", got, want)
		}
	})
}

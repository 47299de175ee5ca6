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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	adcp "github.com/jess-barreleye/map-data-viewer"
)

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, adcp.GenerateMockData("0-25", "WH300")); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("output does not end with a newline")
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("output spans %d lines; want 1", n)
	}

	var got adcp.VectorSet
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got.Vectors) != 20 {
		t.Errorf("vector count: %d != 20", len(got.Vectors))
	}
	if got.Instrument != "WH300" || got.DepthRange != "0-25" {
		t.Errorf("envelope: %v %v != WH300 0-25", got.Instrument, got.DepthRange)
	}
}

func TestEmitFieldNames(t *testing.T) {
	// The invoking server indexes into the JSON by these exact keys.
	var buf bytes.Buffer
	if err := Emit(&buf, adcp.GenerateMockData("50-150", "EC150")); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Vectors []map[string]interface{} `json:"vectors"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"lat", "lon", "u", "v", "speed", "direction", "depth", "time", "quality"} {
		if _, ok := doc.Vectors[0][key]; !ok {
			t.Errorf("vector JSON missing key %q", key)
		}
	}
}

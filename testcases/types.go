// seehuhn.de/go/fillet - rounded and chamfered corners for vector paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single corner treatment test.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   *path.Data    // the geometry to treat
	Width  int           // preview canvas width in pixels
	Height int           // preview canvas height in pixels
	Corner Corner        // corner settings, applied to all nodes
	CTM    matrix.Matrix // item transformation (zero-value means no transform)
}

// Corner describes the corner settings of a test case.
type Corner struct {
	Mode      string  // "F", "IF", "C" or "IC"
	Method    string  // "auto", "arc" or "bezier"; empty means "auto"
	Radius    float64 // knot distance, or percentage if Flexible is set
	Steps     int     // chamfer steps, 0 means 1
	Flexible  bool    // Radius is a percentage of the curve
	UseRadius bool    // Radius is a fillet radius instead of a knot distance
}

// fillet returns fillet settings with knot distance r.
func fillet(r float64) Corner {
	return Corner{Mode: "F", Radius: r}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

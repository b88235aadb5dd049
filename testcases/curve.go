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
	"seehuhn.de/go/geom/path"
)

var curveCases = []TestCase{
	{
		Name:   "lens",
		Path:   lens(8, 32, 56, 32, 20),
		Width:  64,
		Height: 64,
		Corner: fillet(6),
	},
	{
		Name:   "lens_arc",
		Path:   lens(8, 32, 56, 32, 20),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "F", Radius: 6, Method: "arc"},
	},
	{
		Name:   "quadratic_corner",
		Path:   quadraticShape(),
		Width:  64,
		Height: 64,
		Corner: fillet(5),
	},
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "C", Radius: 4, Steps: 2},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Corner: fillet(4),
	},
}

// lens creates a closed shape from two cubic curves bulging by h.
func lens(x0, y0, x1, y1, h float64) *path.Data {
	dx := (x1 - x0) / 3
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		CubeTo(pt(x0+dx, y0-h), pt(x1-dx, y1-h), pt(x1, y1)).
		CubeTo(pt(x1-dx, y1+h), pt(x0+dx, y0+h), pt(x0, y0)).
		Close()
}

// quadraticShape creates a closed shape with a quadratic curve between
// two straight edges.
func quadraticShape() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 56)).
		LineTo(pt(8, 16)).
		QuadTo(pt(32, 0), pt(56, 16)).
		LineTo(pt(56, 56)).
		Close()
}

// mixedLinesCurves creates a closed path alternating straight and curved
// segments.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 8)).
		LineTo(pt(32, 8)).
		CubeTo(pt(44, 8), pt(56, 20), pt(56, 32)).
		LineTo(pt(56, 56)).
		QuadTo(pt(32, 40), pt(8, 56)).
		Close()
}

// circle approximates a circle by four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := kappa * r
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// kappa is the handle length of a quarter circle, relative to the radius.
const kappa = 0.5522847498307936

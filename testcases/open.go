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

var openCases = []TestCase{
	{
		Name:   "polyline",
		Path:   zigzag(4, 8, 60, 56, 3),
		Width:  64,
		Height: 64,
		Corner: fillet(4),
	},
	{
		Name:   "corner",
		Path:   corner(8, 56, 32, 8, 56, 56),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "F", Radius: 8, UseRadius: true},
	},
	{
		Name:   "collinear",
		Path:   (&path.Data{}).MoveTo(pt(4, 32)).LineTo(pt(32, 32)).LineTo(pt(60, 32)),
		Width:  64,
		Height: 64,
		Corner: fillet(10),
	},
	{
		Name:   "single_line",
		Path:   (&path.Data{}).MoveTo(pt(4, 4)).LineTo(pt(60, 60)),
		Width:  64,
		Height: 64,
		Corner: fillet(10),
	},
}

// corner creates an open path with a single corner at (x1, y1).
func corner(x0, y0, x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x2, y2))
}

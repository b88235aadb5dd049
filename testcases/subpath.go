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

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(),
		Width:  64,
		Height: 48,
		Corner: fillet(3),
	},
	{
		Name:   "ring",
		Path:   ring(32, 32, 26, 12),
		Width:  64,
		Height: 64,
		Corner: fillet(4),
	},
	{
		Name:   "open_and_closed",
		Path:   openAndClosed(),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "C", Radius: 4},
	},
}

// twoTriangles creates two separate triangles.
func twoTriangles() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(4, 40)).LineTo(pt(16, 8)).LineTo(pt(28, 40)).Close().
		MoveTo(pt(36, 40)).LineTo(pt(48, 8)).LineTo(pt(60, 40)).Close()
}

// ring creates two nested squares with opposite orientation.
func ring(cx, cy, outer, inner float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx-outer, cy-outer)).
		LineTo(pt(cx+outer, cy-outer)).
		LineTo(pt(cx+outer, cy+outer)).
		LineTo(pt(cx-outer, cy+outer)).
		Close().
		MoveTo(pt(cx-inner, cy-inner)).
		LineTo(pt(cx-inner, cy+inner)).
		LineTo(pt(cx+inner, cy+inner)).
		LineTo(pt(cx+inner, cy-inner)).
		Close()
}

// openAndClosed combines an open polyline with a closed square.
func openAndClosed() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(4, 60)).LineTo(pt(4, 36)).LineTo(pt(28, 36)).
		MoveTo(pt(36, 4)).LineTo(pt(60, 4)).LineTo(pt(60, 28)).LineTo(pt(36, 28)).Close()
}

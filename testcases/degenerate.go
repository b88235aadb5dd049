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

var degenerateCases = []TestCase{
	{
		Name:   "radius_too_large",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: fillet(1000),
	},
	{
		Name:   "zero_radius",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: fillet(0),
	},
	{
		Name:   "repeated_point",
		Path:   repeatedPoint(),
		Width:  64,
		Height: 64,
		Corner: fillet(5),
	},
	{
		Name:   "spike",
		Path:   (&path.Data{}).MoveTo(pt(8, 32)).LineTo(pt(56, 32)).LineTo(pt(8, 33)).Close(),
		Width:  64,
		Height: 64,
		Corner: fillet(2),
	},
}

// repeatedPoint creates a square with a duplicated vertex.
func repeatedPoint() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 8)).
		LineTo(pt(56, 8)).
		LineTo(pt(56, 8)).
		LineTo(pt(56, 56)).
		LineTo(pt(8, 56)).
		Close()
}

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

var largeCases = []TestCase{
	{
		Name:   "grid",
		Path:   rectangleGrid(8, 8, 6, 4, 10),
		Width:  64,
		Height: 64,
		Corner: fillet(1.5),
	},
	{
		Name:   "many_teeth",
		Path:   zigzag(2, 8, 254, 56, 60),
		Width:  256,
		Height: 64,
		Corner: Corner{Mode: "F", Radius: 0.5, UseRadius: true},
	},
	{
		Name:   "big_star",
		Path:   fivePointStar(512, 512, 500, 200),
		Width:  1024,
		Height: 1024,
		Corner: fillet(40),
	},
}

// rectangleGrid creates rows x cols separate squares with the given
// spacing and size.
func rectangleGrid(spacing, size float64, rows, cols int, offset float64) *path.Data {
	p := &path.Data{}
	for r := range rows {
		for c := range cols {
			x := offset + float64(c)*(size+spacing)
			y := offset + float64(r)*(size+spacing)
			p.MoveTo(pt(x, y)).
				LineTo(pt(x+size, y)).
				LineTo(pt(x+size, y+size)).
				LineTo(pt(x, y+size)).
				Close()
		}
	}
	return p
}

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
)

var transformCases = []TestCase{
	{
		Name:   "scaled",
		Path:   rectangle(4, 4, 24, 16),
		Width:  64,
		Height: 48,
		Corner: fillet(3),
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "rotated",
		Path:   rectangle(-16, -12, 32, 24),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "C", Radius: 6},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "sheared",
		Path:   triangle(16, 4, 40, 44, 4, 44),
		Width:  64,
		Height: 48,
		Corner: fillet(4),
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0},
	},
}

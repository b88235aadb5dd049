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

var precisionCases = []TestCase{
	{
		Name:   "offset_rectangle",
		Path:   rectangle(1e6+8, 1e6+8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: fillet(6),
		CTM:    matrix.Matrix{1, 0, 0, 1, -1e6, -1e6},
	},
	{
		Name:   "tiny_square",
		Path:   rectangle(0.001, 0.001, 0.01, 0.01),
		Width:  64,
		Height: 64,
		Corner: fillet(10),
		CTM:    matrix.Matrix{5000, 0, 0, 5000, 2, 2},
	},
}

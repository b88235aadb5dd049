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

var modeCases = []TestCase{
	{
		Name:   "inverse_fillet",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: Corner{Mode: "IF", Radius: 8},
	},
	{
		Name:   "chamfer",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: Corner{Mode: "C", Radius: 8},
	},
	{
		Name:   "chamfer_steps",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: Corner{Mode: "C", Radius: 10, Steps: 4},
	},
	{
		Name:   "inverse_chamfer_steps",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: Corner{Mode: "IC", Radius: 10, Steps: 3},
	},
	{
		Name:   "bezier_method",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: Corner{Mode: "F", Radius: 10, Method: "bezier"},
	},
	{
		Name:   "flexible",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: Corner{Mode: "F", Radius: 25, Flexible: true},
	},
}

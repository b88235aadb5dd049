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

// Package fillet replaces the corners of vector paths by rounded or
// chamfered shapes.
//
// Every node of a path has a [NodeSatellite], which selects the corner
// type ([Fillet], [InverseFillet], [Chamfer] or [InverseChamfer]) and the
// size of the corner.  The size is given either as the distance along the
// adjacent curves between the node and the points where the corner shape
// starts and ends, or as a curve parameter.  [ApplyCorners] computes the
// new path from a path and its satellites.
//
// [Effect] manages the satellites of a document item over time: it creates
// them when the effect is applied, keeps them in sync with the item's path,
// persists them as a string and applies the user settings in [Params].
package fillet

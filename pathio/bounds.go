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

package pathio

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

// Bounds returns a box containing all points and control points of pv,
// after applying ctm.  The zero matrix is treated as the identity.
func Bounds(pv pathvec.PathVector, ctm matrix.Matrix) rect.Rect {
	var box rect.Rect
	first := true
	add := func(p vec.Vec2) {
		p = apply(ctm, p)
		if first {
			box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			return
		}
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	for cmd, pts := range pathvec.ToData(pv).Iter() {
		if cmd == path.CmdClose {
			continue
		}
		for _, p := range pts {
			add(p)
		}
	}
	return box
}

// apply maps p through m, using the PDF convention for the matrix entries.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	if m == (matrix.Matrix{}) {
		return p
	}
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

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

package pathvec

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromData converts a path in seehuhn.de/go/geom format into a path vector.
func FromData(d *path.Data) PathVector {
	if d == nil {
		return nil
	}
	return FromPath(d.Iter())
}

// FromPath collects the commands of p into a path vector.
//
// Every MoveTo starts a new sub-path, also if the previous one has no
// curves.  Drawing commands following a ClosePath without an intermediate
// MoveTo start a new sub-path at the start point of the closed one.
// Drawing commands before the first MoveTo are ignored.
func FromPath(p path.Path) PathVector {
	var res PathVector
	var cur *Path
	var start vec.Vec2
	started := false

	// begin returns the sub-path which drawing commands append to.
	begin := func() *Path {
		if cur == nil {
			cur = NewPath(start)
		}
		return cur
	}
	flush := func() {
		if cur != nil {
			res = append(res, *cur)
			cur = nil
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			start = pts[0]
			started = true
			cur = NewPath(start)

		case path.CmdLineTo:
			if !started {
				continue
			}
			begin().LineTo(pts[0])

		case path.CmdQuadTo:
			if !started {
				continue
			}
			begin().QuadTo(pts[0], pts[1])

		case path.CmdCubeTo:
			if !started {
				continue
			}
			begin().CubeTo(pts[0], pts[1], pts[2])

		case path.CmdClose:
			if !started {
				continue
			}
			begin().Close()
			flush()
		}
	}
	flush()
	return res
}

// ToData converts pv into seehuhn.de/go/geom format.  Elliptical arcs are
// approximated by cubic Bézier curves.
func ToData(pv PathVector) *path.Data {
	res := &path.Data{}
	for i := range pv {
		p := &pv[i]
		res.MoveTo(p.Start)
		for _, c := range p.Curves {
			appendCurve(res, c)
		}
		if p.Closed {
			res.Close()
		}
	}
	return res
}

func appendCurve(d *path.Data, c Curve) {
	switch c.Kind {
	case LineKind:
		d.LineTo(c.P1)
	case QuadKind:
		d.QuadTo(c.P1, c.P2)
	case CubicKind:
		d.CubeTo(c.P1, c.P2, c.P3)
	case ArcKind:
		for _, piece := range c.ToCubics() {
			d.CubeTo(piece.P1, piece.P2, piece.P3)
		}
	}
}

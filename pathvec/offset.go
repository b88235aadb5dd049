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
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// offsetSamples is the number of line segments used to approximate an
// offset curve.
const offsetSamples = 128

// derivative returns the derivative of c at t.
func (c Curve) derivative(t float64) vec.Vec2 {
	switch c.Kind {
	case QuadKind:
		a := c.P1.Sub(c.P0).Mul(2 * (1 - t))
		b := c.P2.Sub(c.P1).Mul(2 * t)
		return a.Add(b)
	case CubicKind:
		s := 1 - t
		a := c.P1.Sub(c.P0).Mul(3 * s * s)
		b := c.P2.Sub(c.P1).Mul(6 * s * t)
		d := c.P3.Sub(c.P2).Mul(3 * t * t)
		return a.Add(b).Add(d)
	case ArcKind:
		return c.Arc.deriv(c.Arc.Theta0 + t*c.Arc.Sweep).Mul(c.Arc.Sweep)
	default:
		return c.P1.Sub(c.P0)
	}
}

// UnitTangent returns the normalised direction of c at t.  Where the
// derivative vanishes, the direction of a short chord around t is used.
// For degenerate curves the zero vector is returned.
func (c Curve) UnitTangent(t float64) vec.Vec2 {
	d := c.derivative(t)
	if l := d.Length(); l > 1e-12 {
		return d.Mul(1 / l)
	}
	const h = 1e-4
	d = c.PointAt(min(1, t+h)).Sub(c.PointAt(max(0, t-h)))
	if l := d.Length(); l > 0 {
		return d.Mul(1 / l)
	}
	return vec.Vec2{}
}

// Offset returns a polygonal approximation of the curve displaced by d
// along its left normal.  The left normal is the unit tangent rotated by
// 90 degrees counter-clockwise.
func (c Curve) Offset(d float64) []vec.Vec2 {
	n := offsetSamples
	if c.Kind == LineKind {
		n = 1
	}
	res := make([]vec.Vec2, n+1)
	for i := range res {
		t := float64(i) / float64(n)
		tan := c.UnitTangent(t)
		normal := vec.Vec2{X: -tan.Y, Y: tan.X}
		res[i] = c.PointAt(t).Add(normal.Mul(d))
	}
	return res
}

// FirstCrossing returns the first point, in the order of a, where the
// polylines a and b intersect.
func FirstCrossing(a, b []vec.Vec2) (vec.Vec2, bool) {
	for i := 1; i < len(a); i++ {
		segA := lineSegment(a[i-1], a[i])
		bestT := 2.0
		for j := 1; j < len(b); j++ {
			lineB := lineSegment(b[j-1], b[j]).Line()
			hits, n := segA.IntersectLine(lineB)
			for _, hit := range hits[:n] {
				if hit.SegmentT >= 0 && hit.SegmentT <= 1 && hit.SegmentT < bestT {
					bestT = hit.SegmentT
				}
			}
		}
		if bestT <= 1 {
			return lerp(a[i-1], a[i], bestT), true
		}
	}
	return vec.Vec2{}, false
}

func lineSegment(p, q vec.Vec2) curve.PathSegment {
	return curve.PathSegment{Kind: curve.LineKind, P0: toPoint(p), P1: toPoint(q)}
}

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

// Package pathvec implements the curves, paths and path vectors on which
// the fillet/chamfer effect operates.
//
// A [Path] is a start point followed by a sequence of [Curve] values and an
// optional implicit closing line.  A [PathVector] is a list of such paths,
// one per sub-path of a shape.  Arc length computations are delegated to
// honnef.co/go/curve.
package pathvec

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon is the default tolerance for point coincidence.
const Epsilon = 1e-6

// AreNear reports whether a and b agree in both coordinates up to eps.
func AreNear(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Cross returns the z component of the cross product a × b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Polar returns the vector of length r pointing in direction angle.
func Polar(angle, r float64) vec.Vec2 {
	return vec.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// Midpoint returns the point half way between a and b.
func Midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Atan2 returns the direction angle of v.
func Atan2(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// vectorAngle returns the signed angle from a to b, in (-π, π].
func vectorAngle(a, b vec.Vec2) float64 {
	return math.Atan2(Cross(a, b), a.Dot(b))
}

// Ray is a half-line given by an origin and a unit direction.
type Ray struct {
	Origin    vec.Vec2
	Direction vec.Vec2
}

// NewRay returns the ray starting at origin and passing through through.
func NewRay(origin, through vec.Vec2) Ray {
	var r Ray
	r.SetPoints(origin, through)
	return r
}

// SetPoints changes r to start at a and point towards b.
// If a and b coincide, the direction is the zero vector.
func (r *Ray) SetPoints(a, b vec.Vec2) {
	r.Origin = a
	d := b.Sub(a)
	if AreNear(d, vec.Vec2{}, Epsilon) {
		r.Direction = vec.Vec2{}
		return
	}
	r.Direction = d.Mul(1 / d.Length())
}

// Angle returns the direction angle of the ray.
func (r Ray) Angle() float64 {
	return Atan2(r.Direction)
}

// AngleBetween returns the angle from r1 to r2 in [0, 2π].
// If cw is false, the complementary angle 2π-a is returned.
func AngleBetween(r1, r2 Ray, cw bool) float64 {
	angle := vectorAngle(r1.Direction, r2.Direction)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if !cw {
		angle = 2*math.Pi - angle
	}
	return angle
}

// LineAngle returns the angle between the x-axis and the line through a
// and b.  The result is in [0, π).
func LineAngle(a, b vec.Vec2) float64 {
	angle := vectorAngle(vec.Vec2{X: 1}, b.Sub(a))
	if angle < 0 {
		angle += math.Pi
	}
	if angle == math.Pi {
		angle = 0
	}
	return angle
}

// distToLine returns the distance from p to the line through a and b.
// If a and b coincide, the distance to a is returned.
func distToLine(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l < Epsilon {
		return Distance(p, a)
	}
	return math.Abs(Cross(p.Sub(a), d)) / l
}

// lerp interpolates between a and b.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

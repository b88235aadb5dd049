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
	"math"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// arclenAccuracy is the accuracy passed to the arc length routines of
// honnef.co/go/curve.
const arclenAccuracy = 1e-9

// Kind identifies the type of a [Curve].
type Kind uint8

// These are the supported curve types.
const (
	LineKind Kind = iota + 1
	QuadKind
	CubicKind
	ArcKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	case ArcKind:
		return "arc"
	default:
		return "invalid"
	}
}

// Curve is a single segment of a path.
//
// P0 is always the initial point.  For lines the final point is P1, for
// quadratic Béziers P2, and for cubic Béziers P3.  Elliptical arcs store
// their end points in P0 and P1 and their shape in Arc.
type Curve struct {
	Kind           Kind
	P0, P1, P2, P3 vec.Vec2
	Arc            Arc
}

// Arc describes an elliptical arc in center parametrisation.
type Arc struct {
	Center   vec.Vec2
	RX, RY   float64
	Rotation float64 // x-axis rotation of the ellipse, in radians
	Theta0   float64 // start angle in the ellipse's own frame
	Sweep    float64 // signed angle swept, positive is increasing angle
}

// Line returns the straight line from a to b.
func Line(a, b vec.Vec2) Curve {
	return Curve{Kind: LineKind, P0: a, P1: b}
}

// Quad returns a quadratic Bézier curve.
func Quad(p0, p1, p2 vec.Vec2) Curve {
	return Curve{Kind: QuadKind, P0: p0, P1: p1, P2: p2}
}

// Cubic returns a cubic Bézier curve.
func Cubic(p0, p1, p2, p3 vec.Vec2) Curve {
	return Curve{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

// NewArc returns the elliptical arc from `from` to `to`, using the
// endpoint parametrisation of the SVG "A" path command.  Radii which are
// too small to reach `to` are scaled up.  If a radius is zero or not
// finite, the straight line from `from` to `to` is returned instead.
func NewArc(from vec.Vec2, rx, ry, rotation float64, largeArc, sweep bool, to vec.Vec2) Curve {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || math.IsInf(rx, 0) || math.IsInf(ry, 0) || math.IsNaN(rx) || math.IsNaN(ry) {
		return Line(from, to)
	}
	if from == to {
		return Curve{
			Kind: ArcKind,
			P0:   from,
			P1:   to,
			Arc:  Arc{Center: from, RX: rx, RY: ry, Rotation: rotation},
		}
	}

	cosPhi, sinPhi := math.Cos(rotation), math.Sin(rotation)
	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	// scale up radii which cannot span the chord
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := 0.0
	if den > 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2,
	}

	u := vec.Vec2{X: (x1 - cx1) / rx, Y: (y1 - cy1) / ry}
	v := vec.Vec2{X: (-x1 - cx1) / rx, Y: (-y1 - cy1) / ry}
	theta0 := Atan2(u)
	dTheta := vectorAngle(u, v)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	return Curve{
		Kind: ArcKind,
		P0:   from,
		P1:   to,
		Arc: Arc{
			Center:   center,
			RX:       rx,
			RY:       ry,
			Rotation: rotation,
			Theta0:   theta0,
			Sweep:    dTheta,
		},
	}
}

// eval returns the point of the ellipse at angle theta.
func (a Arc) eval(theta float64) vec.Vec2 {
	cosPhi, sinPhi := math.Cos(a.Rotation), math.Sin(a.Rotation)
	ex := a.RX * math.Cos(theta)
	ey := a.RY * math.Sin(theta)
	return vec.Vec2{
		X: a.Center.X + cosPhi*ex - sinPhi*ey,
		Y: a.Center.Y + sinPhi*ex + cosPhi*ey,
	}
}

// deriv returns the derivative of the ellipse with respect to theta.
func (a Arc) deriv(theta float64) vec.Vec2 {
	cosPhi, sinPhi := math.Cos(a.Rotation), math.Sin(a.Rotation)
	dx := -a.RX * math.Sin(theta)
	dy := a.RY * math.Cos(theta)
	return vec.Vec2{
		X: cosPhi*dx - sinPhi*dy,
		Y: sinPhi*dx + cosPhi*dy,
	}
}

// Initial returns the start point of the curve.
func (c Curve) Initial() vec.Vec2 {
	return c.P0
}

// Final returns the end point of the curve.
func (c Curve) Final() vec.Vec2 {
	switch c.Kind {
	case QuadKind:
		return c.P2
	case CubicKind:
		return c.P3
	default:
		return c.P1
	}
}

// SetInitial moves the start point of the curve to p.
func (c *Curve) SetInitial(p vec.Vec2) {
	c.P0 = p
}

// SetFinal moves the end point of the curve to p.
func (c *Curve) SetFinal(p vec.Vec2) {
	switch c.Kind {
	case QuadKind:
		c.P2 = p
	case CubicKind:
		c.P3 = p
	default:
		c.P1 = p
	}
}

// IsLine reports whether c is a line segment.
func (c Curve) IsLine() bool {
	return c.Kind == LineKind
}

// IsDegenerate reports whether all points defining the curve coincide.
func (c Curve) IsDegenerate() bool {
	switch c.Kind {
	case QuadKind:
		return c.P0 == c.P1 && c.P1 == c.P2
	case CubicKind:
		return c.P0 == c.P1 && c.P1 == c.P2 && c.P2 == c.P3
	default:
		return c.P0 == c.P1
	}
}

// IsStraightCurve reports whether c is a straight line.  This is the case
// for line segments, and for Bézier curves whose inner control points lie
// on the line through the end points.  Elliptical arcs are never straight.
func IsStraightCurve(c Curve) bool {
	switch c.Kind {
	case LineKind:
		return true
	case QuadKind:
		return distToLine(c.P1, c.P0, c.P2) <= Epsilon
	case CubicKind:
		return distToLine(c.P1, c.P0, c.P3) <= Epsilon &&
			distToLine(c.P2, c.P0, c.P3) <= Epsilon
	default:
		return false
	}
}

// PointAt returns the point at parameter t ∈ [0, 1].
func (c Curve) PointAt(t float64) vec.Vec2 {
	if c.Kind == ArcKind {
		switch {
		case t <= 0:
			return c.P0
		case t >= 1:
			return c.P1
		}
		return c.Arc.eval(c.Arc.Theta0 + t*c.Arc.Sweep)
	}
	return fromPoint(c.segment().Eval(t))
}

// Portion returns the part of the curve between t0 and t1.
// If t0 > t1, the returned curve runs backwards.
func (c Curve) Portion(t0, t1 float64) Curve {
	if c.Kind == ArcKind {
		res := c
		res.P0 = c.PointAt(t0)
		res.P1 = c.PointAt(t1)
		res.Arc.Theta0 = c.Arc.Theta0 + t0*c.Arc.Sweep
		res.Arc.Sweep = (t1 - t0) * c.Arc.Sweep
		return res
	}
	return fromSegment(c.segment().Subsegment(t0, t1))
}

// Reverse returns the curve traversed in the opposite direction.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case QuadKind:
		return Quad(c.P2, c.P1, c.P0)
	case CubicKind:
		return Cubic(c.P3, c.P2, c.P1, c.P0)
	case ArcKind:
		res := c
		res.P0, res.P1 = c.P1, c.P0
		res.Arc.Theta0 = c.Arc.Theta0 + c.Arc.Sweep
		res.Arc.Sweep = -c.Arc.Sweep
		return res
	default:
		return Line(c.P1, c.P0)
	}
}

// Length returns the arc length of the curve.
func (c Curve) Length() float64 {
	if c.Kind == ArcKind {
		var total float64
		for _, piece := range c.arcToCubics() {
			total += piece.segment().Arclen(arclenAccuracy)
		}
		return total
	}
	return c.segment().Arclen(arclenAccuracy)
}

// TimeAtLength returns the parameter at which the arc length measured from
// the start of the curve equals s.  The result is clamped to [0, 1].
func (c Curve) TimeAtLength(s float64) float64 {
	if s <= 0 {
		return 0
	}
	if c.Kind == ArcKind {
		l := c.Length()
		if l == 0 {
			return 0
		}
		return min(1, s/l)
	}
	return c.segment().SolveForArclen(s, arclenAccuracy)
}

// Nearest returns the parameter of the point on c closest to p.
func (c Curve) Nearest(p vec.Vec2) float64 {
	if c.Kind == ArcKind {
		return c.nearestArc(p)
	}
	_, t := c.segment().Nearest(toPoint(p), arclenAccuracy)
	return t
}

// nearestArc locates the closest point by sampling, followed by a ternary
// search in the bracket around the best sample.
func (c Curve) nearestArc(p vec.Vec2) float64 {
	const n = 64
	dist := func(t float64) float64 {
		d := c.PointAt(t).Sub(p)
		return d.Dot(d)
	}
	best, bestD := 0.0, dist(0)
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		if d := dist(t); d < bestD {
			best, bestD = t, d
		}
	}
	lo, hi := max(0, best-1.0/n), min(1, best+1.0/n)
	for range 60 {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if dist(m1) < dist(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return (lo + hi) / 2
}

// ToCubics returns an equivalent sequence of lines and cubic Béziers.
// Quadratic curves are raised to cubics, arcs are approximated.
func (c Curve) ToCubics() []Curve {
	switch c.Kind {
	case QuadKind:
		return []Curve{c.raise()}
	case ArcKind:
		return c.arcToCubics()
	default:
		return []Curve{c}
	}
}

func (c Curve) raise() Curve {
	return Cubic(
		c.P0,
		lerp(c.P0, c.P1, 2.0/3.0),
		lerp(c.P2, c.P1, 2.0/3.0),
		c.P2,
	)
}

// arcToCubics approximates an elliptical arc by cubic Béziers, using at
// most a quarter turn per piece.
func (c Curve) arcToCubics() []Curve {
	a := c.Arc
	if c.IsDegenerate() || a.Sweep == 0 {
		return []Curve{Cubic(c.P0, c.P0, c.P1, c.P1)}
	}
	n := int(math.Ceil(math.Abs(a.Sweep)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	delta := a.Sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	res := make([]Curve, 0, n)
	start := c.P0
	for i := range n {
		th0 := a.Theta0 + float64(i)*delta
		th1 := th0 + delta
		end := a.eval(th1)
		if i == n-1 {
			end = c.P1
		}
		res = append(res, Cubic(
			start,
			start.Add(a.deriv(th0).Mul(k)),
			end.Sub(a.deriv(th1).Mul(k)),
			end,
		))
		start = end
	}
	return res
}

// segment converts a line or Bézier curve to the honnef.co/go/curve
// representation.
func (c Curve) segment() curve.PathSegment {
	switch c.Kind {
	case QuadKind:
		return curve.PathSegment{Kind: curve.QuadKind, P0: toPoint(c.P0), P1: toPoint(c.P1), P2: toPoint(c.P2)}
	case CubicKind:
		return curve.PathSegment{Kind: curve.CubicKind, P0: toPoint(c.P0), P1: toPoint(c.P1), P2: toPoint(c.P2), P3: toPoint(c.P3)}
	default:
		return curve.PathSegment{Kind: curve.LineKind, P0: toPoint(c.P0), P1: toPoint(c.Final())}
	}
}

func fromSegment(seg curve.PathSegment) Curve {
	switch seg.Kind {
	case curve.QuadKind:
		return Quad(fromPoint(seg.P0), fromPoint(seg.P1), fromPoint(seg.P2))
	case curve.CubicKind:
		return Cubic(fromPoint(seg.P0), fromPoint(seg.P1), fromPoint(seg.P2), fromPoint(seg.P3))
	default:
		return Line(fromPoint(seg.P0), fromPoint(seg.P1))
	}
}

func toPoint(v vec.Vec2) curve.Point {
	return curve.Point{X: v.X, Y: v.Y}
}

func fromPoint(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

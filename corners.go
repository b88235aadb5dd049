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

package fillet

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

const (
	// gapHelper moves the corner points slightly away from the curve ends
	// while the tangent directions are determined.
	gapHelper = 1e-5

	// kappa is the handle length of a cubic Bézier quarter circle, relative
	// to the radius.
	kappa = 4.0 / 3.0 * (math.Sqrt2 - 1)
)

// Method selects how the corner shapes are drawn.
type Method int

// These are the supported corner methods.
const (
	// MethodAuto uses circular arcs between straight curves, and cubic
	// Bézier curves otherwise.
	MethodAuto Method = iota
	MethodArc
	MethodBezier
)

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodArc:
		return "arc"
	case MethodBezier:
		return "bezier"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Method) MarshalText() ([]byte, error) {
	switch m {
	case MethodAuto, MethodArc, MethodBezier:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("invalid method %d", int(m))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Method) UnmarshalText(text []byte) error {
	switch string(text) {
	case "auto":
		*m = MethodAuto
	case "arc":
		*m = MethodArc
	case "bezier":
		*m = MethodBezier
	default:
		return fmt.Errorf("invalid method %q", text)
	}
	return nil
}

// ApplyCorners replaces every node of pv by the corner described by its
// satellite in sats.
//
// Empty sub-paths are left out of the result.  Satellites missing from
// sats are treated as corners of size zero.
func ApplyCorners(pv pathvec.PathVector, sats NodeSatellites, method Method) pathvec.PathVector {
	var res pathvec.PathVector
	for i := range pv {
		p := &pv[i]
		if p.Empty() {
			continue
		}
		var row []NodeSatellite
		if i < len(sats) {
			row = sats[i]
		}
		res = append(res, cornerSubpath(p, row, method))
	}
	return res
}

// satelliteAt returns sats[j], or a satellite without corner if j is out
// of range.
func satelliteAt(sats []NodeSatellite, j int) NodeSatellite {
	if j < len(sats) {
		return sats[j]
	}
	return NewNodeSatellite(Fillet)
}

func cornerSubpath(p *pathvec.Path, sats []NodeSatellite, method Method) pathvec.Path {
	n := p.CurveCount()
	out := pathvec.Path{}

	var time0 float64
	for j := range n {
		c1 := p.At(j)
		if j == 0 {
			if p.Closed {
				time0 = satelliteAt(sats, 0).Time(c1)
			}
			out.Start = c1.PointAt(time0)
		}

		if j == n-1 && !p.Closed {
			// open paths end without a corner
			if time0 != 1 {
				last := c1.Portion(time0, 1)
				last.SetInitial(out.Final())
				out.Curves = append(out.Curves, last)
			}
			break
		}

		next := j + 1
		if j == n-1 {
			next = 0
		}
		time0 = addCorner(&out, c1, p.At(next), satelliteAt(sats, next), time0, method)
	}

	out.Closed = p.Closed
	return out
}

// addCorner appends the retained part of c1, starting at time0, and the
// corner between c1 and c2 to out.  The return value is the parameter on
// c2 where the corner ends.
func addCorner(out *pathvec.Path, c1, c2 pathvec.Curve, sat NodeSatellite, time0 float64, method Method) float64 {
	s := sat.ArcDistance(c2)
	time1 := sat.TimeFrom(s, true, c1)
	time2 := sat.Time(c2)
	if time1 <= time0 {
		time1 = time0
	}
	if time2 > 1 {
		time2 = 1
	}

	knot1 := c1.Portion(time0, time1)
	knot1.SetInitial(out.Final())
	knot2 := c2.Portion(time2, 1)

	start := knot1.Final()
	end := c2.PointAt(time2)
	if time2 == 1 {
		end = c2.PointAt(time2 - gapHelper)
	}
	if time1 == time0 {
		start = c1.PointAt(time1 + gapHelper)
	}

	node1 := c1.Final()
	node2 := c2.Initial()
	k1 := pathvec.Distance(start, node1) * kappa
	k2 := pathvec.Distance(node2, end) * kappa

	ray1 := pathvec.NewRay(start, node1)
	if knot1.Kind == pathvec.CubicKind {
		ray1.SetPoints(knot1.P2, start)
	}
	ray2 := pathvec.NewRay(node2, end)
	if knot2.Kind == pathvec.CubicKind {
		ray2.SetPoints(end, knot2.P1)
	}

	ccw := pathvec.Cross(node1.Sub(start), end.Sub(start)) < 0
	angle := pathvec.AngleBetween(ray1, ray2, ccw)
	h := cornerHandles(start, end, ray1, ray2, angle, k1, k2, ccw)
	if time0 == 1 {
		h.handle1 = start
		h.inverse1 = start
	}

	if time2 == 1 {
		end = c2.PointAt(time2)
	}
	if time1 == time0 {
		start = c1.PointAt(time0)
	}

	if time1 == 1 ||
		math.Abs(angle-2*math.Pi) <= pathvec.Epsilon ||
		angle <= pathvec.Epsilon ||
		c1.IsDegenerate() || c2.IsDegenerate() {
		if !knot1.IsDegenerate() {
			out.Curves = append(out.Curves, knot1)
		}
		return time2
	}

	if time1 != time0 && !knot1.IsDegenerate() {
		out.Curves = append(out.Curves, knot1)
	}

	steps := max(sat.Steps, 1)
	arcAngle := pathvec.LineAngle(start, end)
	radius := pathvec.Distance(start, pathvec.Midpoint(start, end)) / math.Sin(angle/2)
	elliptical := (pathvec.IsStraightCurve(c1) && pathvec.IsStraightCurve(c2) && method != MethodBezier) ||
		method == MethodArc

	from := out.Final()
	arc := func(sweep bool) pathvec.Curve {
		return pathvec.NewArc(from, radius, radius, arcAngle, false, sweep, end)
	}

	switch sat.Type {
	case Chamfer:
		cut := pathvec.Cubic(from, h.handle1, h.handle2, end)
		if elliptical {
			cut = arc(!ccw)
		}
		addChamferSteps(out, cut, end, steps)
	case InverseChamfer:
		cut := pathvec.Cubic(from, h.inverse1, h.inverse2, end)
		if elliptical {
			cut = arc(ccw)
		}
		addChamferSteps(out, cut, end, steps)
	case InverseFillet:
		if elliptical {
			out.Curves = append(out.Curves, arc(ccw))
		} else {
			out.CubeTo(h.inverse1, h.inverse2, end)
		}
	default: // Fillet, and the fallback for invalid satellites
		if elliptical {
			out.Curves = append(out.Curves, arc(!ccw))
		} else {
			out.CubeTo(h.handle1, h.handle2, end)
		}
	}
	return time2
}

// handles holds the control points of a corner drawn as a cubic Bézier
// curve.  The inverse handles describe the concave corner.
type handles struct {
	handle1, handle2   vec.Vec2
	inverse1, inverse2 vec.Vec2
}

func cornerHandles(start, end vec.Vec2, ray1, ray2 pathvec.Ray, angle, k1, k2 float64, ccw bool) handles {
	handleAngle1 := ray1.Angle() - angle
	handleAngle2 := ray2.Angle() + angle
	if ccw {
		handleAngle1 = ray1.Angle() + angle
		handleAngle2 = ray2.Angle() - angle
	}
	return handles{
		handle1:  pathvec.Polar(ray1.Angle(), k1).Add(start),
		handle2:  end.Sub(pathvec.Polar(ray2.Angle(), k2)),
		inverse1: pathvec.Polar(handleAngle1, k1).Add(start),
		inverse2: end.Sub(pathvec.Polar(handleAngle2, k2)),
	}
}

// addChamferSteps approximates cut by steps straight lines, which meet cut
// at equally spaced parameter values.
func addChamferSteps(out *pathvec.Path, cut pathvec.Curve, end vec.Vec2, steps int) {
	for i := 1; i < steps; i++ {
		out.LineTo(cut.PointAt(float64(i) / float64(steps)))
	}
	out.LineTo(end)
}

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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

// ErrInvalidSatellite is returned when a node satellite cannot be decoded.
var ErrInvalidSatellite = errors.New("invalid node satellite")

// NodeSatelliteType selects the treatment of a corner.
type NodeSatelliteType int

// These are the supported corner treatments.
const (
	Fillet NodeSatelliteType = iota
	InverseFillet
	Chamfer
	InverseChamfer
	InvalidSatellite
)

// String returns the short code used in the persisted form.
func (t NodeSatelliteType) String() string {
	switch t {
	case Fillet:
		return "F"
	case InverseFillet:
		return "IF"
	case Chamfer:
		return "C"
	case InverseChamfer:
		return "IC"
	default:
		return "KO"
	}
}

// ParseNodeSatelliteType converts a short code into a NodeSatelliteType.
func ParseNodeSatelliteType(code string) (NodeSatelliteType, error) {
	switch code {
	case "F":
		return Fillet, nil
	case "IF":
		return InverseFillet, nil
	case "C":
		return Chamfer, nil
	case "IC":
		return InverseChamfer, nil
	case "KO":
		return InvalidSatellite, nil
	}
	return InvalidSatellite, fmt.Errorf("%w: unknown type %q", ErrInvalidSatellite, code)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t NodeSatelliteType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *NodeSatelliteType) UnmarshalText(text []byte) error {
	v, err := ParseNodeSatelliteType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// NodeSatellite describes the treatment of the corner at one node of a
// path.
//
// Amount is either an arc length, measured from the node along the
// adjacent curves, or, if IsTime is set, a curve parameter in [0, 1].
type NodeSatellite struct {
	Type      NodeSatelliteType
	IsTime    bool
	Selected  bool
	HasMirror bool
	Hidden    bool
	Amount    float64
	Angle     float64 // legacy field, kept for the persisted form
	Steps     int     // number of segments for chamfers, at least 1
}

// NewNodeSatellite returns a satellite of the given type with zero amount.
func NewNodeSatellite(t NodeSatelliteType) NodeSatellite {
	return NodeSatellite{Type: t, Hidden: true, Steps: 1}
}

// SetSteps sets the number of chamfer segments.  Values below 1 are
// replaced by 1.
func (s *NodeSatellite) SetSteps(steps int) {
	s.Steps = max(steps, 1)
}

// SetAmount sets the size of the corner.  Negative values are replaced
// by 0.
func (s *NodeSatellite) SetAmount(amount float64) {
	s.Amount = max(amount, 0)
}

// Time returns the curve parameter on c at which the corner ends.
// The result is at most 1.
func (s NodeSatellite) Time(c pathvec.Curve) float64 {
	t := s.Amount
	if !s.IsTime {
		t = s.TimeFrom(t, false, c)
	}
	return min(t, 1)
}

// InverseTime is like Time, but measures from the end of c.
func (s NodeSatellite) InverseTime(c pathvec.Curve) float64 {
	t := s.Amount
	if !s.IsTime {
		t = s.TimeFrom(t, true, c)
	} else {
		t = 1 - t
	}
	return min(t, 1)
}

// TimeFrom returns the curve parameter at arc length a from the start of c,
// or from the end of c if inverse is set.
func (s NodeSatellite) TimeFrom(a float64, inverse bool, c pathvec.Curve) float64 {
	if a == 0 {
		if inverse {
			return 1
		}
		return 0
	}
	if !inverse {
		return TimeAtArcLength(a, c)
	}
	return TimeAtArcLength(c.Length()-a, c)
}

// ArcDistance returns the amount as an arc length on c.
func (s NodeSatellite) ArcDistance(c pathvec.Curve) float64 {
	if s.IsTime {
		return ArcLengthAt(s.Amount, c)
	}
	return s.Amount
}

// RadToLen converts a fillet radius into the distance along out between
// the node and the point where a circle of that radius touches out.
// The circle is located by intersecting the curves offset by r from in
// and out.  If they do not intersect, the other side of the corner is
// tried.  If no circle fits, 0 is returned.
func (s NodeSatellite) RadToLen(r float64, in, out pathvec.Curve) float64 {
	p, ok := pathvec.FirstCrossing(in.Offset(r), out.Offset(r))
	if !ok {
		if r > 0 {
			return s.RadToLen(-r, in, out)
		}
		return 0
	}
	return ArcLengthAt(out.Nearest(p), out)
}

// LenToRad converts the knot distance a into the radius of the circle
// through the two knots, touching in and out.  The knot on in is located
// using the previous node's satellite.
func (s NodeSatellite) LenToRad(a float64, in, out pathvec.Curve, previous NodeSatellite) float64 {
	timeIn := previous.TimeFrom(a, true, in)
	timeOut := TimeAtArcLength(a, out)
	start := in.PointAt(timeIn)
	end := out.PointAt(timeOut)
	knot1 := in.Portion(0, timeIn)
	knot2 := out.Portion(timeOut, 1)

	ray1 := pathvec.NewRay(start, in.PointAt(1))
	if knot1.Kind == pathvec.CubicKind {
		ray1.SetPoints(knot1.P2, start)
	}
	ray2 := pathvec.NewRay(out.PointAt(0), end)
	if knot2.Kind == pathvec.CubicKind {
		ray2.SetPoints(end, knot2.P1)
	}

	ccw := pathvec.Cross(in.PointAt(1).Sub(start), end.Sub(start)) < 0
	dist := pathvec.Distance(start, pathvec.Midpoint(start, end))
	angle := pathvec.AngleBetween(ray1, ray2, ccw)
	if divisor := math.Sin(angle / 2); divisor > 0 {
		return dist / divisor
	}
	return 0
}

// SetPosition sets the amount from a point p near c, as when a corner
// handle is dragged.  If inverse is set, the amount is measured from the
// end of c.
func (s *NodeSatellite) SetPosition(p vec.Vec2, c pathvec.Curve, inverse bool) {
	if inverse {
		c = c.Reverse()
	}
	a := c.Nearest(p)
	if !s.IsTime {
		a = ArcLengthAt(a, c)
	}
	s.Amount = a
}

// TimeAtArcLength returns the parameter on c at arc length a from the
// start.  Lengths beyond the end of c, and all lengths on lines, are
// converted proportionally and may give values outside [0, 1].
func TimeAtArcLength(a float64, c pathvec.Curve) float64 {
	if a == 0 || c.IsDegenerate() {
		return 0
	}
	l := c.Length()
	if a >= l || c.IsLine() {
		if l == 0 {
			return 0
		}
		return a / l
	}
	return c.TimeAtLength(a)
}

// ArcLengthAt returns the arc length of c between the start and parameter t.
func ArcLengthAt(t float64, c pathvec.Curve) float64 {
	if t == 0 || c.IsDegenerate() {
		return 0
	}
	l := c.Length()
	if t > l || c.IsLine() {
		return t * l
	}
	return c.Portion(0, t).Length()
}

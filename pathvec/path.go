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

import "seehuhn.de/go/geom/vec"

// Path is a single sub-path: a start point followed by a sequence of
// connected curves.  If Closed is set, a straight closing segment from the
// final point back to Start is implied.
type Path struct {
	Start  vec.Vec2
	Curves []Curve
	Closed bool
}

// NewPath returns an empty open path starting at p.
func NewPath(p vec.Vec2) *Path {
	return &Path{Start: p}
}

// Empty reports whether the path has no explicit curves.
func (p *Path) Empty() bool {
	return len(p.Curves) == 0
}

// Initial returns the start point of the path.
func (p *Path) Initial() vec.Vec2 {
	return p.Start
}

// Final returns the end point of the last explicit curve, or the start
// point for an empty path.
func (p *Path) Final() vec.Vec2 {
	if len(p.Curves) == 0 {
		return p.Start
	}
	return p.Curves[len(p.Curves)-1].Final()
}

// ClosingSegment returns the line from the final point back to the start.
func (p *Path) ClosingSegment() Curve {
	return Line(p.Final(), p.Start)
}

// hasClosingCurve reports whether the closing segment of a closed path
// counts as a curve of its own.  Closing segments shorter than Epsilon are
// ignored.
func (p *Path) hasClosingCurve() bool {
	if !p.Closed {
		return false
	}
	return !AreNear(p.Final(), p.Start, Epsilon)
}

// CurveCount returns the number of curves of the path, including the
// closing segment of a closed path unless it is near-degenerate.
func (p *Path) CurveCount() int {
	n := len(p.Curves)
	if p.hasClosingCurve() {
		n++
	}
	return n
}

// NodeCount returns the number of nodes of the path.  For closed paths this
// equals the number of curves, open paths have one extra end node.
func (p *Path) NodeCount() int {
	if p.Closed {
		return p.CurveCount()
	}
	return len(p.Curves) + 1
}

// At returns curve i of the path.  For closed paths, i == len(p.Curves)
// returns the closing segment.
func (p *Path) At(i int) Curve {
	if i == len(p.Curves) && p.Closed {
		return p.ClosingSegment()
	}
	return p.Curves[i]
}

// NodePoint returns the location of node j.
func (p *Path) NodePoint(j int) vec.Vec2 {
	if j < len(p.Curves) {
		return p.Curves[j].Initial()
	}
	if j == 0 || p.Closed && j == len(p.Curves) {
		return p.Start
	}
	return p.Final()
}

// Append adds c to the end of the path.  If the path is empty, the start
// point is moved to the initial point of c.
func (p *Path) Append(c Curve) *Path {
	if len(p.Curves) == 0 {
		p.Start = c.Initial()
	}
	p.Curves = append(p.Curves, c)
	return p
}

// LineTo appends a straight line to q.
func (p *Path) LineTo(q vec.Vec2) *Path {
	p.Curves = append(p.Curves, Line(p.Final(), q))
	return p
}

// QuadTo appends a quadratic Bézier curve.
func (p *Path) QuadTo(c, q vec.Vec2) *Path {
	p.Curves = append(p.Curves, Quad(p.Final(), c, q))
	return p
}

// CubeTo appends a cubic Bézier curve.
func (p *Path) CubeTo(c1, c2, q vec.Vec2) *Path {
	p.Curves = append(p.Curves, Cubic(p.Final(), c1, c2, q))
	return p
}

// ArcTo appends an elliptical arc, given in SVG endpoint notation.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, q vec.Vec2) *Path {
	p.Curves = append(p.Curves, NewArc(p.Final(), rx, ry, rotation, largeArc, sweep, q))
	return p
}

// Close marks the path as closed.
func (p *Path) Close() *Path {
	p.Closed = true
	return p
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	res := *p
	res.Curves = append([]Curve(nil), p.Curves...)
	return &res
}

// PathVector is a list of sub-paths.
type PathVector []Path

// Clone returns a deep copy of the path vector.
func (pv PathVector) Clone() PathVector {
	if pv == nil {
		return nil
	}
	res := make(PathVector, len(pv))
	for i := range pv {
		res[i] = *pv[i].Clone()
	}
	return res
}

// ToCubics returns an equivalent path vector which only consists of lines
// and cubic Bézier curves.
func (pv PathVector) ToCubics() PathVector {
	res := make(PathVector, len(pv))
	for i, p := range pv {
		q := Path{Start: p.Start, Closed: p.Closed}
		for _, c := range p.Curves {
			q.Curves = append(q.Curves, c.ToCubics()...)
		}
		res[i] = q
	}
	return res
}

// NodeCount returns the total number of nodes over all sub-paths.
func (pv PathVector) NodeCount() int {
	n := 0
	for i := range pv {
		n += pv[i].NodeCount()
	}
	return n
}

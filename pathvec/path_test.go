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
	"testing"

	"seehuhn.de/go/geom/path"
)

func TestCounts(t *testing.T) {
	cases := []struct {
		name   string
		p      *Path
		curves int
		nodes  int
	}{
		{
			name:   "closed_implicit",
			p:      NewPath(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).Close(),
			curves: 4,
			nodes:  4,
		},
		{
			name:   "closed_explicit",
			p:      NewPath(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).LineTo(pt(0, 0)).Close(),
			curves: 4,
			nodes:  4,
		},
		{
			name:   "closed_almost_explicit",
			p:      NewPath(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(1e-8, 0)).Close(),
			curves: 3,
			nodes:  3,
		},
		{
			name:   "open",
			p:      NewPath(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)),
			curves: 3,
			nodes:  4,
		},
		{
			name:   "empty_open",
			p:      NewPath(pt(5, 5)),
			curves: 0,
			nodes:  1,
		},
		{
			name:   "empty_closed",
			p:      NewPath(pt(5, 5)).Close(),
			curves: 0,
			nodes:  0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.CurveCount(); got != tc.curves {
				t.Errorf("CurveCount() = %d, want %d", got, tc.curves)
			}
			if got := tc.p.NodeCount(); got != tc.nodes {
				t.Errorf("NodeCount() = %d, want %d", got, tc.nodes)
			}
		})
	}
}

func TestAt(t *testing.T) {
	p := NewPath(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).Close()
	c := p.At(2)
	if c.Initial() != pt(10, 10) || c.Final() != pt(0, 0) {
		t.Errorf("closing segment = %v -> %v", c.Initial(), c.Final())
	}
	if p.NodePoint(2) != pt(10, 10) {
		t.Errorf("NodePoint(2) = %v", p.NodePoint(2))
	}

	q := NewPath(pt(0, 0)).LineTo(pt(10, 0))
	if q.NodePoint(1) != pt(10, 0) {
		t.Errorf("open end node = %v, want (10,0)", q.NodePoint(1))
	}
}

func TestAppend(t *testing.T) {
	p := NewPath(pt(0, 0))
	p.Append(Line(pt(3, 4), pt(5, 6)))
	if p.Start != pt(3, 4) {
		t.Errorf("start = %v, want (3,4)", p.Start)
	}
	p.Append(Line(pt(5, 6), pt(7, 8)))
	if p.Start != pt(3, 4) || p.Final() != pt(7, 8) {
		t.Errorf("unexpected path %v -> %v", p.Start, p.Final())
	}
}

func TestFromData(t *testing.T) {
	d := &path.Data{}
	d.MoveTo(pt(0, 0)).LineTo(pt(10, 0)).QuadTo(pt(15, 5), pt(10, 10)).Close()
	d.LineTo(pt(-5, -5))
	d.MoveTo(pt(20, 20))
	d.MoveTo(pt(30, 30)).CubeTo(pt(31, 30), pt(32, 31), pt(33, 33))

	pv := FromData(d)
	if len(pv) != 4 {
		t.Fatalf("got %d sub-paths, want 4", len(pv))
	}

	if !pv[0].Closed || len(pv[0].Curves) != 2 || pv[0].Curves[1].Kind != QuadKind {
		t.Errorf("sub-path 0 = %+v", pv[0])
	}
	if pv[1].Closed || pv[1].Start != pt(0, 0) || pv[1].Final() != pt(-5, -5) {
		t.Errorf("sub-path 1 = %+v", pv[1])
	}
	if !pv[2].Empty() || pv[2].Start != pt(20, 20) {
		t.Errorf("sub-path 2 = %+v", pv[2])
	}
	if pv[3].Curves[0].Kind != CubicKind || pv[3].Final() != pt(33, 33) {
		t.Errorf("sub-path 3 = %+v", pv[3])
	}
}

func TestToData(t *testing.T) {
	pv := PathVector{
		*NewPath(pt(0, 0)).LineTo(pt(10, 0)).ArcTo(5, 5, 0, false, true, pt(10, 10)).Close(),
		*NewPath(pt(20, 20)),
	}
	d := ToData(pv)

	want := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose,
		path.CmdMoveTo,
	}
	if len(d.Cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(d.Cmds), len(want))
	}
	for i := range want {
		if d.Cmds[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, d.Cmds[i], want[i])
		}
	}

	back := FromData(d)
	if len(back) != 2 || back[0].Final() != pt(10, 10) {
		t.Errorf("round trip gave %+v", back)
	}
}

func TestToCubics(t *testing.T) {
	pv := PathVector{
		*NewPath(pt(0, 0)).QuadTo(pt(5, 5), pt(10, 0)).LineTo(pt(0, 0)),
	}
	res := pv.ToCubics()
	if res[0].Curves[0].Kind != CubicKind || res[0].Curves[1].Kind != LineKind {
		t.Errorf("unexpected kinds %s, %s", res[0].Curves[0].Kind, res[0].Curves[1].Kind)
	}
	q := pv[0].Curves[0]
	c := res[0].Curves[0]
	for _, s := range []float64{0.2, 0.5, 0.9} {
		if !AreNear(q.PointAt(s), c.PointAt(s), 1e-9) {
			t.Errorf("raised quad differs at %g", s)
		}
	}
}

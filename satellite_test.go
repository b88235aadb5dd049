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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestNodeSatelliteTypeCodes(t *testing.T) {
	for _, typ := range []NodeSatelliteType{Fillet, InverseFillet, Chamfer, InverseChamfer, InvalidSatellite} {
		got, err := ParseNodeSatelliteType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseNodeSatelliteType("X")
	assert.ErrorIs(t, err, ErrInvalidSatellite)

	var typ NodeSatelliteType
	require.NoError(t, typ.UnmarshalText([]byte("IC")))
	assert.Equal(t, InverseChamfer, typ)
}

func TestSetters(t *testing.T) {
	s := NewNodeSatellite(Chamfer)
	assert.Equal(t, 1, s.Steps)
	assert.True(t, s.Hidden)

	s.SetSteps(0)
	assert.Equal(t, 1, s.Steps)
	s.SetSteps(4)
	assert.Equal(t, 4, s.Steps)

	s.SetAmount(-5)
	assert.Zero(t, s.Amount)
	s.SetAmount(2.5)
	assert.Equal(t, 2.5, s.Amount)
}

func TestArcLengthConversion(t *testing.T) {
	line := pathvec.Line(pt(0, 0), pt(100, 0))
	assert.InDelta(t, 0.1, TimeAtArcLength(10, line), 1e-12)
	assert.InDelta(t, 1.5, TimeAtArcLength(150, line), 1e-12)
	assert.InDelta(t, 25, ArcLengthAt(0.25, line), 1e-12)
	assert.Zero(t, TimeAtArcLength(10, pathvec.Line(pt(3, 3), pt(3, 3))))

	cubic := pathvec.Cubic(pt(0, 0), pt(0, 50), pt(50, 100), pt(100, 100))
	for _, a := range []float64{5, 40, 90} {
		tt := TimeAtArcLength(a, cubic)
		assert.InDelta(t, a, ArcLengthAt(tt, cubic), 1e-4)
	}
}

func TestTime(t *testing.T) {
	line := pathvec.Line(pt(0, 0), pt(100, 0))

	s := NewNodeSatellite(Fillet)
	s.Amount = 20
	assert.InDelta(t, 0.2, s.Time(line), 1e-12)
	assert.InDelta(t, 0.8, s.InverseTime(line), 1e-12)
	assert.InDelta(t, 20, s.ArcDistance(line), 1e-12)

	s.Amount = 150
	assert.Equal(t, 1.0, s.Time(line))

	s.IsTime = true
	s.Amount = 0.3
	assert.Equal(t, 0.3, s.Time(line))
	assert.InDelta(t, 0.7, s.InverseTime(line), 1e-12)
	assert.InDelta(t, 30, s.ArcDistance(line), 1e-12)

	s.Amount = 0
	assert.Equal(t, 1.0, s.TimeFrom(0, true, line))
	assert.Equal(t, 0.0, s.TimeFrom(0, false, line))
}

func TestRadiusConversion(t *testing.T) {
	in := pathvec.Line(pt(0, 0), pt(100, 0))
	out := pathvec.Line(pt(100, 0), pt(100, 50))
	s := NewNodeSatellite(Fillet)

	assert.InDelta(t, 10, s.RadToLen(10, in, out), 1e-6)
	assert.InDelta(t, 10, s.LenToRad(10, in, out, s), 1e-6)

	// a 60° corner: the knots are r·√3 away from the node
	in = pathvec.Line(pt(0, 0), pt(100, 0))
	out = pathvec.Line(pt(100, 0), pt(50, 86.60254037844386))
	assert.InDelta(t, 10*1.7320508075688772, s.RadToLen(10, in, out), 1e-4)

	// curves too short for the radius
	in = pathvec.Line(pt(0, 0), pt(1, 0))
	out = pathvec.Line(pt(1, 0), pt(1, 1))
	assert.Zero(t, s.RadToLen(50, in, out))
}

func TestSetPosition(t *testing.T) {
	c := pathvec.Line(pt(100, 0), pt(100, 50))

	s := NewNodeSatellite(Fillet)
	s.SetPosition(pt(103, 30), c, false)
	assert.InDelta(t, 30, s.Amount, 1e-6)

	s.SetPosition(pt(103, 30), c, true)
	assert.InDelta(t, 20, s.Amount, 1e-6)

	s.IsTime = true
	s.SetPosition(pt(100, 10), c, false)
	assert.InDelta(t, 0.2, s.Amount, 1e-6)
}

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
)

func TestPersistRoundTrip(t *testing.T) {
	chamfer := NewNodeSatellite(Chamfer)
	chamfer.Amount = 2.75
	chamfer.Steps = 3
	chamfer.Selected = true

	flex := NewNodeSatellite(InverseFillet)
	flex.IsTime = true
	flex.Amount = 0.125
	flex.HasMirror = true

	sats := NodeSatellites{
		{NewNodeSatellite(Fillet), chamfer},
		{},
		{flex},
	}
	str := FormatNodeSatellites(sats)
	assert.Equal(t, "F,0,0,0,1,0,0,1 @ C,0,1,0,1,2.75,0,3 |  | IF,1,0,1,1,0.125,0,1", str)

	got, err := ParseNodeSatellites(str)
	require.NoError(t, err)
	assert.Equal(t, sats, got)
	assert.Equal(t, str, FormatNodeSatellites(got))
}

func TestParseNodeSatellites(t *testing.T) {
	sats, err := ParseNodeSatellites("   ")
	require.NoError(t, err)
	assert.Nil(t, sats)

	sats, err = ParseNodeSatellites("C,0,0,1,0,4,0,0@F,0,0,1,0,1e-3,0,2")
	require.NoError(t, err)
	require.Len(t, sats, 1)
	require.Len(t, sats[0], 2)
	assert.Equal(t, 1, sats[0][0].Steps)
	assert.Equal(t, 0.001, sats[0][1].Amount)

	for _, bad := range []string{
		"F,0,0",
		"Q,0,0,0,0,1,0,1",
		"F,0,0,0,0,x,0,1",
		"F,0,0,0,0,1,y,1",
		"F,0,0,0,0,1,0,1.5",
		"F,0,0,0,0,1,0,1 @ F",
	} {
		_, err := ParseNodeSatellites(bad)
		assert.ErrorIs(t, err, ErrInvalidSatellite, bad)
	}
}

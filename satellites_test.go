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

// rect returns the closed rectangle (0,0)-(w,h) as a path vector.
func rect(w, h float64) pathvec.PathVector {
	p := pathvec.NewPath(pt(0, 0)).
		LineTo(pt(w, 0)).
		LineTo(pt(w, h)).
		LineTo(pt(0, h)).
		Close()
	return pathvec.PathVector{*p}
}

// openCorner returns the open path (0,0)-(100,0)-(100,50).
func openCorner() pathvec.PathVector {
	p := pathvec.NewPath(pt(0, 0)).LineTo(pt(100, 0)).LineTo(pt(100, 50))
	return pathvec.PathVector{*p}
}

func withAmounts(t NodeSatelliteType, amounts ...float64) []NodeSatellite {
	row := make([]NodeSatellite, len(amounts))
	for j, a := range amounts {
		row[j] = NewNodeSatellite(t)
		row[j].Amount = a
	}
	return row
}

func amounts(row []NodeSatellite) []float64 {
	res := make([]float64, len(row))
	for j, s := range row {
		res[j] = s.Amount
	}
	return res
}

func TestRecalculateKeepsNodes(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.RecalculateForNewPathVector(rect(100, 50), NewNodeSatellite(Fillet))
	require.Len(t, store.NodeSatellites(), 1)
	require.Len(t, store.NodeSatellites()[0], 4)

	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 1, 2, 3, 4)})

	// insert a node in the middle of the right edge
	p := pathvec.NewPath(pt(0, 0)).
		LineTo(pt(100, 0)).
		LineTo(pt(100, 25)).
		LineTo(pt(100, 50)).
		LineTo(pt(0, 50)).
		Close()
	def := NewNodeSatellite(Chamfer)
	def.Amount = 7
	store.RecalculateForNewPathVector(pathvec.PathVector{*p}, def)

	sats := store.NodeSatellites()
	require.Len(t, sats, 1)
	assert.Equal(t, []float64{1, 2, 7, 3, 4}, amounts(sats[0]))
	assert.Equal(t, Chamfer, sats[0][2].Type)
	assert.Equal(t, Fillet, sats[0][3].Type)
}

func TestRecalculateOpenPath(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	def := NewNodeSatellite(Fillet)
	def.Amount = 5
	store.RecalculateForNewPathVector(openCorner(), def)

	sats := store.NodeSatellites()
	require.Len(t, sats, 1)
	assert.Len(t, sats[0], 3)
	assert.Equal(t, 3, store.TotalNodeSatellites())

	// loaded satellites without a path are matched by index
	store = &PathVectorNodeSatellites{}
	store.SetNodeSatellites(NodeSatellites{withAmounts(Chamfer, 0, 9, 0)})
	store.RecalculateForNewPathVector(openCorner(), def)
	sats = store.NodeSatellites()
	assert.Equal(t, []float64{0, 9, 5}, amounts(sats[0]))
	assert.Equal(t, Chamfer, sats[0][1].Type)
}

func TestUpdateAmountGating(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetPathVector(rect(100, 50))
	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 0, 5, 0, 5)})

	store.UpdateAmount(8, false, true, false, true, false)
	assert.Equal(t, []float64{0, 8, 0, 8}, amounts(store.NodeSatellites()[0]))

	store.UpdateAmount(3, true, false, false, true, false)
	assert.Equal(t, []float64{3, 8, 3, 8}, amounts(store.NodeSatellites()[0]))

	store.SetSelected([]int{1})
	store.UpdateAmount(1, true, true, true, true, false)
	assert.Equal(t, []float64{3, 1, 3, 8}, amounts(store.NodeSatellites()[0]))

	store.UpdateAmount(50, true, true, false, false, true)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, amounts(store.NodeSatellites()[0]))
}

func TestUpdateAmountRadius(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetPathVector(rect(100, 50))
	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 0, 0, 0, 0)})

	store.UpdateAmount(10, true, true, false, false, false)
	for _, a := range amounts(store.NodeSatellites()[0]) {
		assert.InDelta(t, 10, a, 1e-6)
	}
}

func TestUpdateAmountOpenEnds(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetPathVector(openCorner())
	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 4, 4, 4)})

	store.UpdateAmount(6, true, true, false, true, false)
	assert.Equal(t, []float64{0, 6, 0}, amounts(store.NodeSatellites()[0]))
}

func TestUpdateStepsAndType(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetPathVector(rect(100, 50))
	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 1, 1, 0, 1)})

	store.SetSelected([]int{0, 2})
	store.UpdateSteps(5, true, true, true)
	sats := store.NodeSatellites()[0]
	assert.Equal(t, []int{5, 1, 5, 1}, []int{sats[0].Steps, sats[1].Steps, sats[2].Steps, sats[3].Steps})

	store.UpdateNodeSatelliteType(Chamfer, false, true, false)
	sats = store.NodeSatellites()[0]
	assert.Equal(t, []NodeSatelliteType{Chamfer, Chamfer, Fillet, Chamfer},
		[]NodeSatelliteType{sats[0].Type, sats[1].Type, sats[2].Type, sats[3].Type})
}

func TestConvertUnitAmounts(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetPathVector(rect(100, 50))
	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 96, 48, 0, 9.6)})

	require.NoError(t, store.ConvertUnit("px", "in", true, true))
	got := amounts(store.NodeSatellites()[0])
	assert.InDeltaSlice(t, []float64{1, 0.5, 0, 0.1}, got, 1e-12)

	assert.ErrorIs(t, store.ConvertUnit("px", "parsec", true, true), ErrUnknownUnit)
}

func TestIndexData(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetNodeSatellites(NodeSatellites{
		withAmounts(Fillet, 0, 0),
		withAmounts(Fillet, 0, 0, 0),
	})

	i, j := store.IndexData(3)
	assert.Equal(t, 1, i)
	assert.Equal(t, 1, j)

	i, j = store.IndexData(99)
	assert.Zero(t, i)
	assert.Zero(t, j)
}

func TestSyncSelection(t *testing.T) {
	store := &PathVectorNodeSatellites{}
	store.SetPathVector(rect(100, 50))
	store.SetNodeSatellites(NodeSatellites{withAmounts(Fillet, 0, 0, 0, 0)})

	isSelected := func(p vec.Vec2) bool { return p.X == 100 }
	store.SyncSelection(true, isSelected)
	sats := store.NodeSatellites()[0]
	assert.Equal(t, []bool{false, true, true, false},
		[]bool{sats[0].Selected, sats[1].Selected, sats[2].Selected, sats[3].Selected})

	store.SyncSelection(false, isSelected)
	for _, s := range store.NodeSatellites()[0] {
		assert.False(t, s.Selected)
	}
}

func TestNodeSatellitesAt(t *testing.T) {
	sats := NodeSatellites{withAmounts(Chamfer, 3)}

	s, ok := sats.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, s.Amount)

	s, ok = sats.At(0, 1)
	assert.False(t, ok)
	assert.Zero(t, s.Amount)
	assert.Equal(t, Fillet, s.Type)

	clone := sats.Clone()
	clone[0][0].Amount = 1
	assert.Equal(t, 3.0, sats[0][0].Amount)
}

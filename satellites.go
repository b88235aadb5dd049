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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

// matchTolerance is the distance below which an old node is considered to
// be at the same position as a new one.
const matchTolerance = 0.001

// NodeSatellites holds one satellite per node, indexed by sub-path and
// node.  Open sub-paths have one extra entry for their end node.
type NodeSatellites [][]NodeSatellite

// At returns the satellite for node j of sub-path i.  If the index is out
// of range, a satellite with zero amount is returned and ok is false.
func (s NodeSatellites) At(i, j int) (sat NodeSatellite, ok bool) {
	if i < 0 || i >= len(s) || j < 0 || j >= len(s[i]) {
		return NewNodeSatellite(Fillet), false
	}
	return s[i][j], true
}

// Total returns the number of satellites over all sub-paths.
func (s NodeSatellites) Total() int {
	n := 0
	for _, row := range s {
		n += len(row)
	}
	return n
}

// Clone returns a deep copy of s.
func (s NodeSatellites) Clone() NodeSatellites {
	if s == nil {
		return nil
	}
	res := make(NodeSatellites, len(s))
	for i, row := range s {
		res[i] = append([]NodeSatellite(nil), row...)
	}
	return res
}

// PathVectorNodeSatellites combines a path vector with the satellites for
// its nodes.
//
// A PathVectorNodeSatellites is not safe for concurrent use.
type PathVectorNodeSatellites struct {
	pathv pathvec.PathVector
	sats  NodeSatellites
}

// PathVector returns the path the satellites refer to.
func (p *PathVectorNodeSatellites) PathVector() pathvec.PathVector {
	return p.pathv
}

// SetPathVector replaces the path, without changing the satellites.
func (p *PathVectorNodeSatellites) SetPathVector(pv pathvec.PathVector) {
	p.pathv = pv
}

// NodeSatellites returns a copy of the satellites.
func (p *PathVectorNodeSatellites) NodeSatellites() NodeSatellites {
	return p.sats.Clone()
}

// SetNodeSatellites replaces the satellites, without changing the path.
func (p *PathVectorNodeSatellites) SetNodeSatellites(sats NodeSatellites) {
	p.sats = sats
}

// TotalNodeSatellites returns the number of satellites over all sub-paths.
func (p *PathVectorNodeSatellites) TotalNodeSatellites() int {
	return p.sats.Total()
}

// IndexData converts a running satellite index into a sub-path and node
// index.  Indices out of range map to (0, 0).
func (p *PathVectorNodeSatellites) IndexData(k int) (i, j int) {
	counter := 0
	for i, row := range p.sats {
		for j := range row {
			if counter == k {
				return i, j
			}
			counter++
		}
	}
	return 0, 0
}

// SetSelected marks the satellites with the given running indices as
// selected and clears all others.
func (p *PathVectorNodeSatellites) SetSelected(indices []int) {
	selected := make(map[int]bool, len(indices))
	for _, k := range indices {
		selected[k] = true
	}
	counter := 0
	for i := range p.sats {
		for j := range p.sats[i] {
			p.sats[i][j].Selected = selected[counter]
			counter++
		}
	}
}

// SyncSelection sets the Selected flag of every satellite whose node is
// reported as selected by isSelected, and clears it for all others.  If
// onlySelected is false, all flags are cleared.
func (p *PathVectorNodeSatellites) SyncSelection(onlySelected bool, isSelected func(vec.Vec2) bool) {
	for i := range p.sats {
		for j := range p.sats[i] {
			p.sats[i][j].Selected = false
			if !onlySelected || isSelected == nil || i >= len(p.pathv) {
				continue
			}
			path := &p.pathv[i]
			if j >= path.NodeCount() {
				continue
			}
			p.sats[i][j].Selected = isSelected(path.NodePoint(j))
		}
	}
}

// skip reports whether the bulk operations leave a satellite unchanged
// because of its current amount.
func skip(s NodeSatellite, applyNoRadius, applyWithRadius bool) bool {
	return (!applyNoRadius && s.Amount == 0) || (!applyWithRadius && s.Amount != 0)
}

// UpdateSteps sets the number of chamfer steps for all satellites which
// pass the gating flags.  If onlySelected is set, only selected satellites
// are changed.
func (p *PathVectorNodeSatellites) UpdateSteps(steps int, applyNoRadius, applyWithRadius, onlySelected bool) {
	for i := range p.sats {
		for j := range p.sats[i] {
			s := &p.sats[i][j]
			if skip(*s, applyNoRadius, applyWithRadius) {
				continue
			}
			if !onlySelected || s.Selected {
				s.SetSteps(steps)
			}
		}
	}
}

// UpdateAmount sets the corner size of all satellites which pass the
// gating flags.
//
// If flexible is set, radius is a percentage and is stored as a curve
// parameter.  If useKnotDistance is set, radius is stored as a knot
// distance.  Otherwise radius is a fillet radius, which is converted into
// the knot distance giving a circle of that radius.  The end nodes of open
// sub-paths always get amount 0.
func (p *PathVectorNodeSatellites) UpdateAmount(radius float64, applyNoRadius, applyWithRadius, onlySelected, useKnotDistance, flexible bool) {
	power := radius
	if flexible {
		power = radius / 100
	}
	for i := range p.sats {
		if i >= len(p.pathv) {
			break
		}
		path := &p.pathv[i]
		nodes := path.NodeCount()
		curves := path.CurveCount()
		for j := range p.sats[i] {
			s := &p.sats[i][j]
			if !path.Closed && (j == 0 || j == nodes-1) {
				s.Amount = 0
				continue
			}
			if j >= nodes || j >= curves {
				continue
			}
			if skip(*s, applyNoRadius, applyWithRadius) {
				continue
			}
			if onlySelected && !s.Selected {
				continue
			}

			if useKnotDistance || flexible {
				s.Amount = power
				continue
			}
			prev := j - 1
			if j == 0 {
				prev = curves - 1
			}
			s.Amount = s.RadToLen(power, path.At(prev), path.At(j))
			if power != 0 && s.Amount == 0 {
				Logger().Warn("radius too large for the adjacent curves",
					"radius", power, "subpath", i, "node", j)
			}
		}
	}
}

// ConvertUnit converts all amounts which pass the gating flags from unit
// from to unit to.  The end nodes of open sub-paths get amount 0.
func (p *PathVectorNodeSatellites) ConvertUnit(from, to string, applyNoRadius, applyWithRadius bool) error {
	factor, err := ConvertUnit(1, from, to)
	if err != nil {
		return err
	}
	for i := range p.sats {
		if i >= len(p.pathv) {
			break
		}
		path := &p.pathv[i]
		nodes := path.NodeCount()
		for j := range p.sats[i] {
			s := &p.sats[i][j]
			if !path.Closed && (j == 0 || j == nodes-1) {
				s.Amount = 0
				continue
			}
			if j >= nodes || skip(*s, applyNoRadius, applyWithRadius) {
				continue
			}
			s.Amount *= factor
		}
	}
	return nil
}

// UpdateNodeSatelliteType sets the corner type of all satellites which pass
// the gating flags.  If onlySelected is set, only selected satellites are
// changed.
func (p *PathVectorNodeSatellites) UpdateNodeSatelliteType(t NodeSatelliteType, applyNoRadius, applyWithRadius, onlySelected bool) {
	for i := range p.sats {
		nodes := -1
		if i < len(p.pathv) {
			nodes = p.pathv[i].NodeCount()
		}
		for j := range p.sats[i] {
			s := &p.sats[i][j]
			if skip(*s, applyNoRadius, applyWithRadius) {
				continue
			}
			if j == nodes {
				// satellites beyond the last node only follow global changes
				if !onlySelected {
					s.Type = t
				}
				continue
			}
			if !onlySelected || s.Selected {
				s.Type = t
			}
		}
	}
}

// RecalculateForNewPathVector replaces the path by pv and rebuilds the
// satellites to match its nodes.
//
// For every node of pv, the satellite of the first old node at the same
// position is reused.  If there was no old path, as after loading the
// satellites from their persisted form, the satellite at the same index is
// used.  All other nodes get a copy of def.  Non-empty open sub-paths get
// an extra copy of def for their end node.
func (p *PathVectorNodeSatellites) RecalculateForNewPathVector(pv pathvec.PathVector, def NodeSatellite) {
	sats := make(NodeSatellites, len(pv))
	for i := range pv {
		newPath := &pv[i]
		n := newPath.CurveCount()
		row := make([]NodeSatellite, 0, n+1)
		for j := range n {
			s, found := p.findMatch(newPath.At(j).Initial())
			if !found {
				s = def
				if len(p.pathv) == 0 {
					if old, ok := p.sats.At(i, j); ok {
						s = old
					}
				}
			}
			row = append(row, s)
		}
		if !newPath.Empty() && !newPath.Closed {
			row = append(row, def)
		}
		sats[i] = row
	}
	p.pathv = pv
	p.sats = sats
}

// findMatch returns the satellite of the first old node near q.
func (p *PathVectorNodeSatellites) findMatch(q vec.Vec2) (NodeSatellite, bool) {
	for i := range p.pathv {
		if i >= len(p.sats) {
			break
		}
		old := &p.pathv[i]
		n := old.CurveCount()
		for j := range n {
			if j >= len(p.sats[i]) {
				break
			}
			if pathvec.AreNear(old.At(j).Initial(), q, matchTolerance) {
				return p.sats[i][j], true
			}
		}
	}
	return NodeSatellite{}, false
}

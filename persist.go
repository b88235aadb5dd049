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
	"strconv"
	"strings"
)

// Separators of the persisted form.
const (
	recordSep  = " @ "
	subpathSep = " | "
)

// FormatNodeSatellites encodes sats as a string.
//
// Each satellite is written as the eight comma separated fields
//
//	type,is_time,selected,has_mirror,hidden,amount,angle,steps
//
// with booleans written as 0 or 1.  Satellites of one sub-path are joined
// by " @ ", sub-paths are joined by " | ".
func FormatNodeSatellites(sats NodeSatellites) string {
	b := &strings.Builder{}
	for i, row := range sats {
		if i > 0 {
			b.WriteString(subpathSep)
		}
		for j, s := range row {
			if j > 0 {
				b.WriteString(recordSep)
			}
			writeSatellite(b, s)
		}
	}
	return b.String()
}

func writeSatellite(b *strings.Builder, s NodeSatellite) {
	b.WriteString(s.Type.String())
	for _, flag := range []bool{s.IsTime, s.Selected, s.HasMirror, s.Hidden} {
		b.WriteByte(',')
		if flag {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(s.Amount, 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(s.Angle, 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.Steps))
}

// ParseNodeSatellites decodes the output of [FormatNodeSatellites].
// Blank input gives an empty result.  Steps below 1 are replaced by 1.
func ParseNodeSatellites(str string) (NodeSatellites, error) {
	if strings.TrimSpace(str) == "" {
		return nil, nil
	}

	var res NodeSatellites
	for i, part := range strings.Split(str, "|") {
		row := []NodeSatellite{}
		if strings.TrimSpace(part) != "" {
			for j, rec := range strings.Split(part, "@") {
				s, err := parseSatellite(strings.TrimSpace(rec))
				if err != nil {
					return nil, fmt.Errorf("sub-path %d, node %d: %w", i, j, err)
				}
				row = append(row, s)
			}
		}
		res = append(res, row)
	}
	return res, nil
}

func parseSatellite(rec string) (NodeSatellite, error) {
	fields := strings.Split(rec, ",")
	if len(fields) != 8 {
		return NodeSatellite{}, fmt.Errorf("%w: %q has %d fields, want 8",
			ErrInvalidSatellite, rec, len(fields))
	}
	for k := range fields {
		fields[k] = strings.TrimSpace(fields[k])
	}

	var s NodeSatellite
	var err error
	s.Type, err = ParseNodeSatelliteType(fields[0])
	if err != nil {
		return NodeSatellite{}, err
	}
	s.IsTime = fields[1] == "1"
	s.Selected = fields[2] == "1"
	s.HasMirror = fields[3] == "1"
	s.Hidden = fields[4] == "1"

	s.Amount, err = strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return NodeSatellite{}, fmt.Errorf("%w: amount: %w", ErrInvalidSatellite, err)
	}
	s.Angle, err = strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return NodeSatellite{}, fmt.Errorf("%w: angle: %w", ErrInvalidSatellite, err)
	}
	steps, err := strconv.Atoi(fields[7])
	if err != nil {
		return NodeSatellite{}, fmt.Errorf("%w: steps: %w", ErrInvalidSatellite, err)
	}
	s.SetSteps(steps)
	return s, nil
}

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

// Package pathio reads and writes corner-treated paths: JSON path files,
// YAML parameter files, PDF pages and PNG previews.
package pathio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

// ErrMalformedPath is returned when a JSON path file cannot be decoded.
var ErrMalformedPath = errors.New("malformed path")

// Segment is one path command in the JSON path format.
type Segment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// File is the top-level object of a JSON path file.
type File struct {
	Path []Segment `json:"path"`
}

// Segments converts pv into JSON segments.  Elliptical arcs are written as
// cubic Bézier curves.
func Segments(pv pathvec.PathVector) []Segment {
	var segs []Segment
	for cmd, pts := range pathvec.ToData(pv).Iter() {
		seg := Segment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

// FromSegments converts JSON segments into a path vector.
func FromSegments(segs []Segment) (pathvec.PathVector, error) {
	d := &path.Data{}
	for k, seg := range segs {
		var want int
		switch seg.Cmd {
		case "M", "L":
			want = 1
		case "Q":
			want = 2
		case "C":
			want = 3
		case "Z":
			want = 0
		default:
			return nil, fmt.Errorf("%w: segment %d: unknown command %q", ErrMalformedPath, k, seg.Cmd)
		}
		if len(seg.Pts) != want {
			return nil, fmt.Errorf("%w: segment %d: %q needs %d points, got %d",
				ErrMalformedPath, k, seg.Cmd, want, len(seg.Pts))
		}
		pts := make([]vec.Vec2, want)
		for i, p := range seg.Pts {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: segment %d: point %d has %d coordinates",
					ErrMalformedPath, k, i, len(p))
			}
			pts[i] = vec.Vec2{X: p[0], Y: p[1]}
		}
		switch seg.Cmd {
		case "M":
			d.MoveTo(pts[0])
		case "L":
			d.LineTo(pts[0])
		case "Q":
			d.QuadTo(pts[0], pts[1])
		case "C":
			d.CubeTo(pts[0], pts[1], pts[2])
		case "Z":
			d.Close()
		}
	}
	return pathvec.FromData(d), nil
}

// ReadJSON reads a JSON path file.
func ReadJSON(r io.Reader) (pathvec.PathVector, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("reading path: %w", err)
	}
	return FromSegments(f.Path)
}

// WriteJSON writes pv as an indented JSON path file.
func WriteJSON(w io.Writer, pv pathvec.PathVector) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(File{Path: Segments(pv)})
}

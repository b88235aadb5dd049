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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var polygonCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(8, 8, 48, 32),
		Width:  64,
		Height: 48,
		Corner: fillet(6),
	},
	{
		Name:   "square_radius",
		Path:   rectangle(8, 8, 48, 48),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "F", Radius: 10, UseRadius: true},
	},
	{
		Name:   "triangle",
		Path:   triangle(32, 6, 58, 56, 6, 56),
		Width:  64,
		Height: 64,
		Corner: fillet(5),
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 28, 12),
		Width:  64,
		Height: 64,
		Corner: fillet(3),
	},
	{
		Name:   "hexagon",
		Path:   regularPolygon(32, 32, 26, 6),
		Width:  64,
		Height: 64,
		Corner: Corner{Mode: "F", Radius: 8, UseRadius: true},
	},
	{
		Name:   "zigzag_closed",
		Path:   zigzag(4, 8, 56, 40, 6).Close(),
		Width:  64,
		Height: 48,
		Corner: fillet(2),
	},
}

// rectangle creates an axis-aligned closed rectangle.
func rectangle(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+w, y)).
		LineTo(pt(x+w, y+h)).
		LineTo(pt(x, y+h)).
		Close()
}

// triangle creates a closed triangle from three vertices.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar creates a five-pointed star, alternating between the
// outer and inner radius.
func fivePointStar(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	for i := range 10 {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(pt(x, y))
		} else {
			p.LineTo(pt(x, y))
		}
	}
	return p.Close()
}

// regularPolygon creates a closed polygon with n vertices on a circle.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	p := &path.Data{}
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}

// zigzag creates an open zigzag line with n teeth between x0 and x1.
func zigzag(x0, y0, x1, y1 float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x0, y1))
	dx := (x1 - x0) / float64(2*n)
	for i := 1; i <= 2*n; i++ {
		y := y1
		if i%2 == 1 {
			y = y0
		}
		p.LineTo(pt(x0+float64(i)*dx, y))
	}
	return p
}

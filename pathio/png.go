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

package pathio

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fillet/pathvec"
)

// Rasterize fills pv, using the nonzero winding rule, and returns the
// coverage of each pixel.  Open sub-paths are closed implicitly.
func Rasterize(pv pathvec.PathVector, pg Page) *image.Alpha {
	r := vector.NewRasterizer(pg.Width, pg.Height)
	dst := image.NewAlpha(image.Rect(0, 0, pg.Width, pg.Height))
	src := image.NewUniform(color.Alpha{255})

	open := false
	for cmd, pts := range pathvec.ToData(pv).Iter().ToCubic() {
		q := make([]float32, 0, 6)
		for _, p := range pts {
			p = apply(pg.CTM, p)
			q = append(q, float32(p.X), float32(p.Y))
		}
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(q[0], q[1])
			open = true
		case path.CmdLineTo:
			r.LineTo(q[0], q[1])
		case path.CmdCubeTo:
			r.CubeTo(q[0], q[1], q[2], q[3], q[4], q[5])
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}

	r.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// WritePNG writes a greyscale preview of pv in PNG format.
func WritePNG(w io.Writer, pv pathvec.PathVector, pg Page) error {
	return png.Encode(w, Rasterize(pv, pg))
}

// Coverage returns the total pixel coverage of img, in units of pixels.
func Coverage(img *image.Alpha) float64 {
	var sum int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := range b.Dx() {
			sum += int(row[x])
		}
	}
	return float64(sum) / 255
}

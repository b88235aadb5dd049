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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fillet/pathvec"
)

// Page describes the canvas a path is drawn on.  Coordinates have the
// origin in the top-left corner, with y pointing down.
type Page struct {
	Width, Height int
	CTM           matrix.Matrix // zero value means no transform
}

// FitPage returns a page which shows all of pv, with the given margin on
// each side.
func FitPage(pv pathvec.PathVector, margin float64) Page {
	box := Bounds(pv, matrix.Matrix{})
	return Page{
		Width:  int(box.URx-box.LLx+2*margin) + 1,
		Height: int(box.URy-box.LLy+2*margin) + 1,
		CTM:    matrix.Matrix{1, 0, 0, 1, margin - box.LLx, margin - box.LLy},
	}
}

// WritePDF writes a single page PDF file showing pv.  Paths with a closed
// sub-path are filled in black, all others are stroked.
func WritePDF(fileName string, pv pathvec.PathVector, pg Page) error {
	paper := &pdf.Rectangle{
		URx: float64(pg.Width),
		URy: float64(pg.Height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(pg.Height)})
	if pg.CTM != (matrix.Matrix{}) && pg.CTM != matrix.Identity {
		page.Transform(pg.CTM)
	}

	page.SetFillColor(color.DeviceGray(0))
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)

	closed := false
	for cmd, pts := range pathvec.ToData(pv).Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
			closed = true
		}
	}
	if closed {
		page.Fill()
	} else {
		page.Stroke()
	}

	return page.Close()
}

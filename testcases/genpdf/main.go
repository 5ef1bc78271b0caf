// seehuhn.de/go/flst - a tree of shapes library
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

// Command genpdf draws the level lines of each test case into a PDF
// file, one per case. Inf shapes are drawn in blue, sup shapes in red.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/flst"
	"seehuhn.de/go/flst/testcases"
)

const outDir = "testdata/levellines"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	raster, err := flst.NewRaster(tc.Pix, tc.Width, tc.Height)
	if err != nil {
		return err
	}
	tree, err := flst.New(raster, flst.TDPre, &flst.Options{Contours: true})
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the image assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for id := range tree.Walk(flst.Pre, 0) {
		if id == 0 {
			continue // the root's level line is the image frame
		}
		d := tree.ContourPath(id)
		if d == nil {
			continue
		}
		if tree.Shapes[id].Type == flst.Inf {
			page.SetStrokeColor(color.DeviceRGB(0, 0, 1))
		} else {
			page.SetStrokeColor(color.DeviceRGB(1, 0, 0))
		}
		coord := 0
		for _, cmd := range d.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(d.Coords[coord].X, d.Coords[coord].Y)
				coord++
			case path.CmdLineTo:
				page.LineTo(d.Coords[coord].X, d.Coords[coord].Y)
				coord++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

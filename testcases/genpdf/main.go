// seehuhn.de/go/linelabel - line label placement for map renderers
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

// Command genpdf draws the reprojected labels of all scenarios.
// For every scenario it writes a PDF showing the symbol lines and one square
// per placed glyph, and renders it to PNG using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/linelabel"
	"seehuhn.de/go/linelabel/preview"
	"seehuhn.de/go/linelabel/testcases"
)

const outDir = "testdata/preview"

// glyphBox is the edge length of the square drawn for each glyph, in
// label-plane units.
const glyphBox = 10

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	p := &linelabel.Pass{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(p, sc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(p *linelabel.Pass, sc testcases.Scenario, pdfPath string) error {
	w, h := sc.Camera.Width, sc.Camera.Height
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; screen coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	toScreen := func(ndc vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: (ndc.X + 1) / 2 * w, Y: (1 - ndc.Y) / 2 * h}
	}

	// symbol lines, in tile units
	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(2)
	for i := range sc.Symbols {
		for cmd, pts := range sc.LinePath(i) {
			q := toScreen(linelabel.Project(pts[0], sc.Tile.PosMatrix))
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(q.X, q.Y)
			case path.CmdLineTo:
				page.LineTo(q.X, q.Y)
			}
		}
		page.Stroke()
	}

	// glyph quads, in label-plane units
	b, _ := sc.Run(p)
	glCoord := linelabel.GLCoordMatrix(&linelabel.MatrixParams{
		PosMatrix:         sc.Tile.PosMatrix,
		Alignment:         sc.Style.Alignment,
		Camera:            sc.Camera,
		PixelsToTileUnits: sc.Tile.ID.PixelsToTileUnits(1, sc.Camera.Zoom),
	})
	glyphs := &preview.Renderer{
		ToPixel:   preview.ScreenMatrix(&sc.Camera, glCoord),
		GlyphSize: glyphBox,
	}
	page.SetFillColor(color.DeviceGray(0))
	verts := sc.Group(b).DynamicVertices.Vertices()
	for i := 0; i < len(verts); i += 4 {
		v := verts[i]
		if v.IsHidden() {
			continue
		}
		for j, q := range glyphs.Quad(v) {
			if j == 0 {
				page.MoveTo(q.X, q.Y)
			} else {
				page.LineTo(q.X, q.Y)
			}
		}
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

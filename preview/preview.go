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

// Package preview rasterises the glyph quads of a dynamic vertex buffer,
// for inspecting label placement without a GPU.
package preview

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linelabel"
)

// Renderer draws each glyph as a filled square standing on the glyph
// anchor, rotated by the glyph angle.
type Renderer struct {
	// ToPixel maps label-plane coordinates to pixel coordinates.
	// The zero value means no transform.
	ToPixel mgl64.Mat4

	// GlyphSize is the edge length of the square, in label-plane units.
	// Must be > 0.
	GlyphSize float64

	r *vector.Rasterizer
}

// ScreenMatrix returns the matrix which maps label-plane coordinates to
// screen pixels, with the origin in the top left corner.
func ScreenMatrix(cam *linelabel.Camera, glCoord mgl64.Mat4) mgl64.Mat4 {
	m := mgl64.Scale3D(cam.Width/2, -cam.Height/2, 1)
	m = m.Mul4(mgl64.Translate3D(1, -1, 0))
	return m.Mul4(glCoord)
}

// Draw paints the visible glyphs of verts onto dst.
// Hidden glyphs and glyphs entirely outside dst are skipped.
// It returns the number of glyphs drawn.
func (r *Renderer) Draw(dst *image.Alpha, verts []linelabel.DynamicVertex) int {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if r.r == nil {
		r.r = vector.NewRasterizer(w, h)
	}

	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	src := image.Opaque

	drawn := 0
	for i := 0; i+3 < len(verts); i += 4 {
		v := verts[i]
		if v.IsHidden() {
			continue
		}

		q := r.Quad(v)
		if !overlaps(q, clip) {
			continue
		}

		r.r.Reset(w, h)
		r.r.MoveTo(float32(q[0].X-clip.LLx), float32(q[0].Y-clip.LLy))
		for _, c := range q[1:] {
			r.r.LineTo(float32(c.X-clip.LLx), float32(c.Y-clip.LLy))
		}
		r.r.ClosePath()
		r.r.Draw(dst, b, src, image.Point{})
		drawn++
	}
	return drawn
}

// Quad returns the pixel-space corners of the square drawn for v.
func (r *Renderer) Quad(v linelabel.DynamicVertex) [4]vec.Vec2 {
	anchor := vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
	sin, cos := math.Sincos(float64(v.Angle))
	along := vec.Vec2{X: cos, Y: sin}.Mul(r.GlyphSize / 2)
	up := vec.Vec2{X: sin, Y: -cos}.Mul(r.GlyphSize)

	q := [4]vec.Vec2{
		anchor.Sub(along),
		anchor.Add(along),
		anchor.Add(along).Add(up),
		anchor.Sub(along).Add(up),
	}
	if r.ToPixel != (mgl64.Mat4{}) {
		for i, c := range q {
			q[i] = linelabel.Project(c, r.ToPixel)
		}
	}
	return q
}

// overlaps reports whether the bounding box of q intersects clip.
func overlaps(q [4]vec.Vec2, clip rect.Rect) bool {
	xMin, xMax := q[0].X, q[0].X
	yMin, yMax := q[0].Y, q[0].Y
	for _, c := range q[1:] {
		xMin, xMax = min(xMin, c.X), max(xMax, c.X)
		yMin, yMax = min(yMin, c.Y), max(yMax, c.Y)
	}
	return xMax > clip.LLx && xMin < clip.URx && yMax > clip.LLy && yMin < clip.URy
}

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

package linelabel

import (
	"github.com/go-gl/mathgl/mgl64"
)

// glyphDesignSize is the font size in pixels for which glyph offsets are
// stored.
const glyphDesignSize = 24

// placeGlyphsAlongLine writes the vertices for all glyphs of s.  If any glyph
// runs off the line, the whole symbol is hidden.
func (p *Pass) placeGlyphsAlongLine(s *PlacedSymbol, fontSize float64, flip bool, labelPlane mgl64.Mat4, out *DynamicVertices) bool {
	fontScale := fontSize / glyphDesignSize

	w := lineWalk{
		LineOffsetX: s.LineOffsetX * fontSize,
		LineOffsetY: s.LineOffsetY * fontSize,
		Flip:        flip,
		Anchor:      Project(s.Anchor, labelPlane),
		Segment:     s.Segment,
		Line:        s.Line,
		Matrix:      labelPlane,
	}

	p.glyphs = p.glyphs[:0]
	for _, offsetX := range s.GlyphOffsets {
		w.OffsetX = offsetX * fontScale
		g, ok := placeGlyphAlongLine(&w)
		if !ok {
			out.hideGlyphs(len(s.GlyphOffsets))
			return false
		}
		p.glyphs = append(p.glyphs, g)
	}

	for _, g := range p.glyphs {
		out.addGlyph(g.Point, g.Angle, s.PlacementZoom)
	}
	return true
}

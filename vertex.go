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
	"encoding/binary"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DynamicVertex is the per-frame part of a glyph quad vertex.
type DynamicVertex struct {
	X, Y          float32 // anchor of the glyph in the label plane
	Angle         float32 // rotation of the glyph in radians
	PlacementZoom float32 // zoom level from which on the glyph is shown
}

// DynamicVertexSize is the size of one encoded vertex in bytes.
const DynamicVertexSize = 16

// hiddenZoom is a placement zoom above any zoom level the map renders,
// so that glyphs carrying it never fade in.
const hiddenZoom = 25

// DynamicVertices holds the dynamic vertices of all glyph quads of one
// symbol group (text or icons), four per glyph.
// The buffer is rebuilt from scratch every frame.  Its capacity never
// shrinks, so that the steady state does not allocate.
type DynamicVertices struct {
	data []DynamicVertex
}

// Len returns the number of vertices.
func (d *DynamicVertices) Len() int {
	return len(d.data)
}

// At returns vertex i.
func (d *DynamicVertices) At(i int) DynamicVertex {
	return d.data[i]
}

// Vertices returns the vertices.  The slice is valid until the next frame
// pass modifies the buffer.
func (d *DynamicVertices) Vertices() []DynamicVertex {
	return d.data
}

// Clear removes all vertices.
func (d *DynamicVertices) Clear() {
	d.data = d.data[:0]
}

// Bytes appends the vertices to buf in the layout expected by the shaders:
// four little-endian float32 values (x, y, angle, placement zoom) per vertex.
func (d *DynamicVertices) Bytes(buf []byte) []byte {
	for _, v := range d.data {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.X))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Angle))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.PlacementZoom))
	}
	return buf
}

// addGlyph appends the four identical vertices of one glyph quad.
func (d *DynamicVertices) addGlyph(p vec.Vec2, angle, placementZoom float64) {
	v := DynamicVertex{
		X:             float32(p.X),
		Y:             float32(p.Y),
		Angle:         float32(angle),
		PlacementZoom: float32(placementZoom),
	}
	d.data = append(d.data, v, v, v, v)
}

// hideGlyphs appends n glyphs placed at (-Inf, -Inf), which are never shown.
func (d *DynamicVertices) hideGlyphs(n int) {
	off := vec.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for range n {
		d.addGlyph(off, 0, hiddenZoom)
	}
}

// IsHidden reports whether v belongs to a hidden glyph.
func (v DynamicVertex) IsHidden() bool {
	return math.IsInf(float64(v.X), -1) && math.IsInf(float64(v.Y), -1)
}

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
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"
)

// lineWalk describes the placement of a single glyph along a line.
type lineWalk struct {
	OffsetX     float64 // signed glyph offset from the anchor, in label-plane units
	LineOffsetX float64 // label displacement along the line
	LineOffsetY float64 // label displacement perpendicular to the line
	Flip        bool    // walk the line backwards to keep text upright

	Anchor  vec.Vec2 // anchor in the label plane
	Segment int      // line segment containing the anchor
	Line    []Coord
	Matrix  mgl64.Mat4 // label-plane matrix
}

// placedGlyph is the label-plane position and rotation of one glyph.
type placedGlyph struct {
	Point vec.Vec2
	Angle float64
}

// placeGlyphAlongLine finds the point at arc length |offset| from the anchor,
// measured along the projected line, together with the direction of the line
// there.  The boolean result is false if the line ends before the offset is
// reached.
func placeGlyphAlongLine(w *lineWalk) (placedGlyph, bool) {
	offsetX := w.OffsetX + w.LineOffsetX
	if w.Flip {
		offsetX = w.OffsetX - w.LineOffsetX
	}

	// A glyph at the anchor itself walks forward after flipping, so that it
	// lies on the anchor segment even if the anchor is a line vertex.
	dir := -1
	if offsetX > 0 || (offsetX == 0 && !w.Flip) {
		dir = 1
	}

	angle := 0.0
	if w.Flip {
		dir = -dir
		angle = math.Pi
	}
	if dir < 0 {
		angle += math.Pi
	}

	idx := w.Segment
	if dir < 0 {
		idx++
	}

	current := w.Anchor
	prev := w.Anchor
	distanceToPrev := 0.0
	segmentLength := 0.0
	absOffsetX := math.Abs(offsetX)

	for distanceToPrev+segmentLength <= absOffsetX {
		idx += dir
		if idx < 0 || idx >= len(w.Line) {
			return placedGlyph{}, false
		}

		prev = current
		current = Project(w.Line[idx].Vec(), w.Matrix)

		distanceToPrev += segmentLength
		segmentLength = current.Sub(prev).Length()
	}

	// The glyph lies on the segment prev -> current.
	t := (absOffsetX - distanceToPrev) / segmentLength
	d := current.Sub(prev)
	p := prev.Add(d.Mul(t))

	perp := vec.Vec2{X: -d.Y, Y: d.X}
	p = p.Add(perp.Mul(w.LineOffsetY * float64(dir) / d.Length()))

	return placedGlyph{
		Point: p,
		Angle: angle + math.Atan2(d.Y, d.X),
	}, true
}

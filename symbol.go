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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Coord is a point of a tile geometry, in tile units.
type Coord struct {
	X, Y int16
}

// Vec returns c as a vector.
func (c Coord) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// PlacedSymbol is a label or icon laid out along a line by the layout pass.
// It is immutable for the lifetime of the tile data.
type PlacedSymbol struct {
	Anchor vec.Vec2 // anchor point in tile units

	// Line is the line the symbol follows, in tile units.
	// It must have at least two points.
	Line []Coord

	// Segment is the index of the line segment containing the anchor,
	// i.e. the anchor lies between Line[Segment] and Line[Segment+1].
	Segment int

	// Vertical is set for vertically written text.
	Vertical bool

	// GlyphOffsets holds the horizontal offset of each glyph from the
	// anchor, in units of a 24 pixel font.
	GlyphOffsets []float64

	// LineOffsetX and LineOffsetY give the displacement of the label along
	// and perpendicular to the line, in units of the font size.
	LineOffsetX, LineOffsetY float64

	// PlacementZoom is the zoom level from which on the symbol is shown.
	PlacementZoom float64

	// LowerSize and UpperSize are the font sizes at the bottom and top of
	// the covering zoom range, used for feature-dependent sizes.
	LowerSize, UpperSize float64
}

var (
	// ErrShortLine indicates a symbol line with fewer than two points.
	ErrShortLine = errors.New("line has fewer than two points")

	// ErrSegmentRange indicates an anchor segment outside the line.
	ErrSegmentRange = errors.New("anchor segment out of range")
)

// Validate checks the preconditions the layout pass guarantees for s.
// Reprojection itself never calls Validate; a symbol failing it is placed
// off-screen or not at all.
func (s *PlacedSymbol) Validate() error {
	if len(s.Line) < 2 {
		return fmt.Errorf("%d points: %w", len(s.Line), ErrShortLine)
	}
	if s.Segment < 0 || s.Segment+1 >= len(s.Line) {
		return fmt.Errorf("segment %d of %d: %w", s.Segment, len(s.Line)-1, ErrSegmentRange)
	}
	return nil
}

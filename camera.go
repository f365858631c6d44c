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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Camera is the part of the map transform state needed to re-project labels.
// A Camera is read-only for the duration of a frame.
type Camera struct {
	// Width and Height give the viewport size in screen pixels.
	// Both must be > 0.
	Width, Height float64

	// Zoom is the current (fractional) zoom level.
	Zoom float64

	// Angle is the map rotation in radians.
	Angle float64

	// Pitch is the camera tilt in radians.  It only enters the computation
	// through the placement matrices and CameraToCenterDistance.
	Pitch float64

	// CameraToCenterDistance is the distance from the camera to the centre
	// of the view, in the units of the clip-space w component.
	// Must be > 0.
	CameraToCenterDistance float64
}

// clipMargin is the extra space around the viewport, in screen pixels, inside
// which labels are still placed.
const clipMargin = 256

// ClippingBuffer holds the half-extent, in normalized device coordinates, of
// the padded viewport used for culling.  Index 0 is horizontal, index 1
// vertical.
type ClippingBuffer [2]float64

// ClippingBuffer returns the padded viewport for the camera.
// The horizontal margin is twice the vertical one.
func (c *Camera) ClippingBuffer() ClippingBuffer {
	return ClippingBuffer{
		1 + clipMargin/c.Width*2,
		1 + clipMargin/c.Height,
	}
}

// Rect returns the padded viewport as a rectangle in normalized device
// coordinates.
func (b ClippingBuffer) Rect() rect.Rect {
	return rect.Rect{LLx: -b[0], LLy: -b[1], URx: b[0], URy: b[1]}
}

// Contains reports whether p lies inside the padded viewport.
// Points on the boundary are inside.
func (b ClippingBuffer) Contains(p vec.Vec2) bool {
	r := b.Rect()
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

const (
	tileExtent = 8192 // tile coordinate units per tile edge
	tileSize   = 512  // screen pixels per tile edge at the tile's own zoom
)

// TileID identifies a tile in the tile pyramid.
type TileID struct {
	Z    uint8
	X, Y uint32
}

// PixelsToTileUnits converts a length in screen pixels at the given zoom level
// into tile coordinate units of this tile.
func (id TileID) PixelsToTileUnits(pixels, zoom float64) float64 {
	return pixels * (tileExtent / (tileSize * math.Exp2(zoom-float64(id.Z))))
}

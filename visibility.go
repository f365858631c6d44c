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

	"seehuhn.de/go/geom/vec"
)

// FrameHistory tracks which zoom levels have recently become visible, for
// cross-fading labels between zoom levels.
type FrameHistory interface {
	IsVisible(zoom float64) bool
}

// FrameHistoryFunc adapts an ordinary function to the [FrameHistory]
// interface.
type FrameHistoryFunc func(zoom float64) bool

// IsVisible calls f(zoom).
func (f FrameHistoryFunc) IsVisible(zoom float64) bool {
	return f(zoom)
}

// isVisible decides whether a symbol with the given clip-space anchor is
// worth placing.  The anchor must lie in the padded viewport and its placement
// zoom must be visible according to the frame history.  A nil history
// accepts all zoom levels.
func isVisible(anchorPos mgl64.Vec4, placementZoom float64, clip ClippingBuffer, history FrameHistory) bool {
	p := vec.Vec2{X: anchorPos[0] / anchorPos[3], Y: anchorPos[1] / anchorPos[3]}
	if !clip.Contains(p) {
		return false
	}
	return history == nil || history.IsVisible(placementZoom)
}

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
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Style holds the layer properties which affect reprojection.
type Style struct {
	Alignment

	// KeepUpright flips labels whose line runs leftwards (or downwards, for
	// vertical text) on screen, so that text is never upside down.
	KeepUpright bool
}

// Tile holds the per-frame data of the tile a bucket belongs to.
type Tile struct {
	ID TileID

	// PosMatrix maps tile coordinates to clip space for the current frame.
	PosMatrix mgl64.Mat4
}

// SymbolGroup holds the text or icon symbols of a bucket together with
// their dynamic vertex buffer.
type SymbolGroup struct {
	PlacedSymbols   []PlacedSymbol
	DynamicVertices DynamicVertices
}

// Bucket holds the line-placed symbols of one layer in one tile.
type Bucket struct {
	Text SymbolGroup
	Icon SymbolGroup
}

// Stats summarizes one call of [Pass.ReprojectLineLabels].
type Stats struct {
	Symbols int // symbols processed
	Hidden  int // symbols culled or running off their line
	Glyphs  int // glyphs written, including hidden ones
}

// Pass re-projects line labels for one frame.
// A Pass may be reused across frames and buckets, but must not be used
// concurrently.
type Pass struct {
	// Camera is the transform state of the current frame.
	Camera Camera

	// History decides which placement zoom levels are currently visible.
	// If History is nil, all zoom levels are visible.
	History FrameHistory

	// DisableCulling places all symbols, including those outside the
	// padded viewport or at invisible zoom levels.
	DisableCulling bool

	glyphs []placedGlyph
}

// ReprojectLineLabels rebuilds the dynamic vertex buffer of the text
// (isText) or icon symbols of b for the current camera.  The buffer is
// cleared first and afterwards contains four vertices for every glyph of
// every symbol, in order.
func (p *Pass) ReprojectLineLabels(b *Bucket, tile *Tile, isText bool, style *Style, sizes SizeBinder) Stats {
	cam := &p.Camera
	partialSize := sizes.EvaluateForZoom(cam.Zoom)
	clip := cam.ClippingBuffer()

	labelPlane := LabelPlaneMatrix(&MatrixParams{
		PosMatrix:         tile.PosMatrix,
		Alignment:         style.Alignment,
		Camera:            *cam,
		PixelsToTileUnits: tile.ID.PixelsToTileUnits(1, cam.Zoom),
	})

	group := &b.Icon
	if isText {
		group = &b.Text
	}
	out := &group.DynamicVertices
	out.Clear()

	var stats Stats
	for i := range group.PlacedSymbols {
		s := &group.PlacedSymbols[i]
		stats.Symbols++
		stats.Glyphs += len(s.GlyphOffsets)

		anchorPos := tile.PosMatrix.Mul4x1(mgl64.Vec4{s.Anchor.X, s.Anchor.Y, 0, 1})

		// Don't bother placing labels which can't be seen.
		visible := p.DisableCulling || isVisible(anchorPos, s.PlacementZoom, clip, p.History)
		if !visible || s.Segment < 0 || s.Segment+1 >= len(s.Line) {
			out.hideGlyphs(len(s.GlyphOffsets))
			stats.Hidden++
			continue
		}

		flip := false
		if style.KeepUpright {
			from := Project(s.Line[s.Segment].Vec(), tile.PosMatrix)
			to := Project(s.Line[s.Segment+1].Vec(), tile.PosMatrix)
			if s.Vertical {
				flip = to.Y > from.Y
			} else {
				flip = to.X < from.X
			}
		}

		cameraToAnchorDistance := anchorPos[3]
		perspectiveRatio := 1 + 0.5*(cameraToAnchorDistance/cam.CameraToCenterDistance-1)

		fontSize := SizeForFeature(partialSize, s)
		if style.PitchWithMap {
			fontSize *= perspectiveRatio
		} else {
			fontSize /= perspectiveRatio
		}

		if !p.placeGlyphsAlongLine(s, fontSize, flip, labelPlane, out) {
			stats.Hidden++
		}
	}

	Logger().Debug("reprojected line labels",
		slog.Bool("text", isText),
		slog.Int("symbols", stats.Symbols),
		slog.Int("hidden", stats.Hidden),
		slog.Int("glyphs", stats.Glyphs))

	return stats
}

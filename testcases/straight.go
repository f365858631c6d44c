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

package testcases

import "seehuhn.de/go/linelabel"

var (
	flatCamera = Camera(512, 512, 14, 0, 0)
	flatTile   = tile(flatCamera, pt(4096, 4096))
	textSize   = &linelabel.ConstantSize{Size: 24}
)

var straightCases = []Scenario{
	{
		Name:   "single_glyph",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				GlyphOffsets:  []float64{0},
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "word",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 4096, 4096, 6144, 4096),
				Segment:       1,
				GlyphOffsets:  word(7, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "diagonal",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 2048, 6144, 6144),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "line_offset",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				GlyphOffsets:  word(4, 14),
				LineOffsetX:   0.5,
				LineOffsetY:   1,
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "icons",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  &linelabel.ConstantSize{Size: 1},
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(3000, 5000),
				Line:          line(1000, 5000, 7000, 5000),
				GlyphOffsets:  []float64{0},
				PlacementZoom: 12,
			},
			{
				Anchor:        pt(5000, 3000),
				Line:          line(5000, 1000, 5000, 7000),
				GlyphOffsets:  []float64{0},
				PlacementZoom: 12,
			},
		},
	},
}

var curveCases = []Scenario{
	{
		Name:   "zigzag",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(1024, 4096, 2560, 3584, 4096, 4096, 5632, 3584, 7168, 4096),
				Segment:       2,
				GlyphOffsets:  word(12, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "corner",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(3900, 4096),
				Line:          line(2048, 4096, 4096, 4096, 4096, 6144),
				GlyphOffsets:  word(8, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "duplicate_vertex",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 4096, 4096, 4096, 4096, 6144, 4096),
				Segment:       1,
				GlyphOffsets:  word(6, 14),
				PlacementZoom: 10,
			},
		},
	},
}

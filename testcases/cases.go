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

import (
	"math"

	"seehuhn.de/go/linelabel"
)

var (
	upright = linelabel.Style{KeepUpright: true}

	pitchedCamera = Camera(800, 600, 14.5, math.Pi/6, math.Pi/4)
	pitchedTile   = tile(pitchedCamera, pt(4096, 4096))
)

var flipCases = []Scenario{
	{
		Name:   "reversed_line",
		Camera: flatCamera,
		Tile:   flatTile,
		Style:  upright,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(6144, 4096, 2048, 4096),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "reversed_offset",
		Camera: flatCamera,
		Tile:   flatTile,
		Style:  upright,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(6144, 4096, 2048, 4096),
				GlyphOffsets:  word(5, 14),
				LineOffsetX:   0.5,
				LineOffsetY:   -1,
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "vertical_text",
		Camera: flatCamera,
		Tile:   flatTile,
		Style:  upright,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(4096, 6144, 4096, 2048),
				Vertical:      true,
				GlyphOffsets:  word(4, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "rotated_view",
		Camera: Camera(512, 512, 14, math.Pi, 0),
		Tile:   tile(Camera(512, 512, 14, math.Pi, 0), pt(4096, 4096)),
		Style:  upright,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
			},
		},
	},
}

var offlineCases = []Scenario{
	{
		Name:   "too_long",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(3968, 4096, 4224, 4096),
				GlyphOffsets:  []float64{0, 4, 40},
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "mixed",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(3968, 4096, 4224, 4096),
				GlyphOffsets:  word(3, 20),
				PlacementZoom: 10,
			},
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				GlyphOffsets:  word(3, 20),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "bad_segment",
		Camera: flatCamera,
		Tile:   flatTile,
		Style:  upright,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				Segment:       1,
				GlyphOffsets:  word(2, 14),
				PlacementZoom: 10,
			},
		},
	},
}

var pitchCases = []Scenario{
	{
		Name:   "viewport_aligned",
		Camera: pitchedCamera,
		Tile:   pitchedTile,
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 3500),
				Line:          line(2048, 3500, 6144, 3500),
				GlyphOffsets:  word(6, 14),
				PlacementZoom: 10,
			},
			{
				Anchor:        pt(4096, 4700),
				Line:          line(2048, 4700, 6144, 4700),
				GlyphOffsets:  word(6, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "map_aligned",
		Camera: pitchedCamera,
		Tile:   pitchedTile,
		Style: linelabel.Style{
			Alignment: linelabel.Alignment{PitchWithMap: true, RotateWithMap: true},
		},
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 4096, 4096, 6144, 3072),
				GlyphOffsets:  word(6, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "map_pitched_screen_rotated",
		Camera: pitchedCamera,
		Tile:   pitchedTile,
		Style: linelabel.Style{
			Alignment:   linelabel.Alignment{PitchWithMap: true},
			KeepUpright: true,
		},
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(6144, 4096, 2048, 4096),
				GlyphOffsets:  word(6, 14),
				PlacementZoom: 10,
			},
		},
	},
}

var sizeCases = []Scenario{
	{
		Name:   "zoom_stops",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes: &linelabel.ConstantSize{
			Stops: []linelabel.ZoomStop{{Zoom: 10, Value: 12}, {Zoom: 16, Value: 36}},
		},
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
			},
		},
	},
	{
		Name:   "source",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  linelabel.SourceSize{},
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 3000),
				Line:          line(2048, 3000, 6144, 3000),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
				LowerSize:     12,
			},
			{
				Anchor:        pt(4096, 5000),
				Line:          line(2048, 5000, 6144, 5000),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
				LowerSize:     30,
			},
		},
	},
	{
		Name:   "composite",
		Camera: flatCamera,
		Tile:   flatTile,
		Sizes:  &linelabel.CompositeSize{MinZoom: 12, MaxZoom: 16},
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(4096, 4096),
				Line:          line(2048, 4096, 6144, 4096),
				GlyphOffsets:  word(5, 14),
				PlacementZoom: 10,
				LowerSize:     10,
				UpperSize:     30,
			},
		},
	},
}

var cullCases = []Scenario{
	{
		Name:   "outside_viewport",
		Camera: flatCamera,
		Tile:   tile(flatCamera, pt(0, 0)),
		Sizes:  textSize,
		IsText: true,
		Symbols: []linelabel.PlacedSymbol{
			{
				Anchor:        pt(1000, 1000),
				Line:          line(0, 1000, 2000, 1000),
				GlyphOffsets:  word(3, 14),
				PlacementZoom: 10,
			},
			{
				Anchor:        pt(7000, 7000),
				Line:          line(6000, 7000, 8000, 7000),
				GlyphOffsets:  word(3, 14),
				PlacementZoom: 10,
			},
		},
	},
}

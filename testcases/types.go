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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linelabel"
)

// Scenario defines a single reprojection test: one bucket, seen by one
// camera for one frame.
type Scenario struct {
	Name    string // lowercase a-z and _ only
	Camera  linelabel.Camera
	Tile    linelabel.Tile
	Style   linelabel.Style
	Sizes   linelabel.SizeBinder
	IsText  bool
	Symbols []linelabel.PlacedSymbol
}

// Bucket returns a new bucket holding the scenario's symbols.
// The symbol data is shared with the scenario and must not be modified.
func (s *Scenario) Bucket() *linelabel.Bucket {
	b := &linelabel.Bucket{}
	if s.IsText {
		b.Text.PlacedSymbols = s.Symbols
	} else {
		b.Icon.PlacedSymbols = s.Symbols
	}
	return b
}

// Group returns the symbol group of b used by the scenario.
func (s *Scenario) Group(b *linelabel.Bucket) *linelabel.SymbolGroup {
	if s.IsText {
		return &b.Text
	}
	return &b.Icon
}

// NumGlyphs returns the total number of glyphs of all symbols.
func (s *Scenario) NumGlyphs() int {
	n := 0
	for i := range s.Symbols {
		n += len(s.Symbols[i].GlyphOffsets)
	}
	return n
}

// Run reprojects the scenario's bucket once and returns the bucket.
func (s *Scenario) Run(p *linelabel.Pass) (*linelabel.Bucket, linelabel.Stats) {
	p.Camera = s.Camera
	b := s.Bucket()
	stats := p.ReprojectLineLabels(b, &s.Tile, s.IsText, &s.Style, s.Sizes)
	return b, stats
}

// LinePath returns the line of symbol i as a path in tile units.
func (s *Scenario) LinePath(i int) path.Path {
	line := s.Symbols[i].Line
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for j, c := range line {
			cmd := path.CmdLineTo
			if j == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{c.Vec()}) {
				return
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// line is a helper to create a symbol line from coordinate pairs.
func line(xy ...int16) []linelabel.Coord {
	res := make([]linelabel.Coord, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, linelabel.Coord{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// word returns the glyph offsets of n glyphs of width w, centred on the
// anchor.
func word(n int, w float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = (float64(i) - float64(n-1)/2) * w
	}
	return res
}

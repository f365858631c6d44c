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
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"
)

func checkHidden(t *testing.T, v DynamicVertex) {
	t.Helper()
	if !math.IsInf(float64(v.X), -1) || !math.IsInf(float64(v.Y), -1) {
		t.Errorf("hidden vertex at (%g, %g)", v.X, v.Y)
	}
	if v.Angle != 0 {
		t.Errorf("hidden vertex angle %g", v.Angle)
	}
	if v.PlacementZoom != 25 {
		t.Errorf("hidden vertex placement zoom %g", v.PlacementZoom)
	}
	if !v.IsHidden() {
		t.Error("IsHidden returned false")
	}
}

func TestHideGlyphs(t *testing.T) {
	var d DynamicVertices
	d.hideGlyphs(3)
	if d.Len() != 12 {
		t.Fatalf("got %d vertices, want 12", d.Len())
	}
	for _, v := range d.Vertices() {
		checkHidden(t, v)
	}

	d.Clear()
	if d.Len() != 0 {
		t.Errorf("got %d vertices after Clear", d.Len())
	}
}

func TestAddGlyph(t *testing.T) {
	var d DynamicVertices
	d.addGlyph(vec.Vec2{X: 1.5, Y: -2}, 0.25, 13)
	if d.Len() != 4 {
		t.Fatalf("got %d vertices, want 4", d.Len())
	}
	want := DynamicVertex{X: 1.5, Y: -2, Angle: 0.25, PlacementZoom: 13}
	for i := range d.Len() {
		if v := d.At(i); v != want {
			t.Errorf("vertex %d: got %v, want %v", i, v, want)
		}
	}
	if d.At(0).IsHidden() {
		t.Error("placed glyph reported as hidden")
	}
}

func TestVertexBytes(t *testing.T) {
	var d DynamicVertices
	d.addGlyph(vec.Vec2{X: 1, Y: 2}, 3, 4)
	d.hideGlyphs(1)

	buf := d.Bytes(nil)
	if len(buf) != 8*DynamicVertexSize {
		t.Fatalf("got %d bytes, want %d", len(buf), 8*DynamicVertexSize)
	}
	get := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	for i, want := range []float32{1, 2, 3, 4} {
		if got := get(i); got != want {
			t.Errorf("float %d: got %g, want %g", i, got, want)
		}
	}
	if got := get(16); !math.IsInf(float64(got), -1) {
		t.Errorf("hidden x: got %g", got)
	}
	if got := get(19); got != 25 {
		t.Errorf("hidden zoom: got %g", got)
	}
}

func TestPlaceGlyphsAllOrNothing(t *testing.T) {
	s := &PlacedSymbol{
		Anchor:        vec.Vec2{X: 50, Y: 0},
		Line:          []Coord{{0, 0}, {100, 0}},
		GlyphOffsets:  []float64{0, 20, 80},
		PlacementZoom: 7,
	}
	p := &Pass{}

	// glyphs 0 and 1 fit on the line, glyph 2 does not
	var d DynamicVertices
	if p.placeGlyphsAlongLine(s, 24, false, mgl64.Ident4(), &d) {
		t.Error("placement succeeded")
	}
	if d.Len() != 12 {
		t.Fatalf("got %d vertices, want 12", d.Len())
	}
	for _, v := range d.Vertices() {
		checkHidden(t, v)
	}

	// at half size all glyphs fit
	d.Clear()
	if !p.placeGlyphsAlongLine(s, 12, false, mgl64.Ident4(), &d) {
		t.Fatal("placement failed")
	}
	if d.Len() != 12 {
		t.Fatalf("got %d vertices, want 12", d.Len())
	}
	for i, x := range []float32{50, 60, 90} {
		v := d.At(4 * i)
		if v.X != x || v.Y != 0 || v.PlacementZoom != 7 {
			t.Errorf("glyph %d: got %v, want x=%g", i, v, x)
		}
	}
}

func TestPlaceGlyphsLineOffsetScale(t *testing.T) {
	s := &PlacedSymbol{
		Anchor:       vec.Vec2{X: 50, Y: 0},
		Line:         []Coord{{0, 0}, {100, 0}},
		GlyphOffsets: []float64{0},
		LineOffsetY:  0.5,
	}
	p := &Pass{}
	var d DynamicVertices
	if !p.placeGlyphsAlongLine(s, 20, false, mgl64.Ident4(), &d) {
		t.Fatal("placement failed")
	}
	// the line offset is given in units of the font size
	if v := d.At(0); v.X != 50 || v.Y != 10 {
		t.Errorf("got (%g, %g), want (50, 10)", v.X, v.Y)
	}
}

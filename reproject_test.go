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

package linelabel_test

import (
	"bytes"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linelabel"
	"seehuhn.de/go/linelabel/testcases"
)

func scenario(t *testing.T, category, name string) testcases.Scenario {
	t.Helper()
	for _, sc := range testcases.All[category] {
		if sc.Name == name {
			return sc
		}
	}
	t.Fatalf("scenario %s_%s not found", category, name)
	return testcases.Scenario{}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if 2*math.Pi-a < 1e-6 {
		a = 0
	}
	return a
}

// TestVertexCount checks that every scenario produces four vertices per
// glyph, whether or not the glyphs could be placed.
func TestVertexCount(t *testing.T) {
	p := &linelabel.Pass{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				for i := range sc.Symbols {
					if err := sc.Symbols[i].Validate(); err != nil && category != "offline" {
						t.Errorf("symbol %d: %v", i, err)
					}
				}

				b, stats := sc.Run(p)
				verts := sc.Group(b).DynamicVertices.Vertices()
				if want := 4 * sc.NumGlyphs(); len(verts) != want {
					t.Fatalf("got %d vertices, want %d", len(verts), want)
				}
				if stats.Glyphs != sc.NumGlyphs() || stats.Symbols != len(sc.Symbols) {
					t.Errorf("wrong stats %+v", stats)
				}

				for i := 0; i < len(verts); i += 4 {
					for j := 1; j < 4; j++ {
						if verts[i+j] != verts[i] {
							t.Errorf("glyph %d: vertex %d differs", i/4, j)
						}
					}
					v := verts[i]
					if v.IsHidden() && (v.Angle != 0 || v.PlacementZoom != 25) {
						t.Errorf("glyph %d: bad hidden vertex %v", i/4, v)
					}
				}

				// the other group is left alone
				other := &b.Icon
				if !sc.IsText {
					other = &b.Text
				}
				if other.DynamicVertices.Len() != 0 {
					t.Errorf("other group has %d vertices", other.DynamicVertices.Len())
				}
			})
		}
	}
}

// TestDeterministic checks that repeated passes give identical output,
// including when the buffer is reused.
func TestDeterministic(t *testing.T) {
	p := &linelabel.Pass{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			b1, _ := sc.Run(p)
			first := slices.Clone(sc.Group(b1).DynamicVertices.Bytes(nil))

			b2 := sc.Bucket()
			for range 3 {
				p.ReprojectLineLabels(b2, &sc.Tile, sc.IsText, &sc.Style, sc.Sizes)
			}
			second := sc.Group(b2).DynamicVertices.Bytes(nil)

			if !bytes.Equal(first, second) {
				t.Errorf("%s_%s: output differs between passes", category, sc.Name)
			}
		}
	}
}

func TestSingleGlyph(t *testing.T) {
	sc := scenario(t, "straight", "single_glyph")
	b, stats := sc.Run(&linelabel.Pass{})
	if stats.Hidden != 0 {
		t.Errorf("%d symbols hidden", stats.Hidden)
	}

	verts := b.Text.DynamicVertices.Vertices()
	if len(verts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(verts))
	}
	for i, v := range verts {
		// the anchor is in the centre of the 512×512 viewport
		if math.Abs(float64(v.X)-256) > 1e-3 || math.Abs(float64(v.Y)-256) > 1e-3 {
			t.Errorf("vertex %d: got (%g, %g), want (256, 256)", i, v.X, v.Y)
		}
		if math.Abs(float64(v.Angle)) > 1e-6 {
			t.Errorf("vertex %d: angle %g, want 0", i, v.Angle)
		}
		if v.PlacementZoom != 10 {
			t.Errorf("vertex %d: placement zoom %g, want 10", i, v.PlacementZoom)
		}
	}
}

func TestKeepUpright(t *testing.T) {
	sc := scenario(t, "flip", "reversed_line")
	p := &linelabel.Pass{}

	b, _ := sc.Run(p)
	flipped := b.Text.DynamicVertices.Vertices()

	sc.Style.KeepUpright = false
	b, _ = sc.Run(p)
	plain := b.Text.DynamicVertices.Vertices()

	n := len(sc.Symbols[0].GlyphOffsets)
	for i := range n {
		f, q := flipped[4*i], plain[4*i]
		if a := normAngle(float64(f.Angle)); math.Abs(a) > 1e-6 {
			t.Errorf("glyph %d: flipped angle %g, want 0", i, a)
		}
		if a := normAngle(float64(q.Angle)); math.Abs(a-math.Pi) > 1e-6 {
			t.Errorf("glyph %d: angle %g, want π", i, a)
		}

		// glyph offsets grow to the right on screen once flipped
		if i > 0 {
			if flipped[4*i].X <= flipped[4*i-4].X {
				t.Errorf("glyph %d: flipped x not increasing", i)
			}
			if plain[4*i].X >= plain[4*i-4].X {
				t.Errorf("glyph %d: unflipped x not decreasing", i)
			}
		}

		// the glyph in the middle sits on the anchor in both cases
		if i == n/2 && (math.Abs(float64(f.X-q.X)) > 1e-3 || math.Abs(float64(f.Y-q.Y)) > 1e-3) {
			t.Errorf("middle glyph: %v != %v", f, q)
		}
	}
}

func TestVerticalText(t *testing.T) {
	sc := scenario(t, "flip", "vertical_text")
	b, _ := sc.Run(&linelabel.Pass{})
	verts := b.Text.DynamicVertices.Vertices()

	// The line runs up the screen, so vertical text is flipped and the
	// glyphs follow each other downwards.
	for i := 4; i < len(verts); i += 4 {
		if verts[i].Y <= verts[i-4].Y {
			t.Errorf("glyph %d: y not increasing", i/4)
		}
	}
	for i := 0; i < len(verts); i += 4 {
		if a := normAngle(float64(verts[i].Angle)); math.Abs(a-math.Pi/2) > 1e-6 {
			t.Errorf("glyph %d: angle %g, want π/2", i/4, a)
		}
	}
}

func TestOffLineHidesSymbol(t *testing.T) {
	sc := scenario(t, "offline", "too_long")
	b, stats := sc.Run(&linelabel.Pass{})
	if stats.Hidden != 1 {
		t.Errorf("got %d hidden symbols, want 1", stats.Hidden)
	}
	verts := b.Text.DynamicVertices.Vertices()
	if len(verts) != 12 {
		t.Fatalf("got %d vertices, want 12", len(verts))
	}
	for i, v := range verts {
		if !v.IsHidden() {
			t.Errorf("vertex %d is not hidden", i)
		}
	}

	sc = scenario(t, "offline", "mixed")
	b, stats = sc.Run(&linelabel.Pass{})
	if stats.Hidden != 1 {
		t.Errorf("mixed: got %d hidden symbols, want 1", stats.Hidden)
	}
	verts = b.Text.DynamicVertices.Vertices()
	for i, v := range verts {
		if hidden := i < 12; v.IsHidden() != hidden {
			t.Errorf("mixed: vertex %d hidden=%t", i, v.IsHidden())
		}
	}
}

func TestBadSegment(t *testing.T) {
	sc := scenario(t, "offline", "bad_segment")
	b, stats := sc.Run(&linelabel.Pass{})
	if stats.Hidden != 1 {
		t.Errorf("got %d hidden symbols, want 1", stats.Hidden)
	}
	for i, v := range b.Text.DynamicVertices.Vertices() {
		if !v.IsHidden() {
			t.Errorf("vertex %d is not hidden", i)
		}
	}
}

func TestCulling(t *testing.T) {
	sc := scenario(t, "cull", "outside_viewport")

	_, stats := sc.Run(&linelabel.Pass{})
	if stats.Hidden != 1 {
		t.Errorf("got %d hidden symbols, want 1", stats.Hidden)
	}

	_, stats = sc.Run(&linelabel.Pass{DisableCulling: true})
	if stats.Hidden != 0 {
		t.Errorf("culling disabled: got %d hidden symbols, want 0", stats.Hidden)
	}

	hideAll := linelabel.FrameHistoryFunc(func(float64) bool { return false })
	_, stats = sc.Run(&linelabel.Pass{History: hideAll})
	if stats.Hidden != 2 {
		t.Errorf("invisible zoom: got %d hidden symbols, want 2", stats.Hidden)
	}
	_, stats = sc.Run(&linelabel.Pass{History: hideAll, DisableCulling: true})
	if stats.Hidden != 0 {
		t.Errorf("invisible zoom, culling disabled: got %d hidden symbols, want 0", stats.Hidden)
	}
}

func TestSizeScaling(t *testing.T) {
	type testCase struct {
		name string
		size []float64 // font size per symbol
	}
	cases := []testCase{
		{"zoom_stops", []float64{28}},
		{"source", []float64{12, 30}},
		{"composite", []float64{20}},
	}
	p := &linelabel.Pass{}
	for _, tc := range cases {
		sc := scenario(t, "size", tc.name)
		b, _ := sc.Run(p)
		verts := b.Text.DynamicVertices.Vertices()
		base := 0
		for k, s := range sc.Symbols {
			// glyphs are 14 units apart at the 24px design size
			want := 14 * tc.size[k] / 24
			for i := 1; i < len(s.GlyphOffsets); i++ {
				d := float64(verts[4*(base+i)].X - verts[4*(base+i-1)].X)
				if math.Abs(d-want) > 1e-3 {
					t.Errorf("%s symbol %d glyph %d: spacing %g, want %g", tc.name, k, i, d, want)
				}
			}
			base += len(s.GlyphOffsets)
		}
	}
}

func TestPerspectiveRatio(t *testing.T) {
	cam := testcases.Camera(800, 600, 14, 0, math.Pi/3)
	id := linelabel.TileID{Z: 14}
	tile := &linelabel.Tile{ID: id, PosMatrix: testcases.PosMatrix(cam, id, pt(4096, 4096))}

	// far from and close to the camera
	for _, y := range []float64{3000, 4096, 5000} {
		s := linelabel.PlacedSymbol{
			Anchor:        pt(4096, y),
			Line:          []linelabel.Coord{{X: 0, Y: int16(y)}, {X: 8000, Y: int16(y)}},
			GlyphOffsets:  []float64{0, 24},
			PlacementZoom: 10,
		}
		anchorPos := tile.PosMatrix.Mul4x1(mgl64.Vec4{s.Anchor.X, s.Anchor.Y, 0, 1})
		ratio := 1 + 0.5*(anchorPos[3]/cam.CameraToCenterDistance-1)

		for _, pitched := range []bool{false, true} {
			b := &linelabel.Bucket{Text: linelabel.SymbolGroup{PlacedSymbols: []linelabel.PlacedSymbol{s}}}
			style := &linelabel.Style{Alignment: linelabel.Alignment{PitchWithMap: pitched, RotateWithMap: true}}
			p := &linelabel.Pass{Camera: cam, DisableCulling: true}
			p.ReprojectLineLabels(b, tile, true, style, &linelabel.ConstantSize{Size: 24})

			verts := b.Text.DynamicVertices.Vertices()
			d := math.Hypot(float64(verts[4].X-verts[0].X), float64(verts[4].Y-verts[0].Y))
			if pitched {
				// map pixels: the glyph advance grows with the distance
				if want := 24 * ratio; math.Abs(d-want) > 1e-3*want {
					t.Errorf("y=%g pitched: advance %g, want %g", y, d, want)
				}
			} else {
				// screen pixels: the advance shrinks with the distance
				if want := 24 / ratio; math.Abs(d-want) > 1e-3*want {
					t.Errorf("y=%g: advance %g, want %g", y, d, want)
				}
			}
		}
	}
}

func TestDebugLog(t *testing.T) {
	buf := &bytes.Buffer{}
	linelabel.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer linelabel.SetLogger(nil)

	sc := scenario(t, "offline", "mixed")
	sc.Run(&linelabel.Pass{})

	out := buf.String()
	for _, want := range []string{"reprojected line labels", "symbols=2", "hidden=1", "glyphs=6", "text=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q lacks %q", out, want)
		}
	}
}

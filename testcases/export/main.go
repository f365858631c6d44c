// Command export writes the scenarios and their reprojected vertex buffers
// to JSON, for comparing the output between versions.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/linelabel"
	"seehuhn.de/go/linelabel/testcases"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	p := &linelabel.Pass{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenarios = append(out.Scenarios, toJSON(p, category, sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenarios.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name     string          `json:"name"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Zoom     float64         `json:"zoom"`
	Angle    float64         `json:"angle"`
	Pitch    float64         `json:"pitch"`
	Text     bool            `json:"text"`
	Pitched  bool            `json:"pitch_with_map,omitempty"`
	Rotated  bool            `json:"rotate_with_map,omitempty"`
	Upright  bool            `json:"keep_upright,omitempty"`
	Symbols  []jsonSymbol    `json:"symbols"`
	Vertices []jsonVertex    `json:"vertices"`
	Stats    linelabel.Stats `json:"stats"`
}

type jsonSymbol struct {
	Anchor  [2]float64 `json:"anchor"`
	Line    [][2]int16 `json:"line"`
	Segment int        `json:"segment"`
	Offsets []float64  `json:"glyph_offsets"`
}

// jsonVertex holds one glyph quad.  Hidden glyphs have a nil point,
// since JSON cannot represent infinities.
type jsonVertex struct {
	Point *[2]float32 `json:"point"`
	Angle float32     `json:"angle"`
	Zoom  float32     `json:"placement_zoom"`
}

func toJSON(p *linelabel.Pass, category string, sc testcases.Scenario) jsonScenario {
	js := jsonScenario{
		Name:    category + "_" + sc.Name,
		Width:   sc.Camera.Width,
		Height:  sc.Camera.Height,
		Zoom:    sc.Camera.Zoom,
		Angle:   sc.Camera.Angle,
		Pitch:   sc.Camera.Pitch,
		Text:    sc.IsText,
		Pitched: sc.Style.PitchWithMap,
		Rotated: sc.Style.RotateWithMap,
		Upright: sc.Style.KeepUpright,
	}

	for _, s := range sc.Symbols {
		sym := jsonSymbol{
			Anchor:  [2]float64{s.Anchor.X, s.Anchor.Y},
			Segment: s.Segment,
			Offsets: s.GlyphOffsets,
		}
		for _, c := range s.Line {
			sym.Line = append(sym.Line, [2]int16{c.X, c.Y})
		}
		js.Symbols = append(js.Symbols, sym)
	}

	b, stats := sc.Run(p)
	js.Stats = stats
	verts := sc.Group(b).DynamicVertices.Vertices()
	for i := 0; i < len(verts); i += 4 {
		v := verts[i]
		jv := jsonVertex{Angle: v.Angle, Zoom: v.PlacementZoom}
		if !v.IsHidden() {
			jv.Point = &[2]float32{v.X, v.Y}
		}
		js.Vertices = append(js.Vertices, jv)
	}
	return js
}

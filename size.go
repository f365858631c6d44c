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
	"slices"
)

// ZoomEvaluatedSize is a symbol size function evaluated for the current zoom.
// Only the feature-dependent part is left for SizeForFeature.
type ZoomEvaluatedSize struct {
	// IsFeatureConstant is set if all symbols share the same size.
	// In this case the size is Size.
	IsFeatureConstant bool

	// IsZoomConstant is set if the size of a feature does not depend on
	// the zoom level.  Feature-dependent sizes are then given by the lower
	// size bound of each symbol.
	IsZoomConstant bool

	Size float64

	// SizeT is the interpolation fraction between the lower and upper size
	// bound of a symbol.  It is used if neither flag is set.
	SizeT float64
}

// SizeForFeature returns the font size of s for the current frame.
func SizeForFeature(size ZoomEvaluatedSize, s *PlacedSymbol) float64 {
	switch {
	case size.IsFeatureConstant:
		return size.Size
	case size.IsZoomConstant:
		return s.LowerSize
	default:
		return s.LowerSize + size.SizeT*(s.UpperSize-s.LowerSize)
	}
}

// SizeBinder evaluates the zoom-dependent part of a layer's size property.
type SizeBinder interface {
	EvaluateForZoom(zoom float64) ZoomEvaluatedSize
}

// ZoomStop is one stop of a zoom function.
type ZoomStop struct {
	Zoom, Value float64
}

// ConstantSize is a size shared by all features of a layer.
// If Stops is non-empty, the size is a function of zoom, otherwise it is Size.
type ConstantSize struct {
	Size float64

	// Stops must be sorted by zoom.
	Stops []ZoomStop

	// Base is the exponential interpolation base between stops.
	// Values <= 0 are treated as 1, which gives linear interpolation.
	Base float64
}

// EvaluateForZoom implements the [SizeBinder] interface.
func (c *ConstantSize) EvaluateForZoom(zoom float64) ZoomEvaluatedSize {
	res := ZoomEvaluatedSize{
		IsFeatureConstant: true,
		IsZoomConstant:    len(c.Stops) == 0,
		Size:              c.Size,
	}
	if len(c.Stops) == 0 {
		return res
	}

	n := len(c.Stops)
	switch {
	case zoom <= c.Stops[0].Zoom:
		res.Size = c.Stops[0].Value
	case zoom >= c.Stops[n-1].Zoom:
		res.Size = c.Stops[n-1].Value
	default:
		i, _ := slices.BinarySearchFunc(c.Stops, zoom, func(s ZoomStop, z float64) int {
			switch {
			case s.Zoom < z:
				return -1
			case s.Zoom > z:
				return 1
			}
			return 0
		})
		if c.Stops[i].Zoom == zoom {
			res.Size = c.Stops[i].Value
			break
		}
		lo, hi := c.Stops[i-1], c.Stops[i]
		t := interpolationFactor(c.Base, lo.Zoom, hi.Zoom, zoom)
		res.Size = lo.Value + t*(hi.Value-lo.Value)
	}
	return res
}

// SourceSize is a size which depends on feature properties only.  The size of
// each symbol is stored in its LowerSize field.
type SourceSize struct{}

// EvaluateForZoom implements the [SizeBinder] interface.
func (SourceSize) EvaluateForZoom(float64) ZoomEvaluatedSize {
	return ZoomEvaluatedSize{IsZoomConstant: true}
}

// CompositeSize is a size which depends on both feature properties and zoom.
// The layout pass stores the sizes at MinZoom and MaxZoom in the LowerSize
// and UpperSize fields of each symbol.
type CompositeSize struct {
	MinZoom, MaxZoom float64

	// Base is the exponential interpolation base.
	// Values <= 0 are treated as 1.
	Base float64
}

// EvaluateForZoom implements the [SizeBinder] interface.
func (c *CompositeSize) EvaluateForZoom(zoom float64) ZoomEvaluatedSize {
	t := interpolationFactor(c.Base, c.MinZoom, c.MaxZoom, zoom)
	return ZoomEvaluatedSize{SizeT: min(max(t, 0), 1)}
}

// interpolationFactor returns the position of z in [lo, hi] as a fraction.
// For base != 1 the fraction grows exponentially.
func interpolationFactor(base, lo, hi, z float64) float64 {
	d := hi - lo
	if d == 0 {
		return 0
	}
	p := z - lo
	if base <= 0 || base == 1 {
		return p / d
	}
	return (math.Pow(base, p) - 1) / (math.Pow(base, d) - 1)
}

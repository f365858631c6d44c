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

// Alignment describes how labels of a layer are attached to the map.
type Alignment struct {
	// PitchWithMap makes labels lie flat on the tilted map plane.
	// Otherwise labels face the viewer.
	PitchWithMap bool

	// RotateWithMap makes labels turn together with the map.
	RotateWithMap bool
}

// MatrixParams collects the inputs of the label matrix builders.
type MatrixParams struct {
	// PosMatrix maps tile coordinates to clip space for the current frame.
	PosMatrix mgl64.Mat4

	Alignment Alignment
	Camera    Camera

	// PixelsToTileUnits is the number of tile units covered by one screen
	// pixel at the current zoom.  Must be > 0.
	PixelsToTileUnits float64
}

// LabelPlaneMatrix returns the matrix which maps tile coordinates into the
// label plane.
//
// For labels pitched with the map, label-plane units are screen pixels
// measured on the map plane, so the matrix only scales (and counter-rotates
// if the labels don't rotate with the map).  For labels facing the viewer the
// label plane is the screen, with the origin at the top left corner and y
// pointing down.
func LabelPlaneMatrix(p *MatrixParams) mgl64.Mat4 {
	if p.Alignment.PitchWithMap {
		s := 1 / p.PixelsToTileUnits
		m := mgl64.Scale3D(s, s, 1)
		if !p.Alignment.RotateWithMap {
			m = m.Mul4(mgl64.HomogRotate3DZ(p.Camera.Angle))
		}
		return m
	}

	m := mgl64.Scale3D(p.Camera.Width/2, -p.Camera.Height/2, 1)
	m = m.Mul4(mgl64.Translate3D(1, -1, 0))
	return m.Mul4(p.PosMatrix)
}

// GLCoordMatrix returns the matrix which maps label-plane coordinates back
// into clip space.  GLCoordMatrix(p) * LabelPlaneMatrix(p) equals p.PosMatrix.
func GLCoordMatrix(p *MatrixParams) mgl64.Mat4 {
	if p.Alignment.PitchWithMap {
		s := p.PixelsToTileUnits
		m := p.PosMatrix.Mul4(mgl64.Scale3D(s, s, 1))
		if !p.Alignment.RotateWithMap {
			m = m.Mul4(mgl64.HomogRotate3DZ(-p.Camera.Angle))
		}
		return m
	}

	m := mgl64.Scale3D(1, -1, 1)
	m = m.Mul4(mgl64.Translate3D(-1, -1, 0))
	return m.Mul4(mgl64.Scale3D(2/p.Camera.Width, 2/p.Camera.Height, 1))
}

// Project maps the point (x, y, 0, 1) through m and applies the perspective
// divide.  The result is undefined if the w component vanishes.
func Project(pt vec.Vec2, m mgl64.Mat4) vec.Vec2 {
	pos := m.Mul4x1(mgl64.Vec4{pt.X, pt.Y, 0, 1})
	return vec.Vec2{X: pos[0] / pos[3], Y: pos[1] / pos[3]}
}

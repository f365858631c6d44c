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

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linelabel"
)

// fieldOfView is the vertical field of view of the map camera, in radians.
const fieldOfView = 0.6435011087932844

const (
	extent   = 8192 // tile units per tile edge
	tileSize = 512  // pixels per tile edge at the tile's zoom
)

// Camera returns the camera state for a w×h viewport.
func Camera(w, h, zoom, angle, pitch float64) linelabel.Camera {
	return linelabel.Camera{
		Width:                  w,
		Height:                 h,
		Zoom:                   zoom,
		Angle:                  angle,
		Pitch:                  pitch,
		CameraToCenterDistance: 0.5 / math.Tan(fieldOfView/2) * h,
	}
}

// PosMatrix returns the placement matrix of tile id, for a view centred on
// the tile point center.
func PosMatrix(cam linelabel.Camera, id linelabel.TileID, center vec.Vec2) mgl64.Mat4 {
	scale := float64(tileSize) / extent * math.Exp2(cam.Zoom-float64(id.Z))
	d := cam.CameraToCenterDistance

	m := mgl64.Perspective(fieldOfView, cam.Width/cam.Height, 1, 10*d)
	m = m.Mul4(mgl64.Scale3D(1, -1, 1))
	m = m.Mul4(mgl64.Translate3D(0, 0, -d))
	m = m.Mul4(mgl64.HomogRotate3DX(cam.Pitch))
	m = m.Mul4(mgl64.HomogRotate3DZ(cam.Angle))
	m = m.Mul4(mgl64.Translate3D(-center.X*scale, -center.Y*scale, 0))
	return m.Mul4(mgl64.Scale3D(scale, scale, 1))
}

// tile returns the tile data for a view of tile 14/0/0 centred on center.
func tile(cam linelabel.Camera, center vec.Vec2) linelabel.Tile {
	id := linelabel.TileID{Z: 14}
	return linelabel.Tile{
		ID:        id,
		PosMatrix: PosMatrix(cam, id, center),
	}
}

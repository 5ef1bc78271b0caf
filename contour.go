// seehuhn.de/go/flst - a tree of shapes library
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

package flst

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ContourPath returns the recorded level line of a shape as a closed
// polygon. Coordinates are edgel origins, so the polygon runs along
// pixel boundaries, with (0, 0) being the top-left corner of the
// top-left pixel.
//
// The result is nil unless the tree was built with Options.Contours.
func (t *Tree) ContourPath(id NodeID) *path.Data {
	contour := t.Shapes[id].Contour
	if len(contour) == 0 {
		return nil
	}
	d := &path.Data{
		Cmds:   make([]path.Command, 0, len(contour)+2),
		Coords: make([]vec.Vec2, 0, len(contour)),
	}
	for i, p := range contour {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		d.Cmds = append(d.Cmds, cmd)
		d.Coords = append(d.Coords, vec.Vec2{X: float64(p.X), Y: float64(p.Y)})
	}
	d.Cmds = append(d.Cmds, path.CmdClose)
	return d
}

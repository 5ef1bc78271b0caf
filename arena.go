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

// findPixelsOfShapes lays out the pixel arena for a tree whose shapes
// carry areas and a complete per-pixel index but no pixel slices yet,
// as left behind by the bottom-up extractor. The layout is pre-order
// linearised: each shape's slice starts with its private pixels,
// followed by the slices of its subtrees.
func (t *Tree) findPixelsOfShapes() {
	n := len(t.Shapes)

	// Number of private pixels per shape: the area minus the areas of
	// the direct children.
	proper := make([]int32, n)
	for i := range t.Shapes {
		proper[i] = t.Shapes[i].Area
	}
	for i := n - 1; i > 0; i-- {
		proper[t.Shapes[i].Parent] -= t.Shapes[i].Area
	}

	// Reserve arena room in pre-order, using an explicit stack of the
	// path from the root to the current shape.
	stack := make([]NodeID, 0, n)
	var off int32
	s := NodeID(0)
	for {
		if s != None {
			t.Shapes[s].pixOff = off
			off += proper[s]
			stack = append(stack, s)
			s = t.Shapes[s].Child
		} else {
			if len(stack) == 0 {
				break
			}
			s = t.Shapes[stack[len(stack)-1]].Sibling
			stack = stack[:len(stack)-1]
		}
	}

	// Scan the image backwards, placing each pixel into the reserved
	// block of its smallest shape. Counting down through proper leaves
	// every block in row-major order.
	for y := t.Height - 1; y >= 0; y-- {
		for x := t.Width - 1; x >= 0; x-- {
			id := t.smallest[y*t.Width+x]
			proper[id]--
			t.arena[t.Shapes[id].pixOff+proper[id]] = Point{X: int16(x), Y: int16(y)}
		}
	}
}

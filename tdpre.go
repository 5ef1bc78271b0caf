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

// Top-down pre-order extraction. Starting from the image frame, each
// shape's level line is traced, its private pixels are collected, and
// one seed edgel per child is recorded before recursing. The pixel
// arena ends up linearised in pre-order: a shape's private pixels come
// first, followed by the pixels of its descendants.

// tdPre runs the top-down pre-order extraction.
func (t *Tree) tdPre(r *Raster, contours bool) {
	for i := range t.smallest {
		t.smallest[i] = None
	}
	t.Shapes[0].Type = Sup
	t.Shapes[0].pixOff = 0

	// The frame is always part of the root's level line, and the
	// initial parent level of -1 makes every pixel brighter than the
	// parent.
	e := edgel{pt: Point{0, 0}, dir: south}
	t.createTree(r, 0, e, -1, contours)

	// The flags collected during growth only see each shape's private
	// pixels; a shape whose border pixels all belong to descendants
	// would be missed. One index pass makes the flags exact.
	t.FillBoundary()
}

// createTree extracts the subtree rooted at id, whose boundary contains
// the edgel e. level is the gray level of the parent shape.
func (t *Tree) createTree(r *Raster, id NodeID, e edgel, level int, contours bool) {
	t.initShape(r, id, e, level, contours)

	var children []edgel
	t.findPrivateAndChildren(r, id, &children)

	for _, ce := range children {
		c := t.addChild(id)
		t.Shapes[c].pixOff = t.Shapes[id].pixOff + t.Shapes[id].Area
		t.createTree(r, c, ce, int(t.Shapes[id].Gray), contours)
		t.Shapes[id].Area += t.Shapes[c].Area
	}
}

// initShape traces the level line of shape id and determines its type
// and gray level. One pixel of the private area, the one where the
// extreme gray is attained, is stored and indexed; all other line
// pixels are cleared in the index for later relabeling.
func (t *Tree) initShape(r *Raster, id NodeID, e edgel, level int, contours bool) {
	s := &t.Shapes[id]
	if compare(Inf, int(r.grayAt(e.pt)), level) {
		s.Type = Inf
		s.Gray = 0
	} else {
		s.Type = Sup
		s.Gray = 255
	}
	s.Ignore = false
	s.Boundary = false
	s.Area = 1

	cur := e
	for {
		if contours && cur.dir < diagonal {
			s.Contour = append(s.Contour, cur.origin())
		}
		j := r.index(cur.pt)
		v := r.Pix[j]
		if !compare(s.Type, int(v), int(s.Gray)) {
			s.Gray = v
			t.arena[s.pixOff] = cur.pt
		}
		t.smallest[j] = None
		cur.next(r, s.Type, level)
		if cur == e {
			break
		}
	}

	p0 := t.arena[s.pixOff]
	t.smallest[r.index(p0)] = id
}

// markChildLine follows the boundary of a child of shape id, starting
// at edgel e. Pixels on the immediate exterior at the gray level of id
// are added to the private area; pixels on the immediate interior are
// marked as if they belonged to id, so that the boundary is not
// followed again.
func (t *Tree) markChildLine(r *Raster, id NodeID, e edgel) {
	s := &t.Shapes[id]
	var typ Type
	if compare(Inf, int(r.grayAt(e.pt)), int(s.Gray)) {
		typ = Inf
	} else {
		typ = Sup
	}

	cur := e
	for {
		t.smallest[r.index(cur.pt)] = id
		if ext, ok := cur.exterior(r); ok {
			i := r.index(ext)
			if t.smallest[i] == None && r.Pix[i] == s.Gray {
				t.arena[s.pixOff+s.Area] = ext
				s.Area++
				t.smallest[i] = id
			}
		}
		cur.next(r, typ, int(s.Gray))
		if cur == e {
			break
		}
	}
}

// edge8 reports whether, across a boundary between gray levels vi
// (inside) and ve (outside), the side of vi is the 8-connected one,
// that is, whether vi is the brighter of the two.
func edge8(vi, ve uint8) bool {
	if vi == ve {
		return false
	}
	typ := Sup
	if vi < ve {
		typ = Inf
	}
	return connectivity(typ) == 8
}

// addNeighbor inspects the exterior pixel of edgel e. If it is at the
// level of shape id, it joins the private area; if it belongs to an
// undiscovered child, the child's boundary is marked and a seed edgel
// recorded. The return value reports whether the exterior pixel is
// darker than shape id, so that id's side of the edge is 8-connected.
func (t *Tree) addNeighbor(r *Raster, id NodeID, e edgel, children *[]edgel) bool {
	if !e.inverse(r) {
		t.Shapes[id].Boundary = true
		return false
	}
	i := r.index(e.pt)
	if t.smallest[i] == None {
		s := &t.Shapes[id]
		if r.Pix[i] == s.Gray {
			t.arena[s.pixOff+s.Area] = e.pt
			s.Area++
			t.smallest[i] = id
		} else {
			*children = append(*children, e)
			t.markChildLine(r, id, e)
		}
	}
	return edge8(t.Shapes[id].Gray, r.Pix[i])
}

// findPrivateAndChildren fills the private area of shape id and records
// one seed edgel per child. Diagonal neighbors are only examined when
// both adjacent cardinal neighbors are darker than the shape, so that
// the shape's side of both edges is 8-connected; this is what realises
// the 4- vs 8-connectivity duality.
func (t *Tree) findPrivateAndChildren(r *Raster, id NodeID, children *[]edgel) {
	for i := int32(0); i < t.Shapes[id].Area; i++ {
		pt := t.arena[t.Shapes[id].pixOff+i]
		e := edgel{pt: pt}

		e.dir = east
		edgeE := t.addNeighbor(r, id, e, children)
		e.dir = north
		edgeN := t.addNeighbor(r, id, e, children)
		e.dir = west
		edgeW := t.addNeighbor(r, id, e, children)
		e.dir = south
		edgeS := t.addNeighbor(r, id, e, children)

		if edgeN && edgeE {
			e.dir = ne
			t.addNeighbor(r, id, e, children)
		}
		if edgeN && edgeW {
			e.dir = nw
			t.addNeighbor(r, id, e, children)
		}
		if edgeS && edgeW {
			e.dir = sw
			t.addNeighbor(r, id, e, children)
		}
		if edgeS && edgeE {
			e.dir = se
			t.addNeighbor(r, id, e, children)
		}
	}
}

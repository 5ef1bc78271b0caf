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

// Top-down post-order extraction, after Yuqing Song. The locator is the
// same as in the pre-order variant, but each child subtree is built
// immediately when a seed for it is found, before more of the parent's
// private pixels are committed. The pixel arena ends up linearised in
// post-order: a shape's private pixels follow those of its descendants.

// Exploration states of the color grid.
const (
	colorUnseen    byte = 0
	colorSeen      byte = 1
	colorCommitted byte = 2
)

// tdPost runs the top-down post-order extraction.
func (t *Tree) tdPost(r *Raster, contours bool) {
	for i := range t.smallest {
		t.smallest[i] = None
	}
	color := make([]byte, r.Width*r.Height)

	t.Shapes[0].Type = Sup
	t.Shapes[0].pixOff = 0
	e := edgel{pt: Point{0, 0}, dir: south}
	bound := t.locateLine(r, 0, e, -1, contours)
	t.locateAllChildren(r, 0, bound, color, contours)
	t.FillBoundary()
}

// fixInitialEdgel replaces a diagonal seed edgel by a cardinal one on
// the same boundary. level must lie strictly between the gray levels of
// e's interior and exterior pixels.
func fixInitialEdgel(r *Raster, typ Type, e *edgel, level int) {
	ext, _ := e.exterior(r) // a diagonal interior pixel always has one
	diag1 := Point{X: e.pt.X, Y: ext.Y}
	diag2 := Point{X: ext.X, Y: e.pt.Y}
	switch {
	case compare(typ, int(r.grayAt(diag1)), level):
		e.pt = diag1
		if diag1.X < ext.X {
			e.dir = north
		} else {
			e.dir = south
		}
	case compare(typ, int(r.grayAt(diag2)), level):
		e.pt = diag2
		if diag2.Y < ext.Y {
			e.dir = east
		} else {
			e.dir = west
		}
	default:
		if e.pt.X < ext.X {
			e.dir = north
		} else {
			e.dir = south
		}
	}
}

// locateLine traces the boundary of the largest shape whose level line
// contains e and returns it as a sequence of edgels, determining the
// shape's type and gray level on the way. level is the gray level of
// the parent. Pixel and family fields are not touched.
func (t *Tree) locateLine(r *Raster, id NodeID, e edgel, level int, contours bool) []edgel {
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

	if e.dir >= diagonal { // avoid an infinite loop
		fixInitialEdgel(r, s.Type, &e, level)
	}

	var boundary []edgel
	cur := e
	for {
		boundary = append(boundary, cur)
		if contours && cur.dir < diagonal {
			s.Contour = append(s.Contour, cur.origin())
		}
		v := r.grayAt(cur.pt)
		if !compare(s.Type, int(v), int(s.Gray)) {
			s.Gray = v
		}
		cur.next(r, s.Type, level)
		if cur == e {
			break
		}
	}
	return boundary
}

// classifyExterior inspects the exterior pixel of edgel e. If its gray
// level is g it becomes a private-pixel candidate on Qp, otherwise the
// inverse edgel becomes a child seed on Qc. Pixels already discovered
// are left alone.
func (t *Tree) classifyExterior(r *Raster, color []byte, e edgel, g uint8, Qp *[]Point, Qc *[]edgel) {
	f := e
	if !f.inverse(r) || color[r.index(f.pt)] != colorUnseen {
		return
	}
	if r.grayAt(f.pt) == g {
		*Qp = append(*Qp, f.pt)
	} else {
		*Qc = append(*Qc, f)
	}
	color[r.index(f.pt)] = colorSeen
}

// locateAllChildren fills the subtree rooted at shape id, whose
// boundary is bound. Private-pixel and child-seed queues are drained
// alternately, so that children are built as soon as they are seen.
func (t *Tree) locateAllChildren(r *Raster, id NodeID, bound []edgel, color []byte, contours bool) {
	t.Shapes[id].Area = 0
	if parent := t.Shapes[id].Parent; parent != None {
		// The shape's pixels go after those of its older siblings,
		// which all start at the parent's arena position.
		end := t.Shapes[parent].pixOff
		for c := t.Shapes[id].Sibling; c != None; c = t.Shapes[c].Sibling {
			if o := t.Shapes[c].pixOff + t.Shapes[c].Area; o > end {
				end = o
			}
		}
		t.Shapes[id].pixOff = end
	}

	var Qp []Point // candidate private pixels
	var Qc []edgel // seed edgels for children
	var pp []Point // private region of the shape
	for _, be := range bound {
		if t.smallest[r.index(be.pt)] != None {
			continue
		}
		if r.grayAt(be.pt) == t.Shapes[id].Gray {
			Qp = append(Qp, be.pt)
		} else {
			Qc = append(Qc, be)
		}
		color[r.index(be.pt)] = colorSeen
		for len(Qp) > 0 || len(Qc) > 0 {
			if len(Qp) > 0 {
				pt := Qp[len(Qp)-1]
				Qp = Qp[:len(Qp)-1]
				i := r.index(pt)
				color[i] = colorCommitted
				t.smallest[i] = id
				pp = append(pp, pt)
				for d := dirEdgel(0); d != diagonal; d++ {
					e := edgel{pt: pt, dir: d}
					t.classifyExterior(r, color, e, t.Shapes[id].Gray, &Qp, &Qc)
				}
			}
			if len(Qc) > 0 {
				e := Qc[len(Qc)-1]
				Qc = Qc[:len(Qc)-1]
				if color[r.index(e.pt)] == colorCommitted {
					continue
				}
				c := t.addChild(id)
				b := t.locateLine(r, c, e, int(t.Shapes[id].Gray), contours)
				for _, bc := range b {
					color[r.index(bc.pt)] = colorCommitted
					t.classifyExterior(r, color, bc, t.Shapes[id].Gray, &Qp, &Qc)
				}
				t.locateAllChildren(r, c, b, color, contours)
				t.Shapes[id].Area += t.Shapes[c].Area
			}
		}
	}
	s := &t.Shapes[id]
	copy(t.arena[s.pixOff+s.Area:], pp)
	s.Area += int32(len(pp))
}

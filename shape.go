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

// Type distinguishes the two kinds of level sets.
type Type uint8

const (
	// Inf marks a connected component of {p: gray(p) < λ}, a dark shape.
	Inf Type = iota
	// Sup marks a connected component of {p: gray(p) > λ}, a bright shape.
	Sup
)

// String returns "inf" or "sup".
func (t Type) String() string {
	if t == Inf {
		return "inf"
	}
	return "sup"
}

// NodeID identifies a shape within its tree. The root is always node 0.
type NodeID int32

// None is the null NodeID, used for missing parent, sibling or child
// links.
const None NodeID = -1

// Shape is one node of the tree: a connected component of a level set
// with its holes filled.
//
// A shape's pixels live in the pixel arena owned by the tree, in a
// contiguous slice covering the shape together with all its
// descendants; see [Tree.Pixels].
type Shape struct {
	Type Type  // inf or sup level set
	Gray uint8 // gray level of the shape

	Ignore   bool // mark the shape as pruned for iteration and lookup
	Boundary bool // does the shape meet the border of the image?

	Area int32 // number of pixels in the shape, including descendants

	// Contour is the level line of the shape, as the ordered origins of
	// its boundary edgels. It is only recorded when Options.Contours is
	// set.
	Contour []Point

	Parent  NodeID // smallest containing shape, None for the root
	Sibling NodeID // next shape with the same parent
	Child   NodeID // first child, None for leaves

	pixOff int32 // offset of the shape's pixel slice in the arena
}

// shapeOfSubtree returns some non-ignored shape in the subtree rooted
// at id, or None if the whole subtree is ignored.
func (t *Tree) shapeOfSubtree(id NodeID) NodeID {
	if id == None || !t.Shapes[id].Ignore {
		return id
	}
	for c := t.Shapes[id].Child; c != None; c = t.Shapes[c].Sibling {
		if s := t.shapeOfSubtree(c); s != None {
			return s
		}
	}
	return None
}

// FindParent returns the nearest non-ignored ancestor of id, or None
// for the root.
func (t *Tree) FindParent(id NodeID) NodeID {
	for {
		id = t.Shapes[id].Parent
		if id == None || !t.Shapes[id].Ignore {
			return id
		}
	}
}

// FindChild returns the first non-ignored child of id, tunneling into
// ignored subtrees, or None.
func (t *Tree) FindChild(id NodeID) NodeID {
	for c := t.Shapes[id].Child; c != None; c = t.Shapes[c].Sibling {
		if s := t.shapeOfSubtree(c); s != None {
			return s
		}
	}
	return None
}

// FindSibling returns the next non-ignored sibling of id in the
// effective tree. Like the raw sibling link, it does not check whether
// id has a parent; for a root shape it may still return a shape.
func (t *Tree) FindSibling(id NodeID) NodeID {
	for s := t.Shapes[id].Sibling; s != None; s = t.Shapes[s].Sibling {
		if c := t.shapeOfSubtree(s); c != None {
			return c
		}
	}
	p := t.Shapes[id].Parent
	if p == None || !t.Shapes[p].Ignore {
		// The parent in the stored tree is also the parent in the
		// effective tree, so there is no further sibling.
		return None
	}
	return t.FindSibling(p)
}

// FindPrevSibling returns the previous non-ignored sibling of id, or
// None if id is the first child of its effective parent. The shape
// itself must not be ignored.
func (t *Tree) FindPrevSibling(id NodeID) NodeID {
	p := t.FindParent(id)
	if p == None {
		return None
	}
	next := t.FindChild(p)
	prev := None
	for next != id {
		prev = next
		next = t.FindSibling(prev)
	}
	return prev
}

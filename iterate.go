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

import "iter"

// Order selects the traversal order of Walk.
type Order int

const (
	// Pre visits each shape before its descendants.
	Pre Order = iota
	// Post visits each shape after its descendants.
	Post
)

// Walk returns an iterator over the subtree rooted at root, in the
// given order. Ignored shapes are skipped together with nothing else:
// their non-ignored descendants are still visited, at the position of
// the nearest non-ignored ancestor's children. If root itself is
// ignored the walk is empty.
func (t *Tree) Walk(o Order, root NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if root == None || t.Shapes[root].Ignore {
			return
		}
		if o == Pre {
			end := t.uncle(root)
			for s := root; s != end; {
				if !yield(s) {
					return
				}
				if c := t.FindChild(s); c != None {
					s = c
				} else {
					s = t.uncle(s)
				}
			}
		} else {
			for s := t.goBottom(root); ; {
				if !yield(s) || s == root {
					return
				}
				if sib := t.FindSibling(s); sib != None {
					s = t.goBottom(sib)
				} else {
					s = t.FindParent(s)
				}
			}
		}
	}
}

// goBottom descends to the leftmost non-ignored leaf below s.
func (t *Tree) goBottom(s NodeID) NodeID {
	for c := t.FindChild(s); c != None; c = t.FindChild(s) {
		s = c
	}
	return s
}

// uncle returns the next sibling of s or of its nearest ancestor with
// one, or None when s is on the rightmost path of the tree.
func (t *Tree) uncle(s NodeID) NodeID {
	for {
		if sib := t.FindSibling(s); sib != None {
			return sib
		}
		if s = t.FindParent(s); s == None {
			return None
		}
	}
}

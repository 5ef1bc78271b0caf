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

// Package flst decomposes a grayscale image into its tree of shapes.
//
// A shape is a connected component of an upper or lower level set of
// the image, with its holes filled. Shapes are either disjoint or
// nested, so they form a tree ordered by inclusion, with the whole
// image as root. The package implements the Fast Level Sets Transform
// in three variants: two top-down boundary-following extractors and the
// classical bottom-up region-growing extractor.
package flst

import (
	"errors"
	"fmt"
)

// Algo selects the extraction algorithm used by New.
type Algo int

const (
	// TDPre is the top-down extractor which commits each shape's
	// private pixels before descending into its children. The pixel
	// arena is laid out in pre-order.
	TDPre Algo = iota

	// TDPost is the top-down extractor which builds each child subtree
	// immediately upon detection. The pixel arena is laid out in
	// post-order.
	TDPost

	// BottomUp is the classical extractor, growing regions from local
	// extrema. It honours the MinArea/MaxArea filters in Options.
	BottomUp
)

// Options holds optional construction parameters for New.
type Options struct {
	// MinArea and MaxArea restrict the BottomUp extractor to shapes
	// with MinArea <= area <= MaxArea. Values <= 0 mean 1 and
	// width*height, respectively. The other algorithms ignore them.
	MinArea, MaxArea int

	// Contours makes the top-down extractors record each shape's level
	// line in Shape.Contour. The BottomUp extractor does not trace
	// level lines and never records contours.
	Contours bool
}

// ErrInvalidArea is returned when MinArea exceeds the image area.
var ErrInvalidArea = errors.New("flst: MinArea larger than the image")

// Tree is the tree of shapes of an image.
//
// Shapes[0] is the root, covering the whole image. The tree owns a
// pixel arena of width*height points, partitioned among the shapes,
// and a per-pixel index of the smallest containing shape.
//
// After construction the tree structure is immutable; only the Ignore
// flags of individual shapes may be changed.
type Tree struct {
	Width, Height int

	// Shapes holds all nodes of the tree. Links between shapes are
	// indices into this slice.
	Shapes []Shape

	arena    []Point  // width*height pixels, partitioned among shapes
	smallest []NodeID // per pixel, the deepest shape containing it
}

// New extracts the tree of shapes of the given raster. The raster is
// only read, never modified, and may be discarded afterwards.
// opts may be nil for default settings.
func New(r *Raster, algo Algo, opts *Options) (*Tree, error) {
	if r == nil {
		return nil, ErrInvalidRaster
	}
	if _, err := NewRaster(r.Pix, r.Width, r.Height); err != nil {
		return nil, err
	}
	area := r.Width * r.Height

	t := &Tree{
		Width:  r.Width,
		Height: r.Height,
		Shapes: make([]Shape, 1, area),
	}
	t.Shapes[0] = Shape{
		Type:     Inf,
		Gray:     255,
		Boundary: true,
		Area:     int32(area),
		Parent:   None,
		Sibling:  None,
		Child:    None,
	}
	t.arena = make([]Point, area)
	t.smallest = make([]NodeID, area) // zero value is the root

	var contours bool
	minArea, maxArea := 0, 0
	if opts != nil {
		contours = opts.Contours
		minArea, maxArea = opts.MinArea, opts.MaxArea
	}

	switch algo {
	case TDPre:
		t.tdPre(r, contours)
	case TDPost:
		t.tdPost(r, contours)
	case BottomUp:
		if minArea > area {
			return nil, fmt.Errorf("%w: %d > %d", ErrInvalidArea, minArea, area)
		}
		t.bottomUp(r, minArea, maxArea)
	default:
		return nil, fmt.Errorf("flst: unknown algorithm %d", algo)
	}
	return t, nil
}

// addChild allocates the next node slot and links it as the first child
// of parent; the previous first child becomes its sibling. All
// non-structural fields are left at their zero values.
func (t *Tree) addChild(parent NodeID) NodeID {
	id := NodeID(len(t.Shapes))
	t.Shapes = append(t.Shapes, Shape{
		Parent:  parent,
		Sibling: t.Shapes[parent].Child,
		Child:   None,
	})
	t.Shapes[parent].Child = id
	return id
}

// Pixels returns the pixel slice of a shape: its own pixels together
// with those of all its descendants. The slice aliases the tree's
// pixel arena and must not be modified.
func (t *Tree) Pixels(id NodeID) []Point {
	s := &t.Shapes[id]
	return t.arena[s.pixOff : s.pixOff+s.Area]
}

// SmallestShapeAt returns the smallest non-ignored shape containing the
// pixel (x, y). The coordinates must be inside the image.
func (t *Tree) SmallestShapeAt(x, y int) NodeID {
	id := t.smallest[y*t.Width+x]
	if t.Shapes[id].Ignore {
		id = t.FindParent(id)
	}
	return id
}

// BuildImage reconstructs a raster from the tree, assigning to each
// pixel the gray of its smallest non-ignored shape. On a freshly
// constructed top-down tree this reproduces the input image exactly.
func (t *Tree) BuildImage() []byte {
	out := make([]byte, t.Width*t.Height)
	for i, id := range t.smallest {
		for t.Shapes[id].Ignore {
			id = t.Shapes[id].Parent
		}
		out[i] = t.Shapes[id].Gray
	}
	return out
}

// FillBoundary recomputes the Boundary flag of every shape from the
// pixel index: a shape meets the border if one of its pixels lies on
// the image frame, and the flag propagates to all ancestors.
func (t *Tree) FillBoundary() {
	for id := range t.Shapes {
		t.Shapes[id].Boundary = false
	}
	// mark flags a shape and its ancestors, stopping at the first
	// ancestor already flagged.
	mark := func(id NodeID) {
		for id != None && !t.Shapes[id].Boundary {
			t.Shapes[id].Boundary = true
			id = t.Shapes[id].Parent
		}
	}
	w, h := t.Width, t.Height
	for x := range w {
		mark(t.smallest[x])
		mark(t.smallest[(h-1)*w+x])
	}
	for y := 1; y+1 < h; y++ {
		mark(t.smallest[y*w])       // first of row y
		mark(t.smallest[(y+1)*w-1]) // last of row y
	}
}

// IndexSmallestShape rebuilds the per-pixel index from the pixel arena.
// A shape's private pixels are those of its slice not covered by any
// child slice; since the arena is tree-linearised they form at most two
// runs at the ends of the slice.
func (t *Tree) IndexSmallestShape() {
	t.indexShape(0)
}

func (t *Tree) indexShape(id NodeID) {
	s := &t.Shapes[id]
	for c := s.Child; c != None; c = t.Shapes[c].Sibling {
		t.indexShape(c)
	}
	begin, end := s.pixOff+s.Area, s.pixOff
	for c := s.Child; c != None; c = t.Shapes[c].Sibling {
		cs := &t.Shapes[c]
		if begin > cs.pixOff {
			begin = cs.pixOff
		}
		if end < cs.pixOff+cs.Area {
			end = cs.pixOff + cs.Area
		}
	}
	for _, p := range t.arena[s.pixOff:begin] {
		t.smallest[int(p.Y)*t.Width+int(p.X)] = id
	}
	for _, p := range t.arena[end : s.pixOff+s.Area] {
		t.smallest[int(p.Y)*t.Width+int(p.X)] = id
	}
}

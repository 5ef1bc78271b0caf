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

// Classical bottom-up extraction. The image is scanned for untreated
// local extrema; from each one a region is grown by absorbing entire
// iso-level sets of its neighborhood. Whenever the neighborhood gray
// levels become strictly monotone the region is an isolated level set;
// if its frontier has a single connected component it is emitted as a
// shape and spliced into the tree.

// bottomUpExtractor holds the state of one classical extraction run.
type bottomUpExtractor struct {
	t    *Tree
	w, h int

	minArea, maxArea int
	maxAreaWork      int
	halfAreaImage    int

	work []byte // private copy of the image, flattened as regions finish

	epoch        int
	visited      []int // region membership, stamped with the epoch
	visitedFront []int // neighborhood membership, stamped with the epoch

	frontier     []frontierPixel
	meetsBorder  bool
	borderLength int

	region []Point // pixels of the region being grown
	nb     *neighborhood

	// largest maps each pixel to the largest shape already extracted
	// that contains it; node 0 (the root) initially.
	largest []NodeID
}

// bottomUp runs the classical extraction with the given area filters.
// Values <= 0 select the defaults 1 and width*height.
func (t *Tree) bottomUp(r *Raster, minArea, maxArea int) {
	area := r.Width * r.Height
	if minArea <= 0 {
		minArea = 1
	}
	if maxArea <= 0 {
		maxArea = area
	}

	bu := &bottomUpExtractor{
		t:             t,
		w:             r.Width,
		h:             r.Height,
		minArea:       minArea,
		maxArea:       maxArea,
		maxAreaWork:   min(max(minArea, maxArea)+1, area),
		halfAreaImage: area / 2,
		work:          make([]byte, area),
		epoch:         1,
		visited:       make([]int, area),
		visitedFront:  make([]int, area),
		frontier:      make([]frontierPixel, area),
	}
	copy(bu.work, r.Pix)
	bu.region = make([]Point, bu.maxAreaWork)
	bu.nb = newNeighborhood(bu.maxAreaWork, area)
	if minArea <= maxArea {
		bu.largest = make([]NodeID, area) // zero value is the root
	}

	bu.scanLevels()

	t.findPixelsOfShapes()
}

// scanLevels visits all pixels in scan order and grows a region from
// every untreated local extremum. Minima seed 4-connected regions,
// maxima 8-connected ones.
func (bu *bottomUpExtractor) scanLevels() {
	for y := range bu.h {
		for x := range bu.w {
			if bu.visited[y*bu.w+x] != 0 {
				continue
			}
			if bu.isLocalMin(x, y, false) {
				bu.findLevels(x, y, false)
				bu.epoch++
			} else if bu.isLocalMax(x, y, true) {
				bu.findLevels(x, y, true)
				bu.epoch++
			}
		}
	}
}

// isLocalMin reports whether (x, y) is a local minimum: no neighbor is
// smaller and at least one is strictly greater.
func (bu *bottomUpExtractor) isLocalMin(x, y int, conn8 bool) bool {
	v := bu.work[y*bu.w+x]
	strict := false
	for _, q := range bu.neighborValues(x, y, conn8) {
		if q < v {
			return false
		}
		if q > v {
			strict = true
		}
	}
	return strict
}

// isLocalMax is the mirror image of isLocalMin.
func (bu *bottomUpExtractor) isLocalMax(x, y int, conn8 bool) bool {
	v := bu.work[y*bu.w+x]
	strict := false
	for _, q := range bu.neighborValues(x, y, conn8) {
		if q > v {
			return false
		}
		if q < v {
			strict = true
		}
	}
	return strict
}

// neighborValues collects the gray values of the 4- or 8-neighbors of
// (x, y) that lie inside the image.
func (bu *bottomUpExtractor) neighborValues(x, y int, conn8 bool) []byte {
	var buf [8]byte
	n := 0
	w := bu.w
	for _, d := range neighborOffsets(conn8) {
		nx, ny := x+int(d[0]), y+int(d[1])
		if nx < 0 || nx >= w || ny < 0 || ny >= bu.h {
			continue
		}
		buf[n] = bu.work[ny*w+nx]
		n++
	}
	return buf[:n]
}

var offsets4 = [][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var offsets8 = [][2]int8{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

func neighborOffsets(conn8 bool) [][2]int8 {
	if conn8 {
		return offsets8
	}
	return offsets4
}

// addNb puts the pixel (x, y) into the neighborhood and stamps it so it
// is not enqueued twice during this exploration.
func (bu *bottomUpExtractor) addNb(x, y int, g uint8) {
	bu.visitedFront[y*bu.w+x] = bu.epoch
	bu.nb.add(int16(x), int16(y), g)
}

func (bu *bottomUpExtractor) notVisited(x, y int) bool {
	return bu.visitedFront[y*bu.w+x] < bu.epoch
}

// addIsoLevel absorbs every neighborhood pixel of gray level g into the
// region, updating the frontier, the component count and the
// neighborhood. It returns false when the region has grown too large to
// be a shape: past the working area cap, or past half the image while
// meeting the border, in which case the root's gray level is rewritten
// to the current level.
func (bu *bottomUpExtractor) addIsoLevel(currentArea *int, g uint8, nCC *int, conn8 *bool) bool {
	iso := int(bu.nb.occupation[g])
	if *currentArea+iso >= bu.maxAreaWork {
		return false
	}
	if bu.meetsBorder && *currentArea+iso > bu.halfAreaImage {
		bu.t.Shapes[0].Gray = g
		return false
	}

	area := *currentArea
	cell := bu.nb.first[g]
	for range iso {
		pt := bu.nb.cells[cell].pt
		x, y := int(pt.X), int(pt.Y)
		bu.region[area] = pt
		area++
		if *conn8 {
			bu.addPoint8(y, x, nCC)
		} else {
			bu.addPoint4(y, x, nCC)
		}
		bu.visited[y*bu.w+x] = bu.epoch
		if x > 0 && bu.notVisited(x-1, y) {
			bu.addNb(x-1, y, bu.work[y*bu.w+x-1])
		}
		if x < bu.w-1 && bu.notVisited(x+1, y) {
			bu.addNb(x+1, y, bu.work[y*bu.w+x+1])
		}
		if y > 0 && bu.notVisited(x, y-1) {
			bu.addNb(x, y-1, bu.work[(y-1)*bu.w+x])
		}
		if y < bu.h-1 && bu.notVisited(x, y+1) {
			bu.addNb(x, y+1, bu.work[(y+1)*bu.w+x])
		}
		// Stepping over a strictly smaller neighbor switches the
		// region to 8-connectivity, until findLevels resets it at an
		// ambiguous level.
		if bu.nb.smallest() < int(g) {
			*conn8 = true
		}
		if *conn8 {
			if x > 0 && y > 0 && bu.notVisited(x-1, y-1) {
				bu.addNb(x-1, y-1, bu.work[(y-1)*bu.w+x-1])
			}
			if x < bu.w-1 && y > 0 && bu.notVisited(x+1, y-1) {
				bu.addNb(x+1, y-1, bu.work[(y-1)*bu.w+x+1])
			}
			if x < bu.w-1 && y < bu.h-1 && bu.notVisited(x+1, y+1) {
				bu.addNb(x+1, y+1, bu.work[(y+1)*bu.w+x+1])
			}
			if x > 0 && y < bu.h-1 && bu.notVisited(x-1, y+1) {
				bu.addNb(x-1, y+1, bu.work[(y+1)*bu.w+x-1])
			}
		}
		cell = bu.nb.cells[cell].next
	}
	*currentArea += iso
	bu.nb.remove(g, iso)
	return true
}

// findLevels grows a region from the extremum at (x0, y0), emitting a
// shape each time the region coincides with an isolated, simply
// connected level set within the area bounds.
func (bu *bottomUpExtractor) findLevels(x0, y0 int, conn8 bool) {
	currentGray := bu.work[y0*bu.w+x0]
	currentArea, previousArea := 0, 0
	nCC := 1 // frontier components; 1 + number of holes
	ambiguity := false

	bu.meetsBorder = false
	bu.borderLength = 0
	bu.nb.reinit()
	bu.addNb(x0, y0, currentGray)

	for {
		if !bu.addIsoLevel(&currentArea, currentGray, &nCC, &conn8) {
			break
		}
		smallest := bu.nb.smallest()
		largest := bu.nb.largest()
		if ambiguity && (smallest != int(currentGray) || largest != int(currentGray)) {
			ambiguity = false
			nCC = 1
		}
		if smallest > int(currentGray) || largest < int(currentGray) {
			if nCC > 1 {
				// The region has a hole around a nested extremum of
				// lower contrast; the hole is grown from its own seed.
				break
			}
			previousArea = currentArea
			if bu.minArea <= currentArea && currentArea <= bu.maxArea {
				typ := Sup
				if int(currentGray) < smallest {
					typ = Inf
				}
				bu.createShape(currentArea, currentGray, typ)
				bu.updateIndexes(currentArea)
			}
			if smallest > int(currentGray) {
				currentGray = uint8(smallest)
			} else {
				currentGray = uint8(largest)
			}
			if smallest == largest {
				// All neighbors sit at one level: the direction of
				// growth is unknown, so connectivity is ambiguous.
				// Treat the region as 4-connected with a single
				// component until the ambiguity resolves.
				conn8 = false
				ambiguity = true
			}
		}
		if !(smallest >= int(currentGray) || largest <= int(currentGray)) {
			break
		}
	}
	bu.setAtLevel(previousArea, currentGray)
}

// createShape appends a shape for the current region as a child of the
// root. Its true parent is established by updateIndexes.
func (bu *bottomUpExtractor) createShape(area int, gray uint8, typ Type) {
	t := bu.t
	id := NodeID(len(t.Shapes))
	t.Shapes = append(t.Shapes, Shape{
		Type:     typ,
		Gray:     gray,
		Boundary: bu.meetsBorder,
		Area:     int32(area),
		Parent:   0,
		Sibling:  t.Shapes[0].Child,
		Child:    None,
	})
	t.Shapes[0].Child = id
}

// updateIndexes records the newly created shape in the per-pixel
// indexes. Shapes previously extracted inside the region are detached
// from their provisional parent and spliced under the new shape, which
// yields the correct parent relation in a single pass.
func (bu *bottomUpExtractor) updateIndexes(area int) {
	t := bu.t
	newID := NodeID(len(t.Shapes) - 1)
	for i := area - 1; i >= 0; i-- {
		pt := bu.region[i]
		j := int(pt.Y)*bu.w + int(pt.X)
		if bu.largest[j] == 0 {
			t.smallest[j] = newID
		} else {
			inc := bu.largest[j]
			if t.Shapes[inc].Parent != newID {
				// The previous sibling exists because the new shape
				// was inserted at the head of the child list.
				prev := t.prevSiblingRaw(inc)
				t.Shapes[prev].Sibling = t.Shapes[inc].Sibling
				t.Shapes[inc].Parent = newID
				t.Shapes[inc].Sibling = t.Shapes[newID].Child
				t.Shapes[newID].Child = inc
			}
		}
		bu.largest[j] = newID
	}
}

// prevSiblingRaw returns the stored previous sibling of id, without
// regard to Ignore flags, or None for a first child.
func (t *Tree) prevSiblingRaw(id NodeID) NodeID {
	sib := t.Shapes[t.Shapes[id].Parent].Child
	if sib == id {
		return None
	}
	for t.Shapes[sib].Sibling != id {
		sib = t.Shapes[sib].Sibling
	}
	return sib
}

// setAtLevel flattens the first n region pixels to the given gray level
// in the working image, removing the emitted level sets from further
// consideration.
func (bu *bottomUpExtractor) setAtLevel(n int, gray uint8) {
	for i := n - 1; i >= 0; i-- {
		pt := bu.region[i]
		bu.work[int(pt.Y)*bu.w+int(pt.X)] = gray
	}
}

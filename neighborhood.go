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

// neighborCell is one entry of the neighborhood pool. Cells of the same
// gray level form a singly linked list via pool indices.
type neighborCell struct {
	pt   Point
	next int32
}

// neighborhood is the multiset of pixels adjacent to the region being
// grown by the bottom-up extractor, bucketed by gray level. Cells are
// drawn from a fixed pool; cells of removed pixels go on a free list
// for reuse, so the total cost per region is linear in its final area.
type neighborhood struct {
	cells []neighborCell
	free  []int32
	n     int // number of pixels currently held

	occupation       [256]int32
	first, last      [256]int32
	minGray, maxGray int
}

// newNeighborhood allocates a neighborhood large enough for regions of
// up to maxArea pixels in an image of imageArea pixels.
func newNeighborhood(maxArea, imageArea int) *neighborhood {
	size := 4 * (maxArea + 1)
	if size > imageArea {
		size = imageArea
	}
	return &neighborhood{
		cells: make([]neighborCell, size),
		free:  make([]int32, 0, size),
	}
}

// reinit empties the neighborhood for a new region. The pool itself is
// not cleared; occupation counts govern which buckets are live.
func (nb *neighborhood) reinit() {
	nb.n = 0
	nb.free = nb.free[:0]
	clear(nb.occupation[:])
	nb.minGray = 255
	nb.maxGray = 0
}

// add inserts the pixel (x, y) of gray level g.
func (nb *neighborhood) add(x, y int16, g uint8) {
	if int(g) < nb.minGray {
		nb.minGray = int(g)
	}
	if int(g) > nb.maxGray {
		nb.maxGray = int(g)
	}
	var cell int32
	if len(nb.free) > 0 {
		cell = nb.free[len(nb.free)-1]
		nb.free = nb.free[:len(nb.free)-1]
	} else {
		// With an empty free list, exactly nb.n cells are in use and
		// they occupy the start of the pool.
		cell = int32(nb.n)
	}
	nb.n++
	nb.cells[cell] = neighborCell{pt: Point{X: x, Y: y}}
	if nb.occupation[g] == 0 {
		nb.first[g] = cell
	} else {
		nb.cells[nb.last[g]].next = cell
	}
	nb.last[g] = cell
	nb.occupation[g]++
}

// remove deletes the first count pixels of gray level g, returning
// their cells to the free list.
func (nb *neighborhood) remove(g uint8, count int) {
	cur := nb.first[g]
	nb.n -= count
	nb.occupation[g] -= int32(count)
	for range count {
		nb.free = append(nb.free, cur)
		cur = nb.cells[cur].next
	}
	if nb.occupation[g] != 0 {
		nb.first[g] = cur
		return
	}
	if int(g) == nb.minGray {
		for nb.minGray < 255 && nb.occupation[nb.minGray] == 0 {
			nb.minGray++
		}
	}
	if int(g) == nb.maxGray {
		for nb.maxGray > 0 && nb.occupation[nb.maxGray] == 0 {
			nb.maxGray--
		}
	}
}

// smallest returns the smallest gray level present.
func (nb *neighborhood) smallest() int { return nb.minGray }

// largest returns the largest gray level present.
func (nb *neighborhood) largest() int { return nb.maxGray }

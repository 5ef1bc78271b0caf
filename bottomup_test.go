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
	"sort"
	"testing"
)

func TestNeighborhood(t *testing.T) {
	nb := newNeighborhood(10, 100)
	nb.reinit()

	nb.add(1, 1, 50)
	nb.add(2, 1, 200)
	nb.add(3, 1, 50)
	nb.add(4, 1, 100)

	if nb.smallest() != 50 || nb.largest() != 200 {
		t.Errorf("range [%d,%d], want [50,200]", nb.smallest(), nb.largest())
	}
	if nb.occupation[50] != 2 {
		t.Errorf("occupation[50] = %d", nb.occupation[50])
	}

	// removing both 50-pixels moves the minimum up
	nb.remove(50, 2)
	if nb.smallest() != 100 {
		t.Errorf("smallest after remove = %d, want 100", nb.smallest())
	}
	if len(nb.free) != 2 {
		t.Errorf("free list has %d cells, want 2", len(nb.free))
	}

	// freed cells are reused before the pool grows
	nb.add(5, 1, 75)
	if nb.n != 3 || len(nb.free) != 1 {
		t.Errorf("n=%d free=%d after reuse", nb.n, len(nb.free))
	}
	if nb.smallest() != 75 {
		t.Errorf("smallest = %d, want 75", nb.smallest())
	}

	// reinit empties the structure without clearing the pool
	nb.reinit()
	if nb.n != 0 || nb.smallest() != 255 || nb.largest() != 0 {
		t.Error("reinit did not reset the neighborhood")
	}
}

func TestPatternTables(t *testing.T) {
	// Joining two opposite frontier edges splits the complement.
	if pattern4[fUp|fDown] != 1 || pattern8[fUp|fDown] != 1 {
		t.Error("up|down pattern")
	}
	if pattern4[fLeft|fRight] != 1 || pattern8[fLeft|fRight] != 1 {
		t.Error("left|right pattern")
	}
	// Filling the last gap of a ring merges two complement pieces.
	if pattern4[fUp|fLeft|fDown|fRight] != -1 {
		t.Error("full cardinal pattern, 4-connected")
	}
	if pattern8[fUp|fLeft|fDown|fRight] != -1 {
		t.Error("full cardinal pattern, 8-connected")
	}
	// In 4-connectivity the 8-connected complement also splits along
	// diagonals.
	if pattern4[fUp|fLeft|fUpLeft] != 1 {
		t.Error("corner pattern, 4-connected")
	}
	if pattern8[fUp|fLeft] != 0 {
		t.Error("corner pattern, 8-connected")
	}
	// An isolated first pixel changes nothing.
	if pattern4[0] != 0 || pattern8[0] != 0 {
		t.Error("empty pattern")
	}
	// Boundary length changes by +4 for an isolated pixel, -4 for a
	// plugged hole.
	if patternLength[0] != 4 {
		t.Error("length of isolated pixel")
	}
	if patternLength[fUp|fLeft|fDown|fRight] != -4 {
		t.Error("length of plugged hole")
	}
}

func TestLocalExtrema(t *testing.T) {
	// 3x3 image with a strict minimum in the center
	bu := &bottomUpExtractor{w: 3, h: 3, work: []byte{
		5, 5, 5,
		5, 1, 5,
		5, 5, 5,
	}}
	if !bu.isLocalMin(1, 1, false) {
		t.Error("center not detected as minimum")
	}
	if bu.isLocalMax(1, 1, true) {
		t.Error("center detected as maximum")
	}
	// corners are flat in 4-connectivity but see the minimum diagonally
	if !bu.isLocalMax(0, 0, true) {
		t.Error("corner not a maximum in 8-connectivity")
	}
	if bu.isLocalMax(0, 0, false) {
		t.Error("corner is a maximum in 4-connectivity")
	}

	// constant image has no extrema
	bu2 := &bottomUpExtractor{w: 3, h: 1, work: []byte{7, 7, 7}}
	for x := range 3 {
		if bu2.isLocalMin(x, 0, false) || bu2.isLocalMax(x, 0, true) {
			t.Error("extremum in constant image")
		}
	}
}

func TestAreaFilters(t *testing.T) {
	tc := findCase(t, "nested") // chain with child areas 1000 and 200

	childAreas := func(tr *Tree) []int {
		var areas []int
		for id := 1; id < len(tr.Shapes); id++ {
			areas = append(areas, int(tr.Shapes[id].Area))
		}
		sort.Ints(areas)
		return areas
	}

	tree := buildCase(t, tc, BottomUp, &Options{MinArea: 500})
	if got := childAreas(tree); len(got) != 1 || got[0] != 1000 {
		t.Errorf("MinArea=500: child areas %v, want [1000]", got)
	}
	checkTreeInvariantsEx(t, tree, false)

	tree = buildCase(t, tc, BottomUp, &Options{MaxArea: 500})
	if got := childAreas(tree); len(got) != 1 || got[0] != 200 {
		t.Errorf("MaxArea=500: child areas %v, want [200]", got)
	}
	checkTreeInvariantsEx(t, tree, false)

	// MinArea > MaxArea extracts nothing.
	tree = buildCase(t, tc, BottomUp, &Options{MinArea: 500, MaxArea: 100})
	if len(tree.Shapes) != 1 {
		t.Errorf("MinArea > MaxArea: got %d shapes", len(tree.Shapes))
	}
}

// TestRootGrayRewrite pins down the documented behavior that a region
// meeting the border and growing past half the image rewrites the
// root's gray level.
func TestRootGrayRewrite(t *testing.T) {
	tc := findCase(t, "rectangle") // background 0 is more than half
	tree := buildCase(t, tc, BottomUp, nil)
	if tree.Shapes[0].Gray != 0 {
		t.Errorf("root gray = %d, want 0", tree.Shapes[0].Gray)
	}

	tc = findCase(t, "constant") // no extremum, root untouched
	tree = buildCase(t, tc, BottomUp, nil)
	if tree.Shapes[0].Gray != 255 {
		t.Errorf("root gray = %d, want 255", tree.Shapes[0].Gray)
	}
}

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

import "testing"

func TestTurn180(t *testing.T) {
	cases := []struct{ in, out dirEdgel }{
		{east, west},
		{west, east},
		{north, south},
		{south, north},
		{ne, sw},
		{sw, ne},
		{nw, se},
		{se, nw},
	}
	for _, c := range cases {
		if got := turn180(c.in); got != c.out {
			t.Errorf("turn180(%d) = %d, want %d", c.in, got, c.out)
		}
	}
}

func TestInverse(t *testing.T) {
	r := &Raster{Width: 4, Height: 3, Pix: make([]byte, 12)}

	e := edgel{pt: Point{1, 1}, dir: east}
	f := e
	if !f.inverse(r) {
		t.Fatal("interior edgel has no inverse")
	}
	if f.pt != (Point{1, 2}) || f.dir != west {
		t.Errorf("inverse = %v", f)
	}
	if !f.inverse(r) || f != e {
		t.Errorf("double inverse = %v, want %v", f, e)
	}

	// an image-frame edgel has no exterior
	g := edgel{pt: Point{0, 0}, dir: south}
	saved := g
	if g.inverse(r) {
		t.Error("frame edgel inverted")
	}
	if g != saved {
		t.Error("failed inverse modified the edgel")
	}
}

func TestOrigin(t *testing.T) {
	cases := []struct {
		dir  dirEdgel
		want Point
	}{
		{east, Point{2, 4}},
		{north, Point{3, 4}},
		{west, Point{3, 3}},
		{south, Point{2, 3}},
	}
	for _, c := range cases {
		e := edgel{pt: Point{2, 3}, dir: c.dir}
		if got := e.origin(); got != c.want {
			t.Errorf("origin(%d) = %v, want %v", c.dir, got, c.want)
		}
	}
}

// TestLevelLineClosed traces the level line of a small bright square
// and checks that the trace is closed, visits each boundary edge once,
// and never produces two diagonal edgels in a row.
func TestLevelLineClosed(t *testing.T) {
	const w, h = 8, 7
	pix := make([]byte, w*h)
	for y := 2; y < 5; y++ {
		for x := 3; x < 6; x++ {
			pix[y*w+x] = 200
		}
	}
	r := &Raster{Width: w, Height: h, Pix: pix}

	// start on the top edge of the square
	start := edgel{pt: Point{3, 2}, dir: west}
	cur := start
	var cardinal int
	prevDiagonal := false
	for n := 0; ; n++ {
		if n > 100 {
			t.Fatal("level line does not close")
		}
		if cur.dir >= diagonal {
			if prevDiagonal {
				t.Fatal("two diagonal edgels in a row")
			}
			prevDiagonal = true
		} else {
			prevDiagonal = false
			cardinal++
			if !compare(Sup, int(r.grayAt(cur.pt)), 0) {
				t.Errorf("interior pixel %v not in the shape", cur.pt)
			}
		}
		cur.next(r, Sup, 0)
		if cur == start {
			break
		}
	}
	// a 3x3 square has 12 boundary edges
	if cardinal != 12 {
		t.Errorf("traced %d cardinal edgels, want 12", cardinal)
	}
}

// TestLevelLineInf traces a dark square in 4-connectivity.
func TestLevelLineInf(t *testing.T) {
	const w, h = 8, 7
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = 255
	}
	for y := 2; y < 5; y++ {
		for x := 3; x < 6; x++ {
			pix[y*w+x] = 10
		}
	}
	r := &Raster{Width: w, Height: h, Pix: pix}

	start := edgel{pt: Point{3, 2}, dir: west}
	cur := start
	cardinal := 0
	for n := 0; ; n++ {
		if n > 100 {
			t.Fatal("level line does not close")
		}
		if cur.dir < diagonal {
			cardinal++
		}
		cur.next(r, Inf, 255)
		if cur == start {
			break
		}
	}
	if cardinal != 12 {
		t.Errorf("traced %d cardinal edgels, want 12", cardinal)
	}
}

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

package testcases

import (
	"image"
	"sort"

	"golang.org/x/image/vector"
)

var scenarioCases = makeScenarios()

func makeScenarios() []TestCase {
	var cases []TestCase

	// A constant image has the root as its only shape.
	cases = append(cases, TestCase{
		Name:   "constant",
		Width:  60,
		Height: 50,
		Pix:    constant(60, 50, 128),
		Shapes: 1,
	})

	// A bright rectangle on dark background: one sup child.
	{
		pix := constant(60, 65, 0)
		fillRect(pix, 60, 15, 17, 30, 30, 128)
		cases = append(cases, TestCase{
			Name: "rectangle", Width: 60, Height: 65, Pix: pix,
			Shapes:     2,
			ChildAreas: []int{30 * 30},
		})
	}

	// Two disjoint bright disks: two sup children of the root.
	{
		const w, h = 80, 55
		pix := constant(w, h, 0)
		a1 := paintDisk(pix, w, h, 25, 27, 17, 128)
		a2 := paintDisk(pix, w, h, 62, 27, 12.6, 200)
		areas := []int{a1, a2}
		sort.Sort(sort.Reverse(sort.IntSlice(areas)))
		cases = append(cases, TestCase{
			Name: "two_disks", Width: w, Height: h, Pix: pix,
			Shapes:     3,
			ChildAreas: areas,
		})
	}

	// An L-shaped region and a separate brighter rectangle.
	{
		pix := constant(60, 65, 0)
		fillRect(pix, 60, 10, 10, 20, 25, 128) // upright part of the L
		fillRect(pix, 60, 10, 35, 10, 20, 128) // foot of the L
		fillRect(pix, 60, 35, 40, 25, 20, 200)
		cases = append(cases, TestCase{
			Name: "l_shape", Width: 60, Height: 65, Pix: pix,
			Shapes:     3,
			ChildAreas: []int{20*25 + 10*20, 25 * 20},
		})
	}

	// Nested bright squares: a chain root -> s1 -> s2. s1's area
	// includes s2's pixels.
	{
		pix := constant(60, 50, 0)
		fillRect(pix, 60, 10, 12, 40, 25, 128)
		fillRect(pix, 60, 20, 19, 20, 10, 200)
		cases = append(cases, TestCase{
			Name: "nested", Width: 60, Height: 50, Pix: pix,
			Shapes:     3,
			ChildAreas: []int{40 * 25, 20 * 10},
		})
	}

	// Two bright squares sharing only a diagonal: as an 8-connected
	// sup shape they are a single child.
	{
		pix := constant(60, 50, 0)
		fillRect(pix, 60, 10, 10, 20, 20, 128)
		fillRect(pix, 60, 30, 30, 20, 20, 128)
		cases = append(cases, TestCase{
			Name: "diagonal_sup", Width: 60, Height: 50, Pix: pix,
			Shapes:     2,
			ChildAreas: []int{2 * 20 * 20},
		})
	}

	// The same geometry inverted: dark squares are 4-connected inf
	// shapes, so the diagonal does not join them.
	{
		pix := constant(60, 50, 255)
		fillRect(pix, 60, 10, 10, 20, 20, 127)
		fillRect(pix, 60, 30, 30, 20, 20, 127)
		cases = append(cases, TestCase{
			Name: "diagonal_inf", Width: 60, Height: 50, Pix: pix,
			Shapes:     3,
			ChildAreas: []int{20 * 20, 20 * 20},
		})
	}

	// Nested one-pixel frames: a depth-3 chain of alternating type.
	{
		pix := constant(60, 54, 0)
		fillRect(pix, 60, 5, 2, 50, 50, 128)
		fillRect(pix, 60, 6, 3, 48, 48, 0)
		fillRect(pix, 60, 7, 4, 46, 46, 128)
		cases = append(cases, TestCase{
			Name: "nested_frames", Width: 60, Height: 54, Pix: pix,
			Shapes:     4,
			ChildAreas: []int{50 * 50, 48 * 48, 46 * 46},
		})
	}

	// A single-pixel extremum.
	{
		pix := constant(60, 50, 100)
		pix[25*60+30] = 200
		cases = append(cases, TestCase{
			Name: "single_pixel", Width: 60, Height: 50, Pix: pix,
			Shapes:     2,
			ChildAreas: []int{1},
		})
	}

	return cases
}

// constant returns a w*h image filled with the value v.
func constant(w, h int, v byte) []byte {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = v
	}
	return pix
}

// fillRect paints the rectangle with top-left corner (x0, y0) and the
// given size.
func fillRect(pix []byte, stride, x0, y0, w, h int, v byte) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			pix[y*stride+x] = v
		}
	}
}

// paintDisk rasterises a disk with x/image/vector, binarises the
// coverage at one half, and paints the covered pixels with the value v.
// It returns the number of pixels painted.
func paintDisk(pix []byte, w, h int, cx, cy, r float64, v byte) int {
	// approximate the circle by four cubic Bézier arcs
	const k = 0.551915
	ras := vector.NewRasterizer(w, h)
	ras.MoveTo(float32(cx+r), float32(cy))
	ras.CubeTo(float32(cx+r), float32(cy+k*r), float32(cx+k*r), float32(cy+r), float32(cx), float32(cy+r))
	ras.CubeTo(float32(cx-k*r), float32(cy+r), float32(cx-r), float32(cy+k*r), float32(cx-r), float32(cy))
	ras.CubeTo(float32(cx-r), float32(cy-k*r), float32(cx-k*r), float32(cy-r), float32(cx), float32(cy-r))
	ras.CubeTo(float32(cx+k*r), float32(cy-r), float32(cx+r), float32(cy-k*r), float32(cx+r), float32(cy))
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	count := 0
	for i, a := range mask.Pix {
		if a >= 128 {
			pix[i] = v
			count++
		}
	}
	return count
}

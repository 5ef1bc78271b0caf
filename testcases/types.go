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

// Package testcases provides a catalog of grayscale images with known
// trees of shapes, used by the flst tests and tools.
package testcases

// TestCase is one image together with the expected outline of its tree
// of shapes.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // image width in pixels
	Height int    // image height in pixels
	Pix    []byte // row-major grayscale pixels

	// Shapes is the expected number of shapes, including the root.
	Shapes int

	// ChildAreas holds the expected areas of all non-root shapes, in
	// decreasing order. A shape's area includes its descendants.
	ChildAreas []int
}

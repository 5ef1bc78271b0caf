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
	"bytes"
	"fmt"
	"maps"
	"testing"
)

// noiseImage generates a deterministic pseudo-random image. A small
// palette keeps the level sets large enough to nest in interesting
// ways.
func noiseImage(w, h int, seed uint32) []byte {
	palette := [4]byte{0, 64, 128, 255}
	pix := make([]byte, w*h)
	state := seed
	for i := range pix {
		state = state*1664525 + 1013904223
		pix[i] = palette[state>>30]
	}
	return pix
}

// TestRandomImages cross-checks the extractors on pseudo-random images:
// the two top-down variants must agree exactly, reconstruct the input,
// and all three must satisfy the structural invariants.
func TestRandomImages(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 7}, {7, 1}, {5, 5}, {13, 11}, {16, 16}, {31, 9},
	}
	for _, size := range sizes {
		for seed := uint32(1); seed <= 5; seed++ {
			name := fmt.Sprintf("%dx%d_%d", size.w, size.h, seed)
			t.Run(name, func(t *testing.T) {
				pix := noiseImage(size.w, size.h, seed)
				r, err := NewRaster(pix, size.w, size.h)
				if err != nil {
					t.Fatal(err)
				}

				pre, err := New(r, TDPre, nil)
				if err != nil {
					t.Fatal(err)
				}
				post, err := New(r, TDPost, nil)
				if err != nil {
					t.Fatal(err)
				}
				bottom, err := New(r, BottomUp, nil)
				if err != nil {
					t.Fatal(err)
				}

				checkTreeInvariants(t, pre)
				checkTreeInvariants(t, post)
				checkTreeInvariantsEx(t, bottom, false)

				if !maps.Equal(treeDigest(pre, true), treeDigest(post, true)) {
					t.Error("TDPre and TDPost disagree")
				}
				if !bytes.Equal(pre.BuildImage(), pix) {
					t.Error("TDPre tree does not reconstruct the image")
				}
				if !bytes.Equal(post.BuildImage(), pix) {
					t.Error("TDPost tree does not reconstruct the image")
				}
			})
		}
	}
}

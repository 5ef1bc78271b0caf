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

// The frontier of the growing region is stored as one byte of direction
// bits per pixel. The four cardinal bits encode the micro-edges
// separating the pixel from its neighbors, oriented so that the region
// interior is on a fixed side; the four diagonal bits never appear in a
// stored frontier but are used in the local pattern byte to tell apart
// configurations where several pieces of the complement touch the pixel
// being added.
const (
	fUp        uint8 = 1 << 0
	fUpLeft    uint8 = 1 << 1
	fLeft      uint8 = 1 << 2
	fLeftDown  uint8 = 1 << 3
	fDown      uint8 = 1 << 4
	fDownRight uint8 = 1 << 5
	fRight     uint8 = 1 << 6
	fRightUp   uint8 = 1 << 7
)

// frontierPixel carries the frontier bits of one pixel, stamped with
// the exploration epoch in which they were last written. Entries from
// earlier regions are invisible without any bulk clearing.
type frontierPixel struct {
	epoch int
	dirs  uint8
}

// pattern4 and pattern8 give, for each local frontier pattern, the
// change in the number of connected components of the complement, the
// complement being taken in the opposite connectivity of the region
// (4-connected region, 8-connected complement, and vice versa).
// patternLength gives the change in boundary length.
var pattern4, pattern8, patternLength = makePatterns()

func makePatterns() (p4, p8, plen [256]int8) {
	const cardinal = fUp | fLeft | fDown | fRight

	// region in 4-connectivity, complement in 8-connectivity
	for i := range 256 {
		b := uint8(i)
		switch b & cardinal {
		case fUp | fLeft | fDown | fRight:
			p4[i] = -1
			for _, d := range [...]uint8{fUpLeft, fLeftDown, fDownRight, fRightUp} {
				if b&d != 0 {
					p4[i]++
				}
			}
		case fUp | fLeft | fDown:
			if b&fUpLeft != 0 {
				p4[i] = 1
			}
			if b&fLeftDown != 0 {
				p4[i]++
			}
		case fLeft | fDown | fRight:
			if b&fLeftDown != 0 {
				p4[i] = 1
			}
			if b&fDownRight != 0 {
				p4[i]++
			}
		case fDown | fRight | fUp:
			if b&fDownRight != 0 {
				p4[i] = 1
			}
			if b&fRightUp != 0 {
				p4[i]++
			}
		case fRight | fUp | fLeft:
			if b&fRightUp != 0 {
				p4[i] = 1
			}
			if b&fUpLeft != 0 {
				p4[i]++
			}
		case fUp | fDown:
			p4[i] = 1
		case fRight | fLeft:
			p4[i] = 1
		case fUp | fLeft:
			if b&fUpLeft != 0 {
				p4[i] = 1
			}
		case fLeft | fDown:
			if b&fLeftDown != 0 {
				p4[i] = 1
			}
		case fDown | fRight:
			if b&fDownRight != 0 {
				p4[i] = 1
			}
		case fRight | fUp:
			if b&fRightUp != 0 {
				p4[i] = 1
			}
		}
	}

	// region in 8-connectivity, complement in 4-connectivity
	for i := range 256 {
		b := uint8(i)
		switch b & cardinal {
		case fUp | fLeft | fDown | fRight:
			p8[i] = -1
		case fUp | fDown:
			p8[i] = 1
		case fRight | fLeft:
			p8[i] = 1
		case fLeft:
			if b&fDownRight != 0 {
				p8[i] = 1
			}
			if b&fRightUp != 0 {
				p8[i]++
			}
		case fDown:
			if b&fRightUp != 0 {
				p8[i] = 1
			}
			if b&fUpLeft != 0 {
				p8[i]++
			}
		case fRight:
			if b&fUpLeft != 0 {
				p8[i] = 1
			}
			if b&fLeftDown != 0 {
				p8[i]++
			}
		case fUp:
			if b&fLeftDown != 0 {
				p8[i] = 1
			}
			if b&fDownRight != 0 {
				p8[i]++
			}
		case fUp | fLeft:
			if b&fDownRight != 0 {
				p8[i] = 1
			}
		case fLeft | fDown:
			if b&fRightUp != 0 {
				p8[i] = 1
			}
		case fDown | fRight:
			if b&fUpLeft != 0 {
				p8[i] = 1
			}
		case fRight | fUp:
			if b&fLeftDown != 0 {
				p8[i] = 1
			}
		case 0:
			// pixels of the region only in diagonal directions
			p8[i] = -1
			for _, d := range [...]uint8{fUpLeft, fLeftDown, fDownRight, fRightUp} {
				if b&d != 0 {
					p8[i]++
				}
			}
			if p8[i] == -1 {
				// only for the first pixel of the region
				p8[i] = 0
			}
		}
	}

	for i := range 256 {
		plen[i] = 4
		for _, d := range [...]uint8{fUp, fLeft, fDown, fRight} {
			if uint8(i)&d != 0 {
				plen[i] -= 2
			}
		}
	}
	return p4, p8, plen
}

// addPoint4 adds the pixel (x, y) to a 4-connected region, updating the
// frontier and the number of connected components of the 8-connected
// complement.
func (bu *bottomUpExtractor) addPoint4(y, x int, nCC *int) {
	w, h := bu.w, bu.h
	idx := y*w + x
	fp := &bu.frontier[idx]
	var pattern uint8

	if bu.meetsBorder {
		if y == 0 {
			pattern |= fLeft
		}
		if x == 0 {
			pattern |= fDown
		}
	}
	if fp.epoch < bu.epoch {
		fp.epoch = bu.epoch
		fp.dirs = 0
		if x != 0 {
			fp.dirs |= fUp
		}
		if y != 0 {
			fp.dirs |= fRight
		}
	} else {
		pattern |= fp.dirs & (fLeft | fDown)
		if fp.dirs&fLeft != 0 {
			fp.dirs &^= fLeft
		} else if y != 0 {
			fp.dirs |= fRight
		}
		if fp.dirs&fDown != 0 {
			fp.dirs &^= fDown
		} else if x != 0 {
			fp.dirs |= fUp
		}
	}

	if x == w-1 {
		if bu.meetsBorder {
			pattern |= fUp
		}
	} else {
		fq := &bu.frontier[idx+1]
		if fq.epoch < bu.epoch {
			fq.epoch = bu.epoch
			fq.dirs = fDown
		} else {
			pattern |= fq.dirs & fUp
			if fq.dirs&fRight != 0 {
				pattern |= fUpLeft
			}
			if fq.dirs&fUp != 0 {
				fq.dirs &^= fUp
			} else {
				fq.dirs |= fDown
			}
		}
	}

	if y == h-1 {
		if bu.meetsBorder {
			pattern |= fRight
		}
	} else {
		fq := &bu.frontier[idx+w]
		if fq.epoch < bu.epoch {
			fq.epoch = bu.epoch
			fq.dirs = fLeft
		} else {
			pattern |= fq.dirs & fRight
			if fq.dirs&fUp != 0 {
				pattern |= fDownRight
			}
			if fq.dirs&fRight != 0 {
				fq.dirs &^= fRight
			} else {
				fq.dirs |= fLeft
			}
		}
	}

	// Diagonal pieces of the complement touching the new pixel.
	if x > 0 {
		fq := &bu.frontier[idx-1]
		if fq.epoch == bu.epoch && fq.dirs&fRight != 0 {
			pattern |= fLeftDown
		}
	}
	if y < h-1 && x < w-1 {
		fq := &bu.frontier[idx+w+1]
		if fq.epoch == bu.epoch && fq.dirs&fDown != 0 {
			pattern |= fRightUp
		}
	}
	*nCC += int(pattern4[pattern])

	bu.updateBorderLength(y, x, pattern)
}

// addPoint8 is the counterpart of addPoint4 for an 8-connected region
// with a 4-connected complement.
func (bu *bottomUpExtractor) addPoint8(y, x int, nCC *int) {
	w, h := bu.w, bu.h
	idx := y*w + x
	fp := &bu.frontier[idx]
	var pattern uint8

	if bu.meetsBorder {
		if y == 0 {
			pattern |= fLeft
		}
		if x == 0 {
			pattern |= fDown
		}
	}
	if fp.epoch < bu.epoch {
		fp.epoch = bu.epoch
		fp.dirs = 0
		if x != 0 {
			fp.dirs |= fUp
		}
		if y != 0 {
			fp.dirs |= fRight
		}
	} else {
		pattern |= fp.dirs & (fLeft | fDown)
		if fp.dirs&fLeft != 0 {
			fp.dirs &^= fLeft
		} else if y != 0 {
			fp.dirs |= fRight
		}
		if fp.dirs&fDown != 0 {
			fp.dirs &^= fDown
		} else if x != 0 {
			fp.dirs |= fUp
		}
	}

	if x == w-1 {
		if bu.meetsBorder {
			pattern |= fUp
		}
	} else {
		fq := &bu.frontier[idx+1]
		if fq.epoch < bu.epoch {
			fq.epoch = bu.epoch
			fq.dirs = fDown
		} else {
			pattern |= fq.dirs & fUp
			if fq.dirs&fLeft != 0 {
				pattern |= fUpLeft
			}
			if fq.dirs&fUp != 0 {
				fq.dirs &^= fUp
			} else {
				fq.dirs |= fDown
			}
		}
	}

	if y == h-1 {
		if bu.meetsBorder {
			pattern |= fRight
		}
	} else {
		fq := &bu.frontier[idx+w]
		if fq.epoch < bu.epoch {
			fq.epoch = bu.epoch
			fq.dirs = fLeft
		} else {
			pattern |= fq.dirs & fRight
			if fq.dirs&fDown != 0 {
				pattern |= fDownRight
			}
			if fq.dirs&fRight != 0 {
				fq.dirs &^= fRight
			} else {
				fq.dirs |= fLeft
			}
		}
	}

	if x > 0 {
		fq := &bu.frontier[idx-1]
		if fq.epoch == bu.epoch && fq.dirs&fLeft != 0 {
			pattern |= fLeftDown
		}
	}
	if y < h-1 && x < w-1 {
		fq := &bu.frontier[idx+w+1]
		if fq.epoch == bu.epoch && fq.dirs&fUp != 0 {
			pattern |= fRightUp
		}
	}
	*nCC += int(pattern8[pattern])

	bu.updateBorderLength(y, x, pattern)
}

// updateBorderLength maintains the running boundary length of the
// region, clipping contributions at the image border.
func (bu *bottomUpExtractor) updateBorderLength(y, x int, pattern uint8) {
	if x == 0 {
		bu.borderLength--
		pattern &^= fDown
	} else if x == bu.w-1 {
		bu.borderLength--
		pattern &^= fUp
	}
	if y == 0 {
		bu.borderLength--
		pattern &^= fLeft
	} else if y == bu.h-1 {
		bu.borderLength--
		pattern &^= fRight
	}
	bu.borderLength += int(patternLength[pattern])

	if x == 0 || x == bu.w-1 || y == 0 || y == bu.h-1 {
		bu.meetsBorder = true
	}
}

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

// compare reports whether a gray value v belongs to a level set of the
// given type at the given threshold. Membership is strict, so that the
// threshold itself is never part of the set.
func compare(t Type, v, level int) bool {
	if t == Inf {
		return v < level
	}
	return v > level
}

// connectivity returns the pixel connectivity used for level sets of
// type t. Inf shapes are 4-connected, Sup shapes 8-connected, so that
// complementary sets always use the opposite connectivity.
func connectivity(t Type) int {
	if t == Inf {
		return 4
	}
	return 8
}

// dirEdgel is the direction of an edgel. The four cardinal directions
// are stable states; the four diagonal values only occur in the middle
// of a turn at a corner and are resolved by the next call to next.
type dirEdgel uint8

const (
	east  dirEdgel = 0
	north dirEdgel = 1
	west  dirEdgel = 2
	south dirEdgel = 3

	diagonal dirEdgel = 4 // diagonal directions start here

	ne dirEdgel = 4
	nw dirEdgel = 5
	sw dirEdgel = 6
	se dirEdgel = 7
)

// turn180 rotates a direction by 180 degrees.
func turn180(dir dirEdgel) dirEdgel {
	if dir >= diagonal {
		dir -= 2
		if dir < diagonal {
			dir += diagonal
		}
	} else if dir < 2 {
		dir += 2
	} else {
		dir -= 2
	}
	return dir
}

// An edgel is a directed unit-length boundary element between two
// 4-adjacent pixels. pt is the interior pixel, lying to the left of the
// direction of travel.
type edgel struct {
	pt  Point
	dir dirEdgel
}

// exterior returns the pixel on the other side of the edgel.
// The second return value is false if that pixel lies outside the image.
func (e *edgel) exterior(r *Raster) (Point, bool) {
	ext := e.pt
	switch e.dir {
	case east:
		ext.Y++
		return ext, int(ext.Y) < r.Height
	case north:
		ext.X++
		return ext, int(ext.X) < r.Width
	case west:
		ext.Y--
		return ext, ext.Y >= 0
	case south:
		ext.X--
		return ext, ext.X >= 0
	case ne:
		ext.Y++
		ext.X++
		return ext, int(ext.Y) < r.Height && int(ext.X) < r.Width
	case nw:
		ext.X++
		ext.Y--
		return ext, int(ext.X) < r.Width && ext.Y >= 0
	case sw:
		ext.Y--
		ext.X--
		return ext, ext.Y >= 0 && ext.X >= 0
	case se:
		ext.X--
		ext.Y++
		return ext, ext.X >= 0 && int(ext.Y) < r.Height
	}
	panic("flst: invalid edgel direction")
}

// inverse swaps the interior and exterior sides of the edgel.
// It fails, leaving e unchanged, if the edgel lies on the image frame.
func (e *edgel) inverse(r *Raster) bool {
	ext, ok := e.exterior(r)
	if !ok {
		return false
	}
	e.pt = ext
	e.dir = turn180(e.dir)
	return true
}

// origin returns the coordinates of the origin corner of the edgel.
// Only valid for cardinal directions.
func (e *edgel) origin() Point {
	p := e.pt
	if e.dir == east || e.dir == north {
		p.Y++
	}
	if e.dir == north || e.dir == west {
		p.X++
	}
	return p
}

// goStraight advances the interior pixel one step along the current
// direction. It returns false if this leaves the image.
// Only valid for cardinal directions.
func (e *edgel) goStraight(r *Raster) bool {
	switch e.dir {
	case east:
		e.pt.X++
		return int(e.pt.X) < r.Width
	case north:
		e.pt.Y--
		return e.pt.Y >= 0
	case west:
		e.pt.X--
		return e.pt.X >= 0
	case south:
		e.pt.Y++
		return int(e.pt.Y) < r.Height
	}
	panic("flst: invalid edgel direction")
}

// turnLeft begins a left turn. In 4-connectivity the direction rotates
// by 90 degrees immediately; in 8-connectivity it becomes the
// corresponding diagonal and the turn completes in finishTurn.
func (e *edgel) turnLeft(connect int) {
	if connect == 8 {
		e.dir += diagonal
	} else {
		e.dir++
		if e.dir == diagonal {
			e.dir = 0
		}
	}
}

// turnRight begins a right turn. Here the roles of the connectivities
// are swapped with respect to turnLeft: in 8-connectivity the direction
// rotates by 90 degrees immediately; in 4-connectivity it becomes the
// corresponding diagonal and finishTurn completes the turn and steps
// forward.
func (e *edgel) turnRight(connect int) {
	if connect == 8 {
		if e.dir == 0 {
			e.dir = diagonal
		}
		e.dir--
	} else {
		e.dir += diagonal - 1
		if e.dir < diagonal {
			e.dir += diagonal
		}
	}
}

// finishTurn completes a turn started by turnLeft or turnRight.
func (e *edgel) finishTurn(r *Raster, connect int) {
	e.dir -= diagonal
	if connect == 4 {
		e.goStraight(r)
	} else {
		e.dir++
		if e.dir == diagonal {
			e.dir = 0
		}
	}
}

// next advances the edgel one step along the level line of a shape of
// the given type at the given threshold. Starting from any boundary
// edgel of a shape, repeated calls trace the complete level line and
// return to the starting edgel.
func (e *edgel) next(r *Raster, t Type, level int) {
	connect := connectivity(t)
	if e.dir >= diagonal {
		e.finishTurn(r, connect)
		return
	}
	left, right := *e, *e
	leftIn := left.goStraight(r)
	rightIn := false
	if leftIn {
		leftIn = compare(t, int(r.grayAt(left.pt)), level)
		var ext Point
		ext, rightIn = left.exterior(r)
		if rightIn {
			right.pt = ext
			rightIn = compare(t, int(r.grayAt(ext)), level)
		}
	}
	switch {
	case leftIn && !rightIn: // go straight
		*e = left
	case !leftIn && (!rightIn || connect == 4):
		e.turnLeft(connect)
	default:
		if connect == 4 {
			*e = left
		} else {
			*e = right
		}
		e.turnRight(connect)
	}
}

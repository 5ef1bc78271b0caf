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
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Point is a pixel coordinate in the image plane.
// Coordinates are limited to 16 bits so that the pixel arena of a large
// image stays compact.
type Point struct {
	X, Y int16
}

// Raster is a read-only view of an 8-bit grayscale image.
// Pixels are stored in row-major order with the origin in the top-left
// corner, so that Pix[y*Width+x] is the pixel at (x, y).
type Raster struct {
	Width, Height int
	Pix           []byte
}

// ErrInvalidRaster is returned when the image dimensions are not usable.
var ErrInvalidRaster = errors.New("flst: invalid raster dimensions")

// NewRaster wraps pix as a Raster. The slice is borrowed, not copied.
// Dimensions must be positive, fit into 16-bit coordinates, and match
// the length of pix.
func NewRaster(pix []byte, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt16 || height > math.MaxInt16 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidRaster, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d",
			ErrInvalidRaster, len(pix), width, height)
	}
	return &Raster{Width: width, Height: height, Pix: pix}, nil
}

// FromImage converts an arbitrary image into a grayscale Raster.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Raster{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// Gray returns the pixel value at (x, y). The coordinates must be
// inside the image.
func (r *Raster) Gray(x, y int) byte {
	return r.Pix[y*r.Width+x]
}

func (r *Raster) grayAt(p Point) byte {
	return r.Pix[int(p.Y)*r.Width+int(p.X)]
}

func (r *Raster) index(p Point) int {
	return int(p.Y)*r.Width + int(p.X)
}

// Package raster provides integer scanline rasterization for axis-aligned
// rectangles and filled circles.
//
// The rasterizers never touch pixel memory themselves. They clip the shape
// against a width×height target and report covered pixels as horizontal
// spans through a SpanFunc, which keeps this package free of any dependency
// on the canvas type (avoids import cycle).
package raster

import "math/bits"

// MaxRadius is the largest radius FillCircle accepts. The squared distance
// test must fit in an int: 2^30 on 64-bit platforms, 2^14 on 32-bit ones.
const MaxRadius = 1 << (bits.UintSize/2 - 2)

// Rect is an inclusive, axis-aligned pixel rectangle.
//
// A Rect produced by Normalize always has X1 <= X2 and Y1 <= Y2 before
// clamping. After clamping a shape that lies entirely off the target the
// bounds may cross, in which case the rectangle covers no pixels.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.X1 > r.X2 || r.Y1 > r.Y2
}

// Dx returns the number of columns covered by r.
func (r Rect) Dx() int {
	if r.X1 > r.X2 {
		return 0
	}
	return r.X2 - r.X1 + 1
}

// Dy returns the number of rows covered by r.
func (r Rect) Dy() int {
	if r.Y1 > r.Y2 {
		return 0
	}
	return r.Y2 - r.Y1 + 1
}

// SpanFunc receives one run of covered pixels on row y, from x1 to x2
// inclusive. Coordinates are always inside the target.
type SpanFunc func(y, x1, x2 int)

// Normalize converts an origin plus signed size into a clamped inclusive
// rectangle on a width×height target.
//
// The rectangle spans exactly |w| columns and |h| rows starting at (x, y)
// and extending in the direction given by the sign of w and h. The result
// is then clamped to [0, width-1]×[0, height-1]. Normalize returns false
// when w or h is zero.
func Normalize(width, height, x, y, w, h int) (Rect, bool) {
	if w == 0 || h == 0 {
		return Rect{}, false
	}

	x1, y1 := x, y
	x2 := x1 + sign(w)*(abs(w)-1)
	y2 := y1 + sign(h)*(abs(h)-1)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, width-1)
	y2 = min(y2, height-1)

	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
}

// FillRect reports every pixel of the w×h rectangle anchored at (x, y),
// clipped to the target, one span per row.
func FillRect(width, height, x, y, w, h int, emit SpanFunc) {
	r, ok := Normalize(width, height, x, y, w, h)
	if !ok || r.Empty() {
		return
	}
	for row := r.Y1; row <= r.Y2; row++ {
		emit(row, r.X1, r.X2)
	}
}

// FillCircle reports every pixel of the closed disk of the given radius
// whose bounding box is the 2r×2r square anchored at (x, y).
//
// A pixel (px, py) is covered when dx*dx + dy*dy <= radius*radius, with
// dx = px-x-radius and dy = py-y-radius. A radius <= 0 or greater than
// MaxRadius covers nothing.
func FillCircle(width, height, x, y, radius int, emit SpanFunc) {
	if radius <= 0 || radius > MaxRadius {
		return
	}
	d := radius + radius
	r, ok := Normalize(width, height, x, y, d, d)
	if !ok || r.Empty() {
		return
	}

	rr := radius * radius
	for row := r.Y1; row <= r.Y2; row++ {
		dy := row - y - radius
		start := -1
		for col := r.X1; col <= r.X2; col++ {
			dx := col - x - radius
			if dx*dx+dy*dy <= rr {
				if start < 0 {
					start = col
				}
				continue
			}
			if start >= 0 {
				emit(row, start, col-1)
				start = -1
			}
		}
		if start >= 0 {
			emit(row, start, r.X2)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

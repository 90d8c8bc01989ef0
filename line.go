package overlay

import (
	"image"
	"math/bits"
)

// FastLine draws the segment from (x1, y1) to (x2, y2), both ends included,
// without per-pixel bounds checks. If either endpoint lies outside the
// surface, nothing is drawn at all; the segment is not clipped.
func (s *Surface) FastLine(x1, y1, x2, y2 int, c Color) {
	if !s.inBounds(x1, y1) || !s.inBounds(x2, y2) {
		return
	}
	if x1 == x2 {
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			s.rawset(x1, y, c)
		}
		return
	}
	// Every pixel the stepper visits lies between the two endpoints, so the
	// endpoint test above covers all of them.
	stepLine(x1, y1, x2, y2, s.Bounds(), func(x, y int) { s.rawset(x, y, c) })
}

// SafeLine draws the segment from (x1, y1) to (x2, y2), both ends included,
// clipping each pixel to the surface. It rasterizes exactly like FastLine, so
// the in-bounds part of a segment is identical for both.
//
// Only the part of the segment over the surface is walked, so the cost does
// not depend on how far the endpoints lie outside it.
func (s *Surface) SafeLine(x1, y1, x2, y2 int, c Color) {
	if x1 == x2 {
		if x1 < 0 || x1 >= s.width {
			return
		}
		top := s.boundTop(min(y1, y2))
		bottom := s.boundBottom(max(y1, y2))
		for y := top; y <= bottom; y++ {
			s.rawset(x1, y, c)
		}
		return
	}
	stepLine(x1, y1, x2, y2, s.Bounds(), func(x, y int) { s.SetPixel(x, y, c) })
}

// stepLine walks a non-vertical segment as y = f(x) and calls plot once for
// every pixel of it that lies inside clip.
//
// Starting at the left end, the error term grows by |dy/dx| per column, and
// each time it reaches 1/2 y moves one row toward y2 and the error drops by 1.
// A column holds the rows from where the walk enters it up to, but not
// including, the row it leaves on, so steep segments stay connected. The last
// column holds only the end pixel.
//
// Each pixel is plotted once. A y step does not re-plot the pixel it leaves,
// so non-overwriting modes composite every pixel a single time.
//
// The row at each column is computed in closed form with the error kept in
// units of 1/(2*dx), so the walk is exact and columns and rows outside clip
// are never visited. Coordinates must lie within ±2^61.
func stepLine(x1, y1, x2, y2 int, clip image.Rectangle, plot func(x, y int)) {
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	dx := uint64(x2) - uint64(x1)
	dy := uint64(y2) - uint64(y1)
	sign := 1
	if y2 < y1 {
		sign = -1
		dy = uint64(y1) - uint64(y2)
	}

	// row returns y after k columns have been walked:
	// y1 + sign*floor((2*dy*k + dx) / (2*dx)).
	row := func(k uint64) int {
		hi, lo := bits.Mul64(2*dy, k)
		var carry uint64
		lo, carry = bits.Add64(lo, dx, 0)
		n, _ := bits.Div64(hi+carry, lo, 2*dx)
		if sign < 0 {
			return y1 - int(n)
		}
		return y1 + int(n)
	}

	first := max(x1, clip.Min.X)
	last := min(x2, clip.Max.X-1)
	if first > last {
		return
	}
	k := uint64(first) - uint64(x1)
	y := row(k)
	for x := first; x <= last; x++ {
		next, end := y2, y2
		if x < x2 {
			next = row(k + 1)
			end = y
			if next != y {
				end = next - sign
			}
		}
		top := max(min(y, end), clip.Min.Y)
		bottom := min(max(y, end), clip.Max.Y-1)
		for yy := top; yy <= bottom; yy++ {
			plot(x, yy)
		}
		y = next
		k++
	}
}

package overlay

// The bound helpers pull a coordinate in from one edge only. A span
// [boundLeft(a), boundRight(b)] is empty (left > right) when the original
// span misses the surface, so loops over it draw nothing.

func (s *Surface) boundLeft(x int) int {
	return max(x, 0)
}

func (s *Surface) boundRight(x int) int {
	return min(x, s.width-1)
}

func (s *Surface) boundTop(y int) int {
	return max(y, 0)
}

func (s *Surface) boundBottom(y int) int {
	return min(y, s.height-1)
}

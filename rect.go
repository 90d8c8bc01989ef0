package overlay

// DrawRect draws the outline of the w×h rectangle whose top-left pixel is
// (x, y), composited with c. The rectangle covers columns x..x+w-1 and rows
// y..y+h-1; the interior is untouched.
//
// Each edge is drawn only if its row or column lies inside the surface, and is
// clipped along its length. Corner pixels belong to the horizontal edges, so no
// pixel is composited twice.
func (s *Surface) DrawRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x2 := x + w - 1
	y2 := y + h - 1

	xl := s.boundLeft(x)
	xr := s.boundRight(x2)

	// horizontal edges
	if y >= 0 && y < s.height {
		for xx := xl; xx <= xr; xx++ {
			s.rawset(xx, y, c)
		}
	}
	if y2 != y && y2 >= 0 && y2 < s.height {
		for xx := xl; xx <= xr; xx++ {
			s.rawset(xx, y2, c)
		}
	}

	// vertical edges, between the horizontal ones
	yt := s.boundTop(y + 1)
	yb := s.boundBottom(y2 - 1)
	if x >= 0 && x < s.width {
		for yy := yt; yy <= yb; yy++ {
			s.rawset(x, yy, c)
		}
	}
	if x2 != x && x2 >= 0 && x2 < s.width {
		for yy := yt; yy <= yb; yy++ {
			s.rawset(x2, yy, c)
		}
	}
}

// FillRect draws the outline of the rectangle with fg, then fills the pixels
// strictly inside the outline with bg. The fill is clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, fg, bg Color) {
	s.DrawRect(x, y, w, h, fg)
	if w <= 2 || h <= 2 {
		return
	}

	x1 := s.boundLeft(x + 1)
	x2 := s.boundRight(x + w - 2)
	y1 := s.boundTop(y + 1)
	y2 := s.boundBottom(y + h - 2)
	for yy := y1; yy <= y2; yy++ {
		for xx := x1; xx <= x2; xx++ {
			s.rawset(xx, yy, bg)
		}
	}
}

package overlay

import (
	"image"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// glyphThreshold is the mask coverage (16-bit) at which a glyph pixel is
// drawn. Text is not anti-aliased: a pixel is either composited or skipped.
const glyphThreshold = 0x8000

// DrawText draws str with its top-left corner at (x, y), compositing every
// covered pixel with c through the active blend mode. A '\n' starts a new
// line. Fullwidth forms are folded to their narrow equivalents first so that
// bitmap faces covering ASCII can still render them. Pixels outside the
// surface are skipped.
//
// It returns the width in pixels of the widest line.
func (s *Surface) DrawText(x, y int, str string, c Color) int {
	m := s.face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := m.Height.Ceil()

	str = width.Narrow.String(str)

	widest := 0
	dot := fixed.P(x, y+ascent)
	prev := rune(-1)
	for _, r := range str {
		if r == '\n' {
			widest = max(widest, (dot.X - fixed.I(x)).Ceil())
			dot = fixed.P(x, dot.Y.Round()+lineHeight)
			prev = -1
			continue
		}
		if prev >= 0 {
			dot.X += s.face.Kern(prev, r)
		}
		prev = r

		dr, mask, maskp, advance, ok := s.face.Glyph(dot, r)
		if !ok {
			if adv, ok := s.face.GlyphAdvance('?'); ok {
				dot.X += adv
			}
			continue
		}
		s.drawMask(dr, mask, maskp, c)
		dot.X += advance
	}
	return max(widest, (dot.X - fixed.I(x)).Ceil())
}

// TextSize returns the width of the widest line and the total height of str
// as DrawText would render it.
func (s *Surface) TextSize(str string) (w, h int) {
	m := s.face.Metrics()
	str = width.Narrow.String(str)

	lines := 1
	var adv fixed.Int26_6
	prev := rune(-1)
	for _, r := range str {
		if r == '\n' {
			w = max(w, adv.Ceil())
			adv = 0
			prev = -1
			lines++
			continue
		}
		if prev >= 0 {
			adv += s.face.Kern(prev, r)
		}
		prev = r
		a, ok := s.face.GlyphAdvance(r)
		if !ok {
			a, _ = s.face.GlyphAdvance('?')
		}
		adv += a
	}
	return max(w, adv.Ceil()), lines * m.Height.Ceil()
}

// drawMask composites c wherever mask coverage reaches glyphThreshold.
// dr is clipped to the surface before the walk.
func (s *Surface) drawMask(dr image.Rectangle, mask image.Image, maskp image.Point, c Color) {
	clip := dr.Intersect(s.Bounds())
	for yy := clip.Min.Y; yy < clip.Max.Y; yy++ {
		for xx := clip.Min.X; xx < clip.Max.X; xx++ {
			_, _, _, a := mask.At(maskp.X+xx-dr.Min.X, maskp.Y+yy-dr.Min.Y).RGBA()
			if a >= glyphThreshold {
				s.rawset(xx, yy, c)
			}
		}
	}
}

package video

import "fmt"

// Blit converts the cropped window of f into dst as packed 0xAARRGGBB pixels:
// for every source index i, dst receives colors[f.Palette[i]&0x1FF]. Rows are
// written back to back with no padding, so dst must hold w*h pixels where
// (w, h) is crop.Size(f). Negative crop values are treated as zero.
//
// It returns the number of pixels written.
func Blit(dst []uint32, f *Frame, colors *[PaletteSize]uint32, crop Crop) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	w, h := crop.Size(f)
	if w == 0 {
		return 0, nil
	}
	if len(dst) < w*h {
		return 0, fmt.Errorf("%w: have %d pixels, need %d", ErrShortBuffer, len(dst), w*h)
	}

	lut := f.Palette
	src := max(crop.Top, 0)*f.Pitch + max(crop.Left, 0)
	n := 0
	for y := 0; y < h; y++ {
		row := f.Pixels[src : src+w]
		out := dst[n : n+w]
		for i, idx := range row {
			out[i] = colors[lut[idx]&(PaletteSize-1)]
		}
		n += w
		src += f.Pitch
	}
	return n, nil
}

package video

import "context"

// NES output geometry.
const (
	NESWidth  = 256
	NESHeight = 240
)

// TestPattern is a Source that produces scrolling palette bars. It stands in
// for the emulator when no ROM is loaded.
type TestPattern struct {
	frame Frame
	count uint64
}

// NewTestPattern returns a pattern source producing width×height frames.
func NewTestPattern(width, height int) *TestPattern {
	width, height = max(width, 0), max(height, 0)
	p := &TestPattern{
		frame: Frame{
			Width:   width,
			Height:  height,
			Pitch:   width,
			Pixels:  make([]byte, width*height),
			Palette: make([]uint16, 256),
		},
	}
	for i := range p.frame.Palette {
		p.frame.Palette[i] = uint16(i & 0x3F)
	}
	return p
}

// NextFrame renders the next frame. The returned Frame is reused by the next
// call.
func (p *TestPattern) NextFrame(ctx context.Context) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := &p.frame
	shift := int(p.count)
	for y := 0; y < f.Height; y++ {
		row := f.Pixels[y*f.Pitch : y*f.Pitch+f.Width]
		band := (y * 4 / max(f.Height, 1)) << 4
		for x := range row {
			row[x] = byte(band | ((x+shift)/16)%13)
		}
	}

	// cycle the emphasis bits once per second at 60 fps
	emphasis := uint16((p.count/60)%8) << 6
	for i := range f.Palette {
		f.Palette[i] = uint16(i&0x3F) | emphasis
	}
	p.count++
	return f, nil
}

// Frames returns the number of frames produced so far.
func (p *TestPattern) Frames() uint64 {
	return p.count
}

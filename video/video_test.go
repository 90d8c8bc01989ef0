package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFrame builds a frame whose pixel at (x, y) is index x+y*w (mod 256),
// with padding bytes set to 0xFF so reading them would show.
func newFrame(w, h, pitch int) *Frame {
	f := &Frame{Width: w, Height: h, Pitch: pitch, Pixels: make([]byte, pitch*h), Palette: make([]uint16, 256)}
	for y := 0; y < h; y++ {
		for x := 0; x < pitch; x++ {
			v := byte(0xFF)
			if x < w {
				v = byte(x + y*w)
			}
			f.Pixels[y*pitch+x] = v
		}
	}
	for i := range f.Palette {
		f.Palette[i] = uint16(i)
	}
	return f
}

// identityColors maps slot s to 0xFF000000|s so lookups are easy to check.
func identityColors() *[PaletteSize]uint32 {
	var c [PaletteSize]uint32
	for i := range c {
		c[i] = 0xFF000000 | uint32(i)
	}
	return &c
}

func TestMasterPalette(t *testing.T) {
	for slot, c := range MasterPalette {
		assert.Equal(t, uint32(0xFF), c>>24, "slot %d must be opaque", slot)
	}
	assert.Equal(t, uint32(0xFF545454), MasterPalette[0x00])
	assert.Equal(t, uint32(0xFFECEEEC), MasterPalette[0x20])
	assert.Equal(t, uint32(0xFF000000), MasterPalette[0x0F])

	// red emphasis keeps red and darkens the rest
	base, emph := MasterPalette[0x20], MasterPalette[0x20|EmphasisRed]
	assert.Equal(t, base>>16&0xFF, emph>>16&0xFF)
	assert.Less(t, emph>>8&0xFF, base>>8&0xFF)
	assert.Less(t, emph&0xFF, base&0xFF)

	// forced-black columns ignore emphasis
	assert.Equal(t, MasterPalette[0x0E], MasterPalette[0x0E|EmphasisRed|EmphasisBlue])
	assert.Equal(t, MasterPalette[0x1E], MasterPalette[0x1E|EmphasisGreen])
}

func TestBlitNoCrop(t *testing.T) {
	f := newFrame(8, 4, 8)
	colors := identityColors()
	dst := make([]uint32, 8*4)

	n, err := Blit(dst, f, colors, Crop{})
	require.NoError(t, err)
	require.Equal(t, 32, n)
	for i, c := range dst {
		assert.Equal(t, colors[f.Palette[f.Pixels[i]]], c, "pixel %d", i)
	}
}

func TestBlitPitchAndLUT(t *testing.T) {
	f := newFrame(4, 3, 7)
	for i := range f.Palette {
		f.Palette[i] = uint16(i) + 0x100
	}
	dst := make([]uint32, 12)

	n, err := Blit(dst, f, identityColors(), Crop{})
	require.NoError(t, err)
	require.Equal(t, 12, n)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := 0xFF000000 | uint32(x+y*4) + 0x100
			assert.Equal(t, want, dst[y*4+x], "pixel (%d, %d)", x, y)
		}
	}
}

func TestBlitCrop(t *testing.T) {
	f := newFrame(8, 6, 10)
	crop := Crop{Left: 1, Top: 2, Right: 3, Bottom: 1}
	w, h := crop.Size(f)
	require.Equal(t, 4, w)
	require.Equal(t, 3, h)

	dst := make([]uint32, w*h)
	n, err := Blit(dst, f, identityColors(), crop)
	require.NoError(t, err)
	require.Equal(t, w*h, n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x+crop.Left, y+crop.Top
			want := 0xFF000000 | uint32(byte(sx+sy*8))
			assert.Equal(t, want, dst[y*w+x], "pixel (%d, %d)", x, y)
		}
	}
}

func TestBlitCropEverything(t *testing.T) {
	f := newFrame(4, 4, 4)
	n, err := Blit(nil, f, identityColors(), Crop{Left: 2, Right: 2})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Blit(nil, f, identityColors(), Crop{Top: 5})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBlitErrors(t *testing.T) {
	colors := identityColors()

	_, err := Blit(make([]uint32, 3), newFrame(2, 2, 2), colors, Crop{})
	assert.ErrorIs(t, err, ErrShortBuffer)

	short := newFrame(4, 4, 4)
	short.Pixels = short.Pixels[:10]
	_, err = Blit(make([]uint32, 16), short, colors, Crop{})
	assert.ErrorIs(t, err, ErrBadFrame)

	noLUT := newFrame(2, 2, 2)
	noLUT.Palette = noLUT.Palette[:16]
	_, err = Blit(make([]uint32, 4), noLUT, colors, Crop{})
	assert.ErrorIs(t, err, ErrBadFrame)

	_, err = Blit(make([]uint32, 4), &Frame{Width: 4, Height: 1, Pitch: 2, Palette: make([]uint16, 256)}, colors, Crop{})
	assert.ErrorIs(t, err, ErrBadFrame)

	_, err = Blit(nil, nil, colors, Crop{})
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestBlitMasksSlot(t *testing.T) {
	f := newFrame(1, 1, 1)
	f.Palette[0] = 0xFFFF
	dst := make([]uint32, 1)
	_, err := Blit(dst, f, identityColors(), Crop{})
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF000000|0x1FF), dst[0])
}

func TestTestPattern(t *testing.T) {
	p := NewTestPattern(NESWidth, NESHeight)
	ctx := context.Background()

	f, err := p.NextFrame(ctx)
	require.NoError(t, err)
	require.NoError(t, f.Validate())
	assert.Equal(t, NESWidth, f.Width)
	assert.Equal(t, NESHeight, f.Height)
	assert.Equal(t, uint64(1), p.Frames())

	first := append([]byte(nil), f.Pixels...)
	for i := 0; i < 16; i++ {
		_, err = p.NextFrame(ctx)
		require.NoError(t, err)
	}
	assert.NotEqual(t, first, f.Pixels, "pattern should scroll")

	dst := make([]uint32, NESWidth*NESHeight)
	n, err := Blit(dst, f, &MasterPalette, Crop{})
	require.NoError(t, err)
	assert.Equal(t, len(dst), n)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.NextFrame(cctx)
	assert.ErrorIs(t, err, context.Canceled)
}

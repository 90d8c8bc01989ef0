// Package display presents emulator video with an overlay surface on top.
//
// The video frame is drawn first and the overlay is composited over it with
// straight alpha. RunWindow does this on screen with ebiten; RunHeadless runs
// the same frame loop without a window and can save the final composite.
package display

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hqnes/overlay"
	"github.com/hqnes/overlay/video"
)

// Compositor holds the converted video frame and the composite of the
// overlay on top of it.
type Compositor struct {
	crop   video.Crop
	colors *[video.PaletteSize]uint32

	width  int
	height int
	argb   []uint32 // video, 0xAARRGGBB
	rgba   []byte   // video, R, G, B, A bytes
	out    *image.NRGBA
}

// NewCompositor returns a compositor that converts frames through the
// master palette after removing crop from each edge.
func NewCompositor(crop video.Crop) *Compositor {
	return &Compositor{crop: crop, colors: &video.MasterPalette}
}

// Size returns the size of the last converted frame.
func (c *Compositor) Size() (w, h int) {
	return c.width, c.height
}

// Update converts f into the compositor's video buffer. Buffers are
// reallocated when the cropped frame size changes.
func (c *Compositor) Update(f *video.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	w, h := c.crop.Size(f)
	if w != c.width || h != c.height {
		c.width, c.height = w, h
		c.argb = make([]uint32, w*h)
		c.rgba = make([]byte, w*h*4)
		c.out = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	if _, err := video.Blit(c.argb, f, c.colors, c.crop); err != nil {
		return err
	}
	for i, p := range c.argb {
		j := i * 4
		c.rgba[j+0] = byte(p >> 16)
		c.rgba[j+1] = byte(p >> 8)
		c.rgba[j+2] = byte(p)
		c.rgba[j+3] = byte(p >> 24)
	}
	return nil
}

// VideoPixels returns the last converted frame as R, G, B, A bytes.
// The slice is reused by the next Update.
func (c *Compositor) VideoPixels() []byte {
	return c.rgba
}

// Composite draws ov over the video frame and returns the result. The
// overlay is anchored at the top-left corner; parts of it outside the frame
// are ignored. The returned image is reused by the next call.
//
// The overlay's stored alpha is used as-is with standard source-over, which
// is independent of the surface's own blend mode.
func (c *Compositor) Composite(ov *overlay.Surface) *image.NRGBA {
	if c.out == nil {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	copy(c.out.Pix, c.rgba)
	if ov == nil {
		return c.out
	}

	src := ov.Pixels()
	w := min(c.width, ov.Width())
	h := min(c.height, ov.Height())
	for y := 0; y < h; y++ {
		so := y * ov.Width() * 4
		do := y * c.out.Stride
		for x := 0; x < w; x++ {
			s := src[so+x*4 : so+x*4+4 : so+x*4+4]
			d := c.out.Pix[do+x*4 : do+x*4+4 : do+x*4+4]
			over(d, s)
		}
	}
	return c.out
}

// SavePNG writes the composite of ov over the current frame to path.
func (c *Compositor) SavePNG(path string, ov *overlay.Surface) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("display: create snapshot: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, c.Composite(ov)); err != nil {
		return fmt.Errorf("display: encode snapshot: %w", err)
	}
	return nil
}

// over composites straight-alpha src onto dst in place.
// Formula: (S*Sa + D*(255-Sa)) / 255, alpha (Sa*255 + Da*(255-Sa)) / 255
func over(dst, src []byte) {
	sa := uint32(src[3])
	if sa == 0 {
		return
	}
	inv := 255 - sa
	dst[0] = byte((uint32(src[0])*sa + uint32(dst[0])*inv) / 255)
	dst[1] = byte((uint32(src[1])*sa + uint32(dst[1])*inv) / 255)
	dst[2] = byte((uint32(src[2])*sa + uint32(dst[2])*inv) / 255)
	dst[3] = byte((sa*255 + uint32(dst[3])*inv) / 255)
}

// Premultiply converts straight-alpha RGBA bytes in src to premultiplied
// RGBA in dst, as GPU textures expect. dst and src may be the same slice;
// at most min(len(dst), len(src)) bytes are converted.
func Premultiply(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		a := uint32(src[i+3])
		dst[i+0] = byte(uint32(src[i+0]) * a / 255)
		dst[i+1] = byte(uint32(src[i+1]) * a / 255)
		dst[i+2] = byte(uint32(src[i+2]) * a / 255)
		dst[i+3] = byte(a)
	}
}

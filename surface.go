package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/hqnes/overlay/internal/blend"
)

// bytesPerPixel is the size of one Color in the buffer (R, G, B, A).
const bytesPerPixel = 4

// Surface is a fixed-size software pixel buffer that composites every write
// through its active blend mode.
//
// A Surface is not safe for concurrent use. Its owner (usually the
// presentation loop) must serialize drawing and reading.
type Surface struct {
	width  int
	height int
	pix    []uint8 // row-major R, G, B, A
	mode   BlendMode
	face   font.Face
}

// NewSurface creates a surface of the given size. Every pixel starts as
// transparent black and the blend mode is BlendBlend unless an option
// overrides it. Negative dimensions are treated as zero.
func NewSurface(width, height int, opts ...SurfaceOption) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.face == nil {
		o.face = basicfont.Face7x13
	}

	width = max(width, 0)
	height = max(height, 0)
	s := &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*bytesPerPixel),
		mode:   o.mode,
		face:   o.face,
	}
	Logger().Debug("overlay: surface created", "width", width, "height", height, "mode", s.mode)
	return s
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Pixels returns the raw pixel buffer, 4 bytes per pixel in R, G, B, A order,
// rows packed without padding. The slice aliases the surface.
func (s *Surface) Pixels() []uint8 {
	return s.pix
}

// DataSize returns the size of the pixel buffer in bytes.
func (s *Surface) DataSize() int {
	return len(s.pix)
}

// SetBlendMode selects the rule used by every subsequent write.
// Unknown modes are ignored and the current mode is kept.
func (s *Surface) SetBlendMode(m BlendMode) {
	if !m.Valid() {
		Logger().Debug("overlay: blend mode ignored", "mode", m, "current", s.mode)
		return
	}
	s.mode = m
}

// BlendMode returns the active blend mode.
func (s *Surface) BlendMode() BlendMode {
	return s.mode
}

// inBounds reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// rawset composites c onto the pixel at (x, y).
// The caller must have established 0 <= x < width and 0 <= y < height.
func (s *Surface) rawset(x, y int, c Color) {
	i := (y*s.width + x) * bytesPerPixel
	p := s.pix[i : i+bytesPerPixel : i+bytesPerPixel]
	p[0], p[1], p[2], p[3] = blend.Apply(blend.Mode(s.mode),
		c.R, c.G, c.B, c.A,
		p[0], p[1], p[2], p[3])
}

// SetPixel composites c onto the pixel at (x, y).
// Coordinates outside the surface are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.rawset(x, y, c)
}

// Pixel returns the pixel at (x, y), or Transparent outside the surface.
func (s *Surface) Pixel(x, y int) Color {
	if !s.inBounds(x, y) {
		return Transparent
	}
	i := (y*s.width + x) * bytesPerPixel
	return Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Clear resets every pixel to transparent black. The blend mode is kept.
func (s *Surface) Clear() {
	clear(s.pix)
}

// ToImage copies the surface into a new image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("overlay: create png: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, s.ToImage()); err != nil {
		return fmt.Errorf("overlay: encode png: %w", err)
	}
	return nil
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

var _ image.Image = (*Surface)(nil)

package overlay

import "golang.org/x/image/font"

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// Default: transparent, "blend" mode, 7x13 text face
//	s := overlay.NewSurface(256, 240)
//
//	// Opaque overwrites from the start
//	s := overlay.NewSurface(256, 240, overlay.WithBlendMode(overlay.BlendNone))
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	mode BlendMode
	face font.Face
}

func defaultOptions() surfaceOptions {
	return surfaceOptions{
		mode: BlendBlend,
		face: nil, // basicfont.Face7x13 when nil
	}
}

// WithBlendMode sets the initial blend mode. Unknown modes are ignored and the
// default "blend" is kept, as with SetBlendMode.
func WithBlendMode(m BlendMode) SurfaceOption {
	return func(o *surfaceOptions) {
		if m.Valid() {
			o.mode = m
		}
	}
}

// WithFace sets the face used by DrawText. Glyph masks are thresholded, so
// bitmap faces give the most predictable results.
func WithFace(f font.Face) SurfaceOption {
	return func(o *surfaceOptions) {
		o.face = f
	}
}

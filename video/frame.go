// Package video converts the emulator's indexed video frames into 32-bit
// ARGB pixels.
//
// The emulator produces one Frame per emulated frame: 8-bit palette indices,
// row-major with a known pitch, plus a per-frame lookup table that maps each
// index to a 9-bit slot of the master color table. Blit resolves both lookups
// for every pixel of a (possibly cropped) window of the frame.
package video

import (
	"context"
	"errors"
)

var (
	// ErrBadFrame is returned when a frame's buffer or lookup table is too
	// small for its declared geometry.
	ErrBadFrame = errors.New("video: malformed frame")

	// ErrShortBuffer is returned when the destination cannot hold the
	// cropped frame.
	ErrShortBuffer = errors.New("video: destination buffer too small")
)

// Frame is one indexed video frame.
type Frame struct {
	Width  int
	Height int

	// Pitch is the distance in bytes between the starts of two rows.
	Pitch int

	// Pixels holds Height rows of Pitch bytes; only the first Width bytes of
	// each row are visible.
	Pixels []byte

	// Palette maps a pixel index to a master palette slot. It must have an
	// entry for every index that appears in Pixels; slots are masked to 9 bits.
	Palette []uint16
}

// Validate checks that the frame's buffers match its geometry.
func (f *Frame) Validate() error {
	switch {
	case f == nil:
		return ErrBadFrame
	case f.Width < 0 || f.Height < 0 || f.Pitch < f.Width:
		return ErrBadFrame
	case f.Height > 0 && len(f.Pixels) < (f.Height-1)*f.Pitch+f.Width:
		return ErrBadFrame
	case len(f.Palette) < 256:
		return ErrBadFrame
	}
	return nil
}

// Crop is the number of pixels removed from each edge before conversion.
type Crop struct {
	Left, Top, Right, Bottom int
}

// Size returns the dimensions of f after cropping. Either may be zero.
func (c Crop) Size(f *Frame) (w, h int) {
	w = f.Width - max(c.Left, 0) - max(c.Right, 0)
	h = f.Height - max(c.Top, 0) - max(c.Bottom, 0)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return w, h
}

// Source produces video frames, one per call. Implementations may reuse the
// returned Frame between calls.
type Source interface {
	NextFrame(ctx context.Context) (*Frame, error)
}

// Package overlay provides a software compositing surface for drawing a HUD on
// top of an emulator's video output.
//
// # Overview
//
// A [Surface] is a fixed-size 32-bit RGBA pixel buffer. Every write goes
// through the surface's active [BlendMode], which combines the color being
// drawn with the pixel already in the buffer:
//
//	none   destination overwritten
//	blend  source-over on color, alpha Sa + Da*(1-Sa) (default)
//	add    alpha-weighted source added to the destination
//	mod    destination multiplied by the source
//
// # Quick Start
//
//	s := overlay.NewSurface(256, 240)
//
//	s.FillRect(8, 8, 64, 16, overlay.White, overlay.RGBA8(0, 0, 0, 128))
//	s.SafeLine(0, 239, 255, 0, overlay.RGBA8(255, 0, 0, 255))
//	s.DrawText(12, 10, "P1 3UP", overlay.White)
//
//	// once per frame, hand the buffer to the presentation layer
//	upload(s.Pixels())
//
// # Bounds
//
// SetPixel, DrawRect, FillRect, SafeLine and DrawText clip to the surface and
// never fail. FastLine checks only its endpoints: a segment with an endpoint
// outside the surface is dropped entirely instead of being clipped.
//
// # Concurrency
//
// A Surface has a single owner and is not safe for concurrent use.
//
// # Subpackages
//
//   - video: converts the emulator's indexed frames to ARGB through the
//     palette lookup and master color table
//   - display: presents a video frame with a surface composited on top, in a
//     window or headless
package overlay

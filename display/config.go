package display

import (
	"github.com/hqnes/overlay"
	"github.com/hqnes/overlay/video"
)

// Config controls both runners.
type Config struct {
	// Title is the window title.
	Title string

	// Scale multiplies the window size. The picture itself is not resampled
	// on the CPU; the window system stretches it.
	Scale int

	// TPS is the number of frames per second pulled from the source.
	TPS int

	// Crop is removed from each edge of every video frame.
	Crop video.Crop

	// Frames stops the loop after that many frames (0 = until the context
	// is done or the window closes).
	Frames uint64

	// Snapshot, if set, is the path of a PNG written with the last composite
	// when the loop ends.
	Snapshot string
}

// StepFunc is called once per frame, after the new video frame has been
// converted and before presentation. It typically redraws the overlay.
// Returning an error stops the loop.
type StepFunc func(frame uint64, ov *overlay.Surface) error

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "hqnview"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

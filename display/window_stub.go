//go:build !cgo

package display

import (
	"context"
	"errors"

	"github.com/hqnes/overlay"
	"github.com/hqnes/overlay/video"
)

// RunWindow is unavailable without cgo and always returns an error.
func RunWindow(_ context.Context, _ Config, _ video.Source, _ *overlay.Surface, _ StepFunc) error {
	return errors.New("display: window mode requires cgo (build/run with CGO_ENABLED=1), use headless mode instead")
}

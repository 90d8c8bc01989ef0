package display

import (
	"context"
	"fmt"
	"time"

	"github.com/hqnes/overlay"
	"github.com/hqnes/overlay/video"
)

// frameLoop is the part of a frame shared by both runners: pull a frame,
// convert it, let the caller update the overlay.
type frameLoop struct {
	src   video.Source
	ov    *overlay.Surface
	step  StepFunc
	comp  *Compositor
	count uint64
}

func newFrameLoop(cfg Config, src video.Source, ov *overlay.Surface, step StepFunc) *frameLoop {
	return &frameLoop{src: src, ov: ov, step: step, comp: NewCompositor(cfg.Crop)}
}

func (l *frameLoop) advance(ctx context.Context) error {
	f, err := l.src.NextFrame(ctx)
	if err != nil {
		return err
	}
	if err := l.comp.Update(f); err != nil {
		return fmt.Errorf("display: frame %d: %w", l.count, err)
	}
	if l.step != nil {
		if err := l.step(l.count, l.ov); err != nil {
			return err
		}
	}
	l.count++
	return nil
}

func (l *frameLoop) snapshot(path string) {
	if path == "" {
		return
	}
	if err := l.comp.SavePNG(path, l.ov); err != nil {
		overlay.Logger().Warn("display: snapshot failed", "path", path, "err", err)
		return
	}
	overlay.Logger().Info("display: snapshot written", "path", path, "frames", l.count)
}

// RunHeadless runs the frame loop on a ticker without opening a window.
// It returns nil after cfg.Frames frames, or the context's error when ctx is
// done first. The snapshot, if configured, is written in both cases.
func RunHeadless(ctx context.Context, cfg Config, src video.Source, ov *overlay.Surface, step StepFunc) error {
	cfg = cfg.withDefaults()
	l := newFrameLoop(cfg, src, ov, step)
	defer l.snapshot(cfg.Snapshot)

	d := time.Second / time.Duration(cfg.TPS)
	if d <= 0 {
		return fmt.Errorf("display: invalid tick rate: %d", cfg.TPS)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	overlay.Logger().Info("display: headless start", "tps", cfg.TPS, "frames", cfg.Frames)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := l.advance(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
			overlay.Logger().Debug("display: frame", "n", l.count)
			if cfg.Frames > 0 && l.count >= cfg.Frames {
				overlay.Logger().Info("display: headless stop", "frames", l.count)
				return nil
			}
		}
	}
}

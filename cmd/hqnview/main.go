// Command hqnview shows the overlay surface composited over emulator video.
//
// Without a ROM it plays a scrolling palette test pattern and draws a small
// HUD on the overlay every frame.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hqnes/overlay"
	"github.com/hqnes/overlay/display"
	"github.com/hqnes/overlay/video"
)

func main() {
	var (
		cfg      display.Config
		headless bool
		verbose  bool
		overscan int
		mode     = overlay.BlendBlend
	)
	flag.IntVar(&cfg.Scale, "scale", 2, "window scale factor")
	flag.IntVar(&cfg.TPS, "tps", 60, "frames per second")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "stop after N frames (0 = run until closed)")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "write the last composite to this PNG file")
	flag.IntVar(&overscan, "overscan", 8, "rows cropped from the top and bottom of each frame")
	flag.Var(&mode, "blend", "blend mode for the HUD lines: none, blend, add or mod")
	flag.BoolVar(&headless, "headless", false, "run without a window")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	overlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg.Title = "hqnview"
	cfg.Crop = video.Crop{Top: overscan, Bottom: overscan}

	src := video.NewTestPattern(video.NESWidth, video.NESHeight)
	w, h := cfg.Crop.Size(&video.Frame{Width: video.NESWidth, Height: video.NESHeight})
	ov := overlay.NewSurface(w, h, overlay.WithBlendMode(mode))
	hud := &hud{mode: mode}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := display.RunWindow
	if headless {
		run = display.RunHeadless
	}
	if err := run(ctx, cfg, src, ov, hud.draw); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// hud redraws the overlay from scratch each frame. The panel and its text
// overwrite the surface; the lines use mode.
type hud struct {
	mode overlay.BlendMode
}

var (
	panelEdge = overlay.RGBA8(255, 255, 255, 200)
	panelFill = overlay.RGBA8(0, 0, 48, 140)
	sweep     = overlay.RGBA8(255, 64, 64, 180)
	grid      = overlay.RGBA8(64, 255, 128, 96)
)

func (h *hud) draw(frame uint64, ov *overlay.Surface) error {
	ov.Clear()
	w, ht := ov.Width(), ov.Height()

	ov.SetBlendMode(overlay.BlendNone)
	text := fmt.Sprintf("FRAME %06d\nMODE  %s", frame, h.mode)
	tw, th := ov.TextSize(text)
	ov.FillRect(4, 4, tw+8, th+6, panelEdge, panelFill)
	ov.DrawText(8, 7, text, overlay.White)

	ov.SetBlendMode(h.mode)

	// corner grid, drawn with the checked primitive so it may run off-surface
	for x := 0; x < w; x += 32 {
		ov.SafeLine(x, ht-24, x+24, ht+8, grid)
	}

	// a sweeping line pinned to two in-bounds corners
	sx := int(frame % uint64(max(w, 1)))
	ov.FastLine(0, 0, sx, ht-1, sweep)
	ov.FastLine(w-1, 0, w-1-sx, ht-1, sweep)
	return nil
}

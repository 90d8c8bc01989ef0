//go:build cgo

package display

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hqnes/overlay"
	"github.com/hqnes/overlay/video"
)

// RunWindow opens a window showing each video frame with ov composited on
// top, pulling cfg.TPS frames per second from src. It blocks until the
// window is closed, Escape is pressed, ctx is done, cfg.Frames frames have
// been shown, or step fails.
func RunWindow(ctx context.Context, cfg Config, src video.Source, ov *overlay.Surface, step StepFunc) error {
	cfg = cfg.withDefaults()
	l := newFrameLoop(cfg, src, ov, step)
	defer l.snapshot(cfg.Snapshot)

	// the first frame fixes the window size
	if err := l.advance(ctx); err != nil {
		return err
	}
	w, h := l.comp.Size()

	g := &windowGame{ctx: ctx, cfg: cfg, loop: l}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	overlay.Logger().Info("display: window start", "width", w, "height", h, "scale", cfg.Scale)
	err := ebiten.RunGame(g)
	overlay.Logger().Info("display: window stop", "frames", l.count)
	if errors.Is(err, ebiten.Termination) {
		return g.err
	}
	return err
}

// windowGame owns the two textures: the video frame below and the overlay
// above it.
type windowGame struct {
	ctx  context.Context
	cfg  Config
	loop *frameLoop
	err  error

	videoImg *ebiten.Image
	ovImg    *ebiten.Image
	scratch  []byte
}

func (g *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.ctx.Err(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	if g.cfg.Frames > 0 && g.loop.count >= g.cfg.Frames {
		return ebiten.Termination
	}
	if err := g.loop.advance(g.ctx); err != nil {
		g.err = err
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w, h := g.loop.comp.Size()
	if g.videoImg == nil || g.videoImg.Bounds().Dx() != w || g.videoImg.Bounds().Dy() != h {
		if g.videoImg != nil {
			g.videoImg.Deallocate()
		}
		g.videoImg = ebiten.NewImage(w, h)
	}
	g.videoImg.WritePixels(g.loop.comp.VideoPixels())
	screen.DrawImage(g.videoImg, nil)

	ov := g.loop.ov
	if ov == nil || ov.DataSize() == 0 {
		return
	}
	if g.ovImg == nil || g.ovImg.Bounds().Dx() != ov.Width() || g.ovImg.Bounds().Dy() != ov.Height() {
		if g.ovImg != nil {
			g.ovImg.Deallocate()
		}
		g.ovImg = ebiten.NewImage(ov.Width(), ov.Height())
		g.scratch = make([]byte, ov.DataSize())
	}
	// ebiten images are premultiplied; the surface is not
	Premultiply(g.scratch, ov.Pixels())
	g.ovImg.WritePixels(g.scratch)
	screen.DrawImage(g.ovImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.loop.comp.Size()
}

package main

import (
	"testing"

	"github.com/hqnes/overlay"
)

func TestHUDDraw(t *testing.T) {
	for _, mode := range []overlay.BlendMode{overlay.BlendNone, overlay.BlendBlend, overlay.BlendAdd, overlay.BlendMod} {
		t.Run(mode.String(), func(t *testing.T) {
			ov := overlay.NewSurface(256, 224)
			h := &hud{mode: mode}
			for frame := uint64(0); frame < 300; frame += 37 {
				if err := h.draw(frame, ov); err != nil {
					t.Fatalf("draw(%d) = %v", frame, err)
				}
			}
			if ov.BlendMode() != mode {
				t.Errorf("mode = %v, want %v", ov.BlendMode(), mode)
			}
			if mode == overlay.BlendNone && ov.Pixel(4, 4) != panelEdge {
				t.Errorf("panel corner = %v, want %v", ov.Pixel(4, 4), panelEdge)
			}
		})
	}
}

func TestHUDDrawTinySurface(t *testing.T) {
	h := &hud{mode: overlay.BlendBlend}
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 50}} {
		ov := overlay.NewSurface(size[0], size[1])
		if err := h.draw(12, ov); err != nil {
			t.Fatal(err)
		}
	}
}

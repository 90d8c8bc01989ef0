package blend

import "testing"

type px struct{ r, g, b, a byte }

func apply(mode Mode, s, d px) px {
	r, g, b, a := Apply(mode, s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return px{r, g, b, a}
}

// TestDiv255 tests truncating division helpers.
func TestDiv255(t *testing.T) {
	tests := []struct {
		name string
		x    uint32
		want byte
	}{
		{"zero", 0, 0},
		{"below one", 254, 0},
		{"one", 255, 1},
		{"max product", 255 * 255, 255},
		{"half product", 128 * 255, 128},
		{"truncates", 100 * 100, 39},
		{"wraps past a byte", 255*255 + 255, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := div255(tt.x); got != tt.want {
				t.Errorf("div255(%d) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for m := ModeNone; m < modeCount; m++ {
		if f, ok := Lookup(m); !ok || f == nil {
			t.Errorf("Lookup(%d) found no rule", m)
		}
	}
	if f, ok := Lookup(modeCount); ok || f != nil {
		t.Errorf("Lookup(%d) should fail", modeCount)
	}
	if Valid(Mode(200)) {
		t.Error("Valid(200) = true, want false")
	}
}

func TestApplyUnknownModeKeepsDestination(t *testing.T) {
	d := px{1, 2, 3, 4}
	if got := apply(Mode(42), px{255, 255, 255, 255}, d); got != d {
		t.Errorf("Apply(42) = %v, want %v", got, d)
	}
}

func TestRuleNone(t *testing.T) {
	s := px{10, 20, 30, 40}
	for _, d := range []px{{}, {255, 255, 255, 255}, {1, 2, 3, 4}} {
		if got := apply(ModeNone, s, d); got != s {
			t.Errorf("none over %v = %v, want %v", d, got, s)
		}
	}
}

func TestRuleBlend(t *testing.T) {
	tests := []struct {
		name string
		s, d px
		want px
	}{
		{"opaque source replaces rgb", px{10, 20, 30, 255}, px{200, 100, 50, 77}, px{10, 20, 30, 1}},
		{"opaque onto empty", px{255, 255, 255, 255}, px{}, px{255, 255, 255, 1}},
		{"transparent source keeps rgb", px{0, 0, 0, 0}, px{200, 100, 50, 77}, px{200, 100, 50, 77}},
		{"transparent colored source", px{255, 255, 255, 0}, px{9, 8, 7, 6}, px{9, 8, 7, 6}},
		{"half red over opaque green", px{255, 0, 0, 128}, px{0, 255, 0, 255}, px{128, 127, 0, 127}},
		{"half white onto empty", px{255, 255, 255, 128}, px{}, px{128, 128, 128, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(ModeBlend, tt.s, tt.d); got != tt.want {
				t.Errorf("blend(%v, %v) = %v, want %v", tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestRuleAdd(t *testing.T) {
	tests := []struct {
		name string
		s, d px
		want px
	}{
		{"alpha kept", px{0, 0, 0, 0}, px{100, 100, 100, 99}, px{0, 0, 0, 99}},
		{"opaque source", px{100, 50, 200, 255}, px{0, 0, 0, 10}, px{100, 50, 50, 10}},
		{"blue follows green", px{0, 255, 0, 255}, px{0, 0, 0, 0}, px{0, 255, 255, 0}},
		{"wraps on overflow", px{255, 255, 255, 255}, px{255, 255, 255, 255}, px{0, 0, 0, 255}},
		{"just below overflow", px{255, 255, 255, 255}, px{254, 254, 254, 254}, px{255, 255, 255, 254}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(ModeAdd, tt.s, tt.d); got != tt.want {
				t.Errorf("add(%v, %v) = %v, want %v", tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestRuleMod(t *testing.T) {
	d := px{200, 100, 50, 33}
	if got := apply(ModeMod, px{255, 255, 255, 0}, d); got != d {
		t.Errorf("mod by white = %v, want %v", got, d)
	}
	if got := apply(ModeMod, px{0, 0, 0, 255}, d); got != (px{0, 0, 0, 33}) {
		t.Errorf("mod by black = %v, want {0 0 0 33}", got)
	}
	if got := apply(ModeMod, px{128, 128, 128, 255}, d); got != (px{100, 50, 25, 33}) {
		t.Errorf("mod by gray = %v, want {100 50 25 33}", got)
	}
}

package overlay

import "image/color"

// Color is a straight (non-premultiplied) 8-bit RGBA color.
// Alpha is used directly as a 0-255 weight by the blend rules.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
)

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if oc, ok := c.(Color); ok {
		return oc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. The second result is false if s is not a hex color.
func Hex(s string) (Color, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [8]uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok || i >= len(v) {
			return Color{}, false
		}
		v[i] = d
	}

	switch len(s) {
	case 3:
		return Color{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: 255}, true
	case 4:
		return Color{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: v[3] * 17}, true
	case 6:
		return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: 255}, true
	case 8:
		return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: v[6]<<4 | v[7]}, true
	default:
		return Color{}, false
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

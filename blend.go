package overlay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hqnes/overlay/internal/blend"
)

// ErrUnknownBlendMode is returned by ParseBlendMode for names that do not
// match any mode.
var ErrUnknownBlendMode = errors.New("overlay: unknown blend mode")

// BlendMode selects how drawn colors are combined with the pixels already in
// a Surface.
type BlendMode uint8

const (
	// BlendNone overwrites the destination with the source.
	BlendNone BlendMode = BlendMode(blend.ModeNone)
	// BlendBlend is straight-alpha source-over compositing (the default).
	BlendBlend BlendMode = BlendMode(blend.ModeBlend)
	// BlendAdd adds the alpha-weighted source to the destination, keeping
	// destination alpha.
	BlendAdd BlendMode = BlendMode(blend.ModeAdd)
	// BlendMod multiplies the destination by the source, keeping destination
	// alpha.
	BlendMod BlendMode = BlendMode(blend.ModeMod)
)

var blendModeNames = [...]string{
	BlendNone:  "none",
	BlendBlend: "blend",
	BlendAdd:   "add",
	BlendMod:   "mod",
}

// Valid reports whether m is one of the four known modes.
func (m BlendMode) Valid() bool {
	return blend.Valid(blend.Mode(m))
}

// String returns the mode's name as accepted by ParseBlendMode.
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendModeNames[m]
}

// ParseBlendMode returns the mode with the given name (case-insensitive).
func ParseBlendMode(name string) (BlendMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return BlendBlend, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// Set implements flag.Value.
func (m *BlendMode) Set(name string) error {
	v, err := ParseBlendMode(name)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

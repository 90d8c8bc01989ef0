package video

// PaletteSize is the number of slots in the master color table: 64 base
// colors for each of the 8 color-emphasis combinations.
const PaletteSize = 512

// Emphasis bits, as they appear in bits 6-8 of a palette slot.
const (
	EmphasisRed   = 1 << 6
	EmphasisGreen = 1 << 7
	EmphasisBlue  = 1 << 8
)

// MasterPalette maps a 9-bit palette slot to an opaque 0xAARRGGBB color.
var MasterPalette = buildMasterPalette()

// basePalette holds the 64 NTSC PPU colors without emphasis, as R, G, B.
var basePalette = [64][3]uint8{
	{84, 84, 84}, {0, 30, 116}, {8, 16, 144}, {48, 0, 136},
	{68, 0, 100}, {92, 0, 48}, {84, 4, 0}, {60, 24, 0},
	{32, 42, 0}, {8, 58, 0}, {0, 64, 0}, {0, 60, 0},
	{0, 50, 60}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},

	{152, 150, 152}, {8, 76, 196}, {48, 50, 236}, {92, 30, 228},
	{136, 20, 176}, {160, 20, 100}, {152, 34, 32}, {120, 60, 0},
	{84, 90, 0}, {40, 114, 0}, {8, 124, 0}, {0, 118, 40},
	{0, 102, 120}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},

	{236, 238, 236}, {76, 154, 236}, {120, 124, 236}, {176, 98, 236},
	{228, 84, 236}, {236, 88, 180}, {236, 106, 100}, {212, 136, 32},
	{160, 170, 0}, {116, 196, 0}, {76, 208, 32}, {56, 204, 108},
	{56, 180, 204}, {60, 60, 60}, {0, 0, 0}, {0, 0, 0},

	{236, 238, 236}, {168, 204, 236}, {188, 188, 236}, {212, 178, 236},
	{236, 174, 236}, {236, 174, 212}, {236, 180, 176}, {228, 196, 144},
	{204, 210, 120}, {180, 222, 120}, {168, 226, 144}, {152, 226, 180},
	{160, 214, 228}, {160, 162, 160}, {0, 0, 0}, {0, 0, 0},
}

// attenuate darkens a channel that is not emphasized (about 0.746).
func attenuate(c uint8) uint8 {
	return uint8(uint16(c) * 191 / 256)
}

func buildMasterPalette() [PaletteSize]uint32 {
	var p [PaletteSize]uint32
	for slot := range p {
		rgb := basePalette[slot&0x3F]
		r, g, b := rgb[0], rgb[1], rgb[2]

		// columns $xE and $xF are forced black and ignore emphasis
		if slot&0x0E != 0x0E {
			if slot&EmphasisRed != 0 {
				g, b = attenuate(g), attenuate(b)
			}
			if slot&EmphasisGreen != 0 {
				r, b = attenuate(r), attenuate(b)
			}
			if slot&EmphasisBlue != 0 {
				r, g = attenuate(r), attenuate(g)
			}
		}
		p[slot] = 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
	return p
}

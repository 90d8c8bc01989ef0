package blend

// div255 divides x by 255, truncating toward zero, and keeps the low byte.
//
// Unlike the shift approximations usually found in blitters, the quotient is
// exact: callers rely on (c*255)/255 == c so that opaque sources overwrite.
// Only the additive rule can exceed 255*255 before the division.
func div255(x uint32) byte {
	return byte(x / 255)
}

// mul multiplies two channels in the 0-65025 domain.
func mul(a, b byte) uint32 {
	return uint32(a) * uint32(b)
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

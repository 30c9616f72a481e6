package mcwire

// A packed position is one uint64 carrying three two's-complement fields:
//
//	bits 63..38 (26 bits): x
//	bits 37..12 (26 bits): z
//	bits 11..0  (12 bits): y
//
// The sign-extension constants are spelled out per field width rather
// than inlined as shift expressions; `2 << w-1` parses as `2 << (w-1)`
// and silently halves the threshold.
const (
	xzBits = 26
	yBits  = 12

	xzMask uint64 = 1<<xzBits - 1
	yMask  uint64 = 1<<yBits - 1

	xzSignThreshold = int32(1) << (xzBits - 1)
	xzRange         = int32(1) << xzBits
	ySignThreshold  = int32(1) << (yBits - 1)
	yRange          = int32(1) << yBits
)

// Position is a block coordinate. X and Z must fit in 26 bits of signed
// range and Y in 12; Uint64 silently truncates fields outside that, so
// strict callers should check InRange first.
type Position struct {
	X, Y, Z int32
}

// PositionFromUint64 unpacks a position from its 64-bit wire form. Every
// input maps to some coordinate; fields at or above their midpoint are
// sign-extended back to negative values.
func PositionFromUint64(v uint64) Position {
	x := int32((v >> 38) & xzMask)
	z := int32((v >> 12) & xzMask)
	y := int32(v & yMask)

	if x >= xzSignThreshold {
		x -= xzRange
	}
	if z >= xzSignThreshold {
		z -= xzRange
	}
	if y >= ySignThreshold {
		y -= yRange
	}

	return Position{X: x, Y: y, Z: z}
}

// Uint64 packs p into its 64-bit wire form. Masking each field to its
// width keeps the two's-complement low bits, so negative coordinates
// need no special casing. Out-of-range fields lose their high bits.
func (p Position) Uint64() uint64 {
	return (uint64(uint32(p.X))&xzMask)<<38 |
		(uint64(uint32(p.Z))&xzMask)<<12 |
		uint64(uint32(p.Y))&yMask
}

// InRange reports whether all three fields survive a pack/unpack cycle
// unchanged.
func (p Position) InRange() bool {
	return p.X >= -xzSignThreshold && p.X < xzSignThreshold &&
		p.Z >= -xzSignThreshold && p.Z < xzSignThreshold &&
		p.Y >= -ySignThreshold && p.Y < ySignThreshold
}

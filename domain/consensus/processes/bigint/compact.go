package bigint

// CompactTarget is the 32-bit floating-point-like encoding of a 256-bit
// unsigned number used historically by Bitcoin to encode difficulty
// targets: the high 8 bits are the byte-exponent, the low 24 bits are the
// mantissa, with bit 23 of the mantissa reserved as a sign flag.
type CompactTarget uint32

const (
	compactSignBit     = 0x00800000
	compactMantissaMask = 0x007fffff
)

// SetCompact decodes a CompactTarget into a BigUInt256 magnitude, along
// with whether the sign bit was set and whether the encoded value would
// overflow 256 bits.
func SetCompact(compact CompactTarget) (value BigUInt256, negative bool, overflow bool) {
	exponent := uint(compact >> 24)
	mantissa := uint32(compact) & compactMantissaMask
	negative = uint32(compact)&compactSignBit != 0

	if exponent <= 3 {
		value = FromUint64(uint64(mantissa) >> (8 * (3 - exponent)))
	} else {
		value = FromUint64(uint64(mantissa)).Lsh(8 * (exponent - 3))
	}

	overflow = mantissa != 0 && (exponent > 34 ||
		(exponent == 34 && mantissa&0x00ff0000 != 0) ||
		(exponent == 33 && mantissa&0x00ff8000 != 0))

	return value, negative, overflow
}

// GetCompact encodes x as a CompactTarget, setting the sign bit when
// negative is true and x is non-zero.
func GetCompact(x BigUInt256, negative bool) CompactTarget {
	bits := x.Bits()
	exponent := (bits + 7) / 8

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(x.LowUint64() << (8 * (3 - exponent)))
	} else {
		mantissa = uint32(x.Rsh(8 * (exponent - 3)).LowUint64())
	}

	// The mantissa's own top bit would otherwise collide with the sign
	// flag; shift it into the exponent instead.
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	result := uint32(exponent)<<24 | (mantissa & compactMantissaMask)
	if negative && mantissa != 0 {
		result |= compactSignBit
	}
	return CompactTarget(result)
}

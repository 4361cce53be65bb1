package cpu

import (
	"fmt"
)

// Bitrange returns bits [low, high] of word, inclusive, right justified.
// Bit positions are 0..31; high must not be less than low.
func Bitrange(word uint32, high, low uint) uint32 {
	if high > 31 || low > high {
		panic(fmt.Sprintf("cpu: invalid bit range [%d:%d]", high, low))
	}

	width := high - low + 1
	mask := uint32((uint64(1) << width) - 1)

	return (word >> low) & mask
}

// SignExt treats value as a width-bit two's complement quantity and
// extends its sign bit (bit width-1) through bit 31.
func SignExt(value uint32, width uint) uint32 {
	if width == 0 || width > 32 {
		panic(fmt.Sprintf("cpu: invalid sign extension width %d", width))
	}

	if width == 32 {
		return value
	}

	if (value>>(width-1))&1 == 0 {
		return value
	}

	return value | ^((uint32(1) << width) - 1)
}

// Package analysis implements the difficulty codec and the block statistics
// aggregators. Everything in this package is pure computation over data the
// caller already fetched; the only I/O lives behind the NodeClient interface
// consumed by Analyzer.
package analysis

import (
	"errors"
	"math/big"
	"strconv"
)

// ErrZeroTarget is returned when a compact target decodes to zero, which
// would make the difficulty quotient undefined.
var ErrZeroTarget = errors.New("compact target decodes to zero")

// maxTarget is the difficulty-1 target: 0xFFFF * 256^(0x1D-3).
var maxTarget = new(big.Int).Lsh(big.NewInt(0xFFFF), 8*(0x1D-3))

// ParseBits normalizes the hex string form of a compact target, as returned
// by the node RPC, into its 32-bit value.
func ParseBits(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}

// BitsToTarget expands the compact target representation into the full
// 256-bit-capable target: mantissa * 2^(8*(exponent-3)).
//
// Exponents below 3 make the shift negative; those are decoded as a
// truncating right shift by 8*(3-exponent) bits, discarding the remainder.
func BitsToTarget(bits uint32) *big.Int {
	exponent := uint(bits >> 24)
	mantissa := new(big.Int).SetUint64(uint64(bits & 0x00FFFFFF))

	if exponent < 3 {
		return mantissa.Rsh(mantissa, 8*(3-exponent))
	}
	return mantissa.Lsh(mantissa, 8*(exponent-3))
}

// BitsToDifficulty converts a compact target into the normalized difficulty
// maxTarget/target. A zero target yields ErrZeroTarget. Quotients beyond the
// float64 range follow float semantics and come back as +Inf.
func BitsToDifficulty(bits uint32) (float64, error) {
	target := BitsToTarget(bits)
	if target.Sign() == 0 {
		return 0, ErrZeroTarget
	}
	difficulty, _ := new(big.Rat).SetFrac(maxTarget, target).Float64()
	return difficulty, nil
}

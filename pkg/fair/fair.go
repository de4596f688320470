// Package fair implements the provably-fair settlement math: commit-reveal
// seed verification, deterministic result derivation, weighted bet
// resolution, fee decomposition, jackpot evaluation and LP share accounting.
// Everything here is pure and reproducible by any third party holding the
// revealed seed, the client seed and the nonce.
package fair

import (
	"math/bits"

	"wagerpool_backend/internal/gameerr"
)

const (
	// BPSPerWhole is the number of basis points in 100%.
	BPSPerWhole = 10_000

	// UbpsDivisor is the number of micro basis points in 100%.
	UbpsDivisor = 1_000_000

	// MinBetOutcomes and MaxBetOutcomes bound the bet vector length.
	MinBetOutcomes = 2
	MaxBetOutcomes = 256

	// MaxSeedLength bounds player-supplied seed strings.
	MaxSeedLength = 256

	// MaxMetadataLength bounds the free-form game metadata string.
	MaxMetadataLength = 512
)

// MulDiv returns floor(a*b/div) using a 128-bit intermediate, so the product
// never silently wraps. Fails with ErrArithmeticOverflow when the quotient
// does not fit in uint64.
func MulDiv(a, b, div uint64) (uint64, error) {
	if div == 0 {
		return 0, gameerr.ErrArithmeticOverflow
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= div {
		return 0, gameerr.ErrArithmeticOverflow
	}
	q, _ := bits.Div64(hi, lo, div)
	return q, nil
}

// AddChecked returns a+b or ErrArithmeticOverflow on wrap.
func AddChecked(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, gameerr.ErrArithmeticOverflow
	}
	return sum, nil
}

// SubChecked returns a-b or ErrArithmeticOverflow on underflow.
func SubChecked(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, gameerr.ErrArithmeticOverflow
	}
	return diff, nil
}

package fair

import (
	"errors"
	"fmt"

	"wagerpool_backend/internal/gameerr"
)

// BetValidation is the outcome of validating a bet vector.
type BetValidation struct {
	IsValid      bool
	Errors       []error
	TotalWeight  uint64
	OutcomeCount int
}

// TotalWeight sums the bet weights.
func TotalWeight(weights []uint32) uint64 {
	var total uint64
	for _, w := range weights {
		total += uint64(w)
	}
	return total
}

// ValidateBet checks the structural invariants of a bet vector: length in
// [MinBetOutcomes, MaxBetOutcomes], no zero weights, non-zero total. All
// violations are reported, not just the first.
func ValidateBet(weights []uint32) BetValidation {
	v := BetValidation{
		OutcomeCount: len(weights),
		TotalWeight:  TotalWeight(weights),
	}

	if len(weights) < MinBetOutcomes {
		v.Errors = append(v.Errors, gameerr.ErrTooFewOutcomes)
	}
	if len(weights) > MaxBetOutcomes {
		v.Errors = append(v.Errors, gameerr.ErrTooManyOutcomes)
	}
	for i, w := range weights {
		if w == 0 {
			v.Errors = append(v.Errors, fmt.Errorf("outcome %d: weight must be positive: %w", i, gameerr.ErrInvalidBetWeights))
			break
		}
	}
	if v.TotalWeight == 0 {
		v.Errors = append(v.Errors, gameerr.ErrInvalidBetWeights)
	}

	v.IsValid = len(v.Errors) == 0
	return v
}

// Err folds the validation into a single error, nil when valid.
func (v BetValidation) Err() error {
	if v.IsValid {
		return nil
	}
	return errors.Join(v.Errors...)
}

// ValidateWager checks a wager amount against the pool limits. maxWager == 0
// means the pool has no upper cap. Multiple violations are all reported.
func ValidateWager(amount, minWager, maxWager, poolLiquidity uint64) error {
	var errs []error
	if amount < minWager {
		errs = append(errs, fmt.Errorf("wager must be at least %d: %w", minWager, gameerr.ErrInvalidWager))
	}
	if maxWager > 0 && amount > maxWager {
		errs = append(errs, fmt.Errorf("wager cannot exceed %d: %w", maxWager, gameerr.ErrInvalidWager))
	}
	if amount > poolLiquidity {
		errs = append(errs, fmt.Errorf("insufficient liquidity for wager of %d: %w", amount, gameerr.ErrInsufficientLiquidity))
	}
	return errors.Join(errs...)
}

// Multiplier returns the payout multiplier for an outcome, in basis points:
// floor(totalWeight * 10000 / weight).
func Multiplier(weights []uint32, index int) (uint64, error) {
	if index < 0 || index >= len(weights) {
		return 0, gameerr.ErrInvalidBetWeights
	}
	w := uint64(weights[index])
	if w == 0 {
		return 0, gameerr.ErrInvalidBetWeights
	}
	return MulDiv(TotalWeight(weights), BPSPerWhole, w)
}

// MaxMultiplier returns the highest multiplier across all outcomes, in bps.
func MaxMultiplier(weights []uint32) uint64 {
	total := TotalWeight(weights)
	var max uint64
	for _, w := range weights {
		if w == 0 {
			continue
		}
		m, err := MulDiv(total, BPSPerWhole, uint64(w))
		if err != nil {
			continue
		}
		if m > max {
			max = m
		}
	}
	return max
}

// HouseEdgeBps is the expected shortfall the floor division in the
// multiplier and probability math retains from the player, in basis points.
// An exactly divisible vector has edge 0; vectors whose weights force heavy
// rounding, such as one tiny weight among huge ones, accumulate real edge.
// A vector with zero total weight has full edge.
func HouseEdgeBps(weights []uint32) uint64 {
	if TotalWeight(weights) == 0 {
		return BPSPerWhole
	}
	var exact uint64
	for _, w := range weights {
		if w > 0 {
			exact += BPSPerWhole
		}
	}
	ret := ExpectedReturnBps(weights)
	if ret >= exact {
		return 0
	}
	return exact - ret
}

// ExpectedReturnBps sums probability times multiplier over all outcomes, in
// basis points. The drawn outcome always pays its inverse-probability
// multiplier, so every nonzero-weight outcome contributes 10000 less
// whatever the floor divisions lose.
func ExpectedReturnBps(weights []uint32) uint64 {
	total := TotalWeight(weights)
	if total == 0 {
		return 0
	}
	var ret uint64
	for _, w := range weights {
		if w == 0 {
			continue
		}
		probability := uint64(w) * BPSPerWhole / total
		multiplier := total * BPSPerWhole / uint64(w)
		ret += probability * multiplier / BPSPerWhole
	}
	return ret
}

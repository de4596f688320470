package gameerr

import "errors"

// Validation errors. Raised before any state mutation, recoverable by the
// caller correcting the request.
var (
	ErrTooFewOutcomes    = errors.New("bet must have at least 2 outcomes")
	ErrTooManyOutcomes   = errors.New("bet cannot have more than 256 outcomes")
	ErrInvalidBetWeights = errors.New("total weight cannot be zero")
	ErrInvalidWager      = errors.New("invalid wager")
	ErrInvalidClientSeed = errors.New("client seed too long")
	ErrInvalidSeedHash   = errors.New("seed hash must be 64 hex characters")
	ErrInvalidMetadata   = errors.New("metadata too long")
	ErrPoolInactive      = errors.New("pool is not active")
	ErrInvalidPoolParams = errors.New("pool authority and underlying asset are required")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrGameNotFound      = errors.New("game not found")
	ErrPoolNotFound      = errors.New("pool not found")
	ErrPlayerNotFound    = errors.New("player not found")
)

// Fairness errors. Raised at settlement, state is left untouched.
var (
	ErrSeedHashMismatch      = errors.New("rng seed hash mismatch")
	ErrResultAlreadyProvided = errors.New("rng result already provided")
	ErrRngNotReady           = errors.New("rng result not requested")
	ErrCommitmentPending     = errors.New("seed hash commitment already pending")
)

// ErrGameAlreadySettled is the state-machine view of a duplicate settlement
// attempt. It matches ErrResultAlreadyProvided under errors.Is.
var ErrGameAlreadySettled = ErrResultAlreadyProvided

// Accounting errors. Abort the whole operation, no partial writes.
var (
	ErrInsufficientLiquidity   = errors.New("insufficient pool liquidity")
	ErrArithmeticOverflow      = errors.New("math overflow")
	ErrWithdrawalExceedsSupply = errors.New("withdrawal exceeds lp supply")
)

// Config errors. Raised at round-open time.
var (
	ErrFeeOutOfBounds    = errors.New("fee configuration out of bounds")
	ErrFeatureDisabled   = errors.New("feature disabled")
	ErrHouseEdgeTooHigh  = errors.New("house edge too high")
	ErrMaxPayoutExceeded = errors.New("maximum payout exceeded")
)

// ErrUnauthorized is raised by the access-control layer in front of the
// engine. The engine itself never checks identities.
var ErrUnauthorized = errors.New("unauthorized")

// Kind buckets errors for transport-level status mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindFairness
	KindAccounting
	KindConfig
	KindAuthorization
	KindNotFound
)

// KindOf classifies err into its taxonomy bucket.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrGameNotFound),
		errors.Is(err, ErrPoolNotFound),
		errors.Is(err, ErrPlayerNotFound):
		return KindNotFound
	case errors.Is(err, ErrTooFewOutcomes),
		errors.Is(err, ErrTooManyOutcomes),
		errors.Is(err, ErrInvalidBetWeights),
		errors.Is(err, ErrInvalidWager),
		errors.Is(err, ErrInvalidClientSeed),
		errors.Is(err, ErrInvalidSeedHash),
		errors.Is(err, ErrInvalidMetadata),
		errors.Is(err, ErrPoolInactive),
		errors.Is(err, ErrInvalidPoolParams),
		errors.Is(err, ErrInvalidAmount):
		return KindValidation
	case errors.Is(err, ErrSeedHashMismatch),
		errors.Is(err, ErrResultAlreadyProvided),
		errors.Is(err, ErrRngNotReady),
		errors.Is(err, ErrCommitmentPending):
		return KindFairness
	case errors.Is(err, ErrInsufficientLiquidity),
		errors.Is(err, ErrArithmeticOverflow),
		errors.Is(err, ErrWithdrawalExceedsSupply):
		return KindAccounting
	case errors.Is(err, ErrFeeOutOfBounds),
		errors.Is(err, ErrFeatureDisabled),
		errors.Is(err, ErrHouseEdgeTooHigh),
		errors.Is(err, ErrMaxPayoutExceeded):
		return KindConfig
	case errors.Is(err, ErrUnauthorized):
		return KindAuthorization
	default:
		return KindUnknown
	}
}

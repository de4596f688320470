package fair

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wagerpool_backend/internal/gameerr"
)

func TestValidateBet(t *testing.T) {
	v := ValidateBet([]uint32{25, 25, 25, 25})
	require.True(t, v.IsValid)
	require.Equal(t, uint64(100), v.TotalWeight)
	require.Equal(t, 4, v.OutcomeCount)
	require.NoError(t, v.Err())
}

func TestValidateBetWeightRanges(t *testing.T) {
	// Any length in [2,256] with weights in [1, 1_000_000] is valid.
	for _, n := range []int{2, 3, 17, 256} {
		weights := make([]uint32, n)
		var want uint64
		for i := range weights {
			weights[i] = uint32(i%1_000_000 + 1)
			want += uint64(weights[i])
		}
		v := ValidateBet(weights)
		require.True(t, v.IsValid, "length %d", n)
		require.Equal(t, want, v.TotalWeight)
	}
}

func TestValidateBetRejectsZeroTotal(t *testing.T) {
	v := ValidateBet([]uint32{0, 0})
	require.False(t, v.IsValid)
	require.ErrorIs(t, v.Err(), gameerr.ErrInvalidBetWeights)
	require.ErrorContains(t, v.Err(), "total weight cannot be zero")
}

func TestValidateBetRejectsBadLengths(t *testing.T) {
	v := ValidateBet([]uint32{50})
	require.False(t, v.IsValid)
	require.ErrorIs(t, v.Err(), gameerr.ErrTooFewOutcomes)

	v = ValidateBet(make([]uint32, MaxBetOutcomes+1))
	require.False(t, v.IsValid)
	require.ErrorIs(t, v.Err(), gameerr.ErrTooManyOutcomes)
}

func TestValidateWager(t *testing.T) {
	require.NoError(t, ValidateWager(5_000, 1_000, 100_000, 1_000_000))

	err := ValidateWager(500, 1_000, 100_000, 1_000_000)
	require.ErrorIs(t, err, gameerr.ErrInvalidWager)
	require.ErrorContains(t, err, "must be at least")

	err = ValidateWager(200_000, 1_000, 100_000, 1_000_000)
	require.ErrorContains(t, err, "cannot exceed")

	err = ValidateWager(2_000_000, 1_000, 0, 1_000_000)
	require.ErrorIs(t, err, gameerr.ErrInsufficientLiquidity)
	require.ErrorContains(t, err, "insufficient liquidity")
}

func TestValidateWagerReportsAllViolations(t *testing.T) {
	// Above max and above liquidity at once: both reported.
	err := ValidateWager(300_000, 1_000, 100_000, 200_000)
	require.ErrorContains(t, err, "cannot exceed")
	require.ErrorIs(t, err, gameerr.ErrInsufficientLiquidity)
}

func TestMultiplier(t *testing.T) {
	m, err := Multiplier([]uint32{25, 25, 25, 25}, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(40_000), m)

	m, err = Multiplier([]uint32{90, 10}, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000), m)

	// Even coin flip pays exactly 2.00x.
	m, err = Multiplier([]uint32{50, 50}, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(20_000), m)

	_, err = Multiplier([]uint32{50, 50}, 2)
	require.Error(t, err)
}

func TestMaxMultiplierAndHouseEdge(t *testing.T) {
	require.Equal(t, uint64(100_000), MaxMultiplier([]uint32{90, 10}))

	// Fair even bet has zero house edge.
	require.Equal(t, uint64(0), HouseEdgeBps([]uint32{50, 50}))

	// A dominant weight yields a multiplier near 10000 and no profit.
	m := MaxMultiplier([]uint32{1, 9_999})
	require.Equal(t, uint64(100_000_000), m) // on the rare side
	small, err := Multiplier([]uint32{1, 9_999}, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(10_001), small)
}

func TestExpectedReturnBps(t *testing.T) {
	// Every nonzero outcome contributes exactly 10000 when the divisions
	// are exact.
	require.Equal(t, uint64(2*BPSPerWhole), ExpectedReturnBps([]uint32{50, 50}))
	require.Equal(t, uint64(4*BPSPerWhole), ExpectedReturnBps([]uint32{25, 25, 25, 25}))
	require.Equal(t, uint64(0), ExpectedReturnBps(nil))

	// Floor division shaves the return on non-divisible vectors.
	require.Equal(t, uint64(19_998), ExpectedReturnBps([]uint32{3, 7}))
	require.Equal(t, uint64(2), HouseEdgeBps([]uint32{3, 7}))

	// No valid outcomes means full edge.
	require.Equal(t, uint64(BPSPerWhole), HouseEdgeBps(nil))
}

package fair

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultIndex(t *testing.T) {
	// The digest's primary draw is 1147777814; mod 100 = 14, which lands in
	// the first bucket of an even coin flip.
	idx, err := ResultIndex(testDigest, []uint32{50, 50})
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	// Same draw against [10, 90] lands in the second bucket.
	idx, err = ResultIndex(testDigest, []uint32{10, 90})
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestResultIndexDeterminism(t *testing.T) {
	bet := []uint32{3, 14, 15, 92, 6}
	digest := GameDigest("determinism-seed", "abc", 42)
	first, err := ResultIndex(digest, bet)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		idx, err := ResultIndex(GameDigest("determinism-seed", "abc", 42), bet)
		require.NoError(t, err)
		require.Equal(t, first, idx)
	}
}

func TestResultIndexCoversAllOutcomes(t *testing.T) {
	// Every derived index stays inside the bet vector.
	bet := []uint32{1, 2, 3, 4}
	for nonce := uint64(0); nonce < 200; nonce++ {
		idx, err := ResultIndex(GameDigest(testSeed, testClientSeed, nonce), bet)
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(bet))
	}
}

func TestResultIndexRejectsZeroWeight(t *testing.T) {
	_, err := ResultIndex(testDigest, []uint32{0, 0})
	require.Error(t, err)
}

func TestPayout(t *testing.T) {
	// Even coin flip at 2.00x doubles the net wager.
	p, err := Payout(1_000_000, 20_000)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000), p)

	// Floor division.
	p, err = Payout(3, 15_000)
	require.NoError(t, err)
	require.Equal(t, uint64(4), p)

	p, err = Payout(0, 20_000)
	require.NoError(t, err)
	require.Equal(t, uint64(0), p)
}

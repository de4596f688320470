package fair

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wagerpool_backend/internal/gameerr"
)

const (
	testSeed       = "seed-alpha"
	testSeedHash   = "ba316cd7abc9b7dc6f5cec2defbf1cc58860fda6c517901400c681b729c1e5d8"
	testClientSeed = "client-1"
	testNonce      = uint64(7)
	// hex(HMAC-SHA256(key="seed-alpha", msg="client-1-7"))
	testDigest = "4469b3160f75312501ddee74b8069b4f59c73a100e1b3de4f96fd28ec275a986"
)

func TestHashSeed(t *testing.T) {
	require.Equal(t, testSeedHash, HashSeed(testSeed))
}

func TestVerifySeed(t *testing.T) {
	require.NoError(t, VerifySeed(testSeed, testSeedHash))
	// Commitment comparison is case-insensitive on the hex digest.
	require.NoError(t, VerifySeed(testSeed, strings.ToUpper(testSeedHash)))

	err := VerifySeed("wrong-seed", testSeedHash)
	require.ErrorIs(t, err, gameerr.ErrSeedHashMismatch)
}

func TestGameDigestDeterminism(t *testing.T) {
	require.Equal(t, testDigest, GameDigest(testSeed, testClientSeed, testNonce))
	// Identical inputs always reproduce the digest.
	require.Equal(t,
		GameDigest(testSeed, testClientSeed, testNonce),
		GameDigest(testSeed, testClientSeed, testNonce))
	// Any input change produces a different digest.
	require.NotEqual(t, testDigest, GameDigest(testSeed, testClientSeed, testNonce+1))
	require.NotEqual(t, testDigest, GameDigest(testSeed, "client-2", testNonce))
	require.NotEqual(t, testDigest, GameDigest("seed-beta", testClientSeed, testNonce))
}

func TestResultDraw(t *testing.T) {
	// First 8 hex chars of the digest: 0x4469b316 = 1147777814.
	draw, err := ResultDraw(testDigest, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(14), draw)

	_, err = ResultDraw(testDigest, 0)
	require.ErrorIs(t, err, gameerr.ErrInvalidBetWeights)

	_, err = ResultDraw("short", 100)
	require.Error(t, err)
}

func TestJackpotDraw(t *testing.T) {
	// Hex chars [8,16): 0x0f753125 = 259338533, mod 1e6 = 338533.
	draw, err := JackpotDraw(testDigest)
	require.NoError(t, err)
	require.Equal(t, uint64(338_533), draw)
	require.Less(t, draw, uint64(UbpsDivisor))
}

func TestDrawSlicesAreDisjoint(t *testing.T) {
	require.LessOrEqual(t, resultSliceEnd, jackpotSliceStart)
}

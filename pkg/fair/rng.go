package fair

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"wagerpool_backend/internal/gameerr"
)

// HashSeed returns the lowercase hex SHA-256 commitment for a seed. The
// authority publishes HashSeed(seed_N) before round N and reveals seed_N at
// settlement.
func HashSeed(seed string) string {
	h := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(h[:])
}

// ValidSeedHash reports whether hash looks like a SHA-256 hex digest.
func ValidSeedHash(hash string) bool {
	if len(hash) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

// VerifySeed checks a revealed seed against its stored commitment. The
// comparison is constant-time and case-insensitive on the hex digest.
func VerifySeed(revealedSeed, committedHash string) error {
	got := HashSeed(revealedSeed)
	want := strings.ToLower(committedHash)
	if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
		return gameerr.ErrSeedHashMismatch
	}
	return nil
}

// GameDigest derives the deterministic per-round digest:
// hex(HMAC-SHA256(key = rngSeed, message = clientSeed + "-" + nonce)).
func GameDigest(rngSeed, clientSeed string, nonce uint64) string {
	mac := hmac.New(sha256.New, []byte(rngSeed))
	mac.Write([]byte(clientSeed))
	mac.Write([]byte("-"))
	mac.Write([]byte(strconv.FormatUint(nonce, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Disjoint fixed-width hex slices of the digest feed the two independent
// random draws: [0,8) for outcome resolution, [8,16) for the jackpot.
const (
	resultSliceStart  = 0
	resultSliceEnd    = 8
	jackpotSliceStart = 8
	jackpotSliceEnd   = 16
)

func digestSlice(digest string, start, end int) (uint64, error) {
	if len(digest) < end {
		return 0, gameerr.ErrSeedHashMismatch
	}
	v, err := strconv.ParseUint(digest[start:end], 16, 64)
	if err != nil {
		return 0, gameerr.ErrSeedHashMismatch
	}
	return v, nil
}

// ResultDraw returns the primary random value scaled into [0, totalWeight).
func ResultDraw(digest string, totalWeight uint64) (uint64, error) {
	if totalWeight == 0 {
		return 0, gameerr.ErrInvalidBetWeights
	}
	v, err := digestSlice(digest, resultSliceStart, resultSliceEnd)
	if err != nil {
		return 0, err
	}
	return v % totalWeight, nil
}

// JackpotDraw returns the secondary random value scaled into [0, UbpsDivisor).
func JackpotDraw(digest string) (uint64, error) {
	v, err := digestSlice(digest, jackpotSliceStart, jackpotSliceEnd)
	if err != nil {
		return 0, err
	}
	return v % UbpsDivisor, nil
}
